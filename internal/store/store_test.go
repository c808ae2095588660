package store

import (
	"strings"
	"testing"
)

func TestResolveLocalFile(t *testing.T) {
	driver, dsn := resolve("data/neillbeauty.sqlite", "")
	if driver != "sqlite3" {
		t.Fatalf("expected sqlite3 driver, got %s", driver)
	}
	if !strings.HasPrefix(dsn, "file:data/neillbeauty.sqlite?") {
		t.Fatalf("unexpected dsn %s", dsn)
	}
	if !strings.Contains(dsn, "_busy_timeout=5000") {
		t.Fatalf("expected busy timeout in dsn, got %s", dsn)
	}
	if !strings.Contains(dsn, "_txlock=immediate") {
		t.Fatalf("expected immediate txlock in dsn, got %s", dsn)
	}
}

func TestResolveLibsqlURL(t *testing.T) {
	driver, dsn := resolve("libsql://neillbeauty.turso.io", "tok 123")
	if driver != "libsql" {
		t.Fatalf("expected libsql driver, got %s", driver)
	}
	if dsn != "libsql://neillbeauty.turso.io?authToken=tok+123" {
		t.Fatalf("unexpected dsn %s", dsn)
	}
}

func TestResolveLibsqlURLWithExistingQuery(t *testing.T) {
	driver, dsn := resolve("libsql://neillbeauty.turso.io?tls=1", "tok")
	if driver != "libsql" {
		t.Fatalf("expected libsql driver, got %s", driver)
	}
	if dsn != "libsql://neillbeauty.turso.io?tls=1&authToken=tok" {
		t.Fatalf("unexpected dsn %s", dsn)
	}
}
