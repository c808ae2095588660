package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DATABASE_URL", "")
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.DatabaseURL != "data/neillbeauty.sqlite" {
		t.Fatalf("expected default database path, got %s", cfg.DatabaseURL)
	}
	if cfg.AdminTokenTTL != time.Hour {
		t.Fatalf("expected default token ttl, got %s", cfg.AdminTokenTTL)
	}
	if cfg.SlotHorizonDays != 30 {
		t.Fatalf("expected default slot horizon, got %d", cfg.SlotHorizonDays)
	}
	if !cfg.SlotSkipWeekends {
		t.Fatalf("expected weekends skipped by default")
	}
	if cfg.SendGridFromName != "Neill Beauty" {
		t.Fatalf("expected default from name, got %s", cfg.SendGridFromName)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DATABASE_URL", "libsql://neillbeauty.turso.io")
	t.Setenv("DATABASE_AUTH_TOKEN", "tok-123")
	t.Setenv("ADMIN_TOKEN_TTL", "30m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://neillbeauty.fr, https://www.neillbeauty.fr")
	t.Setenv("SLOT_HORIZON_DAYS", "60")
	t.Setenv("SLOT_SKIP_WEEKENDS", "false")
	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected override port, got %s", cfg.Port)
	}
	if cfg.Env != "production" {
		t.Fatalf("expected env override, got %s", cfg.Env)
	}
	if cfg.DatabaseURL != "libsql://neillbeauty.turso.io" {
		t.Fatalf("expected db override, got %s", cfg.DatabaseURL)
	}
	if cfg.DatabaseAuthToken != "tok-123" {
		t.Fatalf("expected auth token override, got %s", cfg.DatabaseAuthToken)
	}
	if cfg.AdminTokenTTL != 30*time.Minute {
		t.Fatalf("expected token ttl override, got %s", cfg.AdminTokenTTL)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://www.neillbeauty.fr" {
		t.Fatalf("expected trimmed origins, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.SlotHorizonDays != 60 {
		t.Fatalf("expected slot horizon override, got %d", cfg.SlotHorizonDays)
	}
	if cfg.SlotSkipWeekends {
		t.Fatalf("expected weekend skip disabled")
	}
}
