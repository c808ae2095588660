// Package store opens the relational database behind the site. Local
// deployments point DATABASE_URL at a SQLite file; production points it at a
// hosted libSQL (Turso) instance. Both drivers register with database/sql, so
// the rest of the code never cares which one is in play.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// Open connects to the database named by databaseURL and verifies the
// connection. authToken is only used for libsql URLs.
func Open(ctx context.Context, databaseURL, authToken string) (*sql.DB, error) {
	driver, dsn := resolve(databaseURL, authToken)

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", driver, err)
	}

	// SQLite handles one writer at a time; keeping the pool small avoids
	// spurious SQLITE_BUSY under concurrent requests.
	db.SetMaxOpenConns(4)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}
	return db, nil
}

func resolve(databaseURL, authToken string) (driver, dsn string) {
	trimmed := strings.TrimSpace(databaseURL)
	if strings.HasPrefix(trimmed, "libsql://") || strings.HasPrefix(trimmed, "wss://") || strings.HasPrefix(trimmed, "https://") {
		if authToken != "" {
			sep := "?"
			if strings.Contains(trimmed, "?") {
				sep = "&"
			}
			trimmed += sep + "authToken=" + url.QueryEscape(authToken)
		}
		return "libsql", trimmed
	}

	// Local file path. Immediate transactions take the write lock at BEGIN,
	// so concurrent booking attempts queue on the busy timeout instead of
	// deadlocking on a lock upgrade mid-transaction.
	if !strings.Contains(trimmed, "?") {
		trimmed += "?_busy_timeout=5000&_foreign_keys=on&_txlock=immediate"
	}
	return "sqlite3", "file:" + trimmed
}
