package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/joho/godotenv"

	"github.com/neillbeauty/neill-beauty-api/internal/config"
	"github.com/neillbeauty/neill-beauty-api/internal/store"
	"github.com/neillbeauty/neill-beauty-api/migrations"
	"github.com/neillbeauty/neill-beauty-api/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	var command string
	flag.StringVar(&command, "command", "up", "up, down, or force <version>")
	flag.Parse()

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	db, err := store.Open(context.Background(), cfg.DatabaseURL, cfg.DatabaseAuthToken)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		logger.Error("failed to create migration driver", "error", err)
		os.Exit(1)
	}
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		logger.Error("failed to load embedded migrations", "error", err)
		os.Exit(1)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		logger.Error("failed to create migrator", "error", err)
		os.Exit(1)
	}

	switch command {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	case "force":
		if flag.NArg() < 1 {
			logger.Error("force requires a version argument")
			os.Exit(1)
		}
		version, convErr := strconv.Atoi(flag.Arg(0))
		if convErr != nil {
			logger.Error("invalid version", "arg", flag.Arg(0))
			os.Exit(1)
		}
		err = m.Force(version)
	default:
		logger.Error("unknown command", "command", command)
		os.Exit(1)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("database is up to date")
		return
	}
	if err != nil {
		logger.Error("migration failed", "command", command, "error", err)
		os.Exit(1)
	}
	logger.Info("migration complete", "command", command)
}
