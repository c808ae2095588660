package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/neillbeauty/neill-beauty-api/internal/api/router"
	"github.com/neillbeauty/neill-beauty-api/internal/auth"
	"github.com/neillbeauty/neill-beauty-api/internal/config"
	"github.com/neillbeauty/neill-beauty-api/internal/contact"
	"github.com/neillbeauty/neill-beauty-api/internal/content"
	"github.com/neillbeauty/neill-beauty-api/internal/invoices"
	"github.com/neillbeauty/neill-beauty-api/internal/notify"
	"github.com/neillbeauty/neill-beauty-api/internal/observability/metrics"
	"github.com/neillbeauty/neill-beauty-api/internal/reservations"
	"github.com/neillbeauty/neill-beauty-api/internal/slots"
	"github.com/neillbeauty/neill-beauty-api/internal/store"
	"github.com/neillbeauty/neill-beauty-api/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	if cfg.AdminJWTSecret == "" {
		logger.Error("ADMIN_JWT_SECRET is required")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := store.Open(ctx, cfg.DatabaseURL, cfg.DatabaseAuthToken)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	issuer, err := auth.NewTokenIssuer(cfg.AdminJWTSecret, cfg.AdminTokenTTL)
	if err != nil {
		logger.Error("failed to create token issuer", "error", err)
		os.Exit(1)
	}

	var sender notify.EmailSender
	if cfg.SendGridAPIKey != "" {
		sender = notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger)
	} else {
		logger.Warn("SENDGRID_API_KEY not set, emails will be logged only")
		sender = notify.NewStubEmailSender(logger)
	}

	bookingMetrics := metrics.NewBookingMetrics(prometheus.DefaultRegisterer)

	slotRepo := slots.NewRepository(db)
	resvRepo := reservations.NewRepository(db)
	resvSvc := reservations.NewService(resvRepo, bookingMetrics, logger).WithEmailSender(sender)
	contactRepo := contact.NewRepository(db)
	contentRepo := content.NewRepository(db)
	paramRepo := content.NewParameterRepository(db)

	handler := router.New(router.Deps{
		DB:           db,
		Logger:       logger,
		CORSOrigins:  cfg.CORSAllowedOrigins,
		Verifier:     issuer,
		Auth:         auth.NewHandler(auth.NewRepository(db), issuer, cfg.Env == "production", logger),
		Slots:        slots.NewHandler(slotRepo, bookingMetrics, logger),
		Reservations: reservations.NewHandler(resvSvc, resvRepo, logger),
		Contact:      contact.NewHandler(contactRepo, sender, paramRepo, logger),
		Content:      content.NewHandler(contentRepo, paramRepo, logger),
		Invoices:     invoices.NewHandler(invoices.NewRepository(db), logger),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("starting api server", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
