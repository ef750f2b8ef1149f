package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/saicharan1203/portfolio-backend/config"
	"github.com/saicharan1203/portfolio-backend/internal/bootstrap"
	"github.com/saicharan1203/portfolio-backend/internal/logging"
	"github.com/saicharan1203/portfolio-backend/internal/portfolio/service"
)

const serviceName = "portfolio-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New("info", "").WithError(err).Fatal("failed to load config")
	}

	log := logging.New(cfg.App.LogLevel, cfg.App.Environment)
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stores := bootstrap.OpenStore(ctx, &cfg.Database, log)
	defer stores.Close()

	if cfg.App.SeedOnStart {
		if _, err := service.Seed(ctx, stores.Store, log); err != nil {
			log.WithError(err).Error("seeding failed")
		}
	}

	notifier, closeNotifier := bootstrap.BuildNotifier(cfg, log)
	defer closeNotifier()

	router, handler := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    serviceName,
		Version:        cfg.App.Version,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Backend:        stores.Backend,
		DB:             stores.DB,
		Store:          stores.Store,
		Notifier:       notifier,
		Recipient:      cfg.Mail.Recipient,
		Log:            log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("port", cfg.Server.Port).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err := <-errCh:
		if err != nil {
			log.WithError(err).Error("server stopped")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("graceful shutdown incomplete")
	}

	drained := make(chan struct{})
	go func() {
		handler.Close()
		close(drained)
	}()
	select {
	case <-drained:
	case <-shutdownCtx.Done():
		log.Warn("pending contact notifications abandoned")
	}
}
