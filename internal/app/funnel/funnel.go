// Package funnelapp собирает приложение воронки: клиент CRM, SMTP-транспорт,
// сборщик планов и HTTP-сервер с graceful shutdown.
package funnelapp

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/welforehealth/funnel/internal/config"
	"github.com/welforehealth/funnel/internal/crm"
	"github.com/welforehealth/funnel/internal/lib/smtp"
	"github.com/welforehealth/funnel/internal/planner"
	funnelservice "github.com/welforehealth/funnel/internal/services/funnel"
	senderservice "github.com/welforehealth/funnel/internal/services/sender"
)

type App struct {
	server *http.Server
	logger *slog.Logger
}

func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	crmClient := crm.New(cfg.CRM, logger)
	transport := smtp.NewTransport(cfg.SMTP, logger)

	senderService := senderservice.NewSenderService(transport, cfg.AdminEmail, logger)
	plannerService := planner.New(nil, cfg.Stripe7DayLink, cfg.Stripe14DayLink)
	funnelService := funnelservice.New(crmClient, senderService, plannerService, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, funnelService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		return a.server.Shutdown(timeoutCtx)
	}
}
