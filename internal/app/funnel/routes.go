package funnelapp

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/welforehealth/funnel/internal/config"
	"github.com/welforehealth/funnel/internal/http/handlers/health"
	"github.com/welforehealth/funnel/internal/http/handlers/quiz"
	"github.com/welforehealth/funnel/internal/http/handlers/testhook"
	"github.com/welforehealth/funnel/internal/http/middlewarectx"
	funnelservice "github.com/welforehealth/funnel/internal/services/funnel"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config, funnelService *funnelservice.Service) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	links := quiz.UpgradeLinks{
		SevenDay:    cfg.Stripe7DayLink,
		FourteenDay: cfg.Stripe14DayLink,
	}
	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)

	// Вебхук ограничен по частоте: квиз шлёт запросы от имени платформы,
	// а не конечного пользователя.
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger, limiter))
		r.Post("/webhook/quiz", quiz.New(logger, funnelService, links).ServeHTTP)
	})

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Post("/test/webhook", testhook.New(logger).ServeHTTP)

	r.Handle("/metrics", promhttp.Handler())
}
