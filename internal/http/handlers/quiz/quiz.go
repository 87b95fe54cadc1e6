// Package quiz реализует HTTP-обработчик вебхука квиза о питании.
//
// Handler принимает JSON с ответами квиза, валидирует их, передаёт профиль
// в сервис воронки и возвращает исход: план доставлен либо отправлено
// предложение апгрейда.
//
// В случае ошибок формируются соответствующие HTTP-ответы с описанием проблемы.
package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/welforehealth/funnel/internal/http/response"
	"github.com/welforehealth/funnel/internal/lib/sl"
	"github.com/welforehealth/funnel/internal/models"
	"github.com/welforehealth/funnel/internal/services/funnel"
)

// Handler управляет HTTP-запросами вебхука квиза.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики воронки
	links    UpgradeLinks        // Платёжные ссылки для ответа с апселлом
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики воронки.
type Service interface {
	ProcessQuiz(ctx context.Context, profile models.UserProfile) (funnel.Result, error)
}

// UpgradeLinks — платёжные ссылки тарифов, возвращаемые при блокировке.
type UpgradeLinks struct {
	SevenDay    string
	FourteenDay string
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service, links UpgradeLinks) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		links:    links,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.quiz"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.QuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", sl.Email(req.Email))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	result, err := h.service.ProcessQuiz(r.Context(), req.ToProfile())
	if err != nil {
		if errors.Is(err, funnel.ErrContactService) {
			log.Error("contact service failed", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Failed to process request"))
			return
		}
		log.Error("failed to process quiz", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Internal server error"))
		return
	}

	if !result.Delivered {
		log.Info("free plan already used", sl.Email(req.Email))
		render.JSON(w, r, map[string]any{
			"status":  "blocked",
			"type":    "upsell",
			"message": "Free plan already used. Upgrade options sent.",
			"upgrade_links": map[string]string{
				"7_day":  h.links.SevenDay,
				"14_day": h.links.FourteenDay,
			},
		})
		return
	}

	log.Info("free plan delivered", sl.Email(req.Email), slog.String("user_status", result.UserStatus))
	render.JSON(w, r, map[string]any{
		"status":      "delivered",
		"type":        "free",
		"message":     "3-day meal plan sent",
		"user_status": result.UserStatus,
	})
}
