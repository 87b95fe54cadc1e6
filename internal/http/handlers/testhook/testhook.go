// Package testhook реализует эхо-обработчик для проверки интеграции вебхука:
// принимает произвольный JSON и возвращает его обратно без обработки.
package testhook

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/welforehealth/funnel/internal/http/response"
	"github.com/welforehealth/funnel/internal/lib/sl"
)

type Handler struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Handler {
	return &Handler{
		log: log,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.testhook"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	log.Info("test webhook received", slog.Int("fields", len(payload)))
	render.JSON(w, r, map[string]any{
		"status":  "test_received",
		"payload": payload,
	})
}
