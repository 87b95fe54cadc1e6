package health

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
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
	w.WriteHeader(http.StatusOK)
	render.JSON(w, r, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
