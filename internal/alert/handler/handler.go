package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"farmguard/internal/alert"
	"farmguard/internal/platform/middleware"
	"farmguard/internal/transport/http/shared"
)

// Service defines the alert operations used by this handler.
type Service interface {
	List(ctx context.Context) ([]alert.Alert, error)
}

// Handler handles the alert feed endpoint.
type Handler struct {
	logger  *slog.Logger
	service Service
}

// New creates a new alert Handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, service: service}
}

// Register registers the alert routes. All of them require auth.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/alerts", h.handleList)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	alerts, err := h.service.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "alert read failed",
			"error", err.Error(),
			"request_id", middleware.GetRequestID(ctx),
		)
		shared.WriteError(w, err)
		return
	}
	if alerts == nil {
		alerts = []alert.Alert{}
	}
	shared.WriteJSON(w, http.StatusOK, alerts)
}
