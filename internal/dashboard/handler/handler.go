package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"farmguard/internal/dashboard"
	"farmguard/internal/platform/middleware"
	"farmguard/internal/transport/http/shared"
)

// Service defines the read-model assembly used by this handler.
type Service interface {
	Overview(ctx context.Context, subjectID string) (dashboard.Stats, error)
}

// Handler handles the dashboard endpoint.
type Handler struct {
	logger  *slog.Logger
	service Service
}

// New creates a new dashboard Handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, service: service}
}

// Register registers the dashboard routes. All of them require auth.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/dashboard", h.handleOverview)
}

func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	subjectID := middleware.GetSubjectID(ctx)
	stats, err := h.service.Overview(ctx, subjectID)
	if err != nil {
		h.logger.ErrorContext(ctx, "dashboard read failed",
			"error", err.Error(),
			"request_id", middleware.GetRequestID(ctx),
		)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, stats)
}
