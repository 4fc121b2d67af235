package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"farmguard/internal/platform/middleware"
	"farmguard/internal/profile"
	"farmguard/internal/transport/http/shared"
	dErrors "farmguard/pkg/domainerrors"
)

// Service defines the profile operations used by this handler.
type Service interface {
	Get(ctx context.Context, subjectID string) (profile.Profile, error)
	Update(ctx context.Context, subjectID string, req profile.UpdateRequest) error
}

// Handler handles farm profile endpoints.
type Handler struct {
	logger  *slog.Logger
	service Service
}

// New creates a new profile Handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, service: service}
}

// Register registers the profile routes. All of them require auth.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/profile", h.handleGet)
	r.Put("/api/profile", h.handleUpdate)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	subjectID := middleware.GetSubjectID(ctx)
	p, err := h.service.Get(ctx, subjectID)
	if err != nil {
		h.logger.ErrorContext(ctx, "profile read failed",
			"error", err.Error(),
			"request_id", middleware.GetRequestID(ctx),
		)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	subjectID := middleware.GetSubjectID(ctx)
	if subjectID == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return
	}

	var req profile.UpdateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.WriteError(w, err)
		return
	}

	if err := h.service.Update(ctx, subjectID, req); err != nil {
		shared.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
