package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"farmguard/internal/compliance"
	"farmguard/internal/platform/middleware"
	"farmguard/internal/transport/http/shared"
	dErrors "farmguard/pkg/domainerrors"
)

// Service defines the ledger operations used by this handler.
type Service interface {
	States(ctx context.Context, subjectID string) ([]compliance.ItemView, error)
	SetState(ctx context.Context, subjectID, itemID string, status bool) error
}

// Handler handles compliance endpoints.
type Handler struct {
	logger  *slog.Logger
	service Service
}

// New creates a new compliance Handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, service: service}
}

// Register registers the compliance routes. All of them require auth.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/compliance", h.handleGetStates)
	r.Post("/api/compliance", h.handleSetState)
}

func (h *Handler) handleGetStates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	subjectID := middleware.GetSubjectID(ctx)
	views, err := h.service.States(ctx, subjectID)
	if err != nil {
		h.logger.ErrorContext(ctx, "compliance read failed",
			"error", err.Error(),
			"request_id", middleware.GetRequestID(ctx),
		)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, views)
}

func (h *Handler) handleSetState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	subjectID := middleware.GetSubjectID(ctx)
	if subjectID == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return
	}

	var req compliance.SetStateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.WriteError(w, err)
		return
	}

	if err := h.service.SetState(ctx, subjectID, req.ItemID, req.Status); err != nil {
		if dErrors.Is(err, dErrors.CodeBadRequest) {
			h.logger.WarnContext(ctx, "compliance toggle rejected",
				"item_id", req.ItemID,
				"request_id", middleware.GetRequestID(ctx),
			)
		} else {
			h.logger.ErrorContext(ctx, "compliance toggle failed",
				"error", err.Error(),
				"request_id", middleware.GetRequestID(ctx),
			)
		}
		shared.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
