package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"farmguard/internal/assessment"
	"farmguard/internal/platform/middleware"
	"farmguard/internal/transport/http/shared"
	dErrors "farmguard/pkg/domainerrors"
)

// Service defines the assessment operations used by this handler.
type Service interface {
	Submit(ctx context.Context, subjectID string, raw map[string]string) (assessment.Record, error)
	History(ctx context.Context, subjectID string) ([]assessment.Record, error)
}

// Handler handles assessment endpoints.
type Handler struct {
	logger  *slog.Logger
	service Service
}

// New creates a new assessment Handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, service: service}
}

// Register registers the assessment routes. All of them require auth.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/assessment", h.handleSubmit)
	r.Get("/api/assessment/history", h.handleHistory)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	subjectID := middleware.GetSubjectID(ctx)
	if subjectID == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return
	}

	var req assessment.SubmitRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.WriteError(w, err)
		return
	}

	record, err := h.service.Submit(ctx, subjectID, req.Answers)
	if err != nil {
		if dErrors.Is(err, dErrors.CodeBadRequest) {
			h.logger.WarnContext(ctx, "assessment rejected",
				"error", err.Error(),
				"request_id", middleware.GetRequestID(ctx),
			)
		} else {
			h.logger.ErrorContext(ctx, "assessment submit failed",
				"error", err.Error(),
				"request_id", middleware.GetRequestID(ctx),
			)
		}
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusCreated, assessment.SubmitResult{
		ID:        record.ID,
		Score:     record.Score,
		RiskLevel: record.RiskLevel,
		Date:      record.CreatedAt,
	})
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	subjectID := middleware.GetSubjectID(ctx)
	records, err := h.service.History(ctx, subjectID)
	if err != nil {
		h.logger.ErrorContext(ctx, "history read failed",
			"error", err.Error(),
			"request_id", middleware.GetRequestID(ctx),
		)
		shared.WriteError(w, err)
		return
	}
	if records == nil {
		records = []assessment.Record{}
	}
	shared.WriteJSON(w, http.StatusOK, records)
}
