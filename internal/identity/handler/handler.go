package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"farmguard/internal/identity"
	"farmguard/internal/platform/middleware"
	"farmguard/internal/transport/http/shared"
	dErrors "farmguard/pkg/domainerrors"
)

// Service defines the identity operations used by this handler.
type Service interface {
	Signup(ctx context.Context, req identity.SignupRequest) (identity.User, error)
	Login(ctx context.Context, req identity.LoginRequest) (identity.LoginResult, error)
	Logout(ctx context.Context, subjectID, jti string) error
	Me(ctx context.Context, subjectID string) (identity.User, error)
}

// Handler handles auth endpoints.
type Handler struct {
	logger  *slog.Logger
	service Service
}

// New creates a new identity Handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, service: service}
}

// RegisterPublic registers the unauthenticated routes.
func (h *Handler) RegisterPublic(r chi.Router) {
	r.Post("/api/auth/signup", h.handleSignup)
	r.Post("/api/auth/login", h.handleLogin)
}

// RegisterProtected registers the routes behind RequireAuth.
func (h *Handler) RegisterProtected(r chi.Router) {
	r.Post("/api/auth/logout", h.handleLogout)
	r.Get("/api/auth/me", h.handleMe)
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req identity.SignupRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.WriteError(w, err)
		return
	}

	user, err := h.service.Signup(ctx, req)
	if err != nil {
		h.logger.WarnContext(ctx, "signup rejected",
			"error", err.Error(),
			"request_id", middleware.GetRequestID(ctx),
		)
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusCreated, map[string]string{
		"message": "User created successfully",
		"user_id": user.ID,
	})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req identity.LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.WriteError(w, err)
		return
	}

	result, err := h.service.Login(ctx, req)
	if err != nil {
		h.logger.WarnContext(ctx, "login failed",
			"request_id", middleware.GetRequestID(ctx),
		)
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	subjectID := middleware.GetSubjectID(ctx)
	jti := middleware.GetTokenID(ctx)
	if subjectID == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return
	}

	if err := h.service.Logout(ctx, subjectID, jti); err != nil {
		h.logger.ErrorContext(ctx, "logout failed",
			"error", err.Error(),
			"request_id", middleware.GetRequestID(ctx),
		)
		shared.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	subjectID := middleware.GetSubjectID(ctx)
	user, err := h.service.Me(ctx, subjectID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, user)
}
