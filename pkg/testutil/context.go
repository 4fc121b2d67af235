package testutil

import (
	"context"
	"net/http"

	"farmguard/internal/platform/middleware"
)

// WithSubjectID adds a subject ID to the request context.
// This simulates what the auth middleware does for authenticated requests.
func WithSubjectID(req *http.Request, subjectID string) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.ContextKeySubjectID, subjectID)
	return req.WithContext(ctx)
}

// WithToken adds both subject ID and token ID to the request context.
func WithToken(req *http.Request, subjectID, tokenID string) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.ContextKeySubjectID, subjectID)
	ctx = context.WithValue(ctx, middleware.ContextKeyTokenID, tokenID)
	return req.WithContext(ctx)
}
