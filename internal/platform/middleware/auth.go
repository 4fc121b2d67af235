package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

// JWTValidator defines the interface for validating JWT tokens.
type JWTValidator interface {
	ValidateToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims represents the claims we expect from the JWT validator.
type JWTClaims struct {
	SubjectID string
	TokenID   string
	ExpiresAt int64
}

// RevocationChecker reports whether a token has been revoked since issuance.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Context keys for storing authenticated subject information.
type contextKeySubjectID struct{}
type contextKeyTokenID struct{}

var (
	ContextKeySubjectID = contextKeySubjectID{}
	ContextKeyTokenID   = contextKeyTokenID{}
)

// GetSubjectID retrieves the authenticated subject ID from the context.
func GetSubjectID(ctx context.Context) string {
	subjectID, ok := ctx.Value(ContextKeySubjectID).(string)
	if !ok {
		return ""
	}
	return subjectID
}

// GetTokenID retrieves the token ID (jti) from the context.
func GetTokenID(ctx context.Context) string {
	tokenID, ok := ctx.Value(ContextKeyTokenID).(string)
	if !ok {
		return ""
	}
	return tokenID
}

// RequireAuth validates the bearer token, rejects revoked tokens, and places
// the subject identity in the request context. Everything after this
// middleware trusts the subject ID and performs no further authorization.
func RequireAuth(validator JWTValidator, revocation RevocationChecker, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			authHeader := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || token == "" {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", GetRequestID(ctx),
				)
				writeUnauthorized(w, "Missing or invalid Authorization header")
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"error", err,
					"request_id", GetRequestID(ctx),
				)
				writeUnauthorized(w, "Invalid or expired token")
				return
			}

			if revocation != nil {
				revoked, err := revocation.IsRevoked(ctx, claims.TokenID)
				if err != nil {
					logger.ErrorContext(ctx, "revocation check failed",
						"error", err,
						"request_id", GetRequestID(ctx),
					)
					// Fail closed: an unverifiable token is not accepted.
					writeUnauthorized(w, "Invalid or expired token")
					return
				}
				if revoked {
					writeUnauthorized(w, "Token has been revoked")
					return
				}
			}

			ctx = context.WithValue(ctx, ContextKeySubjectID, claims.SubjectID)
			ctx = context.WithValue(ctx, ContextKeyTokenID, claims.TokenID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized","error_description":"` + description + `"}`))
}
