package identity

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"farmguard/internal/audit"
	"farmguard/internal/platform/metrics"
	dErrors "farmguard/pkg/domainerrors"
)

const minPasswordLength = 8

// TokenIssuer issues access tokens for authenticated subjects.
type TokenIssuer interface {
	GenerateAccessToken(subjectID string, expiresIn time.Duration) (string, error)
}

// Service implements the token-issuing identity path. It supplies the
// opaque subject id that every other module trusts; no other module
// performs authorization.
type Service struct {
	store      UserStore
	issuer     TokenIssuer
	revocation TokenRevocationList
	auditor    *audit.Recorder
	metrics    *metrics.Metrics
	tokenTTL   time.Duration
}

// Option configures the Service.
type Option func(*Service)

// WithAuditor attaches an audit recorder.
func WithAuditor(a *audit.Recorder) Option {
	return func(s *Service) { s.auditor = a }
}

// WithMetrics attaches the metrics collector.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func NewService(store UserStore, issuer TokenIssuer, revocation TokenRevocationList, tokenTTL time.Duration, opts ...Option) *Service {
	s := &Service{
		store:      store,
		issuer:     issuer,
		revocation: revocation,
		tokenTTL:   tokenTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Signup creates an account with a bcrypt-hashed password.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (User, error) {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.Email == "" || !strings.Contains(req.Email, "@") {
		return User{}, dErrors.New(dErrors.CodeBadRequest, "name and a valid email are required")
	}
	if len(req.Password) < minPasswordLength {
		return User{}, dErrors.New(dErrors.CodeBadRequest, "password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, dErrors.Wrap(dErrors.CodeInternal, "hash password", err)
	}

	user := User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.store.Create(ctx, user); err != nil {
		return User{}, err
	}

	s.metrics.IncrementUsersCreated()
	if s.auditor != nil {
		s.auditor.Emit(ctx, audit.Event{SubjectID: user.ID, Action: audit.ActionUserCreated})
	}
	return user, nil
}

// Login verifies credentials and issues an access token. Lookup and compare
// failures collapse into one unauthorized answer so the response does not
// reveal whether the email exists.
func (s *Service) Login(ctx context.Context, req LoginRequest) (LoginResult, error) {
	user, err := s.store.FindByEmail(ctx, strings.TrimSpace(strings.ToLower(req.Email)))
	if err != nil {
		if dErrors.Is(err, dErrors.CodeNotFound) {
			return LoginResult{}, dErrors.New(dErrors.CodeUnauthorized, "invalid email or password")
		}
		return LoginResult{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return LoginResult{}, dErrors.New(dErrors.CodeUnauthorized, "invalid email or password")
	}

	token, err := s.issuer.GenerateAccessToken(user.ID, s.tokenTTL)
	if err != nil {
		return LoginResult{}, dErrors.Wrap(dErrors.CodeInternal, "issue token", err)
	}

	if s.auditor != nil {
		s.auditor.Emit(ctx, audit.Event{SubjectID: user.ID, Action: audit.ActionUserLoggedIn})
	}
	return LoginResult{Token: token, User: user}, nil
}

// Logout revokes the presented token's jti until its natural expiry.
func (s *Service) Logout(ctx context.Context, subjectID, jti string) error {
	if err := s.revocation.RevokeToken(ctx, jti, s.tokenTTL); err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "revoke token", err)
	}
	if s.auditor != nil {
		s.auditor.Emit(ctx, audit.Event{SubjectID: subjectID, Action: audit.ActionUserLoggedOut})
	}
	return nil
}

// Me returns the public account view for the authenticated subject.
func (s *Service) Me(ctx context.Context, subjectID string) (User, error) {
	return s.store.FindByID(ctx, subjectID)
}
