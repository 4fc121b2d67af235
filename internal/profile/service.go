package profile

import (
	"context"
	"time"

	"farmguard/internal/audit"
	dErrors "farmguard/pkg/domainerrors"
)

// Service manages the farm profile.
type Service struct {
	store   Store
	auditor *audit.Recorder
	now     func() time.Time
}

// Option configures the Service.
type Option func(*Service)

// WithClock overrides the clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithAuditor attaches an audit recorder.
func WithAuditor(a *audit.Recorder) Option {
	return func(s *Service) { s.auditor = a }
}

func NewService(store Store, opts ...Option) *Service {
	s := &Service{store: store, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the subject's profile. A subject that never saved one gets
// the zero profile back; that is the documented empty state, not an error.
func (s *Service) Get(ctx context.Context, subjectID string) (Profile, error) {
	p, err := s.store.FindBySubject(ctx, subjectID)
	if err != nil {
		if dErrors.Is(err, dErrors.CodeNotFound) {
			return Profile{SubjectID: subjectID}, nil
		}
		return Profile{}, dErrors.Wrap(dErrors.CodeInternal, "load profile", err)
	}
	return p, nil
}

// Update upserts the profile.
func (s *Service) Update(ctx context.Context, subjectID string, req UpdateRequest) error {
	if req.AnimalCount < 0 {
		return dErrors.New(dErrors.CodeBadRequest, "animal_count must not be negative")
	}
	p := Profile{
		SubjectID:   subjectID,
		FarmType:    req.FarmType,
		Location:    req.Location,
		AnimalCount: req.AnimalCount,
		UpdatedAt:   s.now(),
	}
	if err := s.store.Upsert(ctx, p); err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "save profile", err)
	}
	if s.auditor != nil {
		s.auditor.Emit(ctx, audit.Event{SubjectID: subjectID, Action: audit.ActionProfileUpdated})
	}
	return nil
}
