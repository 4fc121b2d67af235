package assessment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"farmguard/internal/audit"
	"farmguard/internal/platform/metrics"
	"farmguard/pkg/catalog"
	dErrors "farmguard/pkg/domainerrors"
)

// Service orchestrates submission: normalize, score, persist, observe. It
// keeps orchestration out of handlers and the scoring logic pure.
type Service struct {
	normalizer   *Normalizer
	scorer       *Scorer
	store        Store
	auditor      *audit.Recorder
	metrics      *metrics.Metrics
	historyLimit int
	now          func() time.Time
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

// WithMetrics attaches the metrics collector.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func NewService(cat *catalog.Catalog, store Store, historyLimit int, opts ...Option) *Service {
	s := &Service{
		normalizer:   NewNormalizer(cat),
		scorer:       NewScorer(cat),
		store:        store,
		historyLimit: historyLimit,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates raw answers, derives the score, and appends an immutable
// record. Validation failures surface as bad_request; storage failures are
// propagated unchanged apart from classification.
func (s *Service) Submit(ctx context.Context, subjectID string, raw map[string]string) (Record, error) {
	answers, err := s.normalizer.Normalize(raw)
	if err != nil {
		return Record{}, err
	}

	score, level := s.scorer.Score(answers)
	record := Record{
		ID:        uuid.NewString(),
		SubjectID: subjectID,
		Score:     score,
		RiskLevel: level,
		Answers:   answers,
		CreatedAt: s.now(),
	}

	if err := s.store.Create(ctx, record); err != nil {
		return Record{}, dErrors.Wrap(dErrors.CodeInternal, "persist assessment", err)
	}

	s.metrics.ObserveAssessment(string(level))
	if s.auditor != nil {
		s.auditor.Emit(ctx, audit.Event{
			SubjectID: subjectID,
			Action:    audit.ActionAssessmentSubmitted,
			Detail:    string(level),
		})
	}
	return record, nil
}

// History returns the subject's most recent records, newest first, bounded
// by the configured window.
func (s *Service) History(ctx context.Context, subjectID string) ([]Record, error) {
	records, err := s.store.ListRecent(ctx, subjectID, s.historyLimit)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "list assessments", err)
	}
	return records, nil
}
