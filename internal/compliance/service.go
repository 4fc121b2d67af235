package compliance

import (
	"context"
	"time"

	"farmguard/internal/audit"
	"farmguard/internal/platform/metrics"
	"farmguard/pkg/catalog"
	dErrors "farmguard/pkg/domainerrors"
)

// Service is the compliance ledger. The checklist itself is static catalog
// configuration; only per-subject boolean state is persisted.
type Service struct {
	catalog *catalog.Catalog
	store   Store
	auditor *audit.Recorder
	metrics *metrics.Metrics
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

// WithMetrics attaches the metrics collector.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func NewService(cat *catalog.Catalog, store Store, opts ...Option) *Service {
	s := &Service{
		catalog: cat,
		store:   store,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// States returns one view per catalog item in catalog order. Items without a
// persisted row are implicitly false; they are not materialized until the
// first toggle.
func (s *Service) States(ctx context.Context, subjectID string) ([]ItemView, error) {
	rows, err := s.store.ListBySubject(ctx, subjectID)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "list compliance state", err)
	}
	byItem := make(map[string]ItemState, len(rows))
	for _, row := range rows {
		byItem[row.ItemID] = row
	}

	views := make([]ItemView, 0, len(s.catalog.ComplianceItems))
	for _, item := range s.catalog.ComplianceItems {
		view := ItemView{
			ItemID:  item.ID,
			Label:   item.Label,
			Cadence: item.Cadence,
		}
		if row, ok := byItem[item.ID]; ok {
			view.Status = row.Status
			view.LastUpdatedAt = row.LastUpdatedAt
		}
		views = append(views, view)
	}
	return views, nil
}

// SetState upserts the state for one item. Writing the same status twice is
// an effective no-op: the value converges while LastUpdatedAt still
// advances. Concurrent writes to the same key resolve last-write-wins.
func (s *Service) SetState(ctx context.Context, subjectID, itemID string, status bool) error {
	if !s.catalog.HasComplianceItem(itemID) {
		return dErrors.New(dErrors.CodeBadRequest, "unknown compliance item id: "+itemID)
	}

	state := ItemState{
		SubjectID:     subjectID,
		ItemID:        itemID,
		Status:        status,
		LastUpdatedAt: s.now(),
	}
	if err := s.store.Upsert(ctx, state); err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "upsert compliance state", err)
	}

	s.metrics.ObserveComplianceToggle(status)
	if s.auditor != nil {
		s.auditor.Emit(ctx, audit.Event{
			SubjectID: subjectID,
			Action:    audit.ActionComplianceToggled,
			Detail:    itemID,
		})
	}
	return nil
}

// CompletionRate is count(status=true) divided by the full catalog size,
// absent rows counting as false. The catalog is validated non-empty at load
// time, so the division is always defined here.
func (s *Service) CompletionRate(ctx context.Context, subjectID string) (float64, error) {
	rows, err := s.store.ListBySubject(ctx, subjectID)
	if err != nil {
		return 0, dErrors.Wrap(dErrors.CodeInternal, "list compliance state", err)
	}
	done := 0
	for _, row := range rows {
		if row.Status && s.catalog.HasComplianceItem(row.ItemID) {
			done++
		}
	}
	return float64(done) / float64(len(s.catalog.ComplianceItems)), nil
}
