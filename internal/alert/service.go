package alert

import (
	"context"

	dErrors "farmguard/pkg/domainerrors"
)

// Service exposes the global alert feed.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// List returns the full feed, newest first.
func (s *Service) List(ctx context.Context) ([]Alert, error) {
	alerts, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "list alerts", err)
	}
	return alerts, nil
}

// Summary returns at most n alerts for dashboard display. The full list
// stays available through List.
func (s *Service) Summary(ctx context.Context, n int) ([]Alert, error) {
	alerts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if n > 0 && len(alerts) > n {
		alerts = alerts[:n]
	}
	return alerts, nil
}
