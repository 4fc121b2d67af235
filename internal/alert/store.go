package alert

import "context"

// Store holds the global alert feed. Create exists for seeding and future
// ingestion; the service layer only reads.
type Store interface {
	Create(ctx context.Context, alert Alert) error
	List(ctx context.Context) ([]Alert, error)
}
