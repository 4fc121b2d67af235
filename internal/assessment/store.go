package assessment

import (
	"context"
)

// Store persists assessment records. Records are append-only; there is no
// update or delete. ListRecent must order by CreatedAt descending with ties
// broken by ID descending so recency ordering is deterministic.
type Store interface {
	Create(ctx context.Context, record Record) error
	ListRecent(ctx context.Context, subjectID string, limit int) ([]Record, error)
}
