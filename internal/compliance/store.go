package compliance

import "context"

// Store persists per-item compliance state. Upsert must be atomic per
// (subjectID, itemID) key; concurrent writes to the same key resolve
// last-write-wins on LastUpdatedAt.
type Store interface {
	Upsert(ctx context.Context, state ItemState) error
	ListBySubject(ctx context.Context, subjectID string) ([]ItemState, error)
}
