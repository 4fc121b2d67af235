package profile

import "context"

// Store persists farm profiles keyed by subject.
type Store interface {
	Upsert(ctx context.Context, p Profile) error
	FindBySubject(ctx context.Context, subjectID string) (Profile, error)
}
