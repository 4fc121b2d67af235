package identity

import "context"

// UserStore persists accounts. Create must fail with a conflict when the
// email is already registered.
type UserStore interface {
	Create(ctx context.Context, user User) error
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id string) (User, error)
}
