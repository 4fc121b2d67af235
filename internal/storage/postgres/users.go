package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"farmguard/internal/identity"
	dErrors "farmguard/pkg/domainerrors"
)

const uniqueViolation = "23505"

// UserStore implements identity.UserStore.
type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Create(ctx context.Context, user identity.User) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password_hash, created_at) VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt,
	)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return dErrors.New(dErrors.CodeConflict, "email already exists")
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (identity.User, error) {
	return s.find(ctx, `SELECT id, name, email, password_hash, created_at FROM users WHERE email = $1`, email)
}

func (s *UserStore) FindByID(ctx context.Context, id string) (identity.User, error) {
	return s.find(ctx, `SELECT id, name, email, password_hash, created_at FROM users WHERE id = $1`, id)
}

func (s *UserStore) find(ctx context.Context, query string, arg any) (identity.User, error) {
	var user identity.User
	err := s.db.QueryRowContext(ctx, query, arg).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return identity.User{}, dErrors.New(dErrors.CodeNotFound, "user not found")
	}
	if err != nil {
		return identity.User{}, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
