package identity

import (
	"context"
	"strings"
	"sync"

	dErrors "farmguard/pkg/domainerrors"
)

// InMemoryUserStore keeps accounts in memory, indexed by id and email.
type InMemoryUserStore struct {
	mu      sync.RWMutex
	byID    map[string]User
	byEmail map[string]string
}

func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{
		byID:    make(map[string]User),
		byEmail: make(map[string]string),
	}
}

func (s *InMemoryUserStore) Create(_ context.Context, user User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	email := strings.ToLower(user.Email)
	if _, exists := s.byEmail[email]; exists {
		return dErrors.New(dErrors.CodeConflict, "email already exists")
	}
	s.byID[user.ID] = user
	s.byEmail[email] = user.ID
	return nil
}

func (s *InMemoryUserStore) FindByEmail(_ context.Context, email string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return User{}, dErrors.New(dErrors.CodeNotFound, "user not found")
	}
	return s.byID[id], nil
}

func (s *InMemoryUserStore) FindByID(_ context.Context, id string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if user, ok := s.byID[id]; ok {
		return user, nil
	}
	return User{}, dErrors.New(dErrors.CodeNotFound, "user not found")
}
