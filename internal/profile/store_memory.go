package profile

import (
	"context"
	"sync"

	dErrors "farmguard/pkg/domainerrors"
)

// InMemoryStore keeps profiles in memory.
type InMemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]Profile
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{profiles: make(map[string]Profile)}
}

func (s *InMemoryStore) Upsert(_ context.Context, p Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.SubjectID] = p
	return nil
}

func (s *InMemoryStore) FindBySubject(_ context.Context, subjectID string) (Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.profiles[subjectID]; ok {
		return p, nil
	}
	return Profile{}, dErrors.New(dErrors.CodeNotFound, "profile not found")
}
