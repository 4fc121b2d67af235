package compliance

import (
	"context"
	"sort"
	"sync"
)

// InMemoryStore keeps compliance state in memory, keyed by subject then item.
type InMemoryStore struct {
	mu     sync.RWMutex
	states map[string]map[string]ItemState
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{states: make(map[string]map[string]ItemState)}
}

func (s *InMemoryStore) Upsert(_ context.Context, state ItemState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, ok := s.states[state.SubjectID]
	if !ok {
		items = make(map[string]ItemState)
		s.states[state.SubjectID] = items
	}
	items[state.ItemID] = state
	return nil
}

func (s *InMemoryStore) ListBySubject(_ context.Context, subjectID string) ([]ItemState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := s.states[subjectID]
	out := make([]ItemState, 0, len(items))
	for _, state := range items {
		out = append(out, state)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out, nil
}
