package alert

import (
	"context"
	"sort"
	"sync"
)

// InMemoryStore keeps alerts in memory.
type InMemoryStore struct {
	mu     sync.RWMutex
	alerts []Alert
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Create(_ context.Context, a Alert) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts = append(s.alerts, a)
	return nil
}

// List returns alerts newest first.
func (s *InMemoryStore) List(_ context.Context) ([]Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := append([]Alert{}, s.alerts...)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}
