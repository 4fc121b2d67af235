package assessment

import (
	"context"
	"sort"
	"sync"
)

// InMemoryStore keeps assessment records in memory. It favors clarity over
// performance and is the default when no database is configured.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[string][]Record
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{records: make(map[string][]Record)}
}

func (s *InMemoryStore) Create(_ context.Context, record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.SubjectID] = append(s.records[record.SubjectID], record)
	return nil
}

func (s *InMemoryStore) ListRecent(_ context.Context, subjectID string, limit int) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := append([]Record{}, s.records[subjectID]...)
	sort.Slice(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		}
		return records[i].ID > records[j].ID
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}
