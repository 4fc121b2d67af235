package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"farmguard/internal/compliance"
)

// ComplianceStore implements compliance.Store with an atomic per-key upsert.
// Concurrent toggles of the same (subject, item) resolve last-write-wins on
// last_updated_at, which is the documented consistency model.
type ComplianceStore struct {
	db *sql.DB
}

func NewComplianceStore(db *sql.DB) *ComplianceStore {
	return &ComplianceStore{db: db}
}

func (s *ComplianceStore) Upsert(ctx context.Context, state compliance.ItemState) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO compliance (subject_id, item_id, status, last_updated_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (subject_id, item_id)
		 DO UPDATE SET status = EXCLUDED.status, last_updated_at = EXCLUDED.last_updated_at`,
		state.SubjectID, state.ItemID, state.Status, state.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert compliance: %w", err)
	}
	return nil
}

func (s *ComplianceStore) ListBySubject(ctx context.Context, subjectID string) ([]compliance.ItemState, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT subject_id, item_id, status, last_updated_at
		 FROM compliance WHERE subject_id = $1 ORDER BY item_id`,
		subjectID,
	)
	if err != nil {
		return nil, fmt.Errorf("list compliance: %w", err)
	}
	defer rows.Close()

	var states []compliance.ItemState
	for rows.Next() {
		var state compliance.ItemState
		if err := rows.Scan(&state.SubjectID, &state.ItemID, &state.Status, &state.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("scan compliance: %w", err)
		}
		states = append(states, state)
	}
	return states, rows.Err()
}
