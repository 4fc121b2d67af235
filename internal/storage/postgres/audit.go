package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"farmguard/internal/audit"
)

// AuditStore implements audit.Store.
type AuditStore struct {
	db *sql.DB
}

func NewAuditStore(db *sql.DB) *AuditStore {
	return &AuditStore{db: db}
}

func (s *AuditStore) Append(ctx context.Context, event audit.Event) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO audit_events (id, subject_id, action, detail, created_at) VALUES ($1, $2, $3, $4, $5)`,
		event.ID, event.SubjectID, event.Action, event.Detail, event.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}

func (s *AuditStore) ListBySubject(ctx context.Context, subjectID string) ([]audit.Event, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, subject_id, action, detail, created_at
		 FROM audit_events WHERE subject_id = $1 ORDER BY created_at`,
		subjectID,
	)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var events []audit.Event
	for rows.Next() {
		var event audit.Event
		if err := rows.Scan(&event.ID, &event.SubjectID, &event.Action, &event.Detail, &event.Timestamp); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		events = append(events, event)
	}
	return events, rows.Err()
}
