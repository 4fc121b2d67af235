package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"farmguard/internal/alert"
)

// AlertStore implements alert.Store.
type AlertStore struct {
	db *sql.DB
}

func NewAlertStore(db *sql.DB) *AlertStore {
	return &AlertStore{db: db}
}

func (s *AlertStore) Create(ctx context.Context, a alert.Alert) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO alerts (id, title, severity, description, date) VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.Title, string(a.Severity), a.Description, a.Date,
	)
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

func (s *AlertStore) List(ctx context.Context) ([]alert.Alert, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, severity, description, date FROM alerts ORDER BY date DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()

	var alerts []alert.Alert
	for rows.Next() {
		var a alert.Alert
		var severity string
		if err := rows.Scan(&a.ID, &a.Title, &severity, &a.Description, &a.Date); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		a.Severity = alert.Severity(severity)
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}
