package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"farmguard/internal/assessment"
)

// AssessmentStore implements assessment.Store. Records are append-only;
// ListRecent orders by created_at then id descending so recency ties are
// deterministic.
type AssessmentStore struct {
	db *sql.DB
}

func NewAssessmentStore(db *sql.DB) *AssessmentStore {
	return &AssessmentStore{db: db}
}

func (s *AssessmentStore) Create(ctx context.Context, record assessment.Record) error {
	answers, err := json.Marshal(record.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO assessments (id, subject_id, score, risk_level, answers, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		record.ID, record.SubjectID, record.Score, string(record.RiskLevel), answers, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert assessment: %w", err)
	}
	return nil
}

func (s *AssessmentStore) ListRecent(ctx context.Context, subjectID string, limit int) ([]assessment.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, subject_id, score, risk_level, answers, created_at
		 FROM assessments
		 WHERE subject_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2`,
		subjectID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	defer rows.Close()

	var records []assessment.Record
	for rows.Next() {
		var record assessment.Record
		var level string
		var answers []byte
		if err := rows.Scan(&record.ID, &record.SubjectID, &record.Score, &level, &answers, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan assessment: %w", err)
		}
		record.RiskLevel = assessment.RiskLevel(level)
		if err := json.Unmarshal(answers, &record.Answers); err != nil {
			return nil, fmt.Errorf("unmarshal answers: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
