package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"farmguard/internal/profile"
	dErrors "farmguard/pkg/domainerrors"
)

// ProfileStore implements profile.Store.
type ProfileStore struct {
	db *sql.DB
}

func NewProfileStore(db *sql.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

func (s *ProfileStore) Upsert(ctx context.Context, p profile.Profile) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO profiles (subject_id, farm_type, location, animal_count, updated_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (subject_id)
		 DO UPDATE SET farm_type = EXCLUDED.farm_type, location = EXCLUDED.location,
		               animal_count = EXCLUDED.animal_count, updated_at = EXCLUDED.updated_at`,
		p.SubjectID, p.FarmType, p.Location, p.AnimalCount, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

func (s *ProfileStore) FindBySubject(ctx context.Context, subjectID string) (profile.Profile, error) {
	var p profile.Profile
	err := s.db.QueryRowContext(ctx,
		`SELECT subject_id, farm_type, location, animal_count, updated_at
		 FROM profiles WHERE subject_id = $1`,
		subjectID,
	).Scan(&p.SubjectID, &p.FarmType, &p.Location, &p.AnimalCount, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return profile.Profile{}, dErrors.New(dErrors.CodeNotFound, "profile not found")
	}
	if err != nil {
		return profile.Profile{}, fmt.Errorf("find profile: %w", err)
	}
	return p, nil
}
