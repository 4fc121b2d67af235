//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmguard/internal/assessment"
	"farmguard/internal/compliance"
	"farmguard/internal/identity"
	dErrors "farmguard/pkg/domainerrors"
	"farmguard/pkg/testutil/containers"
)

func TestPostgresStores(t *testing.T) {
	ctx := context.Background()
	pg := containers.NewPostgresContainer(t)
	require.NoError(t, EnsureSchema(ctx, pg.DB))

	t.Run("user unique email", func(t *testing.T) {
		store := NewUserStore(pg.DB)
		user := identity.User{
			ID:           uuid.NewString(),
			Name:         "Jordan Reyes",
			Email:        "jordan@greypine.farm",
			PasswordHash: "$2a$10$fakehash",
			CreatedAt:    time.Now().UTC(),
		}
		require.NoError(t, store.Create(ctx, user))

		dup := user
		dup.ID = uuid.NewString()
		err := store.Create(ctx, dup)
		require.Error(t, err)
		assert.True(t, dErrors.Is(err, dErrors.CodeConflict))

		found, err := store.FindByEmail(ctx, "jordan@greypine.farm")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)

		_, err = store.FindByID(ctx, uuid.NewString())
		assert.True(t, dErrors.Is(err, dErrors.CodeNotFound))
	})

	t.Run("assessment recency order with timestamp ties", func(t *testing.T) {
		store := NewAssessmentStore(pg.DB)
		subjectID := uuid.NewString()
		now := time.Now().UTC().Truncate(time.Microsecond)

		// Same created_at; id breaks the tie.
		for _, id := range []string{"a-1", "a-2", "a-3"} {
			require.NoError(t, store.Create(ctx, assessment.Record{
				ID:        id,
				SubjectID: subjectID,
				Score:     80,
				RiskLevel: assessment.RiskLow,
				Answers:   assessment.AnswerSet{{QuestionID: "q1", Value: assessment.AnswerYes}},
				CreatedAt: now,
			}))
		}
		require.NoError(t, store.Create(ctx, assessment.Record{
			ID:        "a-0",
			SubjectID: subjectID,
			Score:     50,
			RiskLevel: assessment.RiskMedium,
			Answers:   assessment.AnswerSet{{QuestionID: "q1", Value: assessment.AnswerNo}},
			CreatedAt: now.Add(time.Second),
		}))

		records, err := store.ListRecent(ctx, subjectID, 3)
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "a-0", records[0].ID)
		assert.Equal(t, "a-3", records[1].ID)
		assert.Equal(t, "a-2", records[2].ID)
		require.Len(t, records[0].Answers, 1)
		assert.Equal(t, assessment.AnswerNo, records[0].Answers[0].Value)
	})

	t.Run("compliance upsert is idempotent and last-write-wins", func(t *testing.T) {
		store := NewComplianceStore(pg.DB)
		subjectID := uuid.NewString()
		t0 := time.Now().UTC().Truncate(time.Microsecond)

		require.NoError(t, store.Upsert(ctx, compliance.ItemState{
			SubjectID: subjectID, ItemID: "c1", Status: true, LastUpdatedAt: t0,
		}))
		require.NoError(t, store.Upsert(ctx, compliance.ItemState{
			SubjectID: subjectID, ItemID: "c1", Status: true, LastUpdatedAt: t0.Add(time.Second),
		}))
		require.NoError(t, store.Upsert(ctx, compliance.ItemState{
			SubjectID: subjectID, ItemID: "c1", Status: false, LastUpdatedAt: t0.Add(2 * time.Second),
		}))

		states, err := store.ListBySubject(ctx, subjectID)
		require.NoError(t, err)
		require.Len(t, states, 1)
		assert.False(t, states[0].Status)
		assert.Equal(t, t0.Add(2*time.Second), states[0].LastUpdatedAt.UTC())
	})
}
