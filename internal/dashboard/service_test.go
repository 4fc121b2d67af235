package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmguard/internal/alert"
	"farmguard/internal/assessment"
)

type stubHistory struct {
	records []assessment.Record
	err     error
}

func (s stubHistory) History(context.Context, string) ([]assessment.Record, error) {
	return s.records, s.err
}

type stubRater struct {
	rate float64
	err  error
}

func (s stubRater) CompletionRate(context.Context, string) (float64, error) {
	return s.rate, s.err
}

type stubFeed struct {
	alerts []alert.Alert
	err    error
}

func (s stubFeed) Summary(_ context.Context, n int) ([]alert.Alert, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := s.alerts
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out, nil
}

func TestOverview_EmptyEverything(t *testing.T) {
	svc := NewService(stubHistory{}, stubRater{}, stubFeed{}, 3)
	stats, err := svc.Overview(context.Background(), "subject-1")
	require.NoError(t, err)

	assert.Equal(t, RiskNotAssessed, stats.CurrentRisk)
	assert.Equal(t, 0, stats.CurrentScore)
	assert.NotNil(t, stats.HistorySeries)
	assert.Empty(t, stats.HistorySeries)
	assert.Equal(t, 0.0, stats.ComplianceRate)
}

func TestOverview_CurrentFromNewestRecord(t *testing.T) {
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	records := []assessment.Record{
		{ID: "r3", Score: 80, RiskLevel: assessment.RiskLow, CreatedAt: now},
		{ID: "r2", Score: 50, RiskLevel: assessment.RiskMedium, CreatedAt: now.Add(-time.Hour)},
		{ID: "r1", Score: 20, RiskLevel: assessment.RiskHigh, CreatedAt: now.Add(-2 * time.Hour)},
	}
	svc := NewService(stubHistory{records: records}, stubRater{rate: 0.5}, stubFeed{}, 3)

	stats, err := svc.Overview(context.Background(), "subject-1")
	require.NoError(t, err)
	assert.Equal(t, "Low", stats.CurrentRisk)
	assert.Equal(t, 80, stats.CurrentScore)
	assert.Equal(t, 0.5, stats.ComplianceRate)
}

func TestOverview_SeriesIsChronological(t *testing.T) {
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	records := []assessment.Record{
		{ID: "r3", Score: 80, CreatedAt: now},
		{ID: "r2", Score: 50, CreatedAt: now.Add(-time.Hour)},
		{ID: "r1", Score: 20, CreatedAt: now.Add(-2 * time.Hour)},
	}
	svc := NewService(stubHistory{records: records}, stubRater{}, stubFeed{}, 3)

	stats, err := svc.Overview(context.Background(), "subject-1")
	require.NoError(t, err)
	require.Len(t, stats.HistorySeries, 3)
	assert.Equal(t, []int{20, 50, 80}, []int{
		stats.HistorySeries[0].Score,
		stats.HistorySeries[1].Score,
		stats.HistorySeries[2].Score,
	})
	for i := 1; i < len(stats.HistorySeries); i++ {
		assert.True(t, stats.HistorySeries[i].Date.After(stats.HistorySeries[i-1].Date))
	}
}

func TestOverview_AlertSummaryTruncated(t *testing.T) {
	feed := stubFeed{alerts: []alert.Alert{
		{ID: "a1"}, {ID: "a2"}, {ID: "a3"}, {ID: "a4"}, {ID: "a5"},
	}}
	svc := NewService(stubHistory{}, stubRater{}, feed, 3)

	stats, err := svc.Overview(context.Background(), "subject-1")
	require.NoError(t, err)
	assert.Len(t, stats.AlertSummary, 3)
}

func TestOverview_PropagatesErrors(t *testing.T) {
	boom := assert.AnError
	svc := NewService(stubHistory{err: boom}, stubRater{}, stubFeed{}, 3)
	_, err := svc.Overview(context.Background(), "subject-1")
	assert.ErrorIs(t, err, boom)
}
