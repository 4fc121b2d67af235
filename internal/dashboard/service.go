package dashboard

import (
	"context"

	"farmguard/internal/alert"
	"farmguard/internal/assessment"
)

// HistoryProvider supplies the subject's recent assessments, newest first.
type HistoryProvider interface {
	History(ctx context.Context, subjectID string) ([]assessment.Record, error)
}

// ComplianceRater supplies the subject's completion rate.
type ComplianceRater interface {
	CompletionRate(ctx context.Context, subjectID string) (float64, error)
}

// AlertFeed supplies the truncated alert summary.
type AlertFeed interface {
	Summary(ctx context.Context, n int) ([]alert.Alert, error)
}

// Service assembles the dashboard read model. It is stateless, never
// writes, and tolerates any subset of its inputs being empty.
type Service struct {
	history    HistoryProvider
	compliance ComplianceRater
	alerts     AlertFeed
	summaryN   int
}

func NewService(history HistoryProvider, compliance ComplianceRater, alerts AlertFeed, summaryN int) *Service {
	return &Service{
		history:    history,
		compliance: compliance,
		alerts:     alerts,
		summaryN:   summaryN,
	}
}

// Overview composes scorer output, ledger rollup, and the alert feed into
// the dashboard payload.
func (s *Service) Overview(ctx context.Context, subjectID string) (Stats, error) {
	records, err := s.history.History(ctx, subjectID)
	if err != nil {
		return Stats{}, err
	}

	rate, err := s.compliance.CompletionRate(ctx, subjectID)
	if err != nil {
		return Stats{}, err
	}

	summary, err := s.alerts.Summary(ctx, s.summaryN)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		CurrentRisk:    RiskNotAssessed,
		CurrentScore:   0,
		HistorySeries:  buildSeries(records),
		ComplianceRate: rate,
		AlertSummary:   summary,
	}
	if len(records) > 0 {
		stats.CurrentRisk = string(records[0].RiskLevel)
		stats.CurrentScore = records[0].Score
	}
	return stats, nil
}

// buildSeries reverses the newest-first storage order into chronological
// order for charting. An empty history yields an empty, non-nil series.
func buildSeries(records []assessment.Record) []HistoryPoint {
	series := make([]HistoryPoint, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		series = append(series, HistoryPoint{
			Date:  records[i].CreatedAt,
			Score: records[i].Score,
		})
	}
	return series
}
