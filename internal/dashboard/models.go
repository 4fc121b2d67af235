package dashboard

import (
	"time"

	"farmguard/internal/alert"
)

// RiskNotAssessed is the empty-state sentinel used when a subject has no
// assessment history. It is a defined contract, not an error.
const RiskNotAssessed = "N/A"

// HistoryPoint is one charted entry of the score series.
type HistoryPoint struct {
	Date  time.Time `json:"date"`
	Score int       `json:"score"`
}

// Stats is the derived dashboard read model. It is recomputed on every read
// from assessments, compliance state, and the alert feed; it is never a
// source of truth.
type Stats struct {
	CurrentRisk    string         `json:"current_risk"`
	CurrentScore   int            `json:"current_score"`
	HistorySeries  []HistoryPoint `json:"history_series"`
	ComplianceRate float64        `json:"compliance_rate"`
	AlertSummary   []alert.Alert  `json:"alert_summary"`
}
