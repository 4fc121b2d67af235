package alert

import "time"

// Severity mirrors the risk level scale.
type Severity string

const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

// Alert is regional reference data. It is global and read-only; no subject
// owns an alert.
type Alert struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Severity    Severity  `json:"severity"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}
