package audit

import "time"

// Actions recorded in the audit trail.
const (
	ActionUserCreated         = "user_created"
	ActionUserLoggedIn        = "user_logged_in"
	ActionUserLoggedOut       = "user_logged_out"
	ActionAssessmentSubmitted = "assessment_submitted"
	ActionComplianceToggled   = "compliance_toggled"
	ActionProfileUpdated      = "profile_updated"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	SubjectID string    `json:"subject_id"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail,omitempty"`
}
