package assessment

import (
	"time"
)

// Answer is a single questionnaire response value.
type Answer string

const (
	AnswerYes Answer = "yes"
	AnswerNo  Answer = "no"
)

// RiskLevel is the discrete classification derived from a numeric score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// QuestionAnswer pairs a question id with its canonical answer.
type QuestionAnswer struct {
	QuestionID string `json:"question_id"`
	Value      Answer `json:"value"`
}

// AnswerSet is a normalized, catalog-ordered set of answers. Ordering is
// fixed by the question catalog so downstream processing is deterministic.
type AnswerSet []QuestionAnswer

// Get returns the answer for a question id.
func (a AnswerSet) Get(questionID string) (Answer, bool) {
	for _, qa := range a {
		if qa.QuestionID == questionID {
			return qa.Value, true
		}
	}
	return "", false
}

// Record is one immutable assessment. It is created on submission and never
// mutated or deleted afterwards; history depth is bounded by the read path.
type Record struct {
	ID        string    `json:"id"`
	SubjectID string    `json:"subject_id"`
	Score     int       `json:"score"`
	RiskLevel RiskLevel `json:"risk_level"`
	Answers   AnswerSet `json:"answers"`
	CreatedAt time.Time `json:"created_at"`
}

// SubmitRequest is the transport payload for a new assessment.
type SubmitRequest struct {
	Answers map[string]string `json:"answers"`
}

// SubmitResult is returned to the client after a successful submission.
type SubmitResult struct {
	ID        string    `json:"id"`
	Score     int       `json:"score"`
	RiskLevel RiskLevel `json:"risk_level"`
	Date      time.Time `json:"date"`
}
