package assessment

import (
	"farmguard/pkg/catalog"
)

// Level thresholds are exclusive lower bounds: a score of exactly 70 is
// Medium and a score of exactly 40 is High. These are policy constants, not
// derived values.
const (
	lowThreshold    = 70
	mediumThreshold = 40
)

// Scorer turns a normalized AnswerSet into a score and risk level. It is a
// pure function of the answer set and the question catalog.
type Scorer struct {
	catalog *catalog.Catalog
}

func NewScorer(cat *catalog.Catalog) *Scorer {
	return &Scorer{catalog: cat}
}

// Score starts from 100 and subtracts each question's weight for every "no"
// answer, clamping the running total to [0,100]. Output is well-defined for
// any valid AnswerSet.
func (s *Scorer) Score(answers AnswerSet) (int, RiskLevel) {
	score := 100
	for _, qa := range answers {
		if qa.Value != AnswerNo {
			continue
		}
		q, ok := s.catalog.Question(qa.QuestionID)
		if !ok {
			continue
		}
		score -= q.Weight
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, LevelFromScore(score)
}

// LevelFromScore derives the discrete risk level from a numeric score.
func LevelFromScore(score int) RiskLevel {
	switch {
	case score > lowThreshold:
		return RiskLow
	case score > mediumThreshold:
		return RiskMedium
	default:
		return RiskHigh
	}
}
