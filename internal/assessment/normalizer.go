package assessment

import (
	"farmguard/pkg/catalog"
	dErrors "farmguard/pkg/domainerrors"
)

// Normalizer validates raw questionnaire input and produces a canonical
// AnswerSet. It has no side effects.
type Normalizer struct {
	catalog *catalog.Catalog
}

func NewNormalizer(cat *catalog.Catalog) *Normalizer {
	return &Normalizer{catalog: cat}
}

// Normalize rejects unknown question ids, values outside {yes,no}, and
// missing required questions. The returned set is ordered by the catalog.
func (n *Normalizer) Normalize(raw map[string]string) (AnswerSet, error) {
	for id := range raw {
		if _, ok := n.catalog.Question(id); !ok {
			return nil, dErrors.New(dErrors.CodeBadRequest, "unknown question id: "+id)
		}
	}

	out := make(AnswerSet, 0, len(n.catalog.Questions))
	for _, q := range n.catalog.Questions {
		value, present := raw[q.ID]
		if !present {
			if q.Required {
				return nil, dErrors.New(dErrors.CodeBadRequest, "missing answer for required question: "+q.ID)
			}
			continue
		}
		switch Answer(value) {
		case AnswerYes, AnswerNo:
			out = append(out, QuestionAnswer{QuestionID: q.ID, Value: Answer(value)})
		default:
			return nil, dErrors.New(dErrors.CodeBadRequest, "invalid answer for question "+q.ID+": must be yes or no")
		}
	}
	return out, nil
}
