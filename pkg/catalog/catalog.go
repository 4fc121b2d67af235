// Package catalog holds the static configuration for the questionnaire and the
// compliance checklist. Both are injected into the services at startup; the
// scoring and ledger logic never hard-codes ids or weights.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Question is one questionnaire entry. Weight is the deduction applied when
// the answer is "no".
type Question struct {
	ID       string `yaml:"id"`
	Text     string `yaml:"text"`
	Category string `yaml:"category"`
	Weight   int    `yaml:"weight"`
	Required bool   `yaml:"required"`
}

// CadenceGroup is how often a compliance item recurs.
type CadenceGroup string

const (
	CadenceDaily     CadenceGroup = "Daily"
	CadenceWeekly    CadenceGroup = "Weekly"
	CadenceMonthly   CadenceGroup = "Monthly"
	CadenceQuarterly CadenceGroup = "Quarterly"
)

// ComplianceItem is one recurring checklist task.
type ComplianceItem struct {
	ID      string       `yaml:"id"`
	Label   string       `yaml:"label"`
	Cadence CadenceGroup `yaml:"cadence"`
}

// Catalog bundles both static configuration sets.
type Catalog struct {
	Questions       []Question       `yaml:"questions"`
	ComplianceItems []ComplianceItem `yaml:"compliance_items"`
}

// Load reads a catalog from a YAML file and validates it.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate rejects malformed catalogs at configuration time. An empty
// compliance catalog would make the completion rate undefined, so it is
// refused here rather than at call time.
func (c *Catalog) Validate() error {
	if len(c.Questions) == 0 {
		return fmt.Errorf("catalog must define at least one question")
	}
	if len(c.ComplianceItems) == 0 {
		return fmt.Errorf("catalog must define at least one compliance item")
	}
	seen := make(map[string]bool, len(c.Questions))
	for _, q := range c.Questions {
		if q.ID == "" {
			return fmt.Errorf("question with empty id")
		}
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
		if q.Weight < 0 {
			return fmt.Errorf("question %q has negative weight", q.ID)
		}
	}
	items := make(map[string]bool, len(c.ComplianceItems))
	for _, item := range c.ComplianceItems {
		if item.ID == "" {
			return fmt.Errorf("compliance item with empty id")
		}
		if items[item.ID] {
			return fmt.Errorf("duplicate compliance item id %q", item.ID)
		}
		items[item.ID] = true
		switch item.Cadence {
		case CadenceDaily, CadenceWeekly, CadenceMonthly, CadenceQuarterly:
		default:
			return fmt.Errorf("compliance item %q has unknown cadence %q", item.ID, item.Cadence)
		}
	}
	return nil
}

// Question returns the question with the given id.
func (c *Catalog) Question(id string) (Question, bool) {
	for _, q := range c.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// HasComplianceItem reports whether id is part of the checklist.
func (c *Catalog) HasComplianceItem(id string) bool {
	for _, item := range c.ComplianceItems {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Default returns the built-in catalog used when no file is configured. The
// ten questions carry a uniform weight of 10, so a fully non-compliant farm
// scores 0 and a fully compliant one scores 100.
func Default() *Catalog {
	return &Catalog{
		Questions: []Question{
			{ID: "q1", Text: `Do you have a dedicated "Clean Zone" and "Dirty Zone" at the farm entrance?`, Category: "Entry Protocol", Weight: 10, Required: true},
			{ID: "q2", Text: "Are all visitors required to sign a logbook and wear protective clothing?", Category: "Entry Protocol", Weight: 10, Required: true},
			{ID: "q3", Text: "Is there a functional vehicle disinfection pit or spray system at the main gate?", Category: "Vehicle Control", Weight: 10, Required: true},
			{ID: "q4", Text: "Do you source animals only from certified disease-free suppliers?", Category: "Animal Health", Weight: 10, Required: true},
			{ID: "q5", Text: "Are new animals quarantined for at least 21 days before joining the herd?", Category: "Animal Health", Weight: 10, Required: true},
			{ID: "q6", Text: "Is there a daily protocol for cleaning and disinfecting water troughs?", Category: "Sanitation", Weight: 10, Required: true},
			{ID: "q7", Text: "Are animal carcasses disposed of according to national biosecurity standards?", Category: "Sanitation", Weight: 10, Required: true},
			{ID: "q8", Text: "Do you have a pest control program (rodents, birds, insects) in place?", Category: "Pest Control", Weight: 10, Required: true},
			{ID: "q9", Text: "Are staff trained in recognizing early symptoms of Notifiable Diseases?", Category: "Training", Weight: 10, Required: true},
			{ID: "q10", Text: "Is the farm perimeter fully fenced to prevent wild animal entry?", Category: "Containment", Weight: 10, Required: true},
		},
		ComplianceItems: []ComplianceItem{
			{ID: "c1", Label: "Disinfectant footbaths placed at all entry points", Cadence: CadenceDaily},
			{ID: "c2", Label: "Staff shower-in/shower-out protocol followed", Cadence: CadenceDaily},
			{ID: "c3", Label: "Feed storage bins checked for leaks and pests", Cadence: CadenceWeekly},
			{ID: "c4", Label: "Perimeter fence integrity inspection", Cadence: CadenceWeekly},
			{ID: "c5", Label: "Deep cleaning and sterilization of empty sheds", Cadence: CadenceMonthly},
			{ID: "c6", Label: "Biosecurity training for all workers completed", Cadence: CadenceQuarterly},
		},
	}
}
