package review

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/quizforge/evalengine/internal/eval"
)

// Item pairs one question with one recorded submission.
type Item struct {
	ID        string        `yaml:"id" json:"id"`
	Question  eval.Question `yaml:"question" json:"question"`
	Submitted string        `yaml:"submitted,omitempty" json:"submitted,omitempty"`
	// SubmittedOrder carries the answer for sequence questions.
	SubmittedOrder []string `yaml:"submitted_order,omitempty" json:"submitted_order,omitempty"`
}

// Submission returns the payload in the shape the evaluator expects.
func (it Item) Submission() interface{} {
	if len(it.SubmittedOrder) > 0 {
		return it.SubmittedOrder
	}
	return it.Submitted
}

// Fixture is a reviewable set of answered questions.
type Fixture struct {
	Items []Item `yaml:"items" json:"items"`
}

// LoadFixture reads a YAML fixture file.
func LoadFixture(path string) (Fixture, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("os.ReadFile > %w", err)
	}
	var f Fixture
	if err := yaml.Unmarshal(contents, &f); err != nil {
		return Fixture{}, fmt.Errorf("yaml.Unmarshal > %w", err)
	}
	for i := range f.Items {
		if f.Items[i].ID == "" {
			f.Items[i].ID = fmt.Sprintf("item-%d", i+1)
		}
	}
	return f, nil
}
