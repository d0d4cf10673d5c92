package quiz

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed banks/java-basics.yaml
var defaultBankYAML []byte

// Bank is a titled, ordered set of questions.
type Bank struct {
	ID        string     `yaml:"id"`
	Title     string     `yaml:"title"`
	Questions []Question `yaml:"questions"`
	Source    string     `yaml:"-"` // File the bank was loaded from, empty if embedded
}

// Len returns the number of questions.
func (b *Bank) Len() int {
	return len(b.Questions)
}

// Validate reports every invalid question, each tagged with its position.
func (b *Bank) Validate() error {
	if len(b.Questions) == 0 {
		return ErrEmptyBank
	}

	var errs []error
	seen := make(map[string]int, len(b.Questions))
	for i, q := range b.Questions {
		if err := q.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("question %d (%s): %w", i+1, q.ID, err))
		}
		if prev, dup := seen[q.ID]; dup {
			errs = append(errs, fmt.Errorf("question %d: duplicate id %q (first at %d)", i+1, q.ID, prev+1))
		} else {
			seen[q.ID] = i
		}
	}
	return errors.Join(errs...)
}

// ParseBank decodes a YAML question bank and fills in missing IDs.
// The bank is not validated; call Validate before playing it.
func ParseBank(data []byte) (*Bank, error) {
	var b Bank
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("quiz: yaml unmarshal: %w", err)
	}

	for i := range b.Questions {
		if b.Questions[i].ID == "" {
			b.Questions[i].ID = fmt.Sprintf("q%d", i+1)
		}
	}
	if b.Title == "" {
		b.Title = b.ID
	}
	return &b, nil
}

// DefaultBank returns the embedded Java Basics bank.
func DefaultBank() *Bank {
	b, err := ParseBank(defaultBankYAML)
	if err != nil {
		panic(fmt.Sprintf("quiz: embedded bank is invalid: %v", err))
	}
	return b
}
