// Package quiz holds the multiple-choice quiz domain: question banks,
// the checkbox answer group and the grading session.
package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// MaxOptions is the number of answer checkboxes a question can fill.
const MaxOptions = 4

var (
	// ErrNoSelection is returned when an answer is submitted with nothing checked.
	ErrNoSelection = errors.New("quiz: no answer selected")
	// ErrNotAnswering is returned when submitting outside the answering phase.
	ErrNotAnswering = errors.New("quiz: not accepting answers")
	// ErrInvalidChoice is returned for a selection outside the option range.
	ErrInvalidChoice = errors.New("quiz: choice out of range")
	// ErrEmptyBank is returned for banks without questions.
	ErrEmptyBank = errors.New("quiz: bank has no questions")
)

// Question is a single multiple-choice question.
type Question struct {
	ID          string   `yaml:"id"`
	Prompt      string   `yaml:"prompt"`
	Options     []string `yaml:"options"`
	Correct     int      `yaml:"correct"`
	Explanation string   `yaml:"explanation,omitempty"`
}

// Validate checks that the question can be displayed and graded.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Prompt) == "" {
		return errors.New("empty prompt")
	}
	if len(q.Options) < 2 || len(q.Options) > MaxOptions {
		return fmt.Errorf("need 2 to %d options, got %d", MaxOptions, len(q.Options))
	}
	for i, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return fmt.Errorf("option %d is empty", i+1)
		}
	}
	if q.Correct < 0 || q.Correct >= len(q.Options) {
		return fmt.Errorf("correct index %d out of range [0, %d)", q.Correct, len(q.Options))
	}
	return nil
}

// IsCorrect reports whether choice is the correct option index.
func (q Question) IsCorrect(choice int) bool {
	return choice == q.Correct
}

// CorrectText returns the text of the correct option.
func (q Question) CorrectText() string {
	if q.Correct < 0 || q.Correct >= len(q.Options) {
		return ""
	}
	return q.Options[q.Correct]
}
