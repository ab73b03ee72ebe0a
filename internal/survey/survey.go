// internal/survey/survey.go
package survey

import (
	"welfare-moa/internal/common/errors"
)

// CategoryGroup namespaces a question (h*, l*, e* ids).
type CategoryGroup string

const (
	GroupHealth   CategoryGroup = "health"
	GroupLiving   CategoryGroup = "living"
	GroupEconomic CategoryGroup = "economic"
)

// InputKind is how a question is answered.
type InputKind string

const (
	SingleSelect InputKind = "single-select"
	MultiSelect  InputKind = "multi-select"
)

// Option is one selectable answer with its scoring weight.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Score int    `json:"score"`
}

// Question is one intake survey question. Static data.
type Question struct {
	ID       string        `json:"id"`
	Group    CategoryGroup `json:"categoryGroup"`
	Prompt   string        `json:"question"`
	Kind     InputKind     `json:"type"`
	Options  []Option      `json:"options"`
	Required bool          `json:"required"`
}

// OptionScore returns the weight of the option with the given value, or
// 0 when the value is not defined for this question. Stored answers that
// no longer match an option are silently worth nothing.
func (q Question) OptionScore(value string) int {
	for _, opt := range q.Options {
		if opt.Value == value {
			return opt.Score
		}
	}
	return 0
}

// Bank is the read-only question store.
type Bank struct {
	questions []Question
	byID      map[string]int
}

// NewBank builds a bank from the given questions.
func NewBank(questions []Question) *Bank {
	b := &Bank{
		questions: questions,
		byID:      make(map[string]int, len(questions)),
	}
	for i, q := range questions {
		b.byID[q.ID] = i
	}
	return b
}

// DefaultBank returns a bank over the built-in questions.
func DefaultBank() *Bank {
	return NewBank(surveyQuestions)
}

// Get looks up a question by id.
func (b *Bank) Get(id string) (Question, error) {
	i, ok := b.byID[id]
	if !ok {
		return Question{}, errors.NewQuestionNotFoundError(id)
	}
	return b.questions[i], nil
}

// All returns every question in declaration order.
func (b *Bank) All() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// ByGroup returns the questions of one category group in order.
func (b *Bank) ByGroup(group CategoryGroup) []Question {
	var out []Question
	for _, q := range b.questions {
		if q.Group == group {
			out = append(out, q)
		}
	}
	return out
}

// AggregateScore sums the option weights of the user's answers across the
// given question ids. Unanswered questions and unknown question ids or
// option values contribute 0; this never errors.
func (b *Bank) AggregateScore(questionIDs []string, responses Responses) int {
	total := 0
	for _, id := range questionIDs {
		answer, ok := responses[id]
		if !ok {
			continue
		}
		i, ok := b.byID[id]
		if !ok {
			continue
		}
		q := b.questions[i]
		for _, value := range answer.Selected() {
			total += q.OptionScore(value)
		}
	}
	return total
}
