// internal/rules/rules.go
package rules

import (
	"welfare-moa/internal/common/errors"
	"welfare-moa/internal/survey"
)

// ConditionType tags the closed set of condition variants.
type ConditionType string

const (
	ConditionAge            ConditionType = "age"
	ConditionAggregateScore ConditionType = "aggregate_score"
	ConditionExactAnswer    ConditionType = "exact_answer"
	ConditionOneOfAnswer    ConditionType = "one_of_answer"
)

// DefaultBonus is added for a satisfied bonus condition that declares no
// explicit bonus value.
const DefaultBonus = 10

// Condition is one declarative matching rule. Which fields apply depends
// on Type:
//
//	age:             MinAge / MaxAge (both optional, both checked)
//	aggregate_score: QuestionIDs + MinScore / MaxScore
//	exact_answer:    QuestionID + Value
//	one_of_answer:   QuestionID + Values
//
// Bonus is only read for bonus conditions; zero means DefaultBonus.
type Condition struct {
	Type        ConditionType `json:"type"`
	MinAge      *int          `json:"minAge,omitempty"`
	MaxAge      *int          `json:"maxAge,omitempty"`
	QuestionIDs []string      `json:"questionIds,omitempty"`
	MinScore    *int          `json:"minScore,omitempty"`
	MaxScore    *int          `json:"maxScore,omitempty"`
	QuestionID  string        `json:"questionId,omitempty"`
	Value       string        `json:"value,omitempty"`
	Values      []string      `json:"values,omitempty"`
	Bonus       int           `json:"bonus,omitempty"`
}

// BonusPoints returns the points this condition is worth when satisfied.
func (c Condition) BonusPoints() int {
	if c.Bonus == 0 {
		return DefaultBonus
	}
	return c.Bonus
}

// IsSingleAnswer reports whether the condition references exactly one
// question's answer. Only these contribute canned reason phrases.
func (c Condition) IsSingleAnswer() bool {
	return c.Type == ConditionExactAnswer || c.Type == ConditionOneOfAnswer
}

// MatchingRule is the rule set for one program.
type MatchingRule struct {
	RequiredConditions []Condition `json:"requiredConditions"`
	BonusConditions    []Condition `json:"bonusConditions"`
}

// Table maps program ids to their matching rules. Programs absent from
// the table score the engine's default.
type Table map[string]MatchingRule

// DefaultTable returns the built-in rule table.
func DefaultTable() Table {
	return matchingRules
}

// EvalContext is what conditions are evaluated against.
type EvalContext struct {
	Age       int
	Responses survey.Responses
	Bank      *survey.Bank
}

// Evaluate dispatches on the condition type and reports whether the
// condition holds. An unknown type is an error so a malformed rule entry
// surfaces instead of silently passing.
func Evaluate(cond Condition, ctx EvalContext) (bool, error) {
	switch cond.Type {
	case ConditionAge:
		if cond.MinAge != nil && ctx.Age < *cond.MinAge {
			return false, nil
		}
		if cond.MaxAge != nil && ctx.Age > *cond.MaxAge {
			return false, nil
		}
		return true, nil

	case ConditionAggregateScore:
		total := ctx.Bank.AggregateScore(cond.QuestionIDs, ctx.Responses)
		if cond.MinScore != nil && total < *cond.MinScore {
			return false, nil
		}
		if cond.MaxScore != nil && total > *cond.MaxScore {
			return false, nil
		}
		return true, nil

	case ConditionExactAnswer:
		answer, ok := ctx.Responses[cond.QuestionID]
		if !ok {
			return false, nil
		}
		return answer.Matches(cond.Value), nil

	case ConditionOneOfAnswer:
		answer, ok := ctx.Responses[cond.QuestionID]
		if !ok {
			return false, nil
		}
		return answer.MatchesAny(cond.Values), nil

	default:
		return false, errors.NewRuleEvaluationError(string(cond.Type), "unknown condition type")
	}
}

// EvaluateRequired walks the required conditions in declared order and
// returns the index of the first failing one, or -1 when all hold. The
// gate result is order-independent (logical AND); the index only feeds
// trace logging.
func EvaluateRequired(conds []Condition, ctx EvalContext) (int, error) {
	for i, cond := range conds {
		ok, err := Evaluate(cond, ctx)
		if err != nil {
			return i, err
		}
		if !ok {
			return i, nil
		}
	}
	return -1, nil
}
