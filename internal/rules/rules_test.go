// internal/rules/rules_test.go
package rules

import (
	"testing"

	"welfare-moa/internal/common/errors"
	"welfare-moa/internal/survey"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(age int, responses survey.Responses) EvalContext {
	return EvalContext{
		Age:       age,
		Responses: responses,
		Bank:      survey.DefaultBank(),
	}
}

func TestEvaluate_AgeCondition(t *testing.T) {
	tests := []struct {
		name string
		cond Condition
		age  int
		want bool
	}{
		{"above min", Condition{Type: ConditionAge, MinAge: intPtr(65)}, 70, true},
		{"exactly min", Condition{Type: ConditionAge, MinAge: intPtr(65)}, 65, true},
		{"below min", Condition{Type: ConditionAge, MinAge: intPtr(65)}, 64, false},
		{"within band", Condition{Type: ConditionAge, MinAge: intPtr(60), MaxAge: intPtr(75)}, 75, true},
		{"above band", Condition{Type: ConditionAge, MinAge: intPtr(60), MaxAge: intPtr(75)}, 76, false},
		{"no bounds always holds", Condition{Type: ConditionAge}, 40, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.cond, testContext(tt.age, survey.Responses{}))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_AggregateScoreCondition(t *testing.T) {
	// e1=insufficient scores 4, e3=needed scores 4.
	responses := survey.Responses{
		"e1": survey.SingleAnswer("insufficient"),
		"e3": survey.SingleAnswer("needed"),
	}

	tests := []struct {
		name string
		cond Condition
		want bool
	}{
		{
			"meets min",
			Condition{Type: ConditionAggregateScore, QuestionIDs: []string{"e1", "e3"}, MinScore: intPtr(8)},
			true,
		},
		{
			"below min",
			Condition{Type: ConditionAggregateScore, QuestionIDs: []string{"e1", "e3"}, MinScore: intPtr(9)},
			false,
		},
		{
			"within max",
			Condition{Type: ConditionAggregateScore, QuestionIDs: []string{"e1", "e3"}, MaxScore: intPtr(10)},
			true,
		},
		{
			"above max",
			Condition{Type: ConditionAggregateScore, QuestionIDs: []string{"e1", "e3"}, MaxScore: intPtr(7)},
			false,
		},
		{
			"unanswered questions contribute zero",
			Condition{Type: ConditionAggregateScore, QuestionIDs: []string{"h1", "h3"}, MaxScore: intPtr(0)},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.cond, testContext(70, responses))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_ExactAnswerCondition(t *testing.T) {
	tests := []struct {
		name      string
		cond      Condition
		responses survey.Responses
		want      bool
	}{
		{
			"single answer matches",
			Condition{Type: ConditionExactAnswer, QuestionID: "l1", Value: "alone"},
			survey.Responses{"l1": survey.SingleAnswer("alone")},
			true,
		},
		{
			"single answer differs",
			Condition{Type: ConditionExactAnswer, QuestionID: "l1", Value: "alone"},
			survey.Responses{"l1": survey.SingleAnswer("with-family")},
			false,
		},
		{
			"multi answer contains value",
			Condition{Type: ConditionExactAnswer, QuestionID: "e4", Value: "none"},
			survey.Responses{"e4": survey.MultiAnswer("none")},
			true,
		},
		{
			"multi answer without value",
			Condition{Type: ConditionExactAnswer, QuestionID: "e4", Value: "none"},
			survey.Responses{"e4": survey.MultiAnswer("national-pension", "private-pension")},
			false,
		},
		{
			"unanswered question fails",
			Condition{Type: ConditionExactAnswer, QuestionID: "l1", Value: "alone"},
			survey.Responses{},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.cond, testContext(70, tt.responses))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_OneOfAnswerCondition(t *testing.T) {
	cond := Condition{Type: ConditionOneOfAnswer, QuestionID: "l2", Values: []string{"rarely", "never"}}

	tests := []struct {
		name      string
		responses survey.Responses
		want      bool
	}{
		{"first value", survey.Responses{"l2": survey.SingleAnswer("rarely")}, true},
		{"second value", survey.Responses{"l2": survey.SingleAnswer("never")}, true},
		{"other value", survey.Responses{"l2": survey.SingleAnswer("always")}, false},
		{"unanswered", survey.Responses{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(cond, testContext(70, tt.responses))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_UnknownConditionType(t *testing.T) {
	_, err := Evaluate(Condition{Type: "regex_match"}, testContext(70, survey.Responses{}))

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeRuleEvaluationFailed, errors.CodeOf(err))
}

func TestEvaluateRequired(t *testing.T) {
	conds := []Condition{
		{Type: ConditionAge, MinAge: intPtr(65)},
		{Type: ConditionExactAnswer, QuestionID: "l1", Value: "alone"},
	}

	t.Run("all hold", func(t *testing.T) {
		failedAt, err := EvaluateRequired(conds, testContext(70, survey.Responses{
			"l1": survey.SingleAnswer("alone"),
		}))
		require.NoError(t, err)
		assert.Equal(t, -1, failedAt)
	})

	t.Run("first fails", func(t *testing.T) {
		failedAt, err := EvaluateRequired(conds, testContext(60, survey.Responses{
			"l1": survey.SingleAnswer("alone"),
		}))
		require.NoError(t, err)
		assert.Equal(t, 0, failedAt)
	})

	t.Run("second fails", func(t *testing.T) {
		failedAt, err := EvaluateRequired(conds, testContext(70, survey.Responses{}))
		require.NoError(t, err)
		assert.Equal(t, 1, failedAt)
	})

	t.Run("empty set holds", func(t *testing.T) {
		failedAt, err := EvaluateRequired(nil, testContext(70, survey.Responses{}))
		require.NoError(t, err)
		assert.Equal(t, -1, failedAt)
	})
}

func TestBonusPoints(t *testing.T) {
	assert.Equal(t, 10, Condition{}.BonusPoints())
	assert.Equal(t, 15, Condition{Bonus: 15}.BonusPoints())
}

func TestDefaultTable_CoversCatalogIDs(t *testing.T) {
	table := DefaultTable()

	for _, id := range []string{
		"basic-pension", "long-term-care", "energy-voucher",
		"senior-housing", "health-checkup", "senior-job", "transportation-support",
	} {
		_, ok := table[id]
		assert.True(t, ok, "missing rule for %s", id)
	}
}
