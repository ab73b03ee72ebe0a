// internal/rules/data.go
package rules

func intPtr(v int) *int { return &v }

// matchingRules is the built-in rule table. Programs not listed here
// (none today, overlays may add some) fall back to the engine default.
var matchingRules = Table{
	"basic-pension": {
		RequiredConditions: []Condition{
			{Type: ConditionAge, MinAge: intPtr(65)},
			{Type: ConditionAggregateScore, QuestionIDs: []string{"e1", "e3"}, MinScore: intPtr(8)},
		},
		BonusConditions: []Condition{
			{Type: ConditionExactAnswer, QuestionID: "e4", Value: "none", Bonus: 10},
		},
	},
	"long-term-care": {
		RequiredConditions: []Condition{
			{Type: ConditionAge, MinAge: intPtr(65)},
			{Type: ConditionAggregateScore, QuestionIDs: []string{"h3", "h4"}, MaxScore: intPtr(15)},
		},
		BonusConditions: []Condition{
			{Type: ConditionExactAnswer, QuestionID: "l1", Value: "alone", Bonus: 15},
			{Type: ConditionOneOfAnswer, QuestionID: "l2", Values: []string{"rarely", "never"}, Bonus: 10},
		},
	},
	"energy-voucher": {
		RequiredConditions: []Condition{
			{Type: ConditionAggregateScore, QuestionIDs: []string{"e1", "e3"}, MaxScore: intPtr(10)},
		},
	},
	"senior-housing": {
		RequiredConditions: []Condition{
			{Type: ConditionAge, MinAge: intPtr(65)},
			{Type: ConditionOneOfAnswer, QuestionID: "l4", Values: []string{"poor", "very-poor"}},
		},
		BonusConditions: []Condition{
			{Type: ConditionAggregateScore, QuestionIDs: []string{"e1"}, MaxScore: intPtr(7), Bonus: 10},
		},
	},
	"health-checkup": {
		RequiredConditions: []Condition{
			{Type: ConditionAge, MinAge: intPtr(66)},
		},
		BonusConditions: []Condition{
			{Type: ConditionExactAnswer, QuestionID: "h4", Value: "no", Bonus: 15},
		},
	},
	"senior-job": {
		RequiredConditions: []Condition{
			{Type: ConditionAge, MinAge: intPtr(60), MaxAge: intPtr(75)},
			{Type: ConditionAggregateScore, QuestionIDs: []string{"h1", "h3"}, MinScore: intPtr(14)},
		},
		BonusConditions: []Condition{
			{Type: ConditionOneOfAnswer, QuestionID: "e1", Values: []string{"insufficient", "very-insufficient"}, Bonus: 10},
		},
	},
	"transportation-support": {
		RequiredConditions: []Condition{
			{Type: ConditionAge, MinAge: intPtr(65)},
		},
		BonusConditions: []Condition{
			{Type: ConditionOneOfAnswer, QuestionID: "h3", Values: []string{"moderate", "severe"}, Bonus: 10},
		},
	},
}
