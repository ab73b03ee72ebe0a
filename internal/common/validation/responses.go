// internal/common/validation/responses.go
package validation

import (
	"fmt"

	"welfare-moa/internal/survey"
)

// ValidationResult collects field-level findings for an intake
// submission. The scoring engine stays lenient (unknown values just
// contribute nothing); this layer exists so the intake form can show
// per-question feedback before submission.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ValidateResponses checks a response set against the question bank:
// required questions answered, question ids known, answer shape
// matching the question kind, and every selected value defined as an
// option.
func ValidateResponses(bank *survey.Bank, responses survey.Responses) *ValidationResult {
	errors := []ValidationError{}

	for _, q := range bank.All() {
		answer, answered := responses[q.ID]

		if !answered {
			if q.Required {
				errors = append(errors, ValidationError{
					Field:   q.ID,
					Message: "required question not answered",
					Code:    "REQUIRED_QUESTION_MISSING",
				})
			}
			continue
		}

		if q.Kind == survey.SingleSelect && answer.IsMulti() {
			errors = append(errors, ValidationError{
				Field:   q.ID,
				Message: "single-select question answered with multiple values",
				Code:    "ANSWER_SHAPE_MISMATCH",
			})
			continue
		}

		for _, value := range answer.Selected() {
			if !hasOption(q, value) {
				errors = append(errors, ValidationError{
					Field:   q.ID,
					Message: fmt.Sprintf("%q is not an option for this question", value),
					Code:    "INVALID_OPTION_VALUE",
				})
			}
		}
	}

	for id := range responses {
		if _, err := bank.Get(id); err != nil {
			errors = append(errors, ValidationError{
				Field:   id,
				Message: "unknown question id",
				Code:    "UNKNOWN_QUESTION",
			})
		}
	}

	return &ValidationResult{
		Valid:  len(errors) == 0,
		Errors: errors,
	}
}

func hasOption(q survey.Question, value string) bool {
	for _, opt := range q.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}

// GetErrorMessages returns a simple list of error messages.
func (vr *ValidationResult) GetErrorMessages() []string {
	messages := make([]string, len(vr.Errors))
	for i, err := range vr.Errors {
		messages[i] = fmt.Sprintf("%s: %s", err.Field, err.Message)
	}
	return messages
}

// HasErrors checks if validation has errors for a specific question.
func (vr *ValidationResult) HasErrors(field string) bool {
	for _, err := range vr.Errors {
		if err.Field == field {
			return true
		}
	}
	return false
}
