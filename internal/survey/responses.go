// internal/survey/responses.go
package survey

import "encoding/json"

// Answer holds what the user selected for one question: a single value
// for single-select questions, a value set for multi-select ones.
type Answer struct {
	Value  string   `json:"value,omitempty"`
	Values []string `json:"values,omitempty"`
}

// SingleAnswer wraps a single-select choice.
func SingleAnswer(value string) Answer {
	return Answer{Value: value}
}

// MultiAnswer wraps a multi-select choice.
func MultiAnswer(values ...string) Answer {
	return Answer{Values: values}
}

// IsMulti reports whether the answer is a value set.
func (a Answer) IsMulti() bool {
	return a.Values != nil
}

// Selected returns the chosen values regardless of answer shape.
func (a Answer) Selected() []string {
	if a.IsMulti() {
		return a.Values
	}
	if a.Value == "" {
		return nil
	}
	return []string{a.Value}
}

// Matches reports whether the answer selects the given value. A
// single-select answer must equal it; a multi-select answer must contain
// it.
func (a Answer) Matches(value string) bool {
	for _, v := range a.Selected() {
		if v == value {
			return true
		}
	}
	return false
}

// MatchesAny reports whether the answer selects any of the given values.
func (a Answer) MatchesAny(values []string) bool {
	for _, v := range values {
		if a.Matches(v) {
			return true
		}
	}
	return false
}

// MarshalJSON flattens the answer to the wire shape the intake form
// produces: a bare string for single-select, an array for multi-select.
func (a Answer) MarshalJSON() ([]byte, error) {
	if a.IsMulti() {
		return json.Marshal(a.Values)
	}
	return json.Marshal(a.Value)
}

// UnmarshalJSON accepts either a bare string or an array of strings.
func (a *Answer) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*a = Answer{Value: single}
		return nil
	}
	var multi []string
	if err := json.Unmarshal(data, &multi); err != nil {
		return err
	}
	*a = Answer{Values: multi}
	return nil
}

// Responses maps question ids to answers. Missing entries mean the user
// skipped the question; the engine treats those as failing any condition
// that needs them.
type Responses map[string]Answer
