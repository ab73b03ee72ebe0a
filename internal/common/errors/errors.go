// Package errors provides standardized error handling for the
// recommendation service.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Catalog / survey lookups
	ErrCodeProgramNotFound  ErrorCode = "PROGRAM_NOT_FOUND"
	ErrCodeQuestionNotFound ErrorCode = "QUESTION_NOT_FOUND"

	// Engine input
	ErrCodeInvalidProfile       ErrorCode = "INVALID_PROFILE"
	ErrCodeInvalidRequest       ErrorCode = "INVALID_REQUEST"
	ErrCodeRuleEvaluationFailed ErrorCode = "RULE_EVALUATION_FAILED"

	// Infrastructure
	ErrCodeDatabaseQueryFailed ErrorCode = "DATABASE_QUERY_FAILED"
	ErrCodeCacheUnavailable    ErrorCode = "CACHE_UNAVAILABLE"
	ErrCodeRegistryInvalid     ErrorCode = "REGISTRY_INVALID"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// CodeOf extracts the error code, defaulting to INTERNAL_ERROR for
// errors that did not originate here.
func CodeOf(err error) ErrorCode {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr.Code
	}
	return ErrCodeInternal
}

// NewProgramNotFoundError signals a catalog lookup miss. Callers must
// handle it; there is no fallback program.
func NewProgramNotFoundError(id string) *StandardError {
	return &StandardError{
		Code:      ErrCodeProgramNotFound,
		Message:   "welfare program not found",
		Details:   fmt.Sprintf("program id %q is not in the catalog", id),
		Retryable: false,
		Metadata:  map[string]interface{}{"programId": id},
		Timestamp: time.Now().UTC(),
	}
}

// NewQuestionNotFoundError signals a survey question lookup miss.
func NewQuestionNotFoundError(id string) *StandardError {
	return &StandardError{
		Code:      ErrCodeQuestionNotFound,
		Message:   "survey question not found",
		Details:   fmt.Sprintf("question id %q is not in the question bank", id),
		Retryable: false,
		Metadata:  map[string]interface{}{"questionId": id},
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidProfileError rejects a profile that fails engine
// preconditions (fail fast instead of computing a nonsensical age).
func NewInvalidProfileError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidProfile,
		Message:   "user profile failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidRequestError rejects a malformed API request body.
func NewInvalidRequestError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidRequest,
		Message:   "request failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRuleEvaluationError marks a malformed rule entry. Evaluation of the
// remaining catalog continues; the broken program is skipped.
func NewRuleEvaluationError(conditionType, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRuleEvaluationFailed,
		Message:   "matching rule evaluation failed",
		Details:   details,
		Retryable: false,
		Metadata:  map[string]interface{}{"conditionType": conditionType},
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseError wraps a failed store operation.
func NewDatabaseError(op string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseQueryFailed,
		Message:   "database operation failed",
		Details:   fmt.Sprintf("%s: %v", op, err),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCacheError wraps a failed cache operation. Retryable because the
// engine can always recompute.
func NewCacheError(op string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCacheUnavailable,
		Message:   "result cache unavailable",
		Details:   fmt.Sprintf("%s: %v", op, err),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewRegistryInvalidError reports an overlay file that failed schema
// validation.
func NewRegistryInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRegistryInvalid,
		Message:   "program registry overlay is invalid",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
