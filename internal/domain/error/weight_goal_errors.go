// Package error defines domain-specific errors for the VitalTrack application.
package error

import "errors"

// Weight goal domain errors.
var (
	// ErrWeightGoalNotFound is returned when a goal id does not exist in the repository.
	ErrWeightGoalNotFound = errors.New("weight goal not found")

	// ErrInvalidTargetWeight is returned when the target weight is not strictly below the current weight.
	ErrInvalidTargetWeight = errors.New("target weight must be lower than current weight")

	// ErrUnsafeGoal is returned when the safety validator rejects the proposed goal.
	ErrUnsafeGoal = errors.New("goal does not meet safety criteria")

	// ErrUnderageUser is returned when the resolved user age is below the platform minimum.
	ErrUnderageUser = errors.New("user must be at least 18 years old")

	// ErrInvalidGoalField is returned when a request field fails a domain-level range or enum check.
	ErrInvalidGoalField = errors.New("invalid goal field")
)

// WeightGoalErrorCode defines error codes for weight goal errors.
// Format: WGL-XXYYYY where XX is category and YYYY is specific error.
type WeightGoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTargetWeight WeightGoalErrorCode = "WGL-010001"
	ErrCodeUnsafeGoal          WeightGoalErrorCode = "WGL-010002"
	ErrCodeUnderageUser        WeightGoalErrorCode = "WGL-010003"
	ErrCodeInvalidGoalField    WeightGoalErrorCode = "WGL-010004"
	ErrCodeMissingGoalFields   WeightGoalErrorCode = "WGL-010005"

	// Lookup errors (02XXXX)
	ErrCodeWeightGoalNotFound WeightGoalErrorCode = "WGL-020001"
)

// WeightGoalError represents a weight goal error with code, message and
// optional structured detail (for example the rejected validation result).
type WeightGoalError struct {
	Code    WeightGoalErrorCode
	Message string
	Err     error
	Details any
}

// Error implements the error interface.
func (e *WeightGoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *WeightGoalError) Unwrap() error {
	return e.Err
}

// NewWeightGoalError creates a new WeightGoalError with the given code and message.
func NewWeightGoalError(code WeightGoalErrorCode, message string, err error) *WeightGoalError {
	return &WeightGoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewWeightGoalErrorWithDetails creates a WeightGoalError carrying a
// structured detail payload for the caller to self-correct with.
func NewWeightGoalErrorWithDetails(code WeightGoalErrorCode, message string, err error, details any) *WeightGoalError {
	return &WeightGoalError{
		Code:    code,
		Message: message,
		Err:     err,
		Details: details,
	}
}
