package error

import "errors"

// User domain errors.
var (
	// ErrUserNotFound is returned when a user id does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when registering with an email already in use.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrInvalidCredentials is returned when email/password verification fails.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidUserField is returned when a registration field fails a domain check.
	ErrInvalidUserField = errors.New("invalid user field")

	// ErrGuardianAuthorizationRequired is returned when a minor registers without guardian consent.
	ErrGuardianAuthorizationRequired = errors.New("guardian authorization required for minors")

	// ErrWeakPassword is returned when the password does not meet minimum requirements.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrTermsNotAccepted is returned when the terms of service were not accepted.
	ErrTermsNotAccepted = errors.New("terms of service must be accepted")
)

// UserErrorCode defines error codes for user errors.
// Format: USR-XXYYYY where XX is category and YYYY is specific error.
type UserErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidUserField     UserErrorCode = "USR-010001"
	ErrCodeWeakPassword         UserErrorCode = "USR-010002"
	ErrCodeTermsNotAccepted     UserErrorCode = "USR-010003"
	ErrCodeGuardianAuthRequired UserErrorCode = "USR-010004"

	// Lookup errors (02XXXX)
	ErrCodeUserNotFound UserErrorCode = "USR-020001"

	// Conflict errors (03XXXX)
	ErrCodeEmailExists UserErrorCode = "USR-030001"

	// Auth errors (04XXXX)
	ErrCodeInvalidCredentials UserErrorCode = "USR-040001"
	ErrCodeMissingToken       UserErrorCode = "USR-040002"
	ErrCodeInvalidToken       UserErrorCode = "USR-040003"
	ErrCodeRateLimited        UserErrorCode = "USR-040004"
)

// UserError represents a user error with code and message.
type UserError struct {
	Code    UserErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *UserError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new UserError with the given code and message.
func NewUserError(code UserErrorCode, message string, err error) *UserError {
	return &UserError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
