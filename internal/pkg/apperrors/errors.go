package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("resource already exists")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Store-level constraint errors. Repositories return these when the
// database reports a unique violation on the corresponding index.
var (
	ErrEmailTaken       = errors.New("email already taken")
	ErrSchoolNameTaken  = errors.New("school name already taken")
	ErrClassNameTaken   = errors.New("class name already taken")
	ErrSubCodeTaken     = errors.New("subject code already taken")
	ErrRollNumTaken     = errors.New("roll number already taken")
	ErrAttendanceExists = errors.New("attendance already recorded")
)

// CustomError carries the user-facing message alongside the sentinel it
// wraps. Error() returns the message so the controller boundary can emit
// it verbatim.
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a not-found error with a user-facing message
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrNotFound, Message: message}
}

// NewDuplicateError creates a duplicate-constraint error with a user-facing message
func NewDuplicateError(message string) error {
	return &CustomError{Err: ErrDuplicate, Message: message}
}

// NewInvalidCredentialsError creates a credentials error with a user-facing message
func NewInvalidCredentialsError(message string) error {
	return &CustomError{Err: ErrInvalidCredentials, Message: message}
}

// IsDomain reports whether err is a handled domain failure, as opposed to
// a store/infrastructure fault.
func IsDomain(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrDuplicate) ||
		errors.Is(err, ErrInvalidCredentials)
}
