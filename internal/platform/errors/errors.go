package apperrors

import "errors"

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNotFound        = errors.New("not found")
	ErrNoSession       = errors.New("no active session")
	ErrDuplicateCourse = errors.New("course already planned")
	ErrNoPendingCourse = errors.New("no pending course")
	ErrInvalidInput    = errors.New("invalid input")
)

// ValidationError carries the backend's structured detail message, e.g. the
// semester-deletion guard ("Cannot delete semester with courses ...").
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return "validation failed"
	}
	return e.Detail
}

// AsValidation unwraps err into a *ValidationError when possible.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
