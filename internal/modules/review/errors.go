package review

import "errors"

var (
	ErrInvalidRequest    = errors.New("invalid_request")
	ErrClassroomNotFound = errors.New("classroom_not_found")
)

// ValidationError carries the field->tag map from struct validation so the
// handler can report which fields failed and why.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "invalid_request" }
