package domain

import "fmt"

// ValidationError reports input that is malformed or outside the domain,
// such as an impossible hole number or an attempt to mutate an immutable
// field. The boundary maps it to 400.
type ValidationError struct {
	Msg string
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// ConflictError reports a uniqueness violation, such as a duplicate tee
// colour on a course or re-creating an existing scorecard. The boundary
// maps it to 409.
type ConflictError struct {
	Msg string
}

func NewConflictError(format string, args ...any) *ConflictError {
	return &ConflictError{Msg: fmt.Sprintf(format, args...)}
}

func (e *ConflictError) Error() string {
	return e.Msg
}

// NotFoundError reports a referenced entity that does not exist. The
// boundary maps it to 404.
type NotFoundError struct {
	Resource string
	ID       uint
}

func NewNotFoundError(resource string, id uint) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v with id %v does not exist", e.Resource, e.ID)
}
