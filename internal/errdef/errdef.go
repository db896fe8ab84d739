package errdef

import (
	"errors"
	"fmt"
)

// NewNotFound creates an error representing an event or attendee that could not be found.
func NewNotFound(format string, a ...any) error {
	return notFound{fmt.Errorf(format, a...)}
}

type notFound struct{ error }

func (e notFound) Unwrap() error { return e.error }

// IsNotFound returns true if err is an error representing a resource that could not be found and false otherwise.
func IsNotFound(err error) bool {
	var e notFound
	return errors.As(err, &e)
}

// NewValidation creates an error representing input that violates the event schema.
func NewValidation(format string, a ...any) error {
	return validation{fmt.Errorf(format, a...)}
}

type validation struct{ error }

func (e validation) Unwrap() error { return e.error }

func IsValidation(err error) bool {
	var e validation
	return errors.As(err, &e)
}
