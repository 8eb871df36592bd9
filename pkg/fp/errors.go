package fp

import (
	"reflect"

	"github.com/pkg/errors"
)

var (
	// ErrNullValue is raised when a container that must hold a value is
	// constructed with nil.
	ErrNullValue = errors.New("value must not be nil")

	// ErrNoSuchValue is returned when a value is read from an empty container.
	ErrNoSuchValue = errors.New("no value present")
)

// NullValue returns ErrNullValue annotated with the caller's stack.
func NullValue() error {
	return errors.WithStack(ErrNullValue)
}

// NoSuchValue returns ErrNoSuchValue annotated with the caller's stack.
func NoSuchValue() error {
	return errors.WithStack(ErrNoSuchValue)
}

// SameError compares two failure errors loosely: identical errors, errors
// matching each other through errors.Is in either direction, and errors of
// the same dynamic type carrying the same message are all the same error.
func SameError(a, b error) bool {
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b)
	}

	if errors.Is(a, b) || errors.Is(b, a) {
		return true
	}

	return reflect.TypeOf(a) == reflect.TypeOf(b) && a.Error() == b.Error()
}
