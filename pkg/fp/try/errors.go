package try

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

// PanicError carries a recovered panic value that was not itself an error.
type PanicError struct {
	Value any
	cause error
}

func newPanicError(value any) *PanicError {
	return &PanicError{
		Value: value,
		cause: errors.Errorf("panic: %v", value),
	}
}

func (e *PanicError) Error() string {
	return e.cause.Error()
}

// Format prints the recovery stack with %+v.
func (e *PanicError) Format(s fmt.State, verb rune) {
	if f, ok := e.cause.(fmt.Formatter); ok {
		f.Format(s, verb)
		return
	}
	fmt.Fprint(s, e.Error())
}

func recovered(value any) error {
	if err, ok := value.(error); ok {
		return err
	}
	return newPanicError(value)
}

func isCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
