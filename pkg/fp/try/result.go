package try

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/monads/pkg/fp"
	"github.com/ib-77/monads/pkg/fp/optional"
)

var _ fp.Outcome[int] = Result[int]{}

// Result is either a success holding a non-nil value or a failure holding
// an error. Every constructed Result gets its own id; combinators that hand
// back the receiver keep it.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
}

// Successful returns a success. It panics with an error matching
// fp.ErrNullValue if value is nil.
func Successful[T any](value T) Result[T] {
	if fp.IsNil(value) {
		panic(fp.NullValue())
	}
	return Result[T]{
		value:     value,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failure returns a failure carrying err verbatim.
func Failure[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Perform runs action and wraps its outcome. A returned error, or a panic
// raised by action, becomes a failure. Error panics are kept as is, other
// panic values are wrapped in *PanicError. A nil value fails with
// fp.ErrNullValue.
func Perform[T any](action func() (T, error)) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = Failure[T](recovered(r))
		}
	}()

	v, err := action()
	if !fp.IsNil(err) {
		return Failure[T](err)
	}
	if fp.IsNil(v) {
		return Failure[T](fp.NullValue())
	}
	return Successful(v)
}

// failFrom re-types a failure, keeping its id, timestamp and error.
func failFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Value returns the success value, or T's zero value for a failure.
func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

// Get returns the value and the failure error.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

// IsCancel returns true for a failure caused by a cancelled or expired context.
func (r Result[T]) IsCancel() bool {
	return !r.isSuccess && isCancellation(r.err)
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// CreatedAt time creation (UTC)
func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// GetOrElse returns the value, or supplier's result for a failure.
func (r Result[T]) GetOrElse(supplier func() T) T {
	if r.isSuccess {
		return r.value
	}
	return supplier()
}

// OrElse returns the receiver on success and alternative's Result otherwise.
func (r Result[T]) OrElse(alternative func() Result[T]) Result[T] {
	if r.isSuccess {
		return r
	}
	return alternative()
}

// Recover turns a failure into a success computed from its error. The
// supplier runs through Perform, so a failing recovery is a new failure.
func (r Result[T]) Recover(supplier func(err error) T) Result[T] {
	if r.isSuccess {
		return r
	}
	return Perform(func() (T, error) {
		return supplier(r.err), nil
	})
}

// RecoverWith returns supplier's Result for a failure.
func (r Result[T]) RecoverWith(supplier func(err error) Result[T]) Result[T] {
	if r.isSuccess {
		return r
	}
	return supplier(r.err)
}

// FilterOrElse keeps a success whose value satisfies predicate and fails
// with errSupplier's error otherwise. Both callbacks run through Perform.
// A nil error from errSupplier fails with fp.ErrNullValue.
func (r Result[T]) FilterOrElse(predicate func(T) bool, errSupplier func() error) Result[T] {
	if !r.isSuccess {
		return r
	}
	return Perform(func() (T, error) {
		if predicate(r.value) {
			return r.value, nil
		}

		var zero T
		if err := errSupplier(); !fp.IsNil(err) {
			return zero, err
		}
		return zero, fp.NullValue()
	})
}

// ForEach calls consumer with a success value.
func (r Result[T]) ForEach(consumer func(T)) {
	if r.isSuccess {
		consumer(r.value)
	}
}

// Tee calls consumer with a success value and returns the receiver.
func (r Result[T]) Tee(consumer func(T)) Result[T] {
	r.ForEach(consumer)
	return r
}

// MapErr rewrites a failure's error.
func (r Result[T]) MapErr(mapper func(err error) error) Result[T] {
	if r.isSuccess {
		return r
	}
	return Failure[T](mapper(r.err))
}

func (r Result[T]) ToOptional() optional.Optional[T] {
	if r.isSuccess {
		return optional.Of(r.value)
	}
	return optional.Empty[T]()
}

// Equal holds for the same Result, for two successes with equal values and
// for two failures with the same error (see fp.SameError).
func (r Result[T]) Equal(other Result[T]) bool {
	if r.id == other.id {
		return true
	}
	if r.isSuccess != other.isSuccess {
		return false
	}
	if r.isSuccess {
		return fp.Equal(r.value, other.GetOrElse(fp.Zero[T]))
	}
	return fp.SameError(r.err, other.err)
}

func (r Result[T]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Failure(%v)", r.err)
}
