package try

import (
	"context"
	"errors"
	"iter"
	"slices"
)

// Sequence collects the values of results in order. The first failure, left
// to right, is returned as a new failure with the same error and the rest of
// the slice is not looked at. An empty slice yields a success holding an
// empty slice.
func Sequence[T any](results []Result[T]) Result[[]T] {
	return SequenceSeq(slices.Values(results))
}

// SequenceSeq is Sequence over a lazy sequence. Results are pulled in order,
// once each, and pulling stops at the first failure.
func SequenceSeq[T any](results iter.Seq[Result[T]]) Result[[]T] {
	values := make([]T, 0)
	for r := range results {
		if !r.isSuccess {
			return Failure[[]T](r.err)
		}
		values = append(values, r.value)
	}
	return Successful(values)
}

// SequenceChan is Sequence over a channel, read until it is closed. A
// context cancelled before the channel is drained yields a failure
// carrying ctx.Err().
func SequenceChan[T any](ctx context.Context, results <-chan Result[T]) Result[[]T] {
	return SequenceSeq(FromChan(ctx, results))
}

// Traverse applies fn to values in order and collects the successes. fn is
// not called for values after the first failure.
func Traverse[T, U any](values []T, fn func(T) Result[U]) Result[[]U] {
	return SequenceSeq(func(yield func(Result[U]) bool) {
		for _, v := range values {
			if !yield(fn(v)) {
				return
			}
		}
	})
}

// SequenceAll collects the values of results in order without stopping at
// a failure. If any failed, the result is a failure joining every error.
func SequenceAll[T any](results []Result[T]) Result[[]T] {
	values := make([]T, 0, len(results))
	var errs []error
	for _, r := range results {
		if r.isSuccess {
			values = append(values, r.value)
			continue
		}
		errs = append(errs, r.err)
	}

	if len(errs) > 0 {
		return Failure[[]T](errors.Join(errs...))
	}
	return Successful(values)
}

// Errors splits an error produced by SequenceAll back into its parts.
func Errors(err error) []error {
	if err == nil {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}
