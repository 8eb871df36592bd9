package try

import (
	"context"
	"iter"
)

// FromChan reads results from in until it is closed and yields them in
// order. Once ctx is done a single failure carrying ctx.Err() is yielded and
// reading stops.
func FromChan[T any](ctx context.Context, in <-chan Result[T]) iter.Seq[Result[T]] {
	return func(yield func(Result[T]) bool) {
		for {
			if ctx.Err() != nil {
				yield(Failure[T](ctx.Err()))
				return
			}

			select {
			case <-ctx.Done():
				yield(Failure[T](ctx.Err()))
				return
			case r, ok := <-in:
				if !ok {
					return
				}
				if !yield(r) {
					return
				}
			}
		}
	}
}
