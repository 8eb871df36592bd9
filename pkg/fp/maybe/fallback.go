package maybe

// Fallback is what Or falls back to for an unknown Maybe: either a literal
// value or a supplier evaluated on demand.
type Fallback[T any] interface {
	resolve() T
}

type literal[T any] struct {
	value T
}

type supplier[T any] struct {
	fn func() T
}

// Literal falls back to value as is.
func Literal[T any](value T) Fallback[T] {
	return literal[T]{value: value}
}

// Supplier falls back to the result of calling fn. fn is only called when
// the fallback is needed.
func Supplier[T any](fn func() T) Fallback[T] {
	return supplier[T]{fn: fn}
}

func (l literal[T]) resolve() T {
	return l.value
}

func (s supplier[T]) resolve() T {
	return s.fn()
}
