package maybe

import (
	"fmt"

	"github.com/ib-77/monads/pkg/fp"
)

// Maybe is either known, carrying a non-nil value, or unknown.
type Maybe[T any] interface {
	IsKnown() bool
	// Or returns the known value or resolves fallback
	Or(fallback Fallback[T]) T
	OrValue(other T) T
	OrGet(fn func() T) T
	OrElse(other Maybe[T]) Maybe[T]
	Query(predicate func(T) bool) Maybe[bool]
	// Equal is true only between two known values that are equal
	Equal(other Maybe[T]) bool
	String() string

	sealed()
}

type known[T any] struct {
	value T
}

type unknown[T any] struct {
	// non-zero size: every Unknown call yields a distinct pointer
	_ byte
}

// Unknown returns a fresh unknown Maybe.
func Unknown[T any]() Maybe[T] {
	return &unknown[T]{}
}

// Definitely returns a known Maybe. It panics with an error matching
// fp.ErrNullValue if value is nil.
func Definitely[T any](value T) Maybe[T] {
	if fp.IsNil(value) {
		panic(fp.NullValue())
	}
	return &known[T]{value: value}
}

// Of returns Unknown for nil and Definitely(value) otherwise.
func Of[T any](value T) Maybe[T] {
	if fp.IsNil(value) {
		return Unknown[T]()
	}
	return Definitely(value)
}

// To maps a known value into a new known Maybe. For an unknown Maybe the
// mapper is never called.
func To[T, U any](m Maybe[T], mapper func(T) U) Maybe[U] {
	if k, ok := m.(*known[T]); ok {
		return Definitely(mapper(k.value))
	}
	return Unknown[U]()
}

func (k *known[T]) sealed() {}

func (k *known[T]) IsKnown() bool {
	return true
}

func (k *known[T]) Or(Fallback[T]) T {
	return k.value
}

func (k *known[T]) OrValue(T) T {
	return k.value
}

func (k *known[T]) OrGet(func() T) T {
	return k.value
}

func (k *known[T]) OrElse(Maybe[T]) Maybe[T] {
	return k
}

func (k *known[T]) Query(predicate func(T) bool) Maybe[bool] {
	return Definitely(predicate(k.value))
}

func (k *known[T]) Equal(other Maybe[T]) bool {
	o, ok := other.(*known[T])
	if !ok {
		return false
	}
	return k == o || fp.Equal(k.value, o.value)
}

func (k *known[T]) String() string {
	return fmt.Sprintf("Maybe[%v]", k.value)
}

func (u *unknown[T]) sealed() {}

func (u *unknown[T]) IsKnown() bool {
	return false
}

func (u *unknown[T]) Or(fallback Fallback[T]) T {
	return fallback.resolve()
}

func (u *unknown[T]) OrValue(other T) T {
	return other
}

func (u *unknown[T]) OrGet(fn func() T) T {
	return fn()
}

func (u *unknown[T]) OrElse(other Maybe[T]) Maybe[T] {
	return other
}

func (u *unknown[T]) Query(func(T) bool) Maybe[bool] {
	return Unknown[bool]()
}

func (u *unknown[T]) Equal(Maybe[T]) bool {
	return false
}

func (u *unknown[T]) String() string {
	return "Maybe.unknown"
}
