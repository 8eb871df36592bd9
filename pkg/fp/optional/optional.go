package optional

import (
	"fmt"

	"github.com/ib-77/monads/pkg/fp"
)

// Optional holds zero or one value of type T. The set of implementations is
// closed: a value is either present or absent.
type Optional[T any] interface {
	IsPresent() bool
	IsAbsent() bool
	// Get returns the value, or an error matching fp.ErrNoSuchValue
	Get() (T, error)
	// MustGet returns the value and panics when absent
	MustGet() T
	Filter(predicate func(T) bool) Optional[T]
	IfPresent(consumer func(T))
	IfPresentOrElse(consumer func(T), action func())
	Or(supplier func() Optional[T]) Optional[T]
	OrElse(other T) T
	OrElseGet(supplier func() T) T
	// OrElseErr returns the value, or the error produced by errSupplier
	OrElseErr(errSupplier func() error) (T, error)
	Equal(other Optional[T]) bool
	ToSlice() []T
	ToPtr() *T
	String() string

	sealed()
}

type present[T any] struct {
	value T
}

type absent[T any] struct{}

// Empty returns an Optional holding nothing.
func Empty[T any]() Optional[T] {
	return &absent[T]{}
}

// Of returns an Optional holding value. It panics with an error matching
// fp.ErrNullValue if value is nil.
func Of[T any](value T) Optional[T] {
	if fp.IsNil(value) {
		panic(fp.NullValue())
	}
	return &present[T]{value: value}
}

// OfNullable returns Empty for nil and Of(value) otherwise.
func OfNullable[T any](value T) Optional[T] {
	if fp.IsNil(value) {
		return Empty[T]()
	}
	return Of(value)
}

// FromPtr dereferences ptr into an Optional.
func FromPtr[T any](ptr *T) Optional[T] {
	if ptr == nil {
		return Empty[T]()
	}
	return OfNullable(*ptr)
}

// Map applies mapper to a present value. A mapper returning nil yields Empty.
func Map[T, U any](o Optional[T], mapper func(T) U) Optional[U] {
	if p, ok := o.(*present[T]); ok {
		return OfNullable(mapper(p.value))
	}
	return Empty[U]()
}

// FlatMap returns mapper's Optional for a present value without rewrapping it.
func FlatMap[T, U any](o Optional[T], mapper func(T) Optional[U]) Optional[U] {
	if p, ok := o.(*present[T]); ok {
		return mapper(p.value)
	}
	return Empty[U]()
}

func (p *present[T]) sealed() {}

func (p *present[T]) IsPresent() bool {
	return true
}

func (p *present[T]) IsAbsent() bool {
	return false
}

func (p *present[T]) Get() (T, error) {
	return p.value, nil
}

func (p *present[T]) MustGet() T {
	return p.value
}

func (p *present[T]) Filter(predicate func(T) bool) Optional[T] {
	if predicate(p.value) {
		return p
	}
	return Empty[T]()
}

func (p *present[T]) IfPresent(consumer func(T)) {
	consumer(p.value)
}

func (p *present[T]) IfPresentOrElse(consumer func(T), _ func()) {
	consumer(p.value)
}

func (p *present[T]) Or(func() Optional[T]) Optional[T] {
	return p
}

func (p *present[T]) OrElse(T) T {
	return p.value
}

func (p *present[T]) OrElseGet(func() T) T {
	return p.value
}

func (p *present[T]) OrElseErr(func() error) (T, error) {
	return p.value, nil
}

func (p *present[T]) Equal(other Optional[T]) bool {
	if o, ok := other.(*present[T]); ok {
		return p == o || fp.Equal(p.value, o.value)
	}
	return false
}

func (p *present[T]) ToSlice() []T {
	return []T{p.value}
}

func (p *present[T]) ToPtr() *T {
	v := p.value
	return &v
}

func (p *present[T]) String() string {
	return fmt.Sprintf("Optional[%v]", p.value)
}

func (a *absent[T]) sealed() {}

func (a *absent[T]) IsPresent() bool {
	return false
}

func (a *absent[T]) IsAbsent() bool {
	return true
}

func (a *absent[T]) Get() (T, error) {
	var zero T
	return zero, fp.NoSuchValue()
}

func (a *absent[T]) MustGet() T {
	panic(fp.NoSuchValue())
}

func (a *absent[T]) Filter(func(T) bool) Optional[T] {
	return Empty[T]()
}

func (a *absent[T]) IfPresent(func(T)) {}

func (a *absent[T]) IfPresentOrElse(_ func(T), action func()) {
	action()
}

func (a *absent[T]) Or(supplier func() Optional[T]) Optional[T] {
	return supplier()
}

func (a *absent[T]) OrElse(other T) T {
	return other
}

func (a *absent[T]) OrElseGet(supplier func() T) T {
	return supplier()
}

func (a *absent[T]) OrElseErr(errSupplier func() error) (T, error) {
	var zero T
	return zero, errSupplier()
}

// Equal holds between two absent Optionals: both carry the same nothing.
func (a *absent[T]) Equal(other Optional[T]) bool {
	_, ok := other.(*absent[T])
	return ok
}

func (a *absent[T]) ToSlice() []T {
	return []T{}
}

func (a *absent[T]) ToPtr() *T {
	return nil
}

func (a *absent[T]) String() string {
	return "Optional.empty"
}
