// Package from holds short constructors for the containers whose input may
// be nil.
package from

import (
	"github.com/ib-77/monads/pkg/fp/maybe"
	"github.com/ib-77/monads/pkg/fp/optional"
)

// Optional is optional.OfNullable.
func Optional[T any](value T) optional.Optional[T] {
	return optional.OfNullable(value)
}

// Maybe is maybe.Of.
func Maybe[T any](value T) maybe.Maybe[T] {
	return maybe.Of(value)
}
