package fp

// Identity returns its argument unchanged.
func Identity[T any](v T) T {
	return v
}

// Noop accepts anything and does nothing.
func Noop(...any) {}

// Discard is a typed no-op consumer.
func Discard[T any](T) {}

// Zero is a typed no-op supplier returning T's zero value.
func Zero[T any]() T {
	var zero T
	return zero
}
