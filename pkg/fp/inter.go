package fp

// Equaler is implemented by values that define their own equality. Equal
// uses it in preference to structural comparison.
type Equaler[T any] interface {
	// Equal reports whether the receiver equals other
	Equal(other T) bool
}

// Outcome is the inspection surface of a finished computation.
type Outcome[T any] interface {
	// Get returns the value or the error the computation failed with
	Get() (T, error)
	// IsSuccess returns true if the computation produced a value
	IsSuccess() bool
}
