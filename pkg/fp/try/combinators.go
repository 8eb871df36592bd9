package try

// Map transforms a success value. The mapper runs through Perform, so a
// panicking mapper yields a failure. A failure passes through and the
// mapper is never called.
func Map[In, Out any](input Result[In], mapper func(In) Out) Result[Out] {
	if input.isSuccess {
		return Perform(func() (Out, error) {
			return mapper(input.value), nil
		})
	}
	return failFrom[In, Out](input)
}

// TryMap transforms a success value with a function that may return an error.
func TryMap[In, Out any](input Result[In], mapper func(In) (Out, error)) Result[Out] {
	if input.isSuccess {
		return Perform(func() (Out, error) {
			return mapper(input.value)
		})
	}
	return failFrom[In, Out](input)
}

// FlatMap returns mapper's Result for a success value. Panics raised by the
// mapper are not recovered.
func FlatMap[In, Out any](input Result[In], mapper func(In) Result[Out]) Result[Out] {
	if input.isSuccess {
		return mapper(input.value)
	}
	return failFrom[In, Out](input)
}

// Fold collapses a Result into a concrete value by applying exactly one of
// the handlers.
func Fold[In, Out any](input Result[In], onFailure func(err error) Out, onSuccess func(In) Out) Out {
	if input.isSuccess {
		return onSuccess(input.value)
	}
	return onFailure(input.err)
}
