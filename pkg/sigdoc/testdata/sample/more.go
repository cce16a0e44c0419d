package sample

// Zero returns the zero value.
func Zero[T any]() T {
	var zero T
	return zero
}
