// Package slicez holds the generic slice helpers used by the container
// implementations.
package slicez

// Filter returns a new slice with all elements that the predicate returns
// truthy for, in their original order.
func Filter[T any, Slice ~[]T](xs Slice, pred func(T) bool) Slice {
	ys := make(Slice, 0, len(xs))
	for _, x := range xs {
		if pred(x) {
			ys = append(ys, x)
		}
	}
	return ys
}

// Map returns a new slice with each element transformed.
func Map[T any, R any](xs []T, fn func(T) R) []R {
	ys := make([]R, len(xs))
	for i, x := range xs {
		ys[i] = fn(x)
	}
	return ys
}
