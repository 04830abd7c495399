package bucketsort

// Report is the outcome of a successful run, carrying everything a
// reporting or plotting consumer needs.
type Report[T Numeric] struct {
	Input   []T      // the unsorted input as given
	Plan    *Plan[T] // bucket boundaries
	Buckets [][]T    // sorted contents of each bucket, indexed by node
	Sorted  []T      // concatenation of Buckets
}

// Sizes returns the number of values each node sorted
func (r *Report[T]) Sizes() []int {
	sizes := make([]int, len(r.Buckets))
	for i, b := range r.Buckets {
		sizes[i] = len(b)
	}
	return sizes
}
