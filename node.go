package bucketsort

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"
)

// Node is one simulated compute node. It owns exactly one bucket from the
// time it receives it until Sort returns.
type Node[T Numeric] struct {
	ID      int
	bucket  []T
	compare CompareFunc[T]
	logger  Logger
}

// NewNode creates a node. A nil compare uses cmp.Compare and rejects NaN values,
// a nil logger discards events.
func NewNode[T Numeric](id int, compare CompareFunc[T], logger Logger) *Node[T] {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Node[T]{ID: id, compare: compare, logger: logger}
}

// Receive hands bucket to the node. The caller must not touch bucket until Sort returns.
func (n *Node[T]) Receive(bucket []T) {
	n.bucket = bucket
}

// Len returns the size of the bucket held by the node
func (n *Node[T]) Len() int {
	return len(n.bucket)
}

// Sort stably sorts the node's bucket in place and returns it.
// Any failure, including a panic in the comparison function, is returned as a SortFailure.
func (n *Node[T]) Sort(ctx context.Context) (sorted []T, err error) {
	n.logger.Debug(ctx, "node sorting", "node", n.ID, "size", len(n.bucket))

	defer func() {
		// Recover from panics in comparison function
		if r := recover(); r != nil {
			sorted = nil
			err = NewSortFailure(n.ID, NewComparisonError(r, fmt.Sprintf("node %d", n.ID)))
		}
	}()

	compare := n.compare
	if compare == nil {
		for i, v := range n.bucket {
			if math.IsNaN(float64(v)) {
				return nil, NewSortFailure(n.ID, fmt.Errorf("%w: NaN at bucket position %d", ErrIncomparable, i))
			}
		}
		compare = cmp.Compare[T]
	}
	slices.SortStableFunc(n.bucket, compare)
	return n.bucket, nil
}

// Sort sorts one bucket on behalf of node nodeID using the natural order of T.
// NaN values fail with a SortFailure wrapping ErrIncomparable.
func Sort[T Numeric](nodeID int, bucket []T) ([]T, error) {
	n := NewNode[T](nodeID, nil, nil)
	n.Receive(bucket)
	return n.Sort(context.Background())
}
