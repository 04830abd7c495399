package bucketsort

import (
	"context"

	"golang.org/x/exp/constraints"
)

// Numeric is the set of value types that can be range partitioned.
// Bucket boundaries are computed in float64, so every Numeric value
// must have a float64 conversion, which rules out strings.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// CompareFunc is a function type for comparing two values of type T.
// It must implement a total ordering and returns a negative integer if a
// sorts before b, zero if they are equal, and a positive integer otherwise.
// This follows the same semantics as cmp.Compare.
// A CompareFunc signals incomparable values by panicking; the panic is
// recovered into a ComparisonError by the node that was sorting.
type CompareFunc[T any] func(a, b T) int

// Logger receives observational events from a sorting run.
// keyvals are alternating key and value pairs.
type Logger interface {
	Debug(ctx context.Context, msg string, keyvals ...any)
	Info(ctx context.Context, msg string, keyvals ...any)
	Error(ctx context.Context, msg string, keyvals ...any)
}
