package bucketsort

import (
	"math"
)

// Plan holds the bucket boundaries computed from the value range of an input.
// Bucket i covers the half-open range [Min + i*Width, Min + (i+1)*Width).
type Plan[T Numeric] struct {
	NumNodes int
	Min      T
	Max      T
	Width    float64
	// Empty is set when the plan was built from an empty input, in which case
	// Min, Max and Width carry no information.
	Empty bool
}

// NewPlan computes the bucket boundaries for input split across numNodes buckets.
// NaN values are ignored for the min and max.
func NewPlan[T Numeric](input []T, numNodes int) (*Plan[T], error) {
	if err := validateNumNodes(numNodes); err != nil {
		return nil, err
	}
	p := &Plan[T]{NumNodes: numNodes}
	if len(input) == 0 {
		p.Empty = true
		return p, nil
	}

	found := false
	for _, v := range input {
		if math.IsNaN(float64(v)) {
			continue
		}
		if !found {
			p.Min, p.Max = v, v
			found = true
			continue
		}
		if v < p.Min {
			p.Min = v
		}
		if v > p.Max {
			p.Max = v
		}
	}
	if !found {
		// every value is NaN, Index sends all of them to the last bucket
		p.Width = math.NaN()
		return p, nil
	}

	// float64 before subtracting so extreme integers can not overflow.
	// Real division keeps a span of 1 from producing a zero width.
	p.Width = (float64(p.Max) - float64(p.Min) + 1) / float64(numNodes)
	return p, nil
}

// Index returns the bucket index of v, always within [0, NumNodes).
//
// The clamp is intentional: rounding can place the maximum at NumNodes, and
// it belongs in the last bucket. A NaN index, from a NaN value or an infinite
// range, is folded into the last bucket too so the value is never dropped.
func (p *Plan[T]) Index(v T) int {
	last := p.NumNodes - 1
	if last == 0 {
		return 0
	}
	f := math.Floor((float64(v) - float64(p.Min)) / p.Width)
	switch {
	case math.IsNaN(f):
		return last
	case f < 0:
		return 0
	case f >= float64(last):
		return last
	}
	return int(f)
}

// Bounds returns the nominal value range [lo, hi) of bucket i.
// The last bucket additionally holds anything the clamp folded into it.
func (p *Plan[T]) Bounds(i int) (lo, hi float64) {
	if p.Empty {
		return 0, 0
	}
	lo = float64(p.Min) + float64(i)*p.Width
	return lo, lo + p.Width
}

// Partition assigns every value of input to its bucket.
// The returned slice always has NumNodes buckets, some of which may be empty.
// input is not modified.
func (p *Plan[T]) Partition(input []T) [][]T {
	buckets := make([][]T, p.NumNodes)
	if len(input) == 0 {
		for i := range buckets {
			buckets[i] = []T{}
		}
		return buckets
	}

	// two passes so each bucket is allocated once at its final size
	idx := make([]int, len(input))
	sizes := make([]int, p.NumNodes)
	for i, v := range input {
		idx[i] = p.Index(v)
		sizes[idx[i]]++
	}
	for i := range buckets {
		buckets[i] = make([]T, 0, sizes[i])
	}
	for i, v := range input {
		buckets[idx[i]] = append(buckets[idx[i]], v)
	}
	return buckets
}

// Partition splits input into numNodes disjoint buckets by value range.
// Every value lands in exactly one bucket; buckets are in ascending range order.
func Partition[T Numeric](input []T, numNodes int) ([][]T, error) {
	p, err := NewPlan(input, numNodes)
	if err != nil {
		return nil, err
	}
	return p.Partition(input), nil
}
