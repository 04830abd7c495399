// Package bucketsort implements a simulated distributed bucket sort.
//
// Input values are range partitioned into one bucket per node, every node
// sorts its bucket concurrently in its own goroutine, and the sorted buckets
// are concatenated in node order. Since the buckets cover ascending,
// disjoint value ranges the concatenation is the sorted input, and its order
// does not depend on which node finishes first.
package bucketsort

import (
	"cmp"
	"context"
	"errors"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// State is the phase of the most recent run of a Sorter
type State int32

// Run phases, in order. A run ends in StateSucceeded or StateFailed.
const (
	StateIdle State = iota
	StatePartitioning
	StateDispatched
	StateCollecting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePartitioning:
		return "partitioning"
	case StateDispatched:
		return "dispatched"
	case StateCollecting:
		return "collecting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Sorter partitions input across a fixed set of nodes, sorts the buckets in
// parallel and gathers them back in node order.
// A Sorter may be reused and even run concurrently, but State is a single
// value shared by all runs: it is only meaningful when runs do not overlap.
// The error returned by Run or Report is the outcome of that one run.
type Sorter[T Numeric] struct {
	config  Config
	compare CompareFunc[T]
	state   atomic.Int32
}

// New returns a Sorter for the given configuration.
// config can be nil to use the defaults. A NumNodes below 1 is an InvalidConfiguration.
func New[T Numeric](config *Config) (*Sorter[T], error) {
	c := mergeConfig(config)
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &Sorter[T]{config: *c}, nil
}

// WithCompare replaces the natural ordering used by every node with compare.
//
// Buckets are always split by the natural numeric order, so compare must agree
// with it on distinct values and may only break ties or reject values.
// A run whose buckets do not line up under compare fails with a BoundaryError.
func (s *Sorter[T]) WithCompare(compare CompareFunc[T]) *Sorter[T] {
	s.compare = compare
	return s
}

// NumNodes returns the number of nodes every run uses
func (s *Sorter[T]) NumNodes() int {
	return s.config.NumNodes
}

// State returns the phase of the most recent run
func (s *Sorter[T]) State() State {
	return State(s.state.Load())
}

func (s *Sorter[T]) setState(st State) {
	s.state.Store(int32(st))
}

// Run sorts input and returns a new sorted slice; input is left untouched.
// On any node failure a PartialSortFailure is returned and no values are.
func (s *Sorter[T]) Run(ctx context.Context, input []T) ([]T, error) {
	r, err := s.Report(ctx, input)
	if err != nil {
		return nil, err
	}
	return r.Sorted, nil
}

// Report runs the full pipeline like Run, and also returns the partition plan
// and the sorted contents of each bucket.
//
// ctx is handed to the nodes and the Logger only. Once dispatched every node
// runs to completion, so a cancelled ctx does not abort a run.
func (s *Sorter[T]) Report(ctx context.Context, input []T) (*Report[T], error) {
	log := s.config.Logger
	numNodes := s.config.NumNodes

	s.setState(StatePartitioning)
	log.Info(ctx, "partitioning input", "size", len(input), "nodes", numNodes)
	plan, err := NewPlan(input, numNodes)
	if err != nil {
		s.setState(StateFailed)
		return nil, err
	}
	buckets := plan.Partition(input)

	nodes := make([]*Node[T], numNodes)
	for i := range nodes {
		nodes[i] = NewNode(i, s.compare, log)
		nodes[i].Receive(buckets[i])
	}

	// one slot per node, each written only by that node's goroutine
	results := make([][]T, numNodes)
	errs := make([]error, numNodes)

	s.setState(StateDispatched)
	var g errgroup.Group
	for i, node := range nodes {
		i, node := i, node
		g.Go(func() error {
			results[i], errs[i] = node.Sort(ctx)
			return errs[i]
		})
	}

	s.setState(StateCollecting)
	if g.Wait() != nil {
		s.setState(StateFailed)
		return nil, s.collectFailures(ctx, errs)
	}

	if err := s.checkBoundaries(results); err != nil {
		s.setState(StateFailed)
		log.Error(ctx, "bucket boundary out of order", "error", err)
		return nil, err
	}

	sorted := make([]T, 0, len(input))
	for _, r := range results {
		sorted = append(sorted, r...)
	}
	s.setState(StateSucceeded)
	log.Info(ctx, "sort complete", "size", len(sorted), "nodes", numNodes)

	return &Report[T]{
		Input:   input,
		Plan:    plan,
		Buckets: results,
		Sorted:  sorted,
	}, nil
}

// checkBoundaries verifies that the last value of every non-empty bucket
// does not sort after the first value of the next non-empty one
func (s *Sorter[T]) checkBoundaries(results [][]T) error {
	compare := s.compare
	if compare == nil {
		compare = cmp.Compare[T]
	}
	prev := -1
	for i, r := range results {
		if len(r) == 0 {
			continue
		}
		if prev >= 0 && compare(results[prev][len(results[prev])-1], r[0]) > 0 {
			return NewBoundaryError(prev, i)
		}
		prev = i
	}
	return nil
}

// collectFailures builds the aggregate error from the per-node error slots
func (s *Sorter[T]) collectFailures(ctx context.Context, errs []error) error {
	var failures []*SortFailure
	for i, err := range errs {
		if err == nil {
			continue
		}
		var sf *SortFailure
		if !errors.As(err, &sf) {
			sf = &SortFailure{NodeID: i, Cause: err}
		}
		s.config.Logger.Error(ctx, "node failed", "node", i, "error", sf.Cause)
		failures = append(failures, sf)
	}
	return NewPartialSortFailure(failures)
}

// RunParallelBucketSort sorts input across numNodes simulated nodes and returns
// the sorted values as a new slice.
func RunParallelBucketSort[T Numeric](input []T, numNodes int) ([]T, error) {
	s, err := New[T](&Config{NumNodes: numNodes})
	if err != nil {
		return nil, err
	}
	return s.Run(context.Background(), input)
}
