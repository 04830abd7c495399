package bucketsort

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidConfiguration is matched by every ConfigError
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrOrderMismatch is matched by every BoundaryError
	ErrOrderMismatch = errors.New("comparison disagrees with bucket order")

	// ErrIncomparable is the cause of a SortFailure on values without a total order, like NaN
	ErrIncomparable = errors.New("incomparable value")
)

// ConfigError represents an error in configuration parameters
type ConfigError struct {
	// Field is the name of the configuration field that's invalid
	Field string
	// Value is the invalid value provided
	Value interface{}
	// Reason explains why the value is invalid
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in field %s (value: %v): %s", e.Field, e.Value, e.Reason)
}

// Is reports ErrInvalidConfiguration as a match
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// NewConfigError creates a ConfigError
func NewConfigError(field string, value interface{}, reason string) error {
	return &ConfigError{Field: field, Value: value, Reason: reason}
}

// ComparisonError represents an error that occurred during item comparison
type ComparisonError struct {
	// Cause is the original panic or error that occurred during comparison
	Cause interface{}
	// Context provides additional information about when the comparison failed
	Context string
}

func (e *ComparisonError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("comparison panic in %s: %v", e.Context, e.Cause)
	}
	return fmt.Sprintf("comparison panic: %v", e.Cause)
}

func (e *ComparisonError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}

// NewComparisonError creates a ComparisonError
func NewComparisonError(cause interface{}, context string) error {
	return &ComparisonError{Cause: cause, Context: context}
}

// SortFailure reports that a single node could not sort its bucket
type SortFailure struct {
	// NodeID is the node, and bucket index, that failed
	NodeID int
	// Cause is the underlying error
	Cause error
}

func (e *SortFailure) Error() string {
	return fmt.Sprintf("node %d: sort failed: %v", e.NodeID, e.Cause)
}

func (e *SortFailure) Unwrap() error {
	return e.Cause
}

// NewSortFailure creates a SortFailure
func NewSortFailure(nodeID int, cause error) error {
	return &SortFailure{NodeID: nodeID, Cause: cause}
}

// BoundaryError reports two adjacent non-empty buckets whose sorted contents
// are out of order under the comparison in use. A run that returns it produced no output.
type BoundaryError struct {
	// LeftNode and RightNode are the ids of the two buckets, LeftNode < RightNode
	LeftNode  int
	RightNode int
}

func (e *BoundaryError) Error() string {
	return fmt.Sprintf("last value of node %d sorts after first value of node %d: %v", e.LeftNode, e.RightNode, ErrOrderMismatch)
}

// Is reports ErrOrderMismatch as a match
func (e *BoundaryError) Is(target error) bool {
	return target == ErrOrderMismatch
}

// NewBoundaryError creates a BoundaryError
func NewBoundaryError(left, right int) error {
	return &BoundaryError{LeftNode: left, RightNode: right}
}

// PartialSortFailure aggregates every SortFailure of a run.
// A run that returns it produced no output.
type PartialSortFailure struct {
	// Failures holds one entry per failed node in ascending node order
	Failures []*SortFailure
}

// NewPartialSortFailure creates a PartialSortFailure, ordering failures by node
func NewPartialSortFailure(failures []*SortFailure) error {
	f := make([]*SortFailure, len(failures))
	copy(f, failures)
	sort.Slice(f, func(i, j int) bool { return f[i].NodeID < f[j].NodeID })
	return &PartialSortFailure{Failures: f}
}

// NodeIDs returns the ids of the failed nodes in ascending order
func (e *PartialSortFailure) NodeIDs() []int {
	ids := make([]int, len(e.Failures))
	for i, f := range e.Failures {
		ids[i] = f.NodeID
	}
	return ids
}

func (e *PartialSortFailure) Error() string {
	msgs := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		msgs[i] = f.Error()
	}
	return fmt.Sprintf("%d of the nodes failed: %s", len(e.Failures), strings.Join(msgs, "; "))
}

func (e *PartialSortFailure) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f
	}
	return errs
}
