package bucketsort

import (
	"context"
)

// ChanSorter runs the bucket sort over values read from a channel and
// delivers the sorted values on an output channel.
type ChanSorter[T Numeric] struct {
	*Sorter[T]
	input    <-chan T
	output   chan T
	errChan  chan error
	prepared bool
}

// Chan creates a channel based sorter and returns the sorter instance,
// output channel with sorted results, and error channel.
// config can be nil to use the defaults.
//
// Call Sort() on the returned sorter to begin. Nothing is written to the
// output channel unless every node succeeds. Both channels are closed once
// sorting ends, and at most one error is delivered.
func Chan[T Numeric](input <-chan T, config *Config) (*ChanSorter[T], <-chan T, <-chan error) {
	c := mergeConfig(config)
	s := &ChanSorter[T]{
		input:   input,
		output:  make(chan T, c.OutputChanBuffSize),
		errChan: make(chan error, 1),
	}
	sorter, err := New[T](c)
	if err != nil {
		// keep State and NumNodes usable on a sorter that never runs
		s.Sorter = &Sorter[T]{config: *c}
		s.setState(StateFailed)
		s.fail(err)
		return s, s.output, s.errChan
	}
	s.Sorter = sorter
	s.prepared = true
	return s, s.output, s.errChan
}

// Sort reads the input channel until it is closed, sorts everything it read,
// and then streams the result to the output channel in a background goroutine.
// NOTE: the context passed to Sort must outlive Sort() returning, since the
// output goroutine uses it. ctx stops reading input and writing output; it
// never interrupts the nodes once they are sorting.
func (s *ChanSorter[T]) Sort(ctx context.Context) {
	if !s.prepared {
		return
	}
	s.prepared = false

	var data []T
	for done := false; !done; {
		select {
		case rec, ok := <-s.input:
			if !ok {
				done = true
				continue
			}
			data = append(data, rec)
		case <-ctx.Done():
			s.fail(ctx.Err())
			return
		}
	}

	sorted, err := s.Run(ctx, data)
	if err != nil {
		s.fail(err)
		return
	}
	go s.emit(ctx, sorted)
}

// emit writes sorted to the output channel and closes both channels
func (s *ChanSorter[T]) emit(ctx context.Context, sorted []T) {
	defer close(s.output)
	defer close(s.errChan)
	for _, rec := range sorted {
		select {
		case s.output <- rec:
		case <-ctx.Done():
			s.errChan <- ctx.Err()
			return
		}
	}
}

func (s *ChanSorter[T]) fail(err error) {
	s.errChan <- err
	close(s.errChan)
	close(s.output)
}
