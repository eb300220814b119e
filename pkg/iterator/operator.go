package iterator

import (
	"github.com/pkg/errors"

	"volcano/pkg/tuple"
	"volcano/pkg/types"
)

// ErrNotOpened is returned when an operator is advanced before Open.
var ErrNotOpened = errors.New("operator not opened")

// Operator is the uniform contract every node in an execution tree exposes.
// The root drives evaluation in pull mode: it repeatedly calls Next, and
// each non-leaf forwards the request to its input(s) until it can emit or
// decides no further tuple will come.
//
// Lifecycle: an operator is constructed by the planner, opened exactly once,
// advanced until Next returns false (or abandoned early), and closed exactly
// once. Close must be safe on a tree that has already errored.
type Operator interface {
	// Open acquires resources and recursively opens children. Calling Open
	// twice is a programmer error.
	Open() error

	// Next attempts to produce a row. It returns true if a row is available
	// via Output, false once the stream is exhausted. After false is
	// returned, subsequent calls keep returning false.
	Next() (bool, error)

	// Output returns the current output tuple as a view of registers. The
	// view is valid only until the next call to Next or Close on the same
	// operator; callers must copy registers they retain across advances.
	// Output is defined only when the most recent Next returned true.
	Output() []types.Register

	// Close releases buffered state and closes children.
	Close() error
}

// Drain pulls an operator to EOF, invoking fn with an owned copy of every
// row. Materializing operators use this for their draining phase.
func Drain(op Operator, fn func(*tuple.Tuple) error) error {
	for {
		ok, err := op.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := fn(tuple.FromRegisters(op.Output())); err != nil {
			return err
		}
	}
}
