package iterator

import "github.com/pkg/errors"

// SliceCursor iterates a materialized slice. Materializing operators build
// their buffer during the draining phase and stream it out through one of
// these during the emitting phase.
type SliceCursor[T any] struct {
	data []T
	pos  int
}

// NewSliceCursor creates a cursor over the given slice, positioned at the
// beginning. No lifecycle management is needed; cursors are cheap enough to
// recreate instead of resetting.
func NewSliceCursor[T any](data []T) *SliceCursor[T] {
	return &SliceCursor[T]{data: data}
}

// HasNext reports whether at least one more element is available.
func (c *SliceCursor[T]) HasNext() bool {
	return c.pos < len(c.data)
}

// Next returns the next element and advances the cursor.
func (c *SliceCursor[T]) Next() (T, error) {
	var zero T
	if c.pos >= len(c.data) {
		return zero, errors.New("no more elements in cursor")
	}
	element := c.data[c.pos]
	c.pos++
	return element, nil
}

// Len returns the total number of elements.
func (c *SliceCursor[T]) Len() int {
	return len(c.data)
}
