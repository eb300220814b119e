package query

import (
	"volcano/pkg/iterator"
	"volcano/pkg/tuple"
	"volcano/pkg/types"
)

// Scan is a leaf operator over rows already materialized in memory. The
// storage layer that would normally feed a table scan is an external
// collaborator; Scan is the seam where its tuples enter an operator tree,
// and it doubles as the leaf for tests and example drivers.
type Scan struct {
	rows    []*tuple.Tuple
	pos     int
	current *tuple.Tuple
	opened  bool
}

// NewScan creates a leaf over the given rows. The slice is not copied; the
// caller must not mutate it while the tree runs.
func NewScan(rows []*tuple.Tuple) *Scan {
	return &Scan{rows: rows}
}

func (s *Scan) Open() error {
	s.opened = true
	s.pos = 0
	s.current = nil
	return nil
}

func (s *Scan) Next() (bool, error) {
	if !s.opened {
		return false, iterator.ErrNotOpened
	}
	if s.pos >= len(s.rows) {
		s.current = nil
		return false, nil
	}
	s.current = s.rows[s.pos]
	s.pos++
	return true, nil
}

func (s *Scan) Output() []types.Register {
	if s.current == nil {
		return nil
	}
	return s.current.Registers()
}

func (s *Scan) Close() error {
	s.opened = false
	s.current = nil
	return nil
}
