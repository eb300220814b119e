package query

import (
	"sort"

	"github.com/pkg/errors"

	"volcano/pkg/iterator"
	"volcano/pkg/logging"
	"volcano/pkg/primitives"
	"volcano/pkg/tuple"
	"volcano/pkg/types"
)

// Criterion is one sort key: an attribute index and a direction.
type Criterion struct {
	Column     primitives.ColumnID
	Descending bool
}

// Sort is a fully materializing operator that orders its input by a compound
// key. On the first Next it drains the input into a buffer, then performs a
// single stable sort using the criteria in order: compare by the first
// criterion, on equality by the second, and so on. Ascending uses the
// natural register order, descending inverts it. Stability guarantees that
// ties preserve input order.
type Sort struct {
	iterator.UnaryOperator
	criteria []Criterion
	phase    iterator.Phase
	cursor   *iterator.SliceCursor[*tuple.Tuple]
	current  *tuple.Tuple
}

// NewSort creates a sort with the given criteria. At least one criterion is
// required.
func NewSort(child iterator.Operator, criteria []Criterion) (*Sort, error) {
	if len(criteria) == 0 {
		return nil, errors.New("sort requires at least one criterion")
	}
	base, err := iterator.NewUnaryOperator(child)
	if err != nil {
		return nil, err
	}
	return &Sort{UnaryOperator: base, criteria: criteria}, nil
}

// materialize drains the input and sorts the buffer.
func (s *Sort) materialize() error {
	var rows []*tuple.Tuple
	maxColumn := primitives.ColumnID(0)
	for _, c := range s.criteria {
		if c.Column > maxColumn {
			maxColumn = c.Column
		}
	}

	err := iterator.Drain(s.Child(), func(t *tuple.Tuple) error {
		if _, err := t.Get(maxColumn); err != nil {
			return errors.Wrap(err, "sort key")
		}
		rows = append(rows, t)
		return nil
	})
	if err != nil {
		return err
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return s.less(rows[i], rows[j])
	})

	logging.WithOperator("sort").Debug("input drained", "rows", len(rows))
	s.cursor = iterator.NewSliceCursor(rows)
	s.phase = iterator.PhaseEmitting
	return nil
}

// less compares two rows under the compound key. Key cells are ranked with
// the total register order; mixing variants within a key column is a
// programmer error.
func (s *Sort) less(a, b *tuple.Tuple) bool {
	for _, criterion := range s.criteria {
		ra, _ := a.Get(criterion.Column)
		rb, _ := b.Get(criterion.Column)
		c := types.OrderRegisters(ra, rb)
		if criterion.Descending {
			c = -c
		}
		if c != 0 {
			return c < 0
		}
	}
	return false
}

func (s *Sort) Next() (bool, error) {
	if s.phase == iterator.PhaseDraining {
		if err := s.materialize(); err != nil {
			return false, err
		}
	}

	if s.phase == iterator.PhaseEmitting && s.cursor.HasNext() {
		t, err := s.cursor.Next()
		if err != nil {
			return false, err
		}
		s.current = t
		return true, nil
	}

	s.phase = iterator.PhaseDone
	s.current = nil
	return false, nil
}

func (s *Sort) Output() []types.Register {
	if s.current == nil {
		return nil
	}
	return s.current.Registers()
}

func (s *Sort) Close() error {
	s.cursor = nil
	s.current = nil
	return s.UnaryOperator.Close()
}
