package setops

import (
	"github.com/google/btree"

	"volcano/pkg/iterator"
	"volcano/pkg/logging"
	"volcano/pkg/tuple"
	"volcano/pkg/types"
)

const outputTreeDegree = 16

// multiplicityFunc computes the output multiplicity of a tuple from its
// multiplicities in the left and right inputs. Each of the six set-algebra
// operators is this function plus the shared machinery below.
type multiplicityFunc func(left, right int) int

// countedTuple is a btree item ordering distinct output tuples ascending by
// full-tuple comparison, each carrying its output multiplicity.
type countedTuple struct {
	tuple *tuple.Tuple
	count int
}

func (c *countedTuple) Less(than btree.Item) bool {
	return c.tuple.Compare(than.(*countedTuple).tuple) < 0
}

// setOperation is the shared engine of the set-algebra family. It fully
// materializes both inputs into tuple multisets, applies the multiplicity
// function to the union of their supports, and emits the result in
// ascending multiset-lex order of output tuples.
type setOperation struct {
	iterator.BinaryOperator
	name         string
	multiplicity multiplicityFunc

	phase   iterator.Phase
	cursor  *iterator.SliceCursor[*tuple.Tuple]
	current *tuple.Tuple
}

func newSetOperation(left, right iterator.Operator, name string, m multiplicityFunc) (setOperation, error) {
	base, err := iterator.NewBinaryOperator(left, right)
	if err != nil {
		return setOperation{}, err
	}
	return setOperation{BinaryOperator: base, name: name, multiplicity: m}, nil
}

// materialize drains both inputs, computes the output multiset in a single
// pass over the supports, and expands it into a sorted row buffer.
func (s *setOperation) materialize() error {
	leftSet := NewTupleMultiset()
	if err := iterator.Drain(s.Left(), func(t *tuple.Tuple) error {
		leftSet.Add(t)
		return nil
	}); err != nil {
		return err
	}

	rightSet := NewTupleMultiset()
	if err := iterator.Drain(s.Right(), func(t *tuple.Tuple) error {
		rightSet.Add(t)
		return nil
	}); err != nil {
		return err
	}

	ordered := btree.New(outputTreeDegree)
	total := 0
	leftSet.ForEach(func(t *tuple.Tuple, count int) {
		if n := s.multiplicity(count, rightSet.Count(t)); n > 0 {
			ordered.ReplaceOrInsert(&countedTuple{tuple: t, count: n})
			total += n
		}
	})
	rightSet.ForEach(func(t *tuple.Tuple, count int) {
		if leftSet.Count(t) > 0 {
			return // already handled through the left support
		}
		if n := s.multiplicity(0, count); n > 0 {
			ordered.ReplaceOrInsert(&countedTuple{tuple: t, count: n})
			total += n
		}
	})

	rows := make([]*tuple.Tuple, 0, total)
	ordered.Ascend(func(item btree.Item) bool {
		c := item.(*countedTuple)
		for i := 0; i < c.count; i++ {
			rows = append(rows, c.tuple)
		}
		return true
	})

	logging.WithOperator(s.name).Debug("inputs drained",
		"left", leftSet.Len(), "right", rightSet.Len(), "output", total)

	s.cursor = iterator.NewSliceCursor(rows)
	s.phase = iterator.PhaseEmitting
	return nil
}

func (s *setOperation) Next() (bool, error) {
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

func (s *setOperation) Output() []types.Register {
	if s.current == nil {
		return nil
	}
	return s.current.Registers()
}

func (s *setOperation) Close() error {
	s.cursor = nil
	s.current = nil
	return s.BinaryOperator.Close()
}
