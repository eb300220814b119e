package join

import (
	"github.com/pkg/errors"

	"volcano/pkg/iterator"
	"volcano/pkg/logging"
	"volcano/pkg/primitives"
	"volcano/pkg/tuple"
	"volcano/pkg/types"
)

// HashJoin is an inner equi-join on one attribute of each side.
//
// The right input is the build side: on the first Next it is drained into an
// in-memory hash table with multi-map semantics, so duplicate right rows are
// preserved in insertion order. The left input is the probe side and stays
// pipelined: each left row is looked up and one output row is emitted per
// matching right row, left columns first.
//
// Joining attributes of different variants fails with ErrTypeMismatch.
type HashJoin struct {
	iterator.BinaryOperator
	leftColumn  primitives.ColumnID
	rightColumn primitives.ColumnID

	built     bool
	table     map[primitives.HashCode][]*tuple.Tuple
	buildKind types.Kind
	buildRows int

	currentLeft *tuple.Tuple
	matches     []*tuple.Tuple
	matchIdx    int
	output      []types.Register
}

// NewHashJoin creates the join. leftColumn indexes the probe (left) input,
// rightColumn the build (right) input.
func NewHashJoin(left, right iterator.Operator, leftColumn, rightColumn primitives.ColumnID) (*HashJoin, error) {
	base, err := iterator.NewBinaryOperator(left, right)
	if err != nil {
		return nil, err
	}
	return &HashJoin{
		BinaryOperator: base,
		leftColumn:     leftColumn,
		rightColumn:    rightColumn,
	}, nil
}

// build drains the right input into the hash table. Bucket slices keep
// build-side insertion order, which fixes the emission order of matches.
func (h *HashJoin) build() error {
	h.table = make(map[primitives.HashCode][]*tuple.Tuple)
	h.buildRows = 0

	err := iterator.Drain(h.Right(), func(row *tuple.Tuple) error {
		key, err := row.Get(h.rightColumn)
		if err != nil {
			return errors.Wrap(err, "right join attribute")
		}
		if h.buildRows == 0 {
			h.buildKind = key.Kind()
		} else if key.Kind() != h.buildKind {
			return errors.Wrapf(types.ErrTypeMismatch,
				"build side mixes %s and %s join keys", h.buildKind, key.Kind())
		}
		h.table[key.Hash()] = append(h.table[key.Hash()], row)
		h.buildRows++
		return nil
	})
	if err != nil {
		return err
	}

	logging.WithOperator("hash_join").Debug("build side drained", "rows", h.buildRows)
	h.built = true
	return nil
}

// probe looks up a left key, returning the matching right rows in insertion
// order. Hashes select the bucket; every candidate is re-checked with exact
// register equality.
func (h *HashJoin) probe(key types.Register) ([]*tuple.Tuple, error) {
	if h.buildRows == 0 {
		return nil, nil
	}
	if key.Kind() != h.buildKind {
		return nil, errors.Wrapf(types.ErrTypeMismatch,
			"probing %s key against %s build side", key.Kind(), h.buildKind)
	}

	var matches []*tuple.Tuple
	for _, row := range h.table[key.Hash()] {
		reg, err := row.Get(h.rightColumn)
		if err != nil {
			return nil, err
		}
		if reg.Equals(key) {
			matches = append(matches, row)
		}
	}
	return matches, nil
}

func (h *HashJoin) Next() (bool, error) {
	if !h.built {
		if err := h.build(); err != nil {
			return false, err
		}
	}

	for {
		if h.matchIdx < len(h.matches) {
			h.emit(h.matches[h.matchIdx])
			h.matchIdx++
			return true, nil
		}

		ok, err := h.Left().Next()
		if err != nil {
			return false, err
		}
		if !ok {
			h.currentLeft = nil
			h.output = nil
			return false, nil
		}

		left := tuple.FromRegisters(h.Left().Output())
		key, err := left.Get(h.leftColumn)
		if err != nil {
			return false, errors.Wrap(err, "left join attribute")
		}

		matches, err := h.probe(key)
		if err != nil {
			return false, err
		}
		h.currentLeft = left
		h.matches = matches
		h.matchIdx = 0
	}
}

// emit builds the concatenated output row for the current left row and one
// right match.
func (h *HashJoin) emit(right *tuple.Tuple) {
	h.output = h.output[:0]
	h.output = append(h.output, h.currentLeft.Registers()...)
	h.output = append(h.output, right.Registers()...)
}

func (h *HashJoin) Output() []types.Register {
	return h.output
}

func (h *HashJoin) Close() error {
	h.table = nil
	h.built = false
	h.currentLeft = nil
	h.matches = nil
	h.output = nil
	return h.BinaryOperator.Close()
}
