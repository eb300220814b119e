package aggregation

import (
	"github.com/google/btree"
	"github.com/pkg/errors"

	"volcano/pkg/iterator"
	"volcano/pkg/logging"
	"volcano/pkg/primitives"
	"volcano/pkg/tuple"
	"volcano/pkg/types"
)

const groupTreeDegree = 16

// group is one distinct group-by key with its accumulators. Groups live in
// two structures at once: hash buckets for O(1) lookup during the draining
// phase, and a btree ordered by key so emission walks ascending key order
// without a separate sort pass.
type group struct {
	key    *tuple.Tuple
	states []state
}

func (g *group) Less(than btree.Item) bool {
	return g.key.Compare(than.(*group).key) < 0
}

// HashAggregation groups input rows by a tuple of attributes (possibly
// empty) and computes MIN/MAX/SUM/COUNT aggregates per group. It is fully
// materializing: the first Next drains the input and builds every group,
// subsequent calls stream the groups in ascending key order.
//
// With an empty group-by list exactly one output row is produced, holding
// the aggregate values in descriptor order. Otherwise each output row is the
// group key followed by the aggregate values.
type HashAggregation struct {
	iterator.UnaryOperator
	groupBy    []primitives.ColumnID
	aggregates []Aggregate

	phase   iterator.Phase
	buckets map[primitives.HashCode][]*group
	ordered *btree.BTree
	cursor  *iterator.SliceCursor[*tuple.Tuple]
	current *tuple.Tuple
}

// NewHashAggregation creates the operator. At least one aggregate is
// required; the group-by list may be empty.
func NewHashAggregation(child iterator.Operator, groupBy []primitives.ColumnID, aggregates []Aggregate) (*HashAggregation, error) {
	if len(aggregates) == 0 {
		return nil, errors.New("at least one aggregate is required")
	}
	base, err := iterator.NewUnaryOperator(child)
	if err != nil {
		return nil, err
	}
	return &HashAggregation{
		UnaryOperator: base,
		groupBy:       groupBy,
		aggregates:    aggregates,
	}, nil
}

// groupKey extracts the group-by key of a row. An empty group-by list maps
// every row to the zero-width key.
func (h *HashAggregation) groupKey(row *tuple.Tuple) (*tuple.Tuple, error) {
	regs := make([]types.Register, len(h.groupBy))
	for i, col := range h.groupBy {
		reg, err := row.Get(col)
		if err != nil {
			return nil, errors.Wrap(err, "group-by attribute")
		}
		regs[i] = reg
	}
	return tuple.New(regs...), nil
}

// lookup finds or creates the group for a key. Bucket probes re-check full
// key equality; hashes only pick the bucket.
func (h *HashAggregation) lookup(key *tuple.Tuple) *group {
	hash := key.Hash()
	for _, g := range h.buckets[hash] {
		if g.key.Equals(key) {
			return g
		}
	}

	g := &group{key: key, states: make([]state, len(h.aggregates))}
	h.buckets[hash] = append(h.buckets[hash], g)
	h.ordered.ReplaceOrInsert(g)
	return g
}

// materialize drains the input, accumulates every group, then renders the
// output rows in ascending key order.
func (h *HashAggregation) materialize() error {
	h.buckets = make(map[primitives.HashCode][]*group)
	h.ordered = btree.New(groupTreeDegree)

	if len(h.groupBy) == 0 {
		// The global group exists even for an empty input.
		h.lookup(tuple.New())
	}

	rowCount := 0
	err := iterator.Drain(h.Child(), func(row *tuple.Tuple) error {
		rowCount++
		key, err := h.groupKey(row)
		if err != nil {
			return err
		}
		g := h.lookup(key)
		for i, agg := range h.aggregates {
			if err := g.states[i].update(agg, row); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	rows := make([]*tuple.Tuple, 0, h.ordered.Len())
	h.ordered.Ascend(func(item btree.Item) bool {
		g := item.(*group)
		regs := make([]types.Register, 0, g.key.Width()+len(h.aggregates))
		regs = append(regs, g.key.Registers()...)
		for i, agg := range h.aggregates {
			regs = append(regs, g.states[i].finalize(agg))
		}
		rows = append(rows, tuple.New(regs...))
		return true
	})

	logging.WithOperator("hash_aggregation").Debug("input drained",
		"rows", rowCount, "groups", len(rows))

	h.cursor = iterator.NewSliceCursor(rows)
	h.phase = iterator.PhaseEmitting
	return nil
}

func (h *HashAggregation) Next() (bool, error) {
	if h.phase == iterator.PhaseDraining {
		if err := h.materialize(); err != nil {
			return false, err
		}
	}

	if h.phase == iterator.PhaseEmitting && h.cursor.HasNext() {
		t, err := h.cursor.Next()
		if err != nil {
			return false, err
		}
		h.current = t
		return true, nil
	}

	h.phase = iterator.PhaseDone
	h.current = nil
	return false, nil
}

func (h *HashAggregation) Output() []types.Register {
	if h.current == nil {
		return nil
	}
	return h.current.Registers()
}

func (h *HashAggregation) Close() error {
	h.buckets = nil
	h.ordered = nil
	h.cursor = nil
	h.current = nil
	return h.UnaryOperator.Close()
}
