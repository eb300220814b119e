package aggregation

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volcano/pkg/execution/query"
	"volcano/pkg/iterator"
	"volcano/pkg/primitives"
	"volcano/pkg/tuple"
	"volcano/pkg/types"
)

func row(cells ...any) *tuple.Tuple {
	regs := make([]types.Register, len(cells))
	for i, c := range cells {
		switch v := c.(type) {
		case int:
			regs[i] = types.FromInt(int64(v))
		case int64:
			regs[i] = types.FromInt(v)
		case string:
			regs[i] = types.FromString(v)
		default:
			panic("unsupported literal")
		}
	}
	return tuple.New(regs...)
}

func collect(t *testing.T, op iterator.Operator) []*tuple.Tuple {
	t.Helper()
	require.NoError(t, op.Open())
	var out []*tuple.Tuple
	for {
		ok, err := op.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		out = append(out, tuple.FromRegisters(op.Output()))
	}
	require.NoError(t, op.Close())
	return out
}

func assertRows(t *testing.T, expected []*tuple.Tuple, actual []*tuple.Tuple) {
	t.Helper()
	require.Equalf(t, len(expected), len(actual), "row count: got %v", actual)
	for i, want := range expected {
		require.Truef(t, want.Equals(actual[i]), "row %d: want %s, got %s", i, want, actual[i])
	}
}

func TestNewHashAggregation_RequiresAggregates(t *testing.T) {
	agg, err := NewHashAggregation(query.NewScan(nil), nil, nil)
	require.Error(t, err)
	assert.Nil(t, agg)
}

func TestHashAggregation_GroupBySumCountScenario(t *testing.T) {
	// S4: group by dept, SUM(amount), COUNT(*); ascending dept order.
	input := []*tuple.Tuple{
		row("x", 10), row("y", 20), row("x", 30), row("y", 40), row("x", 5),
	}
	agg, err := NewHashAggregation(query.NewScan(input),
		[]primitives.ColumnID{0},
		[]Aggregate{{Func: Sum, Column: 1}, {Func: Count}})
	require.NoError(t, err)

	out := collect(t, agg)
	assertRows(t, []*tuple.Tuple{row("x", 45, 3), row("y", 60, 2)}, out)
}

func TestHashAggregation_EmptyGroupByProducesOneRow(t *testing.T) {
	input := []*tuple.Tuple{row(4), row(2), row(9)}
	agg, err := NewHashAggregation(query.NewScan(input), nil, []Aggregate{
		{Func: Min, Column: 0},
		{Func: Max, Column: 0},
		{Func: Sum, Column: 0},
		{Func: Count},
	})
	require.NoError(t, err)

	out := collect(t, agg)
	assertRows(t, []*tuple.Tuple{row(2, 9, 15, 3)}, out)
}

func TestHashAggregation_EmptyInputEmptyGroupBy(t *testing.T) {
	agg, err := NewHashAggregation(query.NewScan(nil), nil, []Aggregate{
		{Func: Count}, {Func: Sum, Column: 0},
	})
	require.NoError(t, err)

	out := collect(t, agg)
	assertRows(t, []*tuple.Tuple{row(0, 0)}, out)
}

func TestHashAggregation_EmptyInputWithGroupBy(t *testing.T) {
	agg, err := NewHashAggregation(query.NewScan(nil),
		[]primitives.ColumnID{0}, []Aggregate{{Func: Count}})
	require.NoError(t, err)

	out := collect(t, agg)
	assert.Empty(t, out)
}

func TestHashAggregation_DistinctKeyPerRow(t *testing.T) {
	input := []*tuple.Tuple{row(3, 1), row(1, 1), row(2, 1)}
	agg, err := NewHashAggregation(query.NewScan(input),
		[]primitives.ColumnID{0}, []Aggregate{{Func: Count}})
	require.NoError(t, err)

	out := collect(t, agg)
	// One group per distinct key, emitted ascending.
	assertRows(t, []*tuple.Tuple{row(1, 1), row(2, 1), row(3, 1)}, out)
}

func TestHashAggregation_SumCountOverIdenticalRows(t *testing.T) {
	const n, v = 5, 7
	input := make([]*tuple.Tuple, n)
	for i := range input {
		input[i] = row(v)
	}
	agg, err := NewHashAggregation(query.NewScan(input), nil,
		[]Aggregate{{Func: Sum, Column: 0}, {Func: Count}})
	require.NoError(t, err)

	out := collect(t, agg)
	assertRows(t, []*tuple.Tuple{row(n*v, n)}, out)
}

func TestHashAggregation_SumWrapsAround(t *testing.T) {
	input := []*tuple.Tuple{row(int64(math.MaxInt64)), row(1)}
	agg, err := NewHashAggregation(query.NewScan(input), nil,
		[]Aggregate{{Func: Sum, Column: 0}})
	require.NoError(t, err)

	out := collect(t, agg)
	assertRows(t, []*tuple.Tuple{row(int64(math.MinInt64))}, out)
}

func TestHashAggregation_MinMaxOverStrings(t *testing.T) {
	input := []*tuple.Tuple{row("pear"), row("apple"), row("plum")}
	agg, err := NewHashAggregation(query.NewScan(input), nil,
		[]Aggregate{{Func: Min, Column: 0}, {Func: Max, Column: 0}})
	require.NoError(t, err)

	out := collect(t, agg)
	assertRows(t, []*tuple.Tuple{row("apple", "plum")}, out)
}

func TestHashAggregation_MultiColumnGroupKey(t *testing.T) {
	input := []*tuple.Tuple{
		row("a", 1, 10), row("a", 2, 20), row("a", 1, 30), row("b", 1, 40),
	}
	agg, err := NewHashAggregation(query.NewScan(input),
		[]primitives.ColumnID{0, 1}, []Aggregate{{Func: Sum, Column: 2}})
	require.NoError(t, err)

	out := collect(t, agg)
	assertRows(t, []*tuple.Tuple{
		row("a", 1, 40), row("a", 2, 20), row("b", 1, 40),
	}, out)
}

func TestHashAggregation_SumOverStringAttribute(t *testing.T) {
	agg, err := NewHashAggregation(query.NewScan([]*tuple.Tuple{row("a")}), nil,
		[]Aggregate{{Func: Sum, Column: 0}})
	require.NoError(t, err)
	require.NoError(t, agg.Open())

	_, err = agg.Next()
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrTypeMismatch))
	require.NoError(t, agg.Close())
}
