package query

import (
	"testing"

	"github.com/stretchr/testify/require"

	"volcano/pkg/iterator"
	"volcano/pkg/tuple"
	"volcano/pkg/types"
)

// row builds a tuple from int and string literals.
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

// collect drives an operator tree to EOF, returning owned copies of every
// output row. It also asserts the contract details every operator shares:
// Next keeps returning false after EOF, and Close succeeds.
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

	ok, err := op.Next()
	require.NoError(t, err)
	require.False(t, ok, "Next must keep returning false after EOF")

	require.NoError(t, op.Close())
	return out
}

// assertRows compares collected rows against expectations by value.
func assertRows(t *testing.T, expected []*tuple.Tuple, actual []*tuple.Tuple) {
	t.Helper()
	require.Equalf(t, len(expected), len(actual), "row count: got %v", actual)
	for i, want := range expected {
		require.Truef(t, want.Equals(actual[i]), "row %d: want %s, got %s", i, want, actual[i])
	}
}
