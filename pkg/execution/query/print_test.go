package query

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volcano/pkg/primitives"
	"volcano/pkg/tuple"
)

// drive pulls a sink to EOF without collecting output tuples.
func drive(t *testing.T, p *Print) {
	t.Helper()
	require.NoError(t, p.Open())
	for {
		ok, err := p.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		assert.Empty(t, p.Output(), "Print emits no tuples of its own")
	}
	require.NoError(t, p.Close())
}

func TestPrint_ProjectionScenario(t *testing.T) {
	// S1: project [1,0] over [(1,"a"), (2,"b")].
	scan := NewScan([]*tuple.Tuple{row(1, "a"), row(2, "b")})
	project, err := NewProject(scan, []primitives.ColumnID{1, 0})
	require.NoError(t, err)

	var buf bytes.Buffer
	p, err := NewPrint(project, &buf)
	require.NoError(t, err)

	drive(t, p)
	assert.Equal(t, "a,1\nb,2\n", buf.String())
}

func TestPrint_FormatsNegativeIntegers(t *testing.T) {
	scan := NewScan([]*tuple.Tuple{row(-7, "x")})
	var buf bytes.Buffer
	p, err := NewPrint(scan, &buf)
	require.NoError(t, err)

	drive(t, p)
	assert.Equal(t, "-7,x\n", buf.String())
}

func TestPrint_EmptyStreamWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	p, err := NewPrint(NewScan(nil), &buf)
	require.NoError(t, err)

	drive(t, p)
	assert.Zero(t, buf.Len())
}

func TestPrint_ZeroColumnRowWritesNothing(t *testing.T) {
	scan := NewScan([]*tuple.Tuple{tuple.New()})
	var buf bytes.Buffer
	p, err := NewPrint(scan, &buf)
	require.NoError(t, err)

	drive(t, p)
	assert.Zero(t, buf.Len())
}
