package query

import (
	"github.com/pkg/errors"

	"volcano/pkg/iterator"
	"volcano/pkg/primitives"
	"volcano/pkg/types"
)

// Project reorders and selects columns: the i-th output register is a copy
// of the input register at the i-th listed source index. Indices may repeat
// and their order is the output order. One output row per input row.
type Project struct {
	iterator.UnaryOperator
	columns []primitives.ColumnID
	output  []types.Register
}

// NewProject creates a projection with the given source attribute indices.
func NewProject(child iterator.Operator, columns []primitives.ColumnID) (*Project, error) {
	base, err := iterator.NewUnaryOperator(child)
	if err != nil {
		return nil, err
	}
	return &Project{
		UnaryOperator: base,
		columns:       columns,
		output:        make([]types.Register, 0, len(columns)),
	}, nil
}

func (p *Project) Next() (bool, error) {
	regs, err := p.FetchNext()
	if err != nil {
		return false, err
	}
	if regs == nil {
		p.output = nil
		return false, nil
	}

	p.output = p.output[:0]
	for _, col := range p.columns {
		reg, err := registerAt(regs, col)
		if err != nil {
			return false, errors.Wrap(err, "projection index")
		}
		p.output = append(p.output, reg)
	}
	return true, nil
}

func (p *Project) Output() []types.Register {
	return p.output
}

func (p *Project) Close() error {
	p.output = nil
	return p.UnaryOperator.Close()
}
