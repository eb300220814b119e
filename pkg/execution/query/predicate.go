package query

import (
	"fmt"

	"github.com/pkg/errors"

	"volcano/pkg/primitives"
	"volcano/pkg/types"
)

// predicateShape discriminates the three predicate families of Select.
type predicateShape int

const (
	// attribute vs. integer constant
	intConstantShape predicateShape = iota
	// attribute vs. string constant
	stringConstantShape
	// attribute vs. attribute
	attributeShape
)

// Predicate is the tagged row filter condition evaluated by Select. It comes
// in exactly three shapes: attribute vs. integer constant, attribute vs.
// string constant, and attribute vs. attribute, each with one of the six
// comparison opcodes. The compared registers must share a variant; otherwise
// evaluation fails with ErrTypeMismatch.
type Predicate struct {
	shape       predicateShape
	column      primitives.ColumnID
	op          primitives.Predicate
	operand     types.Register      // constant shapes only
	rightColumn primitives.ColumnID // attribute shape only
}

// NewIntPredicate builds `column op constant` over an integer constant.
func NewIntPredicate(column primitives.ColumnID, op primitives.Predicate, constant int64) *Predicate {
	return &Predicate{
		shape:   intConstantShape,
		column:  column,
		op:      op,
		operand: types.FromInt(constant),
	}
}

// NewStringPredicate builds `column op constant` over a string constant.
func NewStringPredicate(column primitives.ColumnID, op primitives.Predicate, constant string) *Predicate {
	return &Predicate{
		shape:   stringConstantShape,
		column:  column,
		op:      op,
		operand: types.FromString(constant),
	}
}

// NewAttributePredicate builds `left op right` over two attributes of the
// same row.
func NewAttributePredicate(left primitives.ColumnID, op primitives.Predicate, right primitives.ColumnID) *Predicate {
	return &Predicate{
		shape:       attributeShape,
		column:      left,
		op:          op,
		rightColumn: right,
	}
}

// Evaluate applies the predicate to a row view.
func (p *Predicate) Evaluate(regs []types.Register) (bool, error) {
	left, err := registerAt(regs, p.column)
	if err != nil {
		return false, err
	}

	right := p.operand
	if p.shape == attributeShape {
		if right, err = registerAt(regs, p.rightColumn); err != nil {
			return false, err
		}
	}

	match, err := left.Compare(p.op, right)
	if err != nil {
		return false, errors.Wrapf(err, "predicate %s", p)
	}
	return match, nil
}

func (p *Predicate) String() string {
	if p.shape == attributeShape {
		return fmt.Sprintf("attr[%d] %s attr[%d]", p.column, p.op, p.rightColumn)
	}
	return fmt.Sprintf("attr[%d] %s %s", p.column, p.op, p.operand)
}

// registerAt bounds-checks an attribute index against a row view.
func registerAt(regs []types.Register, i primitives.ColumnID) (types.Register, error) {
	if i < 0 || int(i) >= len(regs) {
		return nil, errors.Errorf("attribute index %d out of range for row of width %d", i, len(regs))
	}
	return regs[int(i)], nil
}
