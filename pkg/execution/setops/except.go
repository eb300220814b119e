package setops

import "volcano/pkg/iterator"

// Except emits each tuple present in the left input but absent from the
// right input exactly once.
type Except struct {
	setOperation
}

// NewExcept creates a distinct EXCEPT of the two inputs.
func NewExcept(left, right iterator.Operator) (*Except, error) {
	base, err := newSetOperation(left, right, "except", func(l, r int) int {
		if l > 0 && r == 0 {
			return 1
		}
		return 0
	})
	if err != nil {
		return nil, err
	}
	return &Except{setOperation: base}, nil
}

// ExceptAll emits each tuple with its left multiplicity minus its right
// multiplicity, clamped at zero.
type ExceptAll struct {
	setOperation
}

// NewExceptAll creates an EXCEPT ALL of the two inputs.
func NewExceptAll(left, right iterator.Operator) (*ExceptAll, error) {
	base, err := newSetOperation(left, right, "except_all", func(l, r int) int {
		if l > r {
			return l - r
		}
		return 0
	})
	if err != nil {
		return nil, err
	}
	return &ExceptAll{setOperation: base}, nil
}
