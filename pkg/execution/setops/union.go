package setops

import "volcano/pkg/iterator"

// Union emits each tuple present in either input exactly once.
type Union struct {
	setOperation
}

// NewUnion creates a distinct UNION of the two inputs.
func NewUnion(left, right iterator.Operator) (*Union, error) {
	base, err := newSetOperation(left, right, "union", func(l, r int) int {
		if l+r > 0 {
			return 1
		}
		return 0
	})
	if err != nil {
		return nil, err
	}
	return &Union{setOperation: base}, nil
}

// UnionAll emits each tuple with the sum of its input multiplicities.
type UnionAll struct {
	setOperation
}

// NewUnionAll creates a UNION ALL of the two inputs.
func NewUnionAll(left, right iterator.Operator) (*UnionAll, error) {
	base, err := newSetOperation(left, right, "union_all", func(l, r int) int {
		return l + r
	})
	if err != nil {
		return nil, err
	}
	return &UnionAll{setOperation: base}, nil
}
