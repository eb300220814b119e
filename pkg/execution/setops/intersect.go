package setops

import "volcano/pkg/iterator"

// Intersect emits each tuple present in both inputs exactly once.
type Intersect struct {
	setOperation
}

// NewIntersect creates a distinct INTERSECT of the two inputs.
func NewIntersect(left, right iterator.Operator) (*Intersect, error) {
	base, err := newSetOperation(left, right, "intersect", func(l, r int) int {
		if l > 0 && r > 0 {
			return 1
		}
		return 0
	})
	if err != nil {
		return nil, err
	}
	return &Intersect{setOperation: base}, nil
}

// IntersectAll emits each tuple with the minimum of its input
// multiplicities.
type IntersectAll struct {
	setOperation
}

// NewIntersectAll creates an INTERSECT ALL of the two inputs.
func NewIntersectAll(left, right iterator.Operator) (*IntersectAll, error) {
	base, err := newSetOperation(left, right, "intersect_all", func(l, r int) int {
		if l < r {
			return l
		}
		return r
	})
	if err != nil {
		return nil, err
	}
	return &IntersectAll{setOperation: base}, nil
}
