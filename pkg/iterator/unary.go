package iterator

import (
	"github.com/pkg/errors"

	"volcano/pkg/types"
)

// UnaryOperator provides the child-management half of operators with a
// single input. Concrete operators embed it and implement their own Next
// and Output; Open and Close recurse into the child by default.
type UnaryOperator struct {
	child Operator
}

// NewUnaryOperator wraps a child operator. The child must not be nil.
func NewUnaryOperator(child Operator) (UnaryOperator, error) {
	if child == nil {
		return UnaryOperator{}, errors.New("child operator cannot be nil")
	}
	return UnaryOperator{child: child}, nil
}

// Child returns the input operator.
func (u *UnaryOperator) Child() Operator {
	return u.child
}

// Open opens the child.
func (u *UnaryOperator) Open() error {
	if err := u.child.Open(); err != nil {
		return errors.Wrap(err, "failed to open child operator")
	}
	return nil
}

// Close closes the child.
func (u *UnaryOperator) Close() error {
	if err := u.child.Close(); err != nil {
		return errors.Wrap(err, "failed to close child operator")
	}
	return nil
}

// FetchNext advances the child once and returns its output view, or nil at
// EOF. The view is borrowed from the child and is invalidated by the next
// advance.
func (u *UnaryOperator) FetchNext() ([]types.Register, error) {
	ok, err := u.child.Next()
	if err != nil {
		return nil, errors.Wrap(err, "error fetching tuple from child")
	}
	if !ok {
		return nil, nil
	}
	return u.child.Output(), nil
}
