package iterator

import (
	stderrors "errors"

	"github.com/pkg/errors"
)

// BinaryOperator provides the child-management half of operators with two
// inputs (joins, set operations). Concrete operators embed it and implement
// their own Next and Output.
type BinaryOperator struct {
	left  Operator
	right Operator
}

// NewBinaryOperator wraps the two children. Neither may be nil.
func NewBinaryOperator(left, right Operator) (BinaryOperator, error) {
	if left == nil {
		return BinaryOperator{}, errors.New("left child operator cannot be nil")
	}
	if right == nil {
		return BinaryOperator{}, errors.New("right child operator cannot be nil")
	}
	return BinaryOperator{left: left, right: right}, nil
}

// Left returns the left input operator.
func (b *BinaryOperator) Left() Operator {
	return b.left
}

// Right returns the right input operator.
func (b *BinaryOperator) Right() Operator {
	return b.right
}

// Open opens both children, left first.
func (b *BinaryOperator) Open() error {
	if err := b.left.Open(); err != nil {
		return errors.Wrap(err, "failed to open left child")
	}
	if err := b.right.Open(); err != nil {
		return errors.Wrap(err, "failed to open right child")
	}
	return nil
}

// Close closes both children, collecting errors from both before returning.
func (b *BinaryOperator) Close() error {
	var errs []error

	if err := b.left.Close(); err != nil {
		errs = append(errs, errors.Wrap(err, "left child close"))
	}
	if err := b.right.Close(); err != nil {
		errs = append(errs, errors.Wrap(err, "right child close"))
	}

	return stderrors.Join(errs...)
}
