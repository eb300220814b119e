package query

import (
	"github.com/pkg/errors"

	"volcano/pkg/iterator"
	"volcano/pkg/types"
)

// Select filters rows with a single predicate. It is fully pipelined: each
// Next pulls from the input until a row satisfies the predicate or the input
// is exhausted, so non-matching rows never surface to the parent.
type Select struct {
	iterator.UnaryOperator
	predicate *Predicate
	output    []types.Register
}

// NewSelect creates a selection over the given input.
func NewSelect(child iterator.Operator, predicate *Predicate) (*Select, error) {
	if predicate == nil {
		return nil, errors.New("predicate cannot be nil")
	}
	base, err := iterator.NewUnaryOperator(child)
	if err != nil {
		return nil, err
	}
	return &Select{UnaryOperator: base, predicate: predicate}, nil
}

func (s *Select) Next() (bool, error) {
	for {
		regs, err := s.FetchNext()
		if err != nil {
			return false, err
		}
		if regs == nil {
			s.output = nil
			return false, nil
		}

		match, err := s.predicate.Evaluate(regs)
		if err != nil {
			return false, errors.Wrap(err, "predicate evaluation failed")
		}
		if match {
			s.output = regs
			return true, nil
		}
	}
}

func (s *Select) Output() []types.Register {
	return s.output
}

func (s *Select) Close() error {
	s.output = nil
	return s.UnaryOperator.Close()
}
