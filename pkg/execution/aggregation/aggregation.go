package aggregation

import (
	"github.com/pkg/errors"

	"volcano/pkg/primitives"
	"volcano/pkg/tuple"
	"volcano/pkg/types"
)

// Function is an aggregation function opcode.
type Function int

const (
	Min Function = iota
	Max
	Sum
	Count
)

func (f Function) String() string {
	switch f {
	case Min:
		return "MIN"
	case Max:
		return "MAX"
	case Sum:
		return "SUM"
	case Count:
		return "COUNT"
	default:
		return "UNKNOWN"
	}
}

// Aggregate describes one aggregation: the function and its target
// attribute. Count ignores the attribute.
type Aggregate struct {
	Func   Function
	Column primitives.ColumnID
}

// state accumulates one aggregate over the rows of one group.
type state struct {
	seen  bool
	min   types.Register
	max   types.Register
	sum   int64 // wraps in two's complement on overflow
	count int64
}

// update folds one row into the accumulator.
func (s *state) update(agg Aggregate, row *tuple.Tuple) error {
	switch agg.Func {
	case Count:
		s.count++
		return nil

	case Sum:
		reg, err := row.Get(agg.Column)
		if err != nil {
			return err
		}
		if reg.Kind() != types.Int64Kind {
			return errors.Wrapf(types.ErrTypeMismatch, "SUM over %s attribute", reg.Kind())
		}
		s.sum += reg.AsInt()
		return nil

	case Min:
		reg, err := row.Get(agg.Column)
		if err != nil {
			return err
		}
		if !s.seen {
			s.min = reg
			s.seen = true
			return nil
		}
		less, err := reg.Compare(primitives.LessThan, s.min)
		if err != nil {
			return err
		}
		if less {
			s.min = reg
		}
		return nil

	case Max:
		reg, err := row.Get(agg.Column)
		if err != nil {
			return err
		}
		if !s.seen {
			s.max = reg
			s.seen = true
			return nil
		}
		greater, err := reg.Compare(primitives.GreaterThan, s.max)
		if err != nil {
			return err
		}
		if greater {
			s.max = reg
		}
		return nil

	default:
		return errors.Errorf("unknown aggregation function %d", agg.Func)
	}
}

// finalize produces the output register for the accumulator. MIN and MAX
// over an empty group fall back to integer zero; there are no NULLs in this
// engine.
func (s *state) finalize(agg Aggregate) types.Register {
	switch agg.Func {
	case Count:
		return types.FromInt(s.count)
	case Sum:
		return types.FromInt(s.sum)
	case Min:
		if !s.seen {
			return types.FromInt(0)
		}
		return s.min
	default:
		if !s.seen {
			return types.FromInt(0)
		}
		return s.max
	}
}
