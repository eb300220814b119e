package types

import (
	"encoding/binary"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"

	"volcano/pkg/primitives"
)

// CharCapacity is the payload bound of the string variant. The external
// format is CHAR(16): strings longer than 16 bytes are truncated at
// construction time.
const CharCapacity = 16

// Register is a typed scalar cell, the unit a tuple is made of. Exactly one
// of two variants: a 64-bit signed integer or a bounded byte string.
// Registers are immutable once constructed and may be shared freely.
//
// Comparing two registers of different variants is a programmer error and
// fails with ErrTypeMismatch.
type Register interface {
	// Kind reports the variant this register holds.
	Kind() Kind

	// AsInt returns the integer payload, or 0 for the string variant.
	AsInt() int64

	// AsString returns the string payload, or "" for the integer variant.
	AsString() string

	// Hash returns a 64-bit hash that is a pure function of variant and
	// payload. Equal registers have equal hashes.
	Hash() primitives.HashCode

	// Equals reports variant + payload equality. Hash equality is never
	// used as a proxy.
	Equals(other Register) bool

	// Compare evaluates `receiver op other`. Both registers must hold the
	// same variant; otherwise ErrTypeMismatch is returned.
	Compare(op primitives.Predicate, other Register) (bool, error)

	String() string
}

// FromInt constructs an integer register.
func FromInt(value int64) Register {
	return &IntRegister{value: value}
}

// FromString constructs a string register. Values longer than CharCapacity
// bytes are truncated, matching the CHAR(16) external format.
func FromString(value string) Register {
	if len(value) > CharCapacity {
		value = value[:CharCapacity]
	}
	return &StringRegister{value: value}
}

// IntRegister is the INT64 variant.
type IntRegister struct {
	value int64
}

func (r *IntRegister) Kind() Kind {
	return Int64Kind
}

func (r *IntRegister) AsInt() int64 {
	return r.value
}

func (r *IntRegister) AsString() string {
	return ""
}

func (r *IntRegister) Hash() primitives.HashCode {
	var buf [9]byte
	buf[0] = byte(Int64Kind)
	binary.BigEndian.PutUint64(buf[1:], uint64(r.value))
	return primitives.HashCode(xxhash.Sum64(buf[:]))
}

func (r *IntRegister) Equals(other Register) bool {
	o, ok := other.(*IntRegister)
	if !ok {
		return false
	}
	return r.value == o.value
}

func (r *IntRegister) Compare(op primitives.Predicate, other Register) (bool, error) {
	o, ok := other.(*IntRegister)
	if !ok {
		return false, errors.Wrapf(ErrTypeMismatch, "comparing %s with %s", r.Kind(), other.Kind())
	}
	return compareOrdered(r.value, o.value, op)
}

func (r *IntRegister) String() string {
	return strconv.FormatInt(r.value, 10)
}

// StringRegister is the CHAR(16) variant.
type StringRegister struct {
	value string
}

func (r *StringRegister) Kind() Kind {
	return Char16Kind
}

func (r *StringRegister) AsInt() int64 {
	return 0
}

func (r *StringRegister) AsString() string {
	return r.value
}

func (r *StringRegister) Hash() primitives.HashCode {
	d := xxhash.New()
	_, _ = d.Write([]byte{byte(Char16Kind)})
	_, _ = d.WriteString(r.value)
	return primitives.HashCode(d.Sum64())
}

func (r *StringRegister) Equals(other Register) bool {
	o, ok := other.(*StringRegister)
	if !ok {
		return false
	}
	return r.value == o.value
}

func (r *StringRegister) Compare(op primitives.Predicate, other Register) (bool, error) {
	o, ok := other.(*StringRegister)
	if !ok {
		return false, errors.Wrapf(ErrTypeMismatch, "comparing %s with %s", r.Kind(), other.Kind())
	}
	return compareOrdered(r.value, o.value, op)
}

func (r *StringRegister) String() string {
	return r.value
}

// compareOrdered evaluates `a op b` over any ordered payload type.
func compareOrdered[T int64 | string](a, b T, op primitives.Predicate) (bool, error) {
	switch op {
	case primitives.Equals:
		return a == b, nil
	case primitives.NotEqual:
		return a != b, nil
	case primitives.LessThan:
		return a < b, nil
	case primitives.LessThanOrEqual:
		return a <= b, nil
	case primitives.GreaterThan:
		return a > b, nil
	case primitives.GreaterThanOrEqual:
		return a >= b, nil
	default:
		return false, errors.Errorf("unknown comparison opcode %d", op)
	}
}

// OrderRegisters ranks two registers in a total, infallible order used by
// materializing operators for deterministic emission: the INT64 variant
// sorts before CHAR16, and within a variant the natural payload order
// applies. On the homogeneous columns those operators require this is
// exactly the natural order.
func OrderRegisters(a, b Register) int {
	if a.Kind() != b.Kind() {
		if a.Kind() < b.Kind() {
			return -1
		}
		return 1
	}

	switch a.Kind() {
	case Int64Kind:
		av, bv := a.AsInt(), b.AsInt()
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	default:
		av, bv := a.AsString(), b.AsString()
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	}
}
