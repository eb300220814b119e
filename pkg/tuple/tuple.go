package tuple

import (
	"encoding/binary"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"

	"volcano/pkg/primitives"
	"volcano/pkg/types"
)

// ErrInvalidAttribute is returned when an attribute index is out of range
// for a tuple.
var ErrInvalidAttribute = errors.New("attribute index out of range")

// Tuple is an ordered sequence of registers, the streaming unit between
// operators. Tuple width is fixed by the producing operator; schemas are
// implicit and not checked.
type Tuple struct {
	registers []types.Register
}

// New creates a tuple from the given registers. The slice is used directly;
// callers hand over ownership.
func New(registers ...types.Register) *Tuple {
	return &Tuple{registers: registers}
}

// FromRegisters creates a tuple holding a copy of the given register view.
// Use this to materialize an operator output view, which is only valid until
// the producing operator advances.
func FromRegisters(view []types.Register) *Tuple {
	registers := make([]types.Register, len(view))
	copy(registers, view)
	return &Tuple{registers: registers}
}

// Width returns the number of registers in the tuple.
func (t *Tuple) Width() int {
	return len(t.registers)
}

// Get returns the register at the given attribute index.
func (t *Tuple) Get(i primitives.ColumnID) (types.Register, error) {
	if i < 0 || int(i) >= len(t.registers) {
		return nil, errors.Wrapf(ErrInvalidAttribute, "index %d, width %d", i, len(t.registers))
	}
	return t.registers[int(i)], nil
}

// Registers returns the underlying register sequence as a view.
func (t *Tuple) Registers() []types.Register {
	return t.registers
}

// Hash computes a 64-bit hash over the full register sequence. The mixing is
// sequence-sensitive: each register contributes its variant tag and payload
// bytes to a single running digest, so (1,"a") and ("a",1) hash differently.
func (t *Tuple) Hash() primitives.HashCode {
	d := xxhash.New()
	var buf [9]byte
	for _, reg := range t.registers {
		switch reg.Kind() {
		case types.Int64Kind:
			buf[0] = byte(types.Int64Kind)
			binary.BigEndian.PutUint64(buf[1:], uint64(reg.AsInt()))
			_, _ = d.Write(buf[:9])
		default:
			s := reg.AsString()
			buf[0] = byte(types.Char16Kind)
			buf[1] = byte(len(s))
			_, _ = d.Write(buf[:2])
			_, _ = d.WriteString(s)
		}
	}
	return primitives.HashCode(d.Sum64())
}

// Equals reports whether two tuples have the same width and pairwise equal
// registers (variant + payload).
func (t *Tuple) Equals(other *Tuple) bool {
	if len(t.registers) != len(other.registers) {
		return false
	}
	for i, reg := range t.registers {
		if !reg.Equals(other.registers[i]) {
			return false
		}
	}
	return true
}

// Compare ranks two tuples lexicographically using the total register order.
// A tuple that is a strict prefix of another sorts first. Materializing
// operators use this for deterministic ascending emission.
func (t *Tuple) Compare(other *Tuple) int {
	n := min(len(t.registers), len(other.registers))
	for i := 0; i < n; i++ {
		if c := types.OrderRegisters(t.registers[i], other.registers[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(t.registers) < len(other.registers):
		return -1
	case len(t.registers) > len(other.registers):
		return 1
	default:
		return 0
	}
}

// Clone returns a tuple with its own copy of the register sequence.
// Registers themselves are immutable and shared.
func (t *Tuple) Clone() *Tuple {
	return FromRegisters(t.registers)
}

// Combine concatenates two tuples, left registers first.
func Combine(left, right *Tuple) *Tuple {
	registers := make([]types.Register, 0, len(left.registers)+len(right.registers))
	registers = append(registers, left.registers...)
	registers = append(registers, right.registers...)
	return &Tuple{registers: registers}
}

// String renders the tuple for debugging. The Print operator owns the real
// output format.
func (t *Tuple) String() string {
	parts := make([]string, len(t.registers))
	for i, reg := range t.registers {
		parts[i] = reg.String()
	}
	return "(" + strings.Join(parts, ",") + ")"
}
