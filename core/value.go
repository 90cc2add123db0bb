package core

import (
	"fmt"
	"log/slog"

	"github.com/donovandicks/monadc/util"
)

// Kind tells which lattice element a Value is.
type Kind uint8

// The lattice elements.
const (
	KindExact Kind = iota + 1
	KindInput
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindExact:
		return "Exact"
	case KindInput:
		return "Input"
	case KindUnknown:
		return "Unknown"
	default:
		return "Invalid"
	}
}

// Value is the compile-time approximation of a register: an exact
// constant, the i-th program input, or nothing known at all. Every Value
// carries the identity it was minted with. Values are only minted by a
// Program.
type Value struct {
	kind Kind
	id   util.ID
	n    int64 // constant for KindExact, input index for KindInput
}

// Kind returns the lattice element.
func (v Value) Kind() Kind { return v.kind }

// ID returns the identity the value was minted with.
func (v Value) ID() util.ID { return v.id }

// Exact returns the constant when the value is exact.
func (v Value) Exact() (int64, bool) {
	if v.kind != KindExact {
		return 0, false
	}
	return v.n, true
}

// InputIndex returns which program input the value stands for.
func (v Value) InputIndex() (int, bool) {
	if v.kind != KindInput {
		return 0, false
	}
	return int(v.n), true
}

// IsExact reports whether the value is the exact constant n.
func (v Value) IsExact(n int64) bool {
	return v.kind == KindExact && v.n == n
}

// Equal is lattice equality. Exact values are equal when their constants
// are; inputs and unknowns are equal only to themselves.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindExact:
		return v.n == o.n
	case KindInput, KindUnknown:
		return v.id == o.id
	default:
		return false
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindExact:
		return fmt.Sprintf("Exact(#%d, %d)", v.id, v.n)
	case KindInput:
		return fmt.Sprintf("Input(#%d, %d)", v.id, v.n)
	case KindUnknown:
		return fmt.Sprintf("Unknown(#%d)", v.id)
	default:
		return "Invalid"
	}
}

func (v Value) LogValue() slog.Value {
	return slog.StringValue(v.String())
}
