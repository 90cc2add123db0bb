// Package util holds small generators shared by the optimizer packages.
package util

import (
	"errors"
	"math"
)

// ID identifies an abstract value within a single optimizer invocation.
type ID uint64

// MaxID is never issued; reaching it ends the generator.
const MaxID = ID(math.MaxUint64)

// ErrIDExhausted is returned once a generator has issued every ID it can.
var ErrIDExhausted = errors.New("identifier space exhausted")

// IDGen issues strictly increasing IDs starting from a base.
type IDGen struct {
	next ID
}

// MakeIDGen returns a generator whose first ID is start.
func MakeIDGen(start ID) *IDGen {
	return &IDGen{next: start}
}

// Next returns a fresh ID greater than every ID issued before. The boolean
// is false once the range is exhausted.
func (g *IDGen) Next() (ID, bool) {
	if g.next == MaxID {
		return 0, false
	}
	id := g.next
	g.next++
	return id, true
}

// Make is Next with exhaustion reported as ErrIDExhausted.
func (g *IDGen) Make() (ID, error) {
	id, ok := g.Next()
	if !ok {
		return 0, ErrIDExhausted
	}
	return id, nil
}
