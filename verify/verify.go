// Package verify checks optimized programs against their originals.
//
// It has three parts:
//
//  1. Lint (lint.go): static checks run before optimizing, such as division
//     by a literal zero, which the optimizer refuses.
//
//  2. Functional simulator (funcsim.go): a concrete interpreter of the
//     four-register machine. Registers start at zero and inputs are read in
//     order.
//
//  3. Equivalence check (this file): runs the original and the optimized
//     program on the same random inputs and compares the final registers.
//
// # Usage Example
//
//	opt := core.NewBuilder().Build()
//	report, err := verify.GenerateReport("monad", prog, opt, 1000, rand.New(rand.NewSource(1)))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report.WriteReport(os.Stdout)
//
// # Limitations
//
//   - Equivalence is sampled, not proven.
//   - Inputs on which the original program faults are skipped, since the
//     optimizer may drop the faulting instruction. A check in which every
//     trial was skipped fails with ErrNoComparableTrials.
package verify

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/donovandicks/monadc/instr"
)

// MismatchError describes inputs on which two programs disagree.
type MismatchError struct {
	Inputs    []int64
	Original  State
	Optimized State
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("programs disagree on inputs %v: original %v, optimized %v",
		e.Inputs, e.Original, e.Optimized)
}

// ErrInputCountChanged is returned when two programs read a different
// number of inputs.
var ErrInputCountChanged = errors.New("programs read a different number of inputs")

// ErrNoComparableTrials is returned when the original program faulted on
// every trial, so nothing was compared.
var ErrNoComparableTrials = errors.New("original program faulted on every trial")

// RandomInputs draws n inputs. Even trials use digits 1 to 9, odd trials
// use values in [-1000, 1000].
func RandomInputs(rng *rand.Rand, n int, trial int) []int64 {
	inputs := make([]int64, n)
	for i := range inputs {
		if trial%2 == 0 {
			inputs[i] = 1 + rng.Int63n(9)
		} else {
			inputs[i] = rng.Int63n(2001) - 1000
		}
	}
	return inputs
}

// CheckEquivalence runs both programs on trials random input vectors and
// returns a *MismatchError for the first disagreement. Trials on which the
// original faults are not compared.
func CheckEquivalence(original, optimized []instr.Inst, trials int, rng *rand.Rand) error {
	n := CountInputs(original)
	if m := CountInputs(optimized); m != n {
		return fmt.Errorf("%w: %d vs %d", ErrInputCountChanged, n, m)
	}

	fs := NewFunctionalSimulator()
	compared := 0
	for trial := 0; trial < trials; trial++ {
		inputs := RandomInputs(rng, n, trial)

		want, err := fs.Run(original, inputs)
		if err != nil {
			continue
		}

		got, err := fs.Run(optimized, inputs)
		if err != nil {
			return fmt.Errorf("optimized program failed on inputs %v: %w", inputs, err)
		}

		if got != want {
			return &MismatchError{Inputs: inputs, Original: want, Optimized: got}
		}
		compared++
	}

	if trials > 0 && compared == 0 {
		return fmt.Errorf("%w (%d trials)", ErrNoComparableTrials, trials)
	}

	return nil
}
