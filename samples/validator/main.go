package main

import (
	_ "embed"
	"fmt"
	"math/rand"
	"os"

	"github.com/tebeka/atexit"

	"github.com/donovandicks/monadc/core"
	"github.com/donovandicks/monadc/program"
	"github.com/donovandicks/monadc/verify"
)

//go:embed validator.monad
var validatorKernel string

func main() {
	prog, err := program.Parse(validatorKernel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	opt := core.NewBuilder().Build()
	optimized, bank, err := opt.OptimizeWithState(prog)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	report := verify.NewReport("validator", prog, optimized)
	report.VerifyTrials = 1000
	report.VerifyErr = verify.CheckEquivalence(prog, optimized, report.VerifyTrials, rand.New(rand.NewSource(14)))
	report.WriteReport(os.Stdout)

	fmt.Println()
	core.PrintBank(os.Stdout, bank)

	if !report.Verified() {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
