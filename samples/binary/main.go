package main

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/tebeka/atexit"

	"github.com/donovandicks/monadc/core"
	"github.com/donovandicks/monadc/program"
	"github.com/donovandicks/monadc/verify"
)

//go:embed binary.yaml
var binaryKernel []byte

type traceObserver struct{}

func (traceObserver) Observe(d core.Decision) {
	status := "keep"
	if !d.Retained {
		status = "drop"
	}
	fmt.Printf("%3d  %-12s %s  %s -> %s\n", d.Index, d.Inst, status, d.Before, d.After)
}

func main() {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	slog.SetDefault(slog.New(handler))

	prog, err := program.ParseYAML(binaryKernel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	opt := core.NewBuilder().WithObserver(traceObserver{}).Build()
	optimized, err := opt.Optimize(prog)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	verify.NewReport("binary", prog, optimized).WriteSummary(os.Stdout)
	atexit.Exit(0)
}
