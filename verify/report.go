package verify

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/donovandicks/monadc/core"
	"github.com/donovandicks/monadc/instr"
)

// Report summarizes one optimized program.
type Report struct {
	Name       string
	Original   []instr.Inst
	Optimized  []instr.Inst
	LintIssues []Issue

	VerifyTrials int
	VerifyErr    error
}

// NewReport creates a report for an already optimized program.
func NewReport(name string, original, optimized []instr.Inst) *Report {
	return &Report{
		Name:      name,
		Original:  original,
		Optimized: optimized,
	}
}

// GenerateReport lints, optimizes, and, when trials is positive, checks
// the optimized program against the original. An optimizer failure is
// returned as an error; a failed check is recorded in VerifyErr.
func GenerateReport(
	name string,
	prog []instr.Inst,
	opt *core.Optimizer,
	trials int,
	rng *rand.Rand,
) (*Report, error) {
	issues := Lint(prog)

	optimized, err := opt.Optimize(prog)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	r := NewReport(name, prog, optimized)
	r.LintIssues = issues

	if trials > 0 {
		r.VerifyTrials = trials
		r.VerifyErr = CheckEquivalence(prog, optimized, trials, rng)
	}

	return r, nil
}

// Removed returns how many instructions were dropped.
func (r *Report) Removed() int {
	return len(r.Original) - len(r.Optimized)
}

// Reduction returns the share of instructions removed, in percent.
func (r *Report) Reduction() float64 {
	return reduction(len(r.Original), len(r.Optimized))
}

func reduction(orig, opt int) float64 {
	if orig == 0 {
		return 0
	}
	return float64(orig-opt) / float64(orig) * 100
}

// Efficiency returns how much shorter the optimized program is relative to
// its own length, in percent. It is +Inf when everything was removed.
func (r *Report) Efficiency() float64 {
	orig, opt := float64(len(r.Original)), float64(len(r.Optimized))
	if opt == 0 {
		if orig == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return (orig/opt - 1) * 100
}

// Verified reports whether a check ran and passed.
func (r *Report) Verified() bool {
	return r.VerifyTrials > 0 && r.VerifyErr == nil
}

func formatPercent(p float64) string {
	if math.IsInf(p, 0) || math.IsNaN(p) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", p)
}

func (r *Report) verifyStatus() string {
	switch {
	case r.VerifyTrials == 0:
		return "skipped"
	case r.VerifyErr != nil:
		return "FAILED"
	default:
		return fmt.Sprintf("ok (%d trials)", r.VerifyTrials)
	}
}

// WriteSummary writes the two-line length comparison.
func (r *Report) WriteSummary(w io.Writer) {
	fmt.Fprintf(w, "Original vs. Optimized Length:\t%d vs %d\n",
		len(r.Original), len(r.Optimized))
	fmt.Fprintf(w, "Optimization is %s more efficient.\n", formatPercent(r.Efficiency()))
}

// WriteReport writes the summary, lint issues, and verification result.
func (r *Report) WriteReport(w io.Writer) {
	if r.Name != "" {
		fmt.Fprintf(w, "== %s ==\n", r.Name)
	}
	r.WriteSummary(w)

	for _, issue := range r.LintIssues {
		fmt.Fprintf(w, "  [%s pc=%d] %s: %s\n", issue.Type, issue.PC, issue.Inst, issue.Message)
	}

	fmt.Fprintf(w, "Verification: %s\n", r.verifyStatus())
	if r.VerifyErr != nil {
		fmt.Fprintf(w, "  %v\n", r.VerifyErr)
	}
}

// SaveReportToFile saves the report to a file.
func (r *Report) SaveReportToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	r.WriteReport(file)
	return nil
}

// WriteTable renders several reports as one table with a total row.
func WriteTable(w io.Writer, reports []*Report) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Program", "Original", "Optimized", "Removed", "Reduction", "Verify"})

	totalOrig, totalOpt := 0, 0
	for _, r := range reports {
		t.AppendRow(table.Row{
			r.Name,
			len(r.Original),
			len(r.Optimized),
			r.Removed(),
			formatPercent(r.Reduction()),
			r.verifyStatus(),
		})
		totalOrig += len(r.Original)
		totalOpt += len(r.Optimized)
	}

	t.AppendFooter(table.Row{
		"Total", totalOrig, totalOpt, totalOrig - totalOpt,
		formatPercent(reduction(totalOrig, totalOpt)), "",
	})

	t.Render()
}
