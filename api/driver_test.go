package api_test

import (
	"context"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/donovandicks/monadc/api"
	"github.com/donovandicks/monadc/core"
	"github.com/donovandicks/monadc/instr"
	"github.com/donovandicks/monadc/program"
)

var _ = Describe("Driver", func() {
	var driver api.Driver

	BeforeEach(func() {
		driver = api.DriverBuilder{}.
			WithOptimizer(core.NewBuilder()).
			WithConcurrency(3).
			WithVerifyTrials(50).
			WithSeed(11).
			Build("Driver")
	})

	It("should return reports in job order", func() {
		var jobs []api.Job
		for i := 0; i < 10; i++ {
			prog := []instr.Inst{instr.Input(instr.W)}
			for j := 0; j < i; j++ {
				prog = append(prog, instr.Add(instr.W, instr.Lit(0)))
			}
			prog = append(prog, instr.Add(instr.X, instr.Lit(int64(i+1))))
			jobs = append(jobs, api.Job{Name: fmt.Sprintf("job%d", i), Program: prog})
		}

		reports, err := driver.Optimize(context.Background(), jobs)
		Expect(err).NotTo(HaveOccurred())
		Expect(reports).To(HaveLen(10))
		for i, r := range reports {
			Expect(r.Name).To(Equal(fmt.Sprintf("job%d", i)))
			Expect(r.Removed()).To(Equal(i))
			Expect(r.Optimized).To(HaveLen(2))
			Expect(r.Verified()).To(BeTrue())
		}
	})

	It("should optimize the validator", func() {
		prog, err := program.LoadProgramFile("../program/testdata/monad.txt")
		Expect(err).NotTo(HaveOccurred())

		reports, err := driver.Optimize(context.Background(), []api.Job{{Name: "monad", Program: prog}})
		Expect(err).NotTo(HaveOccurred())
		Expect(reports[0].Removed()).To(BeNumerically(">", 0))
		Expect(reports[0].VerifyErr).NotTo(HaveOccurred())
	})

	It("should fail when any job fails", func() {
		jobs := []api.Job{
			{Name: "ok", Program: []instr.Inst{instr.Input(instr.W)}},
			{Name: "bad", Program: []instr.Inst{instr.Div(instr.W, instr.Lit(0))}},
		}

		_, err := driver.Optimize(context.Background(), jobs)
		Expect(err).To(MatchError(core.ErrDivisionByZero))
		Expect(err.Error()).To(ContainSubstring("bad"))
	})

	It("should stop on a cancelled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := driver.Optimize(ctx, []api.Job{{Name: "late", Program: nil}})
		Expect(err).To(MatchError(context.Canceled))
	})

	It("should handle an empty batch", func() {
		reports, err := driver.Optimize(context.Background(), nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(reports).To(BeEmpty())
	})
})
