package core_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/donovandicks/monadc/core"
	"github.com/donovandicks/monadc/instr"
)

var _ = Describe("Evaluate", func() {
	var (
		p       *core.Program
		unknown core.Value
		input   core.Value
	)

	BeforeEach(func() {
		var err error
		p, err = core.NewProgram(0)
		Expect(err).NotTo(HaveOccurred())
		unknown, _ = p.NewUnknownValue()
		input, _ = p.NewInputValue()
	})

	exact := func(n int64) core.Value {
		v, err := p.NewExactValue(n)
		Expect(err).NotTo(HaveOccurred())
		return v
	}

	eval := func(op instr.Opcode, left, right core.Value) core.Value {
		v, err := core.Evaluate(p, op, left, right)
		Expect(err).NotTo(HaveOccurred())
		return v
	}

	Context("Add", func() {
		It("should fold constants", func() {
			Expect(eval(instr.OpAdd, exact(2), exact(3)).IsExact(5)).To(BeTrue())
		})

		It("should return the left operand when adding zero", func() {
			v := eval(instr.OpAdd, unknown, exact(0))
			Expect(v.ID()).To(Equal(unknown.ID()))
		})

		It("should return the right operand when the left is zero", func() {
			v := eval(instr.OpAdd, exact(0), input)
			Expect(v.ID()).To(Equal(input.ID()))
			Expect(v.Equal(input)).To(BeTrue())
		})

		It("should give up otherwise", func() {
			v := eval(instr.OpAdd, unknown, exact(4))
			Expect(v.Kind()).To(Equal(core.KindUnknown))
			Expect(v.Equal(unknown)).To(BeFalse())
		})

		It("should wrap on overflow", func() {
			Expect(eval(instr.OpAdd, exact(math.MaxInt64), exact(1)).IsExact(math.MinInt64)).To(BeTrue())
		})
	})

	Context("Mul", func() {
		It("should fold constants", func() {
			Expect(eval(instr.OpMul, exact(-4), exact(6)).IsExact(-24)).To(BeTrue())
		})

		It("should absorb on a zero right operand", func() {
			Expect(eval(instr.OpMul, unknown, exact(0)).IsExact(0)).To(BeTrue())
		})

		It("should absorb on a zero left operand", func() {
			Expect(eval(instr.OpMul, exact(0), unknown).IsExact(0)).To(BeTrue())
		})

		It("should return the left operand when multiplying by one", func() {
			Expect(eval(instr.OpMul, input, exact(1)).ID()).To(Equal(input.ID()))
		})

		It("should return the right operand when the left is one", func() {
			Expect(eval(instr.OpMul, exact(1), unknown).ID()).To(Equal(unknown.ID()))
		})

		It("should give up otherwise", func() {
			Expect(eval(instr.OpMul, input, unknown).Kind()).To(Equal(core.KindUnknown))
		})
	})

	Context("Div", func() {
		It("should truncate toward zero", func() {
			Expect(eval(instr.OpDiv, exact(-7), exact(2)).IsExact(-3)).To(BeTrue())
		})

		It("should keep a zero dividend", func() {
			zero := exact(0)
			Expect(eval(instr.OpDiv, zero, unknown).ID()).To(Equal(zero.ID()))
		})

		It("should return the left operand when dividing by one", func() {
			Expect(eval(instr.OpDiv, unknown, exact(1)).ID()).To(Equal(unknown.ID()))
		})

		It("should fail on a provable zero divisor", func() {
			_, err := core.Evaluate(p, instr.OpDiv, unknown, exact(0))
			Expect(err).To(MatchError(core.ErrDivisionByZero))
			_, err = core.Evaluate(p, instr.OpDiv, exact(5), exact(0))
			Expect(err).To(MatchError(core.ErrDivisionByZero))
		})

		It("should give up otherwise", func() {
			Expect(eval(instr.OpDiv, unknown, exact(26)).Kind()).To(Equal(core.KindUnknown))
		})
	})

	Context("Mod", func() {
		It("should let the sign follow the dividend", func() {
			Expect(eval(instr.OpMod, exact(-7), exact(3)).IsExact(-1)).To(BeTrue())
			Expect(eval(instr.OpMod, exact(7), exact(-3)).IsExact(1)).To(BeTrue())
		})

		It("should produce zero for a zero dividend or a unit divisor", func() {
			Expect(eval(instr.OpMod, exact(0), unknown).IsExact(0)).To(BeTrue())
			Expect(eval(instr.OpMod, input, exact(1)).IsExact(0)).To(BeTrue())
		})

		It("should fail on a provable zero divisor", func() {
			_, err := core.Evaluate(p, instr.OpMod, input, exact(0))
			Expect(err).To(MatchError(core.ErrDivisionByZero))
		})

		It("should give up otherwise", func() {
			Expect(eval(instr.OpMod, input, exact(26)).Kind()).To(Equal(core.KindUnknown))
		})
	})

	Context("Equal", func() {
		It("should compare constants", func() {
			Expect(eval(instr.OpEqual, exact(3), exact(3)).IsExact(1)).To(BeTrue())
			Expect(eval(instr.OpEqual, exact(3), exact(4)).IsExact(0)).To(BeTrue())
		})

		It("should know a value equals itself", func() {
			Expect(eval(instr.OpEqual, input, input).IsExact(1)).To(BeTrue())
		})

		It("should not equate distinct unknowns", func() {
			other, _ := p.NewUnknownValue()
			Expect(eval(instr.OpEqual, unknown, other).Kind()).To(Equal(core.KindUnknown))
		})

		It("should give up on a constant against an input", func() {
			Expect(eval(instr.OpEqual, exact(12), input).Kind()).To(Equal(core.KindUnknown))
		})
	})

	It("should panic on an opcode it cannot evaluate", func() {
		Expect(func() {
			core.Evaluate(p, instr.OpInput, unknown, unknown)
		}).To(Panic())
	})
})
