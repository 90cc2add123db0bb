package core_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/donovandicks/monadc/core"
	"github.com/donovandicks/monadc/instr"
	"github.com/donovandicks/monadc/util"
)

var _ = Describe("Value", func() {
	var p *core.Program

	BeforeEach(func() {
		var err error
		p, err = core.NewProgram(0)
		Expect(err).NotTo(HaveOccurred())
	})

	mustExact := func(n int64) core.Value {
		v, err := p.NewExactValue(n)
		Expect(err).NotTo(HaveOccurred())
		return v
	}

	It("should compare exact values by payload", func() {
		a := mustExact(7)
		b := mustExact(7)
		Expect(a.ID()).NotTo(Equal(b.ID()))
		Expect(a.Equal(b)).To(BeTrue())
		Expect(a.Equal(mustExact(8))).To(BeFalse())
	})

	It("should never equate separately minted unknowns", func() {
		a, _ := p.NewUnknownValue()
		b, _ := p.NewUnknownValue()
		Expect(a.Equal(b)).To(BeFalse())
		Expect(a.Equal(a)).To(BeTrue())
	})

	It("should never equate separately minted inputs", func() {
		a, _ := p.NewInputValue()
		b, _ := p.NewInputValue()
		Expect(a.Equal(b)).To(BeFalse())
		Expect(b.Equal(b)).To(BeTrue())
	})

	It("should not equate values of different kinds", func() {
		u, _ := p.NewUnknownValue()
		in, _ := p.NewInputValue()
		Expect(u.Equal(in)).To(BeFalse())
		Expect(mustExact(0).Equal(u)).To(BeFalse())
	})

	It("should render every kind", func() {
		Expect(mustExact(-3).String()).To(MatchRegexp(`^Exact\(#\d+, -3\)$`))
		in, _ := p.NewInputValue()
		Expect(in.String()).To(MatchRegexp(`^Input\(#\d+, 0\)$`))
		u, _ := p.NewUnknownValue()
		Expect(u.String()).To(MatchRegexp(`^Unknown\(#\d+\)$`))
	})
})

var _ = Describe("Program", func() {
	It("should start with four distinct exact zeros", func() {
		p, err := core.NewProgram(100)
		Expect(err).NotTo(HaveOccurred())

		bank := p.InitialRegisters()
		seen := map[util.ID]bool{}
		for _, v := range bank {
			Expect(v.IsExact(0)).To(BeTrue())
			Expect(v.ID()).To(BeNumerically(">=", 100))
			Expect(seen[v.ID()]).To(BeFalse())
			seen[v.ID()] = true
		}
	})

	It("should return the same initial bank every time", func() {
		p, _ := core.NewProgram(0)
		a := p.InitialRegisters()
		p.NewUnknownValue()
		b := p.InitialRegisters()
		for i := range a {
			Expect(a[i].ID()).To(Equal(b[i].ID()))
		}
	})

	It("should number inputs sequentially", func() {
		p, _ := core.NewProgram(0)
		for i := 0; i < 3; i++ {
			v, err := p.NewInputValue()
			Expect(err).NotTo(HaveOccurred())
			idx, ok := v.InputIndex()
			Expect(ok).To(BeTrue())
			Expect(idx).To(Equal(i))
		}
		Expect(p.InputsConsumed()).To(Equal(3))
	})

	It("should mint strictly increasing identities", func() {
		p, _ := core.NewProgram(0)
		a, _ := p.NewExactValue(1)
		b, _ := p.NewUnknownValue()
		c, _ := p.NewInputValue()
		Expect(b.ID()).To(BeNumerically(">", a.ID()))
		Expect(c.ID()).To(BeNumerically(">", b.ID()))
	})

	It("should fail when the identity space cannot hold the initial bank", func() {
		_, err := core.NewProgram(util.MaxID - 2)
		Expect(err).To(MatchError(util.ErrIDExhausted))
	})

	It("should report exhaustion while minting", func() {
		p, err := core.NewProgram(util.MaxID - 5)
		Expect(err).NotTo(HaveOccurred())
		_, err = p.NewUnknownValue()
		Expect(err).NotTo(HaveOccurred())
		_, err = p.NewInputValue()
		Expect(err).To(MatchError(util.ErrIDExhausted))
	})
})

var _ = Describe("Bank", func() {
	It("should address slots by register", func() {
		p, _ := core.NewProgram(0)
		bank := p.InitialRegisters()
		v, _ := p.NewExactValue(9)
		bank.Set(instr.Y, v)
		Expect(bank.Get(instr.Y).IsExact(9)).To(BeTrue())
		Expect(bank.Get(instr.X).IsExact(0)).To(BeTrue())
	})
})
