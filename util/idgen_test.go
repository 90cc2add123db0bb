package util_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/donovandicks/monadc/util"
)

var _ = Describe("IDGen", func() {
	It("should start at the base", func() {
		g := util.MakeIDGen(42)
		id, ok := g.Next()
		Expect(ok).To(BeTrue())
		Expect(id).To(Equal(util.ID(42)))
	})

	It("should issue strictly increasing ids", func() {
		g := util.MakeIDGen(0)
		prev, _ := g.Next()
		for i := 0; i < 100; i++ {
			id, ok := g.Next()
			Expect(ok).To(BeTrue())
			Expect(id).To(BeNumerically(">", prev))
			prev = id
		}
	})

	It("should stop before the maximum", func() {
		g := util.MakeIDGen(util.MaxID - 2)
		_, ok := g.Next()
		Expect(ok).To(BeTrue())
		_, ok = g.Next()
		Expect(ok).To(BeTrue())
		_, ok = g.Next()
		Expect(ok).To(BeFalse())

		_, err := g.Make()
		Expect(err).To(MatchError(util.ErrIDExhausted))
	})

	It("should keep independent generators independent", func() {
		a := util.MakeIDGen(0)
		b := util.MakeIDGen(0)
		a.Next()
		a.Next()
		id, _ := b.Next()
		Expect(id).To(Equal(util.ID(0)))
	})
})
