package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/armv7/insts"
)

var _ = Describe("Condition Codes", func() {
	Describe("Info", func() {
		It("should describe EQ", func() {
			info, ok := insts.CondEQ.Info(false)

			Expect(ok).To(BeTrue())
			Expect(info.Mnemonic).To(Equal("EQ"))
			Expect(info.MeaningInteger).To(Equal("Equal"))
			Expect(info.MeaningFP).To(Equal("Equal"))
		})

		It("should distinguish integer and FP meanings", func() {
			info, ok := insts.CondHI.Info(false)

			Expect(ok).To(BeTrue())
			Expect(info.Mnemonic).To(Equal("HI"))
			Expect(info.MeaningInteger).To(Equal("Unsigned higher"))
			Expect(info.MeaningFP).To(Equal("Greater than, unordered"))
		})

		It("should keep the AL mnemonic by default", func() {
			info, ok := insts.CondAL.Info(false)

			Expect(ok).To(BeTrue())
			Expect(info.Mnemonic).To(Equal("AL"))
		})

		It("should omit the AL mnemonic when asked to", func() {
			info, ok := insts.CondAL.Info(true)

			Expect(ok).To(BeTrue())
			Expect(info.Mnemonic).To(Equal(""))
			Expect(info.MeaningInteger).To(Equal("Always (unconditional)"))
		})

		It("should not omit mnemonics other than AL", func() {
			info, ok := insts.CondNE.Info(true)

			Expect(ok).To(BeTrue())
			Expect(info.Mnemonic).To(Equal("NE"))
		})

		It("should reject the unconditional space", func() {
			_, ok := insts.CondUncond.Info(false)

			Expect(ok).To(BeFalse())
		})

		It("should reject out-of-range values", func() {
			_, ok := insts.Cond(200).Info(false)

			Expect(ok).To(BeFalse())
		})
	})

	Describe("ConditionIndex", func() {
		It("should round-trip every condition code", func() {
			for c := insts.CondEQ; c <= insts.CondAL; c++ {
				info, ok := c.Info(false)
				Expect(ok).To(BeTrue())

				index, ok := insts.ConditionIndex(info.Mnemonic)
				Expect(ok).To(BeTrue())
				Expect(index).To(Equal(c))
			}
		})

		It("should map the empty string to AL", func() {
			index, ok := insts.ConditionIndex("")

			Expect(ok).To(BeTrue())
			Expect(index).To(Equal(insts.CondAL))
		})

		It("should resolve the HS alias to CS", func() {
			hs, ok := insts.ConditionIndex("HS")
			Expect(ok).To(BeTrue())

			cs, ok := insts.ConditionIndex("CS")
			Expect(ok).To(BeTrue())

			Expect(hs).To(Equal(cs))
			Expect(hs).To(Equal(insts.CondCS))
		})

		It("should resolve the LO alias to CC", func() {
			lo, ok := insts.ConditionIndex("LO")
			Expect(ok).To(BeTrue())

			cc, ok := insts.ConditionIndex("CC")
			Expect(ok).To(BeTrue())

			Expect(lo).To(Equal(cc))
			Expect(lo).To(Equal(insts.CondCC))
		})

		It("should reject unknown mnemonics", func() {
			_, ok := insts.ConditionIndex("XX")

			Expect(ok).To(BeFalse())
		})
	})
})
