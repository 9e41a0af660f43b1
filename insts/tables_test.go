package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/armv7/insts"
)

var _ = Describe("Name Tables", func() {
	Describe("Op mnemonics", func() {
		It("should name decodable opcodes", func() {
			s, ok := insts.OpADD.Mnemonic()

			Expect(ok).To(BeTrue())
			Expect(s).To(Equal("ADD"))
		})

		It("should name pseudo-instructions", func() {
			s, ok := insts.OpADR.Mnemonic()

			Expect(ok).To(BeTrue())
			Expect(s).To(Equal("ADR"))
		})

		It("should reject out-of-range opcodes", func() {
			_, ok := insts.Op(10000).Mnemonic()

			Expect(ok).To(BeFalse())
		})
	})

	Describe("Register names", func() {
		It("should name the numbered registers", func() {
			s, ok := insts.Reg(0).Name()

			Expect(ok).To(BeTrue())
			Expect(s).To(Equal("R0"))
		})

		It("should name SP, LR, and PC", func() {
			for reg, want := range map[insts.Reg]string{
				insts.RegSP: "SP",
				insts.RegLR: "LR",
				insts.RegPC: "PC",
			} {
				s, ok := reg.Name()

				Expect(ok).To(BeTrue())
				Expect(s).To(Equal(want))
			}
		})

		It("should reject the absent-register sentinel", func() {
			_, ok := insts.RegNone.Name()

			Expect(ok).To(BeFalse())
		})

		It("should reject out-of-range indices", func() {
			_, ok := insts.Reg(16).Name()

			Expect(ok).To(BeFalse())
		})
	})

	Describe("Format names", func() {
		It("should name every format", func() {
			for f, want := range map[insts.Format]string{
				insts.FormatInvalid:    "invalid",
				insts.FormatArithShift: "arith-shift",
				insts.FormatArithImm:   "arith-imm",
				insts.FormatBranchSC:   "branch-sc",
				insts.FormatBranchMisc: "branch-misc",
				insts.FormatMovImm:     "mov-imm",
				insts.FormatCmpOp:      "cmp-op",
				insts.FormatCmpImm:     "cmp-imm",
				insts.FormatOpless:     "opless",
				insts.FormatDstSrc:     "dst-src",
			} {
				s, ok := f.Name()

				Expect(ok).To(BeTrue())
				Expect(s).To(Equal(want))
			}
		})

		It("should reject out-of-range formats", func() {
			_, ok := insts.Format(100).Name()

			Expect(ok).To(BeFalse())
		})
	})
})
