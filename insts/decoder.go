package insts

import (
	"errors"
	"fmt"
)

// Decode failure kinds. Errors returned by Decoder.Decode wrap one of
// these sentinels together with the offending word.
var (
	// ErrUnconditional is returned for words in the unconditional space
	// (condition field 0b1111), which this package does not decode.
	ErrUnconditional = errors.New("unconditional instruction space is not decoded")

	// ErrUnclassifiable is returned when bits 27:20 do not map to a known
	// encoding format.
	ErrUnclassifiable = errors.New("opcode does not map to a known encoding")

	// ErrUnresolvedSubOpcode is returned when a format that needs a
	// secondary lookup (branch-misc, dst-src, opless) finds no match.
	ErrUnresolvedSubOpcode = errors.New("sub-opcode does not resolve to an instruction")
)

// bits returns the field w[hi:lo], both bounds inclusive.
func bits(w uint32, hi, lo uint) uint32 {
	return (w >> lo) & ((1 << (hi - lo + 1)) - 1)
}

// bit returns bit n of w.
func bit(w uint32, n uint) uint32 {
	return (w >> n) & 1
}

// Decoder decodes ARMv7 machine code into instructions.
//
// Decoding is a pure function of the word; a Decoder holds no state and
// may be shared between goroutines.
type Decoder struct{}

// NewDecoder creates a new ARMv7 instruction decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode decodes a 32-bit ARMv7 instruction word.
//
// The returned record is freshly constructed per call and never nil. On
// failure it carries only the raw word and the condition field; all other
// fields stay at their reset values, so a failed decode can never expose
// leftovers of a partial one.
func (d *Decoder) Decode(word uint32) (*Instruction, error) {
	inst := newInstruction(word)

	if inst.Cond == CondUncond {
		return inst, fmt.Errorf("%w: 0x%08X", ErrUnconditional, word)
	}

	if err := d.decodeConditional(word, inst); err != nil {
		// Extractors may have written fields before bailing out; hand the
		// caller a reset record instead.
		return newInstruction(word), err
	}
	return inst, nil
}

// decodeConditional classifies word on bits 27:20 and dispatches to the
// extractor for the resulting format.
func (d *Decoder) decodeConditional(w uint32, inst *Instruction) error {
	index := bits(w, 27, 20)
	inst.Op = opTable[index]
	inst.Format = formatTable[index]

	switch inst.Format {
	case FormatArithShift:
		d.decodeArithShift(w, inst)
		return nil
	case FormatArithImm:
		d.decodeArithImm(w, inst)
		return nil
	case FormatBranchSC:
		d.decodeBranchSC(w, inst)
		return nil
	case FormatBranchMisc:
		return d.decodeBranchMisc(w, inst)
	case FormatMovImm:
		d.decodeMovImm(w, inst)
		return nil
	case FormatCmpOp:
		d.decodeCmpOp(w, inst)
		return nil
	case FormatCmpImm:
		d.decodeCmpImm(w, inst)
		return nil
	case FormatOpless:
		return d.decodeOpless(w, inst)
	case FormatDstSrc:
		return d.decodeDstSrc(w, inst)
	default:
		return fmt.Errorf("%w: 0x%08X", ErrUnclassifiable, w)
	}
}

// decodeShiftOperand fills the shifted-second-operand fields shared by the
// arith-shift and cmp-op formats. Bit 4 selects a register-sourced amount.
func (d *Decoder) decodeShiftOperand(w uint32, inst *Instruction) {
	typ := bits(w, 6, 5)
	if bit(w, 4) == 1 {
		inst.ShiftIsReg = true
		inst.Rs = Reg(bits(w, 11, 8))
		inst.Shift = shiftTypeFromRaw(typ)
		return
	}
	inst.Shift, inst.ShiftAmount = DecodeShift(typ, bits(w, 11, 7))
}

// decodeArithShift decodes data-processing instructions whose second
// operand is an optionally shifted register.
func (d *Decoder) decodeArithShift(w uint32, inst *Instruction) {
	inst.SetFlags = bit(w, 20) == 1
	inst.Rd = Reg(bits(w, 15, 12))
	inst.Rn = Reg(bits(w, 19, 16))
	inst.Rm = Reg(bits(w, 3, 0))
	d.decodeShiftOperand(w, inst)
}

// decodeArithImm decodes data-processing instructions with a 12-bit
// immediate second operand.
func (d *Decoder) decodeArithImm(w uint32, inst *Instruction) {
	inst.SetFlags = bit(w, 20) == 1
	inst.Rd = Reg(bits(w, 15, 12))
	inst.Rn = Reg(bits(w, 19, 16))
	inst.Imm = int64(bits(w, 11, 0))

	// ADD/SUB on PC without flag setting is really ADR. Bit 23
	// distinguishes the add and subtract directions.
	if (inst.Op == OpADD || inst.Op == OpSUB) && !inst.SetFlags && inst.Rn == RegPC {
		inst.Op = OpADR
		inst.Rn = RegNone
		inst.Add = bit(w, 23) == 1
	}
}

// decodeBranchSC decodes B, BL, and SVC, which all carry a 24-bit
// immediate.
func (d *Decoder) decodeBranchSC(w uint32, inst *Instruction) {
	imm24 := bits(w, 23, 0)

	// SVC keeps the raw comment field; B and BL carry a sign-extended,
	// word-scaled PC-relative offset.
	if inst.Op == OpSVC {
		inst.Imm = int64(imm24)
		return
	}
	inst.Imm = int64(int32(imm24<<8)>>8) << 2
}

// decodeBranchMisc re-derives the label from bits 7:4 and extracts the
// operands of the misc branch space.
func (d *Decoder) decodeBranchMisc(w uint32, inst *Instruction) error {
	inst.Op = branchMiscTable[bits(w, 7, 4)]

	switch inst.Op {
	case OpBKPT:
		inst.Imm = int64(bits(w, 19, 8)<<4 | bits(w, 3, 0))
	case OpBX, OpBXJ, OpBLX:
		inst.Rm = Reg(bits(w, 3, 0))
	case OpMSR:
		inst.Rn = Reg(bits(w, 3, 0))
		inst.Imm = int64(bits(w, 19, 18))
	default:
		// QSUB, SMLAW, SMULW, and the unnamed rows.
		return fmt.Errorf("%w: 0x%08X", ErrUnresolvedSubOpcode, w)
	}
	return nil
}

// decodeMovImm decodes MOV, MVN, MOVW, and MOVT.
func (d *Decoder) decodeMovImm(w uint32, inst *Instruction) {
	inst.Rd = Reg(bits(w, 15, 12))
	inst.Imm = int64(bits(w, 11, 0))

	if inst.Op == OpMOV || inst.Op == OpMVN {
		inst.SetFlags = bit(w, 20) == 1
		return
	}
	// MOVW and MOVT spread a 16-bit immediate over two fields.
	inst.Imm |= int64(bits(w, 19, 16)) << 12
}

// decodeCmpOp decodes the register compare forms. They have no Rd; the
// result only updates the flags.
func (d *Decoder) decodeCmpOp(w uint32, inst *Instruction) {
	inst.Rn = Reg(bits(w, 19, 16))
	inst.Rm = Reg(bits(w, 3, 0))
	d.decodeShiftOperand(w, inst)
}

// decodeCmpImm decodes the immediate compare forms.
func (d *Decoder) decodeCmpImm(w uint32, inst *Instruction) {
	inst.Rn = Reg(bits(w, 19, 16))
	inst.Imm = int64(bits(w, 11, 0))
}

// decodeOpless re-derives the label of a hint instruction from bits 2:0.
func (d *Decoder) decodeOpless(w uint32, inst *Instruction) error {
	inst.Op = oplessTable[bits(w, 2, 0)]
	if inst.Op == OpInvalid {
		return fmt.Errorf("%w: 0x%08X", ErrUnresolvedSubOpcode, w)
	}
	return nil
}

// decodeDstSrc decodes the shift-register forms (LSL, LSR, ASR, ROR and
// their register-shift variants) after re-deriving the label from bits
// 7:4.
func (d *Decoder) decodeDstSrc(w uint32, inst *Instruction) error {
	inst.Op = dstSrcTable[bits(w, 7, 4)]
	if inst.Op == OpInvalid {
		// Extra load/store patterns alias into this space and are not
		// decoded.
		return fmt.Errorf("%w: 0x%08X", ErrUnresolvedSubOpcode, w)
	}

	inst.SetFlags = bit(w, 20) == 1
	inst.Rd = Reg(bits(w, 15, 12))
	typ := bits(w, 6, 5)

	if bit(w, 4) == 1 {
		// Register-shift form: the amount register sits in bits 11:8 and
		// the operand register in bits 3:0.
		inst.Rm = Reg(bits(w, 11, 8))
		inst.Rn = Reg(bits(w, 3, 0))
		inst.Shift = shiftTypeFromRaw(typ)
		return nil
	}

	amount := bits(w, 11, 7)
	inst.Rm = Reg(bits(w, 3, 0))
	inst.Shift, inst.ShiftAmount = DecodeShift(typ, amount)

	switch {
	case inst.Op == OpLSL && typ == rawShiftLSL && amount == 0:
		// LSL with a zero amount is the canonical MOV encoding. When it
		// moves a register onto itself it is a NOP (the manual only names
		// the R0,R0 case, but any equal pair has no effect).
		inst.Op = OpMOV
		if inst.Rd == inst.Rm {
			inst.Op = OpNOP
		}
	case inst.Op == OpROR && typ == rawShiftROR && amount == 0:
		inst.Op = OpRRX
	}
	return nil
}
