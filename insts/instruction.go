package insts

import "fmt"

// Op represents an ARMv7 opcode.
type Op uint16

// ARMv7 opcodes.
const (
	OpInvalid Op = iota
	OpADC
	OpADD
	OpADR
	OpAND
	OpASR
	OpB
	OpBIC
	OpBKPT
	OpBL
	OpBLX
	OpBX
	OpBXJ
	OpCMN
	OpCMP
	OpEOR
	OpLSL
	OpLSR
	OpMOV
	OpMOVT
	OpMOVW
	OpMRS
	OpMSR
	OpMVN
	OpNOP
	OpORR
	OpQSUB
	OpROR
	OpRRX
	OpRSB
	OpRSC
	OpSBC
	OpSEV
	OpSMLAW
	OpSMULW
	OpSUB
	OpSVC
	OpTEQ
	OpTST
	OpWFE
	OpWFI
	OpYIELD
)

// Mnemonic returns the assembler mnemonic for op. The second return value
// is false when op is out of range.
func (op Op) Mnemonic() (string, bool) {
	if int(op) >= len(mnemonics) {
		return "", false
	}
	return mnemonics[op], true
}

func (op Op) String() string {
	if s, ok := op.Mnemonic(); ok {
		return s
	}
	return fmt.Sprintf("Op(%d)", uint16(op))
}

// Format represents an instruction encoding format. The format selects
// which bit layout applies and therefore which Instruction fields are
// populated by a decode.
type Format uint8

// Instruction formats.
const (
	FormatInvalid    Format = iota
	FormatArithShift        // Data Processing (Register), shifted second operand
	FormatArithImm          // Data Processing (Immediate)
	FormatBranchSC          // B, BL, and SVC with a 24-bit immediate
	FormatBranchMisc        // BX, BXJ, BLX, BKPT, MSR (sub-opcode on bits 7:4)
	FormatMovImm            // MOV, MVN, MOVW, MOVT immediates
	FormatCmpOp             // CMP, CMN, TST, TEQ register forms
	FormatCmpImm            // CMP, CMN, TST, TEQ immediate forms
	FormatOpless            // Hints (sub-opcode on bits 2:0)
	FormatDstSrc            // Shift-register forms (sub-opcode on bits 7:4)
)

// Name returns a short human-readable name for the format. The second
// return value is false when f is out of range.
func (f Format) Name() (string, bool) {
	if int(f) >= len(formatNames) {
		return "", false
	}
	return formatNames[f], true
}

func (f Format) String() string {
	if s, ok := f.Name(); ok {
		return s
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// Reg represents an ARMv7 core register index.
type Reg uint8

// Named registers.
const (
	RegSP Reg = 13
	RegLR Reg = 14
	RegPC Reg = 15

	// RegNone marks a register operand that the decoded instruction does
	// not carry.
	RegNone Reg = 0xFF
)

// Name returns the conventional register name (R0-R12, SP, LR, PC). The
// second return value is false for RegNone and out-of-range indices.
func (r Reg) Name() (string, bool) {
	if int(r) >= len(registerNames) {
		return "", false
	}
	return registerNames[r], true
}

func (r Reg) String() string {
	if s, ok := r.Name(); ok {
		return s
	}
	if r == RegNone {
		return "-"
	}
	return fmt.Sprintf("Reg(%d)", uint8(r))
}

// Instruction represents a decoded ARMv7 instruction.
//
// Only the fields meaningful to the instruction's Format are populated;
// register fields that do not apply hold RegNone, and everything else
// holds its zero value.
type Instruction struct {
	Word uint32 // Raw instruction word
	Cond Cond   // Condition field, bits 31:28

	Op     Op     // Operation code
	Format Format // Encoding format

	// Register operands
	Rd Reg // Destination register
	Rn Reg // First operand register
	Rm Reg // Second operand register
	Rs Reg // Shift-amount register (register-shifted operands)

	// SetFlags reports the S bit for formats that carry one.
	SetFlags bool

	// Shifted second operand
	Shift       ShiftType // Effective shift kind
	ShiftAmount uint8     // Immediate shift amount, 0-32
	ShiftIsReg  bool      // Shift amount is read from Rs

	// Imm holds the immediate operand: the raw 12-bit value, the composed
	// 16-bit MOVW/MOVT value, a 16-bit BKPT comment, or a sign-extended,
	// word-scaled 24-bit branch offset, depending on Format.
	Imm int64

	// Add reports the direction of an ADR address computation (bit 23).
	Add bool
}

// newInstruction returns a fully reset record for word. The raw word and
// the condition field are always populated, even for words that later
// fail to decode.
func newInstruction(word uint32) *Instruction {
	return &Instruction{
		Word: word,
		Cond: Cond(word >> 28),
		Rd:   RegNone,
		Rn:   RegNone,
		Rm:   RegNone,
		Rs:   RegNone,
	}
}
