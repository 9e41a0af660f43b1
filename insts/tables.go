package insts

// Classification tables for the conditional instruction space.
//
// opTable and formatTable are indexed by bits 27:20 of the instruction
// word and give the coarse instruction label and the encoding format.
// Entries left out default to OpInvalid/FormatInvalid; that covers the
// load/store, media, block-transfer, and coprocessor ranges, which are
// not decoded.
//
// All tables in this file are read-only after initialization and safe for
// concurrent use.

var opTable = [256]Op{
	// Data Processing (Register), 0x00-0x1F. Indices 0x1A/0x1B host the
	// shift-register forms; the real label comes from dstSrcTable. The
	// misc space at 0x12/0x16 resolves through branchMiscTable.
	0x00: OpAND, 0x01: OpAND,
	0x02: OpEOR, 0x03: OpEOR,
	0x04: OpSUB, 0x05: OpSUB,
	0x06: OpRSB, 0x07: OpRSB,
	0x08: OpADD, 0x09: OpADD,
	0x0A: OpADC, 0x0B: OpADC,
	0x0C: OpSBC, 0x0D: OpSBC,
	0x0E: OpRSC, 0x0F: OpRSC,
	0x11: OpTST,
	0x12: OpMSR,
	0x13: OpTEQ,
	0x15: OpCMP,
	0x16: OpMSR,
	0x17: OpCMN,
	0x18: OpORR, 0x19: OpORR,
	0x1A: OpMOV, 0x1B: OpMOV,
	0x1C: OpBIC, 0x1D: OpBIC,
	0x1E: OpMVN, 0x1F: OpMVN,

	// Data Processing (Immediate), 0x20-0x3F. 0x32 hosts the hint space;
	// the real label comes from oplessTable.
	0x20: OpAND, 0x21: OpAND,
	0x22: OpEOR, 0x23: OpEOR,
	0x24: OpSUB, 0x25: OpSUB,
	0x26: OpRSB, 0x27: OpRSB,
	0x28: OpADD, 0x29: OpADD,
	0x2A: OpADC, 0x2B: OpADC,
	0x2C: OpSBC, 0x2D: OpSBC,
	0x2E: OpRSC, 0x2F: OpRSC,
	0x30: OpMOVW,
	0x31: OpTST,
	0x33: OpTEQ,
	0x34: OpMOVT,
	0x35: OpCMP,
	0x37: OpCMN,
	0x38: OpORR, 0x39: OpORR,
	0x3A: OpMOV, 0x3B: OpMOV,
	0x3C: OpBIC, 0x3D: OpBIC,
	0x3E: OpMVN, 0x3F: OpMVN,

	// Branches, 0xA0-0xBF, and the supervisor call, 0xF0-0xFF.
	0xA0: OpB, 0xA1: OpB, 0xA2: OpB, 0xA3: OpB,
	0xA4: OpB, 0xA5: OpB, 0xA6: OpB, 0xA7: OpB,
	0xA8: OpB, 0xA9: OpB, 0xAA: OpB, 0xAB: OpB,
	0xAC: OpB, 0xAD: OpB, 0xAE: OpB, 0xAF: OpB,
	0xB0: OpBL, 0xB1: OpBL, 0xB2: OpBL, 0xB3: OpBL,
	0xB4: OpBL, 0xB5: OpBL, 0xB6: OpBL, 0xB7: OpBL,
	0xB8: OpBL, 0xB9: OpBL, 0xBA: OpBL, 0xBB: OpBL,
	0xBC: OpBL, 0xBD: OpBL, 0xBE: OpBL, 0xBF: OpBL,
	0xF0: OpSVC, 0xF1: OpSVC, 0xF2: OpSVC, 0xF3: OpSVC,
	0xF4: OpSVC, 0xF5: OpSVC, 0xF6: OpSVC, 0xF7: OpSVC,
	0xF8: OpSVC, 0xF9: OpSVC, 0xFA: OpSVC, 0xFB: OpSVC,
	0xFC: OpSVC, 0xFD: OpSVC, 0xFE: OpSVC, 0xFF: OpSVC,
}

var formatTable = [256]Format{
	0x00: FormatArithShift, 0x01: FormatArithShift,
	0x02: FormatArithShift, 0x03: FormatArithShift,
	0x04: FormatArithShift, 0x05: FormatArithShift,
	0x06: FormatArithShift, 0x07: FormatArithShift,
	0x08: FormatArithShift, 0x09: FormatArithShift,
	0x0A: FormatArithShift, 0x0B: FormatArithShift,
	0x0C: FormatArithShift, 0x0D: FormatArithShift,
	0x0E: FormatArithShift, 0x0F: FormatArithShift,
	0x11: FormatCmpOp,
	0x12: FormatBranchMisc,
	0x13: FormatCmpOp,
	0x15: FormatCmpOp,
	0x16: FormatBranchMisc,
	0x17: FormatCmpOp,
	0x18: FormatArithShift, 0x19: FormatArithShift,
	0x1A: FormatDstSrc, 0x1B: FormatDstSrc,
	0x1C: FormatArithShift, 0x1D: FormatArithShift,
	0x1E: FormatArithShift, 0x1F: FormatArithShift,

	0x20: FormatArithImm, 0x21: FormatArithImm,
	0x22: FormatArithImm, 0x23: FormatArithImm,
	0x24: FormatArithImm, 0x25: FormatArithImm,
	0x26: FormatArithImm, 0x27: FormatArithImm,
	0x28: FormatArithImm, 0x29: FormatArithImm,
	0x2A: FormatArithImm, 0x2B: FormatArithImm,
	0x2C: FormatArithImm, 0x2D: FormatArithImm,
	0x2E: FormatArithImm, 0x2F: FormatArithImm,
	0x30: FormatMovImm,
	0x31: FormatCmpImm,
	0x32: FormatOpless,
	0x33: FormatCmpImm,
	0x34: FormatMovImm,
	0x35: FormatCmpImm,
	0x37: FormatCmpImm,
	0x38: FormatArithImm, 0x39: FormatArithImm,
	0x3A: FormatMovImm, 0x3B: FormatMovImm,
	0x3C: FormatArithImm, 0x3D: FormatArithImm,
	0x3E: FormatMovImm, 0x3F: FormatMovImm,

	0xA0: FormatBranchSC, 0xA1: FormatBranchSC,
	0xA2: FormatBranchSC, 0xA3: FormatBranchSC,
	0xA4: FormatBranchSC, 0xA5: FormatBranchSC,
	0xA6: FormatBranchSC, 0xA7: FormatBranchSC,
	0xA8: FormatBranchSC, 0xA9: FormatBranchSC,
	0xAA: FormatBranchSC, 0xAB: FormatBranchSC,
	0xAC: FormatBranchSC, 0xAD: FormatBranchSC,
	0xAE: FormatBranchSC, 0xAF: FormatBranchSC,
	0xB0: FormatBranchSC, 0xB1: FormatBranchSC,
	0xB2: FormatBranchSC, 0xB3: FormatBranchSC,
	0xB4: FormatBranchSC, 0xB5: FormatBranchSC,
	0xB6: FormatBranchSC, 0xB7: FormatBranchSC,
	0xB8: FormatBranchSC, 0xB9: FormatBranchSC,
	0xBA: FormatBranchSC, 0xBB: FormatBranchSC,
	0xBC: FormatBranchSC, 0xBD: FormatBranchSC,
	0xBE: FormatBranchSC, 0xBF: FormatBranchSC,
	0xF0: FormatBranchSC, 0xF1: FormatBranchSC,
	0xF2: FormatBranchSC, 0xF3: FormatBranchSC,
	0xF4: FormatBranchSC, 0xF5: FormatBranchSC,
	0xF6: FormatBranchSC, 0xF7: FormatBranchSC,
	0xF8: FormatBranchSC, 0xF9: FormatBranchSC,
	0xFA: FormatBranchSC, 0xFB: FormatBranchSC,
	0xFC: FormatBranchSC, 0xFD: FormatBranchSC,
	0xFE: FormatBranchSC, 0xFF: FormatBranchSC,
}

// branchMiscTable resolves the misc branch space on bits 7:4. The signed
// saturating and halfword-multiply patterns (QSUB, SMLAW, SMULW) alias
// into this space; they are named here but not decoded further.
var branchMiscTable = [16]Op{
	0b0000: OpMSR,
	0b0001: OpBX,
	0b0010: OpBXJ,
	0b0011: OpBLX,
	0b0101: OpQSUB,
	0b0111: OpBKPT,
	0b1000: OpSMLAW,
	0b1010: OpSMULW,
	0b1100: OpSMLAW,
	0b1110: OpSMULW,
}

// dstSrcTable resolves the shift-register space on bits 7:4. Bit 4 selects
// the register-shift form; bit 7 is part of the shift amount in the
// immediate form, so both x000 rows name the same instruction. The odd
// rows with bit 7 set are extra load/store patterns and stay invalid.
var dstSrcTable = [16]Op{
	0b0000: OpLSL,
	0b0001: OpLSL,
	0b0010: OpLSR,
	0b0011: OpLSR,
	0b0100: OpASR,
	0b0101: OpASR,
	0b0110: OpROR,
	0b0111: OpROR,
	0b1000: OpLSL,
	0b1010: OpLSR,
	0b1100: OpASR,
	0b1110: OpROR,
}

// oplessTable resolves the hint space on bits 2:0.
var oplessTable = [8]Op{
	0b000: OpNOP,
	0b001: OpYIELD,
	0b010: OpWFE,
	0b011: OpWFI,
	0b100: OpSEV,
}

// mnemonics is indexed by Op.
var mnemonics = [...]string{
	OpInvalid: "INVLD",
	OpADC:     "ADC",
	OpADD:     "ADD",
	OpADR:     "ADR",
	OpAND:     "AND",
	OpASR:     "ASR",
	OpB:       "B",
	OpBIC:     "BIC",
	OpBKPT:    "BKPT",
	OpBL:      "BL",
	OpBLX:     "BLX",
	OpBX:      "BX",
	OpBXJ:     "BXJ",
	OpCMN:     "CMN",
	OpCMP:     "CMP",
	OpEOR:     "EOR",
	OpLSL:     "LSL",
	OpLSR:     "LSR",
	OpMOV:     "MOV",
	OpMOVT:    "MOVT",
	OpMOVW:    "MOVW",
	OpMRS:     "MRS",
	OpMSR:     "MSR",
	OpMVN:     "MVN",
	OpNOP:     "NOP",
	OpORR:     "ORR",
	OpQSUB:    "QSUB",
	OpROR:     "ROR",
	OpRRX:     "RRX",
	OpRSB:     "RSB",
	OpRSC:     "RSC",
	OpSBC:     "SBC",
	OpSEV:     "SEV",
	OpSMLAW:   "SMLAW",
	OpSMULW:   "SMULW",
	OpSUB:     "SUB",
	OpSVC:     "SVC",
	OpTEQ:     "TEQ",
	OpTST:     "TST",
	OpWFE:     "WFE",
	OpWFI:     "WFI",
	OpYIELD:   "YIELD",
}

// formatNames is indexed by Format.
var formatNames = [...]string{
	FormatInvalid:    "invalid",
	FormatArithShift: "arith-shift",
	FormatArithImm:   "arith-imm",
	FormatBranchSC:   "branch-sc",
	FormatBranchMisc: "branch-misc",
	FormatMovImm:     "mov-imm",
	FormatCmpOp:      "cmp-op",
	FormatCmpImm:     "cmp-imm",
	FormatOpless:     "opless",
	FormatDstSrc:     "dst-src",
}

// registerNames is indexed by register number.
var registerNames = [16]string{
	"R0", "R1", "R2", "R3", "R4", "R5", "R6", "R7",
	"R8", "R9", "R10", "R11", "R12", "SP", "LR", "PC",
}
