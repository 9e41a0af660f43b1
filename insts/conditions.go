package insts

import "fmt"

// Cond represents the 4-bit ARMv7 condition field (bits 31:28).
type Cond uint8

// ARMv7 condition codes.
const (
	CondEQ Cond = 0b0000 // Equal (Z == 1)
	CondNE Cond = 0b0001 // Not Equal (Z == 0)
	CondCS Cond = 0b0010 // Carry Set / Unsigned higher or same (C == 1)
	CondCC Cond = 0b0011 // Carry Clear / Unsigned lower (C == 0)
	CondMI Cond = 0b0100 // Minus / Negative (N == 1)
	CondPL Cond = 0b0101 // Plus / Positive or zero (N == 0)
	CondVS Cond = 0b0110 // Overflow (V == 1)
	CondVC Cond = 0b0111 // No overflow (V == 0)
	CondHI Cond = 0b1000 // Unsigned higher (C == 1 && Z == 0)
	CondLS Cond = 0b1001 // Unsigned lower or same (C == 0 || Z == 1)
	CondGE Cond = 0b1010 // Signed greater than or equal (N == V)
	CondLT Cond = 0b1011 // Signed less than (N != V)
	CondGT Cond = 0b1100 // Signed greater than (Z == 0 && N == V)
	CondLE Cond = 0b1101 // Signed less than or equal (Z == 1 || N != V)
	CondAL Cond = 0b1110 // Always

	// CondUncond marks the unconditional instruction space, which this
	// package does not decode.
	CondUncond Cond = 0b1111
)

// CondInfo describes a condition code: its mnemonic suffix and its meaning
// after an integer or a floating-point comparison.
type CondInfo struct {
	Mnemonic       string
	MeaningInteger string
	MeaningFP      string
}

// Storage indices of the HS and LO alias rows in condTable.
const (
	condAliasHS = 15
	condAliasLO = 16
)

// condTable holds the 15 condition codes indexed by field value, followed
// by the two alias mnemonics.
var condTable = [...]CondInfo{
	{"EQ", "Equal", "Equal"},
	{"NE", "Not equal", "Not equal, or unordered"},
	{"CS", "Carry Set", "Greater than, equal, or unordered"},
	{"CC", "Carry Clear", "Less than"},
	{"MI", "Minus, negative", "Less than"},
	{"PL", "Plus, positive or zero", "Greater than, equal, or unordered"},
	{"VS", "Overflow", "Unordered"},
	{"VC", "No overflow", "Not unordered"},
	{"HI", "Unsigned higher", "Greater than, unordered"},
	{"LS", "Unsigned lower or same", "Greater than, or unordered"},
	{"GE", "Signed greater than or equal", "Greater than, or unordered"},
	{"LT", "Signed less than", "Less than, or unordered"},
	{"GT", "Signed greater than", "Greater than"},
	{"LE", "Signed less than or equal", "Less than, equal, or unordered"},
	{"AL", "Always (unconditional)", "Always (unconditional)"},

	// alias for CS
	{"HS", "Carry Set", "Greater than, equal, or unordered"},
	// alias for CC
	{"LO", "Carry Clear", "Less than"},
}

// Info returns the mnemonic and meaning texts for c. The second return
// value is false for any value outside 0b0000-0b1110.
//
// When omitAlways is set the AL mnemonic is returned as the empty string,
// since assembly conventionally omits the always-execute suffix.
func (c Cond) Info(omitAlways bool) (CondInfo, bool) {
	if c > CondAL {
		return CondInfo{}, false
	}

	info := condTable[c]
	if omitAlways && c == CondAL {
		info.Mnemonic = ""
	}
	return info, true
}

func (c Cond) String() string {
	if info, ok := c.Info(false); ok {
		return info.Mnemonic
	}
	return fmt.Sprintf("Cond(%d)", uint8(c))
}

// ConditionIndex returns the condition field value for a mnemonic suffix.
// The empty string resolves to CondAL, and the HS and LO aliases resolve
// to CondCS and CondCC. The second return value is false for unknown
// mnemonics.
func ConditionIndex(mnemonic string) (Cond, bool) {
	if mnemonic == "" {
		return CondAL, true
	}

	for i := range condTable {
		if condTable[i].Mnemonic != mnemonic {
			continue
		}
		switch i {
		case condAliasHS:
			return CondCS, true
		case condAliasLO:
			return CondCC, true
		}
		return Cond(i), true
	}

	return 0, false
}
