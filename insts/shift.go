package insts

// ShiftType represents the effective shift applied to a register operand.
type ShiftType uint8

// Shift kinds.
const (
	ShiftNone ShiftType = iota // No shift applied
	ShiftLSL                   // Logical shift left
	ShiftLSR                   // Logical shift right
	ShiftASR                   // Arithmetic shift right
	ShiftROR                   // Rotate right
	ShiftRRX                   // Rotate right with extend
)

var shiftNames = [...]string{"", "LSL", "LSR", "ASR", "ROR", "RRX"}

func (s ShiftType) String() string {
	if int(s) < len(shiftNames) {
		return shiftNames[s]
	}
	return "?"
}

// Raw values of the 2-bit shift-type field (bits 6:5).
const (
	rawShiftLSL = 0b00
	rawShiftLSR = 0b01
	rawShiftASR = 0b10
	rawShiftROR = 0b11
)

// shiftTypeFromRaw maps the 2-bit field value to the shift kind.
func shiftTypeFromRaw(typ uint32) ShiftType {
	return ShiftType(typ&0b11) + ShiftLSL
}

// DecodeShift returns the effective shift kind and amount for a 2-bit
// shift-type field and a 5-bit immediate amount, applying the special-case
// encodings:
//   - LSL with amount 0 is no shift at all;
//   - ROR with amount 0 is RRX;
//   - LSR and ASR encode an amount of 32 as 0.
func DecodeShift(typ, amount uint32) (ShiftType, uint8) {
	switch {
	case typ == rawShiftLSL && amount == 0:
		return ShiftNone, 0
	case typ == rawShiftROR && amount == 0:
		return ShiftRRX, 0
	case (typ == rawShiftLSR || typ == rawShiftASR) && amount == 0:
		return shiftTypeFromRaw(typ), 32
	default:
		return shiftTypeFromRaw(typ), uint8(amount)
	}
}
