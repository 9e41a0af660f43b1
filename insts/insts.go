// Package insts provides ARMv7 instruction definitions and decoding.
//
// This package implements decoding of the conditional ARMv7 instruction
// space (condition field 0b0000-0b1110) into structured instruction
// representations. It supports:
//   - Data Processing (Register): ADD, SUB, AND, ORR, ... with shifted operands
//   - Data Processing (Immediate): ADD, SUB, ..., plus the ADR pseudo-instruction
//   - Move immediate: MOV, MVN, MOVW, MOVT
//   - Compares: CMP, CMN, TST, TEQ in register and immediate forms
//   - Branches: B, BL, SVC, and the misc space (BX, BXJ, BLX, BKPT, MSR)
//   - Shift-register forms: LSL, LSR, ASR, ROR, RRX, and the MOV/NOP aliases
//   - Hints: NOP, YIELD, WFE, WFI, SEV
//
// The unconditional space (condition field 0b1111) and Thumb encodings are
// not decoded.
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	inst, err := decoder.Decode(0xE2432064) // SUB R2, R3, #100
//	if err != nil {
//		// word does not decode
//	}
//	fmt.Printf("Op: %v, Rd: %v, Rn: %v, Imm: %d\n", inst.Op, inst.Rd, inst.Rn, inst.Imm)
package insts
