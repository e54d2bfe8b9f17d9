// Package isa holds the bit-field encoding primitives, opcode/funct tables
// and register name mappings shared by the assembler, disassembler and CPU.
package isa

import "fmt"

// MaskBits returns a mask with the low n bits set.
func MaskBits(n uint) uint32 {
	if n >= 32 {
		return 0xFFFFFFFF
	}
	return (uint32(1) << n) - 1
}

// SignExtend16 sign-extends the low 16 bits of v to a full int32.
func SignExtend16(v uint16) int32 {
	return int32(int16(v))
}

// ZeroExtend16 zero-extends the low 16 bits of v to a uint32.
func ZeroExtend16(v uint16) uint32 {
	return uint32(v)
}

// FitsSigned16 reports whether v fits in a signed 16-bit field.
func FitsSigned16(v int64) bool {
	return v >= -32768 && v <= 32767
}

// FitsUnsigned16 reports whether v fits in an unsigned 16-bit field.
func FitsUnsigned16(v int64) bool {
	return v >= 0 && v <= 0xFFFF
}

// HexWord formats a 32-bit value as a fixed-width "0x"-prefixed hex string.
func HexWord(v uint32) string {
	return fmt.Sprintf("0x%08X", v)
}

// HexByte formats an 8-bit value as a fixed-width "0x"-prefixed hex string.
func HexByte(v uint8) string {
	return fmt.Sprintf("0x%02X", v)
}

// BinWord formats the low n bits of v as a binary string, no prefix.
func BinWord(v uint32, n uint) string {
	s := fmt.Sprintf("%0*b", n, v&MaskBits(n))
	return s
}

// MakeR encodes an R-format word: opcode(6) rs(5) rt(5) rd(5) shamt(5) funct(6).
func MakeR(opcode, rs, rt, rd, shamt, funct uint32) uint32 {
	return (opcode&MaskBits(6))<<26 |
		(rs&MaskBits(5))<<21 |
		(rt&MaskBits(5))<<16 |
		(rd&MaskBits(5))<<11 |
		(shamt&MaskBits(5))<<6 |
		(funct & MaskBits(6))
}

// MakeI encodes an I-format word: opcode(6) rs(5) rt(5) imm(16).
func MakeI(opcode, rs, rt uint32, imm uint16) uint32 {
	return (opcode&MaskBits(6))<<26 |
		(rs&MaskBits(5))<<21 |
		(rt&MaskBits(5))<<16 |
		uint32(imm)
}

// MakeJ encodes a J-format word: opcode(6) target(26).
func MakeJ(opcode, target uint32) uint32 {
	return (opcode&MaskBits(6))<<26 | (target & MaskBits(26))
}

// FieldOpcode extracts the opcode field (bits 31..26).
func FieldOpcode(word uint32) uint32 { return (word >> 26) & MaskBits(6) }

// FieldRS extracts the rs field (bits 25..21).
func FieldRS(word uint32) uint32 { return (word >> 21) & MaskBits(5) }

// FieldRT extracts the rt field (bits 20..16).
func FieldRT(word uint32) uint32 { return (word >> 16) & MaskBits(5) }

// FieldRD extracts the rd field (bits 15..11).
func FieldRD(word uint32) uint32 { return (word >> 11) & MaskBits(5) }

// FieldShamt extracts the shamt field (bits 10..6).
func FieldShamt(word uint32) uint32 { return (word >> 6) & MaskBits(5) }

// FieldFunct extracts the funct field (bits 5..0).
func FieldFunct(word uint32) uint32 { return word & MaskBits(6) }

// FieldImm extracts the 16-bit immediate field (bits 15..0).
func FieldImm(word uint32) uint16 { return uint16(word & 0xFFFF) }

// FieldTarget extracts the 26-bit jump target field (bits 25..0).
func FieldTarget(word uint32) uint32 { return word & MaskBits(26) }

// WithImm rebuilds a word with a new 16-bit immediate field, keeping the
// opcode/rs/rt bits intact.
func WithImm(word uint32, imm uint16) uint32 {
	return (word &^ 0xFFFF) | uint32(imm)
}

// WithTarget rebuilds a word with a new 26-bit target field, keeping the
// opcode bits intact.
func WithTarget(word uint32, target uint32) uint32 {
	return (word &^ MaskBits(26)) | (target & MaskBits(26))
}
