package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeRFieldsRoundTrip(t *testing.T) {
	w := MakeR(uint32(OpRTYPE), 9, 10, 8, 3, uint32(FunctSLL))
	assert.Equal(t, uint32(OpRTYPE), FieldOpcode(w))
	assert.Equal(t, uint32(9), FieldRS(w))
	assert.Equal(t, uint32(10), FieldRT(w))
	assert.Equal(t, uint32(8), FieldRD(w))
	assert.Equal(t, uint32(3), FieldShamt(w))
	assert.Equal(t, uint32(FunctSLL), FieldFunct(w))
}

func TestMakeIFieldsRoundTrip(t *testing.T) {
	w := MakeI(uint32(OpADDI), 8, 9, 0xBEEF)
	assert.Equal(t, uint32(OpADDI), FieldOpcode(w))
	assert.Equal(t, uint32(8), FieldRS(w))
	assert.Equal(t, uint32(9), FieldRT(w))
	assert.Equal(t, uint16(0xBEEF), FieldImm(w))
}

func TestMakeJFieldRoundTrip(t *testing.T) {
	w := MakeJ(uint32(OpJ), 0x0123456)
	assert.Equal(t, uint32(OpJ), FieldOpcode(w))
	assert.Equal(t, uint32(0x0123456), FieldTarget(w))
}

func TestMakeFieldsMaskOverWideInputs(t *testing.T) {
	// Feeding a value wider than a field's width must not bleed into
	// neighbouring fields.
	w := MakeR(0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF)
	assert.Equal(t, uint32(0x3F), FieldOpcode(w))
	assert.Equal(t, uint32(0x1F), FieldRS(w))
	assert.Equal(t, uint32(0x1F), FieldRT(w))
	assert.Equal(t, uint32(0x1F), FieldRD(w))
	assert.Equal(t, uint32(0x1F), FieldShamt(w))
	assert.Equal(t, uint32(0x3F), FieldFunct(w))
}

func TestWithImmPreservesOtherFields(t *testing.T) {
	w := MakeI(uint32(OpBEQ), 8, 9, 0x1234)
	w = WithImm(w, 0xFFFE)
	assert.Equal(t, uint32(OpBEQ), FieldOpcode(w))
	assert.Equal(t, uint32(8), FieldRS(w))
	assert.Equal(t, uint32(9), FieldRT(w))
	assert.Equal(t, uint16(0xFFFE), FieldImm(w))
}

func TestWithTargetPreservesOpcode(t *testing.T) {
	w := MakeJ(uint32(OpJAL), 0)
	w = WithTarget(w, 0x3FFFFFF)
	assert.Equal(t, uint32(OpJAL), FieldOpcode(w))
	assert.Equal(t, uint32(0x3FFFFFF), FieldTarget(w))
}

func TestFitsSigned16Boundaries(t *testing.T) {
	assert.True(t, FitsSigned16(32767))
	assert.True(t, FitsSigned16(-32768))
	assert.False(t, FitsSigned16(32768))
	assert.False(t, FitsSigned16(-32769))
}

func TestFitsUnsigned16Boundaries(t *testing.T) {
	assert.True(t, FitsUnsigned16(0))
	assert.True(t, FitsUnsigned16(0xFFFF))
	assert.False(t, FitsUnsigned16(-1))
	assert.False(t, FitsUnsigned16(0x10000))
}

func TestSignExtend16PreservesNegativeValue(t *testing.T) {
	assert.Equal(t, int32(-1), SignExtend16(0xFFFF))
	assert.Equal(t, int32(1), SignExtend16(0x0001))
}

func TestZeroExtend16NeverGoesNegative(t *testing.T) {
	assert.Equal(t, uint32(0xFFFF), ZeroExtend16(0xFFFF))
}

func TestMaskBitsClampsAtWordWidth(t *testing.T) {
	assert.Equal(t, uint32(0xFFFFFFFF), MaskBits(32))
	assert.Equal(t, uint32(0xFFFFFFFF), MaskBits(40))
	assert.Equal(t, uint32(0x3F), MaskBits(6))
	assert.Equal(t, uint32(0), MaskBits(0))
}

func TestHexWordAndHexByteFormatting(t *testing.T) {
	assert.Equal(t, "0x0000BEEF", HexWord(0xBEEF))
	assert.Equal(t, "0xFF", HexByte(0xFF))
}

func TestRegisterNumberResolvesNamedRegisters(t *testing.T) {
	n, ok := RegisterNumber("t0")
	assert.True(t, ok)
	assert.Equal(t, 8, n)

	n, ok = RegisterNumber("sp")
	assert.True(t, ok)
	assert.Equal(t, 29, n)
}

func TestRegisterNumberAliasesFpAndS8(t *testing.T) {
	fp, ok := RegisterNumber("fp")
	assert.True(t, ok)
	s8, ok := RegisterNumber("s8")
	assert.True(t, ok)
	assert.Equal(t, fp, s8)
	assert.Equal(t, 30, fp)
}

func TestRegisterNumberResolvesNumericSpelling(t *testing.T) {
	n, ok := RegisterNumber("31")
	assert.True(t, ok)
	assert.Equal(t, 31, n)
}

func TestRegisterNumberRejectsOutOfRangeOrUnknown(t *testing.T) {
	_, ok := RegisterNumber("32")
	assert.False(t, ok)
	_, ok = RegisterNumber("notareg")
	assert.False(t, ok)
}

func TestRegisterDisplayNamesMatchesRegisterNumber(t *testing.T) {
	for name, idx := range map[string]int{"zero": 0, "t0": 8, "sp": 29, "ra": 31} {
		assert.Equal(t, "$"+name, RegisterDisplayNames[idx])
	}
}
