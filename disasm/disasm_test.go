package disasm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrelasm/mips68/isa"
)

func TestWordDecodesRType(t *testing.T) {
	w := isa.MakeR(uint32(isa.OpRTYPE), 9, 10, 8, 0, uint32(isa.FunctADD))
	got := Word(w)
	assert.True(t, strings.HasPrefix(got, "add "))
	assert.Contains(t, got, "$t0")
	assert.Contains(t, got, "$t1")
	assert.Contains(t, got, "$t2")
}

func TestWordDecodesSllZeroAsNop(t *testing.T) {
	w := isa.MakeR(uint32(isa.OpRTYPE), 0, 0, 0, 0, uint32(isa.FunctSLL))
	assert.Equal(t, "nop", Word(w))
}

func TestWordDecodesIArith(t *testing.T) {
	w := isa.MakeI(uint32(isa.OpADDI), 8, 9, 5)
	got := Word(w)
	assert.Contains(t, got, "addi")
	assert.Contains(t, got, "$t1")
	assert.Contains(t, got, "$t0")
}

func TestWordDecodesLoadStoreWithOffset(t *testing.T) {
	w := isa.MakeI(uint32(isa.OpLW), 29, 8, 16)
	got := Word(w)
	assert.Contains(t, got, "lw")
	assert.Contains(t, got, "16($sp)")
}

func TestWordDecodesJumpTarget(t *testing.T) {
	w := isa.MakeJ(uint32(isa.OpJ), 0x100>>2)
	got := Word(w)
	assert.Contains(t, got, "j ")
	assert.Contains(t, got, "0x00000100")
}

func TestWordDecodesUnknownAsRawWord(t *testing.T) {
	// opcode 0x3F is unassigned in this ISA.
	w := uint32(0x3F) << 26
	got := Word(w)
	assert.Contains(t, got, ".word")
}

func TestWordDecodesSyscall(t *testing.T) {
	w := isa.MakeR(uint32(isa.OpRTYPE), 0, 0, 0, 0, uint32(isa.FunctSYSCALL))
	assert.Equal(t, "syscall", Word(w))
}
