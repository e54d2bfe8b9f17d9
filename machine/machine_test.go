package machine

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelasm/mips68/errs"
	"github.com/kestrelasm/mips68/isa"
	"github.com/kestrelasm/mips68/mem"
)

func newTestMachine() *Machine {
	return New(strings.NewReader(""), &bytes.Buffer{})
}

func TestResetSetsStackPointerAndPC(t *testing.T) {
	m := newTestMachine()
	assert.Equal(t, uint32(mem.InitialStackPointer), m.Reg.Get(29))
	assert.Equal(t, uint32(mem.TextStart), m.CPU.PC)
	assert.Equal(t, uint32(mem.TextStart), m.TextCursor)
	assert.Equal(t, uint32(mem.DataStart), m.DataCursor)
}

func TestEmitTextWordRejectsMisalignedCursor(t *testing.T) {
	m := newTestMachine()
	m.TextCursor++
	_, err := m.EmitTextWord(0)
	assert.ErrorIs(t, err, errs.ErrMisaligned)
}

func TestEmitTextWordAdvancesCursor(t *testing.T) {
	m := newTestMachine()
	start := m.TextCursor
	addr, err := m.EmitTextWord(0x01234567)
	require.NoError(t, err)
	assert.Equal(t, start, addr)
	assert.Equal(t, start+4, m.TextCursor)
}

func TestDefineLabelRejectsRedefinition(t *testing.T) {
	m := newTestMachine()
	require.NoError(t, m.DefineLabel("loop", mem.TextStart))
	err := m.DefineLabel("loop", mem.TextStart+4)
	assert.ErrorIs(t, err, errs.ErrLabelRedefined)
}

func TestBranchFixupResolvesOnLabelDefinition(t *testing.T) {
	m := newTestMachine()
	instrAddr, err := m.EmitTextWord(isa.MakeI(uint32(isa.OpBEQ), 8, 9, 0))
	require.NoError(t, err)
	m.AddBranchFixup(BranchFixup{InstrAddr: instrAddr, Opcode: uint32(isa.OpBEQ), RS: 8, RT: 9, Label: "done"})
	require.True(t, m.HasUnresolvedFixups())

	target := m.TextCursor + 12
	require.NoError(t, m.DefineLabel("done", target))
	assert.False(t, m.HasUnresolvedFixups())

	word, err := m.Mem.LoadWord(instrAddr)
	require.NoError(t, err)
	wantOffset := uint16((target - (instrAddr + 4)) >> 2)
	assert.Equal(t, isa.MakeI(uint32(isa.OpBEQ), 8, 9, wantOffset), word)
}

func TestJumpFixupResolvesOnLabelDefinition(t *testing.T) {
	m := newTestMachine()
	instrAddr, err := m.EmitTextWord(isa.MakeJ(uint32(isa.OpJ), 0))
	require.NoError(t, err)
	m.AddJumpFixup(JumpFixup{InstrAddr: instrAddr, Opcode: uint32(isa.OpJ), Label: "target"})

	target := m.TextCursor + 8
	require.NoError(t, m.DefineLabel("target", target))

	word, err := m.Mem.LoadWord(instrAddr)
	require.NoError(t, err)
	assert.Equal(t, isa.MakeJ(uint32(isa.OpJ), target>>2), word)
}

func TestLaFixupPatchesHiAndLoWords(t *testing.T) {
	m := newTestMachine()
	luiAddr, err := m.EmitTextWord(isa.MakeI(uint32(isa.OpLUI), 0, 1, 0))
	require.NoError(t, err)
	_, err = m.EmitTextWord(isa.MakeI(uint32(isa.OpORI), 1, 1, 0))
	require.NoError(t, err)
	m.AddLaFixup(LaFixup{InstrAddr: luiAddr, RT: 1, Label: "buf"})

	target := uint32(mem.DataStart + 0x40)
	require.NoError(t, m.DefineLabel("buf", target))

	luiWord, err := m.Mem.LoadWord(luiAddr)
	require.NoError(t, err)
	oriWord, err := m.Mem.LoadWord(luiAddr + 4)
	require.NoError(t, err)
	assert.Equal(t, uint16(target>>16), isa.FieldImm(luiWord))
	assert.Equal(t, uint16(target&0xFFFF), isa.FieldImm(oriWord))
}

func TestUnresolvableFixupLeavesOthersIntactOnLabelMismatch(t *testing.T) {
	m := newTestMachine()
	addr, err := m.EmitTextWord(isa.MakeI(uint32(isa.OpBEQ), 8, 9, 0))
	require.NoError(t, err)
	m.AddBranchFixup(BranchFixup{InstrAddr: addr, Opcode: uint32(isa.OpBEQ), RS: 8, RT: 9, Label: "elsewhere"})
	require.NoError(t, m.DefineLabel("unrelated", mem.TextStart+100))
	assert.True(t, m.HasUnresolvedFixups())
}

func TestLabelsReturnsDefensiveCopy(t *testing.T) {
	m := newTestMachine()
	require.NoError(t, m.DefineLabel("start", mem.TextStart))
	labels := m.Labels()
	labels["start"] = 0xFFFFFFFF
	again := m.Labels()
	assert.Equal(t, uint32(mem.TextStart), again["start"])
}
