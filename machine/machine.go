// Package machine owns memory, the CPU, the symbol table and the
// pending fixup lists, and is the single point through which the
// assembler emits code and data.
package machine

import (
	"io"

	"github.com/kestrelasm/mips68/cpu"
	"github.com/kestrelasm/mips68/errs"
	"github.com/kestrelasm/mips68/isa"
	"github.com/kestrelasm/mips68/mem"
	"github.com/kestrelasm/mips68/regfile"
)

// BranchFixup records a placeholder I-format branch word awaiting a
// forward label definition.
type BranchFixup struct {
	InstrAddr uint32
	Opcode    uint32
	RS        uint32
	RT        uint32
	Label     string
}

// JumpFixup records a placeholder J/JAL word awaiting a forward label
// definition.
type JumpFixup struct {
	InstrAddr uint32
	Opcode    uint32
	Label     string
}

// LaFixup records the LUI+ORI pair emitted by a pseudo `la` whose label
// isn't defined yet.
type LaFixup struct {
	InstrAddr uint32
	RT        uint32
	Label     string
}

// SourceRecord is one successfully assembled line, kept for the REPL's
// save/replay feature.
type SourceRecord struct {
	Text      string
	InText    bool
	PCBefore  uint32
	PCAfter   uint32
}

// Machine ties together memory, the CPU, the emit cursors, the symbol
// table and the fixup lists into the single value the REPL drives.
type Machine struct {
	Mem *mem.Memory
	Reg *regfile.RegisterFile
	CPU *cpu.CPU

	TextCursor uint32
	DataCursor uint32

	labels map[string]uint32

	branchFixups []BranchFixup
	jumpFixups   []JumpFixup
	laFixups     []LaFixup

	History []SourceRecord
}

// New returns a freshly reset machine reading syscall input from in and
// writing syscall output to out.
func New(in io.Reader, out io.Writer) *Machine {
	m := &Machine{
		Mem: mem.New(),
		Reg: regfile.New(),
	}
	m.CPU = cpu.New(m.Mem, m.Reg, in, out)
	m.Reset()
	return m
}

// Reset clears memory, registers, cursors, labels and fixups, and sets
// the stack pointer and program counter to their initial values.
func (m *Machine) Reset() {
	m.Mem.Reset()
	m.Reg.Reset()
	m.TextCursor = mem.TextStart
	m.DataCursor = mem.DataStart
	m.labels = make(map[string]uint32)
	m.branchFixups = nil
	m.jumpFixups = nil
	m.laFixups = nil
	m.History = nil
	m.Reg.Set(29, mem.InitialStackPointer)
	m.CPU.Reset(mem.TextStart)
}

// EmitTextWord writes w at the text cursor and advances it by 4. The
// cursor must already be word-aligned.
func (m *Machine) EmitTextWord(w uint32) (uint32, error) {
	if m.TextCursor%4 != 0 {
		return 0, errs.ErrMisaligned
	}
	if mem.SegmentOf(m.TextCursor) != mem.Text || mem.SegmentOf(m.TextCursor+3) != mem.Text {
		return 0, errs.ErrOutOfBounds
	}
	addr := m.TextCursor
	if err := m.Mem.StoreWord(addr, w); err != nil {
		return 0, err
	}
	m.TextCursor += 4
	return addr, nil
}

// EmitDataWord writes w at the data cursor (must be 4-byte aligned) and
// advances it by 4.
func (m *Machine) EmitDataWord(w uint32) (uint32, error) {
	if m.DataCursor%4 != 0 {
		return 0, errs.ErrMisaligned
	}
	addr := m.DataCursor
	if err := m.Mem.StoreWord(addr, w); err != nil {
		return 0, err
	}
	m.DataCursor += 4
	return addr, nil
}

// EmitDataHalf writes h at the data cursor (must be 2-byte aligned) and
// advances it by 2.
func (m *Machine) EmitDataHalf(h uint16) (uint32, error) {
	if m.DataCursor%2 != 0 {
		return 0, errs.ErrMisaligned
	}
	addr := m.DataCursor
	if err := m.Mem.StoreHalf(addr, h); err != nil {
		return 0, err
	}
	m.DataCursor += 2
	return addr, nil
}

// EmitDataByte writes b at the data cursor and advances it by 1.
func (m *Machine) EmitDataByte(b byte) (uint32, error) {
	addr := m.DataCursor
	if err := m.Mem.StoreByte(addr, b); err != nil {
		return 0, err
	}
	m.DataCursor++
	return addr, nil
}

// EmitDataAsciiz writes s followed by a NUL terminator at the data
// cursor, advancing it past the terminator.
func (m *Machine) EmitDataAsciiz(s string) (uint32, error) {
	start := m.DataCursor
	for i := 0; i < len(s); i++ {
		if _, err := m.EmitDataByte(s[i]); err != nil {
			return 0, err
		}
	}
	if _, err := m.EmitDataByte(0); err != nil {
		return 0, err
	}
	return start, nil
}

// DefineLabel binds name to addr, failing if name is already bound. On
// success it resolves every fixup waiting on name.
func (m *Machine) DefineLabel(name string, addr uint32) error {
	if _, ok := m.labels[name]; ok {
		return errs.ErrLabelRedefined
	}
	m.labels[name] = addr
	return m.resolveFixupsFor(name, addr)
}

// LookupLabel returns the address bound to name, if any.
func (m *Machine) LookupLabel(name string) (uint32, bool) {
	a, ok := m.labels[name]
	return a, ok
}

// HasLabel reports whether name is bound.
func (m *Machine) HasLabel(name string) bool {
	_, ok := m.labels[name]
	return ok
}

// Labels returns a snapshot of the symbol table for the REPL's `labels`
// command.
func (m *Machine) Labels() map[string]uint32 {
	out := make(map[string]uint32, len(m.labels))
	for k, v := range m.labels {
		out[k] = v
	}
	return out
}

// AddBranchFixup records a placeholder I-format branch awaiting label.
func (m *Machine) AddBranchFixup(f BranchFixup) {
	m.branchFixups = append(m.branchFixups, f)
}

// AddJumpFixup records a placeholder J/JAL word awaiting label.
func (m *Machine) AddJumpFixup(f JumpFixup) {
	m.jumpFixups = append(m.jumpFixups, f)
}

// AddLaFixup records a placeholder la expansion awaiting label.
func (m *Machine) AddLaFixup(f LaFixup) {
	m.laFixups = append(m.laFixups, f)
}

// HasUnresolvedFixups reports whether any fixup is still pending. The
// REPL uses this to decide whether the just-assembled line can be run.
func (m *Machine) HasUnresolvedFixups() bool {
	return len(m.branchFixups) > 0 || len(m.jumpFixups) > 0 || len(m.laFixups) > 0
}

func (m *Machine) resolveFixupsFor(label string, addr uint32) error {
	kept := m.branchFixups[:0]
	for _, f := range m.branchFixups {
		if f.Label != label {
			kept = append(kept, f)
			continue
		}
		offset := int64(addr) - int64(f.InstrAddr+4)
		if offset%4 != 0 {
			return errs.Fixup{Label: label, Err: errs.ErrMisaligned}
		}
		offsetWords := offset >> 2
		if offsetWords < -32768 || offsetWords > 32767 {
			return errs.Fixup{Label: label, Err: errs.ErrImmediateTooWide}
		}
		w := isa.MakeI(f.Opcode, f.RS, f.RT, uint16(offsetWords))
		if err := m.Mem.StoreWord(f.InstrAddr, w); err != nil {
			return err
		}
	}
	m.branchFixups = kept

	keptJ := m.jumpFixups[:0]
	for _, f := range m.jumpFixups {
		if f.Label != label {
			keptJ = append(keptJ, f)
			continue
		}
		if addr&3 != 0 {
			return errs.Fixup{Label: label, Err: errs.ErrMisaligned}
		}
		w := isa.MakeJ(f.Opcode, addr>>2)
		if err := m.Mem.StoreWord(f.InstrAddr, w); err != nil {
			return err
		}
	}
	m.jumpFixups = keptJ

	keptLa := m.laFixups[:0]
	for _, f := range m.laFixups {
		if f.Label != label {
			keptLa = append(keptLa, f)
			continue
		}
		hi := (addr >> 16) & 0xFFFF
		lo := addr & 0xFFFF
		luiWord, err := m.Mem.LoadWord(f.InstrAddr)
		if err != nil {
			return err
		}
		if err := m.Mem.StoreWord(f.InstrAddr, isa.WithImm(luiWord, uint16(hi))); err != nil {
			return err
		}
		oriWord, err := m.Mem.LoadWord(f.InstrAddr + 4)
		if err != nil {
			return err
		}
		if err := m.Mem.StoreWord(f.InstrAddr+4, isa.WithImm(oriWord, uint16(lo))); err != nil {
			return err
		}
	}
	m.laFixups = keptLa

	return nil
}
