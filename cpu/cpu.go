// Package cpu implements the MIPS I fetch/decode/execute engine: signed
// overflow traps, sign-extension rules, branch/jump semantics and the
// syscall services the REPL exposes to running programs.
package cpu

import (
	"bufio"
	"io"

	"github.com/kestrelasm/mips68/errs"
	"github.com/kestrelasm/mips68/mem"
	"github.com/kestrelasm/mips68/regfile"
)

// CPU owns the single execution thread: a borrowed Memory, a borrowed
// RegisterFile, the program counter, and the halted flag syscall 10 sets.
type CPU struct {
	Mem *mem.Memory
	Reg *regfile.RegisterFile
	PC  uint32

	Halted bool

	in  *bufio.Reader
	out io.Writer
}

// New returns a CPU borrowing the given memory and register file, reading
// syscall input from in and writing syscall output to out.
func New(m *mem.Memory, r *regfile.RegisterFile, in io.Reader, out io.Writer) *CPU {
	return &CPU{
		Mem: m,
		Reg: r,
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Reset clears the halted flag and sets the program counter to pc. It
// does not touch memory or registers; the owning Machine does that.
func (c *CPU) Reset(pc uint32) {
	c.PC = pc
	c.Halted = false
}

// Step fetches the word at PC, advances PC by 4, then decodes and
// executes it. Side effects (register writes, memory writes, the PC
// update the handler may further apply, HI/LO) are fully committed
// before Step returns.
func (c *CPU) Step() error {
	if c.Halted {
		return errs.ErrHalted
	}

	word, err := c.Mem.LoadWord(c.PC)
	if err != nil {
		return errs.Runtime{PC: c.PC, Err: err}
	}
	fetchPC := c.PC
	c.PC += 4

	d, err := Decode(word)
	if err != nil {
		return errs.Runtime{PC: fetchPC, Err: err}
	}

	if err := d.Handler(c, d); err != nil {
		return errs.Runtime{PC: fetchPC, Err: err}
	}
	return nil
}

// Run steps the CPU until it halts, a step fails, or maxSteps is
// reached. It returns the number of steps actually executed.
func (c *CPU) Run(maxSteps int) (int, error) {
	for i := 0; i < maxSteps; i++ {
		if c.Halted {
			return i, nil
		}
		if err := c.Step(); err != nil {
			return i, err
		}
	}
	if c.Halted {
		return maxSteps, nil
	}
	return maxSteps, errs.ErrStepLimitExceeded
}
