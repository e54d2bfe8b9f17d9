package cpu

import (
	"fmt"
	"strings"

	"github.com/kestrelasm/mips68/errs"
	"github.com/kestrelasm/mips68/isa"
)

// opSYSCALL dispatches on the service number in $v0.
func (c *CPU) opSYSCALL(d *Decoded) error {
	switch c.Reg.Get(2) {
	case isa.SyscallPrintInt:
		return c.sysPrintInt()
	case isa.SyscallPrintString:
		return c.sysPrintString()
	case isa.SyscallReadInt:
		return c.sysReadInt()
	case isa.SyscallReadString:
		return c.sysReadString()
	case isa.SyscallExit:
		c.Halted = true
		return nil
	case isa.SyscallPrintChar:
		return c.sysPrintChar()
	case isa.SyscallReadChar:
		return c.sysReadChar()
	default:
		return errs.ErrUnknownSyscall
	}
}

func (c *CPU) sysPrintInt() error {
	_, err := fmt.Fprintf(c.out, "%d", c.Reg.GetSigned(4))
	return err
}

// sysPrintString reads bytes from the address in $a0 until a NUL byte.
func (c *CPU) sysPrintString() error {
	addr := c.Reg.Get(4)
	var sb strings.Builder
	for {
		b, err := c.Mem.LoadByte(addr)
		if err != nil {
			return err
		}
		if b == 0 {
			break
		}
		sb.WriteByte(b)
		addr++
	}
	_, err := fmt.Fprint(c.out, sb.String())
	return err
}

func (c *CPU) sysReadInt() error {
	var v int32
	if _, err := fmt.Fscan(c.in, &v); err != nil {
		return err
	}
	c.Reg.Set(2, uint32(v))
	return nil
}

// sysReadString reads up to $a1-1 characters into the buffer at $a0,
// then null-terminates. max==0 is a no-op.
func (c *CPU) sysReadString() error {
	addr := c.Reg.Get(4)
	max := c.Reg.Get(5)
	if max == 0 {
		return nil
	}
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return err
	}
	line = strings.TrimRight(line, "\r\n")

	n := uint32(len(line))
	if n > max-1 {
		n = max - 1
	}
	for i := uint32(0); i < n; i++ {
		if err := c.Mem.StoreByte(addr+i, line[i]); err != nil {
			return err
		}
	}
	return c.Mem.StoreByte(addr+n, 0)
}

func (c *CPU) sysPrintChar() error {
	_, err := fmt.Fprintf(c.out, "%c", byte(c.Reg.Get(4)))
	return err
}

func (c *CPU) sysReadChar() error {
	b, err := c.in.ReadByte()
	if err != nil {
		return err
	}
	c.Reg.Set(2, uint32(b))
	return nil
}
