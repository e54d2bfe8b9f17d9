package cpu

import "github.com/kestrelasm/mips68/errs"

// opADD implements signed ADD: traps on two's-complement overflow and
// leaves the destination register unwritten when it does.
func (c *CPU) opADD(d *Decoded) error {
	a := int64(c.Reg.GetSigned(int(d.RS)))
	b := int64(c.Reg.GetSigned(int(d.RT)))
	sum := a + b
	if sum < -(1<<31) || sum > (1<<31)-1 {
		return errs.ErrArithmeticOverflow
	}
	c.Reg.Set(int(d.RD), uint32(int32(sum)))
	return nil
}

// opSUB implements signed SUB with the same overflow trap as opADD.
func (c *CPU) opSUB(d *Decoded) error {
	a := int64(c.Reg.GetSigned(int(d.RS)))
	b := int64(c.Reg.GetSigned(int(d.RT)))
	diff := a - b
	if diff < -(1<<31) || diff > (1<<31)-1 {
		return errs.ErrArithmeticOverflow
	}
	c.Reg.Set(int(d.RD), uint32(int32(diff)))
	return nil
}

// opADDU wraps modulo 2^32; per the canonical semantics this simulator
// follows, it never traps.
func (c *CPU) opADDU(d *Decoded) error {
	c.Reg.Set(int(d.RD), c.Reg.Get(int(d.RS))+c.Reg.Get(int(d.RT)))
	return nil
}

// opSUBU wraps modulo 2^32 and never traps.
func (c *CPU) opSUBU(d *Decoded) error {
	c.Reg.Set(int(d.RD), c.Reg.Get(int(d.RS))-c.Reg.Get(int(d.RT)))
	return nil
}

func (c *CPU) opAND(d *Decoded) error {
	c.Reg.Set(int(d.RD), c.Reg.Get(int(d.RS))&c.Reg.Get(int(d.RT)))
	return nil
}

func (c *CPU) opOR(d *Decoded) error {
	c.Reg.Set(int(d.RD), c.Reg.Get(int(d.RS))|c.Reg.Get(int(d.RT)))
	return nil
}

func (c *CPU) opXOR(d *Decoded) error {
	c.Reg.Set(int(d.RD), c.Reg.Get(int(d.RS))^c.Reg.Get(int(d.RT)))
	return nil
}

func (c *CPU) opNOR(d *Decoded) error {
	c.Reg.Set(int(d.RD), ^(c.Reg.Get(int(d.RS)) | c.Reg.Get(int(d.RT))))
	return nil
}

// opSEQ is the nonstandard "set if equal" funct retained for source
// compatibility; not canonical MIPS I.
func (c *CPU) opSEQ(d *Decoded) error {
	if c.Reg.Get(int(d.RS)) == c.Reg.Get(int(d.RT)) {
		c.Reg.Set(int(d.RD), 1)
	} else {
		c.Reg.Set(int(d.RD), 0)
	}
	return nil
}

func (c *CPU) opSLT(d *Decoded) error {
	if c.Reg.GetSigned(int(d.RS)) < c.Reg.GetSigned(int(d.RT)) {
		c.Reg.Set(int(d.RD), 1)
	} else {
		c.Reg.Set(int(d.RD), 0)
	}
	return nil
}

func (c *CPU) opSLTU(d *Decoded) error {
	if c.Reg.Get(int(d.RS)) < c.Reg.Get(int(d.RT)) {
		c.Reg.Set(int(d.RD), 1)
	} else {
		c.Reg.Set(int(d.RD), 0)
	}
	return nil
}

// opADDI implements signed ADDI, trapping on overflow like opADD. The
// 16-bit immediate is sign-extended here before the add.
func (c *CPU) opADDI(d *Decoded) error {
	a := int64(c.Reg.GetSigned(int(d.RS)))
	b := int64(int32(int16(d.Imm)))
	sum := a + b
	if sum < -(1<<31) || sum > (1<<31)-1 {
		return errs.ErrArithmeticOverflow
	}
	c.Reg.Set(int(d.RT), uint32(int32(sum)))
	return nil
}

// opADDIU wraps modulo 2^32 and never traps.
func (c *CPU) opADDIU(d *Decoded) error {
	c.Reg.Set(int(d.RT), c.Reg.Get(int(d.RS))+uint32(int32(int16(d.Imm))))
	return nil
}

func (c *CPU) opSLTI(d *Decoded) error {
	if c.Reg.GetSigned(int(d.RS)) < int32(int16(d.Imm)) {
		c.Reg.Set(int(d.RT), 1)
	} else {
		c.Reg.Set(int(d.RT), 0)
	}
	return nil
}

func (c *CPU) opSLTIU(d *Decoded) error {
	if c.Reg.Get(int(d.RS)) < uint32(int32(int16(d.Imm))) {
		c.Reg.Set(int(d.RT), 1)
	} else {
		c.Reg.Set(int(d.RT), 0)
	}
	return nil
}

func (c *CPU) opANDI(d *Decoded) error {
	c.Reg.Set(int(d.RT), c.Reg.Get(int(d.RS))&uint32(d.Imm))
	return nil
}

func (c *CPU) opORI(d *Decoded) error {
	c.Reg.Set(int(d.RT), c.Reg.Get(int(d.RS))|uint32(d.Imm))
	return nil
}

func (c *CPU) opXORI(d *Decoded) error {
	c.Reg.Set(int(d.RT), c.Reg.Get(int(d.RS))^uint32(d.Imm))
	return nil
}

func (c *CPU) opLUI(d *Decoded) error {
	c.Reg.Set(int(d.RT), uint32(d.Imm)<<16)
	return nil
}

func (c *CPU) opMULT(d *Decoded) error {
	a := int64(c.Reg.GetSigned(int(d.RS)))
	b := int64(c.Reg.GetSigned(int(d.RT)))
	prod := uint64(a * b)
	c.Reg.SetHILO(uint32(prod>>32), uint32(prod))
	return nil
}

func (c *CPU) opMULTU(d *Decoded) error {
	a := uint64(c.Reg.Get(int(d.RS)))
	b := uint64(c.Reg.Get(int(d.RT)))
	prod := a * b
	c.Reg.SetHILO(uint32(prod>>32), uint32(prod))
	return nil
}

func (c *CPU) opDIV(d *Decoded) error {
	a := c.Reg.GetSigned(int(d.RS))
	b := c.Reg.GetSigned(int(d.RT))
	if b == 0 {
		return errs.ErrDivideByZero
	}
	c.Reg.SetHILO(uint32(a%b), uint32(a/b))
	return nil
}

func (c *CPU) opDIVU(d *Decoded) error {
	a := c.Reg.Get(int(d.RS))
	b := c.Reg.Get(int(d.RT))
	if b == 0 {
		return errs.ErrDivideByZero
	}
	c.Reg.SetHILO(a%b, a/b)
	return nil
}

func (c *CPU) opMFHI(d *Decoded) error {
	c.Reg.Set(int(d.RD), c.Reg.HI())
	return nil
}

func (c *CPU) opMTHI(d *Decoded) error {
	c.Reg.SetHI(c.Reg.Get(int(d.RS)))
	return nil
}

func (c *CPU) opMFLO(d *Decoded) error {
	c.Reg.Set(int(d.RD), c.Reg.LO())
	return nil
}

func (c *CPU) opMTLO(d *Decoded) error {
	c.Reg.SetLO(c.Reg.Get(int(d.RS)))
	return nil
}
