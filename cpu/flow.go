package cpu

// opJ implements unconditional jump: the target's low 28 bits replace
// the low 28 bits of the already-advanced PC.
func (c *CPU) opJ(d *Decoded) error {
	c.PC = (c.PC & 0xF000_0000) | (d.Target << 2)
	return nil
}

// opJAL is opJ plus a link: it writes the already-advanced PC (the
// return address) to $ra before jumping.
func (c *CPU) opJAL(d *Decoded) error {
	ret := c.PC
	c.PC = (c.PC & 0xF000_0000) | (d.Target << 2)
	c.Reg.Set(31, ret)
	return nil
}

// opJR jumps to the address held in rs.
func (c *CPU) opJR(d *Decoded) error {
	c.PC = c.Reg.Get(int(d.RS))
	return nil
}

// opJALR links the already-advanced PC into $ra, then jumps to rs.
func (c *CPU) opJALR(d *Decoded) error {
	ret := c.PC
	c.PC = c.Reg.Get(int(d.RS))
	c.Reg.Set(31, ret)
	return nil
}

func branchOffset(imm uint16) uint32 {
	return uint32(int32(int16(imm)) << 2)
}

func (c *CPU) opBEQ(d *Decoded) error {
	if c.Reg.Get(int(d.RS)) == c.Reg.Get(int(d.RT)) {
		c.PC += branchOffset(d.Imm)
	}
	return nil
}

func (c *CPU) opBNE(d *Decoded) error {
	if c.Reg.Get(int(d.RS)) != c.Reg.Get(int(d.RT)) {
		c.PC += branchOffset(d.Imm)
	}
	return nil
}

func (c *CPU) opBLEZ(d *Decoded) error {
	if c.Reg.GetSigned(int(d.RS)) <= 0 {
		c.PC += branchOffset(d.Imm)
	}
	return nil
}

func (c *CPU) opBGTZ(d *Decoded) error {
	if c.Reg.GetSigned(int(d.RS)) > 0 {
		c.PC += branchOffset(d.Imm)
	}
	return nil
}

// opBLTZ is the REGIMM rt=0 case.
func (c *CPU) opBLTZ(d *Decoded) error {
	if c.Reg.GetSigned(int(d.RS)) < 0 {
		c.PC += branchOffset(d.Imm)
	}
	return nil
}

// opBGEZ is the REGIMM rt=1 case.
func (c *CPU) opBGEZ(d *Decoded) error {
	if c.Reg.GetSigned(int(d.RS)) >= 0 {
		c.PC += branchOffset(d.Imm)
	}
	return nil
}
