package cpu

// opSLL shifts left, zero-filling the vacated low bits.
func (c *CPU) opSLL(d *Decoded) error {
	c.Reg.Set(int(d.RD), c.Reg.Get(int(d.RT))<<d.Shamt)
	return nil
}

// opSRL shifts right, zero-filling the vacated high bits.
func (c *CPU) opSRL(d *Decoded) error {
	c.Reg.Set(int(d.RD), c.Reg.Get(int(d.RT))>>d.Shamt)
	return nil
}

// opSRA shifts right, sign-propagating through the vacated high bits.
func (c *CPU) opSRA(d *Decoded) error {
	v := c.Reg.GetSigned(int(d.RT))
	c.Reg.Set(int(d.RD), uint32(v>>d.Shamt))
	return nil
}

// opSLLV shifts left by a variable amount; the shift count is masked to
// its low 5 bits.
func (c *CPU) opSLLV(d *Decoded) error {
	shamt := c.Reg.Get(int(d.RS)) & 0x1F
	c.Reg.Set(int(d.RD), c.Reg.Get(int(d.RT))<<shamt)
	return nil
}

func (c *CPU) opSRLV(d *Decoded) error {
	shamt := c.Reg.Get(int(d.RS)) & 0x1F
	c.Reg.Set(int(d.RD), c.Reg.Get(int(d.RT))>>shamt)
	return nil
}

func (c *CPU) opSRAV(d *Decoded) error {
	shamt := c.Reg.Get(int(d.RS)) & 0x1F
	v := c.Reg.GetSigned(int(d.RT))
	c.Reg.Set(int(d.RD), uint32(v>>shamt))
	return nil
}
