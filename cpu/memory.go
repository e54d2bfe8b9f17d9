package cpu

func (c *CPU) effectiveAddr(d *Decoded) uint32 {
	return c.Reg.Get(int(d.RS)) + uint32(int32(int16(d.Imm)))
}

// opLB loads a sign-extended byte.
func (c *CPU) opLB(d *Decoded) error {
	b, err := c.Mem.LoadByte(c.effectiveAddr(d))
	if err != nil {
		return err
	}
	c.Reg.Set(int(d.RT), uint32(int32(int8(b))))
	return nil
}

// opLBU loads a zero-extended byte.
func (c *CPU) opLBU(d *Decoded) error {
	b, err := c.Mem.LoadByte(c.effectiveAddr(d))
	if err != nil {
		return err
	}
	c.Reg.Set(int(d.RT), uint32(b))
	return nil
}

// opLH loads a sign-extended half-word. Requires 2-byte alignment.
func (c *CPU) opLH(d *Decoded) error {
	h, err := c.Mem.LoadHalf(c.effectiveAddr(d))
	if err != nil {
		return err
	}
	c.Reg.Set(int(d.RT), uint32(int32(int16(h))))
	return nil
}

// opLHU loads a zero-extended half-word. Requires 2-byte alignment.
func (c *CPU) opLHU(d *Decoded) error {
	h, err := c.Mem.LoadHalf(c.effectiveAddr(d))
	if err != nil {
		return err
	}
	c.Reg.Set(int(d.RT), uint32(h))
	return nil
}

// opLW loads a full word. Requires 4-byte alignment.
func (c *CPU) opLW(d *Decoded) error {
	w, err := c.Mem.LoadWord(c.effectiveAddr(d))
	if err != nil {
		return err
	}
	c.Reg.Set(int(d.RT), w)
	return nil
}

func (c *CPU) opSB(d *Decoded) error {
	return c.Mem.StoreByte(c.effectiveAddr(d), byte(c.Reg.Get(int(d.RT))))
}

func (c *CPU) opSH(d *Decoded) error {
	return c.Mem.StoreHalf(c.effectiveAddr(d), uint16(c.Reg.Get(int(d.RT))))
}

func (c *CPU) opSW(d *Decoded) error {
	return c.Mem.StoreWord(c.effectiveAddr(d), c.Reg.Get(int(d.RT)))
}
