// Package regfile implements the 32-register general-purpose file plus
// the HI/LO multiply/divide registers.
package regfile

// RegisterFile holds the 32 general-purpose registers and the HI/LO
// registers used by MULT/DIV and their unsigned variants. Register 0 is
// hard-wired to zero: writes to it are silently discarded.
type RegisterFile struct {
	gpr [32]uint32
	hi  uint32
	lo  uint32
}

// New returns a register file with every register zeroed.
func New() *RegisterFile {
	return &RegisterFile{}
}

// Reset zeroes every register.
func (r *RegisterFile) Reset() {
	*r = RegisterFile{}
}

// Get reads register n as an unsigned value. Reading register 0 always
// returns 0.
func (r *RegisterFile) Get(n int) uint32 {
	if n == 0 {
		return 0
	}
	return r.gpr[n]
}

// GetSigned reads register n as a signed value.
func (r *RegisterFile) GetSigned(n int) int32 {
	return int32(r.Get(n))
}

// Set writes v to register n. Writing to register 0 is a silent no-op.
func (r *RegisterFile) Set(n int, v uint32) {
	if n == 0 {
		return
	}
	r.gpr[n] = v
}

// HI returns the HI register.
func (r *RegisterFile) HI() uint32 { return r.hi }

// LO returns the LO register.
func (r *RegisterFile) LO() uint32 { return r.lo }

// SetHI writes the HI register.
func (r *RegisterFile) SetHI(v uint32) { r.hi = v }

// SetLO writes the LO register.
func (r *RegisterFile) SetLO(v uint32) { r.lo = v }

// SetHILO writes both halves of a 64-bit multiply/divide result at once.
func (r *RegisterFile) SetHILO(hi, lo uint32) {
	r.hi = hi
	r.lo = lo
}

// Snapshot returns a copy of all 32 general-purpose registers, in order,
// for the REPL's register dump.
func (r *RegisterFile) Snapshot() [32]uint32 {
	return r.gpr
}
