// Package mem implements the sparse, segmented byte-addressable memory
// the machine executes against. Unmapped bytes inside a valid segment
// read as zero; bytes outside every segment are never addressable.
package mem

import (
	"encoding/binary"
	"sort"

	"github.com/kestrelasm/mips68/errs"
)

// Segment bounds, half-open [Start, End).
const (
	TextStart  = 0x0040_0000
	TextEnd    = 0x1000_0000
	DataStart  = 0x1000_0000
	DataEnd    = 0x1004_0000
	StackStart = 0x1004_0000
	StackEnd   = 0x8000_0000

	// InitialStackPointer is the value $sp holds at machine reset.
	InitialStackPointer = 0x7FFF_EFFC
)

// Segment identifies which region an address falls in.
type Segment int

const (
	None Segment = iota
	Text
	Data
	Stack
)

// Memory is a sparse byte map over the 32-bit address space, split into
// text/data/stack segments with independent alignment and bounds rules.
type Memory struct {
	bytes map[uint32]byte
}

// New returns an empty memory with no bytes mapped.
func New() *Memory {
	return &Memory{bytes: make(map[uint32]byte)}
}

// Reset discards every mapped byte.
func (m *Memory) Reset() {
	m.bytes = make(map[uint32]byte)
}

// SegmentOf reports which segment an address belongs to, or None if it
// falls outside all three.
func SegmentOf(addr uint32) Segment {
	switch {
	case addr >= TextStart && addr < TextEnd:
		return Text
	case addr >= DataStart && addr < DataEnd:
		return Data
	case addr >= StackStart && addr < StackEnd:
		return Stack
	default:
		return None
	}
}

func (m *Memory) checkBounds(addr uint32, size uint32) error {
	seg := SegmentOf(addr)
	if seg == None {
		return errs.ErrOutOfBounds
	}
	last := addr + size - 1
	if SegmentOf(last) != seg {
		return errs.ErrOutOfBounds
	}
	return nil
}

func checkAlign(addr uint32, size uint32) error {
	if size > 1 && addr%size != 0 {
		return errs.ErrMisaligned
	}
	return nil
}

// LoadByte reads a single byte, bounds-checked but not alignment-checked.
func (m *Memory) LoadByte(addr uint32) (byte, error) {
	if err := m.checkBounds(addr, 1); err != nil {
		return 0, err
	}
	return m.bytes[addr], nil
}

// StoreByte writes a single byte, bounds-checked but not alignment-checked.
func (m *Memory) StoreByte(addr uint32, v byte) error {
	if err := m.checkBounds(addr, 1); err != nil {
		return err
	}
	m.bytes[addr] = v
	return nil
}

// LoadHalf reads a big-endian 16-bit value. Requires 2-byte alignment.
func (m *Memory) LoadHalf(addr uint32) (uint16, error) {
	if err := checkAlign(addr, 2); err != nil {
		return 0, err
	}
	if err := m.checkBounds(addr, 2); err != nil {
		return 0, err
	}
	var buf [2]byte
	buf[0] = m.bytes[addr]
	buf[1] = m.bytes[addr+1]
	return binary.BigEndian.Uint16(buf[:]), nil
}

// StoreHalf writes a big-endian 16-bit value. Requires 2-byte alignment.
func (m *Memory) StoreHalf(addr uint32, v uint16) error {
	if err := checkAlign(addr, 2); err != nil {
		return err
	}
	if err := m.checkBounds(addr, 2); err != nil {
		return err
	}
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	m.bytes[addr] = buf[0]
	m.bytes[addr+1] = buf[1]
	return nil
}

// LoadWord reads a big-endian 32-bit value. Requires 4-byte alignment.
func (m *Memory) LoadWord(addr uint32) (uint32, error) {
	if err := checkAlign(addr, 4); err != nil {
		return 0, err
	}
	if err := m.checkBounds(addr, 4); err != nil {
		return 0, err
	}
	var buf [4]byte
	for i := uint32(0); i < 4; i++ {
		buf[i] = m.bytes[addr+i]
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// StoreWord writes a big-endian 32-bit value. Requires 4-byte alignment.
func (m *Memory) StoreWord(addr uint32, v uint32) error {
	if err := checkAlign(addr, 4); err != nil {
		return err
	}
	if err := m.checkBounds(addr, 4); err != nil {
		return err
	}
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	for i := uint32(0); i < 4; i++ {
		m.bytes[addr+i] = buf[i]
	}
	return nil
}

// Dump returns the addresses of a segment's mapped bytes in address
// order, for the REPL's hex dump command.
func (m *Memory) Dump(seg Segment) []uint32 {
	var addrs []uint32
	for a := range m.bytes {
		if SegmentOf(a) == seg {
			addrs = append(addrs, a)
		}
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	return addrs
}
