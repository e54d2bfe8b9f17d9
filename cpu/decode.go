package cpu

import (
	"fmt"

	"github.com/kestrelasm/mips68/isa"
)

// Decoded holds the fields extracted from a fetched word, plus the
// handler that will execute it. Decode determines what a word means;
// the handler decides what happens.
type Decoded struct {
	Handler func(*CPU, *Decoded) error
	Word    uint32
	Opcode  uint32
	RS      uint32
	RT      uint32
	RD      uint32
	Shamt   uint32
	Funct   uint32
	Imm     uint16
	Target  uint32
}

// Decode splits a fetched word into its fields and resolves the handler
// that implements it, dispatching first on the 6-bit opcode and, for
// SPECIAL/REGIMM, the function or rt subcode field.
func Decode(word uint32) (*Decoded, error) {
	d := &Decoded{
		Word:   word,
		Opcode: isa.FieldOpcode(word),
		RS:     isa.FieldRS(word),
		RT:     isa.FieldRT(word),
		RD:     isa.FieldRD(word),
		Shamt:  isa.FieldShamt(word),
		Funct:  isa.FieldFunct(word),
		Imm:    isa.FieldImm(word),
		Target: isa.FieldTarget(word),
	}

	switch isa.Opcode(d.Opcode) {
	case isa.OpRTYPE:
		h, ok := rtypeHandlers[isa.Funct(d.Funct)]
		if !ok {
			return nil, fmt.Errorf("unknown funct 0x%02X", d.Funct)
		}
		d.Handler = h
		return d, nil

	case isa.OpREGIMM:
		h, ok := regimmHandlers[d.RT]
		if !ok {
			return nil, fmt.Errorf("unknown regimm subcode 0x%02X", d.RT)
		}
		d.Handler = h
		return d, nil

	default:
		h, ok := opcodeHandlers[isa.Opcode(d.Opcode)]
		if !ok {
			return nil, fmt.Errorf("unknown opcode 0x%02X", d.Opcode)
		}
		d.Handler = h
		return d, nil
	}
}

var rtypeHandlers = map[isa.Funct]func(*CPU, *Decoded) error{
	isa.FunctSLL:     (*CPU).opSLL,
	isa.FunctSRL:     (*CPU).opSRL,
	isa.FunctSRA:     (*CPU).opSRA,
	isa.FunctSLLV:    (*CPU).opSLLV,
	isa.FunctSRLV:    (*CPU).opSRLV,
	isa.FunctSRAV:    (*CPU).opSRAV,
	isa.FunctJR:      (*CPU).opJR,
	isa.FunctJALR:    (*CPU).opJALR,
	isa.FunctSYSCALL: (*CPU).opSYSCALL,
	isa.FunctMFHI:    (*CPU).opMFHI,
	isa.FunctMTHI:    (*CPU).opMTHI,
	isa.FunctMFLO:    (*CPU).opMFLO,
	isa.FunctMTLO:    (*CPU).opMTLO,
	isa.FunctMULT:    (*CPU).opMULT,
	isa.FunctMULTU:   (*CPU).opMULTU,
	isa.FunctDIV:     (*CPU).opDIV,
	isa.FunctDIVU:    (*CPU).opDIVU,
	isa.FunctADD:     (*CPU).opADD,
	isa.FunctADDU:    (*CPU).opADDU,
	isa.FunctSUB:     (*CPU).opSUB,
	isa.FunctSUBU:    (*CPU).opSUBU,
	isa.FunctAND:     (*CPU).opAND,
	isa.FunctOR:      (*CPU).opOR,
	isa.FunctXOR:     (*CPU).opXOR,
	isa.FunctNOR:     (*CPU).opNOR,
	isa.FunctSEQ:     (*CPU).opSEQ,
	isa.FunctSLT:     (*CPU).opSLT,
	isa.FunctSLTU:    (*CPU).opSLTU,
}

var regimmHandlers = map[uint32]func(*CPU, *Decoded) error{
	isa.RegimmBLTZ: (*CPU).opBLTZ,
	isa.RegimmBGEZ: (*CPU).opBGEZ,
}

var opcodeHandlers = map[isa.Opcode]func(*CPU, *Decoded) error{
	isa.OpJ:      (*CPU).opJ,
	isa.OpJAL:    (*CPU).opJAL,
	isa.OpBEQ:    (*CPU).opBEQ,
	isa.OpBNE:    (*CPU).opBNE,
	isa.OpBLEZ:   (*CPU).opBLEZ,
	isa.OpBGTZ:   (*CPU).opBGTZ,
	isa.OpADDI:   (*CPU).opADDI,
	isa.OpADDIU:  (*CPU).opADDIU,
	isa.OpSLTI:   (*CPU).opSLTI,
	isa.OpSLTIU:  (*CPU).opSLTIU,
	isa.OpANDI:   (*CPU).opANDI,
	isa.OpORI:    (*CPU).opORI,
	isa.OpXORI:   (*CPU).opXORI,
	isa.OpLUI:    (*CPU).opLUI,
	isa.OpLB:     (*CPU).opLB,
	isa.OpLH:     (*CPU).opLH,
	isa.OpLW:     (*CPU).opLW,
	isa.OpLBU:    (*CPU).opLBU,
	isa.OpLHU:    (*CPU).opLHU,
	isa.OpSB:     (*CPU).opSB,
	isa.OpSH:     (*CPU).opSH,
	isa.OpSW:     (*CPU).opSW,
}
