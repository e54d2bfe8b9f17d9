package isa

// Opcode is a 6-bit instruction opcode field.
type Opcode uint32

// Funct is a 6-bit R-type function field.
type Funct uint32

// Primary opcodes.
const (
	OpRTYPE  Opcode = 0x00 // SPECIAL (R-type)
	OpREGIMM Opcode = 0x01 // bltz/bgez family

	OpJ   Opcode = 0x02
	OpJAL Opcode = 0x03

	OpBEQ  Opcode = 0x04
	OpBNE  Opcode = 0x05
	OpBLEZ Opcode = 0x06
	OpBGTZ Opcode = 0x07

	OpADDI  Opcode = 0x08
	OpADDIU Opcode = 0x09
	OpSLTI  Opcode = 0x0A
	OpSLTIU Opcode = 0x0B
	OpANDI  Opcode = 0x0C
	OpORI   Opcode = 0x0D
	OpXORI  Opcode = 0x0E
	OpLUI   Opcode = 0x0F

	OpLB  Opcode = 0x20
	OpLH  Opcode = 0x21
	OpLW  Opcode = 0x23
	OpLBU Opcode = 0x24
	OpLHU Opcode = 0x25

	OpSB Opcode = 0x28
	OpSH Opcode = 0x29
	OpSW Opcode = 0x2B
)

// R-type function codes.
const (
	FunctSLL Funct = 0x00
	FunctSRL Funct = 0x02
	FunctSRA Funct = 0x03

	FunctSLLV Funct = 0x04
	FunctSRLV Funct = 0x06
	FunctSRAV Funct = 0x07

	FunctJR   Funct = 0x08
	FunctJALR Funct = 0x09

	FunctSYSCALL Funct = 0x0C

	FunctMFHI Funct = 0x10
	FunctMTHI Funct = 0x11
	FunctMFLO Funct = 0x12
	FunctMTLO Funct = 0x13

	FunctMULT  Funct = 0x18
	FunctMULTU Funct = 0x19
	FunctDIV   Funct = 0x1A
	FunctDIVU  Funct = 0x1B

	FunctADD  Funct = 0x20
	FunctADDU Funct = 0x21
	FunctSUB  Funct = 0x22
	FunctSUBU Funct = 0x23
	FunctAND  Funct = 0x24
	FunctOR   Funct = 0x25
	FunctXOR  Funct = 0x26
	FunctNOR  Funct = 0x27
	// FunctSEQ is a nonstandard funct retained for source compatibility with
	// the SPIM variant this simulator is modeled on. Not part of canonical MIPS I.
	FunctSEQ  Funct = 0x28
	FunctSLT  Funct = 0x2A
	FunctSLTU Funct = 0x2B
)

// REGIMM rt subcodes.
const (
	RegimmBLTZ = 0x00
	RegimmBGEZ = 0x01
)

// Syscall service numbers ($v0 selects the service).
const (
	SyscallPrintInt    = 1
	SyscallPrintString = 4
	SyscallReadInt     = 5
	SyscallReadString  = 8
	SyscallExit        = 10
	SyscallPrintChar   = 11
	SyscallReadChar    = 12
)
