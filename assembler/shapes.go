package assembler

import "github.com/kestrelasm/mips68/isa"

// Shape names the operand pattern an instruction mnemonic expects.
type Shape int

const (
	ShapeR3 Shape = iota // rd, rs, rt
	ShapeRShift           // rd, rt, shamt
	ShapeRR               // rs, rt  (mult/div family: no destination register)
	ShapeIArith           // rt, rs, imm
	ShapeILui              // rt, imm  (lui: no rs)
	ShapeILS               // rt, imm(rs)
	ShapeIBranch            // rs, rt, label
	ShapeIBranch1           // rs, label
	ShapeJump               // label
	ShapeSyscall            // (none)
	ShapeJRJALR             // rs
	ShapeRHiLo1             // rd   (mfhi/mflo)
	ShapeRHiLo2             // rs   (mthi/mtlo)
)

// InstrInfo describes one real instruction mnemonic: its operand shape
// and the opcode/funct fields its encoding needs.
type InstrInfo struct {
	Shape  Shape
	Opcode isa.Opcode
	Funct  isa.Funct
	Unsigned bool // for ShapeIArith: zero-extend the immediate instead of sign-extend
	RD     uint32 // for ShapeJRJALR: fixed rd value (0 for jr, 31 for jalr)
}

// instrTable maps every real-instruction mnemonic to its descriptor.
var instrTable = map[string]InstrInfo{
	"add":  {Shape: ShapeR3, Opcode: isa.OpRTYPE, Funct: isa.FunctADD},
	"addu": {Shape: ShapeR3, Opcode: isa.OpRTYPE, Funct: isa.FunctADDU},
	"sub":  {Shape: ShapeR3, Opcode: isa.OpRTYPE, Funct: isa.FunctSUB},
	"subu": {Shape: ShapeR3, Opcode: isa.OpRTYPE, Funct: isa.FunctSUBU},
	"and":  {Shape: ShapeR3, Opcode: isa.OpRTYPE, Funct: isa.FunctAND},
	"or":   {Shape: ShapeR3, Opcode: isa.OpRTYPE, Funct: isa.FunctOR},
	"xor":  {Shape: ShapeR3, Opcode: isa.OpRTYPE, Funct: isa.FunctXOR},
	"nor":  {Shape: ShapeR3, Opcode: isa.OpRTYPE, Funct: isa.FunctNOR},
	"seq":  {Shape: ShapeR3, Opcode: isa.OpRTYPE, Funct: isa.FunctSEQ},
	"slt":  {Shape: ShapeR3, Opcode: isa.OpRTYPE, Funct: isa.FunctSLT},
	"sltu": {Shape: ShapeR3, Opcode: isa.OpRTYPE, Funct: isa.FunctSLTU},

	"sll": {Shape: ShapeRShift, Opcode: isa.OpRTYPE, Funct: isa.FunctSLL},
	"srl": {Shape: ShapeRShift, Opcode: isa.OpRTYPE, Funct: isa.FunctSRL},
	"sra": {Shape: ShapeRShift, Opcode: isa.OpRTYPE, Funct: isa.FunctSRA},

	"mult":  {Shape: ShapeRR, Opcode: isa.OpRTYPE, Funct: isa.FunctMULT},
	"multu": {Shape: ShapeRR, Opcode: isa.OpRTYPE, Funct: isa.FunctMULTU},
	"div":   {Shape: ShapeRR, Opcode: isa.OpRTYPE, Funct: isa.FunctDIV},
	"divu":  {Shape: ShapeRR, Opcode: isa.OpRTYPE, Funct: isa.FunctDIVU},

	"addi":  {Shape: ShapeIArith, Opcode: isa.OpADDI},
	"addiu": {Shape: ShapeIArith, Opcode: isa.OpADDIU},
	"slti":  {Shape: ShapeIArith, Opcode: isa.OpSLTI},
	"sltiu": {Shape: ShapeIArith, Opcode: isa.OpSLTIU},
	"andi":  {Shape: ShapeIArith, Opcode: isa.OpANDI, Unsigned: true},
	"ori":   {Shape: ShapeIArith, Opcode: isa.OpORI, Unsigned: true},
	"xori":  {Shape: ShapeIArith, Opcode: isa.OpXORI, Unsigned: true},

	"lui": {Shape: ShapeILui, Opcode: isa.OpLUI},

	"lb":  {Shape: ShapeILS, Opcode: isa.OpLB},
	"lh":  {Shape: ShapeILS, Opcode: isa.OpLH},
	"lw":  {Shape: ShapeILS, Opcode: isa.OpLW},
	"lbu": {Shape: ShapeILS, Opcode: isa.OpLBU},
	"lhu": {Shape: ShapeILS, Opcode: isa.OpLHU},
	"sb":  {Shape: ShapeILS, Opcode: isa.OpSB},
	"sh":  {Shape: ShapeILS, Opcode: isa.OpSH},
	"sw":  {Shape: ShapeILS, Opcode: isa.OpSW},

	"beq": {Shape: ShapeIBranch, Opcode: isa.OpBEQ},
	"bne": {Shape: ShapeIBranch, Opcode: isa.OpBNE},

	"blez": {Shape: ShapeIBranch1, Opcode: isa.OpBLEZ},
	"bgtz": {Shape: ShapeIBranch1, Opcode: isa.OpBGTZ},
	"bltz": {Shape: ShapeIBranch1, Opcode: isa.OpREGIMM, RD: isa.RegimmBLTZ},
	"bgez": {Shape: ShapeIBranch1, Opcode: isa.OpREGIMM, RD: isa.RegimmBGEZ},

	"j":   {Shape: ShapeJump, Opcode: isa.OpJ},
	"jal": {Shape: ShapeJump, Opcode: isa.OpJAL},

	"syscall": {Shape: ShapeSyscall, Opcode: isa.OpRTYPE, Funct: isa.FunctSYSCALL},

	"jr":   {Shape: ShapeJRJALR, RD: 0, Funct: isa.FunctJR},
	"jalr": {Shape: ShapeJRJALR, RD: 31, Funct: isa.FunctJALR},

	"mfhi": {Shape: ShapeRHiLo1, Funct: isa.FunctMFHI},
	"mflo": {Shape: ShapeRHiLo1, Funct: isa.FunctMFLO},
	"mthi": {Shape: ShapeRHiLo2, Funct: isa.FunctMTHI},
	"mtlo": {Shape: ShapeRHiLo2, Funct: isa.FunctMTLO},
}
