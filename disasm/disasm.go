// Package disasm renders a decoded 32-bit MIPS word back to assembly
// text, for the REPL's `disasm` command and the standalone disassembler
// tool. Unlike a variable-length ISA's disassembler, MIPS words are
// fixed-width, so this needs neither a linear sweep nor control-flow
// analysis: one word decodes to exactly one line.
package disasm

import (
	"fmt"

	"github.com/kestrelasm/mips68/isa"
)

// Word decodes a single 32-bit instruction word into "mnemonic operands"
// text. Unknown opcodes render as a raw `.word`; an unknown funct or
// REGIMM subcode renders as `.word` with that field's value, not the
// whole word.
func Word(w uint32) string {
	opcode := isa.Opcode(isa.FieldOpcode(w))
	rs := isa.FieldRS(w)
	rt := isa.FieldRT(w)
	rd := isa.FieldRD(w)
	shamt := isa.FieldShamt(w)
	funct := isa.Funct(isa.FieldFunct(w))
	imm := isa.FieldImm(w)
	target := isa.FieldTarget(w)

	switch opcode {
	case isa.OpRTYPE:
		return decodeRType(rs, rt, rd, shamt, funct)
	case isa.OpREGIMM:
		return decodeRegimm(rs, rt, imm)
	case isa.OpJ:
		return fmt.Sprintf("j      0x%08X", target<<2)
	case isa.OpJAL:
		return fmt.Sprintf("jal    0x%08X", target<<2)
	case isa.OpBEQ:
		return branchText("beq", rs, rt, imm)
	case isa.OpBNE:
		return branchText("bne", rs, rt, imm)
	case isa.OpBLEZ:
		return branch1Text("blez", rs, imm)
	case isa.OpBGTZ:
		return branch1Text("bgtz", rs, imm)
	case isa.OpADDI:
		return iArithText("addi", rt, rs, int32(int16(imm)))
	case isa.OpADDIU:
		return iArithText("addiu", rt, rs, int32(int16(imm)))
	case isa.OpSLTI:
		return iArithText("slti", rt, rs, int32(int16(imm)))
	case isa.OpSLTIU:
		return iArithText("sltiu", rt, rs, int32(int16(imm)))
	case isa.OpANDI:
		return iArithUText("andi", rt, rs, imm)
	case isa.OpORI:
		return iArithUText("ori", rt, rs, imm)
	case isa.OpXORI:
		return iArithUText("xori", rt, rs, imm)
	case isa.OpLUI:
		return fmt.Sprintf("lui    %s, 0x%04X", reg(rt), imm)
	case isa.OpLB:
		return loadStoreText("lb", rt, imm, rs)
	case isa.OpLH:
		return loadStoreText("lh", rt, imm, rs)
	case isa.OpLW:
		return loadStoreText("lw", rt, imm, rs)
	case isa.OpLBU:
		return loadStoreText("lbu", rt, imm, rs)
	case isa.OpLHU:
		return loadStoreText("lhu", rt, imm, rs)
	case isa.OpSB:
		return loadStoreText("sb", rt, imm, rs)
	case isa.OpSH:
		return loadStoreText("sh", rt, imm, rs)
	case isa.OpSW:
		return loadStoreText("sw", rt, imm, rs)
	default:
		return fmt.Sprintf(".word  0x%08X", w)
	}
}

func decodeRType(rs, rt, rd, shamt uint32, funct isa.Funct) string {
	switch funct {
	case isa.FunctSLL:
		if rd == 0 && rt == 0 && shamt == 0 {
			return "nop"
		}
		return fmt.Sprintf("sll    %s, %s, %d", reg(rd), reg(rt), shamt)
	case isa.FunctSRL:
		return fmt.Sprintf("srl    %s, %s, %d", reg(rd), reg(rt), shamt)
	case isa.FunctSRA:
		return fmt.Sprintf("sra    %s, %s, %d", reg(rd), reg(rt), shamt)
	case isa.FunctSLLV:
		return fmt.Sprintf("sllv   %s, %s, %s", reg(rd), reg(rt), reg(rs))
	case isa.FunctSRLV:
		return fmt.Sprintf("srlv   %s, %s, %s", reg(rd), reg(rt), reg(rs))
	case isa.FunctSRAV:
		return fmt.Sprintf("srav   %s, %s, %s", reg(rd), reg(rt), reg(rs))
	case isa.FunctJR:
		return fmt.Sprintf("jr     %s", reg(rs))
	case isa.FunctJALR:
		return fmt.Sprintf("jalr   %s", reg(rs))
	case isa.FunctSYSCALL:
		return "syscall"
	case isa.FunctMFHI:
		return fmt.Sprintf("mfhi   %s", reg(rd))
	case isa.FunctMTHI:
		return fmt.Sprintf("mthi   %s", reg(rs))
	case isa.FunctMFLO:
		return fmt.Sprintf("mflo   %s", reg(rd))
	case isa.FunctMTLO:
		return fmt.Sprintf("mtlo   %s", reg(rs))
	case isa.FunctMULT:
		return fmt.Sprintf("mult   %s, %s", reg(rs), reg(rt))
	case isa.FunctMULTU:
		return fmt.Sprintf("multu  %s, %s", reg(rs), reg(rt))
	case isa.FunctDIV:
		return fmt.Sprintf("div    %s, %s", reg(rs), reg(rt))
	case isa.FunctDIVU:
		return fmt.Sprintf("divu   %s, %s", reg(rs), reg(rt))
	case isa.FunctADD:
		return fmt.Sprintf("add    %s, %s, %s", reg(rd), reg(rs), reg(rt))
	case isa.FunctADDU:
		return fmt.Sprintf("addu   %s, %s, %s", reg(rd), reg(rs), reg(rt))
	case isa.FunctSUB:
		return fmt.Sprintf("sub    %s, %s, %s", reg(rd), reg(rs), reg(rt))
	case isa.FunctSUBU:
		return fmt.Sprintf("subu   %s, %s, %s", reg(rd), reg(rs), reg(rt))
	case isa.FunctAND:
		return fmt.Sprintf("and    %s, %s, %s", reg(rd), reg(rs), reg(rt))
	case isa.FunctOR:
		return fmt.Sprintf("or     %s, %s, %s", reg(rd), reg(rs), reg(rt))
	case isa.FunctXOR:
		return fmt.Sprintf("xor    %s, %s, %s", reg(rd), reg(rs), reg(rt))
	case isa.FunctNOR:
		return fmt.Sprintf("nor    %s, %s, %s", reg(rd), reg(rs), reg(rt))
	case isa.FunctSEQ:
		return fmt.Sprintf("seq    %s, %s, %s", reg(rd), reg(rs), reg(rt))
	case isa.FunctSLT:
		return fmt.Sprintf("slt    %s, %s, %s", reg(rd), reg(rs), reg(rt))
	case isa.FunctSLTU:
		return fmt.Sprintf("sltu   %s, %s, %s", reg(rd), reg(rs), reg(rt))
	default:
		return fmt.Sprintf(".word  0x%02X (unknown funct)", uint32(funct))
	}
}

func decodeRegimm(rs, rt uint32, imm uint16) string {
	switch rt {
	case isa.RegimmBLTZ:
		return branch1Text("bltz", rs, imm)
	case isa.RegimmBGEZ:
		return branch1Text("bgez", rs, imm)
	default:
		return fmt.Sprintf(".word  (unknown regimm subcode 0x%02X)", rt)
	}
}

func reg(n uint32) string {
	if n >= 32 {
		return fmt.Sprintf("$%d", n)
	}
	return isa.RegisterDisplayNames[n]
}

func branchText(mn string, rs, rt uint32, imm uint16) string {
	return fmt.Sprintf("%-6s %s, %s, %+d", mn, reg(rs), reg(rt), int32(int16(imm))<<2)
}

func branch1Text(mn string, rs uint32, imm uint16) string {
	return fmt.Sprintf("%-6s %s, %+d", mn, reg(rs), int32(int16(imm))<<2)
}

func iArithText(mn string, rt, rs uint32, imm int32) string {
	return fmt.Sprintf("%-6s %s, %s, %d", mn, reg(rt), reg(rs), imm)
}

func iArithUText(mn string, rt, rs uint32, imm uint16) string {
	return fmt.Sprintf("%-6s %s, %s, 0x%04X", mn, reg(rt), reg(rs), imm)
}

func loadStoreText(mn string, rt uint32, imm uint16, rs uint32) string {
	return fmt.Sprintf("%-6s %s, %d(%s)", mn, reg(rt), int32(int16(imm)), reg(rs))
}
