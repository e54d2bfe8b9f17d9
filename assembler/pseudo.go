package assembler

import (
	"github.com/kestrelasm/mips68/errs"
	"github.com/kestrelasm/mips68/isa"
	"github.com/kestrelasm/mips68/machine"
)

// pseudoNames is the set of mnemonics handled by expandPseudo rather
// than the real-instruction table. $at is register 1, $zero is 0.
var pseudoNames = map[string]bool{
	"move": true, "li": true, "la": true,
	"neg": true, "negu": true, "not": true, "abs": true,
	"sgt": true, "sge": true,
	"blt": true, "ble": true, "bgt": true, "bge": true,
	"b": true,
}

const (
	regZero = 0
	regAt   = 1
)

// expandPseudo encodes a pseudo-instruction as one or more real words.
// The pc of any emitted branch is the machine's text cursor at the
// moment it's emitted, so fixups inside a multi-word expansion always
// target the exact word that needs patching.
func (a *Assembler) expandPseudo(name string, p *parser, lineNo int, line string) error {
	switch name {
	case "move":
		rd, rs, err := a.two(p, lineNo, line)
		if err != nil {
			return err
		}
		return a.emitR3(isa.FunctADDU, rd, rs, regZero, lineNo, line)

	case "li":
		rt, err := p.expectRegister()
		if err != nil {
			return errs.Syntax{LineNo: lineNo, Line: line, Err: err}
		}
		if err := p.expectComma(); err != nil {
			return errs.Syntax{LineNo: lineNo, Line: line, Err: err}
		}
		imm, err := p.expectInt()
		if err != nil {
			return errs.Syntax{LineNo: lineNo, Line: line, Err: err}
		}
		if isa.FitsSigned16(imm) {
			word := isa.MakeI(uint32(isa.OpADDI), regZero, uint32(rt), uint16(imm))
			_, err := a.M.EmitTextWord(word)
			return wrapErr(err, lineNo, line)
		}
		hi := uint16((uint32(imm) >> 16) & 0xFFFF)
		lo := uint16(uint32(imm) & 0xFFFF)
		if _, err := a.M.EmitTextWord(isa.MakeI(uint32(isa.OpLUI), 0, regAt, hi)); err != nil {
			return wrapErr(err, lineNo, line)
		}
		_, err = a.M.EmitTextWord(isa.MakeI(uint32(isa.OpORI), regAt, uint32(rt), lo))
		return wrapErr(err, lineNo, line)

	case "la":
		rt, err := p.expectRegister()
		if err != nil {
			return errs.Syntax{LineNo: lineNo, Line: line, Err: err}
		}
		if err := p.expectComma(); err != nil {
			return errs.Syntax{LineNo: lineNo, Line: line, Err: err}
		}
		label, err := p.expectLabel()
		if err != nil {
			return errs.Syntax{LineNo: lineNo, Line: line, Err: err}
		}
		return a.emitLa(rt, label, lineNo, line)

	case "neg":
		rd, rs, err := a.two(p, lineNo, line)
		if err != nil {
			return err
		}
		return a.emitR3sub(isa.FunctSUB, rd, regZero, rs, lineNo, line)

	case "negu":
		rd, rs, err := a.two(p, lineNo, line)
		if err != nil {
			return err
		}
		return a.emitR3sub(isa.FunctSUBU, rd, regZero, rs, lineNo, line)

	case "not":
		rd, rs, err := a.two(p, lineNo, line)
		if err != nil {
			return err
		}
		return a.emitR3(isa.FunctNOR, rd, rs, regZero, lineNo, line)

	case "abs":
		rd, rs, err := a.two(p, lineNo, line)
		if err != nil {
			return err
		}
		if err := a.emitRShift(isa.FunctSRA, regAt, rs, 31, lineNo, line); err != nil {
			return err
		}
		if err := a.emitR3(isa.FunctXOR, rd, rs, regAt, lineNo, line); err != nil {
			return err
		}
		return a.emitR3(isa.FunctSUBU, rd, rd, regAt, lineNo, line)

	case "sgt":
		rd, rs, rt, err := a.three(p, lineNo, line)
		if err != nil {
			return err
		}
		return a.emitR3(isa.FunctSLT, rd, rt, rs, lineNo, line)

	case "sge":
		rd, rs, rt, err := a.three(p, lineNo, line)
		if err != nil {
			return err
		}
		if err := a.emitR3(isa.FunctSLT, rd, rs, rt, lineNo, line); err != nil {
			return err
		}
		word := isa.MakeI(uint32(isa.OpXORI), uint32(rd), uint32(rd), 1)
		_, err = a.M.EmitTextWord(word)
		return wrapErr(err, lineNo, line)

	case "blt":
		return a.expandCompareBranch(p, lineNo, line, isa.FunctSLT, false, false)
	case "bgt":
		return a.expandCompareBranch(p, lineNo, line, isa.FunctSLT, true, false)
	case "ble":
		return a.expandCompareBranch(p, lineNo, line, isa.FunctSLT, true, true)
	case "bge":
		return a.expandCompareBranch(p, lineNo, line, isa.FunctSLT, false, true)

	case "b":
		label, err := p.expectLabel()
		if err != nil {
			return errs.Syntax{LineNo: lineNo, Line: line, Err: err}
		}
		return a.emitBranch(uint32(isa.OpBEQ), regZero, regZero, label, lineNo, line)
	}
	return errs.Syntax{LineNo: lineNo, Line: line, Err: errs.ErrUnknownMnemonic}
}

// expandCompareBranch implements blt/bgt/ble/bge, all of which reduce to
// `slt $at, a, b; <bne|beq> $at, $zero, L` with the operand order and
// branch sense chosen by swap/useBeq.
func (a *Assembler) expandCompareBranch(p *parser, lineNo int, line string, funct isa.Funct, swap bool, useBeq bool) error {
	rs, err := p.expectRegister()
	if err != nil {
		return errs.Syntax{LineNo: lineNo, Line: line, Err: err}
	}
	if err := p.expectComma(); err != nil {
		return errs.Syntax{LineNo: lineNo, Line: line, Err: err}
	}
	rt, err := p.expectRegister()
	if err != nil {
		return errs.Syntax{LineNo: lineNo, Line: line, Err: err}
	}
	if err := p.expectComma(); err != nil {
		return errs.Syntax{LineNo: lineNo, Line: line, Err: err}
	}
	label, err := p.expectLabel()
	if err != nil {
		return errs.Syntax{LineNo: lineNo, Line: line, Err: err}
	}

	a1, a2 := rs, rt
	if swap {
		a1, a2 = rt, rs
	}
	if err := a.emitR3(funct, regAt, a1, a2, lineNo, line); err != nil {
		return err
	}
	opcode := uint32(isa.OpBNE)
	if useBeq {
		opcode = uint32(isa.OpBEQ)
	}
	return a.emitBranch(opcode, regAt, regZero, label, lineNo, line)
}

func (a *Assembler) two(p *parser, lineNo int, line string) (rd, rs int, err error) {
	rd, err = p.expectRegister()
	if err != nil {
		return 0, 0, errs.Syntax{LineNo: lineNo, Line: line, Err: err}
	}
	if err = p.expectComma(); err != nil {
		return 0, 0, errs.Syntax{LineNo: lineNo, Line: line, Err: err}
	}
	rs, err = p.expectRegister()
	if err != nil {
		return 0, 0, errs.Syntax{LineNo: lineNo, Line: line, Err: err}
	}
	return rd, rs, nil
}

func (a *Assembler) three(p *parser, lineNo int, line string) (rd, rs, rt int, err error) {
	rd, rs, err = a.two(p, lineNo, line)
	if err != nil {
		return 0, 0, 0, err
	}
	if err = p.expectComma(); err != nil {
		return 0, 0, 0, errs.Syntax{LineNo: lineNo, Line: line, Err: err}
	}
	rt, err = p.expectRegister()
	if err != nil {
		return 0, 0, 0, errs.Syntax{LineNo: lineNo, Line: line, Err: err}
	}
	return rd, rs, rt, nil
}

func (a *Assembler) emitR3(funct isa.Funct, rd, rs, rt int, lineNo int, line string) error {
	word := isa.MakeR(uint32(isa.OpRTYPE), uint32(rs), uint32(rt), uint32(rd), 0, uint32(funct))
	_, err := a.M.EmitTextWord(word)
	return wrapErr(err, lineNo, line)
}

// emitR3sub exists only so neg/negu read naturally as "rd = a - b"
// rather than forcing call sites to remember R3's rs,rt ordering.
func (a *Assembler) emitR3sub(funct isa.Funct, rd, a1, a2 int, lineNo int, line string) error {
	return a.emitR3(funct, rd, a1, a2, lineNo, line)
}

func (a *Assembler) emitRShift(funct isa.Funct, rd, rt, shamt int, lineNo int, line string) error {
	word := isa.MakeR(uint32(isa.OpRTYPE), 0, uint32(rt), uint32(rd), uint32(shamt), uint32(funct))
	_, err := a.M.EmitTextWord(word)
	return wrapErr(err, lineNo, line)
}

// emitLa expands `la rt, label` into LUI+ORI, resolving immediately if
// the label is already defined or recording a LaFixup otherwise.
func (a *Assembler) emitLa(rt int, label string, lineNo int, line string) error {
	luiAddr, err := a.M.EmitTextWord(isa.MakeI(uint32(isa.OpLUI), 0, regAt, 0))
	if err != nil {
		return wrapErr(err, lineNo, line)
	}
	if _, err := a.M.EmitTextWord(isa.MakeI(uint32(isa.OpORI), regAt, uint32(rt), 0)); err != nil {
		return wrapErr(err, lineNo, line)
	}

	if target, ok := a.M.LookupLabel(label); ok {
		hi := uint16((target >> 16) & 0xFFFF)
		lo := uint16(target & 0xFFFF)
		luiWord, err := a.M.Mem.LoadWord(luiAddr)
		if err != nil {
			return wrapErr(err, lineNo, line)
		}
		if err := a.M.Mem.StoreWord(luiAddr, isa.WithImm(luiWord, hi)); err != nil {
			return wrapErr(err, lineNo, line)
		}
		oriWord, err := a.M.Mem.LoadWord(luiAddr + 4)
		if err != nil {
			return wrapErr(err, lineNo, line)
		}
		return wrapErr(a.M.Mem.StoreWord(luiAddr+4, isa.WithImm(oriWord, lo)), lineNo, line)
	}

	a.M.AddLaFixup(machine.LaFixup{InstrAddr: luiAddr, RT: uint32(rt), Label: label})
	return nil
}
