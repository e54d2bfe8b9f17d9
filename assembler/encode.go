package assembler

import (
	"github.com/kestrelasm/mips68/errs"
	"github.com/kestrelasm/mips68/isa"
	"github.com/kestrelasm/mips68/machine"
	"github.com/kestrelasm/mips68/token"
)

// assembleInstruction dispatches a real or pseudo mnemonic to its
// encoder. Directives are handled separately by assembleDirective.
func (a *Assembler) assembleInstruction(p *parser, lineNo int, line string, inText bool) error {
	nameTok, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return errs.Syntax{LineNo: lineNo, Line: line, Err: errs.ErrUnknownMnemonic}
	}
	name := nameTok.Text(p.src)

	if !inText {
		return errs.Syntax{LineNo: lineNo, Line: line, Err: errs.ErrWrongSegment}
	}

	if pseudoNames[name] {
		if err := a.expandPseudo(name, p, lineNo, line); err != nil {
			return err
		}
		return finishLine(p, lineNo, line)
	}

	info, ok := instrTable[name]
	if !ok {
		return errs.Syntax{LineNo: lineNo, Line: line, Err: errs.ErrUnknownMnemonic}
	}

	if err := a.encodeReal(info, p, lineNo, line); err != nil {
		return err
	}
	return finishLine(p, lineNo, line)
}

// encodeReal encodes exactly one real instruction according to its
// shape and emits the resulting word(s) at the text cursor.
func (a *Assembler) encodeReal(info InstrInfo, p *parser, lineNo int, line string) error {
	switch info.Shape {
	case ShapeR3:
		rd, err := p.expectRegister()
		if err != nil {
			return errs.Syntax{LineNo: lineNo, Line: line, Err: err}
		}
		if err := p.expectComma(); err != nil {
			return errs.Syntax{LineNo: lineNo, Line: line, Err: err}
		}
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
		word := isa.MakeR(uint32(info.Opcode), uint32(rs), uint32(rt), uint32(rd), 0, uint32(info.Funct))
		_, err = a.M.EmitTextWord(word)
		return wrapErr(err, lineNo, line)

	case ShapeRShift:
		rd, err := p.expectRegister()
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
		shamt, err := p.expectInt()
		if err != nil {
			return errs.Syntax{LineNo: lineNo, Line: line, Err: err}
		}
		if shamt < 0 || shamt > 31 {
			return errs.Syntax{LineNo: lineNo, Line: line, Err: errs.ErrImmediateTooWide}
		}
		word := isa.MakeR(uint32(info.Opcode), 0, uint32(rt), uint32(rd), uint32(shamt), uint32(info.Funct))
		_, err = a.M.EmitTextWord(word)
		return wrapErr(err, lineNo, line)

	case ShapeRR:
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
		word := isa.MakeR(uint32(info.Opcode), uint32(rs), uint32(rt), 0, 0, uint32(info.Funct))
		_, err = a.M.EmitTextWord(word)
		return wrapErr(err, lineNo, line)

	case ShapeIArith:
		rt, err := p.expectRegister()
		if err != nil {
			return errs.Syntax{LineNo: lineNo, Line: line, Err: err}
		}
		if err := p.expectComma(); err != nil {
			return errs.Syntax{LineNo: lineNo, Line: line, Err: err}
		}
		rs, err := p.expectRegister()
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
		if info.Unsigned {
			if !isa.FitsUnsigned16(imm) {
				return errs.Syntax{LineNo: lineNo, Line: line, Err: errs.ErrImmediateTooWide}
			}
		} else if !isa.FitsSigned16(imm) {
			return errs.Syntax{LineNo: lineNo, Line: line, Err: errs.ErrImmediateTooWide}
		}
		word := isa.MakeI(uint32(info.Opcode), uint32(rs), uint32(rt), uint16(imm))
		_, err = a.M.EmitTextWord(word)
		return wrapErr(err, lineNo, line)

	case ShapeILui:
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
		if !isa.FitsUnsigned16(imm) {
			return errs.Syntax{LineNo: lineNo, Line: line, Err: errs.ErrImmediateTooWide}
		}
		word := isa.MakeI(uint32(info.Opcode), 0, uint32(rt), uint16(imm))
		_, err = a.M.EmitTextWord(word)
		return wrapErr(err, lineNo, line)

	case ShapeILS:
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
		if !isa.FitsSigned16(imm) {
			return errs.Syntax{LineNo: lineNo, Line: line, Err: errs.ErrImmediateTooWide}
		}
		if _, err := p.expect(token.LPAREN); err != nil {
			return errs.Syntax{LineNo: lineNo, Line: line, Err: errs.ErrBadOperandCount}
		}
		rs, err := p.expectRegister()
		if err != nil {
			return errs.Syntax{LineNo: lineNo, Line: line, Err: err}
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return errs.Syntax{LineNo: lineNo, Line: line, Err: errs.ErrBadOperandCount}
		}
		word := isa.MakeI(uint32(info.Opcode), uint32(rs), uint32(rt), uint16(imm))
		_, err = a.M.EmitTextWord(word)
		return wrapErr(err, lineNo, line)

	case ShapeIBranch:
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
		return a.emitBranch(uint32(info.Opcode), uint32(rs), uint32(rt), label, lineNo, line)

	case ShapeIBranch1:
		rs, err := p.expectRegister()
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
		return a.emitBranch(uint32(info.Opcode), uint32(rs), info.RD, label, lineNo, line)

	case ShapeJump:
		label, err := p.expectLabel()
		if err != nil {
			return errs.Syntax{LineNo: lineNo, Line: line, Err: err}
		}
		return a.emitJump(uint32(info.Opcode), label, lineNo, line)

	case ShapeSyscall:
		word := isa.MakeR(uint32(info.Opcode), 0, 0, 0, 0, uint32(info.Funct))
		_, err := a.M.EmitTextWord(word)
		return wrapErr(err, lineNo, line)

	case ShapeJRJALR:
		rs, err := p.expectRegister()
		if err != nil {
			return errs.Syntax{LineNo: lineNo, Line: line, Err: err}
		}
		word := isa.MakeR(0, uint32(rs), 0, info.RD, 0, uint32(info.Funct))
		_, err = a.M.EmitTextWord(word)
		return wrapErr(err, lineNo, line)

	case ShapeRHiLo1:
		rd, err := p.expectRegister()
		if err != nil {
			return errs.Syntax{LineNo: lineNo, Line: line, Err: err}
		}
		word := isa.MakeR(0, 0, 0, uint32(rd), 0, uint32(info.Funct))
		_, err = a.M.EmitTextWord(word)
		return wrapErr(err, lineNo, line)

	case ShapeRHiLo2:
		rs, err := p.expectRegister()
		if err != nil {
			return errs.Syntax{LineNo: lineNo, Line: line, Err: err}
		}
		word := isa.MakeR(0, uint32(rs), 0, 0, 0, uint32(info.Funct))
		_, err = a.M.EmitTextWord(word)
		return wrapErr(err, lineNo, line)
	}
	return errs.Syntax{LineNo: lineNo, Line: line, Err: errs.ErrUnknownMnemonic}
}

// emitBranch encodes an I-format conditional branch, resolving the
// offset immediately if the label is already defined or emitting a
// placeholder word plus a BranchFixup otherwise.
func (a *Assembler) emitBranch(opcode, rs, rt uint32, label string, lineNo int, line string) error {
	addr, err := a.M.EmitTextWord(isa.MakeI(opcode, rs, rt, 0))
	if err != nil {
		return wrapErr(err, lineNo, line)
	}
	if target, ok := a.M.LookupLabel(label); ok {
		offset := int64(target) - int64(addr+4)
		if offset%4 != 0 {
			return errs.Syntax{LineNo: lineNo, Line: line, Err: errs.ErrMisaligned}
		}
		offsetWords := offset >> 2
		if offsetWords < -32768 || offsetWords > 32767 {
			return errs.Syntax{LineNo: lineNo, Line: line, Err: errs.ErrImmediateTooWide}
		}
		return wrapErr(a.M.Mem.StoreWord(addr, isa.MakeI(opcode, rs, rt, uint16(offsetWords))), lineNo, line)
	}
	a.M.AddBranchFixup(machine.BranchFixup{InstrAddr: addr, Opcode: opcode, RS: rs, RT: rt, Label: label})
	return nil
}

// emitJump encodes a J-format jump, resolving the target immediately
// if known or recording a JumpFixup otherwise.
func (a *Assembler) emitJump(opcode uint32, label string, lineNo int, line string) error {
	addr, err := a.M.EmitTextWord(isa.MakeJ(opcode, 0))
	if err != nil {
		return wrapErr(err, lineNo, line)
	}
	if target, ok := a.M.LookupLabel(label); ok {
		if target&3 != 0 {
			return errs.Syntax{LineNo: lineNo, Line: line, Err: errs.ErrMisaligned}
		}
		return wrapErr(a.M.Mem.StoreWord(addr, isa.MakeJ(opcode, target>>2)), lineNo, line)
	}
	a.M.AddJumpFixup(machine.JumpFixup{InstrAddr: addr, Opcode: opcode, Label: label})
	return nil
}

func wrapErr(err error, lineNo int, line string) error {
	if err == nil {
		return nil
	}
	return errs.Syntax{LineNo: lineNo, Line: line, Err: err}
}
