package assembler

import (
	"github.com/kestrelasm/mips68/errs"
	"github.com/kestrelasm/mips68/token"
)

// assembleDirective handles the data-declaration family: .word, .half,
// .byte, .ascii, .asciiz and .align. All of them target the data
// cursor; they're independent of the REPL's current .text/.data toggle,
// matching how every other assembler treats data declarations.
func (a *Assembler) assembleDirective(p *parser, lineNo int, line string) error {
	name := p.next().Text(p.src)

	switch name {
	case ".word":
		return a.directiveList(p, lineNo, line, func(v int64) error {
			_, err := a.M.EmitDataWord(uint32(v))
			return err
		})

	case ".half":
		return a.directiveList(p, lineNo, line, func(v int64) error {
			_, err := a.M.EmitDataHalf(uint16(v))
			return err
		})

	case ".byte":
		return a.directiveList(p, lineNo, line, func(v int64) error {
			_, err := a.M.EmitDataByte(byte(v))
			return err
		})

	case ".ascii":
		s, err := p.expectString()
		if err != nil {
			return errs.Syntax{LineNo: lineNo, Line: line, Err: err}
		}
		for i := 0; i < len(s); i++ {
			if _, err := a.M.EmitDataByte(s[i]); err != nil {
				return errs.Syntax{LineNo: lineNo, Line: line, Err: err}
			}
		}
		return finishLine(p, lineNo, line)

	case ".asciiz":
		s, err := p.expectString()
		if err != nil {
			return errs.Syntax{LineNo: lineNo, Line: line, Err: err}
		}
		if _, err := a.M.EmitDataAsciiz(s); err != nil {
			return errs.Syntax{LineNo: lineNo, Line: line, Err: err}
		}
		return finishLine(p, lineNo, line)

	case ".align":
		n, err := p.expectInt()
		if err != nil {
			return errs.Syntax{LineNo: lineNo, Line: line, Err: err}
		}
		boundary := uint32(1) << uint(n)
		for a.M.DataCursor%boundary != 0 {
			if _, err := a.M.EmitDataByte(0); err != nil {
				return errs.Syntax{LineNo: lineNo, Line: line, Err: err}
			}
		}
		return finishLine(p, lineNo, line)

	default:
		return errs.Syntax{LineNo: lineNo, Line: line, Err: errs.ErrUnknownMnemonic}
	}
}

// directiveList parses a comma-separated list of integer literals,
// calling emit for each one.
func (a *Assembler) directiveList(p *parser, lineNo int, line string, emit func(int64) error) error {
	for {
		v, err := p.expectInt()
		if err != nil {
			return errs.Syntax{LineNo: lineNo, Line: line, Err: err}
		}
		if err := emit(v); err != nil {
			return errs.Syntax{LineNo: lineNo, Line: line, Err: err}
		}
		if p.peekKind() != token.COMMA {
			break
		}
		p.next()
	}
	return finishLine(p, lineNo, line)
}

func finishLine(p *parser, lineNo int, line string) error {
	if err := p.expectEOL(); err != nil {
		return errs.Syntax{LineNo: lineNo, Line: line, Err: err}
	}
	return nil
}
