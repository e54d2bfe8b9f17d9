// Package assembler consumes one line of source at a time and encodes
// it into zero or more 32-bit machine words, expanding pseudo-instructions
// and recording fixups for labels that are not yet defined.
package assembler

import (
	"strconv"
	"strings"

	"github.com/kestrelasm/mips68/errs"
	"github.com/kestrelasm/mips68/expr"
	"github.com/kestrelasm/mips68/lexer"
	"github.com/kestrelasm/mips68/machine"
	"github.com/kestrelasm/mips68/token"
)

// Assembler binds a Machine and drives single-line assembly against it.
type Assembler struct {
	M *machine.Machine
}

// New returns an assembler targeting m.
func New(m *machine.Machine) *Assembler {
	return &Assembler{M: m}
}

// AssembleLine tokenizes and assembles one line of source against the
// current segment (text when inText, data otherwise). It returns only
// an error; emitted words and bytes advance the machine's cursors. On any failure the caller
// is responsible for rolling the relevant cursor back to its pre-call
// value; AssembleLine itself does not buffer or undo partial emission.
func (a *Assembler) AssembleLine(line string, lineNo int, inText bool) error {
	substituted, err := a.substituteExpressions(line)
	if err != nil {
		return errs.Syntax{LineNo: lineNo, Line: line, Err: err}
	}

	toks := lexer.Lex(substituted, lineNo)
	for _, t := range toks {
		if t.Kind == token.ERROR {
			return errs.Syntax{LineNo: lineNo, Line: line, Err: errs.ErrUnexpectedToken}
		}
	}

	p := &parser{src: substituted, toks: toks}

	if p.peekKind() == token.IDENTIFIER && p.peekKindAt(1) == token.COLON {
		name := p.next().Text(p.src)
		p.next() // colon
		addr := a.M.TextCursor
		if !inText {
			addr = a.M.DataCursor
		}
		if err := a.M.DefineLabel(name, addr); err != nil {
			return errs.Syntax{LineNo: lineNo, Line: line, Err: err}
		}
	}

	if p.peekKind() == token.EOL {
		return nil
	}

	if p.peekKind() == token.IDENTIFIER && strings.HasPrefix(p.peek().Text(p.src), ".") {
		return a.assembleDirective(p, lineNo, line)
	}

	return a.assembleInstruction(p, lineNo, line, inText)
}

// substituteExpressions replaces every balanced $(...) span in line with
// the decimal value of evaluating its contents, using the machine's
// currently defined labels as predeclared Starlark globals.
func (a *Assembler) substituteExpressions(line string) (string, error) {
	if !strings.Contains(line, "$(") {
		return line, nil
	}
	var out strings.Builder
	vars := a.M.Labels()

	for i := 0; i < len(line); {
		if line[i] == '$' && i+1 < len(line) && line[i+1] == '(' {
			depth := 1
			j := i + 2
			for ; j < len(line) && depth > 0; j++ {
				switch line[j] {
				case '(':
					depth++
				case ')':
					depth--
				}
			}
			if depth != 0 {
				return "", errs.ErrBadExpression
			}
			inner := line[i+2 : j-1]
			v, err := expr.Eval(inner, vars)
			if err != nil {
				return "", err
			}
			out.WriteString(strconv.FormatInt(int64(int32(v)), 10))
			i = j
			continue
		}
		out.WriteByte(line[i])
		i++
	}
	return out.String(), nil
}
