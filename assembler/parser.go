package assembler

import (
	"strconv"
	"strings"

	"github.com/kestrelasm/mips68/errs"
	"github.com/kestrelasm/mips68/isa"
	"github.com/kestrelasm/mips68/token"
)

// parser walks a token vector for a single line, tracking a cursor
// position. It never fabricates tokens: the caller is expected to check
// for EOL / errs.ErrUnexpectedToken as appropriate.
type parser struct {
	src  string
	toks []token.Token
	pos  int
}

func (p *parser) peek() token.Token {
	return p.toks[p.pos]
}

func (p *parser) peekKind() token.Kind {
	return p.toks[p.pos].Kind
}

func (p *parser) peekKindAt(ahead int) token.Kind {
	i := p.pos + ahead
	if i >= len(p.toks) {
		return token.EOL
	}
	return p.toks[i].Kind
}

func (p *parser) next() token.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) expect(k token.Kind) (token.Token, error) {
	if p.peekKind() != k {
		return token.Token{}, errs.ErrUnexpectedToken
	}
	return p.next(), nil
}

// expectRegister consumes a REGISTER token and resolves it to a
// register number.
func (p *parser) expectRegister() (int, error) {
	t, err := p.expect(token.REGISTER)
	if err != nil {
		return 0, errs.ErrBadOperandKind
	}
	name := strings.TrimPrefix(t.Text(p.src), "$")
	n, ok := isa.RegisterNumber(name)
	if !ok {
		return 0, errs.ErrUnknownRegister
	}
	return n, nil
}

// expectComma consumes a COMMA token.
func (p *parser) expectComma() error {
	_, err := p.expect(token.COMMA)
	if err != nil {
		return errs.ErrBadOperandCount
	}
	return nil
}

// expectInt consumes an INT token and parses its literal value. Accepts
// decimal, 0x hex, 0-prefixed octal and a leading '-', mirroring what the
// lexer recognizes.
func (p *parser) expectInt() (int64, error) {
	t, err := p.expect(token.INT)
	if err != nil {
		return 0, errs.ErrBadOperandKind
	}
	return parseIntLiteral(t.Text(p.src))
}

func parseIntLiteral(text string) (int64, error) {
	if strings.HasPrefix(text, "'") {
		return parseCharLiteral(text)
	}

	neg := false
	if strings.HasPrefix(text, "-") {
		neg = true
		text = text[1:]
	}
	var v int64
	var err error
	switch {
	case strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X"):
		v, err = strconv.ParseInt(text[2:], 16, 64)
	case len(text) > 1 && text[0] == '0':
		v, err = strconv.ParseInt(text[1:], 8, 64)
	default:
		v, err = strconv.ParseInt(text, 10, 64)
	}
	if err != nil {
		return 0, errs.ErrBadExpression
	}
	if neg {
		v = -v
	}
	return v, nil
}

// parseCharLiteral decodes a lexer-span char literal (quotes included,
// e.g. "'a'" or "'\\n'") to its byte value.
func parseCharLiteral(text string) (int64, error) {
	if len(text) < 3 || text[0] != '\'' || text[len(text)-1] != '\'' {
		return 0, errs.ErrBadExpression
	}
	body := text[1 : len(text)-1]
	if len(body) == 1 {
		return int64(body[0]), nil
	}
	if len(body) == 2 && body[0] == '\\' {
		switch body[1] {
		case 'n':
			return int64('\n'), nil
		case 't':
			return int64('\t'), nil
		case '0':
			return 0, nil
		case '\\':
			return int64('\\'), nil
		case '\'':
			return int64('\''), nil
		default:
			return int64(body[1]), nil
		}
	}
	return 0, errs.ErrBadExpression
}

// expectLabel consumes an IDENTIFIER token naming a label.
func (p *parser) expectLabel() (string, error) {
	t, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return "", errs.ErrBadOperandKind
	}
	return t.Text(p.src), nil
}

// expectString consumes a STRING token and unescapes its contents. The
// returned string excludes the surrounding quotes.
func (p *parser) expectString() (string, error) {
	t, err := p.expect(token.STRING)
	if err != nil {
		return "", errs.ErrBadOperandKind
	}
	raw := t.Text(p.src)
	if len(raw) < 2 {
		return "", errs.ErrUnterminatedString
	}
	return unescape(raw[1 : len(raw)-1]), nil
}

// expectEOL fails if any tokens remain before the line's EOL sentinel,
// catching excess operands.
func (p *parser) expectEOL() error {
	if p.peekKind() != token.EOL {
		return errs.ErrBadOperandCount
	}
	return nil
}

func unescape(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			switch s[i] {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case '0':
				sb.WriteByte(0)
			case '\\', '"':
				sb.WriteByte(s[i])
			default:
				sb.WriteByte(s[i])
			}
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
