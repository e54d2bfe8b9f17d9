// Package lexer tokenizes one line of assembly text at a time into a
// vector of tokens terminated by an EOL sentinel. It holds no state
// between calls to Lex.
package lexer

import (
	"strings"

	"github.com/kestrelasm/mips68/token"
)

type state int

const (
	stateDefault state = iota
	stateIdent
	stateRegister
	stateInt
	stateString
	stateChar
)

// lexer is the per-call scratch state for one invocation of Lex. It is
// never shared across lines.
type lexer struct {
	src  string
	line int
	pos  int
	toks []token.Token
}

// Lex tokenizes a single line of source text. The returned token vector
// always ends with an EOL token. Lex never returns an error; malformed
// spans are reported as ERROR tokens for the parser to reject.
func Lex(line string, lineNumber int) []token.Token {
	lx := &lexer{src: line, line: lineNumber}
	st := stateDefault
	start := 0

	for lx.pos < len(lx.src) || st != stateDefault {
		switch st {
		case stateDefault:
			st, start = lx.stepDefault()
		case stateIdent:
			lx.runIdent(start)
			st = stateDefault
		case stateRegister:
			lx.runRegister(start)
			st = stateDefault
		case stateInt:
			lx.runInt(start)
			st = stateDefault
		case stateString:
			lx.runString(start)
			st = stateDefault
		case stateChar:
			lx.runChar(start)
			st = stateDefault
		}
	}

	lx.emit(token.EOL, lx.pos, 0)
	return lx.toks
}

func (lx *lexer) emit(kind token.Kind, pos, length int) {
	lx.toks = append(lx.toks, token.Token{Kind: kind, Line: lx.line, Pos: pos, Len: length})
}

func (lx *lexer) cur() byte {
	if lx.pos >= len(lx.src) {
		return 0
	}
	return lx.src[lx.pos]
}

// stepDefault consumes exactly one classification decision from the
// DEFAULT state, returning the state to continue in and the start
// position of whatever lexeme it began (if any).
func (lx *lexer) stepDefault() (state, int) {
	c := lx.cur()
	switch {
	case c == ' ' || c == '\t' || c == '\r':
		lx.pos++
		return stateDefault, 0
	case c == '#':
		lx.pos = len(lx.src)
		return stateDefault, 0
	case c == ',':
		lx.emit(token.COMMA, lx.pos, 1)
		lx.pos++
		return stateDefault, 0
	case c == '(':
		lx.emit(token.LPAREN, lx.pos, 1)
		lx.pos++
		return stateDefault, 0
	case c == ')':
		lx.emit(token.RPAREN, lx.pos, 1)
		lx.pos++
		return stateDefault, 0
	case c == ':':
		lx.emit(token.COLON, lx.pos, 1)
		lx.pos++
		return stateDefault, 0
	case c == '"':
		start := lx.pos
		lx.pos++
		return stateString, start
	case c == '\'':
		start := lx.pos
		lx.pos++
		return stateChar, start
	case c == '$':
		start := lx.pos
		lx.pos++
		return stateRegister, start
	case isIdentStart(c):
		start := lx.pos
		return stateIdent, start
	case isDigit(c):
		start := lx.pos
		return stateInt, start
	case c == '-' && lx.pos+1 < len(lx.src) && isDigit(lx.src[lx.pos+1]):
		start := lx.pos
		return stateInt, start
	default:
		lx.emit(token.ERROR, lx.pos, 1)
		lx.pos++
		return stateDefault, 0
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '.' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isRegisterChar(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || isDigit(c)
}

func (lx *lexer) runIdent(start int) {
	for lx.pos < len(lx.src) && isIdentChar(lx.src[lx.pos]) {
		lx.pos++
	}
	lx.emit(token.IDENTIFIER, start, lx.pos-start)
}

func (lx *lexer) runRegister(start int) {
	for lx.pos < len(lx.src) && isRegisterChar(lx.src[lx.pos]) {
		lx.pos++
	}
	lx.emit(token.REGISTER, start, lx.pos-start)
}

// runInt consumes an optional leading '-', then detects base (0x hex,
// leading-0-digit octal, else decimal) and consumes the matching digits.
func (lx *lexer) runInt(start int) {
	if lx.cur() == '-' {
		lx.pos++
	}

	if lx.pos < len(lx.src) && lx.src[lx.pos] == '0' &&
		lx.pos+1 < len(lx.src) && (lx.src[lx.pos+1] == 'x' || lx.src[lx.pos+1] == 'X') {
		lx.pos += 2
		for lx.pos < len(lx.src) && isHexDigit(lx.src[lx.pos]) {
			lx.pos++
		}
		lx.emit(token.INT, start, lx.pos-start)
		return
	}

	if lx.pos < len(lx.src) && lx.src[lx.pos] == '0' &&
		lx.pos+1 < len(lx.src) && lx.src[lx.pos+1] >= '0' && lx.src[lx.pos+1] <= '7' {
		lx.pos++
		for lx.pos < len(lx.src) && lx.src[lx.pos] >= '0' && lx.src[lx.pos] <= '7' {
			lx.pos++
		}
		lx.emit(token.INT, start, lx.pos-start)
		return
	}

	for lx.pos < len(lx.src) && isDigit(lx.src[lx.pos]) {
		lx.pos++
	}
	lx.emit(token.INT, start, lx.pos-start)
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// runString consumes a double-quoted string literal, including the quotes
// in the token span. A backslash escape consumes the following character
// unconditionally. An unterminated string becomes an ERROR token.
func (lx *lexer) runString(start int) {
	for lx.pos < len(lx.src) {
		c := lx.src[lx.pos]
		if c == '\\' && lx.pos+1 < len(lx.src) {
			lx.pos += 2
			continue
		}
		if c == '"' {
			lx.pos++
			lx.emit(token.STRING, start, lx.pos-start)
			return
		}
		lx.pos++
	}
	lx.emit(token.ERROR, start, lx.pos-start)
}

// runChar consumes a single-quoted character literal and emits it as an
// INT token (its value is resolved by the caller). Unterminated becomes
// an ERROR token.
func (lx *lexer) runChar(start int) {
	if lx.pos < len(lx.src) && lx.src[lx.pos] == '\\' && lx.pos+1 < len(lx.src) {
		lx.pos += 2
	} else if lx.pos < len(lx.src) {
		lx.pos++
	}
	if lx.pos < len(lx.src) && lx.src[lx.pos] == '\'' {
		lx.pos++
		lx.emit(token.INT, start, lx.pos-start)
		return
	}
	lx.emit(token.ERROR, start, lx.pos-start)
}

// Kinds renders a token vector back to a readable "{KIND, KIND}"
// summary, in the spirit of the println_toks helper the source lexer uses
// for debugging.
func Kinds(toks []token.Token) string {
	var parts []string
	for _, t := range toks {
		parts = append(parts, t.Kind.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
