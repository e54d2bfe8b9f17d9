package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrelasm/mips68/token"
)

func kindsOf(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestLexInstructionLine(t *testing.T) {
	toks := Lex("add $t0, $t1, $t2", 1)
	assert.Equal(t, []token.Kind{
		token.IDENTIFIER, token.REGISTER, token.COMMA,
		token.REGISTER, token.COMMA, token.REGISTER, token.EOL,
	}, kindsOf(toks))
}

func TestLexLabelLine(t *testing.T) {
	toks := Lex("loop:", 1)
	assert.Equal(t, []token.Kind{token.IDENTIFIER, token.COLON, token.EOL}, kindsOf(toks))
}

func TestLexCommentOnlyLine(t *testing.T) {
	toks := Lex("   # just a comment", 1)
	assert.Equal(t, []token.Kind{token.EOL}, kindsOf(toks))
	assert.Equal(t, 1, len(toks))
}

func TestLexTrailingComment(t *testing.T) {
	toks := Lex("li $v0, 10 # exit", 1)
	assert.Equal(t, []token.Kind{
		token.IDENTIFIER, token.REGISTER, token.COMMA, token.INT, token.EOL,
	}, kindsOf(toks))
}

func TestLexHexAndOctalAndNegativeInts(t *testing.T) {
	toks := Lex("0x1F 017 -42", 1)
	assert.Equal(t, []token.Kind{token.INT, token.INT, token.INT, token.EOL}, kindsOf(toks))
	assert.Equal(t, "0x1F", toks[0].Text("0x1F 017 -42"))
	assert.Equal(t, "017", toks[1].Text("0x1F 017 -42"))
	assert.Equal(t, "-42", toks[2].Text("0x1F 017 -42"))
}

func TestLexStringLiteral(t *testing.T) {
	src := `.asciiz "hello\n"`
	toks := Lex(src, 1)
	assert.Equal(t, []token.Kind{token.IDENTIFIER, token.STRING, token.EOL}, kindsOf(toks))
	assert.Equal(t, `"hello\n"`, toks[1].Text(src))
}

func TestLexUnterminatedStringIsError(t *testing.T) {
	toks := Lex(`.asciiz "oops`, 1)
	assert.Equal(t, []token.Kind{token.IDENTIFIER, token.ERROR, token.EOL}, kindsOf(toks))
}

func TestLexCharLiteral(t *testing.T) {
	src := ".byte 'a'"
	toks := Lex(src, 1)
	assert.Equal(t, []token.Kind{token.IDENTIFIER, token.INT, token.EOL}, kindsOf(toks))
	assert.Equal(t, "'a'", toks[1].Text(src))
}

func TestLexCharLiteralEscape(t *testing.T) {
	src := `.byte '\n'`
	toks := Lex(src, 1)
	assert.Equal(t, []token.Kind{token.IDENTIFIER, token.INT, token.EOL}, kindsOf(toks))
	assert.Equal(t, `'\n'`, toks[1].Text(src))
}

func TestLexUnterminatedCharIsError(t *testing.T) {
	toks := Lex(".byte 'a", 1)
	assert.Equal(t, []token.Kind{token.IDENTIFIER, token.ERROR, token.EOL}, kindsOf(toks))
}

func TestLexUnknownCharIsError(t *testing.T) {
	toks := Lex("add @t0, $t1", 1)
	assert.Equal(t, token.ERROR, toks[1].Kind)
}

func TestLexRegisterSigil(t *testing.T) {
	toks := Lex("$29", 1)
	assert.Equal(t, []token.Kind{token.REGISTER, token.EOL}, kindsOf(toks))
	assert.Equal(t, "$29", toks[0].Text("$29"))
}

func TestLexIsStatelessAcrossCalls(t *testing.T) {
	first := Lex(`.ascii "unterminated`, 1)
	second := Lex("add $t0, $t1, $t2", 2)
	assert.Equal(t, token.ERROR, first[1].Kind)
	assert.Equal(t, []token.Kind{
		token.IDENTIFIER, token.REGISTER, token.COMMA,
		token.REGISTER, token.COMMA, token.REGISTER, token.EOL,
	}, kindsOf(second))
}

func TestKindsDebugHelper(t *testing.T) {
	toks := Lex("add $t0", 1)
	s := Kinds(toks)
	assert.Equal(t, "{IDENTIFIER, REGISTER, EOL}", s)
}
