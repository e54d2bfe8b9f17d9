package token

import "testing"

func TestTextRecoversSpan(t *testing.T) {
	src := "add $t0, $t1, $t2"
	tok := Token{Kind: IDENTIFIER, Pos: 0, Len: 3}
	if got := tok.Text(src); got != "add" {
		t.Fatalf("Text() = %q, want %q", got, "add")
	}
}

func TestTextOutOfRangeReturnsEmpty(t *testing.T) {
	src := "add"
	tok := Token{Kind: IDENTIFIER, Pos: 2, Len: 5}
	if got := tok.Text(src); got != "" {
		t.Fatalf("Text() = %q, want empty string", got)
	}
}

func TestKindStringCoversEveryKind(t *testing.T) {
	kinds := []Kind{IDENTIFIER, REGISTER, INT, STRING, COMMA, LPAREN, RPAREN, COLON, ERROR, EOL}
	for _, k := range kinds {
		if k.String() == "UNKNOWN" {
			t.Errorf("Kind(%d).String() = UNKNOWN, want a named kind", k)
		}
	}
}
