package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyntaxWrapsAndUnwraps(t *testing.T) {
	err := Syntax{LineNo: 3, Line: "addi $t0, $t0, 99999", Err: ErrImmediateTooWide}
	assert.True(t, errors.Is(err, ErrImmediateTooWide))
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), "addi $t0, $t0, 99999")
}

func TestFixupWrapsAndUnwraps(t *testing.T) {
	err := Fixup{Label: "done", LineNo: 7, Err: ErrLabelUndefined}
	assert.True(t, errors.Is(err, ErrLabelUndefined))
	assert.Contains(t, err.Error(), "done")
}

func TestRuntimeWrapsAndUnwraps(t *testing.T) {
	err := Runtime{PC: 0x00400010, Err: ErrDivideByZero}
	assert.True(t, errors.Is(err, ErrDivideByZero))
	assert.Contains(t, err.Error(), "0x00400010")
}

func TestSentinelsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrDivideByZero, ErrArithmeticOverflow))
}
