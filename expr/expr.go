// Package expr evaluates constant integer expressions written inside
// `$(...)` spans, using an embedded Starlark interpreter so operands can
// combine previously defined labels and arithmetic without the
// assembler needing its own expression grammar.
package expr

import (
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/kestrelasm/mips68/errs"
)

// Eval evaluates a Starlark expression, with vars bound as predeclared
// integer globals (typically the machine's defined labels),
// and returns the result as a uint32.
func Eval(source string, vars map[string]uint32) (uint32, error) {
	thread := &starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}

	predeclared := starlark.StringDict{}
	for name, v := range vars {
		predeclared[name] = starlark.MakeInt64(int64(v))
	}

	program := "__result__ = (" + source + ")\n"
	globals, err := starlark.ExecFileOptions(&opts, thread, "expr", program, predeclared)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", errs.ErrBadExpression, source, err)
	}

	result, ok := globals["__result__"]
	if !ok {
		return 0, fmt.Errorf("%w: %s", errs.ErrBadExpression, source)
	}

	i, ok := result.(starlark.Int)
	if !ok {
		return 0, fmt.Errorf("%w: %s is not an integer", errs.ErrBadExpression, source)
	}
	v, ok := i.Int64()
	if !ok {
		return 0, fmt.Errorf("%w: %s overflows 64 bits", errs.ErrBadExpression, source)
	}
	return uint32(v), nil
}
