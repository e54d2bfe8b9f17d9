package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelasm/mips68/isa"
	"github.com/kestrelasm/mips68/mem"
)

func runScript(t *testing.T, script string) string {
	t.Helper()
	out := &bytes.Buffer{}
	r := New(strings.NewReader(script), out)
	code := r.Run()
	assert.Equal(t, 0, code)
	return out.String()
}

func TestHelloWorldPrintsAndExits(t *testing.T) {
	script := strings.Join([]string{
		`.data`,
		`msg: .asciiz "hello, world\n"`,
		`.text`,
		`li $v0, 4`,
		`la $a0, msg`,
		`syscall`,
		`li $v0, 10`,
		`syscall`,
		`exit`,
	}, "\n")
	out := runScript(t, script)
	assert.Contains(t, out, "hello, world")
}

func TestSumToNComputesViaLoop(t *testing.T) {
	script := strings.Join([]string{
		".text",
		"li $t0, 0",
		"li $t1, 1",
		"li $t2, 10",
		"loop:",
		"add $t0, $t0, $t1",
		"addi $t1, $t1, 1",
		"ble $t1, $t2, loop",
		"li $v0, 1",
		"move $a0, $t0",
		"syscall",
		"exit",
	}, "\n")
	out := runScript(t, script)
	// sum_{i=1..10} i == 55, printed between the prompts that precede
	// every line read (each prompt shows the text cursor at that point).
	want := "TEXT:0x00400000 > " + // .text
		"TEXT:0x00400000 > " + // li $t0, 0
		"TEXT:0x00400004 > " + // li $t1, 1
		"TEXT:0x00400008 > " + // li $t2, 10
		"TEXT:0x0040000C > " + // loop:
		"TEXT:0x0040000C > " + // add
		"TEXT:0x00400010 > " + // addi
		"TEXT:0x00400014 > " + // ble (two words)
		"TEXT:0x0040001C > " + // li $v0, 1
		"TEXT:0x00400020 > " + // move
		"TEXT:0x00400024 > " + // syscall
		"55" +
		"TEXT:0x00400028 > " + // exit
		"exiting...\n"
	assert.Equal(t, want, out)
}

func TestReplRejectsDataInstructionOutsideText(t *testing.T) {
	out := &bytes.Buffer{}
	r := New(strings.NewReader(".data\nadd $t0, $t1, $t2\nexit\n"), out)
	code := r.Run()
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "error")
}

func TestReplRegsCommandShowsRegisterTable(t *testing.T) {
	out := &bytes.Buffer{}
	r := New(strings.NewReader("li $t0, 5\nregs\nexit\n"), out)
	r.Run()
	assert.Contains(t, out.String(), "$t0")
}

func TestReplRunStopsOnInfiniteLoop(t *testing.T) {
	out := &bytes.Buffer{}
	r := New(strings.NewReader("run\nexit\n"), out)
	// Write a self-jump directly into memory: typing this line interactively
	// would hang immediate per-line execution forever (it has no step cap
	// of its own), so the loop is built below and only ever driven through
	// the explicit `run` command, whose step cap this test exercises.
	require.NoError(t, r.M.Mem.StoreWord(mem.TextStart, isa.MakeJ(uint32(isa.OpJ), mem.TextStart>>2)))
	r.M.TextCursor = mem.TextStart + 4
	r.Run()
	assert.Contains(t, out.String(), "possible infinite loop")
}

func TestReplResetClearsState(t *testing.T) {
	out := &bytes.Buffer{}
	r := New(strings.NewReader("li $t0, 5\nreset\nregs\nexit\n"), out)
	r.Run()
	assert.Contains(t, out.String(), "machine reset")
}

func TestReplLabelsCommandListsSymbols(t *testing.T) {
	out := &bytes.Buffer{}
	r := New(strings.NewReader("start: add $zero, $zero, $zero\nlabels\nexit\n"), out)
	r.Run()
	assert.Contains(t, out.String(), "start")
}

func TestLoadSourceAssemblesMultipleLines(t *testing.T) {
	r := New(strings.NewReader(""), &bytes.Buffer{})
	err := r.LoadSource(".text\nli $t0, 5\nli $t1, 6\nadd $t2, $t0, $t1\n")
	require.NoError(t, err)
	assert.Equal(t, uint32(11), r.M.Reg.Get(10))
}
