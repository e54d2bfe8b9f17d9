// Package repl drives the interactive read-assemble-run loop: it reads
// lines from an input stream, dispatches segment switches and commands,
// and otherwise hands the line to the assembler and runs whatever new
// text words that produced, provided nothing is left unresolved.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/kestrelasm/mips68/assembler"
	"github.com/kestrelasm/mips68/disasm"
	"github.com/kestrelasm/mips68/errs"
	"github.com/kestrelasm/mips68/isa"
	"github.com/kestrelasm/mips68/machine"
	"github.com/kestrelasm/mips68/mem"
)

const defaultMaxRunSteps = 1_000_000

// REPL owns the machine and assembler and mediates between an input
// stream and an output stream.
type REPL struct {
	M        *machine.Machine
	Asm      *assembler.Assembler
	MaxSteps int
	in       *bufio.Scanner
	out      io.Writer
	inText   bool
}

// New returns a REPL reading commands from in and writing all prompts,
// diagnostics and program output to out. Assembled programs read their
// own syscall input from in as well, matching SPIM's single-stream model.
func New(in io.Reader, out io.Writer) *REPL {
	m := machine.New(in, out)
	return &REPL{
		M:        m,
		Asm:      assembler.New(m),
		MaxSteps: defaultMaxRunSteps,
		in:       bufio.NewScanner(in),
		out:      out,
		inText:   true,
	}
}

// Run executes the REPL loop until EOF or an exit/quit command. It
// returns the process exit code: 0 on clean quit, nonzero on fatal error.
func (r *REPL) Run() int {
	lineNo := 1
	for {
		fmt.Fprint(r.out, r.prompt())
		if !r.in.Scan() {
			break
		}
		line := strings.TrimSpace(r.in.Text())
		lineNo++
		if line == "" {
			continue
		}

		if quit, code := r.dispatchCommand(line); quit {
			return code
		}
	}
	return 0
}

func (r *REPL) prompt() string {
	if r.inText {
		return fmt.Sprintf("TEXT:0x%08X > ", r.M.TextCursor)
	}
	return fmt.Sprintf("DATA:0x%08X > ", r.M.DataCursor)
}

// dispatchCommand handles segment switches, REPL commands, and otherwise
// treats the line as assembly for the current segment. It returns
// (true, code) when the REPL should terminate.
func (r *REPL) dispatchCommand(line string) (bool, int) {
	switch line {
	case ".text":
		r.inText = true
		return false, 0
	case ".data":
		r.inText = false
		return false, 0
	case "?", "help":
		r.printHelp()
		return false, 0
	case "regs":
		r.printRegisters()
		return false, 0
	case "labels":
		r.printLabels()
		return false, 0
	case "data":
		r.printSegment(mem.Data)
		return false, 0
	case "stack":
		r.printSegment(mem.Stack)
		return false, 0
	case "run":
		r.runProgram()
		return false, 0
	case "reset":
		r.M.Reset()
		r.inText = true
		fmt.Fprintln(r.out, "machine reset.")
		return false, 0
	case "exit", "quit":
		fmt.Fprintln(r.out, "exiting...")
		return true, 0
	}

	if strings.HasPrefix(line, "save ") {
		r.save(strings.TrimSpace(line[len("save "):]))
		return false, 0
	}
	if strings.HasPrefix(line, "read ") || strings.HasPrefix(line, "load ") {
		r.loadFile(strings.TrimSpace(line[strings.Index(line, " ")+1:]))
		return false, 0
	}
	if strings.HasPrefix(line, "disasm") {
		r.disasmRange()
		return false, 0
	}

	r.assembleAndRun(line, 0)
	return false, 0
}

// assembleAndRun assembles one line, rolling back the appropriate cursor
// on failure, and then steps the CPU over any newly emitted text words
// provided no fixups are left unresolved.
func (r *REPL) assembleAndRun(line string, lineNo int) {
	oldText := r.M.TextCursor
	oldData := r.M.DataCursor

	if err := r.Asm.AssembleLine(line, lineNo, r.inText); err != nil {
		r.M.TextCursor = oldText
		r.M.DataCursor = oldData
		fmt.Fprintf(r.out, "error: %v\n", err)
		return
	}

	r.M.History = append(r.M.History, machine.SourceRecord{
		Text: line, InText: r.inText, PCBefore: oldText, PCAfter: r.M.TextCursor,
	})

	if r.M.HasUnresolvedFixups() {
		return
	}

	for r.M.CPU.PC < r.M.TextCursor {
		if err := r.M.CPU.Step(); err != nil {
			fmt.Fprintf(r.out, "runtime error: %v\n", err)
			return
		}
	}
}

func (r *REPL) runProgram() {
	r.M.CPU.Reset(mem.TextStart)
	steps, err := r.M.CPU.Run(r.MaxSteps)
	if err != nil {
		if err == errs.ErrStepLimitExceeded {
			fmt.Fprintf(r.out, "run: stopped after %d steps (possible infinite loop)\n", steps)
			return
		}
		fmt.Fprintf(r.out, "runtime error: %v\n", err)
		return
	}
}

func (r *REPL) printHelp() {
	fmt.Fprint(r.out, ""+
		"Commands:\n"+
		"  ?/help          show this help\n"+
		"  .text           switch to text segment\n"+
		"  .data           switch to data segment\n"+
		"  regs            show register file\n"+
		"  labels          show the symbol table\n"+
		"  data            dump the data segment\n"+
		"  stack           dump the stack segment\n"+
		"  disasm          disassemble the assembled text segment\n"+
		"  run             run program from the text base\n"+
		"  reset           reset machine (regs, pc, cursors, memory)\n"+
		"  save \"FILE\"     save assembled source history to FILE\n"+
		"  read \"FILE\"     load and assemble FILE\n"+
		"  load \"FILE\"     alias for read\n"+
		"  exit/quit       quit interpreter\n")
}

func (r *REPL) printRegisters() {
	snap := r.M.Reg.Snapshot()
	fmt.Fprintln(r.out, strings.Repeat("=", 56))
	for i := 0; i < 32; i++ {
		fmt.Fprintf(r.out, "$%-2d %-5s  %12d  0x%08X\n", i, isa.RegisterDisplayNames[i], int32(snap[i]), snap[i])
	}
	fmt.Fprintf(r.out, "hi       %12d  0x%08X\n", int32(r.M.Reg.HI()), r.M.Reg.HI())
	fmt.Fprintf(r.out, "lo       %12d  0x%08X\n", int32(r.M.Reg.LO()), r.M.Reg.LO())
	fmt.Fprintf(r.out, "pc                    0x%08X\n", r.M.CPU.PC)
	fmt.Fprintln(r.out, strings.Repeat("=", 56))
}

func (r *REPL) printLabels() {
	labels := r.M.Labels()
	names := make([]string, 0, len(labels))
	for name := range labels {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(r.out, "%-16s 0x%08X\n", name, labels[name])
	}
}

func (r *REPL) printSegment(seg mem.Segment) {
	addrs := r.M.Mem.Dump(seg)
	for _, a := range addrs {
		b, err := r.M.Mem.LoadByte(a)
		if err != nil {
			continue
		}
		fmt.Fprintf(r.out, "0x%08X: 0x%02X\n", a, b)
	}
}

func (r *REPL) disasmRange() {
	for addr := uint32(mem.TextStart); addr < r.M.TextCursor; addr += 4 {
		w, err := r.M.Mem.LoadWord(addr)
		if err != nil {
			continue
		}
		fmt.Fprintf(r.out, "0x%08X: %s\n", addr, disasm.Word(w))
	}
}

func (r *REPL) save(path string) {
	path = strings.Trim(path, "\"")
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(r.out, "save: %v\n", err)
		return
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	inText := true
	for _, rec := range r.M.History {
		if rec.InText != inText {
			if rec.InText {
				fmt.Fprintln(w, ".text")
			} else {
				fmt.Fprintln(w, ".data")
			}
			inText = rec.InText
		}
		fmt.Fprintln(w, rec.Text)
	}
	fmt.Fprintf(r.out, "saved %d lines to %s\n", len(r.M.History), path)
}

func (r *REPL) loadFile(path string) {
	path = strings.Trim(path, "\"")
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(r.out, "read: %v\n", err)
		return
	}
	if err := r.LoadSource(string(data)); err != nil {
		fmt.Fprintf(r.out, "read: %v\n", err)
	}
}

// LoadSource assembles each line of src in order, honoring .text/.data
// segment switches, as if it had been typed into the REPL. It is used
// by the read/load commands and by -f on the command line.
func (r *REPL) LoadSource(src string) error {
	lineNo := 0
	for _, line := range strings.Split(src, "\n") {
		lineNo++
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch line {
		case ".text":
			r.inText = true
			continue
		case ".data":
			r.inText = false
			continue
		}
		r.assembleAndRun(line, lineNo)
	}
	return nil
}
