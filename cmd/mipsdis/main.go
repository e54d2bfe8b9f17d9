package main

import (
	"fmt"
	"os"

	"github.com/kestrelasm/mips68/disasm"
	"github.com/kestrelasm/mips68/mem"
)

func main() {
	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <inputfile> [outputfile]\n", os.Args[0])
		os.Exit(1)
	}

	inputFile := os.Args[1]
	var outputFile string
	if len(os.Args) == 3 {
		outputFile = os.Args[2]
	}

	code, err := os.ReadFile(inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
		os.Exit(1)
	}
	if len(code)%4 != 0 {
		fmt.Fprintf(os.Stderr, "Disassembly error: input length %d is not a multiple of 4\n", len(code))
		os.Exit(1)
	}

	var out []byte
	for i := 0; i < len(code); i += 4 {
		w := uint32(code[i])<<24 | uint32(code[i+1])<<16 | uint32(code[i+2])<<8 | uint32(code[i+3])
		addr := mem.TextStart + uint32(i)
		line := fmt.Sprintf("0x%08X: %s\n", addr, disasm.Word(w))
		out = append(out, []byte(line)...)
	}

	if outputFile == "" {
		fmt.Print(string(out))
		return
	}

	if err := os.WriteFile(outputFile, out, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Disassembly written to %s\n", outputFile)
}
