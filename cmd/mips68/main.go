package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kestrelasm/mips68/repl"
)

func main() {
	loadFile := flag.String("f", "", "assemble FILE on startup before entering the interactive loop")
	batch := flag.Bool("batch", false, "exit immediately after loading -f instead of entering the interactive loop")
	steps := flag.Int("steps", 1_000_000, "step cap applied to the `run` command")
	flag.Parse()

	r := repl.New(os.Stdin, os.Stdout)
	r.MaxSteps = *steps

	if *loadFile != "" {
		data, err := os.ReadFile(*loadFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "mips68: %v\n", err)
			os.Exit(1)
		}
		if err := r.LoadSource(string(data)); err != nil {
			fmt.Fprintf(os.Stderr, "mips68: %v\n", err)
			os.Exit(1)
		}
	}

	if *batch {
		return
	}

	os.Exit(r.Run())
}
