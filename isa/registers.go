package isa

import "strconv"

// registerNames maps every accepted register spelling (named or numeric) to
// its register file index. $fp and $s8 are the same register, per the MIPS
// calling convention this simulator follows.
var registerNames = map[string]int{
	"zero": 0, "at": 1,
	"v0": 2, "v1": 3,
	"a0": 4, "a1": 5, "a2": 6, "a3": 7,
	"t0": 8, "t1": 9, "t2": 10, "t3": 11, "t4": 12, "t5": 13, "t6": 14, "t7": 15,
	"s0": 16, "s1": 17, "s2": 18, "s3": 19, "s4": 20, "s5": 21, "s6": 22, "s7": 23,
	"t8": 24, "t9": 25,
	"k0": 26, "k1": 27,
	"gp": 28, "sp": 29,
	"fp": 30, "s8": 30,
	"ra": 31,
}

// RegisterDisplayNames is indexed by register number and gives the
// canonical display name used in register dumps.
var RegisterDisplayNames = [32]string{
	"$zero", "$at",
	"$v0", "$v1",
	"$a0", "$a1", "$a2", "$a3",
	"$t0", "$t1", "$t2", "$t3", "$t4", "$t5", "$t6", "$t7",
	"$s0", "$s1", "$s2", "$s3", "$s4", "$s5", "$s6", "$s7",
	"$t8", "$t9",
	"$k0", "$k1",
	"$gp", "$sp",
	"$fp", "$ra",
}

// RegisterNumber resolves a register operand's text (without the leading
// "$") to its register index. Accepts both symbolic names ("t0", "sp") and
// plain numerals ("8", "29").
func RegisterNumber(name string) (int, bool) {
	if n, ok := registerNames[name]; ok {
		return n, true
	}
	if v, err := strconv.Atoi(name); err == nil && v >= 0 && v <= 31 {
		return v, true
	}
	return 0, false
}
