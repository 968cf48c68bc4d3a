// Package isa holds the fixed architectural tables an RV32IM assembler
// consults during layout and encoding: register ABI names, CSR addresses,
// and the opcode-to-word-count table. None of it depends on a program's
// source; it's pure lookup data, kept separate from parser/encoder so both
// stages share a single ground truth.
package isa

import "fmt"

// registerNames maps every ABI register name to its 5-bit index. Note
// that gp (x3) and fp (an alias for s0) are intentionally absent: this
// assembler's register file omits them. tp maps to x4, as in the
// standard RV32I ABI.
var registerNames = map[string]uint8{
	"x0": 0, "x1": 1, "x2": 2, "x3": 3, "x4": 4, "x5": 5, "x6": 6, "x7": 7,
	"x8": 8, "x9": 9, "x10": 10, "x11": 11, "x12": 12, "x13": 13, "x14": 14, "x15": 15,
	"x16": 16, "x17": 17, "x18": 18, "x19": 19, "x20": 20, "x21": 21, "x22": 22, "x23": 23,
	"x24": 24, "x25": 25, "x26": 26, "x27": 27, "x28": 28, "x29": 29, "x30": 30, "x31": 31,

	"ra": 1, "sp": 2, "tp": 4,
	"t0": 5, "t1": 6, "t2": 7,
	"s0": 8, "s1": 9,
	"a0": 10, "a1": 11, "a2": 12, "a3": 13, "a4": 14, "a5": 15, "a6": 16, "a7": 17,
	"s2": 18, "s3": 19, "s4": 20, "s5": 21, "s6": 22, "s7": 23, "s8": 24, "s9": 25, "s10": 26, "s11": 27,
	"t3": 28, "t4": 29, "t5": 30, "t6": 31,
}

// Register resolves an ABI or numeric register name to its 5-bit index.
func Register(name string) (uint8, bool) {
	idx, ok := registerNames[name]
	return idx, ok
}

// MustRegister panics if name isn't a known register; used where the
// literal is known-good at compile time (the encoder's j/call expansions).
func MustRegister(name string) uint8 {
	idx, ok := Register(name)
	if !ok {
		panic(fmt.Sprintf("isa: unknown register %q", name))
	}
	return idx
}

// RegisterTable returns a copy of the full name-to-index table, for
// callers that need to range over every known register name (tests,
// -dump-symbols-adjacent tooling).
func RegisterTable() map[string]uint8 {
	out := make(map[string]uint8, len(registerNames))
	for name, idx := range registerNames {
		out[name] = idx
	}
	return out
}
