package isa

// wordCounts maps every supported mnemonic (base instructions and the
// fixed pseudo-instruction set) to the number of 32-bit words it occupies
// once expanded. Every entry is 1 except li/la, which each expand to a
// lui+addi pair. Layout (S2) consults this table to advance the PC
// without ever encoding anything.
var wordCounts = map[string]int{
	// U-type
	"lui": 1, "auipc": 1,
	// J-type
	"jal": 1, "j": 1, "call": 1,
	// I-type ALU
	"addi": 1, "slti": 1, "sltiu": 1, "xori": 1, "ori": 1, "andi": 1,
	// I-type shift
	"slli": 1, "srli": 1, "srai": 1,
	// R-type
	"add": 1, "sub": 1, "sll": 1, "slt": 1, "sltu": 1, "xor": 1, "srl": 1,
	"sra": 1, "or": 1, "and": 1, "mul": 1, "div": 1,
	// Load
	"lw": 1, "lb": 1, "lbu": 1, "lh": 1, "lhu": 1,
	// Store
	"sw": 1, "sb": 1, "sh": 1,
	// Branch
	"beq": 1, "bne": 1, "blt": 1, "bge": 1, "bltu": 1, "bgeu": 1,
	// Branch pseudo-ops
	"beqz": 1, "bnez": 1, "bltz": 1, "bgez": 1, "blez": 1, "bgtz": 1,
	// JALR and friends
	"jalr": 1, "ret": 1,
	// System
	"mret": 1, "csrrw": 1, "csrw": 1,
	// Register-move pseudo-op
	"mv": 1,
	// Load-immediate/address pseudo-ops: two real words
	"li": 2, "la": 2,
}

// WordCount returns the number of 32-bit words mnemonic expands to, and
// whether it is known at all. An unknown mnemonic is a layout-time
// UnknownMnemonic failure.
func WordCount(mnemonic string) (int, bool) {
	n, ok := wordCounts[mnemonic]
	return n, ok
}
