package encoder

import "github.com/jsnhynh/riscv-oom/parser"

var branchFunct3 = map[string]uint32{
	"beq": Funct3Beq, "bne": Funct3Bne, "blt": Funct3Blt,
	"bge": Funct3Bge, "bltu": Funct3Bltu, "bgeu": Funct3Bgeu,
}

// encodeBranch encodes `op rs1, rs2, L`: a signed 13-bit, multiple-of-2
// PC-relative offset in B-type layout.
func (e *Encoder) encodeBranch(stmt *parser.Statement) (uint32, error) {
	if err := requireOperands(stmt, 3); err != nil {
		return 0, err
	}
	rs1, err := parseRegister(stmt.Operands[0])
	if err != nil {
		return 0, wrapEncodingError(stmt, parser.ErrorUnknownRegister, err)
	}
	rs2, err := parseRegister(stmt.Operands[1])
	if err != nil {
		return 0, wrapEncodingError(stmt, parser.ErrorUnknownRegister, err)
	}

	offset, err := e.branchOffset(stmt, stmt.Operands[2])
	if err != nil {
		return 0, err
	}

	f3 := branchFunct3[stmt.Mnemonic]
	return btypeWord(offset, rs1, rs2, f3), nil
}

// branchPseudoExpansion names the real branch and the (rs1, rs2) operand
// order each pseudo-op expands to, per spec.md §4.3.4.
type branchPseudoExpansion struct {
	real     string
	zeroLast bool // true: rs, x0 order; false: x0, rs order
}

var branchPseudoTable = map[string]branchPseudoExpansion{
	"beqz": {"beq", true},
	"bnez": {"bne", true},
	"bltz": {"blt", true},
	"bgez": {"bge", true},
	"blez": {"bge", false},
	"bgtz": {"blt", false},
}

// encodeBranchPseudo encodes the six branch-against-zero pseudo-ops.
func (e *Encoder) encodeBranchPseudo(stmt *parser.Statement) (uint32, error) {
	if err := requireOperands(stmt, 2); err != nil {
		return 0, err
	}
	expansion := branchPseudoTable[stmt.Mnemonic]

	rs, err := parseRegister(stmt.Operands[0])
	if err != nil {
		return 0, wrapEncodingError(stmt, parser.ErrorUnknownRegister, err)
	}
	zero, _ := parseRegister("x0")

	offset, err := e.branchOffset(stmt, stmt.Operands[1])
	if err != nil {
		return 0, err
	}

	f3 := branchFunct3[expansion.real]
	if expansion.zeroLast {
		return btypeWord(offset, rs, zero, f3), nil
	}
	return btypeWord(offset, zero, rs, f3), nil
}

// branchOffset resolves a branch target label to a signed byte offset
// and range/evenness-checks it.
func (e *Encoder) branchOffset(stmt *parser.Statement, target string) (int64, error) {
	addr, err := e.program.Labels.Get(target)
	if err != nil {
		return 0, wrapEncodingError(stmt, parser.ErrorUnknownLabel, err)
	}
	offset := int64(addr) - int64(stmt.Address)

	if e.policy.RejectOddOffsets && offset%2 != 0 {
		return 0, wrapEncodingError(stmt, parser.ErrorImmediateOverflow, errOddOffset(offset))
	}
	if err := checkSignedRange(offset, BranchOffsetMin, BranchOffsetMax); err != nil {
		return 0, wrapEncodingError(stmt, parser.ErrorImmediateOverflow, err)
	}
	return offset, nil
}

// btypeWord packs a B-type instruction: the 13-bit signed byte offset
// `o` (bit 0 always 0) is swizzled into
// imm[12] imm[10:5] rs2 rs1 f3 imm[4:1] imm[11] opcode, per the RISC-V
// ISA manual's B-immediate table.
func btypeWord(offset int64, rs1, rs2, funct3 uint32) uint32 {
	o := uint32(offset)
	imm12 := bit(o, 12) << 31
	imm10_5 := bitRange(o, 10, 5) << 25
	imm4_1 := bitRange(o, 4, 1) << 8
	imm11 := bit(o, 11) << 7
	return imm12 | imm10_5 | rs2<<20 | rs1<<15 | funct3<<12 | imm4_1 | imm11 | OpcodeBranch
}
