package encoder

import (
	"strings"

	"github.com/jsnhynh/riscv-oom/parser"
)

// encodeMv encodes `mv rd, rs` as `addi rd, rs, 0`.
func (e *Encoder) encodeMv(stmt *parser.Statement) (uint32, error) {
	if err := requireOperands(stmt, 2); err != nil {
		return 0, err
	}
	rd, err := parseRegister(stmt.Operands[0])
	if err != nil {
		return 0, wrapEncodingError(stmt, parser.ErrorUnknownRegister, err)
	}
	rs, err := parseRegister(stmt.Operands[1])
	if err != nil {
		return 0, wrapEncodingError(stmt, parser.ErrorUnknownRegister, err)
	}
	return rs<<15 | Funct3Addi<<12 | rd<<7 | OpcodeOpImm, nil
}

// encodeLi encodes `li rd, imm` as the always-two-word lui+addi pair,
// applying the standard RISC-V "+0x800 carry" rule: upper20 rounds up
// when the lower 12 bits, sign-extended, would be negative. The
// immediate may be a numeric literal or a name bound by `.equ`; per
// spec.md §9 the constant is already a 32-bit bit pattern, so the same
// carry arithmetic applies to it unchanged.
func (e *Encoder) encodeLi(stmt *parser.Statement) ([]uint32, error) {
	if err := requireOperands(stmt, 2); err != nil {
		return nil, err
	}
	rd, err := parseRegister(stmt.Operands[0])
	if err != nil {
		return nil, wrapEncodingError(stmt, parser.ErrorUnknownRegister, err)
	}

	pattern, err := e.resolveLiImmediate(stmt, stmt.Operands[1])
	if err != nil {
		return nil, err
	}

	upper20, lower12 := liSplit(pattern)
	luiWord := upper20<<12 | rd<<7 | OpcodeLUI
	addiWord := lower12<<20 | rd<<15 | Funct3Addi<<12 | rd<<7 | OpcodeOpImm
	return []uint32{luiWord, addiWord}, nil
}

// encodeLa encodes `la rd, label` identically to `li`, but with the
// immediate always being the label's absolute byte address rather than
// a literal or constant — spec.md §4.3.4 notes this only makes sense in
// a flat-address simulation context, which is exactly this assembler's
// target.
func (e *Encoder) encodeLa(stmt *parser.Statement) ([]uint32, error) {
	if err := requireOperands(stmt, 2); err != nil {
		return nil, err
	}
	rd, err := parseRegister(stmt.Operands[0])
	if err != nil {
		return nil, wrapEncodingError(stmt, parser.ErrorUnknownRegister, err)
	}

	addr, err := e.program.Labels.Get(stmt.Operands[1])
	if err != nil {
		return nil, wrapEncodingError(stmt, parser.ErrorUnknownLabel, err)
	}

	upper20, lower12 := liSplit(addr)
	luiWord := upper20<<12 | rd<<7 | OpcodeLUI
	addiWord := lower12<<20 | rd<<15 | Funct3Addi<<12 | rd<<7 | OpcodeOpImm
	return []uint32{luiWord, addiWord}, nil
}

// liSplit applies the +0x800 carry rule to a 32-bit bit pattern,
// returning the 20-bit upper field (already masked, not yet shifted
// into U-type position) and the 12-bit lower field (already masked,
// not yet shifted into I-type position).
func liSplit(pattern uint32) (upper20, lower12 uint32) {
	sum := pattern + 0x800
	upper20 = (sum >> 12) & 0xFFFFF
	lower12 = pattern & 0xFFF
	return upper20, lower12
}

// resolveLiImmediate resolves an `li` operand to its 32-bit bit pattern:
// a numeric literal parsed directly, or a bare name resolved through the
// constant table.
func (e *Encoder) resolveLiImmediate(stmt *parser.Statement, operand string) (uint32, error) {
	if looksNumeric(operand) {
		val, err := parseSignedLiteral(operand)
		if err != nil {
			return 0, wrapEncodingError(stmt, parser.ErrorBadOperandForm, err)
		}
		return uint32(val), nil
	}

	value, err := e.program.Constants.Get(operand)
	if err != nil {
		return 0, wrapEncodingError(stmt, parser.ErrorUnknownSymbol, err)
	}
	return value, nil
}

// looksNumeric reports whether operand is shaped like a numeric literal
// (optional leading '-', then digits or a 0x-prefixed hex run) rather
// than a bare identifier destined for the constant table.
func looksNumeric(operand string) bool {
	s := strings.TrimPrefix(operand, "-")
	if s == "" {
		return false
	}
	return s[0] >= '0' && s[0] <= '9'
}
