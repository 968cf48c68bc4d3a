package encoder

import (
	"strings"

	"github.com/jsnhynh/riscv-oom/isa"
	"github.com/jsnhynh/riscv-oom/parser"
)

// encodeJAL encodes `jal rd, target`. target is ordinarily a label,
// giving a PC-relative offset; per the Open Question in spec.md §9, a
// raw hex immediate is accepted and used directly as the offset pattern
// (bug-compatible with the original source, gated by Policy.AllowRawJALHex).
func (e *Encoder) encodeJAL(stmt *parser.Statement) (uint32, error) {
	if err := requireOperands(stmt, 2); err != nil {
		return 0, err
	}
	rd, err := parseRegister(stmt.Operands[0])
	if err != nil {
		return 0, wrapEncodingError(stmt, parser.ErrorUnknownRegister, err)
	}

	offset, err := e.jalOffset(stmt, stmt.Operands[1])
	if err != nil {
		return 0, err
	}
	return jtypeWord(offset, rd), nil
}

// encodeJPseudo encodes `j L` as `jal x0, L`. Unlike `jal`, `j` never
// accepts a raw hex immediate — only a label target.
func (e *Encoder) encodeJPseudo(stmt *parser.Statement) (uint32, error) {
	if err := requireOperands(stmt, 1); err != nil {
		return 0, err
	}
	offset, err := e.labelOffset(stmt, stmt.Operands[0])
	if err != nil {
		return 0, err
	}
	return jtypeWord(offset, uint32(isa.MustRegister("x0"))), nil
}

// encodeCallPseudo encodes `call L` as `jal ra, L`. Like `j`, `call`
// never accepts a raw hex immediate — only a label target.
func (e *Encoder) encodeCallPseudo(stmt *parser.Statement) (uint32, error) {
	if err := requireOperands(stmt, 1); err != nil {
		return 0, err
	}
	offset, err := e.labelOffset(stmt, stmt.Operands[0])
	if err != nil {
		return 0, err
	}
	return jtypeWord(offset, uint32(isa.MustRegister("ra"))), nil
}

// jalOffset resolves a `jal` target operand to a signed byte offset,
// honoring the raw-hex bug-compatibility policy. Only `jal` itself gets
// this carve-out; `j` and `call` go straight through labelOffset.
func (e *Encoder) jalOffset(stmt *parser.Statement, target string) (int64, error) {
	lower := strings.ToLower(strings.TrimPrefix(target, "-"))
	if strings.HasPrefix(lower, "0x") {
		if !e.policy.AllowRawJALHex {
			return 0, newEncodingError(stmt, parser.ErrorBadOperandForm,
				"raw hex jal immediates are disabled by policy")
		}
		offset, err := parseSignedLiteral(target)
		if err != nil {
			return 0, wrapEncodingError(stmt, parser.ErrorBadOperandForm, err)
		}
		if err := checkJALRange(offset, e.policy.RejectOddOffsets); err != nil {
			return 0, wrapEncodingError(stmt, parser.ErrorImmediateOverflow, err)
		}
		return offset, nil
	}

	return e.labelOffset(stmt, target)
}

// labelOffset resolves target as a label and returns its PC-relative
// byte offset from stmt.Address, range- and evenness-checked. It never
// accepts a raw hex immediate.
func (e *Encoder) labelOffset(stmt *parser.Statement, target string) (int64, error) {
	addr, err := e.program.Labels.Get(target)
	if err != nil {
		return 0, wrapEncodingError(stmt, parser.ErrorUnknownLabel, err)
	}
	offset := int64(addr) - int64(stmt.Address)
	if err := checkJALRange(offset, e.policy.RejectOddOffsets); err != nil {
		return 0, wrapEncodingError(stmt, parser.ErrorImmediateOverflow, err)
	}
	return offset, nil
}

// jtypeWord packs a J-type instruction: the 21-bit signed byte offset
// `o` (bit 0 always 0, never encoded) is swizzled into
// imm[20] imm[10:1] imm[11] imm[19:12], per the RISC-V ISA manual's
// J-immediate table — reconstructed here directly from the spec rather
// than any source transcription.
func jtypeWord(offset int64, rd uint32) uint32 {
	o := uint32(offset)
	imm20 := bit(o, 20) << 31
	imm10_1 := bitRange(o, 10, 1) << 21
	imm11 := bit(o, 11) << 20
	imm19_12 := bitRange(o, 19, 12) << 12
	return imm20 | imm10_1 | imm11 | imm19_12 | (rd << 7) | OpcodeJAL
}

// checkJALRange validates a JAL offset against the field's signed
// 21-bit-including-implicit-zero range and, per policy, its evenness.
func checkJALRange(offset int64, rejectOdd bool) error {
	if rejectOdd && offset%2 != 0 {
		return errOddOffset(offset)
	}
	return checkSignedRange(offset, JALOffsetMin, JALOffsetMax)
}
