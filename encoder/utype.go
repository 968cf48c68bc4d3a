package encoder

import "github.com/jsnhynh/riscv-oom/parser"

// encodeUType encodes `lui`/`auipc rd, 0xHHHHH`: a 20-bit unsigned
// immediate placed directly in bits 31:12.
func (e *Encoder) encodeUType(stmt *parser.Statement, opcode uint32) (uint32, error) {
	if err := requireOperands(stmt, 2); err != nil {
		return 0, err
	}

	rd, err := parseRegister(stmt.Operands[0])
	if err != nil {
		return 0, wrapEncodingError(stmt, parser.ErrorUnknownRegister, err)
	}

	imm, err := parseSignedLiteral(stmt.Operands[1])
	if err != nil {
		return 0, wrapEncodingError(stmt, parser.ErrorBadOperandForm, err)
	}
	if err := checkUnsignedMax(imm, Imm20UnsignedMax); err != nil {
		return 0, wrapEncodingError(stmt, parser.ErrorImmediateOverflow, err)
	}

	word := (uint32(imm)&Imm20UnsignedMax)<<12 | (rd << 7) | opcode
	return word, nil
}
