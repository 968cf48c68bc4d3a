package encoder

import "github.com/jsnhynh/riscv-oom/parser"

var storeFunct3 = map[string]uint32{
	"sw": Funct3Sw, "sb": Funct3Sb, "sh": Funct3Sh,
}

// encodeStore encodes `sw/sb/sh rs2, imm(rs1)`: S-type layout, which
// splits the 12-bit immediate across a high field (bits 31:25) and a
// low field (bits 11:7) so rs1/rs2 stay at the same bit positions as
// every other base format.
func (e *Encoder) encodeStore(stmt *parser.Statement) (uint32, error) {
	if err := requireOperands(stmt, 2); err != nil {
		return 0, err
	}
	rs2, err := parseRegister(stmt.Operands[0])
	if err != nil {
		return 0, wrapEncodingError(stmt, parser.ErrorUnknownRegister, err)
	}

	immText, regText, err := splitMemoryOperand(stmt.Operands[1])
	if err != nil {
		return 0, wrapEncodingError(stmt, parser.ErrorBadOperandForm, err)
	}
	rs1, err := parseRegister(regText)
	if err != nil {
		return 0, wrapEncodingError(stmt, parser.ErrorUnknownRegister, err)
	}
	imm, err := parseSignedLiteral(immText)
	if err != nil {
		return 0, wrapEncodingError(stmt, parser.ErrorBadOperandForm, err)
	}
	if err := checkSignedRange(imm, Imm12Min, Imm12Max); err != nil {
		return 0, wrapEncodingError(stmt, parser.ErrorImmediateOverflow, err)
	}

	u := uint32(imm) & 0xFFF
	f3 := storeFunct3[stmt.Mnemonic]
	word := bitRange(u, 11, 5)<<25 | rs2<<20 | rs1<<15 | f3<<12 | bitRange(u, 4, 0)<<7 | OpcodeStore
	return word, nil
}
