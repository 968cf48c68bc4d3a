package encoder

import "github.com/jsnhynh/riscv-oom/parser"

var loadFunct3 = map[string]uint32{
	"lw": Funct3Lw, "lb": Funct3Lb, "lbu": Funct3Lbu, "lh": Funct3Lh, "lhu": Funct3Lhu,
}

// encodeLoad encodes `lw/lb/lbu/lh/lhu rd, imm(rs1)`: I-type layout with
// a memory-addressing operand syntax.
func (e *Encoder) encodeLoad(stmt *parser.Statement) (uint32, error) {
	if err := requireOperands(stmt, 2); err != nil {
		return 0, err
	}
	rd, err := parseRegister(stmt.Operands[0])
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

	f3 := loadFunct3[stmt.Mnemonic]
	word := (uint32(imm)&0xFFF)<<20 | rs1<<15 | f3<<12 | rd<<7 | OpcodeLoad
	return word, nil
}
