package encoder

import "github.com/jsnhynh/riscv-oom/parser"

var aluFunct3 = map[string]uint32{
	"addi": Funct3Addi, "slti": Funct3Slti, "sltiu": Funct3Sltiu,
	"xori": Funct3Xori, "ori": Funct3Ori, "andi": Funct3Andi,
}

// encodeIType encodes the I-type ALU family: `op rd, rs1, imm`, a 12-bit
// signed immediate packed at bits 31:20.
func (e *Encoder) encodeIType(stmt *parser.Statement) (uint32, error) {
	if err := requireOperands(stmt, 3); err != nil {
		return 0, err
	}
	rd, err := parseRegister(stmt.Operands[0])
	if err != nil {
		return 0, wrapEncodingError(stmt, parser.ErrorUnknownRegister, err)
	}
	rs1, err := parseRegister(stmt.Operands[1])
	if err != nil {
		return 0, wrapEncodingError(stmt, parser.ErrorUnknownRegister, err)
	}
	imm, err := parseSignedLiteral(stmt.Operands[2])
	if err != nil {
		return 0, wrapEncodingError(stmt, parser.ErrorBadOperandForm, err)
	}
	if err := checkSignedRange(imm, Imm12Min, Imm12Max); err != nil {
		return 0, wrapEncodingError(stmt, parser.ErrorImmediateOverflow, err)
	}

	f3 := aluFunct3[stmt.Mnemonic]
	word := (uint32(imm)&0xFFF)<<20 | rs1<<15 | f3<<12 | rd<<7 | OpcodeOpImm
	return word, nil
}

var shiftFunct7 = map[string]uint32{
	"slli": Funct7Zero, "srli": Funct7Zero, "srai": Funct7Alt,
}

// encodeShiftIType encodes `slli/srli/srai rd, rs1, shamt`: a 5-bit
// unsigned shift amount plus a funct7 that selects arithmetic vs.
// logical right shift.
func (e *Encoder) encodeShiftIType(stmt *parser.Statement) (uint32, error) {
	if err := requireOperands(stmt, 3); err != nil {
		return 0, err
	}
	rd, err := parseRegister(stmt.Operands[0])
	if err != nil {
		return 0, wrapEncodingError(stmt, parser.ErrorUnknownRegister, err)
	}
	rs1, err := parseRegister(stmt.Operands[1])
	if err != nil {
		return 0, wrapEncodingError(stmt, parser.ErrorUnknownRegister, err)
	}
	shamt, err := parseSignedLiteral(stmt.Operands[2])
	if err != nil {
		return 0, wrapEncodingError(stmt, parser.ErrorBadOperandForm, err)
	}
	if err := checkUnsignedMax(shamt, 31); err != nil {
		return 0, wrapEncodingError(stmt, parser.ErrorImmediateOverflow, err)
	}

	f7 := shiftFunct7[stmt.Mnemonic]
	word := f7<<25 | (uint32(shamt)&0x1F)<<20 | rs1<<15 | Funct3Slli<<12 | rd<<7 | OpcodeOpImm
	return word, nil
}

// encodeJALR encodes `jalr rd, rs1, imm`: I-type layout, funct3 0.
func (e *Encoder) encodeJALR(stmt *parser.Statement) (uint32, error) {
	if err := requireOperands(stmt, 3); err != nil {
		return 0, err
	}
	rd, err := parseRegister(stmt.Operands[0])
	if err != nil {
		return 0, wrapEncodingError(stmt, parser.ErrorUnknownRegister, err)
	}
	rs1, err := parseRegister(stmt.Operands[1])
	if err != nil {
		return 0, wrapEncodingError(stmt, parser.ErrorUnknownRegister, err)
	}
	imm, err := parseSignedLiteral(stmt.Operands[2])
	if err != nil {
		return 0, wrapEncodingError(stmt, parser.ErrorBadOperandForm, err)
	}
	if err := checkSignedRange(imm, Imm12Min, Imm12Max); err != nil {
		return 0, wrapEncodingError(stmt, parser.ErrorImmediateOverflow, err)
	}

	word := (uint32(imm)&0xFFF)<<20 | rs1<<15 | Funct3Jalr<<12 | rd<<7 | OpcodeJALR
	return word, nil
}

// encodeRet encodes `ret` as `jalr x0, ra, 0`.
func (e *Encoder) encodeRet(stmt *parser.Statement) (uint32, error) {
	if err := requireOperands(stmt, 0); err != nil {
		return 0, err
	}
	rd, _ := parseRegister("x0")
	rs1, _ := parseRegister("ra")
	return rs1<<15 | Funct3Jalr<<12 | rd<<7 | OpcodeJALR, nil
}
