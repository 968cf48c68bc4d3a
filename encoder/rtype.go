package encoder

import "github.com/jsnhynh/riscv-oom/parser"

type rtypeFields struct {
	funct3 uint32
	funct7 uint32
}

var rtypeTable = map[string]rtypeFields{
	"add": {Funct3Add, Funct7Zero}, "sub": {Funct3Add, Funct7Alt},
	"sll": {Funct3Sll, Funct7Zero}, "slt": {Funct3Slt, Funct7Zero},
	"sltu": {Funct3Sltu, Funct7Zero}, "xor": {Funct3Xor, Funct7Zero},
	"srl": {Funct3Srl, Funct7Zero}, "sra": {Funct3Srl, Funct7Alt},
	"or": {Funct3Or, Funct7Zero}, "and": {Funct3And, Funct7Zero},
	"mul": {Funct3Add, Funct7M}, "div": {Funct3Xor, Funct7M},
}

// encodeRType encodes `op rd, rs1, rs2` for the base arithmetic/logical
// set plus the RV32M mul/div pair, which share the OP opcode and are
// distinguished purely by funct7.
func (e *Encoder) encodeRType(stmt *parser.Statement) (uint32, error) {
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
	rs2, err := parseRegister(stmt.Operands[2])
	if err != nil {
		return 0, wrapEncodingError(stmt, parser.ErrorUnknownRegister, err)
	}

	fields := rtypeTable[stmt.Mnemonic]
	word := fields.funct7<<25 | rs2<<20 | rs1<<15 | fields.funct3<<12 | rd<<7 | OpcodeOp
	return word, nil
}
