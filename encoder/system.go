package encoder

import (
	"fmt"

	"github.com/jsnhynh/riscv-oom/isa"
	"github.com/jsnhynh/riscv-oom/parser"
)

// encodeCSRRW encodes `csrrw rd, csr, rs1`.
func (e *Encoder) encodeCSRRW(stmt *parser.Statement) (uint32, error) {
	if err := requireOperands(stmt, 3); err != nil {
		return 0, err
	}
	rd, err := parseRegister(stmt.Operands[0])
	if err != nil {
		return 0, wrapEncodingError(stmt, parser.ErrorUnknownRegister, err)
	}
	csr, err := parseCSR(stmt.Operands[1])
	if err != nil {
		return 0, wrapEncodingError(stmt, parser.ErrorBadOperandForm, err)
	}
	rs1, err := parseRegister(stmt.Operands[2])
	if err != nil {
		return 0, wrapEncodingError(stmt, parser.ErrorUnknownRegister, err)
	}

	word := uint32(csr)<<20 | rs1<<15 | Funct3Csrrw<<12 | rd<<7 | OpcodeSystem
	return word, nil
}

// encodeCSRW encodes `csrw csr, rs1` as `csrrw x0, csr, rs1`.
func (e *Encoder) encodeCSRW(stmt *parser.Statement) (uint32, error) {
	if err := requireOperands(stmt, 2); err != nil {
		return 0, err
	}
	csr, err := parseCSR(stmt.Operands[0])
	if err != nil {
		return 0, wrapEncodingError(stmt, parser.ErrorBadOperandForm, err)
	}
	rs1, err := parseRegister(stmt.Operands[1])
	if err != nil {
		return 0, wrapEncodingError(stmt, parser.ErrorUnknownRegister, err)
	}
	rd, _ := parseRegister("x0")

	word := uint32(csr)<<20 | rs1<<15 | Funct3Csrrw<<12 | rd<<7 | OpcodeSystem
	return word, nil
}

func parseCSR(tok string) (uint16, error) {
	addr, ok := isa.CSR(tok)
	if !ok {
		return 0, fmt.Errorf("unknown CSR: %s", tok)
	}
	return addr, nil
}
