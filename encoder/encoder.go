// Package encoder implements S3 (bit-exact instruction encoding) and S4
// (hex formatting) of the assembly pipeline.
package encoder

import (
	"strconv"

	"github.com/jsnhynh/riscv-oom/parser"
)

// Policy captures the two open-question decisions from spec.md §9 as
// runtime-configurable flags, wired from the config package rather than
// hardcoded, so a caller can choose the stricter behavior without a
// rebuild.
type Policy struct {
	// AllowRawJALHex preserves the source's bug-compatible behavior of
	// treating a raw hex `jal` immediate as a literal byte-offset
	// pattern rather than rejecting it outright.
	AllowRawJALHex bool
	// RejectOddOffsets rejects branch/jump byte offsets that aren't a
	// multiple of 2, adopting the REDESIGN FLAG over the source's
	// silent acceptance.
	RejectOddOffsets bool
}

// DefaultPolicy matches the decisions recorded in SPEC_FULL.md §9.
func DefaultPolicy() Policy {
	return Policy{AllowRawJALHex: true, RejectOddOffsets: true}
}

// Encoder implements S3: given a laid-out Program, it re-walks the
// statement list and emits each instruction's 32-bit word(s). It never
// recomputes an address from a label position — every statement already
// carries the Address S2 assigned it.
type Encoder struct {
	program *parser.Program
	policy  Policy
}

// NewEncoder creates an encoder over a Program produced by parser.Parse.
func NewEncoder(program *parser.Program, policy Policy) *Encoder {
	return &Encoder{program: program, policy: policy}
}

// Assemble runs S3 over every statement in program order, returning the
// full word stream. Label-only and .equ statements emit nothing.
func (e *Encoder) Assemble() ([]uint32, error) {
	var words []uint32
	for _, stmt := range e.program.Statements {
		if stmt.Kind != parser.StmtInstruction {
			continue
		}
		encoded, err := e.EncodeStatement(stmt)
		if err != nil {
			return nil, err
		}
		if len(encoded) != stmt.WordCount {
			return nil, newEncodingError(stmt, parser.ErrorMalformedLine,
				"encoder produced a different word count than layout assigned")
		}
		words = append(words, encoded...)
	}
	return words, nil
}

// EncodeStatement routes one instruction statement to its format-specific
// encoder and returns its one or two words. stmt.Address is used as the
// PC for any PC-relative computation, never a locally tracked counter,
// so S3 agrees with S2 by construction.
func (e *Encoder) EncodeStatement(stmt *parser.Statement) ([]uint32, error) {
	switch stmt.Mnemonic {
	case "lui":
		w, err := e.encodeUType(stmt, OpcodeLUI)
		return one(w, err)
	case "auipc":
		w, err := e.encodeUType(stmt, OpcodeAUIPC)
		return one(w, err)

	case "jal":
		w, err := e.encodeJAL(stmt)
		return one(w, err)
	case "j":
		w, err := e.encodeJPseudo(stmt)
		return one(w, err)
	case "call":
		w, err := e.encodeCallPseudo(stmt)
		return one(w, err)
	case "jalr":
		w, err := e.encodeJALR(stmt)
		return one(w, err)
	case "ret":
		w, err := e.encodeRet(stmt)
		return one(w, err)

	case "addi", "slti", "sltiu", "xori", "ori", "andi":
		w, err := e.encodeIType(stmt)
		return one(w, err)
	case "slli", "srli", "srai":
		w, err := e.encodeShiftIType(stmt)
		return one(w, err)

	case "add", "sub", "sll", "slt", "sltu", "xor", "srl", "sra", "or", "and", "mul", "div":
		w, err := e.encodeRType(stmt)
		return one(w, err)

	case "lw", "lb", "lbu", "lh", "lhu":
		w, err := e.encodeLoad(stmt)
		return one(w, err)
	case "sw", "sb", "sh":
		w, err := e.encodeStore(stmt)
		return one(w, err)

	case "beq", "bne", "blt", "bge", "bltu", "bgeu":
		w, err := e.encodeBranch(stmt)
		return one(w, err)
	case "beqz", "bnez", "bltz", "bgez", "blez", "bgtz":
		w, err := e.encodeBranchPseudo(stmt)
		return one(w, err)

	case "mv":
		w, err := e.encodeMv(stmt)
		return one(w, err)
	case "li":
		return e.encodeLi(stmt)
	case "la":
		return e.encodeLa(stmt)

	case "mret":
		return one(MretWord, nil)
	case "csrrw":
		w, err := e.encodeCSRRW(stmt)
		return one(w, err)
	case "csrw":
		w, err := e.encodeCSRW(stmt)
		return one(w, err)

	default:
		return nil, newEncodingError(stmt, parser.ErrorUnknownMnemonic, "unknown mnemonic: "+stmt.Mnemonic)
	}
}

func one(w uint32, err error) ([]uint32, error) {
	if err != nil {
		return nil, err
	}
	return []uint32{w}, nil
}

// requireOperands returns a BadOperandForm error if stmt doesn't carry
// exactly n operands.
func requireOperands(stmt *parser.Statement, n int) error {
	if len(stmt.Operands) != n {
		return newEncodingError(stmt, parser.ErrorBadOperandForm,
			"expected "+strconv.Itoa(n)+" operand(s), got "+strconv.Itoa(len(stmt.Operands)))
	}
	return nil
}
