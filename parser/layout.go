package parser

import (
	"strconv"
	"strings"

	"github.com/jsnhynh/riscv-oom/isa"
)

// Layout runs S2 over program.Statements: it assigns a byte address to
// every statement's leading labels, binds .equ constants, and records
// each instruction statement's Address and WordCount. It never emits a
// single bit — S3 is the only stage that encodes.
func Layout(program *Program) error {
	var pc uint32

	for _, stmt := range program.Statements {
		for _, label := range stmt.Labels {
			if err := program.Labels.Define(label, pc, stmt.Pos); err != nil {
				return NewErrorWithContext(stmt.Pos, ErrorMalformedLine, err.Error(), stmt.Raw)
			}
		}

		switch stmt.Kind {
		case StmtLabelOnly:
			// No address of its own; PC does not advance.
		case StmtEqu:
			value, err := parseEquValue(stmt.EquValue)
			if err != nil {
				return NewErrorWithContext(stmt.Pos, ErrorMalformedLine, err.Error(), stmt.Raw)
			}
			if err := program.Constants.Define(stmt.EquName, value, stmt.Pos); err != nil {
				return NewErrorWithContext(stmt.Pos, ErrorMalformedLine, err.Error(), stmt.Raw)
			}
		case StmtInstruction:
			count, ok := isa.WordCount(stmt.Mnemonic)
			if !ok {
				return NewErrorWithContext(stmt.Pos, ErrorUnknownMnemonic, "unknown mnemonic: "+stmt.Mnemonic, stmt.Raw)
			}
			stmt.Address = pc
			stmt.WordCount = count
			pc += uint32(count) * WordSize
		}
	}

	return nil
}

// parseEquValue parses the `0xHHHH...` literal of a .equ directive into
// its 32-bit bit pattern, per spec.md §3: interpreted as unsigned and
// truncated to 32 bits, not as a signed integer.
func parseEquValue(literal string) (uint32, error) {
	lower := strings.ToLower(literal)
	if !strings.HasPrefix(lower, "0x") {
		return 0, &strconv.NumError{Func: "parseEquValue", Num: literal, Err: strconv.ErrSyntax}
	}
	v, err := strconv.ParseUint(lower[2:], 16, 64)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}
