// Package assemble composes S1-S4 (parser lex+layout, encoder encode+emit)
// into the single entry point the CLI calls. The listing printer and
// browser are handed its Result and never re-derive addresses or re-walk
// statements on their own.
package assemble

import (
	"io"

	"github.com/jsnhynh/riscv-oom/config"
	"github.com/jsnhynh/riscv-oom/encoder"
	"github.com/jsnhynh/riscv-oom/parser"
)

// Result holds everything downstream consumers (the CLI, -listing,
// -browse, -dump-symbols) need without re-running any stage.
type Result struct {
	Program *parser.Program
	Words   []uint32
}

// PolicyFromConfig maps the two open-question flags in cfg.Assemble onto
// an encoder.Policy, the only part of Config the encoding stages consult.
func PolicyFromConfig(cfg *config.Config) encoder.Policy {
	return encoder.Policy{
		AllowRawJALHex:   cfg.Assemble.AllowRawJALHex,
		RejectOddOffsets: cfg.Assemble.RejectOddOffsets,
	}
}

// File runs S1-S3 over the named source file and returns the laid-out
// Program together with its encoded word stream. It does not format or
// write output; that's Emit's job (S4).
func File(path string, cfg *config.Config) (*Result, error) {
	program, err := parser.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return fromProgram(program, cfg)
}

// Source runs S1-S3 over in-memory source text, tagging positions with
// filename, without a round-trip through the filesystem. Used by tests.
func Source(source, filename string, cfg *config.Config) (*Result, error) {
	p := parser.NewParser(source, filename)
	program, err := p.Parse()
	if err != nil {
		return nil, err
	}
	return fromProgram(program, cfg)
}

func fromProgram(program *parser.Program, cfg *config.Config) (*Result, error) {
	enc := encoder.NewEncoder(program, PolicyFromConfig(cfg))
	words, err := enc.Assemble()
	if err != nil {
		return nil, err
	}
	return &Result{Program: program, Words: words}, nil
}

// Emit runs S4 over a Result's word stream, honoring the output config's
// case and line-ending choices.
func Emit(w io.Writer, result *Result, cfg *config.Config) error {
	if cfg.Output.UppercaseHex || cfg.Output.LineEnding != "\n" {
		return encoder.EmitWithFormat(w, result.Words, cfg.Output.UppercaseHex, cfg.Output.LineEnding)
	}
	return encoder.Emit(w, result.Words)
}
