package listing

import (
	"strings"
	"testing"

	"github.com/jsnhynh/riscv-oom/config"
	"github.com/jsnhynh/riscv-oom/encoder"
	"github.com/jsnhynh/riscv-oom/parser"
)

func assembleSource(t *testing.T, src string) (*parser.Program, []uint32) {
	t.Helper()
	p := parser.NewParser(src, "t.s")
	program, err := p.Parse()
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	enc := encoder.NewEncoder(program, encoder.DefaultPolicy())
	words, err := enc.Assemble()
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	return program, words
}

func TestRowsAlignsWordsWithStatements(t *testing.T) {
	program, words := assembleSource(t, "loop: addi x1, x1, 1\nli x2, 0x12345678\nj loop\n")
	rows := Rows(program, words)

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if len(rows[0].Words) != 1 {
		t.Errorf("addi should produce 1 word, got %d", len(rows[0].Words))
	}
	if len(rows[1].Words) != 2 {
		t.Errorf("li should produce 2 words, got %d", len(rows[1].Words))
	}
	if rows[1].Words[1] != words[2] {
		t.Errorf("second li word should line up with the overall stream")
	}
	if rows[0].Labels[0] != "loop" {
		t.Errorf("expected first row to carry label 'loop', got %v", rows[0].Labels)
	}
}

func TestPrintIncludesSourceText(t *testing.T) {
	program, words := assembleSource(t, "addi x1, x1, 1\n")
	var buf strings.Builder
	cfg := config.DefaultConfig()
	if err := Print(&buf, program, words, cfg); err != nil {
		t.Fatalf("Print failed: %v", err)
	}
	if !strings.Contains(buf.String(), "addi x1, x1, 1") {
		t.Errorf("expected source text in listing output, got %q", buf.String())
	}
}

func TestPrintGroupsWordsByBytesPerRow(t *testing.T) {
	program, words := assembleSource(t, "li x2, 0x12345678\n")
	cfg := config.DefaultConfig()
	cfg.Listing.ShowSymbols = false
	cfg.Listing.BytesPerRow = 4
	var buf strings.Builder
	if err := Print(&buf, program, words, cfg); err != nil {
		t.Fatalf("Print failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected li's 2 words split onto 2 lines with BytesPerRow=4, got %d: %v", len(lines), lines)
	}

	cfg.Listing.BytesPerRow = 8
	buf.Reset()
	if err := Print(&buf, program, words, cfg); err != nil {
		t.Fatalf("Print failed: %v", err)
	}
	lines = strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected li's 2 words on 1 line with BytesPerRow=8, got %d: %v", len(lines), lines)
	}
}

func TestPrintShowSymbolsAppendsTable(t *testing.T) {
	program, words := assembleSource(t, "loop: addi x0, x0, 0\n")
	cfg := config.DefaultConfig()

	cfg.Listing.ShowSymbols = false
	var buf strings.Builder
	if err := Print(&buf, program, words, cfg); err != nil {
		t.Fatalf("Print failed: %v", err)
	}
	if strings.Contains(buf.String(), "Symbols") {
		t.Errorf("expected no symbol table when ShowSymbols is false, got %q", buf.String())
	}

	cfg.Listing.ShowSymbols = true
	buf.Reset()
	if err := Print(&buf, program, words, cfg); err != nil {
		t.Fatalf("Print failed: %v", err)
	}
	if !strings.Contains(buf.String(), "loop") {
		t.Errorf("expected symbol table to list 'loop', got %q", buf.String())
	}
}

func TestSymbolLinesSorted(t *testing.T) {
	program, _ := assembleSource(t, "zeta: addi x0, x0, 0\nalpha: addi x0, x0, 0\n")
	lines := SymbolLines(program)
	if len(lines) != 2 {
		t.Fatalf("expected 2 symbol lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "alpha") {
		t.Errorf("expected alpha before zeta, got %v", lines)
	}
}
