// Package listing renders an assembled Program as a human-readable
// address/hex/source listing, either as plain text (Print) or as an
// interactive scrollable browser (Browse).
package listing

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jsnhynh/riscv-oom/config"
	"github.com/jsnhynh/riscv-oom/parser"
)

// Row is one source line paired with the word(s) S3 encoded for it, if
// any. A label-only or .equ line has no words.
type Row struct {
	Address   uint32
	HasWords  bool
	Words     []uint32
	Source    string
	Line      int
	Labels    []string
}

// Rows walks program.Statements in order and zips each instruction
// statement with its slice of the encoded word stream, relying on the
// same word-count bookkeeping S3 already verified in Assemble.
func Rows(program *parser.Program, words []uint32) []Row {
	rows := make([]Row, 0, len(program.Statements))
	cursor := 0
	for _, stmt := range program.Statements {
		row := Row{
			Address: stmt.Address,
			Source:  stmt.Raw,
			Line:    stmt.Pos.Line,
			Labels:  stmt.Labels,
		}
		if stmt.Kind == parser.StmtInstruction && stmt.WordCount > 0 {
			row.HasWords = true
			row.Words = words[cursor : cursor+stmt.WordCount]
			cursor += stmt.WordCount
		}
		rows = append(rows, row)
	}
	return rows
}

// Print writes one line per Row: the address and leading encoded word(s)
// (if any) followed by the original source text. cfg.Listing.BytesPerRow
// sets how many bytes' worth of words are grouped onto the address's own
// line before spilling to continuation lines at address+4*n; a two-word
// pseudo-op (li, la) with the default 4-byte grouping spills its second
// word onto its own line, while a BytesPerRow of 8 or more keeps the pair
// together. When cfg.Listing.ShowSymbols is set, the label table is
// appended after the listing.
func Print(w io.Writer, program *parser.Program, words []uint32, cfg *config.Config) error {
	bw := bufio.NewWriter(w)
	perRow := wordsPerRow(cfg)

	for _, row := range Rows(program, words) {
		if !row.HasWords {
			fmt.Fprintf(bw, "%-8s %-8s  %s\n", "", "", row.Source)
			continue
		}
		for i := 0; i < len(row.Words); i += perRow {
			end := i + perRow
			if end > len(row.Words) {
				end = len(row.Words)
			}
			addr := row.Address + uint32(4*i)
			hex := ""
			for _, word := range row.Words[i:end] {
				hex += fmt.Sprintf("%08x ", word)
			}
			if i == 0 {
				fmt.Fprintf(bw, "%08X %s  %s\n", addr, strings.TrimSpace(hex), row.Source)
			} else {
				fmt.Fprintf(bw, "%08X %s\n", addr, strings.TrimSpace(hex))
			}
		}
	}

	if cfg.Listing.ShowSymbols {
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, "Symbols")
		fmt.Fprintln(bw, "=======")
		for _, line := range SymbolLines(program) {
			fmt.Fprintln(bw, line)
		}
	}

	return bw.Flush()
}

// wordsPerRow converts cfg's byte-width grouping into a word count,
// never fewer than one word per line.
func wordsPerRow(cfg *config.Config) int {
	n := cfg.Listing.BytesPerRow / 4
	if n < 1 {
		n = 1
	}
	return n
}

// SymbolLines renders the label table as sorted "name = address" text,
// shared by -dump-symbols-adjacent output and the browser's symbol pane.
func SymbolLines(program *parser.Program) []string {
	labels := program.Labels.All()
	names := make([]string, 0, len(labels))
	for name := range labels {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		sym := labels[name]
		lines = append(lines, fmt.Sprintf("%-24s 0x%08X", name, sym.Address))
	}
	return lines
}
