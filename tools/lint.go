// Package tools holds static analysis that runs alongside, but never
// changes, the S1-S4 assembly pipeline. Its findings are read-only
// advice surfaced by -lint; encoding proceeds (or fails) exactly as it
// would without this package in the import graph.
package tools

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsnhynh/riscv-oom/parser"
)

// LintLevel represents the severity of a lint finding.
type LintLevel int

const (
	LintError   LintLevel = iota // would also fail S2/S3, reported earlier and with a suggestion
	LintWarning                  // never fatal to assembly: unused symbols, duplicate definitions
)

func (l LintLevel) String() string {
	switch l {
	case LintError:
		return "error"
	case LintWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// LintIssue is a single finding, anchored to a source position the same
// way parser.Error is.
type LintIssue struct {
	Level   LintLevel
	Pos     parser.Position
	Message string
	Code    string
}

func (i *LintIssue) String() string {
	return fmt.Sprintf("%s: %s: %s [%s]", i.Pos, i.Level, i.Message, i.Code)
}

// LintOptions controls linter behavior.
type LintOptions struct {
	Strict         bool // treat warnings as errors in the issue Level reported
	CheckUnused    bool // warn about labels defined but never branched/jumped/la'd to
	CheckUnusedEqu bool // warn about .equ constants defined but never used by li
	SuggestFixes   bool // attach a "did you mean" suggestion to undefined-label errors
}

// DefaultLintOptions returns the linter's default behavior.
func DefaultLintOptions() *LintOptions {
	return &LintOptions{
		Strict:         false,
		CheckUnused:    true,
		CheckUnusedEqu: true,
		SuggestFixes:   true,
	}
}

// Linter performs static analysis over RV32I source without running S2
// layout: layout aborts at the first duplicate label or .equ, but lint's
// job is to surface every issue it can find in one pass, including ones
// a real assemble would never reach.
type Linter struct {
	options *LintOptions
	issues  []*LintIssue

	definedLabels map[string]parser.Position
	usedLabels    map[string]bool
	definedEqus   map[string]parser.Position
	usedEqus      map[string]bool
}

// NewLinter creates a linter with the given options, or defaults if nil.
func NewLinter(options *LintOptions) *Linter {
	if options == nil {
		options = DefaultLintOptions()
	}
	return &Linter{
		options:       options,
		definedLabels: make(map[string]parser.Position),
		usedLabels:    make(map[string]bool),
		definedEqus:   make(map[string]parser.Position),
		usedEqus:      make(map[string]bool),
	}
}

// Lint analyzes source and returns every finding, sorted by position.
func (l *Linter) Lint(source, filename string) []*LintIssue {
	lexer := parser.NewLexer(source, filename)
	statements, err := lexer.Lex()
	if err != nil {
		l.issues = append(l.issues, &LintIssue{
			Level:   LintError,
			Pos:     parser.Position{Filename: filename, Line: 1, Column: 1},
			Message: err.Error(),
			Code:    "LEX_ERROR",
		})
		return l.issues
	}

	l.collectDefinitions(statements)
	l.checkReferences(statements)

	if l.options.CheckUnused {
		l.checkUnusedLabels()
	}
	if l.options.CheckUnusedEqu {
		l.checkUnusedEqus()
	}

	if l.options.Strict {
		for _, issue := range l.issues {
			issue.Level = LintError
		}
	}

	sort.Slice(l.issues, func(i, j int) bool {
		a, b := l.issues[i].Pos, l.issues[j].Pos
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})

	return l.issues
}

// HasErrors reports whether issues contains any LintError-level finding,
// used by the CLI to decide -strict's exit code.
func HasErrors(issues []*LintIssue) bool {
	for _, issue := range issues {
		if issue.Level == LintError {
			return true
		}
	}
	return false
}

// collectDefinitions walks every statement once, recording labels and
// .equ names and flagging duplicates as warnings (not the fatal error
// parser.SymbolTable.Define would raise, since lint keeps scanning).
func (l *Linter) collectDefinitions(statements []*parser.Statement) {
	for _, stmt := range statements {
		for _, label := range stmt.Labels {
			if first, dup := l.definedLabels[label]; dup {
				l.issues = append(l.issues, &LintIssue{
					Level:   LintWarning,
					Pos:     stmt.Pos,
					Message: fmt.Sprintf("label %q already defined at %s", label, first),
					Code:    "DUPLICATE_LABEL",
				})
				continue
			}
			l.definedLabels[label] = stmt.Pos
		}

		if stmt.Kind == parser.StmtEqu {
			if first, dup := l.definedEqus[stmt.EquName]; dup {
				l.issues = append(l.issues, &LintIssue{
					Level:   LintWarning,
					Pos:     stmt.Pos,
					Message: fmt.Sprintf("constant %q already defined at %s", stmt.EquName, first),
					Code:    "DUPLICATE_EQU",
				})
				continue
			}
			l.definedEqus[stmt.EquName] = stmt.Pos
		}
	}
}

// labelOperandIndex names, for every mnemonic that takes a label target,
// which operand carries it. j and call take the target as their only
// operand, index 0.
var labelOperandIndex = map[string]int{
	"jal": 1, "j": 0, "call": 0, "la": 1,
	"beq": 2, "bne": 2, "blt": 2, "bge": 2, "bltu": 2, "bgeu": 2,
	"beqz": 1, "bnez": 1, "bltz": 1, "bgez": 1, "blez": 1, "bgtz": 1,
}

// checkReferences scans every instruction for a label or .equ-constant
// reference and records undefined ones as errors and defined ones as
// used, mirroring the encoder's own resolution rules closely enough to
// catch the same UnknownLabel/UnknownSymbol cases earlier.
func (l *Linter) checkReferences(statements []*parser.Statement) {
	for _, stmt := range statements {
		if stmt.Kind != parser.StmtInstruction {
			continue
		}

		if idx, ok := labelOperandIndex[stmt.Mnemonic]; ok && idx < len(stmt.Operands) {
			target := stmt.Operands[idx]
			if stmt.Mnemonic == "jal" && strings.HasPrefix(strings.ToLower(strings.TrimPrefix(target, "-")), "0x") {
				continue // raw hex jal immediate, not a label reference
			}
			l.checkLabelReference(target, stmt.Pos)
		}

		if stmt.Mnemonic == "li" && len(stmt.Operands) == 2 && !looksNumeric(stmt.Operands[1]) {
			name := stmt.Operands[1]
			l.usedEqus[name] = true
			if _, ok := l.definedEqus[name]; !ok {
				l.issues = append(l.issues, &LintIssue{
					Level:   LintError,
					Pos:     stmt.Pos,
					Message: fmt.Sprintf("undefined symbol %q", name),
					Code:    "UNDEF_SYMBOL",
				})
			}
		}
	}
}

func (l *Linter) checkLabelReference(label string, pos parser.Position) {
	l.usedLabels[label] = true
	if _, ok := l.definedLabels[label]; ok {
		return
	}
	msg := fmt.Sprintf("undefined label %q", label)
	if l.options.SuggestFixes {
		if sug := l.findSimilarLabel(label); sug != "" {
			msg += fmt.Sprintf(" (did you mean %q?)", sug)
		}
	}
	l.issues = append(l.issues, &LintIssue{
		Level:   LintError,
		Pos:     pos,
		Message: msg,
		Code:    "UNDEF_LABEL",
	})
}

func (l *Linter) checkUnusedLabels() {
	for label, pos := range l.definedLabels {
		if l.usedLabels[label] {
			continue
		}
		l.issues = append(l.issues, &LintIssue{
			Level:   LintWarning,
			Pos:     pos,
			Message: fmt.Sprintf("label %q defined but never referenced", label),
			Code:    "UNUSED_LABEL",
		})
	}
}

func (l *Linter) checkUnusedEqus() {
	for name, pos := range l.definedEqus {
		if l.usedEqus[name] {
			continue
		}
		l.issues = append(l.issues, &LintIssue{
			Level:   LintWarning,
			Pos:     pos,
			Message: fmt.Sprintf("constant %q defined but never referenced", name),
			Code:    "UNUSED_EQU",
		})
	}
}

// findSimilarLabel suggests a defined label within edit distance 3 of
// target, for an undefined-label error message.
func (l *Linter) findSimilarLabel(target string) string {
	best := ""
	bestDist := 4
	for label := range l.definedLabels {
		d := levenshteinDistance(label, target)
		if d < bestDist {
			best = label
			bestDist = d
		}
	}
	return best
}

// levenshteinDistance computes edit distance between two strings.
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = minInt(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func minInt(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// looksNumeric mirrors encoder.looksNumeric: an operand shaped like a
// numeric literal (optional '-', then a digit) rather than a bare
// identifier.
func looksNumeric(operand string) bool {
	s := strings.TrimPrefix(operand, "-")
	if s == "" {
		return false
	}
	return s[0] >= '0' && s[0] <= '9'
}
