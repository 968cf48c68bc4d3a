package tools

import "testing"

func issueCodes(issues []*LintIssue) map[string]int {
	counts := make(map[string]int)
	for _, issue := range issues {
		counts[issue.Code]++
	}
	return counts
}

func TestLintUndefinedLabel(t *testing.T) {
	src := "beq x0, x0, loop\n"
	issues := NewLinter(nil).Lint(src, "t.s")
	counts := issueCodes(issues)
	if counts["UNDEF_LABEL"] != 1 {
		t.Fatalf("expected 1 UNDEF_LABEL, got %v", counts)
	}
}

func TestLintUndefinedLabelSuggestsSimilarName(t *testing.T) {
	src := "loop: beq x0, x0, lop\n"
	issues := NewLinter(nil).Lint(src, "t.s")
	found := false
	for _, issue := range issues {
		if issue.Code == "UNDEF_LABEL" {
			found = true
			if !contains(issue.Message, "loop") {
				t.Errorf("expected suggestion mentioning %q, got %q", "loop", issue.Message)
			}
		}
	}
	if !found {
		t.Fatal("expected an UNDEF_LABEL finding")
	}
}

func TestLintNoIssuesForWellFormedProgram(t *testing.T) {
	src := "loop: beq x0, x0, loop\n"
	issues := NewLinter(nil).Lint(src, "t.s")
	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}
}

func TestLintUnusedLabel(t *testing.T) {
	src := "loop: addi x0, x0, 0\nj end\nend: addi x0, x0, 0\n"
	issues := NewLinter(nil).Lint(src, "t.s")
	counts := issueCodes(issues)
	if counts["UNUSED_LABEL"] != 1 {
		t.Fatalf("expected 1 UNUSED_LABEL (loop), got %v", counts)
	}
}

func TestLintDuplicateLabel(t *testing.T) {
	src := "loop: addi x0, x0, 0\nloop: addi x0, x0, 0\n"
	issues := NewLinter(nil).Lint(src, "t.s")
	counts := issueCodes(issues)
	if counts["DUPLICATE_LABEL"] != 1 {
		t.Fatalf("expected 1 DUPLICATE_LABEL, got %v", counts)
	}
}

func TestLintDuplicateEqu(t *testing.T) {
	src := ".equ FOO, 0x1\n.equ FOO, 0x2\n"
	issues := NewLinter(nil).Lint(src, "t.s")
	counts := issueCodes(issues)
	if counts["DUPLICATE_EQU"] != 1 {
		t.Fatalf("expected 1 DUPLICATE_EQU, got %v", counts)
	}
}

func TestLintUnusedEqu(t *testing.T) {
	src := ".equ FOO, 0x1234\naddi x0, x0, 0\n"
	issues := NewLinter(nil).Lint(src, "t.s")
	counts := issueCodes(issues)
	if counts["UNUSED_EQU"] != 1 {
		t.Fatalf("expected 1 UNUSED_EQU, got %v", counts)
	}
}

func TestLintEquUsedByLiIsNotUnused(t *testing.T) {
	src := ".equ FOO, 0x1234\nli x1, FOO\n"
	issues := NewLinter(nil).Lint(src, "t.s")
	counts := issueCodes(issues)
	if counts["UNUSED_EQU"] != 0 {
		t.Fatalf("expected no UNUSED_EQU, got %v", counts)
	}
}

func TestLintUndefinedSymbolInLi(t *testing.T) {
	src := "li x1, BAR\n"
	issues := NewLinter(nil).Lint(src, "t.s")
	counts := issueCodes(issues)
	if counts["UNDEF_SYMBOL"] != 1 {
		t.Fatalf("expected 1 UNDEF_SYMBOL, got %v", counts)
	}
}

func TestLintRawHexJalIsNotALabelReference(t *testing.T) {
	src := "jal x1, 0x100\n"
	issues := NewLinter(nil).Lint(src, "t.s")
	if len(issues) != 0 {
		t.Fatalf("expected no issues for raw hex jal, got %v", issues)
	}
}

func TestLintRawHexJTargetIsUndefinedLabel(t *testing.T) {
	src := "j 0x100\n"
	issues := NewLinter(nil).Lint(src, "t.s")
	counts := issueCodes(issues)
	if counts["UNDEF_LABEL"] != 1 {
		t.Fatalf("expected j's raw hex target to be flagged as an undefined label, got %v", counts)
	}
}

func TestLintStrictPromotesWarningsToErrors(t *testing.T) {
	src := "loop: addi x0, x0, 0\n"
	opts := DefaultLintOptions()
	opts.Strict = true
	issues := NewLinter(opts).Lint(src, "t.s")
	if len(issues) == 0 {
		t.Fatal("expected at least one issue (unused label)")
	}
	for _, issue := range issues {
		if issue.Level != LintError {
			t.Errorf("expected strict mode to promote %v to error, got %v", issue.Code, issue.Level)
		}
	}
	if !HasErrors(issues) {
		t.Error("expected HasErrors to report true under strict mode")
	}
}

func TestLintCheckUnusedDisabled(t *testing.T) {
	src := "loop: addi x0, x0, 0\n"
	opts := DefaultLintOptions()
	opts.CheckUnused = false
	issues := NewLinter(opts).Lint(src, "t.s")
	if len(issues) != 0 {
		t.Fatalf("expected no issues with CheckUnused disabled, got %v", issues)
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
