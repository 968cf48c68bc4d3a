package assemble

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsnhynh/riscv-oom/config"
)

func TestSourceRunsFullPipeline(t *testing.T) {
	cfg := config.DefaultConfig()
	result, err := Source("L: beq x0, x0, L\n", "t.s", cfg)
	if err != nil {
		t.Fatalf("Source failed: %v", err)
	}
	if len(result.Words) != 1 || result.Words[0] != 0x00000063 {
		t.Errorf("want [00000063], got %x", result.Words)
	}
}

func TestFileReadsFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.s")
	if err := os.WriteFile(path, []byte("addi x1, x0, 1\n"), 0600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	cfg := config.DefaultConfig()
	result, err := File(path, cfg)
	if err != nil {
		t.Fatalf("File failed: %v", err)
	}
	if result.Words[0] != 0x00100093 {
		t.Errorf("want 00100093, got %08x", result.Words[0])
	}
}

func TestFileMissingInputFails(t *testing.T) {
	cfg := config.DefaultConfig()
	if _, err := File("/nonexistent/prog.s", cfg); err == nil {
		t.Fatal("expected an error for a missing input file")
	}
}

func TestPolicyFromConfigWiresOpenQuestionFlags(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Assemble.AllowRawJALHex = false
	cfg.Assemble.RejectOddOffsets = false

	policy := PolicyFromConfig(cfg)
	if policy.AllowRawJALHex {
		t.Error("expected AllowRawJALHex to carry through as false")
	}
	if policy.RejectOddOffsets {
		t.Error("expected RejectOddOffsets to carry through as false")
	}
}

func TestEmitUsesConfiguredCaseAndLineEnding(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Output.UppercaseHex = true
	cfg.Output.LineEnding = "\r\n"

	result, err := Source("addi x1, x0, 1\n", "t.s", cfg)
	if err != nil {
		t.Fatalf("Source failed: %v", err)
	}

	var buf strings.Builder
	if err := Emit(&buf, result, cfg); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	want := "00100093\r\n"
	if strings.ToUpper(want) != buf.String() {
		t.Errorf("want %q, got %q", strings.ToUpper(want), buf.String())
	}
}

func TestEmitDefaultsToLowercaseWithNewline(t *testing.T) {
	cfg := config.DefaultConfig()
	result, err := Source("addi x1, x0, 1\n", "t.s", cfg)
	if err != nil {
		t.Fatalf("Source failed: %v", err)
	}

	var buf strings.Builder
	if err := Emit(&buf, result, cfg); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	if buf.String() != "00100093\n" {
		t.Errorf("want 00100093\\n, got %q", buf.String())
	}
}

func TestSourcePropagatesEncodingErrors(t *testing.T) {
	cfg := config.DefaultConfig()
	if _, err := Source("addi x1, x0, 99999\n", "t.s", cfg); err == nil {
		t.Fatal("expected an immediate-overflow error to propagate")
	}
}

func TestSourcePropagatesLayoutErrors(t *testing.T) {
	cfg := config.DefaultConfig()
	if _, err := Source("loop: addi x0, x0, 0\nloop: addi x0, x0, 0\n", "t.s", cfg); err == nil {
		t.Fatal("expected a duplicate-label error to propagate")
	}
}
