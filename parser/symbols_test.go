package parser

import "testing"

func TestSymbolTableDefineAndLookup(t *testing.T) {
	st := NewSymbolTable()
	if err := st.Define("loop", 0x100, Position{Line: 1}); err != nil {
		t.Fatalf("Define failed: %v", err)
	}
	sym, ok := st.Lookup("loop")
	if !ok {
		t.Fatal("expected 'loop' to be found")
	}
	if sym.Address != 0x100 {
		t.Errorf("expected address 0x100, got 0x%X", sym.Address)
	}
}

func TestSymbolTableRedefinitionFails(t *testing.T) {
	st := NewSymbolTable()
	_ = st.Define("loop", 0, Position{Line: 1})
	if err := st.Define("loop", 4, Position{Line: 2}); err == nil {
		t.Fatal("expected redefinition to fail")
	}
}

func TestSymbolTableGetUndefinedFails(t *testing.T) {
	st := NewSymbolTable()
	if _, err := st.Get("missing"); err == nil {
		t.Fatal("expected Get to fail for an undefined label")
	}
}

func TestConstantTableDefineAndGet(t *testing.T) {
	ct := NewConstantTable()
	if err := ct.Define("MASK", 0xFF, Position{Line: 1}); err != nil {
		t.Fatalf("Define failed: %v", err)
	}
	v, err := ct.Get("MASK")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if v != 0xFF {
		t.Errorf("expected 0xFF, got 0x%X", v)
	}
}

func TestConstantTableRedefinitionFails(t *testing.T) {
	ct := NewConstantTable()
	_ = ct.Define("MASK", 0xFF, Position{Line: 1})
	if err := ct.Define("MASK", 0x00, Position{Line: 2}); err == nil {
		t.Fatal("expected redefinition to fail")
	}
}

func TestConstantTableUnusedTracksUnreferencedConstants(t *testing.T) {
	ct := NewConstantTable()
	_ = ct.Define("USED", 0x1, Position{Line: 1})
	_ = ct.Define("UNUSED", 0x2, Position{Line: 2})
	_, _ = ct.Get("USED")

	unused := ct.Unused()
	if len(unused) != 1 || unused[0].Name != "UNUSED" {
		t.Errorf("expected only UNUSED to be reported, got %v", unused)
	}
}

func TestConstantTableHasDoesNotCountAsUse(t *testing.T) {
	ct := NewConstantTable()
	_ = ct.Define("FOO", 0x1, Position{Line: 1})
	if !ct.Has("FOO") {
		t.Error("expected Has to report true")
	}
	unused := ct.Unused()
	if len(unused) != 1 {
		t.Errorf("expected Has to not count as a use, got %v", unused)
	}
}
