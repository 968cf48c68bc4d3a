package isa

import "testing"

func TestRegisterResolvesABINames(t *testing.T) {
	cases := map[string]uint8{
		"x0": 0, "ra": 1, "sp": 2, "tp": 4, "a0": 10, "s11": 27, "t6": 31,
	}
	for name, want := range cases {
		got, ok := Register(name)
		if !ok {
			t.Errorf("expected %q to resolve", name)
			continue
		}
		if got != want {
			t.Errorf("%q: want %d, got %d", name, want, got)
		}
	}
}

func TestRegisterRejectsGpAndFp(t *testing.T) {
	if _, ok := Register("gp"); ok {
		t.Error("expected 'gp' to be absent from the register table")
	}
	if _, ok := Register("fp"); ok {
		t.Error("expected 'fp' to be absent from the register table")
	}
}

func TestMustRegisterPanicsOnUnknownName(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected MustRegister to panic on an unknown name")
		}
	}()
	MustRegister("nope")
}

func TestWordCountPseudoOpsAreTwoWords(t *testing.T) {
	for _, mnemonic := range []string{"li", "la"} {
		n, ok := WordCount(mnemonic)
		if !ok || n != 2 {
			t.Errorf("%q: want word count 2, got %d (ok=%v)", mnemonic, n, ok)
		}
	}
}

func TestWordCountEverythingElseIsOneWord(t *testing.T) {
	for _, mnemonic := range []string{"addi", "lui", "jal", "beq", "mv", "ret", "mret"} {
		n, ok := WordCount(mnemonic)
		if !ok || n != 1 {
			t.Errorf("%q: want word count 1, got %d (ok=%v)", mnemonic, n, ok)
		}
	}
}

func TestWordCountUnknownMnemonic(t *testing.T) {
	if _, ok := WordCount("frobnicate"); ok {
		t.Error("expected an unknown mnemonic to report ok=false")
	}
}

func TestCSRRestrictedSet(t *testing.T) {
	cases := map[string]uint16{"mie": 0x304, "mtvec": 0x305, "mepc": 0x341}
	for name, want := range cases {
		got, ok := CSR(name)
		if !ok || got != want {
			t.Errorf("%q: want 0x%X, got 0x%X (ok=%v)", name, want, got, ok)
		}
	}
}

func TestCSRUnknownName(t *testing.T) {
	if _, ok := CSR("mstatus"); ok {
		t.Error("expected mstatus to be outside the restricted CSR set")
	}
}
