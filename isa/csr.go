package isa

// csrAddresses maps the fixed CSR mnemonic set this assembler supports
// to their 12-bit addresses. The full RISC-V CSR space is much larger;
// restricting it to the three the simulator actually initializes makes
// any other CSR name a BadOperandForm failure rather than silently
// accepting a CSR name with no backing hardware.
var csrAddresses = map[string]uint16{
	"mie":   0x304,
	"mtvec": 0x305,
	"mepc":  0x341,
}

// CSR resolves a CSR mnemonic to its 12-bit address.
func CSR(name string) (uint16, bool) {
	addr, ok := csrAddresses[name]
	return addr, ok
}
