package encoder

// WordSize is the size in bytes of one encoded instruction word.
const WordSize = 4

// Opcode values (bits 6:0) for the instruction formats this assembler
// emits. Named per the RISC-V ISA manual's format tables, not derived
// from any source transcription.
const (
	OpcodeLUI    = 0b0110111
	OpcodeAUIPC  = 0b0010111
	OpcodeJAL    = 0b1101111
	OpcodeJALR   = 0b1100111
	OpcodeBranch = 0b1100011
	OpcodeLoad   = 0b0000011
	OpcodeStore  = 0b0100011
	OpcodeOpImm  = 0b0010011 // I-type ALU and shift-immediate
	OpcodeOp     = 0b0110011 // R-type
	OpcodeSystem = 0b1110011 // CSR instructions, mret
)

// funct3 values, grouped by the opcode family they appear under.
const (
	Funct3Beq  = 0b000
	Funct3Bne  = 0b001
	Funct3Blt  = 0b100
	Funct3Bge  = 0b101
	Funct3Bltu = 0b110
	Funct3Bgeu = 0b111

	Funct3Lb  = 0b000
	Funct3Lh  = 0b001
	Funct3Lw  = 0b010
	Funct3Lbu = 0b100
	Funct3Lhu = 0b101

	Funct3Sb = 0b000
	Funct3Sh = 0b001
	Funct3Sw = 0b010

	Funct3Addi = 0b000
	Funct3Slli = 0b001
	Funct3Slti = 0b010
	Funct3Sltiu = 0b011
	Funct3Xori = 0b100
	Funct3Srli = 0b101 // also Srai, distinguished by funct7
	Funct3Ori  = 0b110
	Funct3Andi = 0b111

	Funct3Add  = 0b000 // also Sub and Mul, distinguished by funct7
	Funct3Sll  = 0b001
	Funct3Slt  = 0b010
	Funct3Sltu = 0b011
	Funct3Xor  = 0b100 // also Div, distinguished by funct7
	Funct3Srl  = 0b101 // also Sra, distinguished by funct7
	Funct3Or   = 0b110
	Funct3And  = 0b111

	Funct3Jalr  = 0b000
	Funct3Csrrw = 0b001
)

// funct7 values that disambiguate same-funct3 R-type and shift-immediate
// instructions.
const (
	Funct7Zero = 0b0000000
	Funct7Alt  = 0b0100000 // Sub, Sra
	Funct7M    = 0b0000001 // Mul, Div (RV32M)
)

// MretWord is the fixed encoding of the mret instruction: spec.md §4.3.3
// gives it as a literal constant rather than a field layout.
const MretWord uint32 = 0x30200073

// Field width limits used by immediate range checks. Branch and JAL
// offsets are byte counts; the ISA requires them to be even, and
// spec.md §9 adopts the REDESIGN FLAG rejecting odd offsets.
const (
	Imm12Min = -2048
	Imm12Max = 2047

	Imm20UnsignedMax = 1<<20 - 1

	BranchOffsetMin = -4096
	BranchOffsetMax = 4095

	JALOffsetMin = -1 << 20
	JALOffsetMax = 1<<20 - 1
)
