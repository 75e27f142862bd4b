package cpu

import (
	"fmt"
	"strings"
)

// Code is an opcode byte.
type Code uint8

// Opcode layout.
const (
	CODE_OPERANDS_SHIFT = 6                 // Operand count, bits 7-6.
	CODE_OPERANDS_MASK  = Code(0b11 << 6)   // Mask of the operand count.
	CODE_ALU            = Code(0b1 << 5)    // ALU class opcode.
	CODE_SETS_PC        = Code(0b1 << 4)    // Handler places the PC.
	CODE_ID_MASK        = Code(0b1111 << 0) // Instruction identifier.
)

const (
	OP_HLT  = Code(0b00000001) // HLT
	OP_RET  = Code(0b00010001) // RET
	OP_PUSH = Code(0b01000101) // PUSH
	OP_POP  = Code(0b01000110) // POP
	OP_PRN  = Code(0b01000111) // PRN
	OP_CALL = Code(0b01010000) // CALL
	OP_JMP  = Code(0b01010100) // JMP
	OP_JEQ  = Code(0b01010101) // JEQ
	OP_JNE  = Code(0b01010110) // JNE
	OP_NOT  = Code(0b01101001) // NOT
	OP_LDI  = Code(0b10000010) // LDI
	OP_ADD  = Code(0b10100000) // ADD
	OP_SUB  = Code(0b10100001) // SUB
	OP_MUL  = Code(0b10100010) // MUL
	OP_DIV  = Code(0b10100011) // DIV
	OP_MOD  = Code(0b10100100) // MOD
	OP_CMP  = Code(0b10100111) // CMP
	OP_AND  = Code(0b10101000) // AND
	OP_OR   = Code(0b10101010) // OR
	OP_XOR  = Code(0b10101011) // XOR
	OP_SHL  = Code(0b10101100) // SHL
	OP_SHR  = Code(0b10101101) // SHR
)

var codeName = map[Code]string{
	OP_HLT:  "HLT",
	OP_RET:  "RET",
	OP_PUSH: "PUSH",
	OP_POP:  "POP",
	OP_PRN:  "PRN",
	OP_CALL: "CALL",
	OP_JMP:  "JMP",
	OP_JEQ:  "JEQ",
	OP_JNE:  "JNE",
	OP_NOT:  "NOT",
	OP_LDI:  "LDI",
	OP_ADD:  "ADD",
	OP_SUB:  "SUB",
	OP_MUL:  "MUL",
	OP_DIV:  "DIV",
	OP_MOD:  "MOD",
	OP_CMP:  "CMP",
	OP_AND:  "AND",
	OP_OR:   "OR",
	OP_XOR:  "XOR",
	OP_SHL:  "SHL",
	OP_SHR:  "SHR",
}

var codeByName = func() map[string]Code {
	names := make(map[string]Code, len(codeName))
	for code, name := range codeName {
		names[name] = code
	}
	return names
}()

// CodeByName returns the opcode for a mnemonic, ignoring case.
func CodeByName(name string) (code Code, ok bool) {
	code, ok = codeByName[strings.ToUpper(name)]
	return
}

// MakeCode assembles an opcode from its layout fields.
func MakeCode(operands int, alu bool, setsPc bool, id uint8) (code Code) {
	code = (Code(operands) << CODE_OPERANDS_SHIFT) & CODE_OPERANDS_MASK
	if alu {
		code |= CODE_ALU
	}
	if setsPc {
		code |= CODE_SETS_PC
	}
	code |= Code(id) & CODE_ID_MASK
	return
}

// Operands returns the number of operand bytes following the opcode.
func (code Code) Operands() int {
	return int((code & CODE_OPERANDS_MASK) >> CODE_OPERANDS_SHIFT)
}

// Size returns the length of the instruction in bytes.
func (code Code) Size() int {
	return 1 + code.Operands()
}

// IsAlu returns true for ALU class opcodes.
func (code Code) IsAlu() bool {
	return code&CODE_ALU != 0
}

// SetsPc returns true if the instruction handler places the PC itself.
func (code Code) SetsPc() bool {
	return code&CODE_SETS_PC != 0
}

// AluDecode returns the ALU operation of an ALU class opcode.
func (code Code) AluDecode() CodeAluOp {
	return CodeAluOp(code & CODE_ID_MASK)
}

// String returns the mnemonic, or the binary literal for unknown opcodes.
func (code Code) String() string {
	name, ok := codeName[code]
	if ok {
		return name
	}

	return fmt.Sprintf("0b%08b", uint8(code))
}

// Instruction is a decoded opcode and its operand bytes.
// Operands beyond the opcode's operand count are zero.
type Instruction struct {
	Code Code
	A    uint8
	B    uint8
}

// String returns the assembly language representation of the instruction.
func (ins Instruction) String() (out string) {
	out = ins.Code.String()

	operands := []uint8{ins.A, ins.B}
	for n := range min(ins.Code.Operands(), len(operands)) {
		sep := ","
		if n == 0 {
			sep = " "
		}
		value := operands[n]
		if ins.Code == OP_LDI && n == 1 {
			out += fmt.Sprintf("%v%d", sep, value)
		} else {
			out += fmt.Sprintf("%vR%d", sep, value)
		}
	}

	return
}
