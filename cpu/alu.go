package cpu

import (
	"log"
)

// CodeAluOp is an ALU operation type. The values are the low nibble of the
// ALU class opcodes.
type CodeAluOp int

//go:generate go tool stringer -linecomment -type=CodeAluOp
const (
	ALU_OP_ADD = CodeAluOp(0x0) // add
	ALU_OP_SUB = CodeAluOp(0x1) // sub
	ALU_OP_MUL = CodeAluOp(0x2) // mul
	ALU_OP_DIV = CodeAluOp(0x3) // div
	ALU_OP_MOD = CodeAluOp(0x4) // mod
	ALU_OP_CMP = CodeAluOp(0x7) // cmp
	ALU_OP_AND = CodeAluOp(0x8) // and
	ALU_OP_NOT = CodeAluOp(0x9) // not
	ALU_OP_OR  = CodeAluOp(0xa) // or
	ALU_OP_XOR = CodeAluOp(0xb) // xor
	ALU_OP_SHL = CodeAluOp(0xc) // shl
	ALU_OP_SHR = CodeAluOp(0xd) // shr
)

// Apply computes the 8-bit result of the operation on input and value.
// CMP has no result; use Compare for its flags.
func (op CodeAluOp) Apply(input uint8, value uint8) (output uint8, err error) {
	a := int(input)
	b := int(value)

	var result int
	switch op {
	case ALU_OP_ADD:
		result = a + b
	case ALU_OP_SUB:
		result = a - b
	case ALU_OP_MUL:
		result = a * b
	case ALU_OP_DIV:
		if b == 0 {
			err = ErrDivisionByZero
			return
		}
		result = a / b
	case ALU_OP_MOD:
		if b == 0 {
			err = ErrDivisionByZero
			return
		}
		result = a % b
	case ALU_OP_AND:
		result = a & b
	case ALU_OP_OR:
		result = a | b
	case ALU_OP_XOR:
		result = a ^ b
	case ALU_OP_NOT:
		result = ^a
	case ALU_OP_SHL:
		result = a << b
	case ALU_OP_SHR:
		result = a >> b
	default:
		err = ErrAluOp(op)
		return
	}

	output = uint8(result & 0xff)
	return
}

// Alu performs the operation on registers a and b, writing the result back
// to register a. CMP updates the flags instead.
func (cpu *Cpu) Alu(op CodeAluOp, a, b uint8) (err error) {
	input, err := cpu.Register.Get(int(a))
	if err != nil {
		return
	}

	var value uint8
	if op != ALU_OP_NOT {
		value, err = cpu.Register.Get(int(b))
		if err != nil {
			return
		}
	}

	if op == ALU_OP_CMP {
		cpu.Flags = Compare(input, value)
		if cpu.Verbose {
			log.Printf("cpu: cmp r%d=%d r%d=%d: %v", a, input, b, value, cpu.Flags)
		}
		return
	}

	output, err := op.Apply(input, value)
	if err != nil {
		return
	}

	err = cpu.Register.Set(int(a), int(output))
	return
}
