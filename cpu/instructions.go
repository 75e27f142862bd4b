package cpu

import (
	"log"
)

// Handler executes a decoded instruction.
type Handler func(cpu *Cpu, ins Instruction) error

// dispatch maps each opcode to its handler. It is never modified after
// package initialization.
var dispatch = map[Code]Handler{
	OP_LDI:  (*Cpu).opLdi,
	OP_PRN:  (*Cpu).opPrn,
	OP_HLT:  (*Cpu).opHlt,
	OP_ADD:  (*Cpu).opAlu,
	OP_SUB:  (*Cpu).opAlu,
	OP_MUL:  (*Cpu).opAlu,
	OP_DIV:  (*Cpu).opAlu,
	OP_MOD:  (*Cpu).opAlu,
	OP_CMP:  (*Cpu).opAlu,
	OP_AND:  (*Cpu).opAlu,
	OP_OR:   (*Cpu).opAlu,
	OP_XOR:  (*Cpu).opAlu,
	OP_NOT:  (*Cpu).opAlu,
	OP_SHL:  (*Cpu).opAlu,
	OP_SHR:  (*Cpu).opAlu,
	OP_PUSH: (*Cpu).opPush,
	OP_POP:  (*Cpu).opPop,
	OP_CALL: (*Cpu).opCall,
	OP_RET:  (*Cpu).opRet,
	OP_JMP:  (*Cpu).opJmp,
	OP_JEQ:  (*Cpu).opJeq,
	OP_JNE:  (*Cpu).opJne,
}

// Lookup returns the handler for an opcode.
func Lookup(code Code) (handler Handler, ok bool) {
	handler, ok = dispatch[code]
	return
}

// LDI r, imm: r = imm
func (cpu *Cpu) opLdi(ins Instruction) error {
	return cpu.Register.Set(int(ins.A), int(ins.B))
}

// PRN r: send r to the output channel.
func (cpu *Cpu) opPrn(ins Instruction) (err error) {
	value, err := cpu.Register.Get(int(ins.A))
	if err != nil {
		return
	}

	if cpu.channel == nil {
		if cpu.Verbose {
			log.Printf("cpu: prn %d (no channel)", value)
		}
		return
	}

	err = cpu.channel.Send(value)
	return
}

// HLT
func (cpu *Cpu) opHlt(ins Instruction) error {
	cpu.Stop()
	return nil
}

func (cpu *Cpu) opAlu(ins Instruction) error {
	return cpu.Alu(ins.Code.AluDecode(), ins.A, ins.B)
}

// PUSH r
func (cpu *Cpu) opPush(ins Instruction) (err error) {
	value, err := cpu.Register.Get(int(ins.A))
	if err != nil {
		return
	}

	err = cpu.Push(value)
	return
}

// POP r
func (cpu *Cpu) opPop(ins Instruction) (err error) {
	// Validate the target before the stack moves.
	_, err = cpu.Register.Get(int(ins.A))
	if err != nil {
		return
	}

	value, err := cpu.Pop()
	if err != nil {
		return
	}

	err = cpu.Register.Set(int(ins.A), int(value))
	return
}

// CALL r: push the address of the next instruction, jump to r.
func (cpu *Cpu) opCall(ins Instruction) (err error) {
	target, err := cpu.Register.Get(int(ins.A))
	if err != nil {
		return
	}

	next := cpu.Pc + ins.Code.Size()
	if next >= MEMORY_SIZE {
		err = ErrAddress(next)
		return
	}

	err = cpu.Push(uint8(next))
	if err != nil {
		return
	}

	cpu.Pc = int(target)
	return
}

// RET: pop the return address into the PC.
func (cpu *Cpu) opRet(ins Instruction) (err error) {
	target, err := cpu.Pop()
	if err != nil {
		return
	}

	cpu.Pc = int(target)
	return
}

// JMP r
func (cpu *Cpu) opJmp(ins Instruction) (err error) {
	return cpu.jumpIf(true, ins)
}

// JEQ r: jump if the last comparison was equal.
func (cpu *Cpu) opJeq(ins Instruction) (err error) {
	return cpu.jumpIf(cpu.Flags.Equal(), ins)
}

// JNE r: jump if the last comparison was not equal.
func (cpu *Cpu) opJne(ins Instruction) (err error) {
	return cpu.jumpIf(!cpu.Flags.Equal(), ins)
}

// jumpIf sets the PC to the register operand if taken, otherwise steps over
// the instruction.
func (cpu *Cpu) jumpIf(taken bool, ins Instruction) (err error) {
	target, err := cpu.Register.Get(int(ins.A))
	if err != nil {
		return
	}

	if taken {
		cpu.Pc = int(target)
	} else {
		cpu.Pc += ins.Code.Size()
	}

	return
}
