// Package cpu implements the LS-8 microprocessor, its program image loader
// and its assembler.
//
// The CPU consists of a program counter (PC), a 256 byte memory, eight 8-bit
// general-purpose registers (r0-r7, with r7 holding the stack pointer), an
// ALU, and the EQUAL/GREATER_THAN/LESS_THAN comparison flags.
//
// An instruction is a single opcode byte followed by zero, one or two operand
// bytes. The opcode encodes its own layout: the operand count in bits 7-6,
// the ALU class in bit 5, and in bit 4 whether the instruction places the PC
// itself.
//
// The assembler provides a small assembly language for the LS-8 instruction
// set, supporting macros, labels, equates, and compile-time expression
// evaluation.
package cpu
