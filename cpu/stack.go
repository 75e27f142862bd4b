package cpu

// The stack lives in memory below SP_INIT and grows downward. r7 addresses
// the current top of stack. Overflow and underflow are not detected; the
// stack pointer wraps like any other 8-bit register.

// Push decrements the stack pointer and stores value at the new top.
func (cpu *Cpu) Push(value uint8) (err error) {
	sp := cpu.Register[REGISTER_SP] - 1
	cpu.Register[REGISTER_SP] = sp

	err = cpu.Memory.Write(int(sp), value)
	return
}

// Pop reads the top of stack and increments the stack pointer.
func (cpu *Cpu) Pop() (value uint8, err error) {
	value, err = cpu.Peek()
	if err != nil {
		return
	}

	cpu.Register[REGISTER_SP]++
	return
}

// Peek reads the top of stack without moving the stack pointer.
func (cpu *Cpu) Peek() (value uint8, err error) {
	value, err = cpu.Memory.Read(int(cpu.Register[REGISTER_SP]))
	return
}

// StackDepth returns the number of bytes pushed below SP_INIT.
func (cpu *Cpu) StackDepth() int {
	return int(uint8(SP_INIT - cpu.Register[REGISTER_SP]))
}
