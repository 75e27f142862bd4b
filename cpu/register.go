package cpu

const (
	REGISTER_COUNT = 8                // General purpose registers.
	REGISTER_SP    = 7                // Register holding the stack pointer.
	SP_INIT        = MEMORY_SIZE - 12 // Stack pointer after reset.
)

// Registers is the register bank. Values are always 8 bits; wider results
// are truncated on Set.
type Registers [REGISTER_COUNT]uint8

// Get returns the value of register index.
func (reg *Registers) Get(index int) (value uint8, err error) {
	if index < 0 || index >= len(reg) {
		err = ErrRegister(index)
		return
	}

	value = reg[index]
	return
}

// Set stores value modulo 256 into register index.
func (reg *Registers) Set(index int, value int) (err error) {
	if index < 0 || index >= len(reg) {
		err = ErrRegister(index)
		return
	}

	reg[index] = uint8(value & 0xff)
	return
}

// Reset clears all registers and places the stack pointer at SP_INIT.
func (reg *Registers) Reset() {
	clear(reg[:])
	reg[REGISTER_SP] = SP_INIT
}
