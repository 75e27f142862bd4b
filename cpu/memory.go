package cpu

const (
	MEMORY_SIZE = 256 // Bytes of addressable memory.
)

// Memory is the byte addressable RAM shared by the program and the stack.
type Memory [MEMORY_SIZE]uint8

// Read returns the byte at address.
func (mem *Memory) Read(address int) (value uint8, err error) {
	if address < 0 || address >= len(mem) {
		err = ErrAddress(address)
		return
	}

	value = mem[address]
	return
}

// Write stores a byte at address.
func (mem *Memory) Write(address int, value uint8) (err error) {
	if address < 0 || address >= len(mem) {
		err = ErrAddress(address)
		return
	}

	mem[address] = value
	return
}

// Reset zeros the memory.
func (mem *Memory) Reset() {
	clear(mem[:])
}
