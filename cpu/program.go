package cpu

import (
	"iter"
)

// Opcode represents a line of source and the bytes generated for it.
type Opcode struct {
	LineNo    int
	Address   int
	Words     []string
	Bytes     []uint8
	LinkLabel string // Label whose address patches the final byte.
}

// Program is a listing of opcodes, in address order.
type Program struct {
	Opcodes []Opcode
}

type Debug struct {
	*Opcode
	Index int
}

// Debug finds the opcode covering address, and the offset into its bytes.
func (prog *Program) Debug(address int) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if address >= op.Address && address < op.Address+len(op.Bytes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  address - op.Address,
			}
			break
		}
	}

	return
}

// Binary returns the memory image of the program, from address 0.
func (prog *Program) Binary() (image []uint8) {
	for address, value := range prog.Bytes() {
		if address >= len(image) {
			image = append(image, make([]uint8, address+1-len(image))...)
		}
		image[address] = value
	}

	return
}

// Bytes iterates over every address and byte of the program.
func (prog *Program) Bytes() iter.Seq2[int, uint8] {
	return func(yield func(address int, value uint8) bool) {
		for _, op := range prog.Opcodes {
			for n, value := range op.Bytes {
				if !yield(op.Address+n, value) {
					return
				}
			}
		}
	}
}
