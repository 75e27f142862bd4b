package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	assert.Equal(0, cpu.StackDepth())

	err := cpu.Push(0x12)
	assert.NoError(err)
	assert.Equal(1, cpu.StackDepth())
	assert.Equal(uint8(SP_INIT-1), cpu.Register[REGISTER_SP])
	assert.Equal(uint8(0x12), cpu.Memory[SP_INIT-1])
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Push(0x12)
	cpu.Push(0xAB)

	val, err := cpu.Pop()
	assert.NoError(err)
	assert.Equal(uint8(0xAB), val)
	assert.Equal(1, cpu.StackDepth())

	val, err = cpu.Pop()
	assert.NoError(err)
	assert.Equal(uint8(0x12), val)
	assert.Equal(0, cpu.StackDepth())
	assert.Equal(uint8(SP_INIT), cpu.Register[REGISTER_SP])
}

func TestStack_Pop_Empty(t *testing.T) {
	assert := assert.New(t)

	// Popping an empty stack reads whatever lies above it.
	cpu := NewCpu()
	cpu.Memory[SP_INIT] = 0x77

	val, err := cpu.Pop()
	assert.NoError(err)
	assert.Equal(uint8(0x77), val)
	assert.Equal(uint8(SP_INIT+1), cpu.Register[REGISTER_SP])
}

func TestStack_Peek(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Push(0x12)
	cpu.Push(0xAB)

	val, err := cpu.Peek()
	assert.NoError(err)
	assert.Equal(uint8(0xAB), val)
	assert.Equal(2, cpu.StackDepth())
}

func TestStack_Wrap(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Register[REGISTER_SP] = 0

	err := cpu.Push(0x42)
	assert.NoError(err)
	assert.Equal(uint8(0xff), cpu.Register[REGISTER_SP])
	assert.Equal(uint8(0x42), cpu.Memory[0xff])

	val, err := cpu.Pop()
	assert.NoError(err)
	assert.Equal(uint8(0x42), val)
	assert.Equal(uint8(0), cpu.Register[REGISTER_SP])
}

func TestStack_Balance(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()

	for n := range 64 {
		assert.NoError(cpu.Push(uint8(n)))
	}
	assert.Equal(64, cpu.StackDepth())

	for n := 63; n >= 0; n-- {
		val, err := cpu.Pop()
		assert.NoError(err)
		assert.Equal(uint8(n), val)
	}
	assert.Equal(uint8(SP_INIT), cpu.Register[REGISTER_SP])
}
