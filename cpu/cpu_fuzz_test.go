package cpu

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzCpu(f *testing.F) {
	for code := range codeName {
		f.Add(uint8(code), uint8(0), uint8(1))
		f.Add(uint8(code), uint8(6), uint8(0))
		f.Add(uint8(code), uint8(8), uint8(3))
	}
	f.Add(uint8(0x00), uint8(0x00), uint8(0x00))
	f.Add(uint8(0xff), uint8(0xff), uint8(0xff))

	f.Fuzz(func(t *testing.T, opcode uint8, a uint8, b uint8) {
		assert := assert.New(t)

		cpu, out := newTestCpu(t, opcode, a, b)
		for n := range REGISTER_SP {
			cpu.Register[n] = uint8(n * 37)
		}
		pre := cpu.Register

		code := Code(opcode)
		code_str := fmt.Sprintf("0b%08b %d %d\ncpu:\n%v", opcode, a, b, cpu.String())

		cpu.Start()
		err := cpu.Tick()

		reg_a_bad := code.Operands() >= 1 && a >= REGISTER_COUNT
		reg_b_bad := code.Operands() == 2 && code != OP_LDI && b >= REGISTER_COUNT
		_, known := Lookup(code)

		if err != nil {
			var fault *ErrFault
			if assert.True(errors.As(err, &fault), code_str) {
				assert.Equal(0, fault.Pc, code_str)
			}
			assert.False(cpu.Running(), code_str)
			assert.Equal(0, cpu.Ticks, code_str)

			switch {
			case errors.Is(err, ErrUnknownOpcode):
				assert.False(known, code_str)
			case errors.Is(err, ErrOutOfBounds):
				assert.True(reg_a_bad || reg_b_bad, code_str)
			case errors.Is(err, ErrDivisionByZero):
				assert.Contains([]Code{OP_DIV, OP_MOD}, code, code_str)
				assert.Equal(uint8(0), pre[b], code_str)
			default:
				assert.NoError(err, code_str)
			}
			return
		}

		assert.True(known, code_str)
		assert.False(reg_a_bad || reg_b_bad, code_str)
		assert.Equal(1, cpu.Ticks, code_str)
		assert.Equal(code != OP_HLT, cpu.Running(), code_str)

		switch code {
		case OP_JMP, OP_JNE, OP_CALL:
			assert.Equal(int(pre[a]), cpu.Pc, code_str)
		case OP_JEQ:
			assert.Equal(code.Size(), cpu.Pc, code_str)
		case OP_RET:
			assert.Equal(0, cpu.Pc, code_str)
			assert.Equal(uint8(SP_INIT+1), cpu.Register[REGISTER_SP], code_str)
		default:
			assert.Equal(code.Size(), cpu.Pc, code_str)
		}

		switch {
		case code == OP_LDI:
			assert.Equal(b, cpu.Register[a], code_str)
		case code == OP_PRN:
			assert.Equal([]uint8{pre[a]}, received(out), code_str)
		case code == OP_CMP:
			assert.Equal(Compare(pre[a], pre[b]), cpu.Flags, code_str)
			assert.Equal(pre, cpu.Register, code_str)
		case code == OP_NOT:
			assert.Equal(^pre[a], cpu.Register[a], code_str)
		case code.IsAlu():
			expected, _ := code.AluDecode().Apply(pre[a], pre[b])
			assert.Equal(expected, cpu.Register[a], code_str)
		case code == OP_PUSH:
			assert.Equal(uint8(SP_INIT-1), cpu.Register[REGISTER_SP], code_str)
			assert.Equal(pre[a], cpu.Memory[SP_INIT-1], code_str)
		case code == OP_CALL:
			assert.Equal(uint8(SP_INIT-1), cpu.Register[REGISTER_SP], code_str)
			assert.Equal(uint8(code.Size()), cpu.Memory[SP_INIT-1], code_str)
		}

		if code != OP_PRN {
			assert.Empty(received(out), code_str)
		}
	})
}
