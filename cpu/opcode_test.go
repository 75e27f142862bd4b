package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode_Layout(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		code     Code
		operands int
		alu      bool
		setsPc   bool
	}){
		{OP_LDI, 2, false, false},
		{OP_PRN, 1, false, false},
		{OP_HLT, 0, false, false},
		{OP_MUL, 2, true, false},
		{OP_ADD, 2, true, false},
		{OP_CMP, 2, true, false},
		{OP_NOT, 1, true, false},
		{OP_POP, 1, false, false},
		{OP_PUSH, 1, false, false},
		{OP_CALL, 1, false, true},
		{OP_RET, 0, false, true},
		{OP_JMP, 1, false, true},
		{OP_JEQ, 1, false, true},
		{OP_JNE, 1, false, true},
	}

	for _, entry := range table {
		name := entry.code.String()
		assert.Equal(entry.operands, entry.code.Operands(), name)
		assert.Equal(entry.operands+1, entry.code.Size(), name)
		assert.Equal(entry.alu, entry.code.IsAlu(), name)
		assert.Equal(entry.setsPc, entry.code.SetsPc(), name)
		assert.Equal(entry.code, MakeCode(entry.operands, entry.alu, entry.setsPc, uint8(entry.code&CODE_ID_MASK)), name)
	}
}

func TestCode_Table(t *testing.T) {
	assert := assert.New(t)

	count := 0
	for opcode := range 256 {
		code := Code(opcode)
		_, ok := Lookup(code)
		_, named := codeName[code]
		assert.Equal(named, ok, "%v", code)
		if ok {
			count++
			assert.LessOrEqual(code.Operands(), 2)
			back, ok := CodeByName(code.String())
			assert.True(ok)
			assert.Equal(code, back)
		}
	}

	assert.Equal(22, count)
}

func TestCode_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("LDI", OP_LDI.String())
	assert.Equal("0b11111111", Code(0xff).String())

	code, ok := CodeByName("jne")
	assert.True(ok)
	assert.Equal(OP_JNE, code)

	_, ok = CodeByName("INC")
	assert.False(ok)
}

func TestInstruction_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("LDI R0,8", Instruction{Code: OP_LDI, A: 0, B: 8}.String())
	assert.Equal("ADD R1,R2", Instruction{Code: OP_ADD, A: 1, B: 2}.String())
	assert.Equal("PRN R3", Instruction{Code: OP_PRN, A: 3, B: 9}.String())
	assert.Equal("HLT", Instruction{Code: OP_HLT}.String())
	assert.Equal("0b00000000", Instruction{}.String())
}
