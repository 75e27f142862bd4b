package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("pc 20 unknown opcode", From("pc %d %v", 20, "unknown opcode"))
	assert.Equal("line 3 'LDI R9 1'", From("line %d '%v'", 3, "LDI R9 1"))
}
