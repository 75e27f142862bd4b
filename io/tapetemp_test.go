package io

import (
	"bytes"
	"io"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTape_Send(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &Tape{Output: output}
	tape.Rewind()

	for _, value := range []uint8{8, 0, 255, 44} {
		err := tape.Send(value)
		assert.NoError(err)
	}

	assert.Equal("8\n0\n255\n44\n", output.String())
	assert.Equal(4, tape.Lines)

	tape.Rewind()
	assert.Equal(0, tape.Lines)
	assert.Equal("8\n0\n255\n44\n", output.String())
}

func TestTape_Send_NoOutput(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}
	err := tape.Send(12)
	assert.NoError(err)
	assert.Equal(0, tape.Lines)
}

type errorWriter struct{}

func (ew *errorWriter) Write(p []byte) (n int, err error) {
	return 0, io.ErrShortWrite
}

func TestTape_Send_WriteError(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Output: &errorWriter{}}
	err := tape.Send(1)
	assert.ErrorIs(err, io.ErrShortWrite)
	assert.Equal(0, tape.Lines)
}

func TestTemporary_Rewind(t *testing.T) {
	assert := assert.New(t)

	temp := &Temporary{
		Capacity:   10,
		ReadIndex:  3,
		WriteIndex: 7,
		Size:       4,
		Data:       []uint8{1, 2, 3},
	}

	temp.Rewind()

	assert.Equal(0, temp.ReadIndex)
	assert.Equal(0, temp.WriteIndex)
	assert.Equal(0, temp.Size)
	assert.Len(temp.Data, 10)
}

func TestTemporary_Send_Receive(t *testing.T) {
	assert := assert.New(t)

	temp := &Temporary{Capacity: 8}
	temp.Rewind()

	for _, value := range []uint8{10, 20, 30, 40} {
		err := temp.Send(value)
		assert.NoError(err)
	}

	assert.Equal(4, temp.Size)

	var values []uint8
	for value := range temp.Receive() {
		values = append(values, value)
	}

	assert.Equal([]uint8{10, 20, 30, 40}, values)
	assert.Equal(0, temp.Size)
}

func TestTemporary_Send_NoRewind(t *testing.T) {
	assert := assert.New(t)

	temp := &Temporary{Capacity: 2}
	err := temp.Send(7)
	assert.NoError(err)
	assert.Len(temp.Data, 2)
	assert.Equal(1, temp.Size)
}

func TestTemporary_Send_CapacityFull(t *testing.T) {
	assert := assert.New(t)

	temp := &Temporary{Capacity: 3}
	temp.Rewind()

	assert.NoError(temp.Send(1))
	assert.NoError(temp.Send(2))
	assert.NoError(temp.Send(3))

	// Should be full
	err := temp.Send(4)
	assert.Equal(ErrChannelFull, err)
}

func TestTemporary_WrapAround(t *testing.T) {
	assert := assert.New(t)

	temp := &Temporary{Capacity: 4}
	temp.Rewind()

	// Fill up
	temp.Send(1)
	temp.Send(2)
	temp.Send(3)
	temp.Send(4)

	// Read some
	pull, stop := iter.Pull(temp.Receive())
	value, ok := pull()
	assert.True(ok)
	assert.Equal(uint8(1), value)
	value, ok = pull()
	assert.True(ok)
	assert.Equal(uint8(2), value)
	stop()

	// Now we have space, write more
	assert.NoError(temp.Send(5))
	assert.NoError(temp.Send(6))

	// Should have wrapped around
	assert.Equal(2, temp.WriteIndex)
	assert.Equal(2, temp.ReadIndex)
	assert.Equal(4, temp.Size)

	var values []uint8
	for value := range temp.Receive() {
		values = append(values, value)
	}
	assert.Equal([]uint8{3, 4, 5, 6}, values)
}

func TestTemporary_Receive_EarlyStop(t *testing.T) {
	assert := assert.New(t)

	temp := &Temporary{Capacity: 8}
	temp.Rewind()

	temp.Send(1)
	temp.Send(2)
	temp.Send(3)
	temp.Send(4)

	count := 0
	for range temp.Receive() {
		count++
		if count == 2 {
			break
		}
	}

	assert.Equal(2, count)
	assert.Equal(2, temp.Size)
}
