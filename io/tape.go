package io

import (
	"fmt"
	"io"
)

// Tape writes each value sent to it as a decimal line on Output.
// A Tape with no Output discards values.
type Tape struct {
	Output io.Writer

	Lines int // Values written since the last rewind.
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape; only the line counter is reset.
func (tc *Tape) Rewind() {
	tc.Lines = 0
}

// Send writes value, in decimal, followed by a newline.
func (tc *Tape) Send(value uint8) (err error) {
	if tc.Output == nil {
		return
	}

	_, err = fmt.Fprintf(tc.Output, "%d\n", value)
	if err != nil {
		return
	}

	tc.Lines++
	return
}
