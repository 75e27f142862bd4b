// Package io provides the output channels for the LS-8 PRN instruction.
// Tape writes values as decimal text lines to an io.Writer; Temporary keeps
// them in a bounded in-memory FIFO.
package io

// Channel defines the interface for all output channels.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Send writes a single value to the channel.
	Send(value uint8) error
}
