// Package io provides the byte channels used by the rebf machine.
// The Tape channel carries program input and output, and the Monitor
// channel carries diagnostic tape dumps.
package io

// Channel defines the interface for all I/O channels attached to the machine.
// Channels operate at the byte level.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Receive reads a single byte from the channel.
	// Returns io.EOF when the channel is exhausted.
	Receive() (value byte, err error)
	// Send writes bytes to the channel.
	Send(values ...byte) error
}
