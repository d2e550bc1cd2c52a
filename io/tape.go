package io

import (
	"io"
)

// Tape provides sequential byte I/O for a running program.
// It wraps an io.Reader for input and io.Writer for output.
// A nil Input is an empty tape, a nil Output discards everything.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	Received int // Bytes received since the last rewind.
	Sent     int // Bytes sent since the last rewind.
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape; only the counters are reset.
func (tc *Tape) Rewind() {
	tc.Received = 0
	tc.Sent = 0
}

// Receive reads exactly one byte from the input.
func (tc *Tape) Receive() (value byte, err error) {
	if tc.Input == nil {
		err = io.EOF
		return
	}

	var one [1]byte
	for {
		var n int
		n, err = tc.Input.Read(one[:])
		if n == 1 {
			// A reader may return the last byte together with io.EOF.
			err = nil
			value = one[0]
			tc.Received++
			return
		}
		if err != nil {
			return
		}
	}
}

// Send writes the bytes to the output, unframed.
func (tc *Tape) Send(values ...byte) (err error) {
	if tc.Output == nil {
		tc.Sent += len(values)
		return
	}

	n, err := tc.Output.Write(values)
	tc.Sent += n
	if err == nil && n != len(values) {
		err = ErrChannelShort
	}

	return
}
