package io

import (
	"io"
)

// Monitor is the diagnostic channel. It receives human readable
// text and is never read back.
type Monitor struct {
	Output io.Writer

	Dumps int // Number of sends since the last rewind.
}

var _ Channel = (*Monitor)(nil)

// Rewind resets the dump counter.
func (mc *Monitor) Rewind() {
	mc.Dumps = 0
}

// Receive always reports an exhausted channel.
func (mc *Monitor) Receive() (value byte, err error) {
	err = io.EOF
	return
}

// Send writes a diagnostic message to the output.
func (mc *Monitor) Send(values ...byte) (err error) {
	mc.Dumps++

	if mc.Output == nil {
		return
	}

	n, err := mc.Output.Write(values)
	if err == nil && n != len(values) {
		err = ErrChannelShort
	}

	return
}
