package io

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
)

func TestTape_Rewind(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: bytes.NewReader([]byte{1}), Output: &bytes.Buffer{}}
	_, err := tape.Receive()
	assert.NoError(err)
	assert.NoError(tape.Send(2, 3))
	assert.Equal(1, tape.Received)
	assert.Equal(2, tape.Sent)

	tape.Rewind()
	assert.Equal(0, tape.Received)
	assert.Equal(0, tape.Sent)
}

func TestTape_Receive(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: bytes.NewBuffer([]byte{0x55, 0xAA, 0xFF})}
	tape.Rewind()

	var got []byte
	for {
		value, err := tape.Receive()
		if err != nil {
			assert.ErrorIs(err, io.EOF)
			break
		}
		got = append(got, value)
	}

	assert.Equal([]byte{0x55, 0xAA, 0xFF}, got)
	assert.Equal(3, tape.Received)
}

func TestTape_Receive_DataWithEOF(t *testing.T) {
	assert := assert.New(t)

	// The final byte arrives together with io.EOF.
	tape := &Tape{Input: iotest.DataErrReader(bytes.NewReader([]byte{0x48, 0x69}))}

	value, err := tape.Receive()
	assert.NoError(err)
	assert.Equal(byte(0x48), value)

	value, err = tape.Receive()
	assert.NoError(err)
	assert.Equal(byte(0x69), value)

	_, err = tape.Receive()
	assert.ErrorIs(err, io.EOF)
}

func TestTape_Receive_NilInput(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}
	_, err := tape.Receive()
	assert.ErrorIs(err, io.EOF)
}

func TestTape_Receive_ReadError(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: &errorReader{}}
	tape.Rewind()

	_, err := tape.Receive()
	assert.ErrorIs(err, io.ErrUnexpectedEOF)
	assert.Equal(0, tape.Received)
}

type errorReader struct{}

func (er *errorReader) Read(p []byte) (n int, err error) {
	return 0, io.ErrUnexpectedEOF
}

func TestTape_Send(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &Tape{Output: output}

	assert.NoError(tape.Send('H'))
	assert.NoError(tape.Send('i', '\n'))

	assert.Equal("Hi\n", output.String())
	assert.Equal(3, tape.Sent)
}

func TestTape_Send_NilOutput(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}
	assert.NoError(tape.Send(1, 2, 3))
	assert.Equal(3, tape.Sent)
}

type shortWriter struct{}

func (sw *shortWriter) Write(p []byte) (n int, err error) {
	return len(p) / 2, nil
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (fw *failWriter) Write(p []byte) (n int, err error) {
	return 0, errWrite
}

func TestTape_Send_Errors(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Output: &shortWriter{}}
	assert.ErrorIs(tape.Send(1, 2), ErrChannelShort)
	assert.Equal(1, tape.Sent)

	tape = &Tape{Output: &failWriter{}}
	assert.ErrorIs(tape.Send(1), errWrite)
	assert.Equal(0, tape.Sent)
}
