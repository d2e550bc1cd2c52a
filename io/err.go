package io

import (
	"errors"
	"io"

	"github.com/vigoux/rebf/translate"
)

var f = translate.From

// EOF is returned by Receive once a channel is exhausted.
var EOF = io.EOF

var (
	// Channel errors
	ErrChannelShort = errors.New(f("short channel write"))
)
