package emulator

import (
	"github.com/vigoux/rebf/translate"
)

var f = translate.From

// ErrRuntime indicates when a runtime error happened.
type ErrRuntime struct {
	Ticks int
	Err   error
}

func (err *ErrRuntime) Error() string {
	return f("tick %d %v", err.Ticks, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
