package cpu

import (
	"errors"

	"github.com/vigoux/rebf/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrIpEmpty            = errors.New(f("ip empty"))
	ErrChannelInvalid     = errors.New(f("channel invalid"))
	ErrInputEmpty         = errors.New(f("input exhausted"))
	ErrTapeLimit          = errors.New(f("tape limit exceeded"))
	ErrEofMode            = errors.New(f("eof mode invalid"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))

	// Parser errors
	ErrLoopUnclosed = errors.New(f("[ without ]"))
	ErrLoopUnopened = errors.New(f("] without ["))
)

// ErrInstruction reports a failure while executing an instruction.
type ErrInstruction struct {
	Op  Instruction
	Err error
}

func (err *ErrInstruction) Error() string {
	return f("instruction '%v' %v", err.Op, err.Err)
}

func (err *ErrInstruction) Unwrap() error {
	return err.Err
}
