package cpu

import (
	"fmt"
)

// Instruction is a single tape machine operation.
type Instruction int

//go:generate go tool stringer -linecomment -type=Instruction
const (
	OP_RIGHT = Instruction(0) // >
	OP_LEFT  = Instruction(1) // <
	OP_INC   = Instruction(2) // +
	OP_DEC   = Instruction(3) // -
	OP_PRINT = Instruction(4) // .
	OP_READ  = Instruction(5) // ,
	OP_DEBUG = Instruction(6) // #

	OP_COUNT = 7 // Number of instructions.
)

// Loop delimiters. These are structure, not instructions.
const (
	LOOP_OPEN  = '['
	LOOP_CLOSE = ']'
)

// EofMode selects what a read does once the input is exhausted.
type EofMode int

//go:generate go tool stringer -linecomment -type=EofMode
const (
	EOF_KEEP  = EofMode(0) // keep
	EOF_ZERO  = EofMode(1) // zero
	EOF_MAX   = EofMode(2) // max
	EOF_ERROR = EofMode(3) // error

	EOF_COUNT = 4 // Number of EOF modes.
)

// instructionMap maps program characters to instructions.
var instructionMap = map[rune]Instruction{
	'>': OP_RIGHT,
	'<': OP_LEFT,
	'+': OP_INC,
	'-': OP_DEC,
	'.': OP_PRINT,
	',': OP_READ,
	'#': OP_DEBUG,
}

// InstructionOf returns the instruction for a program character.
func InstructionOf(r rune) (op Instruction, ok bool) {
	op, ok = instructionMap[r]
	return
}

// Rune returns the canonical program character of the instruction.
func (op Instruction) Rune() rune {
	return rune(op.String()[0])
}

// Valid returns true if op is one of the defined instructions.
func (op Instruction) Valid() bool {
	return op >= 0 && op < OP_COUNT
}

// EofModeOf parses the name of an EOF mode.
func EofModeOf(name string) (mode EofMode, err error) {
	for mode = range EOF_COUNT {
		if mode.String() == name {
			return
		}
	}

	err = fmt.Errorf("%w: %q", ErrEofMode, name)
	return
}

// Valid returns true if mode is one of the defined EOF modes.
func (mode EofMode) Valid() bool {
	return mode >= 0 && mode < EOF_COUNT
}
