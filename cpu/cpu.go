package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
	"strings"

	"github.com/vigoux/rebf/io"
)

// Channel is an I/O channel interface.
type Channel io.Channel

// CodeChannel is an IO channel index type.
type CodeChannel int

//go:generate go tool stringer -linecomment -type=CodeChannel
const (
	CHANNEL_ID_TAPE    = CodeChannel(0) // tape
	CHANNEL_ID_MONITOR = CodeChannel(1) // monitor

	CHANNEL_COUNT = 2 // Number of channels.
)

const (
	DUMP_COLUMNS   = 16 // Default cells per row of a tape dump.
	TAPE_UNLIMITED = 0  // TapeLimit value for an unbounded tape.
)

var _cpu_defines = map[string]string{
	"EOF_KEEP":       fmt.Sprintf("%d", EOF_KEEP),
	"EOF_ZERO":       fmt.Sprintf("%d", EOF_ZERO),
	"EOF_MAX":        fmt.Sprintf("%d", EOF_MAX),
	"EOF_ERROR":      fmt.Sprintf("%d", EOF_ERROR),
	"DUMP_COLUMNS":   fmt.Sprintf("%d", DUMP_COLUMNS),
	"TAPE_UNLIMITED": fmt.Sprintf("%d", TAPE_UNLIMITED),
}

// Frame is the position of the walk inside one Block.
type Frame struct {
	Block Block // Block being executed.
	Index int   // Next statement of Block to execute.
}

// Cpu is the tape machine: a pointer into a byte tape that grows to the right.
type Cpu struct {
	Verbose   bool    // Set to enable verbose logging.
	Eof       EofMode // Action of a read on exhausted input.
	TapeLimit int     // Maximum tape length in cells, or TAPE_UNLIMITED.
	Columns   int     // Cells per row of a tape dump, DUMP_COLUMNS if zero.

	Pointer uint         // Current cell index.
	Memory  []byte       // Tape cells; always at least Pointer+1 long.
	Stack   Stack[Frame] // Walk frames. Empty when no program is loaded.

	Ticks  int           // Tick counter.
	Counts [OP_COUNT]int // Executed instruction counters.

	channel [CHANNEL_COUNT]Channel // IO channels.
}

// NewCpu creates a new CPU with a single zero cell.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the CPU state.
// - Clears the tape to a single zero cell and the pointer to 0.
// - Drops any loaded program.
// - Zeros statistics counters.
// - Rewinds all IO channels.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Pointer = 0
	cpu.Memory = append(cpu.Memory[:0], 0)
	cpu.Stack.Reset()
	cpu.Ticks = 0
	clear(cpu.Counts[:])

	for _, channel := range cpu.channel {
		if channel == nil {
			continue
		}
		channel.Rewind()
	}
}

// Load a program to execute from the current machine state.
func (cpu *Cpu) Load(prog *Program) {
	cpu.Stack.Reset()
	cpu.Stack.Push(Frame{Block: prog.Block})
}

// SetChannel sets a channel index to a channel model.
func (cpu *Cpu) SetChannel(index CodeChannel, channel Channel) {
	cpu.channel[int(index)] = channel
}

// GetChannel gets the channel model by index.
func (cpu *Cpu) GetChannel(ch CodeChannel) (channel Channel, err error) {
	index := int(ch)
	if index < 0 || index >= len(cpu.channel) || cpu.channel[index] == nil {
		err = ErrChannelInvalid
		return
	}

	channel = cpu.channel[index]
	return
}

// Cell returns the value of the current cell.
func (cpu *Cpu) Cell() byte {
	return cpu.Memory[cpu.Pointer]
}

// String returns a dump of the whole tape. Every cell is printed as two hex
// digits followed by '<' on the current cell, Columns cells per line.
func (cpu *Cpu) String() string {
	columns := cpu.Columns
	if columns <= 0 {
		columns = DUMP_COLUMNS
	}

	var sb strings.Builder
	for n, value := range cpu.Memory {
		marker := ' '
		if uint(n) == cpu.Pointer {
			marker = '<'
		}
		fmt.Fprintf(&sb, " %02X %c ", value, marker)
		if (n+1)%columns == 0 || n == len(cpu.Memory)-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// moveRight advances the pointer, growing the tape by one cell when needed.
func (cpu *Cpu) moveRight() (err error) {
	next := cpu.Pointer + 1
	if next == uint(len(cpu.Memory)) {
		if cpu.TapeLimit > 0 && len(cpu.Memory) >= cpu.TapeLimit {
			err = ErrTapeLimit
			return
		}
		cpu.Memory = append(cpu.Memory, 0)
	}
	cpu.Pointer = next

	return
}

// moveLeft moves the pointer back, stopping at the first cell.
func (cpu *Cpu) moveLeft() {
	if cpu.Pointer != 0 {
		cpu.Pointer--
	}
}

// read stores the next input byte in the current cell.
func (cpu *Cpu) read() (err error) {
	ch, err := cpu.GetChannel(CHANNEL_ID_TAPE)
	if err != nil {
		return
	}

	value, err := ch.Receive()
	if errors.Is(err, io.EOF) {
		err = nil
		switch cpu.Eof {
		case EOF_KEEP:
			return
		case EOF_ZERO:
			value = 0
		case EOF_MAX:
			value = 0xff
		case EOF_ERROR:
			err = ErrInputEmpty
			return
		default:
			err = ErrEofMode
			return
		}
	}
	if err != nil {
		return
	}

	cpu.Memory[cpu.Pointer] = value
	return
}

// send writes to a channel.
func (cpu *Cpu) send(index CodeChannel, values ...byte) (err error) {
	ch, err := cpu.GetChannel(index)
	if err != nil {
		return
	}

	err = ch.Send(values...)
	return
}

// Execute executes a single instruction.
func (cpu *Cpu) Execute(op Instruction) (err error) {
	defer func() {
		if err != nil {
			err = &ErrInstruction{Op: op, Err: err}
		}
	}()

	switch op {
	case OP_RIGHT:
		err = cpu.moveRight()
	case OP_LEFT:
		cpu.moveLeft()
	case OP_INC:
		cpu.Memory[cpu.Pointer]++
	case OP_DEC:
		cpu.Memory[cpu.Pointer]--
	case OP_PRINT:
		err = cpu.send(CHANNEL_ID_TAPE, cpu.Cell())
	case OP_READ:
		err = cpu.read()
	case OP_DEBUG:
		err = cpu.send(CHANNEL_ID_MONITOR, []byte(cpu.String())...)
	default:
		err = ErrInstructionInvalid
	}

	if err == nil {
		cpu.Counts[op]++
	}

	return
}

// Tick executes a single step of the loaded program:
//   - At the end of a Block, its frame is popped.
//   - A Run executes all its instructions in order.
//   - A Loop whose current cell is zero is skipped. Otherwise its Body is
//     pushed, and the Loop is tested again once the Body's frame is popped.
//
// Returns ErrIpEmpty once the whole program has executed.
func (cpu *Cpu) Tick() (err error) {
	frame := cpu.Stack.Top()
	if frame == nil {
		err = ErrIpEmpty
		return
	}

	cpu.Ticks++

	if frame.Index >= len(frame.Block) {
		cpu.Stack.Pop()
		if cpu.Verbose {
			log.Printf("cpu: %d: end, depth %d", cpu.Ticks, cpu.Stack.Len())
		}
		return
	}

	switch stmt := frame.Block[frame.Index].(type) {
	case Run:
		if cpu.Verbose {
			log.Printf("cpu: %d: run %v", cpu.Ticks, Block{stmt})
		}
		for _, op := range stmt {
			err = cpu.Execute(op)
			if err != nil {
				return
			}
		}
		frame.Index++
	case *Loop:
		if cpu.Verbose {
			log.Printf("cpu: %d: loop cell[%d]=%02X", cpu.Ticks, cpu.Pointer, cpu.Cell())
		}
		if cpu.Cell() == 0 {
			frame.Index++
		} else {
			cpu.Stack.Push(Frame{Block: stmt.Body})
		}
	}

	return
}
