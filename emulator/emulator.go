package emulator

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/vigoux/rebf/cpu"
	"github.com/vigoux/rebf/internal"
	"github.com/vigoux/rebf/io"
)

var _emulator_defines = map[string]string{
	"OP_COUNT":      fmt.Sprintf("%v", cpu.OP_COUNT),
	"CHANNEL_COUNT": fmt.Sprintf("%v", cpu.CHANNEL_COUNT),
}

// Emulator state. CPU + program + IO channels.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the machine.
	Program  *cpu.Program // Reference to the currently loaded program.

	Tape    io.Tape    // Program input and output channel.
	Monitor io.Monitor // Tape dump channel.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	emu.Cpu.SetChannel(cpu.CHANNEL_ID_TAPE, &emu.Tape)
	emu.Cpu.SetChannel(cpu.CHANNEL_ID_MONITOR, &emu.Monitor)

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Reset the machine and load the program.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.Cpu.Load(emu.Program)
}

// Continue loads prog to run on the current machine state.
func (emu *Emulator) Continue(prog *cpu.Program) {
	emu.Program = prog
	emu.Cpu.Load(prog)
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Memory returns the tape.
func (emu *Emulator) Memory() []byte {
	return emu.Cpu.Memory
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrIpEmpty) {
		err = nil
		done = true
		return
	}
	if err != nil {
		err = &ErrRuntime{Ticks: emu.Cpu.Ticks, Err: err}
	}

	return
}

// Run ticks the loaded program to completion.
func (emu *Emulator) Run() (err error) {
	var done bool
	for !done {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	if emu.Verbose {
		log.Printf("emulator: done after %d ticks, %d cells", emu.Cpu.Ticks, len(emu.Cpu.Memory))
	}

	return
}

// Stats renders the execution counters as a table.
func (emu *Emulator) Stats() string {
	stats := table.NewWriter()
	stats.SetTitle("Execution")
	stats.AppendHeader(table.Row{"Counter", "Value"})

	stats.AppendRow(table.Row{"ticks", emu.Cpu.Ticks})
	stats.AppendRow(table.Row{"instructions", emu.Program.Instructions()})
	stats.AppendRow(table.Row{"loop depth", emu.Program.Depth()})
	stats.AppendRow(table.Row{"tape cells", len(emu.Cpu.Memory)})
	stats.AppendRow(table.Row{"pointer", emu.Cpu.Pointer})
	stats.AppendRow(table.Row{"bytes in", emu.Tape.Received})
	stats.AppendRow(table.Row{"bytes out", emu.Tape.Sent})
	stats.AppendRow(table.Row{"dumps", emu.Monitor.Dumps})
	stats.AppendSeparator()

	for op := range cpu.Instruction(cpu.OP_COUNT) {
		stats.AppendRow(table.Row{op.String(), emu.Cpu.Counts[op]})
	}

	return stats.Render()
}
