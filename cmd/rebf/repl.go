package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/vigoux/rebf/cpu"
	"github.com/vigoux/rebf/emulator"
)

const (
	PROMPT_MAIN = "rebf> "
	PROMPT_CONT = "  ... "
)

// readSource reads lines until they parse, or fail to parse for a
// reason other than an open loop. Lines starting with ':' are commands.
func readSource(ln *liner.State, ps *cpu.Parser) (src string, prog *cpu.Program, err error) {
	var b strings.Builder

	prompt := PROMPT_MAIN
	for {
		var line string
		line, err = ln.Prompt(prompt)
		if err != nil {
			return
		}

		if b.Len() == 0 && strings.HasPrefix(strings.TrimSpace(line), ":") {
			src = strings.TrimSpace(line)
			return
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		src = b.String()

		prog, err = ps.ParseString(src)
		if cpu.IsIncomplete(err) {
			prompt = PROMPT_CONT
			continue
		}
		return
	}
}

var ErrCommand = errors.New("unknown command; try :dump, :reset or :quit")

// command runs an interactive command. Tape dumps go to the monitor channel.
func command(emu *emulator.Emulator, name string) (quit bool, err error) {
	switch strings.ToLower(name) {
	case ":quit":
		quit = true
	case ":dump":
		err = emu.Monitor.Send([]byte(emu.Cpu.String())...)
	case ":reset":
		emu.Program = &cpu.Program{}
		emu.Reset()
	default:
		err = fmt.Errorf("%w: %v", ErrCommand, name)
	}

	return
}

// runRepl evaluates programs line by line on a machine that keeps its
// tape between lines.
func runRepl(emu *emulator.Emulator, ps *cpu.Parser, out *bufio.Writer, monitor *bufio.Writer) (err error) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	emu.Program = &cpu.Program{}
	emu.Reset()

	for {
		src, prog, perr := readSource(ln, ps)
		if errors.Is(perr, io.EOF) || errors.Is(perr, liner.ErrPromptAborted) {
			fmt.Println()
			return
		}
		if perr != nil && prog == nil && len(src) == 0 {
			err = perr
			return
		}

		if len(strings.TrimSpace(src)) == 0 {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		if strings.HasPrefix(src, ":") {
			quit, cerr := command(emu, src)
			monitor.Flush()
			if quit {
				return
			}
			if cerr != nil {
				fmt.Fprintln(os.Stderr, cerr)
			}
			continue
		}

		if perr != nil {
			fmt.Fprintln(os.Stderr, perr)
			continue
		}

		emu.Continue(prog)
		err = emu.Run()
		out.Flush()
		monitor.Flush()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			err = nil
		}
	}
}
