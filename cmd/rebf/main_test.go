package main

import (
	"bytes"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vigoux/rebf/config"
	"github.com/vigoux/rebf/cpu"
	"github.com/vigoux/rebf/emulator"
)

func newTestFlags(args ...string) (opts *options, fs *flag.FlagSet, err error) {
	opts = &options{}
	fs = newFlagSet("rebf", opts)
	fs.SetOutput(io.Discard)
	err = parseArgs(fs, opts, args)
	return
}

func writeScript(t *testing.T, text string) string {
	name := filepath.Join(t.TempDir(), "rebf.star")
	err := os.WriteFile(name, []byte(text), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return name
}

func TestParseArgs(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		args   []string
		err    error
		source string
	}){
		{[]string{}, ErrUsage, ""},
		{[]string{"a.bf", "b.bf"}, ErrUsage, ""},
		{[]string{"-repl"}, nil, ""},
		{[]string{"-v", "a.bf"}, nil, "a.bf"},
	}

	for _, entry := range table {
		opts, _, err := newTestFlags(entry.args...)
		if entry.err == nil {
			assert.NoError(err, entry.args)
		} else {
			assert.ErrorIs(err, entry.err, entry.args)
		}
		assert.Equal(entry.source, opts.source, entry.args)
	}

	_, _, err := newTestFlags("-nosuchflag", "a.bf")
	assert.Error(err)
}

func TestConfigure_FlagsOverScript(t *testing.T) {
	assert := assert.New(t)

	script := writeScript(t, strings.Join([]string{
		`eof = "zero"`,
		"columns = 8",
		"legacy = True",
		"tape_limit = 100",
	}, "\n"))

	opts, fs, err := newTestFlags("-c", script, "-eof", "max", "-columns", "4", "a.bf")
	assert.NoError(err)

	cfg, err := configure(fs, opts, emulator.NewEmulator().Defines())
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(cpu.EOF_MAX, cfg.Eof)
	assert.Equal(4, cfg.Columns)
	assert.True(cfg.Legacy)
	assert.Equal(100, cfg.TapeLimit)
}

func TestConfigure_DefaultsKeepScript(t *testing.T) {
	assert := assert.New(t)

	script := writeScript(t, `eof = EOF_ZERO`)

	opts, fs, err := newTestFlags("-c", script, "a.bf")
	assert.NoError(err)

	cfg, err := configure(fs, opts, emulator.NewEmulator().Defines())
	assert.NoError(err)
	assert.Equal(cpu.EOF_ZERO, cfg.Eof)
	assert.Equal(cpu.DUMP_COLUMNS, cfg.Columns)
}

func TestConfigure_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		args []string
		err  error
	}){
		{[]string{"-eof", "sometimes", "a.bf"}, cpu.ErrEofMode},
		{[]string{"-limit", "-1", "a.bf"}, ErrCount},
		{[]string{"-columns", "-2", "a.bf"}, ErrCount},
		{[]string{"-c", writeScript(t, "colour = 1"), "a.bf"}, config.ErrConfigKey},
	}

	for _, entry := range table {
		opts, fs, err := newTestFlags(entry.args...)
		assert.NoError(err, entry.args)

		cfg, err := configure(fs, opts, nil)
		assert.Nil(cfg, entry.args)
		assert.ErrorIs(err, entry.err, entry.args)
	}
}

func TestRunSource_DumpSeparate(t *testing.T) {
	assert := assert.New(t)

	var output bytes.Buffer
	var monitor bytes.Buffer

	cfg := config.Default()
	emu := newEmulator(cfg, nil, &output, &monitor)

	err := runSource(emu, cfg.Parser(), strings.NewReader("+#++."))
	assert.NoError(err)

	assert.Equal([]byte{3}, output.Bytes())
	assert.Equal(" 01 < \n", monitor.String())
	assert.Equal(1, emu.Monitor.Dumps)
}

func TestRunSource_Errors(t *testing.T) {
	assert := assert.New(t)

	cfg := config.Default()
	emu := newEmulator(cfg, nil, io.Discard, io.Discard)

	err := runSource(emu, cfg.Parser(), strings.NewReader("[+"))
	assert.ErrorIs(err, cpu.ErrLoopUnclosed)

	cfg.Eof = cpu.EOF_ERROR
	emu = newEmulator(cfg, strings.NewReader(""), io.Discard, io.Discard)
	err = runSource(emu, cfg.Parser(), strings.NewReader(","))
	assert.ErrorIs(err, cpu.ErrInputEmpty)
}

func TestInputOf(t *testing.T) {
	assert := assert.New(t)

	rd, err := inputOf("-", true)
	assert.NoError(err)
	assert.Nil(rd)

	rd, err = inputOf("-", false)
	assert.NoError(err)
	assert.NotNil(rd)

	_, err = inputOf(filepath.Join(t.TempDir(), "missing"), false)
	assert.ErrorIs(err, os.ErrNotExist)
}

func TestCommand(t *testing.T) {
	assert := assert.New(t)

	var output bytes.Buffer
	var monitor bytes.Buffer

	cfg := config.Default()
	emu := newEmulator(cfg, nil, &output, &monitor)

	emu.Continue(&cpu.Program{Block: cpu.Block{cpu.Run{cpu.OP_INC, cpu.OP_INC}}})
	assert.NoError(emu.Run())

	quit, err := command(emu, ":dump")
	assert.NoError(err)
	assert.False(quit)
	assert.Equal(" 02 < \n", monitor.String())
	assert.Empty(output.Bytes())

	quit, err = command(emu, ":reset")
	assert.NoError(err)
	assert.False(quit)
	assert.Equal([]byte{0}, emu.Memory())

	quit, err = command(emu, ":QUIT")
	assert.NoError(err)
	assert.True(quit)

	_, err = command(emu, ":jump")
	assert.ErrorIs(err, ErrCommand)
}
