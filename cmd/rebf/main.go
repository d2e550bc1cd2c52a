package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/tebeka/atexit"

	"github.com/vigoux/rebf/config"
	"github.com/vigoux/rebf/cpu"
	"github.com/vigoux/rebf/emulator"
	"github.com/vigoux/rebf/translate"
)

var (
	ErrUsage = errors.New("usage")
	ErrCount = errors.New("-limit and -columns must not be negative")
)

// options are the command line settings.
type options struct {
	script  string
	input   string
	output  string
	dump    string
	lang    string
	eof     string
	legacy  bool
	limit   int
	columns int
	verbose bool
	stats   bool
	repl    bool
	source  string
}

// newFlagSet binds the command line flags to opts.
func newFlagSet(name string, opts *options) (fs *flag.FlagSet) {
	fs = flag.NewFlagSet(name, flag.ContinueOnError)

	fs.StringVar(&opts.script, "c", "", ".star configuration script")
	fs.StringVar(&opts.input, "i", "-", "Program input (- is stdin; with -repl, stdin belongs to the prompt and reads see end of input)")
	fs.StringVar(&opts.output, "o", "-", "Program output (- is stdout)")
	fs.StringVar(&opts.dump, "d", "-", "Tape dump output (- is stderr)")
	fs.StringVar(&opts.lang, "lang", "", "Message locale (default from the system)")
	fs.BoolVar(&opts.legacy, "legacy", false, "Ignore unbalanced brackets")
	fs.StringVar(&opts.eof, "eof", cpu.EOF_KEEP.String(), "Read at end of input: keep, zero, max, error")
	fs.IntVar(&opts.limit, "limit", cpu.TAPE_UNLIMITED, "Maximum tape cells (0 is unlimited)")
	fs.IntVar(&opts.columns, "columns", cpu.DUMP_COLUMNS, "Cells per tape dump row")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose mode")
	fs.BoolVar(&opts.stats, "stats", false, "Print execution statistics to stderr")
	fs.BoolVar(&opts.repl, "repl", false, "Interactive mode")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: %v [flags] SOURCE_FILE\n", name)
		fs.PrintDefaults()
	}

	return
}

// parseArgs parses the command line into opts.
func parseArgs(fs *flag.FlagSet, opts *options, args []string) (err error) {
	err = fs.Parse(args)
	if err != nil {
		return
	}

	if fs.NArg() > 1 || (fs.NArg() == 0 && !opts.repl) {
		err = ErrUsage
		return
	}

	opts.source = fs.Arg(0)
	return
}

// configure loads the configuration script, if any, then applies the flags
// set on the command line over it.
func configure(fs *flag.FlagSet, opts *options, defines iter.Seq2[string, string]) (cfg *config.Config, err error) {
	cfg = config.Default()
	if len(opts.script) != 0 {
		cfg, err = config.Load(opts.script, nil, defines)
		if err != nil {
			return
		}
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "legacy":
			cfg.Legacy = opts.legacy
		case "eof":
			var mode cpu.EofMode
			mode, err = cpu.EofModeOf(opts.eof)
			if err == nil {
				cfg.Eof = mode
			}
		case "limit":
			cfg.TapeLimit = opts.limit
		case "columns":
			cfg.Columns = opts.columns
		case "v":
			cfg.Verbose = opts.verbose
		}
	})
	if err != nil {
		cfg = nil
		return
	}

	if cfg.TapeLimit < 0 || cfg.Columns < 0 {
		cfg = nil
		err = ErrCount
	}

	return
}

// newEmulator creates an emulator with its program output and tape dumps
// routed to separate writers.
func newEmulator(cfg *config.Config, input io.Reader, output io.Writer, monitor io.Writer) (emu *emulator.Emulator) {
	emu = emulator.NewEmulator()
	cfg.Apply(emu)

	emu.Tape.Input = input
	emu.Tape.Output = output
	emu.Monitor.Output = monitor

	return
}

// inputOf returns the program input for the name. Stdin is left to the
// prompt in interactive mode.
func inputOf(name string, repl bool) (rd io.Reader, err error) {
	if name != "-" {
		var inf *os.File
		inf, err = os.Open(name)
		if err != nil {
			return
		}
		atexit.Register(func() { inf.Close() })
		rd = bufio.NewReader(inf)
		return
	}

	if !repl {
		rd = bufio.NewReader(os.Stdin)
	}

	return
}

// outputOf returns a buffered writer for the name, flushed at exit.
func outputOf(name string, std *os.File) (bw *bufio.Writer, err error) {
	ouf := std
	if name != "-" {
		ouf, err = os.Create(name)
		if err != nil {
			return
		}
	}

	bw = bufio.NewWriter(ouf)
	atexit.Register(func() {
		bw.Flush()
		if ouf != std {
			ouf.Close()
		}
	})

	return
}

// runSource parses and runs a whole program.
func runSource(emu *emulator.Emulator, ps *cpu.Parser, source io.Reader) (err error) {
	prog, err := ps.Parse(source)
	if err != nil {
		return
	}

	emu.Program = prog
	emu.Reset()

	err = emu.Run()
	return
}

func main() {
	opts := &options{}
	fs := newFlagSet(os.Args[0], opts)

	err := parseArgs(fs, opts, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		atexit.Exit(0)
	}
	if errors.Is(err, ErrUsage) {
		fs.Usage()
	}
	if err != nil {
		atexit.Exit(2)
	}

	if len(opts.lang) != 0 {
		translate.SetLocale(opts.lang)
	}

	cfg, err := configure(fs, opts, emulator.NewEmulator().Defines())
	if err != nil {
		atexit.Fatalf("%v: %v", os.Args[0], err)
	}

	input, err := inputOf(opts.input, opts.repl)
	if err != nil {
		atexit.Fatalf("%v: %v", opts.input, err)
	}

	output, err := outputOf(opts.output, os.Stdout)
	if err != nil {
		atexit.Fatalf("%v: %v", opts.output, err)
	}

	monitor, err := outputOf(opts.dump, os.Stderr)
	if err != nil {
		atexit.Fatalf("%v: %v", opts.dump, err)
	}

	emu := newEmulator(cfg, input, output, monitor)

	if opts.repl {
		err = runRepl(emu, cfg.Parser(), output, monitor)
		if err != nil {
			atexit.Fatalf("%v: %v", os.Args[0], err)
		}
		atexit.Exit(0)
	}

	inf, err := os.Open(opts.source)
	if err != nil {
		atexit.Fatalf("%v: %v", opts.source, err)
	}
	err = runSource(emu, cfg.Parser(), bufio.NewReader(inf))
	inf.Close()

	if opts.stats {
		output.Flush()
		monitor.Flush()
		fmt.Fprintln(os.Stderr, emu.Stats())
	}

	if err != nil {
		atexit.Fatalf("%v: %v", opts.source, err)
	}

	atexit.Exit(0)
}
