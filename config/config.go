// Package config loads interpreter settings from Starlark scripts.
//
// A script assigns any of the lowercase globals below. Every define of the
// emulator (EOF_ZERO, DUMP_COLUMNS, ...) is predeclared.
//
//	eof = EOF_ZERO     # or "zero"
//	legacy = True
//	tape_limit = 30000
//	columns = DUMP_COLUMNS
//	verbose = False
package config

import (
	"fmt"
	"iter"
	"log"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/vigoux/rebf/cpu"
	"github.com/vigoux/rebf/emulator"
)

// Config holds the interpreter settings.
type Config struct {
	Verbose   bool        // Verbose logging.
	Legacy    bool        // Unmatched loop delimiters do not fail the parse.
	Eof       cpu.EofMode // Read behaviour on exhausted input.
	TapeLimit int         // Tape length limit, cpu.TAPE_UNLIMITED for none.
	Columns   int         // Cells per tape dump row.
}

// Default returns the default settings.
func Default() *Config {
	return &Config{
		Eof:       cpu.EOF_KEEP,
		TapeLimit: cpu.TAPE_UNLIMITED,
		Columns:   cpu.DUMP_COLUMNS,
	}
}

// predeclare converts defines to Starlark values: integers when they parse
// as one, strings otherwise.
func predeclare(defines iter.Seq2[string, string]) starlark.StringDict {
	dict := starlark.StringDict{}
	if defines == nil {
		return dict
	}

	for key, value := range defines {
		v64, err := strconv.ParseInt(value, 0, 64)
		if err != nil {
			dict[key] = starlark.String(value)
			continue
		}
		dict[key] = starlark.MakeInt64(v64)
	}

	return dict
}

// Load executes the script 'name'. If src is nil the script is read from
// the file 'name', otherwise src is a string, []byte or io.Reader.
func Load(name string, src any, defines iter.Seq2[string, string]) (cfg *Config, err error) {
	defer func() {
		if err != nil {
			cfg = nil
			err = &ErrConfig{Name: name, Err: err}
		}
	}()

	thread := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("config: %v: %v", name, msg)
		},
	}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, thread, name, src, predeclare(defines))
	if err != nil {
		return
	}

	cfg = Default()
	for _, key := range globals.Keys() {
		value := globals[key]
		switch key {
		case "verbose":
			cfg.Verbose, err = asBool(key, value)
		case "legacy":
			cfg.Legacy, err = asBool(key, value)
		case "eof":
			cfg.Eof, err = asEofMode(key, value)
		case "tape_limit":
			cfg.TapeLimit, err = asCount(key, value)
		case "columns":
			cfg.Columns, err = asCount(key, value)
		default:
			// Helpers and constants are allowed.
			if _, ok := value.(starlark.Callable); ok {
				continue
			}
			if strings.HasPrefix(key, "_") || strings.ToUpper(key) == key {
				continue
			}
			err = fmt.Errorf("%w: %v", ErrConfigKey, key)
		}
		if err != nil {
			return
		}
	}

	return
}

func asBool(key string, value starlark.Value) (b bool, err error) {
	sb, ok := value.(starlark.Bool)
	if !ok {
		err = fmt.Errorf("%w: %v is %v, not bool", ErrConfigType, key, value.Type())
		return
	}

	b = bool(sb)
	return
}

func asCount(key string, value starlark.Value) (n int, err error) {
	n, err = starlark.AsInt32(value)
	if err != nil {
		err = fmt.Errorf("%w: %v: %v", ErrConfigType, key, err)
		return
	}

	if n < 0 {
		err = fmt.Errorf("%w: %v is negative", ErrConfigValue, key)
	}

	return
}

// asEofMode accepts either an EOF_* define or the mode name.
func asEofMode(key string, value starlark.Value) (mode cpu.EofMode, err error) {
	if name, ok := starlark.AsString(value); ok {
		mode, err = cpu.EofModeOf(name)
		if err != nil {
			err = fmt.Errorf("%w: %v: %v", ErrConfigValue, key, err)
		}
		return
	}

	n, err := starlark.AsInt32(value)
	if err != nil {
		err = fmt.Errorf("%w: %v: %v", ErrConfigType, key, err)
		return
	}

	mode = cpu.EofMode(n)
	if !mode.Valid() {
		err = fmt.Errorf("%w: %v: %v", ErrConfigValue, key, mode)
	}

	return
}

// Parser returns a parser using the settings.
func (cfg *Config) Parser() *cpu.Parser {
	return &cpu.Parser{
		Verbose: cfg.Verbose,
		Legacy:  cfg.Legacy,
	}
}

// Apply the settings to an emulator.
func (cfg *Config) Apply(emu *emulator.Emulator) {
	emu.Verbose = cfg.Verbose
	emu.Cpu.Eof = cfg.Eof
	emu.Cpu.TapeLimit = cfg.TapeLimit
	emu.Cpu.Columns = cfg.Columns
}
