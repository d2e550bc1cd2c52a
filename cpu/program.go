package cpu

import (
	"iter"
	"slices"
	"strings"

	"github.com/vigoux/rebf/internal"
)

// Statement is a single element of a Block: either a Run or a *Loop.
type Statement interface {
	// Tokens returns the canonical program characters of the statement.
	Tokens() iter.Seq[rune]

	statement()
}

// Run is a non-empty sequence of instructions executed in order.
type Run []Instruction

// Loop repeats its Body while the current cell is non-zero.
type Loop struct {
	Body Block
}

// Block is an ordered sequence of statements. The end of a Block
// is the end of that branch of the program.
type Block []Statement

// Program is a parsed program.
type Program struct {
	Block
}

func (Run) statement()   {}
func (*Loop) statement() {}

// Tokens returns the characters of the run.
func (run Run) Tokens() iter.Seq[rune] {
	return internal.IterSeqMap(slices.Values(run), Instruction.Rune)
}

// Tokens returns the loop body wrapped in loop delimiters.
func (loop *Loop) Tokens() iter.Seq[rune] {
	return internal.IterSeqConcat(
		internal.IterSeqOf[rune](LOOP_OPEN),
		loop.Body.Tokens(),
		internal.IterSeqOf[rune](LOOP_CLOSE),
	)
}

// Tokens returns the characters of every statement in the block.
func (blk Block) Tokens() iter.Seq[rune] {
	return internal.IterSeqFlatten(internal.IterSeqMap(slices.Values(blk), Statement.Tokens))
}

// String returns the canonical text of the block.
func (blk Block) String() string {
	var sb strings.Builder
	for r := range blk.Tokens() {
		sb.WriteRune(r)
	}
	return sb.String()
}

// walk calls fn for every statement, depth first, with the loop nesting depth.
func (blk Block) walk(depth int, fn func(stmt Statement, depth int)) {
	for _, stmt := range blk {
		fn(stmt, depth)
		if loop, ok := stmt.(*Loop); ok {
			loop.Body.walk(depth+1, fn)
		}
	}
}

// Instructions returns the total number of instructions in the program.
func (prog *Program) Instructions() (count int) {
	prog.walk(0, func(stmt Statement, _ int) {
		if run, ok := stmt.(Run); ok {
			count += len(run)
		}
	})
	return
}

// Depth returns the deepest loop nesting of the program.
func (prog *Program) Depth() (depth int) {
	prog.walk(0, func(stmt Statement, level int) {
		if _, ok := stmt.(*Loop); ok && level+1 > depth {
			depth = level + 1
		}
	})
	return
}
