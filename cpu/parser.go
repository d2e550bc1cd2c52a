package cpu

import (
	"bufio"
	"errors"
	"io"
	"log"
	"strings"
)

// Parser is a single pass parser for program text.
type Parser struct {
	Verbose bool // If set, logs a summary of each parsed program.
	Legacy  bool // If set, unmatched loop delimiters never fail the parse.
}

// ParseString parses program text.
func (ps *Parser) ParseString(text string) (prog *Program, err error) {
	return ps.Parse(strings.NewReader(text))
}

// Parse reads the input once, left to right, and returns its Program.
//
// Instructions accumulate into a Run until a loop delimiter. A '[' starts a
// new Block for the loop body, and the matching ']' closes it into a Loop of
// the enclosing Block. Characters that are neither instructions nor loop
// delimiters are skipped.
//
// Unmatched delimiters fail with ErrLoopUnopened or ErrLoopUnclosed. In
// Legacy mode an unmatched ']' ends the program at that point, and loops
// still open at the end of input are closed there.
func (ps *Parser) Parse(input io.Reader) (prog *Program, err error) {
	rd, ok := input.(io.RuneReader)
	if !ok {
		rd = bufio.NewReader(input)
	}

	var blocks Stack[Block]
	var run Run

	flush := func() {
		if len(run) != 0 {
			top := blocks.Top()
			*top = append(*top, run)
			run = nil
		}
	}

	blocks.Push(nil)

scan:
	for {
		var r rune
		r, _, err = rd.ReadRune()
		if errors.Is(err, io.EOF) {
			err = nil
			break
		}
		if err != nil {
			return
		}

		op, ok := InstructionOf(r)
		if ok {
			run = append(run, op)
			continue
		}

		switch r {
		case LOOP_OPEN:
			flush()
			blocks.Push(nil)
		case LOOP_CLOSE:
			flush()
			if blocks.Len() == 1 {
				if !ps.Legacy {
					err = ErrLoopUnopened
					return
				}
				if ps.Verbose {
					log.Printf("parser: unmatched %c, ignoring the rest of the program", LOOP_CLOSE)
				}
				break scan
			}
			body, _ := blocks.Pop()
			top := blocks.Top()
			*top = append(*top, &Loop{Body: body})
		}
	}

	flush()

	for blocks.Len() > 1 {
		if !ps.Legacy {
			err = ErrLoopUnclosed
			return
		}
		body, _ := blocks.Pop()
		top := blocks.Top()
		*top = append(*top, &Loop{Body: body})
	}

	root, _ := blocks.Pop()
	prog = &Program{Block: root}

	if ps.Verbose {
		log.Printf("parser: %d instructions, loop depth %d", prog.Instructions(), prog.Depth())
	}

	return
}

// IsIncomplete returns true if err means more input could complete the program.
func IsIncomplete(err error) bool {
	return errors.Is(err, ErrLoopUnclosed)
}
