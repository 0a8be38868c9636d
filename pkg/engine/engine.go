package engine

import (
	"bufio"
	"io"
	"os"

	"brainfuck/pkg/engine/stack"
	"brainfuck/pkg/scanner"
)

// Engine executes one program against a fresh tape. It owns the scanner
// cursor, the tape and the loop frame stack for the duration of a run.
type Engine struct {
	scn    *scanner.Scanner // instruction supply and position cursor
	tape   *Tape            // memory cells and pointer
	frames *stack.Stack     // active loops

	in  *bufio.Reader // byte source for ','
	out io.Writer     // character sink for '.'

	maxSteps int // maximum steps (0 = unlimited)
	steps    int // steps executed
}

type Option func(*Engine)

// WithInput sets the byte source for the input instruction
func WithInput(r io.Reader) Option {
	return func(e *Engine) { e.in = bufio.NewReader(r) }
}

// WithOutput sets the output writer for the output instruction
func WithOutput(w io.Writer) Option {
	return func(e *Engine) { e.out = w }
}

// WithMaxSteps sets a maximum number of executed instructions before Run
// returns ErrMaxStepsExceeded
func WithMaxSteps(n int) Option {
	return func(e *Engine) { e.maxSteps = n }
}

// New creates a new Engine for the given program text
func New(src string, opts ...Option) *Engine {
	e := &Engine{
		scn:      scanner.NewScanner(src),
		tape:     NewTape(),
		frames:   stack.NewStack(),
		maxSteps: 0, // 0 => unlimited
	}

	for _, o := range opts {
		o(e)
	}

	if e.in == nil {
		e.in = bufio.NewReader(os.Stdin)
	}

	if e.out == nil {
		e.out = os.Stdout
	}

	return e
}

// Run executes until the program is exhausted or an error occurs
func (e *Engine) Run() error {
	for {
		halted, err := e.Step()
		if err != nil {
			return err
		}

		if halted {
			return nil
		}
	}
}

// Tape returns the engine's tape
func (e *Engine) Tape() *Tape {
	return e.tape
}

// Pos returns the current cursor position
func (e *Engine) Pos() scanner.Position {
	return e.scn.Pos()
}

// Steps returns the number of instructions executed so far
func (e *Engine) Steps() int {
	return e.steps
}
