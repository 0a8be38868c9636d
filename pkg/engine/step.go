package engine

import (
	"fmt"
	"math"
	"unicode/utf8"

	"brainfuck/pkg/engine/stack"
	"brainfuck/pkg/scanner"
)

// Step executes a single instruction, returning (halted, error). Engine
// failures come back as *RuntimeError carrying the failing position; an
// input read failure comes back as a plain error and is fatal to the run.
func (e *Engine) Step() (bool, error) {
	if e.maxSteps > 0 && e.steps >= e.maxSteps {
		return false, ErrMaxStepsExceeded
	}

	ins, ok := e.scn.Next()
	if !ok {
		return true, nil
	}
	e.steps++

	var err error
	switch ins {
	case scanner.MoveLeft:
		err = e.tape.MoveLeft()

	case scanner.MoveRight:
		err = e.tape.MoveRight()

	case scanner.Increment:
		if e.tape.Read() == math.MaxUint32 {
			err = ErrCellOverflow
		} else {
			e.tape.Write(e.tape.Read() + 1)
		}

	case scanner.Decrement:
		if e.tape.Read() == 0 {
			err = ErrCellNegative
		} else {
			e.tape.Write(e.tape.Read() - 1)
		}

	case scanner.LoopOpen:
		err = e.loopOpen()

	case scanner.LoopClose:
		err = e.loopClose()

	case scanner.Output:
		err = e.writeCell()

	case scanner.Input:
		if rerr := e.readCell(); rerr != nil {
			return false, fmt.Errorf("Couldn't read from std: %w", rerr)
		}

	default:
		err = ErrUnexpected
	}

	if err != nil {
		return false, &RuntimeError{Err: err, Pos: e.scn.Pos()}
	}

	return false, nil
}

// loopOpen handles '[': when the current cell is zero, skip past the
// matching ']' without creating a frame; otherwise push the position of the
// first body instruction so ']' can repeat from there.
func (e *Engine) loopOpen() error {
	end, ok := e.scn.MatchingClose(e.scn.Pos().Offset)
	if !ok {
		return ErrLoopNotClosed
	}

	if e.tape.Read() == 0 {
		// offset-only jump; line/column are not replayed over the skipped body
		e.scn.Jump(end + 1)
		return nil
	}

	return e.frames.Push(stack.Frame{Pos: e.scn.Pos()})
}

// loopClose handles ']': repeat the loop body while the current cell is
// non-zero, discard the frame once it reaches zero. The entry condition of
// '[' is not re-checked here; the next pass through the body re-evaluates
// it at this same ']'.
func (e *Engine) loopClose() error {
	top, err := e.frames.Peek()
	if err != nil {
		return ErrObsoleteClose
	}

	if e.tape.Read() != 0 {
		e.scn.Rewind(top.Pos)
		return nil
	}

	_, err = e.frames.Pop()
	return err
}

// writeCell emits the current cell as a Unicode scalar value
func (e *Engine) writeCell() error {
	v := e.tape.Read()
	if !utf8.ValidRune(rune(v)) {
		return ErrUnprintable
	}

	fmt.Fprintf(e.out, "%c", rune(v))
	return nil
}

// readCell blocks until one non-newline byte is available on the input and
// stores it in the current cell. Newline bytes are discarded.
func (e *Engine) readCell() error {
	b, err := e.in.ReadByte()
	for err == nil && b == '\n' {
		b, err = e.in.ReadByte()
	}

	if err != nil {
		return err
	}

	e.tape.Write(uint32(b))
	return nil
}
