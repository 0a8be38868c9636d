package engine

import (
	"errors"
	"fmt"

	"brainfuck/pkg/scanner"
)

var (
	ErrCellOverflow  = errors.New("Exceeded max cell value")
	ErrCellNegative  = errors.New("Cells cannot have negative values")
	ErrLoopNotClosed = errors.New("Loop not closed")
	ErrObsoleteClose = errors.New("Obsolete loop close bracket")
	ErrUnprintable   = errors.New("Could not print character")
	ErrUnexpected    = errors.New("Unexpected instruction")

	ErrMaxStepsExceeded = errors.New("maximum steps exceeded")
)

// RuntimeError is a clean engine halt: one failed instruction together with
// the cursor position just past it. It is distinct from process-fatal I/O
// failures, which propagate as plain errors.
type RuntimeError struct {
	Err error
	Pos scanner.Position
}

// Error renders the message in the "<msg> (<line>: <column>)" form
func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s (%d: %d)", e.Err, e.Pos.Line, e.Pos.Column)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}
