package engine

import "errors"

// Size is the number of cells on the tape. The interpreter follows the
// standard of 30k memory cells.
const Size = 30000

var (
	ErrUnderflow = errors.New("Tried to access memory out of range (underflow)")
	ErrOverflow  = errors.New("Tried to access memory out of range (overflow)")
)

// Tape is the memory model: a fixed-size array of unsigned cells and a
// single pointer into it. The pointer never wraps around.
type Tape struct {
	cells []uint32 // memory cells
	ptr   int      // memory pointer
}

// Create a new tape instance with all cells zeroed
func NewTape() *Tape {
	return &Tape{
		cells: make([]uint32, Size),
		ptr:   0,
	}
}

// Read returns the value of the cell the pointer is currently at
func (t *Tape) Read() uint32 {
	return t.cells[t.ptr]
}

// Write stores the supplied value in the cell the pointer is currently at
func (t *Tape) Write(val uint32) {
	t.cells[t.ptr] = val
}

// MoveLeft moves the pointer one cell to the left
func (t *Tape) MoveLeft() error {
	if t.ptr == 0 {
		return ErrUnderflow
	}

	t.ptr--
	return nil
}

// MoveRight moves the pointer one cell to the right
func (t *Tape) MoveRight() error {
	if t.ptr == Size-1 {
		return ErrOverflow
	}

	t.ptr++
	return nil
}

// Pointer returns the current pointer index
func (t *Tape) Pointer() int {
	return t.ptr
}
