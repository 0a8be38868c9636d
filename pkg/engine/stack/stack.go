package stack

import (
	"errors"
	"math"

	"brainfuck/pkg/scanner"
)

// MaxDepth bounds the number of simultaneously active loops.
const MaxDepth = math.MaxInt16

var (
	ErrDepthLimit    = errors.New("Nested loop limit reached.")
	ErrUnpairedClose = errors.New("Unpaired ']'.")
	ErrEmptyStack    = errors.New("Tried to peek empty stack")
)

// Frame records the point a loop repeats from: the cursor position just
// past its opening bracket.
type Frame struct {
	Pos scanner.Position
}

type Stack struct {
	frames []Frame
}

// NewStack creates a new stack instance
func NewStack() *Stack {
	return &Stack{
		frames: make([]Frame, 0, 8),
	}
}

// Push adds a frame to the top of the stack
func (s *Stack) Push(f Frame) error {
	if len(s.frames) == MaxDepth {
		return ErrDepthLimit
	}

	s.frames = append(s.frames, f)
	return nil
}

// Pop removes and returns the top frame of the stack
func (s *Stack) Pop() (Frame, error) {
	if len(s.frames) == 0 {
		return Frame{}, ErrUnpairedClose
	}

	f := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]

	return f, nil
}

// Peek returns the top frame of the stack without removing it
func (s *Stack) Peek() (Frame, error) {
	if len(s.frames) == 0 {
		return Frame{}, ErrEmptyStack
	}

	return s.frames[len(s.frames)-1], nil
}

// Get the size of the stack
func (s *Stack) Size() int {
	return len(s.frames)
}
