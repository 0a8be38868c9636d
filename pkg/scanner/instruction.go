package scanner

// Instruction is one executable symbol of the language.
type Instruction rune

const (
	MoveLeft  Instruction = '<' // move the memory pointer one cell to the left
	MoveRight Instruction = '>' // move the memory pointer one cell to the right
	Increment Instruction = '+' // increment the current cell
	Decrement Instruction = '-' // decrement the current cell
	Output    Instruction = '.' // print the current cell as a character
	Input     Instruction = ',' // read one byte into the current cell
	LoopOpen  Instruction = '[' // start of a loop
	LoopClose Instruction = ']' // end of a loop
)

// IsInstruction reports whether r belongs to the instruction alphabet.
// Every other character is inert and skipped by the scanner.
func IsInstruction(r rune) bool {
	switch Instruction(r) {
	case MoveLeft, MoveRight, Increment, Decrement, Output, Input, LoopOpen, LoopClose:
		return true
	default:
		return false
	}
}

// String returns a string representation of the Instruction
func (i Instruction) String() string {
	return string(rune(i))
}
