package scanner

type Scanner struct {
	input  []rune // program text split into characters for easy reading
	length int    // length of the program text
	offset int    // current offset into the program text
	line   int    // current line number for error reporting
	column int    // current column number for error reporting
}

// Create a new scanner instance
func NewScanner(s string) *Scanner {
	input := []rune(s)

	return &Scanner{
		input:  input,
		length: len(input),
		offset: 0,
		line:   1,
		column: 1,
	}
}

// Next returns the next instruction from the program text, skipping any
// character outside the instruction alphabet. Consuming a character advances
// the offset and column; a newline advances the line and resets the column
// instead. The second return value is false when the program is exhausted.
func (s *Scanner) Next() (Instruction, bool) {
	for s.offset < s.length {
		ch := s.input[s.offset]

		switch {
		case IsInstruction(ch):
			s.offset++
			s.column++
			return Instruction(ch), true

		case ch == '\n':
			s.offset++
			s.line++
			s.column = 1

		default:
			s.offset++
			s.column++
		}
	}

	return 0, false
}

// HasMore checks if there are more characters to read
func (s *Scanner) HasMore() bool {
	return s.offset < s.length
}

// Pos returns the current cursor position. After Next it is the position
// just past the consumed instruction.
func (s *Scanner) Pos() Position {
	return Position{
		Line:   s.line,
		Column: s.column,
		Offset: s.offset,
	}
}

// Jump moves the cursor offset without touching line or column bookkeeping.
// Used to skip past a loop body whose entry condition is zero.
func (s *Scanner) Jump(offset int) {
	s.offset = offset
}

// Rewind restores the full cursor from a previously captured position.
// Used to repeat a loop body.
func (s *Scanner) Rewind(pos Position) {
	s.offset = pos.Offset
	s.line = pos.Line
	s.column = pos.Column
}

// MatchingClose scans forward from the given offset and returns the offset
// of the loop-close symbol balancing the loop opened just before it,
// counting nested opens along the way. It is read-only: the cursor is left
// untouched. The second return value is false when the program ends before
// a balancing close is found.
func (s *Scanner) MatchingClose(from int) (int, bool) {
	opening := 0

	for i := from; i < s.length; i++ {
		switch Instruction(s.input[i]) {
		case LoopClose:
			if opening == 0 {
				return i, true
			}
			opening--

		case LoopOpen:
			opening++
		}
	}

	return 0, false
}

// Len returns the length of the program text in characters
func (s *Scanner) Len() int {
	return s.length
}
