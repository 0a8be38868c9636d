package scanner_test

import (
	"brainfuck/pkg/scanner"
	"testing"
)

func TestInstructions(t *testing.T) {
	input := "this text is a comment + and so is this - then\n[>.]<,"
	s := scanner.NewScanner(input)

	expected := []scanner.Instruction{
		scanner.Increment, scanner.Decrement,
		scanner.LoopOpen, scanner.MoveRight, scanner.Output, scanner.LoopClose,
		scanner.MoveLeft, scanner.Input,
	}

	for i, want := range expected {
		ins, ok := s.Next()
		if !ok {
			t.Fatalf("Instruction %d: scanner exhausted early", i)
		}
		if ins != want {
			t.Errorf("Instruction %d: expected %s, got %s", i, want, ins)
		}
	}

	if _, ok := s.Next(); ok {
		t.Errorf("Expected scanner to be exhausted")
	}
}

func TestPositionAfterInstruction(t *testing.T) {
	s := scanner.NewScanner("a+b")

	ins, ok := s.Next()
	if !ok || ins != scanner.Increment {
		t.Fatalf("Expected '+', got %v (ok=%v)", ins, ok)
	}

	// 'a' was skipped, '+' consumed: the cursor sits just past the '+'
	pos := s.Pos()
	if pos.Line != 1 || pos.Column != 3 || pos.Offset != 2 {
		t.Errorf("Expected position 1, 3, 2, got %s", pos)
	}
}

func TestNewlineBookkeeping(t *testing.T) {
	s := scanner.NewScanner("+\n  +")

	s.Next()
	pos := s.Pos()
	if pos.Line != 1 || pos.Column != 2 {
		t.Errorf("Expected position 1:2 after first '+', got %s", pos)
	}

	ins, ok := s.Next()
	if !ok || ins != scanner.Increment {
		t.Fatalf("Expected second '+', got %v (ok=%v)", ins, ok)
	}

	pos = s.Pos()
	if pos.Line != 2 || pos.Column != 4 || pos.Offset != 5 {
		t.Errorf("Expected position 2, 4, 5, got %s", pos)
	}
}

func TestRewind(t *testing.T) {
	s := scanner.NewScanner("+-")

	s.Next()
	mark := s.Pos()

	s.Next()
	s.Rewind(mark)

	ins, ok := s.Next()
	if !ok || ins != scanner.Decrement {
		t.Errorf("Expected '-' after rewind, got %v (ok=%v)", ins, ok)
	}
}

func TestJumpKeepsLineColumn(t *testing.T) {
	s := scanner.NewScanner("[++]+")

	s.Next() // consume '['
	before := s.Pos()

	s.Jump(4)

	pos := s.Pos()
	if pos.Offset != 4 {
		t.Errorf("Expected offset 4 after jump, got %d", pos.Offset)
	}
	if pos.Line != before.Line || pos.Column != before.Column {
		t.Errorf("Expected line/column unchanged by jump, got %s", pos)
	}
}

func TestIsInstruction(t *testing.T) {
	for _, r := range "<>+-.,[]" {
		if !scanner.IsInstruction(r) {
			t.Errorf("Expected %q to be an instruction", r)
		}
	}

	for _, r := range "ab \t#!0\n" {
		if scanner.IsInstruction(r) {
			t.Errorf("Expected %q to be inert", r)
		}
	}
}
