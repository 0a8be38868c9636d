package runner

import (
	"errors"
	"fmt"
	"os"

	"brainfuck/pkg/color"
	"brainfuck/pkg/engine"

	"github.com/charmbracelet/log"
)

type Runner struct {
	Help       bool   // Show help message
	Verbose    bool   // Enable verbose output
	NoColor    bool   // Disable colored output
	MaxSteps   int    // Maximum instructions to execute (0 = unlimited)
	SourceFile string // Path to the program file
}

// Run loads the program file and executes it. An engine halt is reported on
// stdout after any partial program output and is not treated as a process
// failure; only collaborator failures (file system, stdin) are.
func (opts *Runner) Run() error {
	log.Info("Processing file", "file", opts.SourceFile)

	info, err := os.Stat(opts.SourceFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.Error("Path does not exist."))
		return nil
	}

	if !info.Mode().IsRegular() {
		fmt.Fprintln(os.Stderr, color.Error("Target is not a file."))
		return nil
	}

	input, err := os.ReadFile(opts.SourceFile)
	if err != nil {
		log.Fatal("Failed to read file", "file", opts.SourceFile, "error", err)
	}

	eng := engine.New(string(input),
		engine.WithInput(os.Stdin),
		engine.WithOutput(os.Stdout),
		engine.WithMaxSteps(opts.MaxSteps),
	)

	err = eng.Run()

	var rerr *engine.RuntimeError
	switch {
	case err == nil:
		log.Info("Program halted", "steps", eng.Steps())

	case errors.As(err, &rerr):
		fmt.Printf("\n%s (%s)\n",
			color.Error(rerr.Err.Error()),
			color.Position(rerr.Pos.Line, rerr.Pos.Column))

	default:
		return fmt.Errorf("execution failed: %w", err)
	}

	return nil
}
