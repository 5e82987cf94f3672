package main

import (
	"errors"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"calcd/internal/engine"
)

var errColor = color.New(color.FgRed)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Handheld-style calculator",
		Long: `A handheld-style calculator.

Expressions are single display strings over digits, '.' and the four basic
operators, evaluated strictly left to right: 2+3*4 is 20, not 14.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewEvalCommand())
	cmd.AddCommand(NewKeysCommand())

	return cmd
}

// printEvalError maps an engine failure to the user-visible message. Division
// by zero gets its own text; everything else is the generic display error.
func printEvalError(cmd *cobra.Command, err error) {
	if errors.Is(err, engine.ErrDivisionByZero) {
		errColor.Fprintln(cmd.ErrOrStderr(), "Error: Division by zero")
		return
	}
	errColor.Fprintln(cmd.ErrOrStderr(), "Error")
}

func main() {
	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
