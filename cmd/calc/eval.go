package main

import (
	"github.com/spf13/cobra"

	"calcd/internal/engine"
)

func NewEvalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "eval [expression]",
		Short: "Evaluate a display string",
		Long: `Evaluate a finished display string and print the formatted result.

Quote the expression so the shell does not expand '*':

  calc eval '2+3*4'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := engine.Evaluate(args[0])
			if err != nil {
				printEvalError(cmd, err)
				return err
			}

			cmd.Println(engine.Format(result))
			return nil
		},
	}
}
