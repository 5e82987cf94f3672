package main

import (
	"github.com/spf13/cobra"

	"calcd/internal/engine"
)

func NewKeysCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "keys [sequence]",
		Short: "Replay a keystroke sequence",
		Long: `Replay a keystroke sequence one key at a time, printing the display after
every accepted key. Absorbed keys print nothing, exactly as a button panel
would ignore them.

Two keys are special: 'C' clears the display and '=' evaluates it, carrying
the formatted result forward as the new display.

  calc keys '12..3+4='`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			display := ""
			for i := 0; i < len(args[0]); i++ {
				prev := display

				switch key := args[0][i]; key {
				case 'C':
					display = ""
				case '=':
					result, err := engine.Evaluate(display)
					if err != nil {
						printEvalError(cmd, err)
						display = ""
						continue
					}
					display = engine.Format(result)
				default:
					display = engine.Sanitize(display, key)
				}

				if display != prev {
					cmd.Println(display)
				}
			}
			return nil
		},
	}
}
