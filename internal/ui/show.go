package ui

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) showCmd() *cobra.Command {
	var twelveHour bool
	var noColor bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the configured schedule",
		Long: `Display the starting schedule from the config file after overlaps
have been resolved, with per-category totals.

Example:
  dayplan show --12h`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			engine, res, err := a.seededEngine()
			if err != nil {
				return err
			}

			use24 := a.config.Display.Use24Hour && !twelveHour
			out := cmd.OutOrStdout()
			list := engine.List()
			if len(list) == 0 {
				fmt.Fprintf(out, "No activities scheduled. Add [[schedule.activities]] to %s\n", a.configPath)
				fmt.Fprintln(out, "or run dayplan to plan interactively.")
				return nil
			}

			fmt.Fprintf(out, "=== %s ===\n\n", formatHeader("Schedule ("+clockName(use24)+")"))
			PrintSchedule(out, list, PrintOpts{Use24Hour: use24, Highlight: res.Modified})
			fmt.Fprintln(out)
			PrintStats(out, engine.Stats())
			if len(res.Conflicts) > 0 {
				fmt.Fprintln(out)
				PrintConflicts(out, res.Conflicts, use24)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&twelveHour, "12h", false, "Display times in 12-hour format")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
