package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/dayplan/internal/config"
)

func (a *App) checkCmd() *cobra.Command {
	var twelveHour bool
	var noColor bool
	var write bool

	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Resolve a schedule file and report its overlaps",
		Long: `Load a schedule file, replay it through the schedule engine and print
every overlap that was resolved, the resulting schedule and its totals.

TOML is the default format; files ending in .yaml or .yml are read as YAML.
With --write the resolved times are written back to FILE.

Example:
  dayplan check monday.toml
  dayplan check monday.yaml --write`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				DisableColor()
			}
			path := args[0]
			sf, err := config.LoadScheduleFile(path)
			if err != nil {
				return err
			}

			engine, err := a.newEngine()
			if err != nil {
				return err
			}
			res, err := engine.Load(config.Drafts(sf.Activities))
			if err != nil {
				return fmt.Errorf("checking %s: %w", path, err)
			}
			a.log.Info().
				Str("file", path).
				Int("activities", engine.Len()).
				Int("conflicts", len(res.Conflicts)).
				Msg("checked schedule")

			use24 := a.config.Display.Use24Hour && !twelveHour
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "=== %s ===\n\n", formatHeader(path))
			PrintConflicts(out, res.Conflicts, use24)
			fmt.Fprintln(out)
			PrintSchedule(out, engine.List(), PrintOpts{Use24Hour: use24, Highlight: res.Modified})
			fmt.Fprintln(out)
			PrintStats(out, engine.Stats())

			if !write || len(res.Conflicts) == 0 {
				return nil
			}
			sf.Activities = config.FromActivities(engine.List())
			if err := config.SaveScheduleFile(path, sf); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nWrote resolved schedule to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&twelveHour, "12h", false, "Display times in 12-hour format")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write resolved times back to FILE")
	return cmd
}
