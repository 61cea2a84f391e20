package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/dayplan/internal/timeutil"
)

func (a *App) timeCmd() *cobra.Command {
	var twelveHour bool

	cmd := &cobra.Command{
		Use:   "time INPUT",
		Short: "Show how a partial time entry is interpreted",
		Long: `Run the lenient time parser used by the add form and the /add prompt.

Examples:
  dayplan time 830         # 08:30
  dayplan time 5 --12h     # 5:00 PM
  dayplan time 14:3        # 14:30`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			use24 := a.config.Display.Use24Hour && !twelveHour
			p, err := timeutil.ParseFlexible(args[0], use24)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "input:    %s\n", args[0])
			fmt.Fprintf(out, "time:     %s\n", p.Time)
			fmt.Fprintf(out, "display:  %s\n", p.Display)
			if p.Meridiem != "" {
				fmt.Fprintf(out, "meridiem: %s\n", p.Meridiem)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&twelveHour, "12h", false, "Interpret and display in 12-hour format")
	return cmd
}
