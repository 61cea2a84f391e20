package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/dayplan/internal/activity"
	"github.com/javiermolinar/dayplan/internal/config"
	"github.com/javiermolinar/dayplan/internal/timeutil"
	"github.com/javiermolinar/dayplan/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  dayplan config`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := &prompter{in: bufio.NewReader(cmd.InOrStdin()), out: cmd.OutOrStdout()}
			return a.runConfigInteractive(p)
		},
	}
}

// prompter reads answers from in and writes questions to out.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func (a *App) runConfigInteractive(p *prompter) error {
	cfg := a.config
	fmt.Fprintf(p.out, "Config file: %s\n\n", a.configPath)

	if _, err := os.Stat(a.configPath); errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(p.out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(a.configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(p.out, "Created %s\n\n", a.configPath)
	}

	printConfig(p.out, cfg)

	if !p.yesNo("\nWould you like to edit the configuration?") {
		return nil
	}

	cfg.Display.Use24Hour = p.yesNoDefault("Use 24-hour clock", cfg.Display.Use24Hour)
	cfg.Schedule.DayStart = p.timeValue("Day start", cfg.Schedule.DayStart)
	cfg.Schedule.Categories = p.categories(cfg.Schedule.Categories)
	cfg.UI.Theme = p.theme(cfg.UI.Theme)
	cfg.UI.HighlightMS = p.intValue("Highlight duration (ms)", cfg.UI.HighlightMS)
	cfg.Log.Level = p.value("Log level", cfg.Log.Level)
	cfg.Log.File = p.value("Log file (empty for default)", cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.SaveTo(a.configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	a.log.Info().Str("path", a.configPath).Msg("saved config")

	fmt.Fprintln(p.out, "\nConfiguration saved!")
	return nil
}

func printConfig(w io.Writer, cfg *config.Config) {
	categories := "(defaults)"
	if len(cfg.Schedule.Categories) > 0 {
		categories = strings.Join(cfg.Schedule.Categories, ", ")
	}
	logFile := cfg.Log.File
	if logFile == "" {
		logFile = "(default) " + config.DefaultLogPath()
	}

	fmt.Fprintln(w, "Current configuration:")
	fmt.Fprintln(w, "──────────────────────")
	fmt.Fprintln(w, "[display]")
	fmt.Fprintf(w, "  use_24_hour  = %t\n", cfg.Display.Use24Hour)
	fmt.Fprintln(w, "\n[schedule]")
	fmt.Fprintf(w, "  day_start    = %s\n", cfg.Schedule.DayStart)
	fmt.Fprintf(w, "  categories   = %s\n", categories)
	fmt.Fprintf(w, "  activities   = %d\n", len(cfg.Schedule.Activities))
	fmt.Fprintln(w, "\n[ui]")
	fmt.Fprintf(w, "  theme        = %s\n", cfg.UI.Theme)
	fmt.Fprintf(w, "  highlight_ms = %d\n", cfg.UI.HighlightMS)
	fmt.Fprintln(w, "\n[log]")
	fmt.Fprintf(w, "  level        = %s\n", cfg.Log.Level)
	fmt.Fprintf(w, "  file         = %s\n", logFile)
}

func (p *prompter) readLine() string {
	input, _ := p.in.ReadString('\n')
	return strings.TrimSpace(input)
}

func (p *prompter) yesNo(question string) bool {
	fmt.Fprintf(p.out, "%s [y/N]: ", question)
	input := strings.ToLower(p.readLine())
	return input == "y" || input == "yes"
}

func (p *prompter) yesNoDefault(label string, current bool) bool {
	hint := "y/N"
	if current {
		hint = "Y/n"
	}
	fmt.Fprintf(p.out, "  %s [%s]: ", label, hint)
	switch strings.ToLower(p.readLine()) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return current
	}
}

func (p *prompter) value(label, current string) string {
	if current == "" {
		fmt.Fprintf(p.out, "  %s: ", label)
	} else {
		fmt.Fprintf(p.out, "  %s [%s]: ", label, current)
	}
	input := p.readLine()
	if input == "" {
		return current
	}
	return input
}

// timeValue accepts lenient input ("7", "730") and stores the canonical form.
func (p *prompter) timeValue(label, current string) string {
	for {
		value := p.value(label, current)
		if value == current {
			return current
		}
		parsed, err := timeutil.ParseFlexible(value, true)
		if err == nil {
			return parsed.Time
		}
		fmt.Fprintf(p.out, "  Invalid time %q.\n", value)
	}
}

func (p *prompter) intValue(label string, current int) int {
	for {
		value := p.value(label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil && n >= 0 {
			return n
		}
		fmt.Fprintf(p.out, "  Invalid number %q.\n", value)
	}
}

func (p *prompter) categories(current []string) []string {
	fmt.Fprintf(p.out, "  Categories (comma-separated) [%s]: ", strings.Join(current, ", "))
	input := p.readLine()
	if input == "" {
		return current
	}
	cats := activity.ParseCategories(input)
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = string(c)
	}
	return out
}

func (p *prompter) theme(current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(p.value(label, current))
		if theme.IsAvailable(value) {
			return value
		}
		if value == current {
			return theme.DefaultName
		}
		fmt.Fprintf(p.out, "  Invalid theme %q. Available: %s\n", value, options)
	}
}
