package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/javiermolinar/dayplan/internal/activity"
)

// Color definitions for consistent styling across the CLI.
var (
	colorHeader    = color.New(color.Bold)
	colorStats     = color.New(color.FgGreen)
	colorMuted     = color.New(color.FgWhite, color.Faint)
	colorImportant = color.New(color.FgYellow, color.Bold)
	colorModified  = color.New(color.FgMagenta)
	colorConflict  = color.New(color.FgRed)
)

// categoryColors maps the built-in categories; custom ones print uncolored.
var categoryColors = map[activity.Category]*color.Color{
	activity.CategoryCareer:    color.New(color.FgBlue),
	activity.CategoryPortfolio: color.New(color.FgMagenta),
	activity.CategoryHealth:    color.New(color.FgGreen),
	activity.CategoryContent:   color.New(color.FgHiRed),
	activity.CategoryPetCare:   color.New(color.FgYellow),
	activity.CategoryPersonal:  color.New(color.FgHiMagenta),
	activity.CategoryLeisure:   color.New(color.FgCyan),
	activity.CategoryFlexible:  color.New(color.FgHiBlue),
}

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatStats(s string) string {
	return colorStats.Sprint(s)
}

func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

func formatCategory(c activity.Category) string {
	if col, ok := categoryColors[c]; ok {
		return col.Sprint(string(c))
	}
	return string(c)
}
