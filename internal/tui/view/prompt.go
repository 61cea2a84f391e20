package view

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/dayplan/internal/tui/input"
)

const (
	promptMark   = "> "
	promptIndent = "  "
)

// PromptState captures prompt input state for rendering.
type PromptState struct {
	Value      string
	Cursor     string
	ModePrompt bool
}

// PromptLines returns the wrapped input followed by help for what is being
// typed: matching commands while the name is incomplete, then the usage of
// the chosen command once its arguments start.
func PromptLines(state PromptState, width int, commands input.Commands) []string {
	lines := indent(wrap(state.Value+state.Cursor, width-len(promptMark), width-len(promptIndent)), promptMark)
	if !state.ModePrompt {
		return lines
	}
	for _, help := range promptHelp(state.Value, commands) {
		lines = append(lines, indent(wrap(help, width-len(promptIndent), width-len(promptIndent)), promptIndent)...)
	}
	return lines
}

func promptHelp(value string, commands input.Commands) []string {
	name, _, typingArgs := strings.Cut(strings.TrimLeft(value, " "), " ")
	if typingArgs {
		if c, ok := commands.Lookup(name); ok {
			return []string{c.Description}
		}
		return nil
	}
	var help []string
	for _, c := range commands.Matching(value) {
		help = append(help, c.Name+" "+c.Description)
	}
	return help
}

// ClampPromptLines keeps at most maxLines, marking the last kept line with
// an ellipsis when lines were dropped.
func ClampPromptLines(lines []string, maxLines, width int) []string {
	if maxLines <= 0 {
		return nil
	}
	if len(lines) <= maxLines {
		return lines
	}
	out := append([]string(nil), lines[:maxLines]...)
	last := out[maxLines-1]
	if runewidth.StringWidth(last) < width {
		out[maxLines-1] = last + "…"
	} else {
		out[maxLines-1] = runewidth.Truncate(last, max(width, 0), "…")
	}
	return out
}

// RenderPrompt draws the prompt box. With no lines it draws an empty box of
// minLines rows, so the footer keeps its height while a modal is open.
func RenderPrompt(width int, style lipgloss.Style, lines []string, minLines int) string {
	frameW, _ := style.GetFrameSize()
	style = style.Width(max(width-frameW, 0))
	for len(lines) < max(minLines, 1) {
		lines = append(lines, "")
	}
	return style.Render(strings.Join(lines, "\n"))
}

// wrap breaks s on spaces so the first line fits in first cells and the
// rest in rest cells. Words longer than a line are split.
func wrap(s string, first, rest int) []string {
	if first <= 0 || rest <= 0 {
		return []string{""}
	}

	var lines []string
	width := first
	line := ""
	for i, word := range strings.Split(s, " ") {
		if i > 0 {
			if runewidth.StringWidth(line)+1+runewidth.StringWidth(word) <= width {
				line += " " + word
				continue
			}
			lines = append(lines, line)
			width = rest
		}
		for runewidth.StringWidth(word) > width {
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				_, size := utf8.DecodeRuneInString(word)
				head = word[:size]
			}
			lines = append(lines, head)
			word = word[len(head):]
			width = rest
		}
		line = word
	}
	return append(lines, line)
}

func indent(lines []string, first string) []string {
	for i := range lines {
		if i == 0 {
			lines[i] = first + lines[i]
		} else {
			lines[i] = promptIndent + lines[i]
		}
	}
	return lines
}
