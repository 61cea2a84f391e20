package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Box places content in a w×h area. Blank cells take the bg color.
func Box(w, h int, vAlign lipgloss.Position, content string, bg lipgloss.Color) string {
	placed := lipgloss.Place(w, h, lipgloss.Left, vAlign, content,
		lipgloss.WithWhitespaceBackground(bg))
	return Pad(placed, w, h, bg)
}

// Pad returns exactly h lines, each filled with bg up to w cells. Lines
// already wider than w are kept as they are.
func Pad(content string, w, h int, bg lipgloss.Color) string {
	if w <= 0 || h <= 0 {
		return content
	}
	fill := lipgloss.NewStyle().Background(bg)
	src := strings.Split(content, "\n")
	out := make([]string, h)
	for i := range out {
		var line string
		if i < len(src) {
			line = src[i]
		}
		if gap := w - lipgloss.Width(line); gap > 0 {
			line += fill.Render(strings.Repeat(" ", gap))
		}
		out[i] = line
	}
	return strings.Join(out, "\n")
}

// Overlay splices box, centered, over a w×h base. Every box row is padded
// to the widest row and keeps the bg color across style resets.
func Overlay(base, box string, w, h int, bg lipgloss.Color) string {
	rows := strings.Split(box, "\n")
	boxW := 0
	for _, r := range rows {
		boxW = max(boxW, lipgloss.Width(r))
	}
	boxW = min(boxW, w)
	if boxW == 0 || h <= 0 {
		return base
	}

	top := max((h-len(rows))/2, 0)
	left := max((w-boxW)/2, 0)
	fill := lipgloss.NewStyle().Background(bg)
	seq := backgroundSeq(bg)

	under := strings.Split(Pad(base, w, h, ""), "\n")
	for i, row := range rows {
		y := top + i
		if y >= len(under) {
			break
		}
		row = ansi.Truncate(row, boxW, "")
		if gap := boxW - lipgloss.Width(row); gap > 0 {
			row += fill.Render(strings.Repeat(" ", gap))
		}
		row = keepBackground(row, seq) + ansi.ResetStyle
		under[y] = ansi.Cut(under[y], 0, left) + row + ansi.Cut(under[y], left+boxW, w)
	}
	return strings.Join(under, "\n")
}

// keepBackground re-applies seq after every sequence that clears the background.
func keepBackground(row, seq string) string {
	if seq == "" {
		return row
	}
	for _, reset := range []string{ansi.ResetStyle, "\x1b[0m", "\x1b[49m"} {
		row = strings.ReplaceAll(row, reset, reset+seq)
	}
	return row
}

func backgroundSeq(bg lipgloss.Color) string {
	if bg == "" {
		return ""
	}
	return ansi.Style{}.BackgroundColor(ansi.HexColor(string(bg))).String()
}
