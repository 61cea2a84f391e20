package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette is a Theme resolved into lipgloss colors, plus the shades derived
// from it: zebra rows, the modified-row background and readable text colors.
type Palette struct {
	Bg          lipgloss.Color
	BgHighlight lipgloss.Color
	BgSelection lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Modified    lipgloss.Color
	Important   lipgloss.Color
	Error       lipgloss.Color

	RowBgAlt   lipgloss.Color
	ModifiedBg lipgloss.Color

	TextOnAccent   lipgloss.Color
	TextOnModified lipgloss.Color

	Modal ModalColors

	theme *Theme
	light bool
}

// ModalColors are the colors of the add/edit, delete and help dialogs.
type ModalColors struct {
	Bg          lipgloss.Color
	Border      lipgloss.Color
	Text        lipgloss.Color
	Muted       lipgloss.Color
	Highlight   lipgloss.Color
	Panel       lipgloss.Color // buttons and tags
	ReverseText lipgloss.AdaptiveColor
}

// CategoryColors holds the colors used to draw one category.
type CategoryColors struct {
	Fg   lipgloss.Color // list text
	Bg   lipgloss.Color // timeline block
	Text lipgloss.Color // text on Bg
}

// NewPalette resolves t. A nil theme uses DefaultName.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load(DefaultName)
	}
	light := luminance(t.Bg) > 0.55
	modifiedBg := blockShade(t.Modified, t.Bg, light)
	modalBg := first(t.BgHighlight, t.Bg)

	zebra := blend(t.Bg, "#ffffff", 0.30)
	if light {
		zebra = blend(t.Bg, "#000000", 0.10)
	}

	return &Palette{
		Bg:          lipgloss.Color(t.Bg),
		BgHighlight: lipgloss.Color(t.BgHighlight),
		BgSelection: lipgloss.Color(t.BgSelection),
		Fg:          lipgloss.Color(t.Fg),
		FgMuted:     lipgloss.Color(t.FgMuted),
		Accent:      lipgloss.Color(t.Accent),
		Modified:    lipgloss.Color(t.Modified),
		Important:   lipgloss.Color(t.Important),
		Error:       lipgloss.Color(t.Error),

		RowBgAlt:   lipgloss.Color(zebra),
		ModifiedBg: lipgloss.Color(modifiedBg),

		TextOnAccent:   lipgloss.Color(readable(t.Accent, t.Bg, t.Fg)),
		TextOnModified: lipgloss.Color(readable(modifiedBg, t.Fg, t.Bg)),

		Modal: ModalColors{
			Bg:          lipgloss.Color(modalBg),
			Border:      lipgloss.Color(t.Accent),
			Text:        lipgloss.Color(t.Fg),
			Muted:       lipgloss.Color(t.FgMuted),
			Highlight:   lipgloss.Color(first(t.BgSelection, t.Accent)),
			Panel:       lipgloss.Color(first(t.BgSelection, modalBg)),
			ReverseText: lipgloss.AdaptiveColor{Dark: modalBg, Light: t.Fg},
		},

		theme: t,
		light: light,
	}
}

// Category returns the colors for a category name.
func (p *Palette) Category(name string) CategoryColors {
	fg := p.theme.CategoryColor(name)
	bg := blockShade(fg, p.theme.Bg, p.light)
	return CategoryColors{
		Fg:   lipgloss.Color(fg),
		Bg:   lipgloss.Color(bg),
		Text: lipgloss.Color(readable(bg, p.theme.Fg, p.theme.Bg)),
	}
}

// CategoryPast returns the faded colors of a category for activities that
// already ended.
func (p *Palette) CategoryPast(name string) CategoryColors {
	fg := p.theme.CategoryColor(name)
	bg := scale(fg, 0.30, 30)
	if p.light {
		bg = blend(fg, p.theme.Bg, 0.88)
	}
	return CategoryColors{
		Fg:   lipgloss.Color(p.theme.FgMuted),
		Bg:   lipgloss.Color(bg),
		Text: lipgloss.Color(p.theme.FgMuted),
	}
}

// blockShade is the background of a timeline block or highlighted row
// drawn in accent: darker on dark themes, washed out on light ones.
func blockShade(accent, bg string, light bool) string {
	if light {
		return blend(accent, bg, 0.75)
	}
	return scale(accent, 0.50, 40)
}

// scale multiplies each channel of hex by factor, keeping every channel at
// or above floor (0-255). Invalid colors are returned unchanged.
func scale(hex string, factor float64, floor uint8) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	lo := float64(floor) / 255
	return colorful.Color{
		R: max(c.R*factor, lo),
		G: max(c.G*factor, lo),
		B: max(c.B*factor, lo),
	}.Hex()
}

// blend mixes a toward b by t in [0, 1].
func blend(a, b string, t float64) string {
	ca, errA := colorful.Hex(a)
	cb, errB := colorful.Hex(b)
	if errA != nil || errB != nil {
		return a
	}
	return ca.BlendRgb(cb, min(max(t, 0), 1)).Clamped().Hex()
}

// readable picks whichever of the two text colors contrasts more with bg.
func readable(bg, lightText, darkText string) string {
	if contrast(bg, lightText) >= contrast(bg, darkText) {
		return lightText
	}
	return darkText
}

// contrast is the WCAG contrast ratio of two colors.
func contrast(a, b string) float64 {
	la, lb := luminance(a), luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// luminance is the WCAG relative luminance of hex, or 0 when it does not parse.
func luminance(hex string) float64 {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
