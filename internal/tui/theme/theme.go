// Package theme loads the embedded color themes and derives the colors the
// planner draws with.
package theme

import (
	"embed"
	"fmt"
	"hash/fnv"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var files embed.FS

// DefaultName is the theme used when none is configured.
const DefaultName = "mocha"

// Theme is one embedded color theme. All colors are "#rrggbb".
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`
	BgHighlight string `toml:"bg_highlight"` // prompt and modal surface
	BgSelection string `toml:"bg_selection"` // cursor row
	Fg          string `toml:"fg"`
	FgMuted     string `toml:"fg_muted"` // ended activities, hints
	Accent      string `toml:"accent"`
	Modified    string `toml:"modified"` // rows moved by the last change
	Important   string `toml:"important"`
	Error       string `toml:"error"`

	// Categories maps a category name to its color, ignoring case.
	Categories map[string]string `toml:"categories"`
	// Cycle colors the categories missing from Categories.
	Cycle []string `toml:"cycle"`
}

// Load returns the named theme. Unknown names fall back to DefaultName.
func Load(name string) (*Theme, error) {
	name = strings.ToLower(name)
	if !IsAvailable(name) {
		name = DefaultName
	}

	data, err := files.ReadFile(path.Join("embedded", name+".toml"))
	if err != nil {
		return nil, fmt.Errorf("reading theme %q: %w", name, err)
	}
	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.normalize()
	return &t, nil
}

func (t *Theme) normalize() {
	if t.Error == "" {
		t.Error = t.Accent
	}
	if len(t.Cycle) == 0 {
		t.Cycle = []string{t.Accent}
	}
	byName := make(map[string]string, len(t.Categories))
	for name, hex := range t.Categories {
		byName[strings.ToLower(name)] = hex
	}
	t.Categories = byName
}

// CategoryColor returns the color for a category. A category without its
// own entry always gets the same cycle color, picked by a hash of its name.
func (t *Theme) CategoryColor(name string) string {
	key := strings.ToLower(name)
	if hex, ok := t.Categories[key]; ok {
		return hex
	}
	if len(t.Cycle) == 0 {
		return t.Accent
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return t.Cycle[h.Sum32()%uint32(len(t.Cycle))]
}

// Available lists the embedded theme names in alphabetical order.
func Available() []string {
	entries, err := fs.ReadDir(files, "embedded")
	if err != nil {
		return []string{DefaultName}
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".toml"); ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// IsAvailable reports whether name is an embedded theme, ignoring case.
func IsAvailable(name string) bool {
	return slices.Contains(Available(), strings.ToLower(name))
}
