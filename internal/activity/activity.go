// Package activity defines the core domain types for dayplan.
package activity

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/javiermolinar/dayplan/internal/timeutil"
)

// MaxDuration is the practical upper bound of an activity, one day.
const MaxDuration = timeutil.MinutesPerDay

// Validation errors.
var (
	ErrEmptyLabel      = errors.New("activity label cannot be empty")
	ErrInvalidDuration = fmt.Errorf("duration must be between 1 and %d minutes", MaxDuration)
	ErrUnknownCategory = errors.New("unknown category")
	ErrNoCategories    = errors.New("at least one category must be configured")
)

// Category is a string-keyed activity tag.
type Category string

// Default categories.
const (
	CategoryCareer    Category = "Career"
	CategoryPortfolio Category = "Portfolio"
	CategoryHealth    Category = "Health"
	CategoryContent   Category = "Content"
	CategoryPetCare   Category = "Pet Care"
	CategoryPersonal  Category = "Personal"
	CategoryLeisure   Category = "Leisure"
	CategoryFlexible  Category = "Flexible"
)

// DefaultCategories returns the built-in category set in display order.
func DefaultCategories() []Category {
	return []Category{
		CategoryCareer,
		CategoryPortfolio,
		CategoryHealth,
		CategoryContent,
		CategoryPetCare,
		CategoryPersonal,
		CategoryLeisure,
		CategoryFlexible,
	}
}

// CategorySet is the ordered set of categories an activity may use.
type CategorySet struct {
	ordered []Category
	byKey   map[string]Category
}

// NewCategorySet builds a set from names. Blank and duplicate names are skipped.
func NewCategorySet(names ...string) (CategorySet, error) {
	s := CategorySet{byKey: make(map[string]Category, len(names))}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		key := strings.ToLower(n)
		if _, ok := s.byKey[key]; ok {
			continue
		}
		s.byKey[key] = Category(n)
		s.ordered = append(s.ordered, Category(n))
	}
	if len(s.ordered) == 0 {
		return CategorySet{}, ErrNoCategories
	}
	return s, nil
}

// DefaultCategorySet returns the built-in category set.
func DefaultCategorySet() CategorySet {
	names := make([]string, 0, 8)
	for _, c := range DefaultCategories() {
		names = append(names, string(c))
	}
	s, _ := NewCategorySet(names...)
	return s
}

// Lookup returns the canonical category for name, matching case-insensitively.
func (s CategorySet) Lookup(name string) (Category, bool) {
	c, ok := s.byKey[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// All returns the categories in display order.
func (s CategorySet) All() []Category {
	return slices.Clone(s.ordered)
}

// Len returns the number of categories in the set.
func (s CategorySet) Len() int {
	return len(s.ordered)
}

// Default returns the category used when a draft carries none.
func (s CategorySet) Default() Category {
	if c, ok := s.Lookup(string(CategoryPersonal)); ok {
		return c
	}
	if len(s.ordered) == 0 {
		return CategoryPersonal
	}
	return s.ordered[0]
}

// Activity is one scheduled block of the day.
type Activity struct {
	ID         int
	Time       string // "HH:MM" start
	Duration   int    // minutes
	Label      string
	Categories []Category // first is primary
	Important  bool
}

// Draft holds the user-editable fields of an activity.
type Draft struct {
	Time       string
	Duration   int
	Label      string
	Categories []Category
	Important  bool
}

// Primary returns the primary category of the activity.
func (a Activity) Primary() Category {
	if len(a.Categories) == 0 {
		return ""
	}
	return a.Categories[0]
}

// Start returns the start time in minutes since midnight.
func (a Activity) Start() int {
	return timeutil.ToMinutes(a.Time)
}

// End returns the end time in minutes since midnight. It can exceed one day.
func (a Activity) End() int {
	return a.Start() + a.Duration
}

// Clone returns a deep copy of the activity.
func (a Activity) Clone() Activity {
	a.Categories = slices.Clone(a.Categories)
	return a
}

// Draft returns the editable fields of the activity.
func (a Activity) Draft() Draft {
	return Draft{
		Time:       a.Time,
		Duration:   a.Duration,
		Label:      a.Label,
		Categories: slices.Clone(a.Categories),
		Important:  a.Important,
	}
}

// Normalize validates the draft against the category set and returns a cleaned copy.
// The label is trimmed, an empty category list becomes the set default and
// categories are canonicalized with duplicates dropped.
func (d Draft) Normalize(set CategorySet) (Draft, error) {
	if err := timeutil.Validate(d.Time); err != nil {
		return Draft{}, err
	}
	if d.Duration <= 0 || d.Duration > MaxDuration {
		return Draft{}, fmt.Errorf("%w: got %d", ErrInvalidDuration, d.Duration)
	}

	out := d
	out.Label = strings.TrimSpace(d.Label)
	if out.Label == "" {
		return Draft{}, ErrEmptyLabel
	}

	out.Categories = make([]Category, 0, max(1, len(d.Categories)))
	for _, c := range d.Categories {
		canon, ok := set.Lookup(string(c))
		if !ok {
			return Draft{}, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
		}
		if !slices.Contains(out.Categories, canon) {
			out.Categories = append(out.Categories, canon)
		}
	}
	if len(out.Categories) == 0 {
		out.Categories = append(out.Categories, set.Default())
	}

	return out, nil
}

// Build creates an activity with the given id from a normalized draft.
func (d Draft) Build(id int) Activity {
	return Activity{
		ID:         id,
		Time:       d.Time,
		Duration:   d.Duration,
		Label:      d.Label,
		Categories: slices.Clone(d.Categories),
		Important:  d.Important,
	}
}

// ParseCategories splits a comma-separated category list.
func ParseCategories(s string) []Category {
	var out []Category
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, Category(part))
		}
	}
	return out
}

// JoinCategories renders categories as a comma-separated list.
func JoinCategories(cats []Category) string {
	parts := make([]string, len(cats))
	for i, c := range cats {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}
