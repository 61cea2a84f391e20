package activity

import (
	"errors"
	"slices"
	"testing"

	"github.com/javiermolinar/dayplan/internal/timeutil"
)

func TestDraftNormalize(t *testing.T) {
	set := DefaultCategorySet()

	t.Run("valid draft", func(t *testing.T) {
		d, err := Draft{
			Time:       "09:00",
			Duration:   60,
			Label:      "  Morning run  ",
			Categories: []Category{"health", "Personal", "HEALTH"},
		}.Normalize(set)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Label != "Morning run" {
			t.Errorf("got label %q, want %q", d.Label, "Morning run")
		}
		want := []Category{CategoryHealth, CategoryPersonal}
		if !slices.Equal(d.Categories, want) {
			t.Errorf("got categories %v, want %v", d.Categories, want)
		}
	})

	t.Run("empty categories default to personal", func(t *testing.T) {
		d, err := Draft{Time: "08:00", Duration: 15, Label: "X"}.Normalize(set)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !slices.Equal(d.Categories, []Category{CategoryPersonal}) {
			t.Errorf("got categories %v, want [Personal]", d.Categories)
		}
	})
}

func TestDraftNormalize_Errors(t *testing.T) {
	set := DefaultCategorySet()

	tests := []struct {
		name    string
		draft   Draft
		wantErr error
	}{
		{
			name:    "invalid time",
			draft:   Draft{Time: "25:00", Duration: 30, Label: "X"},
			wantErr: timeutil.ErrInvalidTime,
		},
		{
			name:    "unpadded time",
			draft:   Draft{Time: "9:00", Duration: 30, Label: "X"},
			wantErr: timeutil.ErrInvalidTime,
		},
		{
			name:    "zero duration",
			draft:   Draft{Time: "09:00", Duration: 0, Label: "X"},
			wantErr: ErrInvalidDuration,
		},
		{
			name:    "duration over a day",
			draft:   Draft{Time: "09:00", Duration: MaxDuration + 1, Label: "X"},
			wantErr: ErrInvalidDuration,
		},
		{
			name:    "blank label",
			draft:   Draft{Time: "09:00", Duration: 30, Label: "   "},
			wantErr: ErrEmptyLabel,
		},
		{
			name:    "unknown category",
			draft:   Draft{Time: "09:00", Duration: 30, Label: "X", Categories: []Category{"Gardening"}},
			wantErr: ErrUnknownCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.draft.Normalize(set)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got error %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCategorySet(t *testing.T) {
	t.Run("custom set", func(t *testing.T) {
		set, err := NewCategorySet("Deep Work", " Errands ", "deep work", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if set.Len() != 2 {
			t.Fatalf("got %d categories, want 2", set.Len())
		}
		c, ok := set.Lookup("ERRANDS")
		if !ok || c != "Errands" {
			t.Errorf("Lookup(ERRANDS) = %q, %v", c, ok)
		}
		if set.Default() != "Deep Work" {
			t.Errorf("Default() = %q, want first category when Personal is absent", set.Default())
		}
	})

	t.Run("empty set", func(t *testing.T) {
		if _, err := NewCategorySet("", "  "); !errors.Is(err, ErrNoCategories) {
			t.Errorf("got error %v, want ErrNoCategories", err)
		}
	})

	t.Run("default set", func(t *testing.T) {
		set := DefaultCategorySet()
		if !slices.Equal(set.All(), DefaultCategories()) {
			t.Errorf("All() = %v, want %v", set.All(), DefaultCategories())
		}
		if c, ok := set.Lookup("pet care"); !ok || c != CategoryPetCare {
			t.Errorf("Lookup(pet care) = %q, %v", c, ok)
		}
	})
}

func TestActivityClone(t *testing.T) {
	a := Activity{ID: 1, Time: "09:00", Duration: 30, Label: "A", Categories: []Category{CategoryCareer}}
	b := a.Clone()
	b.Categories[0] = CategoryLeisure
	if a.Categories[0] != CategoryCareer {
		t.Error("Clone shares the categories slice")
	}
}

func TestParseCategories(t *testing.T) {
	got := ParseCategories(" Health, ,Career ")
	want := []Category{CategoryHealth, CategoryCareer}
	if !slices.Equal(got, want) {
		t.Errorf("ParseCategories() = %v, want %v", got, want)
	}
	if JoinCategories(want) != "Health, Career" {
		t.Errorf("JoinCategories() = %q", JoinCategories(want))
	}
}
