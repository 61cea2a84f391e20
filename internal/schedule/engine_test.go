package schedule

import (
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"slices"
	"sync"
	"testing"

	"github.com/javiermolinar/dayplan/internal/activity"
	"github.com/javiermolinar/dayplan/internal/timeutil"
)

func draft(t string, duration int, label string, cats ...activity.Category) activity.Draft {
	return activity.Draft{Time: t, Duration: duration, Label: label, Categories: cats}
}

func mustAdd(t *testing.T, e *Engine, d activity.Draft) activity.Activity {
	t.Helper()
	res, err := e.Add(d)
	if err != nil {
		t.Fatalf("Add(%+v): %v", d, err)
	}
	return res.Activity
}

func labels(list []activity.Activity) []string {
	out := make([]string, len(list))
	for i, a := range list {
		out[i] = a.Label
	}
	return out
}

func assertConsistent(t *testing.T, e *Engine) {
	t.Helper()
	list := e.List()
	if !activity.IsSorted(list) {
		t.Fatalf("activities not sorted: %v", times(list))
	}
	if i := activity.FirstOverlap(list); i != -1 {
		t.Fatalf("overlap at index %d: %v", i, times(list))
	}
}

func TestEngineAdd(t *testing.T) {
	t.Run("assigns increasing ids", func(t *testing.T) {
		e := New()
		a := mustAdd(t, e, draft("09:00", 30, "A"))
		b := mustAdd(t, e, draft("11:00", 30, "B"))
		if a.ID != 1 || b.ID != 2 {
			t.Errorf("got ids %d, %d, want 1, 2", a.ID, b.ID)
		}
	})

	t.Run("earlier activity goes first", func(t *testing.T) {
		e := New()
		mustAdd(t, e, draft("10:00", 30, "Late"))
		mustAdd(t, e, draft("09:00", 30, "Early"))
		if got := labels(e.List()); !equalStrings(got, []string{"Early", "Late"}) {
			t.Errorf("got order %v", got)
		}
	})

	t.Run("new activity goes first among equal times", func(t *testing.T) {
		e := New()
		old := mustAdd(t, e, draft("09:00", 30, "Old"))
		res, err := e.Add(draft("09:00", 30, "New"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		list := e.List()
		if got := labels(list); !equalStrings(got, []string{"New", "Old"}) {
			t.Fatalf("got order %v", got)
		}
		if list[1].Time != "09:30" {
			t.Errorf("existing activity at %s, want 09:30", list[1].Time)
		}
		if !slices.Contains(res.Modified, old.ID) || !slices.Contains(res.Modified, res.Activity.ID) {
			t.Errorf("Modified = %v, want both ids", res.Modified)
		}
	})

	t.Run("added activity is pushed past its predecessor", func(t *testing.T) {
		e := New()
		mustAdd(t, e, draft("09:00", 60, "Meeting"))
		res, err := e.Add(draft("09:30", 30, "Review"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Activity.Time != "10:00" {
			t.Errorf("got time %s, want 10:00", res.Activity.Time)
		}
		if len(res.Conflicts) != 1 {
			t.Errorf("got %d conflicts, want 1", len(res.Conflicts))
		}
	})

	t.Run("draft is normalized", func(t *testing.T) {
		e := New()
		a := mustAdd(t, e, draft("09:00", 30, "  Walk  ", "pet care"))
		if a.Label != "Walk" || a.Primary() != activity.CategoryPetCare {
			t.Errorf("got %+v", a)
		}
	})
}

func TestEngineEdit(t *testing.T) {
	t.Run("same time keeps position", func(t *testing.T) {
		e := New()
		mustAdd(t, e, draft("09:00", 30, "A"))
		b := mustAdd(t, e, draft("10:00", 30, "B"))
		mustAdd(t, e, draft("11:00", 30, "C"))

		res, err := e.Edit(b.ID, draft("10:00", 90, "B2"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		list := e.List()
		if list[1].ID != b.ID || list[1].Label != "B2" {
			t.Errorf("edited activity moved: %v", labels(list))
		}
		if list[2].Time != "11:30" {
			t.Errorf("successor at %s, want 11:30", list[2].Time)
		}
		if res.Activity.Duration != 90 {
			t.Errorf("Result.Activity = %+v", res.Activity)
		}
	})

	t.Run("new time moves activity", func(t *testing.T) {
		e := New()
		a := mustAdd(t, e, draft("09:00", 30, "A"))
		mustAdd(t, e, draft("10:00", 30, "B"))

		if _, err := e.Edit(a.ID, draft("12:00", 30, "A")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := labels(e.List()); !equalStrings(got, []string{"B", "A"}) {
			t.Errorf("got order %v", got)
		}
	})

	t.Run("keeps id", func(t *testing.T) {
		e := New()
		a := mustAdd(t, e, draft("09:00", 30, "A"))
		res, err := e.Edit(a.ID, draft("08:00", 15, "A"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Activity.ID != a.ID {
			t.Errorf("got id %d, want %d", res.Activity.ID, a.ID)
		}
	})
}

func TestEngineDelete(t *testing.T) {
	e := New()
	a := mustAdd(t, e, draft("09:00", 30, "A"))
	mustAdd(t, e, draft("10:00", 30, "B"))

	if !e.Delete(a.ID) {
		t.Fatal("Delete() = false for existing id")
	}
	if e.Delete(a.ID) {
		t.Error("Delete() = true for removed id")
	}
	if e.Len() != 1 {
		t.Errorf("Len() = %d, want 1", e.Len())
	}
	if len(e.RecentlyModified()) != 0 {
		t.Errorf("RecentlyModified() = %v after delete", e.RecentlyModified())
	}
	if _, ok := e.Get(a.ID); ok {
		t.Error("Get() found deleted activity")
	}
}

func TestEngineReorder(t *testing.T) {
	t.Run("swaps times and positions", func(t *testing.T) {
		e := New()
		a := mustAdd(t, e, draft("09:00", 30, "A"))
		mustAdd(t, e, draft("10:00", 30, "B"))
		c := mustAdd(t, e, draft("11:00", 30, "C"))

		res, err := e.Reorder(a.ID, c.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		list := e.List()
		if got := labels(list); !equalStrings(got, []string{"C", "B", "A"}) {
			t.Errorf("got order %v", got)
		}
		if got := times(list); !equalStrings(got, []string{"09:00", "10:00", "11:00"}) {
			t.Errorf("got times %v", got)
		}
		if !slices.Contains(res.Modified, a.ID) || !slices.Contains(res.Modified, c.ID) {
			t.Errorf("Modified = %v", res.Modified)
		}
	})

	t.Run("longer activity pushes successors", func(t *testing.T) {
		e := New()
		a := mustAdd(t, e, draft("09:00", 60, "A"))
		b := mustAdd(t, e, draft("10:00", 30, "B"))
		mustAdd(t, e, draft("10:30", 30, "C"))

		if _, err := e.Reorder(a.ID, b.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := times(e.List()); !equalStrings(got, []string{"09:00", "10:00", "11:00"}) {
			t.Errorf("got times %v", got)
		}
		assertConsistent(t, e)
	})

	t.Run("same id is a no-op", func(t *testing.T) {
		e := New()
		a := mustAdd(t, e, draft("09:00", 30, "A"))
		before := e.List()
		if _, err := e.Reorder(a.ID, a.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(before, e.List()) {
			t.Error("state changed")
		}
	})
}

func TestEngineSnapToPrevious(t *testing.T) {
	e := New()
	a := mustAdd(t, e, draft("09:00", 60, "A"))
	b := mustAdd(t, e, draft("10:30", 30, "B"))

	res, err := e.SnapToPrevious(b.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Activity.Time != "10:00" {
		t.Errorf("got time %s, want 10:00", res.Activity.Time)
	}

	res, err = e.SnapToPrevious(a.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Activity.Time != "09:00" {
		t.Errorf("first activity moved to %s", res.Activity.Time)
	}
}

func TestEngine_FailuresLeaveStateUnchanged(t *testing.T) {
	setup := func(t *testing.T) *Engine {
		e := New()
		mustAdd(t, e, draft("09:00", 60, "A"))
		mustAdd(t, e, draft("23:00", 60, "Late"))
		return e
	}

	tests := []struct {
		name    string
		op      func(e *Engine) error
		wantErr error
	}{
		{
			name:    "add invalid time",
			op:      func(e *Engine) error { _, err := e.Add(draft("25:00", 30, "X")); return err },
			wantErr: timeutil.ErrInvalidTime,
		},
		{
			name:    "add unknown category",
			op:      func(e *Engine) error { _, err := e.Add(draft("12:00", 30, "X", "Gardening")); return err },
			wantErr: activity.ErrUnknownCategory,
		},
		{
			name:    "add past midnight",
			op:      func(e *Engine) error { _, err := e.Add(draft("23:30", 30, "X")); return err },
			wantErr: ErrDayOverflow,
		},
		{
			name:    "edit unknown id",
			op:      func(e *Engine) error { _, err := e.Edit(99, draft("12:00", 30, "X")); return err },
			wantErr: ErrNotFound,
		},
		{
			name:    "edit invalid time",
			op:      func(e *Engine) error { _, err := e.Edit(1, draft("9:00", 30, "X")); return err },
			wantErr: timeutil.ErrInvalidTime,
		},
		{
			name:    "edit past midnight",
			op:      func(e *Engine) error { _, err := e.Edit(1, draft("22:30", 90, "A")); return err },
			wantErr: ErrDayOverflow,
		},
		{
			name:    "reorder unknown id",
			op:      func(e *Engine) error { _, err := e.Reorder(1, 99); return err },
			wantErr: ErrNotFound,
		},
		{
			name:    "snap unknown id",
			op:      func(e *Engine) error { _, err := e.SnapToPrevious(99); return err },
			wantErr: ErrNotFound,
		},
		{
			name: "load with one invalid draft",
			op: func(e *Engine) error {
				_, err := e.Load([]activity.Draft{draft("12:00", 30, "ok"), draft("13:00", 0, "bad")})
				return err
			},
			wantErr: activity.ErrInvalidDuration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := setup(t)
			before := e.List()
			modified := e.RecentlyModified()

			err := tt.op(e)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got error %v, want %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(before, e.List()) {
				t.Errorf("state changed: %v -> %v", times(before), times(e.List()))
			}
			if !slices.Equal(modified, e.RecentlyModified()) {
				t.Errorf("modified changed: %v -> %v", modified, e.RecentlyModified())
			}
		})
	}
}

func TestEngineLoad(t *testing.T) {
	t.Run("single resolution pass", func(t *testing.T) {
		e := New()
		res, err := e.Load([]activity.Draft{
			draft("09:00", 60, "A"),
			draft("09:30", 30, "B"),
			draft("09:45", 15, "C"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		list := e.List()
		if got := times(list); !equalStrings(got, []string{"09:00", "10:00", "10:30"}) {
			t.Errorf("got times %v", got)
		}
		if got := labels(list); !equalStrings(got, []string{"A", "B", "C"}) {
			t.Errorf("got order %v", got)
		}
		if len(res.Conflicts) != 2 || len(res.Modified) != 3 {
			t.Errorf("got %d conflicts and modified %v", len(res.Conflicts), res.Modified)
		}
	})

	t.Run("separate adds resolve after each call", func(t *testing.T) {
		e := New()
		mustAdd(t, e, draft("09:00", 60, "A"))
		mustAdd(t, e, draft("09:30", 30, "B")) // pushed to 10:00
		// C is inserted before the already pushed B, so B moves again.
		res, err := e.Add(draft("09:45", 15, "C"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		list := e.List()
		if got := times(list); !equalStrings(got, []string{"09:00", "10:00", "10:15"}) {
			t.Errorf("got times %v", got)
		}
		if got := labels(list); !equalStrings(got, []string{"A", "C", "B"}) {
			t.Errorf("got order %v", got)
		}
		if len(res.Conflicts) != 2 {
			t.Errorf("got %d conflicts, want 2", len(res.Conflicts))
		}
	})

	t.Run("unsorted input with equal times", func(t *testing.T) {
		e := New()
		_, err := e.Load([]activity.Draft{
			draft("14:00", 30, "Late"),
			draft("09:00", 30, "First"),
			draft("09:00", 30, "Second"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		list := e.List()
		if got := labels(list); !equalStrings(got, []string{"First", "Second", "Late"}) {
			t.Errorf("got order %v", got)
		}
		if got := times(list); !equalStrings(got, []string{"09:00", "09:30", "14:00"}) {
			t.Errorf("got times %v", got)
		}
	})

	t.Run("ids continue after existing activities", func(t *testing.T) {
		e := New()
		mustAdd(t, e, draft("08:00", 30, "A"))
		if _, err := e.Load([]activity.Draft{draft("12:00", 30, "B")}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b := e.List()[1]
		if b.ID != 2 {
			t.Errorf("got id %d, want 2", b.ID)
		}
	})
}

func TestEngineStats(t *testing.T) {
	e := New()
	mustAdd(t, e, draft("09:00", 90, "Gym", activity.CategoryHealth))
	mustAdd(t, e, draft("10:30", 90, "Work", activity.CategoryCareer))

	stats := e.Stats()
	if stats.TotalHours != "3.0" {
		t.Errorf("TotalHours = %q, want 3.0", stats.TotalHours)
	}
	want := []CategoryHours{
		{Category: activity.CategoryHealth, Hours: "1.5", Minutes: 90},
		{Category: activity.CategoryCareer, Hours: "1.5", Minutes: 90},
	}
	if !reflect.DeepEqual(stats.CategoryHours, want) {
		t.Errorf("CategoryHours = %+v, want %+v", stats.CategoryHours, want)
	}
}

func TestEngineRecentlyModified(t *testing.T) {
	e := New()
	a := mustAdd(t, e, draft("09:00", 60, "A"))
	b := mustAdd(t, e, draft("11:00", 30, "B"))

	if _, err := e.Edit(a.ID, draft("09:00", 150, "A")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !e.IsModified(a.ID) || !e.IsModified(b.ID) {
		t.Errorf("RecentlyModified() = %v, want [%d %d]", e.RecentlyModified(), a.ID, b.ID)
	}

	e.ClearModified()
	if e.IsModified(a.ID) || len(e.RecentlyModified()) != 0 {
		t.Errorf("RecentlyModified() = %v after clear", e.RecentlyModified())
	}
}

func TestEngineCustomCategories(t *testing.T) {
	set, err := activity.NewCategorySet("Deep Work", "Errands")
	if err != nil {
		t.Fatal(err)
	}
	e := New(WithCategories(set))

	a := mustAdd(t, e, draft("09:00", 30, "Focus"))
	if a.Primary() != "Deep Work" {
		t.Errorf("got default category %q, want Deep Work", a.Primary())
	}
	if _, err := e.Add(draft("10:00", 30, "Gym", activity.CategoryHealth)); !errors.Is(err, activity.ErrUnknownCategory) {
		t.Errorf("got error %v, want ErrUnknownCategory", err)
	}
}

func TestEngine_RandomOperationsStaySortedWithoutOverlaps(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	e := New()

	randomTime := func() string {
		return timeutil.FromMinutes(6*60 + rng.Intn(56)*15)
	}
	randomID := func() int {
		list := e.List()
		if len(list) == 0 || rng.Intn(10) == 0 {
			return 1000
		}
		return list[rng.Intn(len(list))].ID
	}

	for step := 0; step < 500; step++ {
		before := e.List()
		var err error
		switch rng.Intn(5) {
		case 0, 1:
			_, err = e.Add(draft(randomTime(), 15+rng.Intn(8)*15, fmt.Sprintf("a%d", step)))
		case 2:
			_, err = e.Edit(randomID(), draft(randomTime(), 15+rng.Intn(4)*15, fmt.Sprintf("e%d", step)))
		case 3:
			if rng.Intn(2) == 0 {
				e.Delete(randomID())
			} else {
				_, err = e.Reorder(randomID(), randomID())
			}
		case 4:
			_, err = e.SnapToPrevious(randomID())
		}

		if err != nil && !reflect.DeepEqual(before, e.List()) {
			t.Fatalf("step %d: failed operation changed state: %v", step, err)
		}
		assertConsistent(t, e)

		// Keep the day from filling up so mutations keep succeeding.
		if e.Len() > 20 {
			e.Delete(e.List()[0].ID)
		}
	}
}

func TestEngine_ConcurrentAdds(t *testing.T) {
	e := New()
	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := e.Add(draft("08:00", 5, fmt.Sprintf("task %d", i))); err != nil {
				t.Errorf("Add: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if e.Len() != 40 {
		t.Fatalf("Len() = %d, want 40", e.Len())
	}
	ids := make(map[int]bool)
	for _, a := range e.List() {
		if ids[a.ID] {
			t.Errorf("duplicate id %d", a.ID)
		}
		ids[a.ID] = true
	}
	assertConsistent(t, e)
}
