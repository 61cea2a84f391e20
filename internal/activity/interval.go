package activity

import (
	"sort"

	"github.com/javiermolinar/dayplan/internal/timeutil"
)

// Interval is a half-open [Start, End) range in minutes since midnight.
type Interval struct {
	Start int
	End   int
}

// IntervalOf returns the time interval occupied by an activity.
func IntervalOf(a Activity) Interval {
	start := a.Start()
	return Interval{Start: start, End: start + a.Duration}
}

// Overlaps returns true if two intervals overlap.
// An interval ending at minute 600 does not overlap one starting at 600.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End && o.Start < i.End
}

// Contains returns true if minute m falls inside the interval.
func (i Interval) Contains(m int) bool {
	return m >= i.Start && m < i.End
}

// Overlaps returns true if two activities' intervals overlap.
func Overlaps(a, b Activity) bool {
	return IntervalOf(a).Overlaps(IntervalOf(b))
}

// InsertionIndex returns the position at which an activity starting at t
// keeps sorted ascending order. It is the index of the first activity whose
// start is at or after t, so a new entry goes before existing entries with
// the same start time.
func InsertionIndex(t string, sorted []Activity) int {
	target := timeutil.ToMinutes(t)
	return sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Start() >= target
	})
}

// IsSorted reports whether activities are in non-decreasing start order.
func IsSorted(activities []Activity) bool {
	return sort.SliceIsSorted(activities, func(i, j int) bool {
		return activities[i].Start() < activities[j].Start()
	})
}

// FirstOverlap returns the index of the first activity in a start-sorted
// slice that begins before its predecessor ends, or -1 if there is none.
func FirstOverlap(sorted []Activity) int {
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Start() < sorted[i-1].End() {
			return i
		}
	}
	return -1
}
