// Package scheduler suggests start times for new activities.
package scheduler

import (
	"time"

	"github.com/javiermolinar/dayplan/internal/activity"
	"github.com/javiermolinar/dayplan/internal/timeutil"
)

// DefaultDayStart is used when no day start is configured.
const DefaultDayStart = "07:00"

// Scheduler provides time-aware defaults for the add form and prompt.
type Scheduler struct {
	dayStart string // "HH:MM"
}

// New creates a new Scheduler. An invalid dayStart falls back to DefaultDayStart.
func New(dayStart string) *Scheduler {
	if !timeutil.Valid(dayStart) {
		dayStart = DefaultDayStart
	}
	return &Scheduler{dayStart: dayStart}
}

// DayStart returns the configured day start time.
func (s *Scheduler) DayStart() string {
	return s.dayStart
}

// NextStart returns the suggested start time for a new activity.
// With a non-empty schedule that ends before midnight it is the end of the
// last activity. Otherwise it is now rounded up to the next quarter hour,
// but never before the day start.
func (s *Scheduler) NextStart(activities []activity.Activity, now time.Time) string {
	if len(activities) > 0 {
		lastEnd := 0
		for _, a := range activities {
			lastEnd = max(lastEnd, a.End())
		}
		if lastEnd < timeutil.MinutesPerDay {
			return timeutil.FromMinutes(lastEnd)
		}
	}

	rounded := roundUpTo15Min(now)
	if rounded.Day() != now.Day() {
		// Rounding crossed midnight; the day is over.
		return timeutil.FromMinutes(timeutil.MinutesPerDay - 15)
	}
	start := rounded.Hour()*60 + rounded.Minute()
	if start < timeutil.ToMinutes(s.dayStart) {
		return s.dayStart
	}
	return timeutil.FromMinutes(start)
}

// roundUpTo15Min rounds a time up to the next 15-minute boundary.
func roundUpTo15Min(t time.Time) time.Time {
	remainder := t.Minute() % 15
	if remainder == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t
	}
	return t.Truncate(time.Minute).Add(time.Duration(15-remainder) * time.Minute)
}
