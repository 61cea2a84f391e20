package schedule

import (
	"errors"
	"fmt"

	"github.com/javiermolinar/dayplan/internal/activity"
	"github.com/javiermolinar/dayplan/internal/timeutil"
)

// ErrDayOverflow is returned when resolving conflicts would push an activity past midnight.
var ErrDayOverflow = errors.New("schedule does not fit in one day")

// Conflict records one overlap the engine resolved by moving the later activity.
type Conflict struct {
	EarlierID    int
	Earlier      string // label of the activity that kept its time
	EarlierTime  string
	LaterID      int
	Later        string // label of the activity that was moved
	OriginalTime string
	ResolvedTime string
}

// String renders the conflict as a one-line report.
func (c Conflict) String() string {
	return fmt.Sprintf("%s (%s) overlapped %s (%s), moved to %s",
		c.Later, c.OriginalTime, c.Earlier, c.EarlierTime, c.ResolvedTime)
}

// resolve pushes every activity that starts before its predecessor ends to
// the predecessor's end, in one left-to-right pass over a start-sorted slice.
// Each step reads the already-updated predecessor, so pushes cascade forward.
// The slice is modified in place and never re-sorted.
func resolve(list []activity.Activity) ([]Conflict, error) {
	var conflicts []Conflict
	for i := 1; i < len(list); i++ {
		prev := list[i-1]
		cur := list[i]
		prevEnd := prev.End()
		if cur.Start() >= prevEnd {
			continue
		}
		if prevEnd >= timeutil.MinutesPerDay {
			return nil, fmt.Errorf("%w: %q would start after %q ends at midnight or later",
				ErrDayOverflow, cur.Label, prev.Label)
		}

		newTime := timeutil.FromMinutes(prevEnd)
		conflicts = append(conflicts, Conflict{
			EarlierID:    prev.ID,
			Earlier:      prev.Label,
			EarlierTime:  prev.Time,
			LaterID:      cur.ID,
			Later:        cur.Label,
			OriginalTime: cur.Time,
			ResolvedTime: newTime,
		})
		list[i].Time = newTime
	}
	return conflicts, nil
}
