package schedule

import (
	"fmt"
	"math/big"

	"github.com/javiermolinar/dayplan/internal/activity"
)

// CategoryHours is the time spent on one primary category.
type CategoryHours struct {
	Category activity.Category
	Hours    string // one decimal place
	Minutes  int
}

// Stats holds aggregate figures for the schedule.
type Stats struct {
	TotalHours    string // one decimal place
	TotalMinutes  int
	CategoryHours []CategoryHours
}

// ComputeStats aggregates durations over activities.
// Categories appear in the order their first activity appears, and those
// whose total rounds to 0.0 hours are omitted.
func ComputeStats(activities []activity.Activity) Stats {
	var stats Stats
	minutes := make(map[activity.Category]int)
	var order []activity.Category

	for _, a := range activities {
		stats.TotalMinutes += a.Duration
		primary := a.Primary()
		if _, seen := minutes[primary]; !seen {
			order = append(order, primary)
		}
		minutes[primary] += a.Duration
	}

	stats.TotalHours = formatHours(stats.TotalMinutes)
	for _, c := range order {
		hours := formatHours(minutes[c])
		if hours == "0.0" {
			continue
		}
		stats.CategoryHours = append(stats.CategoryHours, CategoryHours{
			Category: c,
			Hours:    hours,
			Minutes:  minutes[c],
		})
	}
	return stats
}

// formatHours renders minutes as hours with one decimal, rounding the exact
// value of the float64 quotient half up: 15 minutes is "0.3", while 9
// minutes (0.1499... as a float64) is "0.1".
func formatHours(minutes int) string {
	r := new(big.Rat).SetFloat64(float64(minutes) / 60)
	r.Mul(r, big.NewRat(10, 1))
	r.Add(r, big.NewRat(1, 2))
	tenths := new(big.Int).Quo(r.Num(), r.Denom()).Int64()
	return fmt.Sprintf("%d.%d", tenths/10, tenths%10)
}
