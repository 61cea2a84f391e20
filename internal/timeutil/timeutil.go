// Package timeutil provides time-of-day parsing, validation and formatting utilities.
package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the number of minutes in one day.
const MinutesPerDay = 24 * 60

// ErrInvalidTime is returned when a time cannot be parsed or is out of range.
var ErrInvalidTime = errors.New("time must be a valid HH:MM between 00:00 and 23:59")

// Meridiem is the AM/PM marker of a 12-hour time.
type Meridiem string

const (
	AM Meridiem = "AM"
	PM Meridiem = "PM"
)

// Valid reports whether t is a canonical "HH:MM" time.
func Valid(t string) bool {
	return Validate(t) == nil
}

// Validate checks that t is a canonical "HH:MM" time with hour 0-23 and minute 0-59.
func Validate(t string) error {
	if len(t) != 5 || t[2] != ':' {
		return fmt.Errorf("%w: got %q", ErrInvalidTime, t)
	}
	if !isDigits(t[0:2]) || !isDigits(t[3:5]) {
		return fmt.Errorf("%w: got %q", ErrInvalidTime, t)
	}
	hours := int(t[0]-'0')*10 + int(t[1]-'0')
	mins := int(t[3]-'0')*10 + int(t[4]-'0')
	if hours > 23 || mins > 59 {
		return fmt.Errorf("%w: got %q", ErrInvalidTime, t)
	}
	return nil
}

// ToMinutes converts "HH:MM" to minutes since midnight.
// Returns 0 for invalid input.
func ToMinutes(t string) int {
	if len(t) < 5 {
		return 0
	}
	hours := int(t[0]-'0')*10 + int(t[1]-'0')
	mins := int(t[3]-'0')*10 + int(t[4]-'0')
	return hours*60 + mins
}

// FromMinutes converts minutes since midnight to "HH:MM" format.
// Values outside a single day are clamped to 00:00 and 23:59.
func FromMinutes(m int) string {
	if m < 0 {
		m = 0
	}
	if m >= MinutesPerDay {
		m = MinutesPerDay - 1
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// To12Hour converts "HH:MM" to "H:MM AM/PM".
// Input that already carries a meridiem is returned unchanged.
func To12Hour(t string) (string, error) {
	if hasMeridiem(t) {
		return t, nil
	}
	if err := Validate(t); err != nil {
		return "", err
	}

	mins := ToMinutes(t)
	hour, minute := mins/60, mins%60

	meridiem := AM
	hour12 := hour
	switch {
	case hour == 0:
		hour12 = 12
	case hour == 12:
		meridiem = PM
	case hour > 12:
		hour12 = hour - 12
		meridiem = PM
	}

	return fmt.Sprintf("%d:%02d %s", hour12, minute, meridiem), nil
}

// To24Hour converts "H:MM AM/PM" to "HH:MM".
// Input without a meridiem is validated and returned unchanged.
func To24Hour(t string) (string, error) {
	if !hasMeridiem(t) {
		if err := Validate(t); err != nil {
			return "", err
		}
		return t, nil
	}

	clock, suffix, ok := strings.Cut(strings.TrimSpace(t), " ")
	if !ok {
		return "", fmt.Errorf("%w: got %q", ErrInvalidTime, t)
	}
	hourStr, minStr, ok := strings.Cut(clock, ":")
	if !ok || len(minStr) != 2 || !isDigits(hourStr) || !isDigits(minStr) {
		return "", fmt.Errorf("%w: got %q", ErrInvalidTime, t)
	}
	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour < 1 || hour > 12 {
		return "", fmt.Errorf("%w: got %q", ErrInvalidTime, t)
	}
	minute, _ := strconv.Atoi(minStr)
	if minute > 59 {
		return "", fmt.Errorf("%w: got %q", ErrInvalidTime, t)
	}

	return fmt.Sprintf("%02d:%02d", to24(hour, Meridiem(strings.ToUpper(suffix))), minute), nil
}

// Format renders a canonical time for display in the requested clock format.
// Invalid input is returned as-is.
func Format(t string, use24Hour bool) string {
	if use24Hour {
		return t
	}
	out, err := To12Hour(t)
	if err != nil {
		return t
	}
	return out
}

// FormatRange renders "start-end" for an activity starting at t and lasting duration minutes.
// Ends past midnight are shown with a +1 day marker.
func FormatRange(t string, duration int, use24Hour bool) string {
	end := ToMinutes(t) + duration
	suffix := ""
	if end >= MinutesPerDay {
		end -= MinutesPerDay
		suffix = " +1d"
	}
	return Format(t, use24Hour) + "-" + Format(FromMinutes(end), use24Hour) + suffix
}

// FormatDuration renders a duration in minutes as "1h30m", "45m" or "2h".
func FormatDuration(minutes int) string {
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh%02dm", h, m)
	}
}

func to24(hour int, m Meridiem) int {
	switch {
	case m == PM && hour != 12:
		return hour + 12
	case m == AM && hour == 12:
		return 0
	default:
		return hour
	}
}

func hasMeridiem(t string) bool {
	upper := strings.ToUpper(t)
	return strings.HasSuffix(upper, string(AM)) || strings.HasSuffix(upper, string(PM))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
