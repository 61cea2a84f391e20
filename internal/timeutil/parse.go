package timeutil

import (
	"fmt"
	"strconv"
	"strings"
)

// Parsed is the result of lenient time parsing.
type Parsed struct {
	Time     string   // canonical "HH:MM"
	Display  string   // formatted for the requested clock
	Meridiem Meridiem // inferred or explicit; empty in 24-hour mode
}

// ParseFlexible parses partial time input such as "5", "14", "830", "14:3" or "1430".
//
// One or two digits are an hour with zero minutes, three digits are H+MM and
// four digits are HH+MM. With a colon, a single minute digit counts as tens
// ("14:3" is 14:30). Hours are clamped to 0-23 in 24-hour mode and to 1-12 in
// 12-hour mode, minutes to 0-59. A trailing "am" or "pm" forces 12-hour
// semantics; otherwise 12-hour mode treats 7-11 as morning and 12, 1-6 as
// afternoon.
func ParseFlexible(raw string, use24Hour bool) (Parsed, error) {
	s := strings.ToLower(strings.TrimSpace(raw))

	var explicit Meridiem
	switch {
	case strings.HasSuffix(s, "am"):
		explicit = AM
		s = strings.TrimSpace(strings.TrimSuffix(s, "am"))
	case strings.HasSuffix(s, "pm"):
		explicit = PM
		s = strings.TrimSpace(strings.TrimSuffix(s, "pm"))
	}

	if !strings.ContainsAny(s, "0123456789") {
		return Parsed{}, fmt.Errorf("%w: no digits in %q", ErrInvalidTime, raw)
	}

	hour, minute, err := splitDigits(s)
	if err != nil {
		return Parsed{}, fmt.Errorf("%w: %q", err, raw)
	}

	twelveHour := !use24Hour || explicit != ""
	if !twelveHour {
		hour = clamp(hour, 0, 23)
		minute = clamp(minute, 0, 59)
		t := fmt.Sprintf("%02d:%02d", hour, minute)
		return Parsed{Time: t, Display: t}, nil
	}

	hour = clamp(hour, 1, 12)
	minute = clamp(minute, 0, 59)
	meridiem := explicit
	if meridiem == "" {
		meridiem = inferMeridiem(hour)
	}

	t := fmt.Sprintf("%02d:%02d", to24(hour, meridiem), minute)
	p := Parsed{Time: t, Display: Format(t, use24Hour)}
	if !use24Hour {
		p.Meridiem = meridiem
	}
	return p, nil
}

// splitDigits applies the digit-count policy and returns raw hour and minute values.
func splitDigits(s string) (hour, minute int, err error) {
	if hourPart, minPart, ok := strings.Cut(s, ":"); ok {
		if len(hourPart) == 0 || len(hourPart) > 2 || !isDigits(hourPart) {
			return 0, 0, ErrInvalidTime
		}
		hour, _ = strconv.Atoi(hourPart)
		switch {
		case minPart == "":
			minute = 0
		case len(minPart) > 2 || !isDigits(minPart):
			return 0, 0, ErrInvalidTime
		case len(minPart) == 1:
			minute = int(minPart[0]-'0') * 10
		default:
			minute, _ = strconv.Atoi(minPart)
		}
		return hour, minute, nil
	}

	if !isDigits(s) || len(s) > 4 {
		return 0, 0, ErrInvalidTime
	}
	switch len(s) {
	case 1, 2:
		hour, _ = strconv.Atoi(s)
	case 3:
		hour = int(s[0] - '0')
		minute, _ = strconv.Atoi(s[1:])
	case 4:
		hour, _ = strconv.Atoi(s[:2])
		minute, _ = strconv.Atoi(s[2:])
	}
	return hour, minute, nil
}

func inferMeridiem(hour int) Meridiem {
	if hour >= 7 && hour <= 11 {
		return AM
	}
	return PM
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
