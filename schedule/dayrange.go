package schedule

import "strings"

var dayCycle = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

func dayIndex(token string) int {
	for i, d := range dayCycle {
		if d == token {
			return i
		}
	}
	return -1
}

// DayInRange reports whether weekday falls inside rangeStr. A range is a
// single weekday token or "start-end" over the mon..sun cycle; start may sit
// numerically after end to denote wraparound, e.g. "sat-mon" covers sat, sun
// and mon. Tokens outside the weekday set are an input error, never silently
// treated as a miss.
func DayInRange(rangeStr, weekday string) (bool, error) {
	parts := strings.Split(rangeStr, "-")
	for i := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(parts[i]))
	}

	switch len(parts) {
	case 1:
		if dayIndex(parts[0]) < 0 {
			return false, ErrMalformedDayRange
		}
		return parts[0] == weekday, nil
	case 2:
		s, e := dayIndex(parts[0]), dayIndex(parts[1])
		t := dayIndex(weekday)
		if s < 0 || e < 0 || t < 0 {
			return false, ErrMalformedDayRange
		}
		if s <= e {
			return s <= t && t <= e, nil
		}
		// wraparound span
		return t >= s || t <= e, nil
	default:
		return false, ErrMalformedDayRange
	}
}
