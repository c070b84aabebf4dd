// Package schedule resolves user-supplied day and time expressions into a
// concrete calendar date plus weekday, and matches the result against the
// weekly availability slots kept per doctor.
package schedule

import (
	"fmt"
	"strings"
)

// Clock is a time of day in minutes since midnight. Slots never cross
// midnight, so plain integer comparison is enough everywhere.
type Clock int

// ParseClock parses a strict "HH:MM" 24-hour time of day.
func ParseClock(s string) (Clock, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, ErrInvalidTimeFormat
	}
	return clockFromParts(parts[0], parts[1])
}

// ParseSlotClock parses a slot boundary, tolerating the availability store's
// "HH:MM:SS" form alongside "HH:MM". Seconds are discarded.
func ParseSlotClock(s string) (Clock, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, ErrInvalidTimeFormat
	}
	return clockFromParts(parts[0], parts[1])
}

func clockFromParts(hh, mm string) (Clock, error) {
	hour, err := twoDigits(hh)
	if err != nil || hour > 23 {
		return 0, ErrInvalidTimeFormat
	}
	minute, err := twoDigits(mm)
	if err != nil || minute > 59 {
		return 0, ErrInvalidTimeFormat
	}
	return Clock(hour*60 + minute), nil
}

func twoDigits(s string) (int, error) {
	if len(s) != 2 || s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, ErrInvalidTimeFormat
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}
