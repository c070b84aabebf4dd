package schedule

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrMissingDate       = errors.New("missing date")
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY/MM/DD")
	ErrMissingTime       = errors.New("missing time")
	ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")
	ErrMalformedDayRange = errors.New("malformed day range")
)

const dateLayout = "2006/01/02"

// ResolvedQuery is the canonical form of a user's day/time expression, used
// to match against weekly slots.
type ResolvedQuery struct {
	Date    time.Time // calendar date, midnight in the clinic timezone
	Weekday string    // lowercase 3-letter token, "mon".."sun"
	Time    Clock
}

// DateString formats the resolved date the way the appointment store keeps it.
func (r ResolvedQuery) DateString() string {
	return r.Date.Format(dateLayout)
}

// Resolve turns a date expression and a time expression into a ResolvedQuery.
// Relative phrases ("today", "tomorrow", "day after tomorrow") are anchored
// to now, which the caller supplies already shifted into the clinic's fixed
// timezone; anything else must be a strict YYYY/MM/DD date. The time
// expression must be a strict HH:MM 24-hour time.
func Resolve(dateExpr, timeExpr string, now time.Time) (ResolvedQuery, error) {
	dateExpr = strings.TrimSpace(dateExpr)
	if dateExpr == "" {
		return ResolvedQuery{}, ErrMissingDate
	}

	lower := strings.ToLower(dateExpr)
	var target time.Time
	switch {
	case strings.Contains(lower, "today"):
		target = now
	// "day after tomorrow" contains "tomorrow", so it has to be checked first.
	case strings.Contains(lower, "day after tomorrow"):
		target = now.AddDate(0, 0, 2)
	case strings.Contains(lower, "tomorrow"):
		target = now.AddDate(0, 0, 1)
	default:
		parsed, err := time.ParseInLocation(dateLayout, dateExpr, now.Location())
		if err != nil {
			return ResolvedQuery{}, ErrInvalidDateFormat
		}
		target = parsed
	}
	target = time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, now.Location())

	if strings.TrimSpace(timeExpr) == "" {
		return ResolvedQuery{}, ErrMissingTime
	}
	clock, err := ParseClock(timeExpr)
	if err != nil {
		return ResolvedQuery{}, err
	}

	return ResolvedQuery{
		Date:    target,
		Weekday: strings.ToLower(target.Format("Mon")),
		Time:    clock,
	}, nil
}
