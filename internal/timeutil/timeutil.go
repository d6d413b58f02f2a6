// Package timeutil holds the HH:MM and day-key string arithmetic shared by
// the timesheet domain and the HTTP layer. Times of day and calendar days
// travel as plain strings end to end; these helpers are the only place that
// parses them.
package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrMalformedTime reports a time-of-day string that does not split into two
// numeric components.
var ErrMalformedTime = errors.New("malformed time of day")

const (
	clockLayout   = "15:04"
	dateKeyLayout = "02/01/2006"
)

// ToMinutes converts an "HH:MM" string to minutes since midnight. There is
// deliberately no bounds check: any numeric hour and minute are accepted.
func ToMinutes(t string) (int, error) {
	parts := strings.Split(t, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, t)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, t)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, t)
	}
	return h*60 + m, nil
}

// Duration returns the minutes between two times of day. The result can be
// zero or negative; callers decide what that means. Shifts crossing midnight
// are not representable.
func Duration(start, end string) (int, error) {
	s, err := ToMinutes(start)
	if err != nil {
		return 0, err
	}
	e, err := ToMinutes(end)
	if err != nil {
		return 0, err
	}
	return e - s, nil
}

// Clock formats a wall-clock instant as the stored "HH:MM" form.
func Clock(t time.Time) string { return t.Format(clockLayout) }

// DateKey formats a calendar day as the dd/mm/yyyy grouping key. Identical
// strings mean the same day; nothing else about the format is interpreted
// except by ParseDateKey.
func DateKey(t time.Time) string { return t.Format(dateKeyLayout) }

// ParseDateKey turns a dd/mm/yyyy key back into a calendar date, used to
// determine the weekday for the expected-hours rule.
func ParseDateKey(key string) (time.Time, error) {
	return time.Parse(dateKeyLayout, key)
}
