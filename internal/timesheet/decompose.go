package timesheet

import (
	"errors"

	"timebank/internal/model"
	"timebank/internal/timeutil"
)

// ErrMissingClockIn rejects a day entry or edit without the mandatory
// clock-in time.
var ErrMissingClockIn = errors.New("clock-in time is required")

// ErrInvalidOrdering rejects a clock-out at or before the clock-in. Only the
// full-record edit path enforces it; quick actions and day decomposition
// store whatever they are given.
var ErrInvalidOrdering = errors.New("clock-out must be after clock-in")

// DayEntry is one manually entered day: a day key plus up to four times of
// day. Entry is mandatory, the rest may be empty.
type DayEntry struct {
	Date     string
	Entry    string
	LunchOut string
	LunchIn  string
	Exit     string
}

// DecomposeDay turns a manual day entry into one or two period drafts with
// no id or owner assigned.
//
// The morning draft is always emitted, closed by lunchOut when given. An
// afternoon draft is emitted only when lunchIn or exit is given; its
// clock-in falls back lunchIn -> lunchOut -> entry so it is never empty. Its
// duration is computed only when lunchIn and exit were both entered: a
// fallback clock-in is not a trusted boundary, so the afternoon stays
// without a duration even when exit is present.
func DecomposeDay(e DayEntry) ([]model.Period, error) {
	if e.Entry == "" {
		return nil, ErrMissingClockIn
	}

	morning := model.Period{Date: e.Date, ClockIn: e.Entry}
	if e.LunchOut != "" {
		d, err := timeutil.Duration(e.Entry, e.LunchOut)
		if err != nil {
			return nil, err
		}
		out := e.LunchOut
		morning.ClockOut = &out
		morning.DurationMinutes = &d
	}
	periods := []model.Period{morning}

	if e.LunchIn == "" && e.Exit == "" {
		return periods, nil
	}

	in := e.LunchIn
	if in == "" {
		in = e.LunchOut
	}
	if in == "" {
		in = e.Entry
	}
	afternoon := model.Period{Date: e.Date, ClockIn: in}
	if e.Exit != "" {
		out := e.Exit
		afternoon.ClockOut = &out
		if e.LunchIn != "" {
			d, err := timeutil.Duration(e.LunchIn, e.Exit)
			if err != nil {
				return nil, err
			}
			afternoon.DurationMinutes = &d
		}
	}
	return append(periods, afternoon), nil
}

// ClosedDuration computes the stored duration for a closed period and
// rejects a clock-out at or before the clock-in. It is the ordering check
// the manual edit path applies; other entry paths intentionally skip it.
func ClosedDuration(clockIn, clockOut string) (int, error) {
	d, err := timeutil.Duration(clockIn, clockOut)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, ErrInvalidOrdering
	}
	return d, nil
}
