// Package timesheet holds the attendance domain logic: decomposing a
// manually entered day into periods, deciding the next quick-action clock
// event, and aggregating stored periods into the hour bank. Everything here
// is a pure function over in-memory snapshots; persistence stays with the
// caller.
package timesheet

import (
	"errors"

	"timebank/internal/model"
)

// ErrDayComplete is the soft rejection for a quick action on a day that
// already has both periods closed.
var ErrDayComplete = errors.New("all clock events for the day are registered")

// State is the position of a day in the clock-in/out cycle, derived from the
// count and completeness of its periods.
type State string

const (
	MorningOpen      State = "morning_open"
	MorningClosing   State = "morning_closing"
	AfternoonOpen    State = "afternoon_open"
	AfternoonClosing State = "afternoon_closing"
	DayComplete      State = "day_complete"
)

// Label is the user-facing name of the clock event the state expects next.
func (s State) Label() string {
	switch s {
	case MorningOpen:
		return "clock in"
	case MorningClosing:
		return "clock out for lunch"
	case AfternoonOpen:
		return "clock back in from lunch"
	case AfternoonClosing:
		return "clock out"
	default:
		return "day complete"
	}
}

// Kind says which single mutation an Action implies.
type Kind int

const (
	// KindCreate opens a new period with clockIn = now.
	KindCreate Kind = iota
	// KindClose sets clockOut = now on the target period.
	KindClose
	// KindNone means the day is complete; nothing may be mutated.
	KindNone
)

// Action is the decision half of the quick-action workflow: the state the
// day is in and the one mutation it implies. Target is the period to close
// for KindClose and nil otherwise.
type Action struct {
	State  State
	Kind   Kind
	Target *model.Period
}

// NextAction decides the next clock event for a day given a snapshot of its
// periods, in any order. Only the first two periods by clock-in time are
// considered; a day holding more than two is treated as complete.
func NextAction(today []model.Period) Action {
	ps := SortByClockIn(today)
	switch {
	case len(ps) == 0:
		return Action{State: MorningOpen, Kind: KindCreate}
	case len(ps) == 1 && ps[0].Open():
		return Action{State: MorningClosing, Kind: KindClose, Target: &ps[0]}
	case len(ps) == 1:
		return Action{State: AfternoonOpen, Kind: KindCreate}
	case len(ps) == 2 && ps[1].Open():
		return Action{State: AfternoonClosing, Kind: KindClose, Target: &ps[1]}
	default:
		return Action{State: DayComplete, Kind: KindNone}
	}
}
