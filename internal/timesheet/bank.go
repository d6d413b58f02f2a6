package timesheet

import (
	"time"

	"timebank/internal/model"
	"timebank/internal/timeutil"
)

// Fridays expect a fixed 8h day regardless of the configured workload.
const fridayExpectedMinutes = 8 * 60

// BankSnapshot is the hour bank aggregated over all stored periods. It is
// recomputed from scratch on every read, never cached.
type BankSnapshot struct {
	DaysWorked           int `json:"days_worked"`
	TotalWorkedMinutes   int `json:"total_worked_minutes"`
	TotalExpectedMinutes int `json:"total_expected_minutes"`
	BankMinutes          int `json:"bank_minutes"`
}

// ComputeBank groups periods by day and balances worked minutes against the
// configured expectation. A day counts only when its summed duration is
// strictly positive; open periods contribute nothing, and a day holding only
// open periods stays out of both totals. The current config applies to all
// history uniformly.
func ComputeBank(periods []model.Period, cfg model.WorkConfig) BankSnapshot {
	var snap BankSnapshot
	for date, day := range GroupByDate(periods) {
		worked := 0
		for _, p := range day {
			if p.DurationMinutes != nil {
				worked += *p.DurationMinutes
			}
		}
		if worked <= 0 {
			continue
		}
		snap.DaysWorked++
		snap.TotalWorkedMinutes += worked

		expected := int(cfg.DailyHours * 60)
		if d, err := timeutil.ParseDateKey(date); err == nil && d.Weekday() == time.Friday {
			expected = fridayExpectedMinutes
		}
		snap.TotalExpectedMinutes += expected
	}
	snap.BankMinutes = snap.TotalWorkedMinutes - snap.TotalExpectedMinutes
	return snap
}
