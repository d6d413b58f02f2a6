package timesheet

import (
	"sort"
	"strings"

	"timebank/internal/model"
)

// Slot is the conventional position of a period within its day. The
// attendance workflow keeps a day at two periods; anything past the first is
// treated as the afternoon.
type Slot int

const (
	Morning Slot = iota
	Afternoon
)

func (s Slot) String() string {
	if s == Morning {
		return "morning"
	}
	return "afternoon"
}

// SlotOf maps a period's position in its sorted day to a slot.
func SlotOf(index int) Slot {
	if index == 0 {
		return Morning
	}
	return Afternoon
}

// WorkDay is all periods sharing a day key, sorted by clock-in.
type WorkDay struct {
	Date    string
	Periods []model.Period
}

// TotalMinutes sums the computed durations of the day. Open periods count
// as zero.
func (w WorkDay) TotalMinutes() int {
	total := 0
	for _, p := range w.Periods {
		if p.DurationMinutes != nil {
			total += *p.DurationMinutes
		}
	}
	return total
}

// InProgress reports whether any period of the day is still open.
func (w WorkDay) InProgress() bool {
	for _, p := range w.Periods {
		if p.Open() {
			return true
		}
	}
	return false
}

// SortByClockIn returns a copy of periods ordered by clock-in string, the
// same lexical order the day keys its morning/afternoon convention on.
func SortByClockIn(periods []model.Period) []model.Period {
	ps := make([]model.Period, len(periods))
	copy(ps, periods)
	sort.SliceStable(ps, func(i, j int) bool { return ps[i].ClockIn < ps[j].ClockIn })
	return ps
}

// GroupByDate buckets periods by their day key.
func GroupByDate(periods []model.Period) map[string][]model.Period {
	byDate := make(map[string][]model.Period)
	for _, p := range periods {
		byDate[p.Date] = append(byDate[p.Date], p)
	}
	return byDate
}

// WorkDays groups periods into days sorted newest first, each day's periods
// sorted by clock-in.
func WorkDays(periods []model.Period) []WorkDay {
	byDate := GroupByDate(periods)
	days := make([]WorkDay, 0, len(byDate))
	for date, ps := range byDate {
		days = append(days, WorkDay{Date: date, Periods: SortByClockIn(ps)})
	}
	sort.Slice(days, func(i, j int) bool {
		return sortableDate(days[i].Date) > sortableDate(days[j].Date)
	})
	return days
}

// sortableDate flips dd/mm/yyyy into yyyymmdd so day keys order
// chronologically as strings.
func sortableDate(key string) string {
	parts := strings.Split(key, "/")
	if len(parts) != 3 {
		return key
	}
	return parts[2] + parts[1] + parts[0]
}
