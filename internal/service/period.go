package service

import (
	"context"

	"timebank/internal/model"
	"timebank/internal/timesheet"

	"github.com/google/uuid"
)

// PeriodService covers the manual paths: daily entry, full-record edit,
// deletion and the grouped history view.
type PeriodService struct {
	periods PeriodRepo
}

func NewPeriodService(periods PeriodRepo) *PeriodService {
	return &PeriodService{periods: periods}
}

// SaveDay decomposes a manual day entry and stores the resulting drafts,
// assigning ids and the owner. Times are not order-checked here; the day
// entry form accepts partial and out-of-order input.
func (s *PeriodService) SaveDay(ctx context.Context, userID int, entry timesheet.DayEntry) ([]model.Period, error) {
	drafts, err := timesheet.DecomposeDay(entry)
	if err != nil {
		return nil, err
	}
	for i := range drafts {
		drafts[i].ID = uuid.NewString()
		drafts[i].UserID = userID
		if err := s.periods.Insert(ctx, &drafts[i]); err != nil {
			return nil, err
		}
	}
	return drafts, nil
}

// Edit replaces both boundaries of a stored period. This is the one path
// that rejects a clock-out at or before the clock-in; an empty clock-out
// reopens the period and clears its duration.
func (s *PeriodService) Edit(ctx context.Context, userID int, id, clockIn, clockOut string) (*model.Period, error) {
	if clockIn == "" {
		return nil, timesheet.ErrMissingClockIn
	}
	p, err := s.periods.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	p.ClockIn = clockIn
	if clockOut == "" {
		p.ClockOut = nil
		p.DurationMinutes = nil
	} else {
		d, err := timesheet.ClosedDuration(clockIn, clockOut)
		if err != nil {
			return nil, err
		}
		p.ClockOut = &clockOut
		p.DurationMinutes = &d
	}

	if err := s.periods.Update(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PeriodService) Delete(ctx context.Context, userID int, id string) error {
	return s.periods.Delete(ctx, userID, id)
}

// History returns the user's periods grouped into days, newest day first.
func (s *PeriodService) History(ctx context.Context, userID int) ([]timesheet.WorkDay, error) {
	ps, err := s.periods.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return timesheet.WorkDays(ps), nil
}
