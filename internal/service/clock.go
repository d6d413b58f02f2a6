package service

import (
	"context"
	"sync"
	"time"

	"timebank/internal/model"
	"timebank/internal/timesheet"
	"timebank/internal/timeutil"

	"github.com/google/uuid"
)

// ClockService runs the quick-action workflow: decide the next clock event
// for today and apply the single mutation it implies. Decide+apply holds a
// per-user lock so a second punch cannot act on a stale snapshot while the
// first one's write is in flight.
type ClockService struct {
	periods PeriodRepo

	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func NewClockService(periods PeriodRepo) *ClockService {
	return &ClockService{periods: periods, locks: make(map[int]*sync.Mutex)}
}

// PunchResult is the applied (or rejected) quick action. Period is the
// created or closed record, nil when the day was already complete.
type PunchResult struct {
	State    timesheet.State
	Complete bool
	Period   *model.Period
}

// Next peeks at the action a punch would take right now, without mutating
// anything.
func (s *ClockService) Next(ctx context.Context, userID int, now time.Time) (timesheet.Action, error) {
	today, err := s.periods.ListByDay(ctx, userID, timeutil.DateKey(now))
	if err != nil {
		return timesheet.Action{}, err
	}
	return timesheet.NextAction(today), nil
}

// Punch applies the next clock event at the given instant. A complete day is
// reported, not failed. When the store write fails nothing is retried and no
// state is kept; the next punch recomputes from scratch.
func (s *ClockService) Punch(ctx context.Context, userID int, now time.Time) (*PunchResult, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	date := timeutil.DateKey(now)
	today, err := s.periods.ListByDay(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	act := timesheet.NextAction(today)
	switch act.Kind {
	case timesheet.KindCreate:
		p := &model.Period{
			ID:      uuid.NewString(),
			UserID:  userID,
			Date:    date,
			ClockIn: timeutil.Clock(now),
		}
		if err := s.periods.Insert(ctx, p); err != nil {
			return nil, err
		}
		return &PunchResult{State: act.State, Period: p}, nil

	case timesheet.KindClose:
		out := timeutil.Clock(now)
		minutes, err := timeutil.Duration(act.Target.ClockIn, out)
		if err != nil {
			return nil, err
		}
		if err := s.periods.SetClockOut(ctx, act.Target.ID, out, minutes); err != nil {
			return nil, err
		}
		closed := *act.Target
		closed.ClockOut = &out
		closed.DurationMinutes = &minutes
		return &PunchResult{State: act.State, Period: &closed}, nil

	default:
		return &PunchResult{State: timesheet.DayComplete, Complete: true}, nil
	}
}

func (s *ClockService) userLock(userID int) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}
