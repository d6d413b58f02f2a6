package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"timebank/internal/model"
	"timebank/internal/timesheet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakePeriodRepo is an in-memory PeriodRepo. Setting failNext makes the next
// write fail without touching state, mimicking a lost store round trip.
type fakePeriodRepo struct {
	periods  []model.Period
	failNext error
	inserts  int
	closes   int
}

func (f *fakePeriodRepo) takeErr() error {
	err := f.failNext
	f.failNext = nil
	return err
}

func (f *fakePeriodRepo) ListByUser(_ context.Context, userID int) ([]model.Period, error) {
	var out []model.Period
	for _, p := range f.periods {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePeriodRepo) ListByDay(_ context.Context, userID int, date string) ([]model.Period, error) {
	var out []model.Period
	for _, p := range f.periods {
		if p.UserID == userID && p.Date == date {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePeriodRepo) Get(_ context.Context, userID int, id string) (model.Period, error) {
	for _, p := range f.periods {
		if p.ID == id && p.UserID == userID {
			return p, nil
		}
	}
	return model.Period{}, gorm.ErrRecordNotFound
}

func (f *fakePeriodRepo) Insert(_ context.Context, p *model.Period) error {
	if err := f.takeErr(); err != nil {
		return err
	}
	f.inserts++
	f.periods = append(f.periods, *p)
	return nil
}

func (f *fakePeriodRepo) SetClockOut(_ context.Context, id, clockOut string, minutes int) error {
	if err := f.takeErr(); err != nil {
		return err
	}
	f.closes++
	for i := range f.periods {
		if f.periods[i].ID == id {
			out, d := clockOut, minutes
			f.periods[i].ClockOut = &out
			f.periods[i].DurationMinutes = &d
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakePeriodRepo) Update(_ context.Context, p *model.Period) error {
	if err := f.takeErr(); err != nil {
		return err
	}
	for i := range f.periods {
		if f.periods[i].ID == p.ID {
			f.periods[i] = *p
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakePeriodRepo) Delete(_ context.Context, userID int, id string) error {
	for i := range f.periods {
		if f.periods[i].ID == id && f.periods[i].UserID == userID {
			f.periods = append(f.periods[:i], f.periods[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func at(hour, min int) time.Time {
	return time.Date(2026, time.January, 5, hour, min, 0, 0, time.UTC)
}

func TestPunchFullDay(t *testing.T) {
	repo := &fakePeriodRepo{}
	svc := NewClockService(repo)
	ctx := context.Background()

	res, err := svc.Punch(ctx, 1, at(8, 0))
	require.NoError(t, err)
	assert.Equal(t, timesheet.MorningOpen, res.State)
	require.NotNil(t, res.Period)
	assert.Equal(t, "08:00", res.Period.ClockIn)
	assert.Equal(t, "05/01/2026", res.Period.Date)
	assert.NotEmpty(t, res.Period.ID)

	res, err = svc.Punch(ctx, 1, at(12, 0))
	require.NoError(t, err)
	assert.Equal(t, timesheet.MorningClosing, res.State)
	require.NotNil(t, res.Period.DurationMinutes)
	assert.Equal(t, 240, *res.Period.DurationMinutes)

	res, err = svc.Punch(ctx, 1, at(13, 0))
	require.NoError(t, err)
	assert.Equal(t, timesheet.AfternoonOpen, res.State)

	res, err = svc.Punch(ctx, 1, at(17, 30))
	require.NoError(t, err)
	assert.Equal(t, timesheet.AfternoonClosing, res.State)
	require.NotNil(t, res.Period.DurationMinutes)
	assert.Equal(t, 270, *res.Period.DurationMinutes)

	assert.Equal(t, 2, repo.inserts)
	assert.Equal(t, 2, repo.closes)
}

func TestPunchCompleteDayMutatesNothing(t *testing.T) {
	repo := &fakePeriodRepo{}
	svc := NewClockService(repo)
	ctx := context.Background()

	for _, tm := range []time.Time{at(8, 0), at(12, 0), at(13, 0), at(17, 30)} {
		_, err := svc.Punch(ctx, 1, tm)
		require.NoError(t, err)
	}
	inserts, closes := repo.inserts, repo.closes

	res, err := svc.Punch(ctx, 1, at(18, 0))
	require.NoError(t, err)
	assert.True(t, res.Complete)
	assert.Equal(t, timesheet.DayComplete, res.State)
	assert.Nil(t, res.Period)
	assert.Equal(t, inserts, repo.inserts)
	assert.Equal(t, closes, repo.closes)
}

func TestPunchNewDayStartsFresh(t *testing.T) {
	repo := &fakePeriodRepo{}
	svc := NewClockService(repo)
	ctx := context.Background()

	for _, tm := range []time.Time{at(8, 0), at(12, 0), at(13, 0), at(17, 30)} {
		_, err := svc.Punch(ctx, 1, tm)
		require.NoError(t, err)
	}

	nextDay := time.Date(2026, time.January, 6, 8, 30, 0, 0, time.UTC)
	res, err := svc.Punch(ctx, 1, nextDay)
	require.NoError(t, err)
	assert.Equal(t, timesheet.MorningOpen, res.State)
	assert.Equal(t, "06/01/2026", res.Period.Date)
}

func TestPunchUsersAreIndependent(t *testing.T) {
	repo := &fakePeriodRepo{}
	svc := NewClockService(repo)
	ctx := context.Background()

	_, err := svc.Punch(ctx, 1, at(8, 0))
	require.NoError(t, err)

	res, err := svc.Punch(ctx, 2, at(9, 0))
	require.NoError(t, err)
	assert.Equal(t, timesheet.MorningOpen, res.State)
}

// A failed write leaves nothing behind; the retry recomputes the same
// action from scratch.
func TestPunchStoreFailureLeavesStateUnchanged(t *testing.T) {
	repo := &fakePeriodRepo{failNext: errors.New("connection reset")}
	svc := NewClockService(repo)
	ctx := context.Background()

	_, err := svc.Punch(ctx, 1, at(8, 0))
	require.Error(t, err)
	assert.Empty(t, repo.periods)

	res, err := svc.Punch(ctx, 1, at(8, 1))
	require.NoError(t, err)
	assert.Equal(t, timesheet.MorningOpen, res.State)
	assert.Equal(t, "08:01", res.Period.ClockIn)
}

func TestNextDoesNotMutate(t *testing.T) {
	repo := &fakePeriodRepo{}
	svc := NewClockService(repo)
	ctx := context.Background()

	act, err := svc.Next(ctx, 1, at(8, 0))
	require.NoError(t, err)
	assert.Equal(t, timesheet.MorningOpen, act.State)
	assert.Empty(t, repo.periods)
}
