package timesheet

import (
	"testing"

	"timebank/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func closedPeriod(id, in, out string) model.Period {
	d := 0
	return model.Period{ID: id, Date: testDate, ClockIn: in, ClockOut: strPtr(out), DurationMinutes: &d}
}

func openPeriod(id, in string) model.Period {
	return model.Period{ID: id, Date: testDate, ClockIn: in}
}

func TestNextActionEmptyDay(t *testing.T) {
	act := NextAction(nil)
	assert.Equal(t, MorningOpen, act.State)
	assert.Equal(t, KindCreate, act.Kind)
	assert.Nil(t, act.Target)
}

func TestNextActionMorningOpen(t *testing.T) {
	act := NextAction([]model.Period{openPeriod("m", "08:00")})
	assert.Equal(t, MorningClosing, act.State)
	assert.Equal(t, KindClose, act.Kind)
	require.NotNil(t, act.Target)
	assert.Equal(t, "m", act.Target.ID)
}

func TestNextActionMorningClosed(t *testing.T) {
	act := NextAction([]model.Period{closedPeriod("m", "08:00", "12:00")})
	assert.Equal(t, AfternoonOpen, act.State)
	assert.Equal(t, KindCreate, act.Kind)
	assert.Nil(t, act.Target)
}

func TestNextActionAfternoonOpen(t *testing.T) {
	act := NextAction([]model.Period{
		closedPeriod("m", "08:00", "12:00"),
		openPeriod("a", "13:00"),
	})
	assert.Equal(t, AfternoonClosing, act.State)
	assert.Equal(t, KindClose, act.Kind)
	require.NotNil(t, act.Target)
	assert.Equal(t, "a", act.Target.ID)
}

// The decision keys off clock-in order, not storage order.
func TestNextActionSortsByClockIn(t *testing.T) {
	act := NextAction([]model.Period{
		openPeriod("a", "13:00"),
		closedPeriod("m", "08:00", "12:00"),
	})
	assert.Equal(t, AfternoonClosing, act.State)
	require.NotNil(t, act.Target)
	assert.Equal(t, "a", act.Target.ID)
}

func TestNextActionDayComplete(t *testing.T) {
	act := NextAction([]model.Period{
		closedPeriod("m", "08:00", "12:00"),
		closedPeriod("a", "13:00", "17:30"),
	})
	assert.Equal(t, DayComplete, act.State)
	assert.Equal(t, KindNone, act.Kind)
	assert.Nil(t, act.Target)
}

func TestNextActionMoreThanTwoPeriods(t *testing.T) {
	act := NextAction([]model.Period{
		closedPeriod("m", "08:00", "12:00"),
		closedPeriod("a", "13:00", "17:30"),
		openPeriod("x", "19:00"),
	})
	assert.Equal(t, DayComplete, act.State)
	assert.Equal(t, KindNone, act.Kind)
}
