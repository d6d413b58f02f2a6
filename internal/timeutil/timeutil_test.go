package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:30", 510, false},
		{"23:59", 1439, false},
		// no bounds validation: any numeric pair is accepted
		{"27:99", 27*60 + 99, false},
		{"8", 0, true},
		{"08:15:30", 0, true},
		{"ab:cd", 0, true},
		{"08:xx", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ToMinutes(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrMalformedTime, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		start, end string
		want       int
	}{
		{"08:00", "12:00", 240},
		{"08:00", "08:00", 0},
		{"12:00", "08:00", -240}, // negative allowed, callers decide
		{"22:00", "23:30", 90},
	}
	for _, tt := range tests {
		got, err := Duration(tt.start, tt.end)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s -> %s", tt.start, tt.end)
	}
}

func TestDurationMatchesToMinutes(t *testing.T) {
	pairs := [][2]string{
		{"00:00", "23:59"}, {"07:45", "12:15"}, {"18:00", "09:00"},
	}
	for _, p := range pairs {
		s, err := ToMinutes(p[0])
		require.NoError(t, err)
		e, err := ToMinutes(p[1])
		require.NoError(t, err)
		d, err := Duration(p[0], p[1])
		require.NoError(t, err)
		assert.Equal(t, e-s, d)
	}
}

func TestDurationMalformed(t *testing.T) {
	_, err := Duration("08:00", "noon")
	assert.ErrorIs(t, err, ErrMalformedTime)
	_, err = Duration("morning", "12:00")
	assert.ErrorIs(t, err, ErrMalformedTime)
}

func TestDateKeyRoundTrip(t *testing.T) {
	day := time.Date(2026, time.March, 9, 15, 4, 5, 0, time.UTC)
	key := DateKey(day)
	assert.Equal(t, "09/03/2026", key)

	parsed, err := ParseDateKey(key)
	require.NoError(t, err)
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.March, parsed.Month())
	assert.Equal(t, 9, parsed.Day())
	assert.Equal(t, time.Monday, parsed.Weekday())
}

func TestClock(t *testing.T) {
	now := time.Date(2026, time.March, 9, 7, 5, 59, 0, time.UTC)
	assert.Equal(t, "07:05", Clock(now))
}
