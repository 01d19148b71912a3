// SPDX-License-Identifier: MIT

package coverage_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/tollgrid/coverage"
	"github.com/katalvlaran/tollgrid/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	t.Parallel()

	cases := map[string]time.Weekday{
		"Monday":    time.Monday,
		"monday":    time.Monday,
		" SUNDAY ":  time.Sunday,
		"wed":       time.Wednesday,
		"Thu":       time.Thursday,
		"saturday":  time.Saturday,
		"FRIDAY":    time.Friday,
		"tuesday":   time.Tuesday,
		"Wednesday": time.Wednesday,
	}
	for in, want := range cases {
		got, err := coverage.ParseDay(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "Mo", "Funday", "Mondays"} {
		_, err := coverage.ParseDay(bad)
		require.ErrorIs(t, err, coverage.ErrBadDay, bad)
	}
}

func TestParseClock(t *testing.T) {
	t.Parallel()

	got, err := coverage.ParseClock("23:59:59")
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour-time.Second, got)

	got, err = coverage.ParseClock("10:30")
	require.NoError(t, err)
	assert.Equal(t, 10*time.Hour+30*time.Minute, got)

	for _, bad := range []string{"", "25:00:00", "noon", "10:00:00 PM"} {
		_, err = coverage.ParseClock(bad)
		require.ErrorIs(t, err, coverage.ErrBadTime, bad)
	}
}

func TestClockOfTimeCell(t *testing.T) {
	t.Parallel()

	c, err := coverage.ClockOf(table.TimeValue(time.Date(2023, 5, 6, 7, 8, 9, 0, time.UTC)))
	require.NoError(t, err)
	assert.Equal(t, 7*time.Hour+8*time.Minute+9*time.Second, c)

	_, err = coverage.ClockOf(table.NumberValue(7))
	require.ErrorIs(t, err, coverage.ErrBadTime)

	_, err = coverage.DayOf(table.NumberValue(1))
	require.ErrorIs(t, err, coverage.ErrBadDay)
}

func TestReferenceWeek(t *testing.T) {
	t.Parallel()

	require.Equal(t, time.Monday, coverage.ReferenceMonday.Weekday())
	mon := coverage.Instant(time.Monday, 0)
	sun := coverage.Instant(time.Sunday, 24*time.Hour-time.Second)
	assert.Equal(t, coverage.FullWeek, sun.Sub(mon))
	assert.Equal(t, time.Sunday, sun.Weekday())

	assert.True(t, coverage.IsWeekend(time.Saturday))
	assert.True(t, coverage.IsWeekend(time.Sunday))
	assert.False(t, coverage.IsWeekend(time.Friday))
}
