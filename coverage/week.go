// SPDX-License-Identifier: MIT

package coverage

import (
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/tollgrid/table"
	"golang.org/x/text/cases"
)

// Day is 24 hours; the reference week holds seven of them.
const Day = 24 * time.Hour

// FullWeek is the minimum span a group must cover to be complete: one second
// short of seven days, so Monday 00:00:00 → Sunday 23:59:59 passes.
const FullWeek = 7*Day - time.Second

// ReferenceMonday anchors the reference week. 2024-01-01 is a Monday.
var ReferenceMonday = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// dayNames maps folded full names and three-letter abbreviations to weekdays.
var dayNames = func() map[string]time.Weekday {
	fold := cases.Fold()
	m := make(map[string]time.Weekday, 14)
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := fold.String(d.String())
		m[name] = d
		m[name[:3]] = d
	}

	return m
}()

// ParseDay parses an English weekday name, case-insensitively.
// Full names ("Monday") and three-letter abbreviations ("mon") are accepted.
// Errors: ErrBadDay.
func ParseDay(s string) (time.Weekday, error) {
	d, ok := dayNames[cases.Fold().String(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%q: %w", s, ErrBadDay)
	}

	return d, nil
}

// ParseClock parses a time of day "15:04:05" (or "15:04") into the offset
// from midnight. Errors: ErrBadTime.
func ParseClock(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.TimeOnly, "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return sinceMidnight(t), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrBadTime)
}

// ClockOf reads a time of day from a cell: a String cell is parsed with
// ParseClock, a Time cell contributes its clock part.
// Errors: ErrBadTime for any other kind.
func ClockOf(v table.Value) (time.Duration, error) {
	if s, ok := v.Text(); ok {
		return ParseClock(s)
	}
	if t, ok := v.Time(); ok {
		return sinceMidnight(t), nil
	}

	return 0, fmt.Errorf("%s cell %s: %w", v.Kind(), v, ErrBadTime)
}

// DayOf reads a weekday from a String cell. Errors: ErrBadDay.
func DayOf(v table.Value) (time.Weekday, error) {
	s, ok := v.Text()
	if !ok {
		return 0, fmt.Errorf("%s cell %s: %w", v.Kind(), v, ErrBadDay)
	}

	return ParseDay(s)
}

// Instant places (day, clock) on the reference week.
func Instant(d time.Weekday, clock time.Duration) time.Time {
	return ReferenceMonday.Add(time.Duration(weekOffset(d))*Day + clock)
}

// IsWeekend reports Saturday and Sunday.
func IsWeekend(d time.Weekday) bool {
	return d == time.Saturday || d == time.Sunday
}

// weekOffset is the position of d in a Monday-first week (Monday = 0).
func weekOffset(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// sinceMidnight returns the clock part of t as a duration.
func sinceMidnight(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second + time.Duration(t.Nanosecond())
}
