// SPDX-License-Identifier: MIT

// Package coverage checks whether grouped time intervals, given as
// (day name, time of day) pairs, span a full week.
//
// Day names are placed on a fixed reference week that starts on Monday, so
// only the weekday and the clock matter; calendar dates never enter the
// computation. The package also exports the week helpers (ParseDay,
// ParseClock, Instant, IsWeekend) that the toll package reuses for its
// day-of-week windows.
package coverage
