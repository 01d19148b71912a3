// SPDX-License-Identifier: MIT

package coverage

import "time"

// Default dataset-2 layout.
const (
	DefaultIDColumn        = "id"
	DefaultID2Column       = "id_2"
	DefaultStartDayColumn  = "startDay"
	DefaultStartTimeColumn = "startTime"
	DefaultEndDayColumn    = "endDay"
	DefaultEndTimeColumn   = "endTime"
)

const (
	panicKeysEmpty    = "coverage: WithKeyColumns: need at least one non-empty column"
	panicDayTimeEmpty = "coverage: WithDayTimeColumns: column names must be non-empty"
	panicSpanBad      = "coverage: WithMinSpan: span must be positive"
)

// Option mutates internal options.
type Option func(*Options)

// Options is the effective configuration of Check.
type Options struct {
	keyCols             []string
	startDay, startTime string
	endDay, endTime     string
	minSpan             time.Duration // FullWeek
}

// WithKeyColumns sets the grouping columns (default id, id_2).
// Panics on an empty list or an empty name.
func WithKeyColumns(names ...string) Option {
	if len(names) == 0 {
		panic(panicKeysEmpty)
	}
	for _, n := range names {
		if n == "" {
			panic(panicKeysEmpty)
		}
	}
	names = append([]string(nil), names...)

	return func(o *Options) { o.keyCols = names }
}

// WithDayTimeColumns sets the four day / time-of-day columns.
func WithDayTimeColumns(startDay, startTime, endDay, endTime string) Option {
	if startDay == "" || startTime == "" || endDay == "" || endTime == "" {
		panic(panicDayTimeEmpty)
	}

	return func(o *Options) {
		o.startDay, o.startTime, o.endDay, o.endTime = startDay, startTime, endDay, endTime
	}
}

// WithMinSpan overrides the completeness threshold (default FullWeek).
func WithMinSpan(d time.Duration) Option {
	if d <= 0 {
		panic(panicSpanBad)
	}

	return func(o *Options) { o.minSpan = d }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		keyCols:   []string{DefaultIDColumn, DefaultID2Column},
		startDay:  DefaultStartDayColumn,
		startTime: DefaultStartTimeColumn,
		endDay:    DefaultEndDayColumn,
		endTime:   DefaultEndTimeColumn,
		minSpan:   FullWeek,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
