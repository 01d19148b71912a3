// SPDX-License-Identifier: MIT
// Package: toll
//
// Purpose:
//   - ExpandWeek: price every row for every (day, window) slot of the week.
//   - ApplyTimeWindows: scale the vehicle columns of each qualifying record
//     by exactly one multiplier.
//
// Qualifying record: start day == end day and both clocks inside the same
// window (bounds inclusive). Windows are tried in order; the first match
// wins. On Saturday and Sunday the weekend factor replaces the window's.
// Every other record is left unchanged.

package toll

import (
	"time"

	"github.com/katalvlaran/tollgrid/coverage"
	"github.com/katalvlaran/tollgrid/table"
)

const (
	opApplyTimeWindows = "ApplyTimeWindows"
	opExpandWeek       = "ExpandWeek"
)

// clockEpoch is the zero date a time-of-day is stored on in Time cells.
var clockEpoch = time.Date(0, time.January, 1, 0, 0, 0, 0, time.UTC)

// ClockValue stores a time of day as a Time cell on the zero date.
func ClockValue(clock time.Duration) table.Value {
	return table.TimeValue(clockEpoch.Add(clock))
}

// weekdays lists the reference week, Monday first.
var weekdays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// ExpandWeek repeats every row once per (day, window) slot, Monday first and
// windows in order, appending start_day / start_time / end_day / end_time
// (day names as String, clocks as Time cells on the zero date).
//
// Options: WithWindows, WithDayTimeColumns.
// Errors: table.ErrNilTable, table.ErrDuplicateColumn.
// Complexity: O(r * 7 * w).
func ExpandWeek(t *table.Table, opts ...Option) (*table.Table, error) {
	if t == nil {
		return nil, tollErrorf(opExpandWeek, table.ErrNilTable)
	}
	o := gatherOptions(opts...)
	schema := append(t.Schema(),
		table.Column{Name: o.startDay, Kind: table.String},
		table.Column{Name: o.startTime, Kind: table.Time},
		table.Column{Name: o.endDay, Kind: table.String},
		table.Column{Name: o.endTime, Kind: table.Time},
	)
	b, err := table.NewBuilder(schema)
	if err != nil {
		return nil, tollErrorf(opExpandWeek, err)
	}
	b.Grow(t.Len() * len(weekdays) * len(o.windows))

	t.Rows(func(r table.Row) bool {
		base := r.Values()
		for _, d := range weekdays {
			day := table.StringValue(d.String())
			for _, w := range o.windows {
				row := append(base[:len(base):len(base)], day, ClockValue(w.Start), day, ClockValue(w.End))
				if err = b.Append(row...); err != nil {
					return false
				}
			}
		}
		return true
	})
	if err != nil {
		return nil, tollErrorf(opExpandWeek, err)
	}

	return b.Build(), nil
}

// ApplyTimeWindows returns t with every vehicle column of each qualifying
// record multiplied by its single applicable factor.
//
// Options: WithWindows, WithWeekendFactor, WithDayTimeColumns, WithRates
// (names the vehicle columns to scale).
//
// Errors: table.ErrNilTable, table.ErrUnknownColumn, table.ErrKindMismatch,
// coverage.ErrBadDay, coverage.ErrBadTime (wrapped with the row index).
// Complexity: O(r*(w+v)).
func ApplyTimeWindows(t *table.Table, opts ...Option) (*table.Table, error) {
	if t == nil {
		return nil, tollErrorf(opApplyTimeWindows, table.ErrNilTable)
	}
	o := gatherOptions(opts...)

	factors, err := recordFactors(t, o)
	if err != nil {
		return nil, tollErrorf(opApplyTimeWindows, err)
	}

	out := t
	for _, r := range o.rates {
		xs, ferr := out.Floats(r.Vehicle)
		if ferr != nil {
			return nil, tollErrorf(opApplyTimeWindows, ferr)
		}
		vals := make([]table.Value, len(xs))
		for i, x := range xs {
			vals[i] = table.NumberValue(x * factors[i])
		}
		if out, err = out.ReplaceColumn(r.Vehicle, vals); err != nil {
			return nil, tollErrorf(opApplyTimeWindows, err)
		}
	}

	return out, nil
}

// recordFactors computes the one multiplier of every row (1 when the record
// does not qualify).
func recordFactors(t *table.Table, o Options) ([]float64, error) {
	cols := make([][]table.Value, 4)
	for k, name := range []string{o.startDay, o.startTime, o.endDay, o.endTime} {
		vs, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		cols[k] = vs
	}
	startDays, startTimes, endDays, endTimes := cols[0], cols[1], cols[2], cols[3]

	out := make([]float64, t.Len())
	for i := range out {
		out[i] = 1
		sd, err := coverage.DayOf(startDays[i])
		if err != nil {
			return nil, rowErrorf(i, o.startDay, err)
		}
		ed, err := coverage.DayOf(endDays[i])
		if err != nil {
			return nil, rowErrorf(i, o.endDay, err)
		}
		st, err := coverage.ClockOf(startTimes[i])
		if err != nil {
			return nil, rowErrorf(i, o.startTime, err)
		}
		et, err := coverage.ClockOf(endTimes[i])
		if err != nil {
			return nil, rowErrorf(i, o.endTime, err)
		}
		if sd != ed {
			continue
		}
		for _, w := range o.windows {
			if !w.Contains(st) || !w.Contains(et) {
				continue
			}
			if coverage.IsWeekend(sd) {
				out[i] = o.weekend
			} else {
				out[i] = w.Factor
			}
			break
		}
	}

	return out, nil
}
