// SPDX-License-Identifier: MIT
// Package: coverage
//
// Purpose:
//   - For every (id, id_2) group, decide whether its records together span a
//     full week on the reference week.
//
// Algorithm:
//  1. Parse every record into (start, end) instants; the first bad cell
//     aborts with its row index.
//  2. Group by the key columns (ascending keys).
//  3. span = max(end) − min(start); complete iff span ≥ FullWeek.
//
// Complexity: O(r + g log g).

package coverage

import (
	"slices"
	"time"

	"github.com/katalvlaran/tollgrid/table"
)

const opCheck = "Check"

// Group is the coverage verdict for one key tuple.
type Group struct {
	Key      []table.Value // one value per key column
	Complete bool          // Span ≥ the minimum span
	Span     time.Duration // Latest − Earliest
	Earliest time.Time     // min start instant on the reference week
	Latest   time.Time     // max end instant on the reference week
}

// Report lists one Group per key tuple present in the input, ascending by key.
type Report struct {
	Groups []Group
}

// Lookup returns the group with the given key tuple.
func (r Report) Lookup(key ...table.Value) (Group, bool) {
	i, ok := slices.BinarySearchFunc(r.Groups, key, func(g Group, k []table.Value) int {
		return table.CompareTuples(g.Key, k)
	})
	if !ok {
		return Group{}, false
	}

	return r.Groups[i], true
}

// Incomplete returns the groups that do not cover the minimum span.
func (r Report) Incomplete() []Group {
	var out []Group
	for _, g := range r.Groups {
		if !g.Complete {
			out = append(out, g)
		}
	}

	return out
}

// Check computes the coverage Report of t.
//
// Options: WithKeyColumns (id, id_2), WithDayTimeColumns (startDay,
// startTime, endDay, endTime), WithMinSpan (FullWeek).
//
// Errors: table.ErrNilTable, table.ErrUnknownColumn, ErrBadDay, ErrBadTime
// (wrapped with row index and column name).
func Check(t *table.Table, opts ...Option) (Report, error) {
	if t == nil {
		return Report{}, coverageErrorf(opCheck, table.ErrNilTable)
	}
	o := gatherOptions(opts...)

	starts, err := instants(t, o.startDay, o.startTime)
	if err != nil {
		return Report{}, coverageErrorf(opCheck, err)
	}
	ends, err := instants(t, o.endDay, o.endTime)
	if err != nil {
		return Report{}, coverageErrorf(opCheck, err)
	}
	groups, err := t.GroupBy(o.keyCols...)
	if err != nil {
		return Report{}, coverageErrorf(opCheck, err)
	}

	rep := Report{Groups: make([]Group, len(groups))}
	for g, grp := range groups {
		lo, hi := starts[grp.Rows[0]], ends[grp.Rows[0]]
		for _, i := range grp.Rows[1:] {
			if starts[i].Before(lo) {
				lo = starts[i]
			}
			if ends[i].After(hi) {
				hi = ends[i]
			}
		}
		span := hi.Sub(lo)
		rep.Groups[g] = Group{
			Key:      grp.Key,
			Complete: span >= o.minSpan,
			Span:     span,
			Earliest: lo,
			Latest:   hi,
		}
	}

	return rep, nil
}

// instants parses one (day, time) column pair into reference-week instants.
func instants(t *table.Table, dayCol, timeCol string) ([]time.Time, error) {
	days, err := t.Column(dayCol)
	if err != nil {
		return nil, err
	}
	clocks, err := t.Column(timeCol)
	if err != nil {
		return nil, err
	}

	out := make([]time.Time, len(days))
	for i := range days {
		d, derr := DayOf(days[i])
		if derr != nil {
			return nil, rowErrorf(i, dayCol, derr)
		}
		c, cerr := ClockOf(clocks[i])
		if cerr != nil {
			return nil, rowErrorf(i, timeCol, cerr)
		}
		out[i] = Instant(d, c)
	}

	return out, nil
}
