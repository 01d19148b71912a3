// SPDX-License-Identifier: MIT

package aggregate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tollgrid/table"
)

const opIDsWithinPercent = "IDsWithinPercent"

// IDsWithinPercent finds the ids whose mean distance lies within a
// percentage band around the mean distance of ref.
//
// Rule: ref̄ = mean(distance | id_start == ref); keep every id_start whose
// mean m satisfies ref̄ − p·|ref̄| ≤ m ≤ ref̄ + p·|ref̄| (p = 0.1 by default).
// The reference id is part of its own band and is always returned.
//
// The result is a one-column table named after the group column, ascending.
//
// Options: WithGroupColumn (id_start), WithColumn (distance), WithPercent.
// Errors: table errors for a bad layout; ErrUnknownKey when ref selects no row.
// Complexity: O(r + g log g).
func IDsWithinPercent(t *table.Table, ref table.Value, opts ...Option) (*table.Table, error) {
	o := gatherOptions(DefaultWithinValueColumn, DefaultWithinGroupColumn, opts...)
	means, err := groupMeans(t, o)
	if err != nil {
		return nil, aggregateErrorf(opIDsWithinPercent, err)
	}

	refMean, found := 0.0, false
	for _, gm := range means {
		if gm.key.Equal(ref) {
			refMean, found = gm.mean, true
			break
		}
	}
	if !found {
		return nil, aggregateErrorf(opIDsWithinPercent, fmt.Errorf("%s %s: %w", o.groupCol, ref, ErrUnknownKey))
	}
	band := o.percent * math.Abs(refMean)
	lo, hi := refMean-band, refMean+band

	kind, err := t.ColumnKind(o.groupCol)
	if err != nil {
		return nil, aggregateErrorf(opIDsWithinPercent, err)
	}
	b, err := table.NewBuilder(table.Schema{{Name: o.groupCol, Kind: kind}})
	if err != nil {
		return nil, aggregateErrorf(opIDsWithinPercent, err)
	}
	for _, gm := range means {
		if gm.mean < lo || gm.mean > hi {
			continue
		}
		if err = b.Append(gm.key); err != nil {
			return nil, aggregateErrorf(opIDsWithinPercent, err)
		}
	}

	return b.Build(), nil
}
