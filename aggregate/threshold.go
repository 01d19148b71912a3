// SPDX-License-Identifier: MIT

package aggregate

import "github.com/katalvlaran/tollgrid/table"

const opBusIndexes = "BusIndexes"

// BusIndexes returns the ascending row positions whose value in the Number
// column (default "bus") is strictly greater than factor × mean (default 2).
//
// Options: WithColumn, WithFactor.
// Errors: table.ErrNilTable, table.ErrUnknownColumn, table.ErrKindMismatch,
// table.ErrEmptyTable (the mean of zero rows is undefined).
// Complexity: O(r).
func BusIndexes(t *table.Table, opts ...Option) ([]int, error) {
	if t == nil {
		return nil, aggregateErrorf(opBusIndexes, table.ErrNilTable)
	}
	o := gatherOptions(DefaultIndexColumn, "", opts...)
	xs, err := t.Floats(o.valueCol)
	if err != nil {
		return nil, aggregateErrorf(opBusIndexes, err)
	}
	mean, err := table.MeanOf(xs)
	if err != nil {
		return nil, aggregateErrorf(opBusIndexes, err)
	}

	cut := o.factor * mean
	out := make([]int, 0)
	for i, x := range xs {
		if x > cut {
			out = append(out, i)
		}
	}

	return out, nil
}
