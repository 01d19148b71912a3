// SPDX-License-Identifier: MIT

package aggregate

import "github.com/katalvlaran/tollgrid/table"

const opFilterRoutes = "FilterRoutes"

// FilterRoutes groups t by the route column (default "route"), averages the
// Number column (default "truck") per group and returns the group keys whose
// mean is strictly greater than the threshold (default 7), ascending.
//
// Options: WithGroupColumn, WithColumn, WithThreshold.
// Errors: table.ErrNilTable, table.ErrUnknownColumn, table.ErrKindMismatch.
// Complexity: O(r + g log g).
func FilterRoutes(t *table.Table, opts ...Option) ([]table.Value, error) {
	o := gatherOptions(DefaultRouteValueColumn, DefaultRouteColumn, opts...)
	means, err := groupMeans(t, o)
	if err != nil {
		return nil, aggregateErrorf(opFilterRoutes, err)
	}

	out := make([]table.Value, 0, len(means))
	for _, gm := range means {
		if gm.mean > o.threshold {
			out = append(out, gm.key)
		}
	}

	return out, nil
}

// groupMean is the mean of one group, keyed by its single grouping value.
type groupMean struct {
	key  table.Value
	mean float64
}

// groupMeans averages o.valueCol per o.groupCol, ascending by key.
// Groups are never empty, so MeanOf cannot fail here.
func groupMeans(t *table.Table, o Options) ([]groupMean, error) {
	if t == nil {
		return nil, table.ErrNilTable
	}
	xs, err := t.Floats(o.valueCol)
	if err != nil {
		return nil, err
	}
	groups, err := t.GroupBy(o.groupCol)
	if err != nil {
		return nil, err
	}

	out := make([]groupMean, len(groups))
	for g, grp := range groups {
		var sum float64
		for _, i := range grp.Rows {
			sum += xs[i]
		}
		out[g] = groupMean{key: grp.Key[0], mean: sum / float64(len(grp.Rows))}
	}

	return out, nil
}
