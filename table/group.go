// SPDX-License-Identifier: MIT

package table

import (
	"fmt"
	"slices"
)

const (
	opGroupBy = "GroupBy"
	opMean    = "Mean"
)

// Group is the set of records sharing one key tuple.
type Group struct {
	Key  []Value // one value per grouping column, in the order requested
	Rows []int   // ascending positions of member records
}

// GroupBy partitions the table by the named columns.
// Groups are returned ascending by key (CompareTuples); member rows keep
// their table order. An empty table yields no groups.
//
// Implementation:
//   - Stage 1: resolve column positions.
//   - Stage 2: one pass over rows, bucketing by the comparable key tuple.
//   - Stage 3: sort groups by key.
//
// Complexity: O(r*k + g log g * k) for r rows, k key columns, g groups.
func (t *Table) GroupBy(names ...string) ([]Group, error) {
	if len(names) == 0 {
		return nil, tableErrorf(opGroupBy, fmt.Errorf("no grouping columns: %w", ErrUnknownColumn))
	}
	pos := make([]int, len(names))
	for k, name := range names {
		j, err := t.ColumnIndex(name)
		if err != nil {
			return nil, tableErrorf(opGroupBy, err)
		}
		pos[k] = j
	}

	var groups []Group
	seen := make(map[string]int) // encoded key tuple → groups index
	for i, row := range t.rows {
		key := make([]Value, len(pos))
		for k, j := range pos {
			key[k] = row[j]
		}
		enc := encodeTuple(key)
		g, ok := seen[enc]
		if !ok {
			g = len(groups)
			seen[enc] = g
			groups = append(groups, Group{Key: key})
		}
		groups[g].Rows = append(groups[g].Rows, i)
	}
	slices.SortFunc(groups, func(a, b Group) int { return CompareTuples(a.Key, b.Key) })

	return groups, nil
}

// encodeTuple builds a map key for a value tuple. %#v quotes strings and
// prints the kind tag, so distinct tuples never collide.
func encodeTuple(vs []Value) string {
	keys := make([]Key, len(vs))
	for i, v := range vs {
		keys[i] = v.Key()
	}

	return fmt.Sprintf("%#v", keys)
}

// Mean returns the arithmetic mean of a Number column.
// Errors: ErrUnknownColumn, ErrKindMismatch, ErrEmptyTable.
func (t *Table) Mean(name string) (float64, error) {
	xs, err := t.Floats(name)
	if err != nil {
		return 0, tableErrorf(opMean, err)
	}

	return MeanOf(xs)
}

// MeanOf returns the arithmetic mean of xs, or ErrEmptyTable when xs is empty.
func MeanOf(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, tableErrorf(opMean, ErrEmptyTable)
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}

	return sum / float64(len(xs)), nil
}
