// SPDX-License-Identifier: MIT
// Package: aggregate
//
// Purpose:
//   - Bucket a Number column into labelled half-open bins and count the labels
//     (TypeCount) or attach them as a new column (Categorize).
//
// Bin rule (defaults): v < 15 → low; 15 ≤ v < 25 → medium; v ≥ 25 → high.
// The label of v is labels[k] where k is the number of edges ≤ v.

package aggregate

import (
	"cmp"
	"slices"
	"sort"

	"github.com/katalvlaran/tollgrid/table"
)

const (
	opTypeCount  = "TypeCount"
	opCategorize = "Categorize"
)

// LabelCount is one (label, occurrences) pair.
type LabelCount struct {
	Label string
	Count int
}

// Counts is an ordered label → count listing, ascending by label.
// Only labels that occur at least once are present.
type Counts []LabelCount

// Map returns the counts as a map.
func (c Counts) Map() map[string]int {
	m := make(map[string]int, len(c))
	for _, lc := range c {
		m[lc.Label] = lc.Count
	}

	return m
}

// Get returns the count of label, 0 when it never occurred.
func (c Counts) Get(label string) int {
	i, ok := slices.BinarySearchFunc(c, label, func(lc LabelCount, l string) int { return cmp.Compare(lc.Label, l) })
	if !ok {
		return 0
	}

	return c[i].Count
}

// Total returns the sum of all counts (the number of rows bucketed).
func (c Counts) Total() int {
	n := 0
	for _, lc := range c {
		n += lc.Count
	}

	return n
}

// TypeCount buckets the Number column (default "car") and counts each label.
//
// Options: WithColumn, WithBins.
// Errors: table.ErrNilTable, table.ErrUnknownColumn, table.ErrKindMismatch.
// An empty table yields empty Counts, not an error.
// Complexity: O(r log b + b log b) for r rows and b bins.
func TypeCount(t *table.Table, opts ...Option) (Counts, error) {
	o := gatherOptions(DefaultCountColumn, "", opts...)
	labels, err := bucketize(t, o)
	if err != nil {
		return nil, aggregateErrorf(opTypeCount, err)
	}

	byLabel := make(map[string]int, len(o.labels))
	for _, l := range labels {
		byLabel[l]++
	}
	out := make(Counts, 0, len(byLabel))
	for _, l := range o.labels { // labels order is stable; sorted below
		if n, ok := byLabel[l]; ok {
			out = append(out, LabelCount{Label: l, Count: n})
		}
	}
	slices.SortFunc(out, func(a, b LabelCount) int { return cmp.Compare(a.Label, b.Label) })

	return out, nil
}

// Categorize returns t with a String label column (default "car_type")
// appended, one bucket label per row.
//
// Options: WithColumn, WithBins, WithLabelColumn.
// Errors: as TypeCount, plus table.ErrDuplicateColumn if the label column
// already exists.
func Categorize(t *table.Table, opts ...Option) (*table.Table, error) {
	o := gatherOptions(DefaultCountColumn, "", opts...)
	labels, err := bucketize(t, o)
	if err != nil {
		return nil, aggregateErrorf(opCategorize, err)
	}
	vals := make([]table.Value, len(labels))
	for i, l := range labels {
		vals[i] = table.StringValue(l)
	}
	out, err := t.WithColumn(table.Column{Name: o.labelCol, Kind: table.String}, vals)
	if err != nil {
		return nil, aggregateErrorf(opCategorize, err)
	}

	return out, nil
}

// bucketize maps every row of the value column onto its label.
func bucketize(t *table.Table, o Options) ([]string, error) {
	if t == nil {
		return nil, table.ErrNilTable
	}
	xs, err := t.Floats(o.valueCol)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = o.labels[binOf(o.edges, x)]
	}

	return out, nil
}

// binOf returns the number of edges ≤ x.
func binOf(edges []float64, x float64) int {
	return sort.Search(len(edges), func(i int) bool { return x < edges[i] })
}
