// SPDX-License-Identifier: MIT

// Package aggregate: functional configuration for every reduction.
// One Options struct serves all entry points; each entry point documents
// which setters it honours. Column names left empty fall back to the
// per-function default (car for TypeCount, bus for BusIndexes, ...).
package aggregate

import (
	"math"
	"slices"
)

// ---------- Defaults (single source of truth) ----------

// Bucketing.
const (
	// DefaultCountColumn is the Number column bucketed by TypeCount.
	DefaultCountColumn = "car"

	// DefaultLabelColumn names the column Categorize appends.
	DefaultLabelColumn = "car_type"
)

// Bucket edges and labels: v < 15 → low, 15 ≤ v < 25 → medium, v ≥ 25 → high.
var (
	defaultEdges  = []float64{15, 25}
	defaultLabels = []string{"low", "medium", "high"}
)

// Mean-relative selection.
const (
	// DefaultIndexColumn is the Number column scanned by BusIndexes.
	DefaultIndexColumn = "bus"

	// DefaultFactor multiplies the mean: rows with v > factor×mean are kept.
	DefaultFactor = 2.0
)

// Grouped filter.
const (
	// DefaultRouteColumn groups FilterRoutes.
	DefaultRouteColumn = "route"

	// DefaultRouteValueColumn is averaged per route.
	DefaultRouteValueColumn = "truck"

	// DefaultRouteThreshold keeps routes whose mean is strictly above it.
	DefaultRouteThreshold = 7.0
)

// Percentage band.
const (
	// DefaultWithinGroupColumn groups IDsWithinPercent.
	DefaultWithinGroupColumn = "id_start"

	// DefaultWithinValueColumn is averaged per id.
	DefaultWithinValueColumn = "distance"

	// DefaultPercent is the half-width of the band as a fraction of |ref|.
	DefaultPercent = 0.1
)

// ---------- Internal panic messages ----------

const (
	panicColumnEmpty  = "aggregate: column name must be non-empty"
	panicBinsShape    = "aggregate: WithBins: need len(labels) == len(edges)+1 and at least one edge"
	panicBinsOrder    = "aggregate: WithBins: edges must be finite and strictly ascending"
	panicBinsLabel    = "aggregate: WithBins: labels must be non-empty and distinct"
	panicFactorBad    = "aggregate: WithFactor: factor must be finite"
	panicThresholdBad = "aggregate: WithThreshold: threshold must be finite"
	panicPercentBad   = "aggregate: WithPercent: percent must be finite and >= 0"
)

// Option mutates internal options.
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
type Options struct {
	valueCol string // "" → per-function default
	groupCol string // "" → per-function default
	labelCol string // DefaultLabelColumn

	edges  []float64
	labels []string

	factor    float64 // DefaultFactor
	threshold float64 // DefaultRouteThreshold
	percent   float64 // DefaultPercent
}

// WithColumn sets the Number column the reduction reads.
func WithColumn(name string) Option {
	if name == "" {
		panic(panicColumnEmpty)
	}

	return func(o *Options) { o.valueCol = name }
}

// WithGroupColumn sets the grouping column (FilterRoutes, IDsWithinPercent).
func WithGroupColumn(name string) Option {
	if name == "" {
		panic(panicColumnEmpty)
	}

	return func(o *Options) { o.groupCol = name }
}

// WithLabelColumn sets the name of the column Categorize appends.
func WithLabelColumn(name string) Option {
	if name == "" {
		panic(panicColumnEmpty)
	}

	return func(o *Options) { o.labelCol = name }
}

// WithBins replaces the bucket layout. Bucket i holds edges[i-1] ≤ v < edges[i];
// the first bucket is unbounded below and the last unbounded above, so
// len(labels) must be len(edges)+1. Edges must be strictly ascending.
// Panics on an invalid layout.
func WithBins(edges []float64, labels []string) Option {
	if len(edges) == 0 || len(labels) != len(edges)+1 {
		panic(panicBinsShape)
	}
	for i, e := range edges {
		if math.IsNaN(e) || math.IsInf(e, 0) || (i > 0 && e <= edges[i-1]) {
			panic(panicBinsOrder)
		}
	}
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if _, dup := seen[l]; dup || l == "" {
			panic(panicBinsLabel)
		}
		seen[l] = struct{}{}
	}
	edges, labels = slices.Clone(edges), slices.Clone(labels)

	return func(o *Options) { o.edges, o.labels = edges, labels }
}

// WithFactor sets the mean multiplier of BusIndexes. Panics on NaN/±Inf.
func WithFactor(factor float64) Option {
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		panic(panicFactorBad)
	}

	return func(o *Options) { o.factor = factor }
}

// WithThreshold sets the FilterRoutes cut-off. Panics on NaN/±Inf.
func WithThreshold(threshold float64) Option {
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		panic(panicThresholdBad)
	}

	return func(o *Options) { o.threshold = threshold }
}

// WithPercent sets the band half-width of IDsWithinPercent as a fraction
// (0.1 = 10%). Panics on negative or non-finite input.
func WithPercent(percent float64) Option {
	if math.IsNaN(percent) || math.IsInf(percent, 0) || percent < 0 {
		panic(panicPercentBad)
	}

	return func(o *Options) { o.percent = percent }
}

// gatherOptions applies opts over the defaults; valueCol and groupCol fall
// back to the caller's defaults when no setter touched them.
func gatherOptions(valueCol, groupCol string, opts ...Option) Options {
	o := Options{
		labelCol:  DefaultLabelColumn,
		edges:     defaultEdges,
		labels:    defaultLabels,
		factor:    DefaultFactor,
		threshold: DefaultRouteThreshold,
		percent:   DefaultPercent,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.valueCol == "" {
		o.valueCol = valueCol
	}
	if o.groupCol == "" {
		o.groupCol = groupCol
	}

	return o
}
