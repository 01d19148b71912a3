// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the pivot, unroll and rescale
// kernels. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, every parameter explicit.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// Edge-list column names.
const (
	// DefaultStartColumn names the start-key column of an edge list.
	DefaultStartColumn = "id_start"

	// DefaultEndColumn names the end-key column of an edge list.
	DefaultEndColumn = "id_end"

	// DefaultValueColumn names the numeric value column of an edge list.
	DefaultValueColumn = "distance"

	// DefaultCumulative disables the shortest-path closure in DistanceMatrix.
	DefaultCumulative = false
)

// Vehicle-count edge list (dataset-1 layout) used by CarMatrix.
const (
	CarStartColumn = "id_1"
	CarEndColumn   = "id_2"
	CarValueColumn = "car"
)

// Conditional rescale policy.
const (
	// DefaultRescaleThreshold splits cells: v > threshold uses the above factor.
	DefaultRescaleThreshold = 20.0

	// DefaultRescaleAbove multiplies cells strictly above the threshold.
	DefaultRescaleAbove = 0.75

	// DefaultRescaleBelow multiplies cells at or below the threshold.
	DefaultRescaleBelow = 1.25

	// DefaultRescaleDecimals is the rounding precision (half away from zero).
	DefaultRescaleDecimals = 1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicColumnEmpty     = "matrix: WithColumns: column names must be non-empty and distinct"
	panicThresholdBad    = "matrix: WithThreshold: threshold must be finite"
	panicFactorsBad      = "matrix: WithFactors: factors must be finite"
	panicDecimalsInvalid = "matrix: WithDecimals: decimals must be in [0, 15]"
)

// maxDecimals bounds rounding precision to what float64 can represent.
const maxDecimals = 15

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	// edge-list layout
	startCol string // DefaultStartColumn
	endCol   string // DefaultEndColumn
	valueCol string // DefaultValueColumn

	// distance policy
	cumulative bool // DefaultCumulative

	// rescale policy
	threshold float64 // DefaultRescaleThreshold
	above     float64 // DefaultRescaleAbove
	below     float64 // DefaultRescaleBelow
	decimals  int     // DefaultRescaleDecimals
}

// ---------- Constructors (WithX) ----------

// WithColumns sets the (start, end, value) column names used to read an edge
// list (pivot) or to name the columns of an unrolled table.
// Panics when a name is empty or names repeat.
func WithColumns(start, end, value string) Option {
	if start == "" || end == "" || value == "" || start == end || start == value || end == value {
		panic(panicColumnEmpty)
	}

	return func(o *Options) {
		o.startCol, o.endCol, o.valueCol = start, end, value
	}
}

// WithCumulative makes DistanceMatrix close the symmetric road matrix under
// shortest paths: cell(a,c) becomes the shortest chain of known roads from a
// to c (Floyd–Warshall). Pairs with no chain stay 0.
func WithCumulative() Option {
	return func(o *Options) { o.cumulative = true }
}

// WithThreshold sets the rescale split point (cells > threshold use the
// above factor). Panics on NaN/±Inf.
func WithThreshold(threshold float64) Option {
	if isNonFinite(threshold) {
		panic(panicThresholdBad)
	}

	return func(o *Options) { o.threshold = threshold }
}

// WithFactors sets the rescale multipliers for cells above / at-or-below the
// threshold. Panics on NaN/±Inf.
func WithFactors(above, below float64) Option {
	if isNonFinite(above) || isNonFinite(below) {
		panic(panicFactorsBad)
	}

	return func(o *Options) { o.above, o.below = above, below }
}

// WithDecimals sets the rounding precision of Rescale. Panics outside [0, 15].
func WithDecimals(decimals int) Option {
	if decimals < 0 || decimals > maxDecimals {
		panic(panicDecimalsInvalid)
	}

	return func(o *Options) { o.decimals = decimals }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		startCol:   DefaultStartColumn,
		endCol:     DefaultEndColumn,
		valueCol:   DefaultValueColumn,
		cumulative: DefaultCumulative,
		threshold:  DefaultRescaleThreshold,
		above:      DefaultRescaleAbove,
		below:      DefaultRescaleBelow,
		decimals:   DefaultRescaleDecimals,
	}
}

// gatherOptions applies opts over the defaults in order (last wins).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
