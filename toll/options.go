// SPDX-License-Identifier: MIT

// Package toll: functional configuration for rates and time windows.
//
// Defaults reproduce the published tariff:
//   - rates moto 0.8, car 1.2, rv 1.5, bus 2.2, truck 3.6 (per distance unit);
//   - weekday windows [00:00:00,10:00:00]×0.8, [10:00:00,18:00:00]×1.2,
//     [18:00:00,23:59:59]×0.8;
//   - weekend (Saturday, Sunday) ×0.7 in any window.
package toll

import (
	"math"
	"slices"
	"time"
)

// Rate is the toll coefficient of one vehicle class.
type Rate struct {
	Vehicle     string  // output column name
	Coefficient float64 // multiplier applied to the distance
}

// Window is a closed time-of-day interval with its weekday multiplier.
type Window struct {
	Start  time.Duration // inclusive, offset from midnight
	End    time.Duration // inclusive, offset from midnight
	Factor float64
}

// Contains reports Start ≤ clock ≤ End.
func (w Window) Contains(clock time.Duration) bool {
	return clock >= w.Start && clock <= w.End
}

// DefaultRates returns the published vehicle tariff, in column order.
func DefaultRates() []Rate {
	return []Rate{
		{Vehicle: "moto", Coefficient: 0.8},
		{Vehicle: "car", Coefficient: 1.2},
		{Vehicle: "rv", Coefficient: 1.5},
		{Vehicle: "bus", Coefficient: 2.2},
		{Vehicle: "truck", Coefficient: 3.6},
	}
}

// DefaultWindows returns the weekday time windows, in evaluation order.
func DefaultWindows() []Window {
	return []Window{
		{Start: 0, End: 10 * time.Hour, Factor: 0.8},
		{Start: 10 * time.Hour, End: 18 * time.Hour, Factor: 1.2},
		{Start: 18 * time.Hour, End: 24*time.Hour - time.Second, Factor: 0.8},
	}
}

const (
	// DefaultDistanceColumn is the distance column CalculateRates reads.
	DefaultDistanceColumn = "distance"

	// DefaultWeekendFactor applies on Saturday and Sunday in any window.
	DefaultWeekendFactor = 0.7

	DefaultStartDayColumn  = "start_day"
	DefaultStartTimeColumn = "start_time"
	DefaultEndDayColumn    = "end_day"
	DefaultEndTimeColumn   = "end_time"
)

const (
	panicColumnEmpty = "toll: column name must be non-empty"
	panicRatesBad    = "toll: WithRates: need at least one rate with a distinct non-empty vehicle and a finite coefficient"
	panicWindowsBad  = "toll: WithWindows: need at least one window with 0 ≤ Start ≤ End < 24h and a finite factor"
	panicFactorBad   = "toll: WithWeekendFactor: factor must be finite"
)

// Option mutates internal options.
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
type Options struct {
	distanceCol string
	rates       []Rate
	windows     []Window
	weekend     float64

	startDay, startTime string
	endDay, endTime     string
}

// WithDistanceColumn sets the distance column CalculateRates reads.
func WithDistanceColumn(name string) Option {
	if name == "" {
		panic(panicColumnEmpty)
	}

	return func(o *Options) { o.distanceCol = name }
}

// WithRates replaces the vehicle tariff. The order of rates is the order of
// the appended columns, and ApplyTimeWindows scales exactly these columns.
func WithRates(rates ...Rate) Option {
	if len(rates) == 0 {
		panic(panicRatesBad)
	}
	seen := make(map[string]struct{}, len(rates))
	for _, r := range rates {
		if _, dup := seen[r.Vehicle]; dup || r.Vehicle == "" || isNonFinite(r.Coefficient) {
			panic(panicRatesBad)
		}
		seen[r.Vehicle] = struct{}{}
	}
	rates = slices.Clone(rates)

	return func(o *Options) { o.rates = rates }
}

// WithWindows replaces the weekday windows. Windows are evaluated in order
// and the first one containing both clocks wins.
func WithWindows(windows ...Window) Option {
	if len(windows) == 0 {
		panic(panicWindowsBad)
	}
	for _, w := range windows {
		if w.Start < 0 || w.End < w.Start || w.End >= 24*time.Hour || isNonFinite(w.Factor) {
			panic(panicWindowsBad)
		}
	}
	windows = slices.Clone(windows)

	return func(o *Options) { o.windows = windows }
}

// WithWeekendFactor sets the Saturday/Sunday multiplier.
func WithWeekendFactor(f float64) Option {
	if isNonFinite(f) {
		panic(panicFactorBad)
	}

	return func(o *Options) { o.weekend = f }
}

// WithDayTimeColumns sets the four day / time-of-day column names.
func WithDayTimeColumns(startDay, startTime, endDay, endTime string) Option {
	if startDay == "" || startTime == "" || endDay == "" || endTime == "" {
		panic(panicColumnEmpty)
	}

	return func(o *Options) {
		o.startDay, o.startTime, o.endDay, o.endTime = startDay, startTime, endDay, endTime
	}
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		distanceCol: DefaultDistanceColumn,
		rates:       DefaultRates(),
		windows:     DefaultWindows(),
		weekend:     DefaultWeekendFactor,
		startDay:    DefaultStartDayColumn,
		startTime:   DefaultStartTimeColumn,
		endDay:      DefaultEndDayColumn,
		endTime:     DefaultEndTimeColumn,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
