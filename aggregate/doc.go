// SPDX-License-Identifier: MIT

// Package aggregate holds the per-column and per-group reductions over a
// table.Table: value bucketing, mean-relative selection and grouped filters.
//
// The aggregate package provides:
//
//   - TypeCount / Categorize: bucket a Number column into labelled bins
//     (low / medium / high by default) and count or attach the labels.
//   - BusIndexes: row positions whose value exceeds a multiple of the
//     column mean.
//   - FilterRoutes: group keys whose group mean exceeds a threshold.
//   - IDsWithinPercent: group keys whose mean lies within a percentage band
//     around a reference group's mean.
//
// Every function is pure: inputs are never mutated and results are ordered
// deterministically (ascending labels, positions or keys).
//
// Means over zero rows are reported as table.ErrEmptyTable rather than NaN.
package aggregate
