// SPDX-License-Identifier: MIT

// Package toll turns a distance edge list into per-vehicle toll rates and
// adjusts those rates by day of week and time of day.
//
// The toll package provides:
//
//   - CalculateRates: one Number column per vehicle class, distance × rate.
//   - ExpandWeek: one record per (input row, day, time window), so every
//     pair is priced for the whole reference week.
//   - ApplyTimeWindows: weekday window multipliers and a flat weekend
//     multiplier, applied at most once per record.
package toll
