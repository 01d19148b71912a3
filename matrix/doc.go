// Package matrix offers dense matrices and the keyed (labelled) square
// matrices built from toll-road edge lists.
//
// The matrix package provides:
//
//   - Dense: row-major float64 storage with safe At/Set, a finite-only
//     numeric guard, Add/Transpose kernels and an in-place Floyd–Warshall.
//   - Keyed: a square Dense whose rows and columns share one ascending key
//     sequence, convertible to and from a table.Table.
//   - PivotEdges / CarMatrix / DistanceMatrix: edge list → Keyed.
//   - Unroll: Keyed → (start, end, value) edge list without self-pairs.
//   - Rescale: conditional element-wise rescale with decimal rounding.
//
// Matrices are best for small location sets where O(n²) memory and O(n² + E)
// build time are acceptable.
//
// See the examples in this package for usage patterns.
package matrix
