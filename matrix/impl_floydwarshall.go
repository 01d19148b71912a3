// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) with deterministic loop order.
//   - Backs the cumulative road-distance closure of DistanceMatrix: a direct
//     road a–b is a non-zero cell, the closure replaces every cell with the
//     shortest chain of known roads.
//
// Contract:
//   - Square matrix; +Inf means “no path”; diagonal must be 0 before calling.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opFloydWarshall = "FloydWarshall"
	opCloseRoads    = "closeRoads"
)

// initDistancesInPlace converts road adjacency (0 / w) -> distance matrix in-place:
//
//	diag = 0; off-diagonal 0 -> +Inf; non-zero -> unchanged.
//
// The matrix must have its NaN/Inf guard disabled. Complexity: O(n^2).
func initDistancesInPlace(mat *Dense) error {
	r, c := mat.Rows(), mat.Cols()
	if r != c {
		return fmt.Errorf("initDistancesInPlace: non-square %dx%d: %w", r, c, ErrDimensionMismatch)
	}

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if i == j {
				// Distance from a toll location to itself is zero.
				if err := mat.Set(i, j, 0.0); err != nil {
					return fmt.Errorf("initDistancesInPlace: Set(%d,%d,0): %w", i, j, err)
				}
				continue
			}
			v, _ = mat.At(i, j) // safe after shape validation
			if v == 0.0 {
				// No direct road: +Inf until a chain is found.
				if err := mat.Set(i, j, math.Inf(1)); err != nil {
					return fmt.Errorf("initDistancesInPlace: Set(%d,%d,+Inf): %w", i, j, err)
				}
			}
		}
	}

	return nil
}

// floydWarshallInPlace runs APSP closure on a square *Dense in-place.
// Loop order is fixed (k → i → j) for deterministic accumulation.
// Time: O(n^3); Extra space: O(1). No allocations inside the hot loops.
func floydWarshallInPlace(d *Dense) {
	n := d.r // direct field access avoids a virtual call

	var (
		k, i, j      int     // loop indices
		baseK, baseI int     // row base offsets for K and I in the flat buffer
		ik, ij, kj   float64 // distances d[i,k], d[i,j], d[k,j]
		cand         float64 // candidate path length via k: d[i,k] + d[k,j]
	)
	data := d.data

	for k = 0; k < n; k++ { // outer: pick intermediate location k
		baseK = k * n
		for i = 0; i < n; i++ { // middle: source location i
			ik = data[i*n+k]
			if math.IsInf(ik, 1) { // i cannot reach k; no path via k can improve i→j
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ { // inner: destination location j
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				ij = data[baseI+j]
				cand = ik + kj
				if cand < ij { // strict improvement only (deterministic tie rule)
					data[baseI+j] = cand
				}
			}
		}
	}
}

// FloydWarshall computes all-pairs shortest paths in-place on m.
//
// Contract:
//   - m must be square (n×n).
//   - +Inf denotes “no edge” off-diagonal; the diagonal MUST be 0.
//   - m must accept +Inf cells (a *Dense built by this package's closure
//     helpers, or any Matrix without a finite-only guard).
//
// Complexity: Time O(n^3), Extra space O(1) (fully in-place).
func FloydWarshall(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opFloydWarshall, err)
	}

	// Fast-path: direct dense traversal via a single source of truth.
	if d, ok := m.(*Dense); ok {
		floydWarshallInPlace(d)

		return nil
	}

	// Generic interface fallback (no extra allocations).
	n := m.Rows()
	var (
		k, i, j       int
		dik, dkj, dij float64
		err           error
	)
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			if dik, err = m.At(i, k); err != nil {
				return matrixErrorf(opFloydWarshall, err)
			}
			if math.IsInf(dik, 1) {
				continue
			}
			for j = 0; j < n; j++ {
				if dkj, err = m.At(k, j); err != nil {
					return matrixErrorf(opFloydWarshall, err)
				}
				if math.IsInf(dkj, 1) {
					continue
				}
				if dij, err = m.At(i, j); err != nil {
					return matrixErrorf(opFloydWarshall, err)
				}
				if cand := dik + dkj; cand < dij {
					if err = m.Set(i, j, cand); err != nil {
						return matrixErrorf(opFloydWarshall, err)
					}
				}
			}
		}
	}

	return nil
}

// closeRoads returns the cumulative-distance closure of a symmetric road
// matrix: 0 off-diagonal means "no direct road"; pairs that stay unreachable
// after the closure are reported as 0 again. The input is not mutated.
//
// Implementation:
//   - Stage 1: clone into a scratch Dense with the Inf guard off.
//   - Stage 2: 0 → +Inf, Floyd–Warshall, +Inf → 0.
//   - Stage 3: copy into a guarded Dense.
//
// Complexity: O(n^3).
func closeRoads(m *Dense) (*Dense, error) {
	scratch, err := newDenseWithPolicy(m.r, m.c, false)
	if err != nil {
		return nil, matrixErrorf(opCloseRoads, err)
	}
	copy(scratch.data, m.data)
	if err = initDistancesInPlace(scratch); err != nil {
		return nil, matrixErrorf(opCloseRoads, err)
	}
	if err = FloydWarshall(scratch); err != nil {
		return nil, matrixErrorf(opCloseRoads, err)
	}

	out, err := NewDense(m.r, m.c)
	if err != nil {
		return nil, matrixErrorf(opCloseRoads, err)
	}
	for idx, v := range scratch.data {
		if !math.IsInf(v, 1) {
			out.data[idx] = v
		}
	}

	return out, nil
}
