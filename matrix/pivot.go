// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Pivot an edge list (start key, end key, value) into a square Keyed matrix.
//   - DistanceMatrix: symmetric variant (A + Aᵀ), optionally closed under
//     shortest paths.
//
// Algorithm (two passes, no map iteration in output order):
//  1. Collect the union of start/end keys, sort ascending, build key→index.
//  2. Allocate a dense n×n zero grid and fill it from the edge list in one pass.
//  3. Force the diagonal to 0.
//
// Complexity: O(E + n log n + n²).

package matrix

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/tollgrid/table"
)

const (
	opPivotEdges     = "PivotEdges"
	opDistanceMatrix = "DistanceMatrix"
)

// PivotEdges builds the square matrix of an edge list: cell(a,b) is the value
// of the edge a→b, 0 when absent; the diagonal is always 0. Keys are the union
// of the start and end columns, ascending.
//
// Options: WithColumns (defaults id_start / id_end / distance).
//
// Errors:
//   - table.ErrUnknownColumn / table.ErrKindMismatch for a bad layout.
//   - ErrNoKeys for an empty edge list.
//   - ErrDuplicateEdge when (a,b) appears twice.
func PivotEdges(t *table.Table, opts ...Option) (*Keyed, error) {
	o := gatherOptions(opts...)
	k, err := pivot(t, o)
	if err != nil {
		return nil, matrixErrorf(opPivotEdges, err)
	}

	return k, nil
}

// CarMatrix pivots the vehicle-count dataset: id_1 × id_2 → car.
// Extra options are applied after the car layout, so WithColumns still wins.
func CarMatrix(t *table.Table, opts ...Option) (*Keyed, error) {
	return PivotEdges(t, append([]Option{WithColumns(CarStartColumn, CarEndColumn, CarValueColumn)}, opts...)...)
}

// DistanceMatrix pivots a road edge list and symmetrises it:
// cell(a,b) = d(a→b) + d(b→a), diagonal 0. A road listed in one direction
// therefore appears in both; a road listed in both directions is summed.
//
// With WithCumulative the symmetric matrix is closed under shortest paths
// before being returned (see closeRoads).
func DistanceMatrix(t *table.Table, opts ...Option) (*Keyed, error) {
	o := gatherOptions(opts...)
	k, err := pivot(t, o)
	if err != nil {
		return nil, matrixErrorf(opDistanceMatrix, err)
	}

	// A + Aᵀ, then diagonal back to zero.
	tr, err := Transpose(k.mat)
	if err != nil {
		return nil, matrixErrorf(opDistanceMatrix, err)
	}
	sym, err := Add(k.mat, tr)
	if err != nil {
		return nil, matrixErrorf(opDistanceMatrix, err)
	}
	sym.zeroDiagonal()

	if o.cumulative {
		if sym, err = closeRoads(sym); err != nil {
			return nil, matrixErrorf(opDistanceMatrix, err)
		}
	}

	return newKeyedSorted(k.keys, k.index, sym), nil
}

// pivot is the shared two-pass kernel behind PivotEdges and DistanceMatrix.
func pivot(t *table.Table, o Options) (*Keyed, error) {
	if t == nil {
		return nil, table.ErrNilTable
	}
	starts, err := t.Column(o.startCol)
	if err != nil {
		return nil, err
	}
	ends, err := t.Column(o.endCol)
	if err != nil {
		return nil, err
	}
	vals, err := t.Floats(o.valueCol)
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, ErrNoKeys
	}

	// Pass 1: key union → ascending keys → key→index.
	seen := make(map[table.Key]struct{}, 2*len(vals))
	keys := make([]table.Value, 0, 2*len(vals))
	for _, col := range [][]table.Value{starts, ends} {
		for _, v := range col {
			if _, ok := seen[v.Key()]; ok {
				continue
			}
			seen[v.Key()] = struct{}{}
			keys = append(keys, v)
		}
	}
	slices.SortFunc(keys, table.Compare)
	index := make(map[table.Key]int, len(keys))
	for i, key := range keys {
		index[key.Key()] = i
	}

	// Pass 2: dense fill from the edge list.
	n := len(keys)
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	filled := make(map[pairKey]struct{}, len(vals))
	for e := range vals {
		pk := pairKey{u: index[starts[e].Key()], v: index[ends[e].Key()]}
		if _, dup := filled[pk]; dup {
			return nil, fmt.Errorf("edge %s→%s (row %d): %w", starts[e], ends[e], e, ErrDuplicateEdge)
		}
		filled[pk] = struct{}{}
		m.data[pk.u*n+pk.v] = vals[e]
	}
	m.zeroDiagonal()

	return newKeyedSorted(keys, index, m), nil
}
