// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic road-network fixtures for the pivot kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/tollgrid/matrix"
	"github.com/katalvlaran/tollgrid/table"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic (non-*Dense) path in the code under test.
type hide struct{ matrix.Matrix }

// edge is one (start, end, value) record.
type edge struct {
	a, b float64
	d    float64
}

// num is a shorthand for table.NumberValue.
func num(f float64) table.Value { return table.NumberValue(f) }

// edgeTable builds an edge list with the given column names or fails the test.
func edgeTable(t *testing.T, start, end, value string, edges ...edge) *table.Table {
	t.Helper()
	rows := make([][]table.Value, len(edges))
	for i, e := range edges {
		rows[i] = []table.Value{num(e.a), num(e.b), num(e.d)}
	}
	tb, err := table.New(table.Schema{
		{Name: start, Kind: table.Number},
		{Name: end, Kind: table.Number},
		{Name: value, Kind: table.Number},
	}, rows...)
	require.NoError(t, err)

	return tb
}

// roads is a four-location chain 1001400 → 1001402 → 1001404 → 1001406,
// listed in the forward direction only (as dataset-3 does).
func roads(t *testing.T) *table.Table {
	t.Helper()
	return edgeTable(t, matrix.DefaultStartColumn, matrix.DefaultEndColumn, matrix.DefaultValueColumn,
		edge{1001400, 1001402, 9.7},
		edge{1001402, 1001404, 20.2},
		edge{1001404, 1001406, 16.0},
	)
}

// MustDense builds a *Dense from rows or fails the test.
func MustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustKeyedAt reads cell(a,b) by numeric keys or fails the test.
func MustKeyedAt(t *testing.T, k *matrix.Keyed, a, b float64) float64 {
	t.Helper()
	v, err := k.At(num(a), num(b))
	require.NoError(t, err)

	return v
}
