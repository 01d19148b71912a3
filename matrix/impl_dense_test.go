// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tollgrid/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // attempt to create with zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // attempt to create with zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4                    // define expected row and column counts
	m, err := matrix.NewDense(rows, cols) // create a Dense matrix of size 3x4
	require.NoError(t, err)               // assert no error on valid dimensions

	require.Equal(t, rows, m.Rows()) // assert Rows() equals expected rows
	require.Equal(t, cols, m.Cols()) // assert Cols() equals expected cols
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2) // create a 2x2 Dense matrix
	require.NoError(t, err)

	_, err = m.At(-1, 0) // negative row index
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2) // column index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23) // row index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56) // negative column index
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetRejectsNaNInf checks the finite-only guard.
func TestSetRejectsNaNInf(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)

	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

// TestNewDenseFrom builds from rows and rejects ragged input.
func TestNewDenseFrom(t *testing.T) {
	m := MustDense(t, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, 3.0, MustAt(t, m, 1, 0))

	_, err := matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustDense(t, [][]float64{{1, 0}, {0, 2}})

	clone := m.Clone()
	_ = clone.Set(0, 0, 3.0) // modify the clone, but not the original

	require.Equal(t, 1.0, MustAt(t, m, 0, 0))     // original unchanged
	require.Equal(t, 3.0, MustAt(t, clone, 0, 0)) // clone reflects new value
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := MustDense(t, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

// TestDoApply covers the visitor (with early stop) and in-place map.
func TestDoApply(t *testing.T) {
	m := MustDense(t, [][]float64{{1, 2}, {3, 4}})

	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return v < 3 // stop after reading 3
	})
	require.Equal(t, []float64{1, 2, 3}, seen)

	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v * 10 }))
	require.Equal(t, 40.0, MustAt(t, m, 1, 1))

	err := m.Apply(func(_, _ int, _ float64) float64 { return math.Inf(1) })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestAddTranspose checks both kernels on the fast and the generic path.
func TestAddTranspose(t *testing.T) {
	a := MustDense(t, [][]float64{{0, 1, 2}, {3, 0, 4}})

	tr, err := matrix.Transpose(a)
	require.NoError(t, err)
	rows, cols := tr.Shape()
	require.Equal(t, 3, rows)
	require.Equal(t, 2, cols)
	require.Equal(t, 3.0, MustAt(t, tr, 0, 1))
	require.Equal(t, 1.0, MustAt(t, tr, 1, 0))
	require.Equal(t, 4.0, MustAt(t, tr, 2, 1))

	trSlow, err := matrix.Transpose(hide{a})
	require.NoError(t, err)
	require.Equal(t, tr.String(), trSlow.String())

	sq := MustDense(t, [][]float64{{0, 1}, {5, 0}})
	sqT, err := matrix.Transpose(sq)
	require.NoError(t, err)

	fast, err := matrix.Add(sq, sqT)
	require.NoError(t, err)
	slow, err := matrix.Add(hide{sq}, sqT)
	require.NoError(t, err)
	require.Equal(t, 6.0, MustAt(t, fast, 0, 1))
	require.Equal(t, fast.String(), slow.String())

	_, err = matrix.Add(a, sq)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Add(nil, sq)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
