// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense kernels and the keyed
// (labelled) matrix layer. Errors and options live in dedicated files.
package matrix

// pairKey is an ordered pair (u,v) of row/column positions used to detect
// duplicate edges during a pivot. Using ints keeps the key compact and
// hash-friendly.
type pairKey struct {
	u int // row index (start key)
	v int // column index (end key)
}

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
