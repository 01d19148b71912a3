// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.
// Panics are reserved for nonsensical option values (programmer errors).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap these with "<Op>: %w" at the
// detection site; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index/NaN -> keys (missing, duplicate) -> table schema errors.

var (
	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add of different shapes, a non-square matrix where one is required,
	// or a matrix table whose columns do not mirror its rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrNoKeys is returned when an edge list or matrix table yields no keys
	// (empty input), so no square matrix can be built.
	ErrNoKeys = errors.New("matrix: no keys")

	// ErrDuplicateKey is returned when the same key labels two rows of a
	// keyed matrix.
	ErrDuplicateKey = errors.New("matrix: duplicate key")

	// ErrDuplicateEdge is returned when an edge list holds the same
	// (start, end) pair twice; a pivot cell cannot hold two values.
	ErrDuplicateEdge = errors.New("matrix: duplicate edge")

	// ErrUnknownKey is returned when a referenced key is not indexed.
	ErrUnknownKey = errors.New("matrix: unknown key")
)
