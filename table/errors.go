// SPDX-License-Identifier: MIT
// Package table: sentinel error set.
// All functions return these sentinels wrapped with "<Op>: %w" context, and
// tests check them via errors.Is. No function panics on user input.

package table

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySchema is returned when a schema has no columns.
	ErrEmptySchema = errors.New("table: schema has no columns")

	// ErrDuplicateColumn is returned when two columns share a name, or when a
	// derived column would shadow an existing one.
	ErrDuplicateColumn = errors.New("table: duplicate column name")

	// ErrEmptyColumnName is returned for a column with an empty name.
	ErrEmptyColumnName = errors.New("table: empty column name")

	// ErrUnknownColumn is returned when a referenced column is not in the schema.
	ErrUnknownColumn = errors.New("table: unknown column")

	// ErrKindMismatch is returned when a value's kind differs from its column's
	// kind, or when a typed accessor is used on a column of another kind.
	ErrKindMismatch = errors.New("table: value kind does not match column kind")

	// ErrRowWidth is returned when a record's width differs from the schema width.
	ErrRowWidth = errors.New("table: row width does not match schema")

	// ErrNaNInf is returned when a Number cell holds NaN or ±Inf.
	ErrNaNInf = errors.New("table: NaN or Inf encountered")

	// ErrOutOfRange is returned when a row position is outside [0, Len()).
	ErrOutOfRange = errors.New("table: row index out of range")

	// ErrEmptyTable is returned by operations that need at least one row
	// (e.g. a mean over a column).
	ErrEmptyTable = errors.New("table: table has no rows")

	// ErrNilTable is returned when a nil *Table is passed in.
	ErrNilTable = errors.New("table: nil table")
)

// tableErrorf wraps err with an operation tag: "<op>: <err>".
// err must be non-nil.
func tableErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// columnErrorf wraps err with an operation tag and the offending column name.
func columnErrorf(op, column string, err error) error {
	return fmt.Errorf("%s(%q): %w", op, column, err)
}
