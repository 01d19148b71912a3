// SPDX-License-Identifier: MIT

package coverage

import (
	"errors"
	"fmt"
)

var (
	// ErrBadDay is returned for a day name that is not an English weekday.
	ErrBadDay = errors.New("coverage: unrecognised day name")

	// ErrBadTime is returned for a time of day that is not HH:MM:SS (or HH:MM).
	ErrBadTime = errors.New("coverage: unrecognised time of day")
)

// coverageErrorf wraps err with an operation tag: "<op>: <err>".
func coverageErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// rowErrorf wraps err with the offending row and column.
func rowErrorf(row int, column string, err error) error {
	return fmt.Errorf("row %d, column %q: %w", row, column, err)
}
