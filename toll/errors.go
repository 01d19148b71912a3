// SPDX-License-Identifier: MIT

package toll

import "fmt"

// tollErrorf wraps err with an operation tag: "<op>: <err>".
// Failures surface as table and coverage sentinels; toll has none of its own.
func tollErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// rowErrorf wraps err with the offending row and column.
func rowErrorf(row int, column string, err error) error {
	return fmt.Errorf("row %d, column %q: %w", row, column, err)
}
