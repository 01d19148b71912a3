// SPDX-License-Identifier: MIT

package tableio

import (
	"errors"
	"fmt"
)

var (
	// ErrNoHeader is returned for input without a header record.
	ErrNoHeader = errors.New("tableio: missing header")

	// ErrParse is returned when a cell cannot be converted to its column kind.
	ErrParse = errors.New("tableio: cannot parse cell")
)

// ioErrorf wraps err with an operation tag: "<op>: <err>".
func ioErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
