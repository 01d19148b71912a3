// SPDX-License-Identifier: MIT
// Package aggregate: sentinel error set.
// Table-level failures (missing column, wrong kind, no rows) surface as the
// table package sentinels; only aggregate-specific conditions live here.

package aggregate

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownKey is returned when a reference key selects no rows.
	ErrUnknownKey = errors.New("aggregate: unknown reference key")
)

// aggregateErrorf wraps err with an operation tag: "<op>: <err>".
func aggregateErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
