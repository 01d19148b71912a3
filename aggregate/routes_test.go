// SPDX-License-Identifier: MIT

package aggregate_test

import (
	"testing"

	"github.com/katalvlaran/tollgrid/aggregate"
	"github.com/katalvlaran/tollgrid/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterRoutes(t *testing.T) {
	t.Parallel()
	tb := pairs(t, "route", table.String, "truck",
		[]table.Value{str("B"), num(8)},
		[]table.Value{str("A"), num(5)},
		[]table.Value{str("A"), num(9)},
		[]table.Value{str("B"), num(8)},
		[]table.Value{str("C"), num(7)}, // mean == threshold: excluded
	)

	got, err := aggregate.FilterRoutes(tb)
	require.NoError(t, err)
	assert.Equal(t, []table.Value{str("B")}, got)

	got, err = aggregate.FilterRoutes(tb, aggregate.WithThreshold(6.5))
	require.NoError(t, err)
	assert.Equal(t, []table.Value{str("A"), str("B"), str("C")}, got)
}

func TestFilterRoutesNumericKeysAscending(t *testing.T) {
	t.Parallel()
	tb := pairs(t, "route", table.Number, "truck",
		[]table.Value{num(12), num(20)},
		[]table.Value{num(3), num(10)},
		[]table.Value{num(7), num(1)},
	)

	got, err := aggregate.FilterRoutes(tb)
	require.NoError(t, err)
	assert.Equal(t, []table.Value{num(3), num(12)}, got)
}

func TestFilterRoutesEmptyAndErrors(t *testing.T) {
	t.Parallel()
	empty := pairs(t, "route", table.String, "truck")
	got, err := aggregate.FilterRoutes(empty)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = aggregate.FilterRoutes(empty, aggregate.WithGroupColumn("lane"))
	require.ErrorIs(t, err, table.ErrUnknownColumn)

	_, err = aggregate.FilterRoutes(nil)
	require.ErrorIs(t, err, table.ErrNilTable)
}
