// SPDX-License-Identifier: MIT

package aggregate_test

import (
	"testing"

	"github.com/katalvlaran/tollgrid/aggregate"
	"github.com/katalvlaran/tollgrid/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unrolled is a small id_start / distance table: means 1→10, 2→11, 3→9, 4→12, 5→8.9.
func unrolled(t *testing.T) *table.Table {
	t.Helper()
	return pairs(t, "id_start", table.Number, "distance",
		[]table.Value{num(1), num(8)},
		[]table.Value{num(1), num(12)},
		[]table.Value{num(2), num(11)},
		[]table.Value{num(3), num(9)},
		[]table.Value{num(4), num(12)},
		[]table.Value{num(5), num(8.9)},
	)
}

func TestIDsWithinPercent(t *testing.T) {
	t.Parallel()

	out, err := aggregate.IDsWithinPercent(unrolled(t), num(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"id_start"}, out.Schema().Names())

	ids, err := out.Column("id_start")
	require.NoError(t, err)
	// band [9, 11], inclusive
	assert.Equal(t, []table.Value{num(1), num(2), num(3)}, ids)
}

func TestIDsWithinPercentWiderBand(t *testing.T) {
	t.Parallel()

	out, err := aggregate.IDsWithinPercent(unrolled(t), num(1), aggregate.WithPercent(0.25))
	require.NoError(t, err)
	assert.Equal(t, 5, out.Len())

	out, err = aggregate.IDsWithinPercent(unrolled(t), num(4), aggregate.WithPercent(0))
	require.NoError(t, err)
	ids, err := out.Column("id_start")
	require.NoError(t, err)
	assert.Equal(t, []table.Value{num(4)}, ids)
}

func TestIDsWithinPercentErrors(t *testing.T) {
	t.Parallel()

	_, err := aggregate.IDsWithinPercent(unrolled(t), num(42))
	require.ErrorIs(t, err, aggregate.ErrUnknownKey)

	_, err = aggregate.IDsWithinPercent(unrolled(t), num(1), aggregate.WithColumn("toll"))
	require.ErrorIs(t, err, table.ErrUnknownColumn)

	require.Panics(t, func() { aggregate.WithPercent(-0.1) })
}
