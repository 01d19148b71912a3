// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/tollgrid/matrix"
	"github.com/katalvlaran/tollgrid/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnrollOrderAndSelfPairs(t *testing.T) {
	t.Parallel()
	d, err := matrix.DistanceMatrix(roads(t))
	require.NoError(t, err)

	u, err := matrix.Unroll(d)
	require.NoError(t, err)
	require.Equal(t, 4*3, u.Len())
	assert.Equal(t, []string{"id_start", "id_end", "distance"}, u.Schema().Names())

	var prev []table.Value
	u.Rows(func(r table.Row) bool {
		vals := r.Values()
		assert.False(t, vals[0].Equal(vals[1]), "row %d pairs a key with itself", r.Index())
		if prev != nil {
			assert.Negative(t, table.CompareTuples(prev[:2], vals[:2]), "row %d out of order", r.Index())
		}
		prev = vals
		return true
	})

	first, err := u.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []table.Value{num(1001400), num(1001402), num(9.7)}, first)
}

func TestUnrollRoundTrip(t *testing.T) {
	t.Parallel()
	d, err := matrix.DistanceMatrix(roads(t))
	require.NoError(t, err)

	u, err := matrix.Unroll(d)
	require.NoError(t, err)
	back, err := matrix.PivotEdges(u)
	require.NoError(t, err)

	assert.Equal(t, d.Keys(), back.Keys())
	assert.Equal(t, d.Dense().String(), back.Dense().String())
}

func TestUnrollCustomColumns(t *testing.T) {
	t.Parallel()
	d, err := matrix.DistanceMatrix(roads(t))
	require.NoError(t, err)

	u, err := matrix.Unroll(d, matrix.WithColumns("from", "to", "km"))
	require.NoError(t, err)
	assert.Equal(t, []string{"from", "to", "km"}, u.Schema().Names())

	_, err = matrix.Unroll(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
