// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/tollgrid/matrix"
	"github.com/katalvlaran/tollgrid/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPivotEdgesKeysAndCells(t *testing.T) {
	t.Parallel()
	tb := edgeTable(t, matrix.DefaultStartColumn, matrix.DefaultEndColumn, matrix.DefaultValueColumn,
		edge{30, 10, 4},
		edge{10, 20, 1.5},
		edge{20, 20, 99}, // self edge: diagonal is forced to 0
	)
	k, err := matrix.PivotEdges(tb)
	require.NoError(t, err)

	require.Equal(t, 3, k.Len())
	assert.Equal(t, []table.Value{num(10), num(20), num(30)}, k.Keys())
	assert.Equal(t, 1.5, MustKeyedAt(t, k, 10, 20))
	assert.Equal(t, 0.0, MustKeyedAt(t, k, 20, 10), "pivot alone does not mirror")
	assert.Equal(t, 4.0, MustKeyedAt(t, k, 30, 10))
	assert.Equal(t, 0.0, MustKeyedAt(t, k, 20, 20))

	_, err = k.At(num(10), num(99))
	require.ErrorIs(t, err, matrix.ErrUnknownKey)
}

func TestPivotEdgesErrors(t *testing.T) {
	t.Parallel()

	_, err := matrix.PivotEdges(nil)
	require.ErrorIs(t, err, table.ErrNilTable)

	empty := edgeTable(t, matrix.DefaultStartColumn, matrix.DefaultEndColumn, matrix.DefaultValueColumn)
	_, err = matrix.PivotEdges(empty)
	require.ErrorIs(t, err, matrix.ErrNoKeys)

	dup := edgeTable(t, matrix.DefaultStartColumn, matrix.DefaultEndColumn, matrix.DefaultValueColumn,
		edge{1, 2, 3},
		edge{1, 2, 4},
	)
	_, err = matrix.PivotEdges(dup)
	require.ErrorIs(t, err, matrix.ErrDuplicateEdge)

	_, err = matrix.PivotEdges(dup, matrix.WithColumns("a", "b", "c"))
	require.ErrorIs(t, err, table.ErrUnknownColumn)
}

func TestCarMatrix(t *testing.T) {
	t.Parallel()
	tb := edgeTable(t, matrix.CarStartColumn, matrix.CarEndColumn, matrix.CarValueColumn,
		edge{801, 802, 0.5},
		edge{802, 801, 2.5},
		edge{801, 803, 1.2},
	)
	k, err := matrix.CarMatrix(tb)
	require.NoError(t, err)

	assert.Equal(t, 0.5, MustKeyedAt(t, k, 801, 802))
	assert.Equal(t, 2.5, MustKeyedAt(t, k, 802, 801))
	assert.Equal(t, 1.2, MustKeyedAt(t, k, 801, 803))
	assert.Equal(t, 0.0, MustKeyedAt(t, k, 803, 801))
	for _, key := range k.Keys() {
		v, err := k.At(key, key)
		require.NoError(t, err)
		assert.Equal(t, 0.0, v)
	}
}

func TestDistanceMatrixSymmetric(t *testing.T) {
	t.Parallel()
	d, err := matrix.DistanceMatrix(roads(t))
	require.NoError(t, err)

	require.Equal(t, 4, d.Len())
	ok, err := matrix.IsSymmetric(d.Dense(), 0)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, 9.7, MustKeyedAt(t, d, 1001402, 1001400))
	assert.Equal(t, 20.2, MustKeyedAt(t, d, 1001404, 1001402))
	assert.Equal(t, 0.0, MustKeyedAt(t, d, 1001400, 1001404), "no closure by default")
}

func TestDistanceMatrixSumsBothDirections(t *testing.T) {
	t.Parallel()
	tb := edgeTable(t, matrix.DefaultStartColumn, matrix.DefaultEndColumn, matrix.DefaultValueColumn,
		edge{1, 2, 3},
		edge{2, 1, 4},
	)
	d, err := matrix.DistanceMatrix(tb)
	require.NoError(t, err)

	assert.Equal(t, 7.0, MustKeyedAt(t, d, 1, 2))
	assert.Equal(t, 7.0, MustKeyedAt(t, d, 2, 1))
}

func TestStringKeysSortLexically(t *testing.T) {
	t.Parallel()
	tb, err := table.New(table.Schema{
		{Name: "id_start", Kind: table.String},
		{Name: "id_end", Kind: table.String},
		{Name: "distance", Kind: table.Number},
	},
		[]table.Value{table.StringValue("b"), table.StringValue("a"), num(2)},
		[]table.Value{table.StringValue("c"), table.StringValue("b"), num(1)},
	)
	require.NoError(t, err)

	d, err := matrix.DistanceMatrix(tb)
	require.NoError(t, err)
	assert.Equal(t, []table.Value{table.StringValue("a"), table.StringValue("b"), table.StringValue("c")}, d.Keys())

	v, err := d.At(table.StringValue("a"), table.StringValue("b"))
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}
