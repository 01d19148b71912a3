// SPDX-License-Identifier: MIT

package aggregate_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tollgrid/aggregate"
	"github.com/katalvlaran/tollgrid/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusIndexes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		xs   []float64
		opts []aggregate.Option
		want []int
	}{
		{name: "single outlier", xs: []float64{1, 1, 1, 10}, want: []int{3}},
		{name: "exactly twice the mean is not above", xs: []float64{1, 1, 4}, want: []int{}},
		{name: "all equal", xs: []float64{4, 4, 4}, want: []int{}},
		{name: "custom factor", xs: []float64{1, 2, 3}, opts: []aggregate.Option{aggregate.WithFactor(1)}, want: []int{2}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := aggregate.BusIndexes(numbers(t, "bus", tc.xs...), tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBusIndexesErrors(t *testing.T) {
	t.Parallel()

	_, err := aggregate.BusIndexes(numbers(t, "bus"))
	require.ErrorIs(t, err, table.ErrEmptyTable)

	_, err = aggregate.BusIndexes(numbers(t, "car", 1))
	require.ErrorIs(t, err, table.ErrUnknownColumn)

	_, err = aggregate.BusIndexes(nil)
	require.ErrorIs(t, err, table.ErrNilTable)

	require.Panics(t, func() { aggregate.WithFactor(math.NaN()) })
}
