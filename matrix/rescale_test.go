// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/tollgrid/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRescaleThresholdBoundary(t *testing.T) {
	t.Parallel()
	m := MustDense(t, [][]float64{{20, 20.01}, {0, 4}})

	out, err := matrix.Rescale(m)
	require.NoError(t, err)

	assert.Equal(t, 25.0, MustAt(t, out, 0, 0), "20 is not above the threshold")
	assert.Equal(t, 15.0, MustAt(t, out, 0, 1))
	assert.Equal(t, 0.0, MustAt(t, out, 1, 0))
	assert.Equal(t, 5.0, MustAt(t, out, 1, 1))
	assert.Equal(t, 20.0, MustAt(t, m, 0, 0), "input must not be mutated")
}

func TestRescaleIsNotIdempotent(t *testing.T) {
	t.Parallel()
	m := MustDense(t, [][]float64{{20}})

	once, err := matrix.Rescale(m)
	require.NoError(t, err)
	twice, err := matrix.Rescale(once)
	require.NoError(t, err)

	// 20 → 25 (×1.25) → 18.75 (×0.75) → 18.8
	assert.Equal(t, 25.0, MustAt(t, once, 0, 0))
	assert.Equal(t, 18.8, MustAt(t, twice, 0, 0))
}

func TestRescaleGenericPathMatchesDense(t *testing.T) {
	t.Parallel()
	m := MustDense(t, [][]float64{{1.04, 33.3}, {-2, 20}})

	fast, err := matrix.Rescale(m)
	require.NoError(t, err)
	slow, err := matrix.Rescale(hide{m})
	require.NoError(t, err)

	assert.Equal(t, fast.String(), slow.String())
	assert.Equal(t, 1.3, MustAt(t, fast, 0, 0))
	assert.Equal(t, -2.5, MustAt(t, fast, 1, 0))
}

func TestRescaleOptions(t *testing.T) {
	t.Parallel()
	m := MustDense(t, [][]float64{{10, 1}})

	out, err := matrix.Rescale(m,
		matrix.WithThreshold(5),
		matrix.WithFactors(0.5, 2),
		matrix.WithDecimals(0),
	)
	require.NoError(t, err)
	assert.Equal(t, 5.0, MustAt(t, out, 0, 0))
	assert.Equal(t, 2.0, MustAt(t, out, 0, 1))

	_, err = matrix.Rescale(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestKeyedRescaleKeepsKeys(t *testing.T) {
	t.Parallel()
	d, err := matrix.DistanceMatrix(roads(t))
	require.NoError(t, err)

	r, err := d.Rescale()
	require.NoError(t, err)
	assert.Equal(t, d.Keys(), r.Keys())
	assert.Equal(t, 12.1, MustKeyedAt(t, r, 1001400, 1001402)) // 9.7 × 1.25 = 12.125
	assert.Equal(t, 20.0, MustKeyedAt(t, r, 1001404, 1001406)) // 16 × 1.25
}

func TestRoundHalfAway(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 3.0, matrix.RoundHalfAway(2.5, 1))
	assert.Equal(t, -3.0, matrix.RoundHalfAway(-2.5, 1))
	assert.Equal(t, 0.1, matrix.RoundHalfAway(0.05, 10))
}
