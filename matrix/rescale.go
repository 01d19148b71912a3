// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Conditional element-wise rescale: v > threshold → v*above, else v*below,
//     then round to a fixed number of decimals.
//
// Rounding policy:
//   - Half away from zero (math.Round on the scaled value): 2.25 → 2.3,
//     -2.25 → -2.3. Binary representation still applies, so a product such
//     as 0.15*... may land just below the half and round down.

package matrix

import "math"

const opRescale = "Rescale"

// Rescale returns a new Dense where every cell v of m becomes
// round(v*above) if v > threshold, round(v*below) otherwise.
//
// Options: WithThreshold (20), WithFactors (0.75, 1.25), WithDecimals (1).
//
// Applying Rescale to its own output compares the NEW values against the
// same threshold; it is not the square of a single application.
//
// Errors: ErrNilMatrix; ErrNaNInf if a product overflows.
// Complexity: Time O(r*c), Space O(r*c).
func Rescale(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRescale, err)
	}
	o := gatherOptions(opts...)
	rule := rescaleRule(o)

	// Dense fast-path: clone + in-place Apply.
	if d, ok := m.(*Dense); ok {
		out := d.clone()
		if err := out.Apply(func(_, _ int, v float64) float64 { return rule(v) }); err != nil {
			return nil, matrixErrorf(opRescale, err)
		}

		return out, nil
	}

	// Generic fallback via At/Set.
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opRescale, err)
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opRescale, err)
			}
			if err = out.Set(i, j, rule(v)); err != nil {
				return nil, matrixErrorf(opRescale, err)
			}
		}
	}

	return out, nil
}

// Rescale applies the conditional rescale to the keyed matrix and keeps
// its labels.
func (k *Keyed) Rescale(opts ...Option) (*Keyed, error) {
	if k == nil || k.mat == nil {
		return nil, matrixErrorf(opRescale, ErrNilMatrix)
	}
	out, err := Rescale(k.mat, opts...)
	if err != nil {
		return nil, err
	}

	return newKeyedSorted(k.keys, k.index, out), nil
}

// rescaleRule captures the options in a per-cell closure.
func rescaleRule(o Options) func(float64) float64 {
	pow := math.Pow(10, float64(o.decimals))
	return func(v float64) float64 {
		if v > o.threshold {
			v *= o.above
		} else {
			v *= o.below
		}
		return RoundHalfAway(v, pow)
	}
}

// RoundHalfAway rounds x to the grid 1/pow with ties away from zero;
// pow is 10^decimals.
func RoundHalfAway(x, pow float64) float64 {
	return math.Round(x*pow) / pow
}
