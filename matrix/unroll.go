// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/tollgrid/table"

const opUnroll = "Unroll"

// Unroll is the inverse of the pivot: one (start, end, value) row per ordered
// key pair with start != end, ascending by (start, end).
//
// Because Keyed keeps its keys ascending, a row-major walk of the grid emits
// rows already in (start, end) order; no sort is needed.
//
// Options: WithColumns names the output columns (defaults id_start, id_end,
// distance).
//
// Errors: ErrNilMatrix for a nil input; table errors for mixed key kinds.
// Complexity: O(n²).
func Unroll(k *Keyed, opts ...Option) (*table.Table, error) {
	if k == nil || k.mat == nil {
		return nil, matrixErrorf(opUnroll, ErrNilMatrix)
	}
	o := gatherOptions(opts...)
	kind := k.keys[0].Kind()
	b, err := table.NewBuilder(table.Schema{
		{Name: o.startCol, Kind: kind},
		{Name: o.endCol, Kind: kind},
		{Name: o.valueCol, Kind: table.Number},
	})
	if err != nil {
		return nil, matrixErrorf(opUnroll, err)
	}

	n := len(k.keys)
	b.Grow(n * (n - 1))
	k.mat.Do(func(i, j int, v float64) bool {
		if i == j {
			return true // self-pairs are not part of the edge list
		}
		err = b.Append(k.keys[i], k.keys[j], table.NumberValue(v))
		return err == nil
	})
	if err != nil {
		return nil, matrixErrorf(opUnroll, err)
	}

	return b.Build(), nil
}
