// SPDX-License-Identifier: MIT

package toll

import (
	"github.com/katalvlaran/tollgrid/table"
)

const opCalculateRates = "CalculateRates"

// CalculateRates appends one Number column per vehicle class, in tariff
// order, holding distance × coefficient. The input table is not modified.
//
// Options: WithDistanceColumn (distance), WithRates (moto, car, rv, bus, truck).
// Errors: table.ErrNilTable, table.ErrUnknownColumn, table.ErrKindMismatch,
// table.ErrDuplicateColumn when a vehicle column already exists.
// Complexity: O(r*v).
func CalculateRates(t *table.Table, opts ...Option) (*table.Table, error) {
	if t == nil {
		return nil, tollErrorf(opCalculateRates, table.ErrNilTable)
	}
	o := gatherOptions(opts...)
	dist, err := t.Floats(o.distanceCol)
	if err != nil {
		return nil, tollErrorf(opCalculateRates, err)
	}

	out := t
	for _, r := range o.rates {
		vals := make([]table.Value, len(dist))
		for i, d := range dist {
			vals[i] = table.NumberValue(d * r.Coefficient)
		}
		if out, err = out.WithColumn(table.Column{Name: r.Vehicle, Kind: table.Number}, vals); err != nil {
			return nil, tollErrorf(opCalculateRates, err)
		}
	}

	return out, nil
}
