// SPDX-License-Identifier: MIT

package aggregate_test

import (
	"fmt"

	"github.com/katalvlaran/tollgrid/aggregate"
	"github.com/katalvlaran/tollgrid/table"
)

// ExampleTypeCount buckets car counts into low / medium / high.
func ExampleTypeCount() {
	rows := [][]table.Value{}
	for _, x := range []float64{3, 14.999, 15, 26} {
		rows = append(rows, []table.Value{table.NumberValue(x)})
	}
	tb, _ := table.New(table.Schema{{Name: "car", Kind: table.Number}}, rows...)

	counts, _ := aggregate.TypeCount(tb)
	for _, c := range counts {
		fmt.Println(c.Label, c.Count)
	}
	// Output:
	// high 1
	// low 2
	// medium 1
}
