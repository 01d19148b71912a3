// Package matrix_test provides benchmarks for the pivot, closure and rescale
// kernels, using a deterministic random road network.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/tollgrid/matrix"
	"github.com/katalvlaran/tollgrid/table"
)

// benchSizes are the location counts to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkK *matrix.Keyed
	sinkM matrix.Matrix
	sinkT *table.Table
)

// benchRoads builds a chain of n locations plus ~n random chords, forward only.
func benchRoads(b *testing.B, n int, seed int64) *table.Table {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	bld, err := table.NewBuilder(table.Schema{
		{Name: matrix.DefaultStartColumn, Kind: table.Number},
		{Name: matrix.DefaultEndColumn, Kind: table.Number},
		{Name: matrix.DefaultValueColumn, Kind: table.Number},
	})
	if err != nil {
		b.Fatal(err)
	}
	seen := make(map[[2]int]bool, 2*n)
	add := func(a, c int) {
		if a == c || seen[[2]int{a, c}] {
			return
		}
		seen[[2]int{a, c}] = true
		d := float64(rng.Intn(300)) / 10
		if err := bld.Append(table.NumberValue(float64(a)), table.NumberValue(float64(c)), table.NumberValue(d)); err != nil {
			b.Fatal(err)
		}
	}
	for i := 0; i+1 < n; i++ {
		add(i, i+1)
	}
	for i := 0; i < n; i++ {
		add(rng.Intn(n), rng.Intn(n))
	}

	return bld.Build()
}

func BenchmarkDistanceMatrix(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			tb := benchRoads(b, n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				k, err := matrix.DistanceMatrix(tb)
				if err != nil {
					b.Fatal(err)
				}
				sinkK = k
			}
		})
	}
}

func BenchmarkDistanceMatrixCumulative(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			tb := benchRoads(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				k, err := matrix.DistanceMatrix(tb, matrix.WithCumulative())
				if err != nil {
					b.Fatal(err)
				}
				sinkK = k
			}
		})
	}
}

func BenchmarkUnroll(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			k, err := matrix.DistanceMatrix(benchRoads(b, n, 11))
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if sinkT, err = matrix.Unroll(k); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkRescale(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			k, err := matrix.DistanceMatrix(benchRoads(b, n, 22))
			if err != nil {
				b.Fatal(err)
			}
			d := k.Dense()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if sinkM, err = matrix.Rescale(d); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
