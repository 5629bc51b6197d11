package enumerate_test

import (
	"testing"

	"github.com/katalvlaran/golomb/enumerate"
)

// benchmarkWalk drains one iterator per loop using the given
// constructor; construction is inside the loop on purpose, a traversal
// is not resumable and a fresh one must restart from its parameters.
func benchmarkWalk(b *testing.B, mk func() (*enumerate.Iterator, error)) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it, err := mk()
		if err != nil {
			b.Fatalf("iterator construction failed: %v", err)
		}
		for _, ok := it.Next(); ok; _, ok = it.Next() {
		}
	}
}

// BenchmarkExhaustive_Length16 walks all 2^15 subsets of length 16.
func BenchmarkExhaustive_Length16(b *testing.B) {
	benchmarkWalk(b, func() (*enumerate.Iterator, error) { return enumerate.NewExhaustive(16) })
}

// BenchmarkPruned_Order6Length20 walks the C(19, 4) states of order 6,
// a small slice of the 2^19 exhaustive space.
func BenchmarkPruned_Order6Length20(b *testing.B) {
	benchmarkWalk(b, func() (*enumerate.Iterator, error) { return enumerate.NewPruned(6, 20) })
}

// BenchmarkDepthLimited_Order6Length20 adds the depth-1 filter on top
// of the pruned walk.
func BenchmarkDepthLimited_Order6Length20(b *testing.B) {
	benchmarkWalk(b, func() (*enumerate.Iterator, error) { return enumerate.NewDepthLimited(6, 20, 1) })
}

// BenchmarkGolombRulersPrunedWithLength measures the full filtered
// pipeline for one (order, length) cell.
func BenchmarkGolombRulersPrunedWithLength(b *testing.B) {
	for i := 0; i < b.N; i++ {
		enumerate.GolombRulersPrunedWithLength(5, 16)
	}
}
