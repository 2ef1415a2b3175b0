package column_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/columnsort/column"
)

// benchmarkSort sorts a freshly filled Column of height n per iteration.
func benchmarkSort(b *testing.B, n int) {
	rng := rand.New(rand.NewSource(1))
	vals := make([]int, n)
	for i := range vals {
		vals[i] = rng.Int()
	}
	a := column.NewArena(n)
	c := column.New(a)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		c.Clear()
		for _, v := range vals {
			c.Append(v)
		}
		b.StartTimer()
		c.Sort()
	}
}

// BenchmarkSort_64 sorts a 64-node column.
func BenchmarkSort_64(b *testing.B) { benchmarkSort(b, 64) }

// BenchmarkSort_512 sorts a 512-node column.
func BenchmarkSort_512(b *testing.B) { benchmarkSort(b, 512) }
