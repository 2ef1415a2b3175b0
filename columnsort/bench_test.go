package columnsort_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/columnsort/columnsort"
)

// benchmarkSort sorts a fresh copy of a random array of length n per iteration.
func benchmarkSort(b *testing.B, n int) {
	table := mustTable(b)
	rng := rand.New(rand.NewSource(1))
	src := make([]int, n)
	for i := range src {
		src[i] = rng.Intn(10000) - 5000
	}
	arr := make([]int, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(arr, src)
		if err := columnsort.Sort(arr, table); err != nil {
			b.Fatalf("Sort failed: %v", err)
		}
	}
}

// BenchmarkSort_1K benchmarks a 1024-value array.
func BenchmarkSort_1K(b *testing.B) { benchmarkSort(b, 1024) }

// BenchmarkSort_8K benchmarks an 8192-value array.
func BenchmarkSort_8K(b *testing.B) { benchmarkSort(b, 8192) }

// BenchmarkSort_Prime benchmarks a prime length, which always carries overflow.
func BenchmarkSort_Prime(b *testing.B) { benchmarkSort(b, 8191) }

// BenchmarkStdlibSort_8K is the sort.Ints baseline for BenchmarkSort_8K.
func BenchmarkStdlibSort_8K(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	src := make([]int, 8192)
	for i := range src {
		src[i] = rng.Intn(10000) - 5000
	}
	arr := make([]int, len(src))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(arr, src)
		sort.Ints(arr)
	}
}
