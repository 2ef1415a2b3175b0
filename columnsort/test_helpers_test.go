package columnsort_test

import (
	"sort"
	"sync"
	"testing"

	"github.com/katalvlaran/columnsort/dims"
	"github.com/stretchr/testify/require"
)

var (
	fullTableOnce sync.Once
	fullTable     dims.Table
)

// mustTable returns the canonical MaxEntries lookup table, generated once.
func mustTable(t testing.TB) dims.Table {
	t.Helper()
	fullTableOnce.Do(func() {
		fullTable, _ = dims.Generate(dims.MaxEntries)
	})
	require.NotEmpty(t, fullTable)

	return fullTable
}

// descending returns [n, n-1, ..., 1].
func descending(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = n - i
	}

	return out
}

// ascending returns [1, 2, ..., n].
func ascending(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}

	return out
}

// sortedCopy returns a sorted copy of in, the reference result.
func sortedCopy(in []int) []int {
	out := append([]int{}, in...)
	sort.Ints(out)

	return out
}
