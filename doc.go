// Package columnsort is the root of an in-memory implementation of
// Leighton's columnsort for integer slices.
//
// 🚀 What is columnsort?
//
//	A comparison sort that views the data as an r×s matrix (r even, s | r,
//	r ≥ 2·(s−1)²) and sorts it with eight fixed steps: four rounds of
//	"sort every column" separated by transpose, untranspose, shift-down and
//	shift-up permutations. Values that do not fit the matrix form an
//	overflow tail that is sorted on its own and merged back.
//
// ✨ Why this layout?
//
//   - Columns are circular doubly-linked lists over an index arena, so every
//     permutation step relinks nodes instead of copying values
//   - Matrix shapes come from a precomputed lookup table, never from
//     global state
//   - Every pipeline stage can be observed through a hook for debugging
//
// Under the hood, everything is organized under these subpackages:
//
//	column/         — arena-backed circular list + in-place ring insertion sort
//	dims/           — Dimensions, lookup table generation, selection, binary codec
//	columnsort/     — Matrix, the eight steps, overflow merge, Sort entry points
//	input/          — one-integer-per-line data files and sample generation
//	cmd/columnsort/ — CLI: sort, table, gen
//
// Quick ASCII example (r=4, s=2, read column-major):
//
//	 7  3        0  4
//	 6  2  ───►  1  5
//	 5  1        2  6
//	 4  0        3  7
//
//	go get github.com/katalvlaran/columnsort/columnsort
package columnsort
