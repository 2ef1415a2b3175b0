// Package columnsort sorts integer slices with Leighton's columnsort.
//
// 🚀 What is columnsort?
//
//	The first r·s values of the array are laid out column-major as an r×s
//	Matrix of Columns. Eight fixed steps then sort it:
//	  1. sort every column          5. sort every column
//	  2. transpose and reshape      6. shift down by r/2 (one extra column, ±∞ padding)
//	  3. sort every column          7. sort every column
//	  4. reshape and transpose      8. shift up by r/2 (padding and extra column removed)
//	after which column 0, column 1, … read top to bottom are in ascending
//	order. Values that did not fit the matrix (the overflow tail) are
//	insertion-sorted on their own and merged back in one linear pass.
//
//	The shape (r, s, overflow) comes from a dims.Table so that r is even,
//	s divides r and r ≥ 2·(s−1)², which is what makes the eight steps sort.
//	Arrays shorter than MinMatrixSize skip the matrix and are insertion-sorted.
//
// ⚙️ Usage:
//
//	table, _ := dims.Generate(dims.MaxEntries)
//	data := []int{5, 3, 9, 1 /* ... */}
//	if err := columnsort.Sort(data, table); err != nil {
//	  // only ErrEmptyTable
//	}
//
// Diagnostics:
//
//	WithStageHook(fn) calls fn after every pipeline stage with the live
//	Matrix; Matrix.String renders it column by column with padding shown
//	as "·". Nothing is printed unless a hook is installed.
//
// Complexity:
//
//	Time:   O(s·r²) column sorts + O(n) transforms + O(o²) tail sort (o = overflow)
//	Memory: O(r·s) arena nodes, values moved by relinking only
//
// The sort runs on the calling goroutine; a Matrix must not be shared.
package columnsort
