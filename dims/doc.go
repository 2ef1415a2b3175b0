// Package dims chooses the r×s matrix shape used by columnsort.
//
// What & Why:
//
//	Columnsort only sorts an r×s matrix when r is even, s divides r and
//	r ≥ 2·(s−1)². Most array sizes n do not factor that way, so every n is
//	mapped to Dimensions{Rows, Cols, Overflow} with Rows·Cols+Overflow == n:
//	the matrix takes the first Rows·Cols values and the remaining Overflow
//	values form a tail that is sorted separately and merged afterwards.
//
//	The mapping is precomputed into a lookup Table (index = n). Generate
//	builds one in memory, trading up to ⌊√n⌋ extra overflow values for
//	shorter columns; Read/Write move it to and from the compact binary
//	form (three big-endian int32 per entry, no header).
//
// Canonical constants:
//
//	MaxEntries = 65536  table capacity; larger n reuse the last entry's shape
//
// Complexity:
//
//	Select:   O(1)
//	Factor:   O(∛n)
//	Generate: O(entries·(∛entries + √entries))
package dims
