package columnsort

// Merge writes the final ascending order into arr.
//
// arr[:r·s] is the region the matrix was built from and arr[r·s:] is the
// overflow tail. The tail is insertion-sorted first; then the matrix,
// read column 0 to column s−1 with PopLeft, and the tail are merged front to
// back into arr. The write position never passes the tail read position, so
// the merge needs no scratch buffer. Exhaustion is tracked explicitly, so
// values equal to PosInf are merged like any other.
//
// The matrix is empty afterwards and its nodes are released.
// Requires sorted columns in column-major order (the state after step 8).
// Complexity: O(n + o²) for an overflow tail of length o.
func (m *Matrix) Merge(arr []int) {
	j := m.d.MatrixSize()
	InsertionSort(arr[j:])

	ci := 0
	next := func() (int, bool) {
		for ci < len(m.cols) {
			if id, ok := m.cols[ci].PopLeft(); ok {
				v := m.arena.Value(id)
				m.arena.Release(id)
				return v, true
			}
			ci++
		}
		return 0, false
	}

	mv, ok := next()
	for i := range arr {
		if ok && (j >= len(arr) || mv <= arr[j]) {
			arr[i] = mv
			mv, ok = next()
			continue
		}
		arr[i] = arr[j]
		j++
	}
}
