package columnsort

// Transpose performs step 2: the values are picked up in column-major order
// and laid down row-major into an r×s matrix, so the value at column-major
// position t lands in column t mod s. Nodes are relinked, not copied.
//
// Requires s | r for the result to be r×s again.
// Complexity: O(r·s).
func (m *Matrix) Transpose() {
	s := len(m.cols)
	dst := m.emptyColumns(s)
	t := 0
	for _, src := range m.cols {
		for {
			id, ok := src.PopLeft()
			if !ok {
				break
			}
			dst[t%s].AppendNode(id)
			t++
		}
	}
	m.cols = dst
}

// Untranspose performs step 4, the inverse of Transpose: values are picked
// up row-major and laid down column-major, so column-major position t takes
// the next head of column t mod s.
// Complexity: O(r·s).
func (m *Matrix) Untranspose() {
	s, r := len(m.cols), m.d.Rows
	dst := m.emptyColumns(s)
	for t := 0; t < r*s; t++ {
		id, _ := m.cols[t%s].PopLeft()
		dst[t/r].AppendNode(id)
	}
	m.cols = dst
}

// ShiftDown performs step 6: every value moves r/2 positions down in
// column-major order. The bottom r/2 values of each column move to the top
// of the next one (a new column is appended for the last), then column 0 is
// topped with r/2 NegInf and the new column is filled with r/2 PosInf.
// Afterwards there are s+1 columns of r values.
// Complexity: O(r·s).
func (m *Matrix) ShiftDown() {
	h := m.d.Rows / 2
	m.cols = append(m.cols, m.emptyColumns(1)...)
	for k := len(m.cols) - 2; k >= 0; k-- {
		for j := 0; j < h; j++ {
			id, _ := m.cols[k].PopRight()
			m.cols[k+1].Prepend(id)
		}
	}
	first, last := m.cols[0], m.cols[len(m.cols)-1]
	for j := 0; j < h; j++ {
		first.Prepend(m.arena.New(NegInf))
		last.Append(PosInf)
	}
	m.shift = h
}

// ShiftUp performs step 8, undoing ShiftDown on sorted columns: the NegInf
// padding at the head of column 0 is released, the top r/2 values of every
// column move to the bottom of the previous one, and the extra column,
// which then holds only the PosInf padding, is released and dropped.
// Calling ShiftUp on an unshifted matrix is a no-op.
// Complexity: O(r·s).
func (m *Matrix) ShiftUp() {
	h := m.shift
	if h == 0 {
		return
	}
	first := m.cols[0]
	for j := 0; j < h; j++ {
		id, _ := first.PopLeft()
		m.arena.Release(id)
	}
	for k := 0; k+1 < len(m.cols); k++ {
		for j := 0; j < h; j++ {
			id, _ := m.cols[k+1].PopLeft()
			m.cols[k].AppendNode(id)
		}
	}
	last := len(m.cols) - 1
	m.cols[last].Clear()
	m.cols[last] = nil
	m.cols = m.cols[:last]
	m.shift = 0
}
