package columnsort

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/columnsort/column"
	"github.com/katalvlaran/columnsort/dims"
)

// Matrix is an ordered sequence of Columns sharing one Arena.
//
// Outside the shift steps it holds exactly d.Cols columns of d.Rows values.
// Between ShiftDown and ShiftUp it holds d.Cols+1 columns of d.Rows values,
// d.Rows of which are padding.
type Matrix struct {
	d     dims.Dimensions
	arena *column.Arena
	cols  []*column.Column
	shift int // padding per side while shifted, 0 otherwise
}

// NewMatrix lays out values[:d.Rows*d.Cols] column-major: column k holds
// values[k*d.Rows : (k+1)*d.Rows]. values is only read.
//
// d is trusted; a shape larger than values panics on slicing.
// Complexity: O(r·s).
func NewMatrix(values []int, d dims.Dimensions) *Matrix {
	m := &Matrix{
		d:     d,
		arena: column.NewArena(d.MatrixSize() + d.Rows),
		cols:  make([]*column.Column, d.Cols, d.Cols+1),
	}
	for k := range m.cols {
		c := column.New(m.arena)
		for _, v := range values[k*d.Rows : (k+1)*d.Rows] {
			c.Append(v)
		}
		m.cols[k] = c
	}

	return m
}

// Dimensions returns the shape the matrix was built with.
func (m *Matrix) Dimensions() dims.Dimensions { return m.d }

// Rows returns the column height r.
func (m *Matrix) Rows() int { return m.d.Rows }

// NumCols returns the current number of columns (s, or s+1 while shifted).
func (m *Matrix) NumCols() int { return len(m.cols) }

// Column returns a copy of column i from head to tail.
func (m *Matrix) Column(i int) []int { return m.cols[i].Values() }

// Len returns the number of values currently held, padding included.
func (m *Matrix) Len() int {
	n := 0
	for _, c := range m.cols {
		n += c.Len()
	}

	return n
}

// Padding returns the number of sentinel values currently inserted.
func (m *Matrix) Padding() int { return 2 * m.shift }

// Shifted reports whether the matrix is between ShiftDown and ShiftUp.
func (m *Matrix) Shifted() bool { return m.shift > 0 }

// CheckShape verifies the column count and every column height.
func (m *Matrix) CheckShape() error {
	want := m.d.Cols
	if m.Shifted() {
		want++
	}
	if len(m.cols) != want {
		return fmt.Errorf("%d columns, want %d: %w", len(m.cols), want, ErrShape)
	}
	for i, c := range m.cols {
		if c.Len() != m.d.Rows {
			return fmt.Errorf("column %d has %d values, want %d: %w", i, c.Len(), m.d.Rows, ErrShape)
		}
		if err := c.Validate(); err != nil {
			return fmt.Errorf("column %d: %w", i, err)
		}
	}

	return nil
}

// SortColumns sorts every column ascending, in column order.
func (m *Matrix) SortColumns() {
	for _, c := range m.cols {
		c.Sort()
	}
}

// String renders one line per column, each value right-aligned in six
// characters and padding drawn as "·". Padding is located by position, so
// input values equal to PosInf or NegInf are printed as numbers.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i, c := range m.cols {
		row, height := 0, c.Len()
		c.Each(func(v int) {
			cell := strconv.Itoa(v)
			if m.isPadding(i, row, height) {
				cell = "·"
			}
			row++
			sb.WriteString(strings.Repeat(" ", max(1, 6-len([]rune(cell)))))
			sb.WriteString(cell)
		})
		sb.WriteByte('\n')
	}

	return sb.String()
}

// isPadding reports whether the value at row of column col is a sentinel.
// While shifted, NegInf padding heads column 0 and PosInf padding ends the
// extra column; the stable column sort keeps both in place.
func (m *Matrix) isPadding(col, row, height int) bool {
	if m.shift == 0 {
		return false
	}

	return (col == 0 && row < m.shift) ||
		(col == len(m.cols)-1 && row >= height-m.shift)
}

// emptyColumns returns n fresh columns over m's arena.
func (m *Matrix) emptyColumns(n int) []*column.Column {
	cols := make([]*column.Column, n, n+1)
	for i := range cols {
		cols[i] = column.New(m.arena)
	}

	return cols
}
