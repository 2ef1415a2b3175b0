package dims_test

import (
	"testing"

	"github.com/katalvlaran/columnsort/dims"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFactor checks shapes for sizes with and without a valid factorization.
func TestFactor(t *testing.T) {
	cases := []struct {
		n          int
		rows, cols int
		ok         bool
	}{
		{0, 0, 0, false},
		{4, 2, 2, true},
		{8, 4, 2, true},
		{16, 8, 2, true},
		{17, 0, 0, false},
		{18, 0, 0, false},
		{32, 16, 2, true},
		{54, 18, 3, true},
		{128, 32, 4, true},
	}
	for _, tc := range cases {
		r, s, ok := dims.Factor(tc.n)
		assert.Equal(t, tc.ok, ok, "Factor(%d) ok", tc.n)
		assert.Equal(t, tc.rows, r, "Factor(%d) rows", tc.n)
		assert.Equal(t, tc.cols, s, "Factor(%d) cols", tc.n)
		if ok {
			assert.NoError(t, dims.Dimensions{Rows: r, Cols: s}.Validate(tc.n))
		}
	}
}

// TestGenerate_KnownEntries verifies the entries the sorting scenarios rely on.
func TestGenerate_KnownEntries(t *testing.T) {
	table, err := dims.Generate(64)
	require.NoError(t, err)
	require.Len(t, table, 64)

	assert.Equal(t, dims.Dimensions{Rows: 0, Cols: 0, Overflow: 3}, table[3])
	assert.Equal(t, dims.Dimensions{Rows: 8, Cols: 2, Overflow: 0}, table[16])
	assert.Equal(t, dims.Dimensions{Rows: 8, Cols: 2, Overflow: 3}, table[19])
	assert.Equal(t, dims.Dimensions{Rows: 16, Cols: 2, Overflow: 1}, table[33])
}

// TestGenerate_Valid checks every generated entry against the preconditions.
func TestGenerate_Valid(t *testing.T) {
	table, err := dims.Generate(dims.MaxEntries)
	require.NoError(t, err)
	assert.Len(t, table, dims.MaxEntries)
	assert.NoError(t, table.Validate())
}

// TestGenerate_ShortColumns checks that large entries trade a little overflow
// for many columns instead of falling back to tall two-column shapes.
func TestGenerate_ShortColumns(t *testing.T) {
	table, err := dims.Generate(dims.MaxEntries)
	require.NoError(t, err)

	last := table[dims.MaxEntries-1]
	assert.LessOrEqual(t, last.Rows, dims.MaxEntries/16, "%+v", last)
	assert.GreaterOrEqual(t, last.Cols, 16, "%+v", last)
	assert.NoError(t, last.Validate(dims.MaxEntries-1))

	for k, d := range table {
		if d.Overflow > dims.OverflowBudget(k) {
			// only allowed when no shape exists inside the budget
			for m := k - dims.OverflowBudget(k); m <= k; m++ {
				_, _, ok := dims.Factor(m)
				require.False(t, ok, "entry %d skips factorable %d", k, m)
			}
		}
	}

	d, err := table.Select(100000)
	require.NoError(t, err)
	assert.Equal(t, last.Rows, d.Rows)
	assert.Equal(t, last.Cols, d.Cols)
	assert.Equal(t, 100000, d.Size())
}

// TestOverflowBudget pins the square-root budget.
func TestOverflowBudget(t *testing.T) {
	assert.Equal(t, 0, dims.OverflowBudget(0))
	assert.Equal(t, 0, dims.OverflowBudget(-5))
	assert.Equal(t, 4, dims.OverflowBudget(19))
	assert.Equal(t, 255, dims.OverflowBudget(dims.MaxEntries-1))
}

// TestGenerate_BadEntries rejects non-positive sizes.
func TestGenerate_BadEntries(t *testing.T) {
	_, err := dims.Generate(0)
	assert.ErrorIs(t, err, dims.ErrBadEntries)
	_, err = dims.Generate(-4)
	assert.ErrorIs(t, err, dims.ErrBadEntries)
}

// TestSelect covers in-table, beyond-table and empty-table lookups.
func TestSelect(t *testing.T) {
	table, err := dims.Generate(20)
	require.NoError(t, err)

	d, err := table.Select(16)
	require.NoError(t, err)
	assert.Equal(t, dims.Dimensions{Rows: 8, Cols: 2}, d)

	d, err = table.Select(100)
	require.NoError(t, err)
	assert.Equal(t, dims.Dimensions{Rows: 8, Cols: 2, Overflow: 84}, d)
	assert.Equal(t, 100, d.Size())

	_, err = dims.Table(nil).Select(1)
	assert.ErrorIs(t, err, dims.ErrEmptyTable)
}

// TestValidate_Errors maps each broken shape to its sentinel.
func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name string
		d    dims.Dimensions
		n    int
		err  error
	}{
		{"Negative", dims.Dimensions{Rows: -2, Cols: 1}, -2, dims.ErrNegative},
		{"SizeMismatch", dims.Dimensions{Rows: 8, Cols: 2, Overflow: 1}, 16, dims.ErrSizeMismatch},
		{"OddRows", dims.Dimensions{Rows: 9, Cols: 3}, 27, dims.ErrOddRows},
		{"ColsNotDivide", dims.Dimensions{Rows: 10, Cols: 3}, 30, dims.ErrColsNotDivideRows},
		{"TooFewRows", dims.Dimensions{Rows: 4, Cols: 4}, 16, dims.ErrTooFewRows},
		{"NoMatrix", dims.Dimensions{Overflow: 5}, 5, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.d.Validate(tc.n)
			if tc.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.err)
		})
	}

	bad := dims.Table{{}, {Rows: 2, Cols: 1}}
	assert.ErrorIs(t, bad.Validate(), dims.ErrSizeMismatch)
}
