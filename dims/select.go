package dims

// Select returns the Dimensions for an array of length n.
//
// For n < len(t) the entry t[n] is returned verbatim. For larger n the last
// entry's shape is reused and every value past Rows·Cols becomes overflow,
// which keeps Rows·Cols+Overflow == n.
//
// Entries are not validated here; see Table.Validate.
//
// Errors:
//   - ErrEmptyTable if t has no entries.
func (t Table) Select(n int) (Dimensions, error) {
	if len(t) == 0 {
		return Dimensions{}, ErrEmptyTable
	}
	if n < len(t) {
		return t[n], nil
	}
	last := t[len(t)-1]

	return Dimensions{Rows: last.Rows, Cols: last.Cols, Overflow: n - last.MatrixSize()}, nil
}
