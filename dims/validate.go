package dims

import "fmt"

// Validate checks that d describes an array of length n and that its
// matrix part satisfies the columnsort preconditions.
// A shape with no matrix (Rows·Cols == 0) only needs the size to match.
//
// Errors (first failure wins):
//   - ErrNegative, ErrSizeMismatch, ErrOddRows, ErrColsNotDivideRows, ErrTooFewRows.
func (d Dimensions) Validate(n int) error {
	if d.Rows < 0 || d.Cols < 0 || d.Overflow < 0 {
		return ErrNegative
	}
	if d.Size() != n {
		return ErrSizeMismatch
	}
	if d.MatrixSize() == 0 {
		return nil
	}
	if d.Rows%2 != 0 {
		return ErrOddRows
	}
	if d.Rows%d.Cols != 0 {
		return ErrColsNotDivideRows
	}
	if d.Rows < 2*(d.Cols-1)*(d.Cols-1) {
		return ErrTooFewRows
	}

	return nil
}

// Validate checks every entry of t against its own index.
// The returned error names the first offending index and wraps the
// Dimensions sentinel.
func (t Table) Validate() error {
	for n, d := range t {
		if err := d.Validate(n); err != nil {
			return fmt.Errorf("entry %d %+v: %w", n, d, err)
		}
	}

	return nil
}
