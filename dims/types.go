// Package dims defines Dimensions, Table and sentinel errors.
package dims

import "errors"

// MaxEntries is the canonical lookup-table capacity.
const MaxEntries = 65536

// Sentinel errors for shape selection, validation and table I/O.
var (
	// ErrEmptyTable indicates Select was called on a table with no entries.
	ErrEmptyTable = errors.New("dims: lookup table is empty")

	// ErrBadEntries indicates a non-positive table size was requested.
	ErrBadEntries = errors.New("dims: table entries must be > 0")

	// ErrSizeMismatch indicates Rows·Cols+Overflow differs from n.
	ErrSizeMismatch = errors.New("dims: rows*cols+overflow does not equal n")

	// ErrOddRows indicates an odd row count.
	ErrOddRows = errors.New("dims: rows must be even")

	// ErrColsNotDivideRows indicates Cols does not divide Rows.
	ErrColsNotDivideRows = errors.New("dims: cols must divide rows")

	// ErrTooFewRows indicates Rows < 2·(Cols−1)².
	ErrTooFewRows = errors.New("dims: rows must be at least 2*(cols-1)^2")

	// ErrNegative indicates a negative field.
	ErrNegative = errors.New("dims: negative dimension")

	// ErrTruncated indicates a binary table ending inside a record.
	ErrTruncated = errors.New("dims: truncated table record")

	// ErrFieldRange indicates a field that does not fit the int32 record format.
	ErrFieldRange = errors.New("dims: field out of int32 range")
)

// Dimensions is the matrix shape chosen for one array size.
// The zero value (no matrix, no overflow) describes the empty array.
type Dimensions struct {
	Rows     int // r: column height, even
	Cols     int // s: column count, divides Rows
	Overflow int // values left out of the matrix
}

// MatrixSize returns Rows·Cols, the number of values placed in the matrix.
func (d Dimensions) MatrixSize() int { return d.Rows * d.Cols }

// Size returns the array length d describes.
func (d Dimensions) Size() int { return d.Rows*d.Cols + d.Overflow }

// Table maps an array size (the index) to its Dimensions.
type Table []Dimensions
