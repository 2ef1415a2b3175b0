package dims

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
)

// recordSize is the encoded size of one entry: rows, cols, overflow as
// big-endian int32.
const recordSize = 12

// Read decodes a binary lookup table until EOF.
// Entries are returned as stored; call Table.Validate to check them.
//
// Errors:
//   - ErrTruncated if the stream ends inside a record.
//   - wrapped I/O errors from r.
func Read(r io.Reader) (Table, error) {
	br := bufio.NewReader(r)
	var (
		t   Table
		buf [recordSize]byte
	)
	for {
		_, err := io.ReadFull(br, buf[:])
		if err == io.EOF {
			return t, nil
		}
		if err == io.ErrUnexpectedEOF {
			return nil, errors.Wrapf(ErrTruncated, "after %d entries", len(t))
		}
		if err != nil {
			return nil, errors.Wrapf(err, "read entry %d", len(t))
		}
		t = append(t, Dimensions{
			Rows:     int(int32(binary.BigEndian.Uint32(buf[0:4]))),
			Cols:     int(int32(binary.BigEndian.Uint32(buf[4:8]))),
			Overflow: int(int32(binary.BigEndian.Uint32(buf[8:12]))),
		})
	}
}

// ReadFile opens path and decodes it with Read.
func ReadFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open lookup table")
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	return t, nil
}

// Write encodes t as consecutive big-endian int32 triples.
//
// Errors:
//   - ErrFieldRange if a field does not fit in an int32.
//   - wrapped I/O errors from w.
func Write(w io.Writer, t Table) error {
	bw := bufio.NewWriter(w)
	var buf [recordSize]byte
	for n, d := range t {
		for i, v := range [...]int{d.Rows, d.Cols, d.Overflow} {
			if v < math.MinInt32 || v > math.MaxInt32 {
				return errors.Wrapf(ErrFieldRange, "entry %d: %d", n, v)
			}
			binary.BigEndian.PutUint32(buf[4*i:4*i+4], uint32(int32(v)))
		}
		if _, err := bw.Write(buf[:]); err != nil {
			return errors.Wrapf(err, "write entry %d", n)
		}
	}

	return errors.Wrap(bw.Flush(), "flush lookup table")
}

// WriteFile creates (or truncates) path and writes t to it.
func WriteFile(path string, t Table) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create lookup table")
	}
	if err := Write(f, t); err != nil {
		f.Close()
		return err
	}

	return errors.Wrap(f.Close(), "close lookup table")
}
