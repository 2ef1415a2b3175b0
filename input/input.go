package input

import (
	"bufio"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Sentinel errors for parsing and generation.
var (
	// ErrBadNumber indicates a line that is not a base-10 integer.
	ErrBadNumber = errors.New("input: invalid number")

	// ErrBadRange indicates a negative count or an inverted value range.
	ErrBadRange = errors.New("input: invalid generation range")
)

// Parse reads one integer per line from r.
// Errors wrap ErrBadNumber with the 1-based line number, or the reader error.
func Parse(r io.Reader) ([]int, error) {
	var out []int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		v, err := strconv.Atoi(text)
		if err != nil {
			return nil, errors.Wrapf(ErrBadNumber, "line %d: %q", line, text)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "read line %d", line+1)
	}

	return out, nil
}

// ReadFile parses the integer file at path.
func ReadFile(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open data file")
	}
	defer f.Close()

	vals, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}

	return vals, nil
}

// Write emits vals to w, one per line.
func Write(w io.Writer, vals []int) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 24)
	for _, v := range vals {
		buf = strconv.AppendInt(buf[:0], int64(v), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return errors.Wrap(err, "write value")
		}
	}

	return errors.Wrap(bw.Flush(), "flush values")
}

// WriteFile creates (or truncates) path and writes vals to it.
func WriteFile(path string, vals []int) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create data file")
	}
	if err := Write(f, vals); err != nil {
		f.Close()
		return err
	}

	return errors.Wrap(f.Close(), "close data file")
}

// Generate returns n values drawn uniformly from [lo, hi] using rng.
// Errors: ErrBadRange if n < 0, lo > hi, or the range does not fit in an int64.
func Generate(rng *rand.Rand, n, lo, hi int) ([]int, error) {
	span := int64(hi) - int64(lo) + 1
	if n < 0 || lo > hi || span <= 0 {
		return nil, errors.Wrapf(ErrBadRange, "n=%d lo=%d hi=%d", n, lo, hi)
	}
	out := make([]int, n)
	for i := range out {
		out[i] = lo + int(rng.Int63n(span))
	}

	return out, nil
}
