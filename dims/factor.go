package dims

import "math"

// Factor returns the exact shape for n with the most columns, i.e. the
// fewest rows, that satisfies the columnsort preconditions:
//
//	rows·cols == n, cols ≥ 2, rows even, cols | rows, rows ≥ 2·(cols−1)².
//
// ok is false when no such shape exists (for instance when n is prime).
//
// Since rows = n/cols ≥ 2·(cols−1)², only cols up to about ∛(n/2) need to be
// tried. Complexity: O(∛n).
func Factor(n int) (rows, cols int, ok bool) {
	for s := 2; 2*(s-1)*(s-1)*s <= n; s++ {
		if n%(s*s) != 0 {
			continue
		}
		r := n / s
		if r%2 != 0 || r < 2*(s-1)*(s-1) {
			continue
		}
		rows, cols, ok = r, s, true
	}

	return rows, cols, ok
}

// OverflowBudget is the extra overflow Generate accepts for entry k in
// exchange for more, shorter columns: ⌊√k⌋. The overflow tail is insertion
// sorted, so a tail of at most √k values costs O(k).
func OverflowBudget(k int) int {
	if k <= 0 {
		return 0
	}

	return int(math.Sqrt(float64(k)))
}

// Generate builds a lookup table with the given number of entries.
//
// Entry k takes the Factor shape with the most columns among the factorable
// m in [k − OverflowBudget(k), k], ties going to the larger m. When that
// window holds none, the largest factorable m ≤ k is used. Overflow = k − m.
// Sizes below the first factorable m get {0, 0, k}: no matrix, everything
// is overflow.
//
// Errors:
//   - ErrBadEntries if entries ≤ 0.
//
// Complexity: O(entries·(∛entries + √entries)) time, O(entries) memory.
func Generate(entries int) (Table, error) {
	if entries <= 0 {
		return nil, ErrBadEntries
	}

	exact := make([]Dimensions, entries) // exact[m] is Factor(m), zero when none
	for m := range exact {
		if r, s, ok := Factor(m); ok {
			exact[m] = Dimensions{Rows: r, Cols: s}
		}
	}

	t := make(Table, entries)
	var last Dimensions // Factor shape of the largest factorable m ≤ k
	for k := 0; k < entries; k++ {
		if exact[k].Cols > 0 {
			last = exact[k]
		}
		var best Dimensions
		for m := k; m >= 0 && m >= k-OverflowBudget(k); m-- {
			if c := exact[m]; c.Cols > best.Cols {
				best = c
			}
		}
		if best.Cols == 0 {
			best = last
		}
		t[k] = Dimensions{Rows: best.Rows, Cols: best.Cols, Overflow: k - best.MatrixSize()}
	}

	return t, nil
}
