package columnsort

import "github.com/katalvlaran/columnsort/dims"

// Sort sorts arr ascending in place.
//
// Arrays shorter than the minimum size (MinMatrixSize unless changed with
// WithMinSize) are insertion-sorted. Otherwise the shape is taken from
// table.Select(len(arr)) and the columnsort pipeline runs via SortDims.
// Table entries are trusted; validate them upstream with dims.Table.Validate.
//
// Errors:
//   - ErrEmptyTable if a matrix is needed and table has no entries.
func Sort(arr []int, table dims.Table, opts ...Option) error {
	o := gatherOptions(opts)
	if len(arr) < o.minSize {
		fallback(arr, o)
		return nil
	}
	d, err := table.Select(len(arr))
	if err != nil {
		return err
	}
	run(arr, d, o)

	return nil
}

// SortDims sorts arr ascending in place using the shape d, which must satisfy
// d.Rows*d.Cols+d.Overflow == len(arr) and the dims preconditions.
// Behavior for a d that violates them is undefined.
//
// Pipeline (each stage reported to the StageHook, if any):
//
//	MatrixBuilt → Sorted1 → Transposed → Sorted2 → Reshaped → Sorted3 →
//	ShiftedDown → Sorted4 → ShiftedUp → Sorted5 → Merged
//
// Short arrays, and shapes without a matrix, take the Fallback stage only.
func SortDims(arr []int, d dims.Dimensions, opts ...Option) {
	run(arr, d, gatherOptions(opts))
}

// run executes the fixed eight-step pipeline.
func run(arr []int, d dims.Dimensions, o Options) {
	if len(arr) < o.minSize || d.MatrixSize() == 0 {
		fallback(arr, o)
		return
	}

	m := NewMatrix(arr, d)
	o.emit(StageMatrixBuilt, m)

	steps := [...]struct {
		stage Stage
		apply func()
	}{
		{StageSorted1, m.SortColumns},
		{StageTransposed, m.Transpose},
		{StageSorted2, m.SortColumns},
		{StageReshaped, m.Untranspose},
		{StageSorted3, m.SortColumns},
		{StageShiftedDown, m.ShiftDown},
		{StageSorted4, m.SortColumns},
		{StageShiftedUp, m.ShiftUp},
		{StageSorted5, m.SortColumns},
	}
	for _, step := range steps {
		step.apply()
		o.emit(step.stage, m)
	}

	m.Merge(arr)
	o.emit(StageMerged, m)
}

// fallback insertion-sorts the whole array.
func fallback(arr []int, o Options) {
	InsertionSort(arr)
	o.emit(StageFallback, nil)
}

// InsertionSort sorts a ascending in place. It is stable and allocation-free.
// Complexity: O(len²) worst case, O(len) on sorted input.
func InsertionSort(a []int) {
	for i := 1; i < len(a); i++ {
		key := a[i]
		j := i - 1
		for j >= 0 && a[j] > key {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = key
	}
}
