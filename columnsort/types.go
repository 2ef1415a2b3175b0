package columnsort

import (
	"errors"
	"math"

	"github.com/katalvlaran/columnsort/dims"
)

// Padding values inserted by the shift steps. Input values equal to them are
// allowed: padding is removed by count, not by identity.
const (
	PosInf = math.MaxInt
	NegInf = math.MinInt
)

// ErrEmptyTable is returned by Sort when a matrix is needed but the lookup
// table has no entries. It is dims.ErrEmptyTable, re-exported for callers
// that only import this package.
var ErrEmptyTable = dims.ErrEmptyTable

// ErrShape indicates a Matrix whose column count or heights do not match
// its Dimensions (reported by Matrix.CheckShape).
var ErrShape = errors.New("columnsort: matrix shape violated")

// Stage names one state of the sorting pipeline.
type Stage int

// Pipeline stages in execution order. StageFallback replaces the whole
// matrix pipeline for short arrays.
const (
	StageFallback Stage = iota
	StageMatrixBuilt
	StageSorted1
	StageTransposed
	StageSorted2
	StageReshaped
	StageSorted3
	StageShiftedDown
	StageSorted4
	StageShiftedUp
	StageSorted5
	StageMerged
)

var stageNames = [...]string{
	StageFallback:    "fallback insertion sort",
	StageMatrixBuilt: "build matrix",
	StageSorted1:     "step 1: sort columns",
	StageTransposed:  "step 2: transpose and reshape",
	StageSorted2:     "step 3: sort columns",
	StageReshaped:    "step 4: reshape and transpose",
	StageSorted3:     "step 5: sort columns",
	StageShiftedDown: "step 6: shift down half rows",
	StageSorted4:     "step 7: sort columns",
	StageShiftedUp:   "step 8: shift up half rows",
	StageSorted5:     "sort columns",
	StageMerged:      "merge with overflow",
}

// String returns a human-readable stage name.
func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown stage"
	}

	return stageNames[s]
}
