package columnsort

// MinMatrixSize is the default length below which the matrix pipeline is
// skipped and the whole array is insertion-sorted.
const MinMatrixSize = 16

const panicMinSizeNegative = "columnsort: WithMinSize: size must be >= 0"

// StageHook observes the pipeline. m is nil for StageFallback.
// Hooks must not modify m.
type StageHook func(stage Stage, m *Matrix)

// Option configures Sort and SortDims.
type Option func(*Options)

// Options holds the resolved configuration. Fields are unexported; use the
// WithX constructors.
type Options struct {
	minSize int       // MinMatrixSize
	hook    StageHook // nil: no diagnostics
}

// WithMinSize sets the fallback threshold: arrays with fewer than n values
// are insertion-sorted without building a matrix.
// Panics if n < 0.
func WithMinSize(n int) Option {
	if n < 0 {
		panic(panicMinSizeNegative)
	}

	return func(o *Options) { o.minSize = n }
}

// WithStageHook installs fn to be called after every pipeline stage.
// A nil fn disables the hook.
func WithStageHook(fn StageHook) Option {
	return func(o *Options) { o.hook = fn }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) Options {
	o := Options{minSize: MinMatrixSize}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// emit calls the hook, if any.
func (o Options) emit(stage Stage, m *Matrix) {
	if o.hook != nil {
		o.hook(stage, m)
	}
}
