package trace

// Options configures the trace builders. The zero value is ready to use:
// MaxRecords of 0 means unbounded.
type Options struct {
	maxRecords int
}

// Option configures a trace build.
type Option func(*Options)

// DefaultOptions returns the zero-configuration Options (no record cap).
func DefaultOptions() Options {
	return Options{}
}

// WithMaxRecords caps the number of TraceRecords a single build may
// accumulate. Exceeding the cap discards the partial buffer and returns
// route.ErrInsufficientMemory, mirroring the original's allocation-failure
// contract ("a trace build either fully succeeds or returns nothing") in
// the idiom Go's garbage-collected slices actually fail in.
//
// Panics if n <= 0: a non-positive cap is a caller-programmer error, not a
// runtime condition to report.
func WithMaxRecords(n int) Option {
	if n <= 0 {
		panic("trace: WithMaxRecords requires n > 0")
	}
	return func(o *Options) { o.maxRecords = n }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
