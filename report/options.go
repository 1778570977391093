package report

// Options configures a reporting run.
type Options struct {
	fatTree     bool
	concurrency int
}

// Option configures a reporting run.
type Option func(*Options)

// DefaultOptions returns generic (non-fat-tree) mode with concurrency 1
// (strictly sequential).
func DefaultOptions() Options {
	return Options{concurrency: 1}
}

// WithFatTree switches the crossing flag to uplink/downlink semantics,
// classified against fabric.Node.Tier (must already be populated).
func WithFatTree() Option {
	return func(o *Options) { o.fatTree = true }
}

// WithConcurrency fans CARoutes's outer source-port loop out across n
// workers via an errgroup pool. n==1 (the default) is strictly
// sequential. The supplied Callback is invoked concurrently from
// multiple goroutines when n > 1; it must be safe for concurrent use.
//
// Panics if n <= 0: a non-positive worker count is a caller-programmer
// error, not a runtime condition to report.
func WithConcurrency(n int) Option {
	if n <= 0 {
		panic("report: WithConcurrency requires n > 0")
	}
	return func(o *Options) { o.concurrency = n }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
