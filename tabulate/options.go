package tabulate

// Options configures a tabulation run.
type Options struct {
	fatTree     bool
	concurrency int
}

// Option configures a tabulation run.
type Option func(*Options)

// DefaultOptions returns generic (non-fat-tree) mode with concurrency 1
// (strictly sequential).
func DefaultOptions() Options {
	return Options{concurrency: 1}
}

// WithFatTree switches counting to uplink/downlink mode, classified against
// fabric.Node.Tier (which must already be populated, e.g. by
// tier.DetermineSwitchTiers — CARoutes does this automatically).
func WithFatTree() Option {
	return func(o *Options) { o.fatTree = true }
}

// WithConcurrency fans the host-interface-pair loop out across n workers
// via an errgroup pool. n==1 (the default) is strictly sequential.
//
// Panics if n <= 0: a non-positive worker count is a caller-programmer
// error, not a runtime condition to report.
func WithConcurrency(n int) Option {
	if n <= 0 {
		panic("tabulate: WithConcurrency requires n > 0")
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
