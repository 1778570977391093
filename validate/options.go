package validate

import "github.com/ibanalysis/fabricroute/fabric"

// HopCallback receives one port visited along a failing route's re-walk,
// in order; a nil port is the sentinel that closes out the path.
type HopCallback func(port *fabric.Port) error

// Options configures a validation run.
type Options struct {
	hopDetail   HopCallback
	concurrency int
}

// Option configures a validation run.
type Option func(*Options)

// DefaultOptions returns a run with no hop-detail callback and
// concurrency 1 (strictly sequential).
func DefaultOptions() Options {
	return Options{concurrency: 1}
}

// WithHopDetail supplies a second callback that re-walks every failing
// route hop-by-hop for deeper diagnostics, closed out by a single
// fn(nil) call once the re-walk ends.
func WithHopDetail(fn HopCallback) Option {
	return func(o *Options) { o.hopDetail = fn }
}

// WithConcurrency fans AllRoutes's outer source-port loop out across n
// workers via an errgroup pool. n==1 (the default) is strictly
// sequential. Callback and any WithHopDetail callback are then invoked
// concurrently from multiple goroutines and must be safe for that.
//
// Panics if n <= 0: a non-positive worker count is a caller-programmer
// error, not a runtime condition to report.
func WithConcurrency(n int) Option {
	if n <= 0 {
		panic("validate: WithConcurrency requires n > 0")
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
