package creditloop

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Clock returns a monotonic timestamp in microseconds. Replaces the
// original's globally-locked clock callback: it's just a function value,
// swappable in tests, with no lock required since nothing here shares it
// across goroutines.
type Clock func() int64

func defaultClock() int64 {
	return time.Now().UnixMicro()
}

// Options holds creditloop.Validate's configuration.
type Options struct {
	sink        Sink
	logger      *logrus.Logger
	clock       Clock
	concurrency int
}

// Option configures a Validate call.
type Option func(*Options)

func DefaultOptions() *Options {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return &Options{
		sink:        nil,
		logger:      discard,
		clock:       defaultClock,
		concurrency: 1,
	}
}

// WithSink overrides the default logging sink with a caller-supplied one.
func WithSink(s Sink) Option {
	return func(o *Options) { o.sink = s }
}

// WithLogger sets the logrus logger the default sink (and progress
// messages) write to.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithClock overrides the timestamp source used for progress markers.
func WithClock(c Clock) Option {
	return func(o *Options) { o.clock = c }
}

// WithConcurrency bounds how many host-interface source ports the build
// phase walks concurrently. n must be positive; n==1 (the default) is
// strictly sequential.
func WithConcurrency(n int) Option {
	if n <= 0 {
		panic("creditloop: WithConcurrency requires n > 0")
	}
	return func(o *Options) { o.concurrency = n }
}

func buildOptions(opts []Option) *Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.sink == nil {
		o.sink = &DefaultSink{logger: o.logger}
	}
	return o
}
