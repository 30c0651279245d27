package contract

import "log"

// config holds the Contractor's tunables, set via Option.
type config struct {
	logger   *log.Logger
	progress bool
}

// Option configures a Contract call.
type Option func(*config)

// WithLogger overrides the destination for progress output. The
// default writes to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithProgress turns on a per-pass progress line reporting how many
// vertices were collapsed. Off by default, since a single Compact call
// over a small extract produces a handful of one-line passes that
// mostly add noise; it is worth enabling on a large OSM extract where
// a pass can take long enough that silence looks like a hang.
func WithProgress(enabled bool) Option {
	return func(c *config) { c.progress = enabled }
}

func newConfig(opts []Option) *config {
	c := &config{logger: log.Default()}
	for _, opt := range opts {
		opt(c)
	}

	return c
}
