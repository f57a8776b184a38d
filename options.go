package try

import "time"

// config holds all retry configuration.
type config struct {
	timeout time.Duration
	delay   time.Duration
	clock   Clock
	status  StatusFunc
}

// RetryOption configures a Retrier.
type RetryOption func(*config)

// WithTimeout sets the maximum period to wait for an attempt to succeed,
// measured from the session's first clock read.
func WithTimeout(d time.Duration) RetryOption {
	return func(c *config) {
		c.timeout = d
	}
}

// WithDelay sets the fixed delay slept between failed attempts.
func WithDelay(d time.Duration) RetryOption {
	return func(c *config) {
		c.delay = d
	}
}

// WithClock sets the clock for time operations. Useful for testing.
func WithClock(clock Clock) RetryOption {
	return func(c *config) {
		c.clock = clock
	}
}

// OnStatus sets a callback invoked with the Ledger snapshot after every
// attempt.
func OnStatus(fn StatusFunc) RetryOption {
	return func(c *config) {
		c.status = fn
	}
}
