package try

import (
	"errors"
	"time"
)

// Operation is the function signature for retryable operations: zero
// arguments, returning a Result. Failure drives another attempt; Success
// ends the session.
type Operation[T any] func() Result[T]

// StatusFunc is invoked with a snapshot of the session Ledger after every
// attempt, including the final one, before the attempt is counted. Panics
// inside the callback are not recovered and propagate to the caller.
type StatusFunc func(Ledger)

// Default values.
const (
	DefaultTimeout = 5 * time.Minute
	DefaultDelay   = 4 * time.Second
)

// ErrInvalidTimeout reports a non-positive timeout. It is returned before
// any attempt executes.
var ErrInvalidTimeout = errors.New("retry timeout must be greater than zero")

// package-level default to avoid allocation
var defaultClock Clock = SystemClock{}

// Retrier drives repeated invocation of an Operation until it succeeds or a
// deadline elapses. A Retrier is immutable after New and may be reused
// across sessions; each Do call owns its own Ledger.
type Retrier[T any] struct {
	timeout time.Duration
	delay   time.Duration
	clock   Clock
	status  StatusFunc
}

// New creates a Retrier with the given options.
func New[T any](opts ...RetryOption) *Retrier[T] {
	cfg := config{
		timeout: DefaultTimeout,
		delay:   DefaultDelay,
		clock:   defaultClock,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Retrier[T]{
		timeout: cfg.timeout,
		delay:   cfg.delay,
		clock:   cfg.clock,
		status:  cfg.status,
	}
}

// Do executes op with retry using the default configuration, adjusted by
// opts.
func Do[T any](op Operation[T], opts ...RetryOption) (Result[T], Ledger, error) {
	return New[T](opts...).Do(op)
}

// Do invokes op until it returns a Success or the deadline elapses.
//
// The deadline is start + timeout, with both read from the Retrier's clock.
// The loop condition is checked before each attempt using the time read at
// the end of the previous attempt, so an attempt that straddles the deadline
// is allowed to complete once begun, and at least one attempt always
// executes. Between failed attempts the clock sleeps for the configured
// delay.
//
// Do returns the final Result and the session Ledger. Timing out is a
// normal outcome: the last Failure is returned with a nil error. The error
// is non-nil only for invalid configuration, before any attempt runs.
func (r *Retrier[T]) Do(op Operation[T]) (Result[T], Ledger, error) {
	var res Result[T]
	if r.timeout <= 0 {
		return res, Ledger{}, ErrInvalidTimeout
	}

	start := r.clock.Now()
	deadline := start.Add(r.timeout)
	led := newLedger(start)
	current := start

	for current.Before(deadline) {
		res = op()
		current = r.clock.Now()
		led.end = current

		if r.status != nil {
			r.status(led)
		}
		led.count++

		if res.Succeeded() {
			return res, led, nil
		}
		r.clock.Sleep(r.delay)
	}

	return res, led, nil
}

// Wrap binds op to the Retrier, returning the retrying version of op for
// callers that want to configure once and invoke later.
func (r *Retrier[T]) Wrap(op Operation[T]) func() (Result[T], Ledger, error) {
	return func() (Result[T], Ledger, error) {
		return r.Do(op)
	}
}
