package try

import (
	"cmp"
	"errors"
	"fmt"
)

// ErrNoSuchElement is returned when extracting the wrong variant from a
// Result or Option, e.g. calling Get on a Failure.
var ErrNoSuchElement = errors.New("no such element")

// FailureError carries a Failure's wrapped value across the error channel.
// It is the default error produced by Result.Err when the wrapped value is
// not itself an error.
type FailureError struct {
	// Value is the Failure's wrapped value.
	Value any

	msg string
}

func (e *FailureError) Error() string {
	return e.msg
}

// Result represents the outcome of a fallible operation: either a Success or
// a Failure, each wrapping a value of type T. Exactly one variant is active.
//
// The zero value is a Failure wrapping T's zero value. Construct values with
// Success, Failure, or Of; Result itself has no public constructor.
type Result[T any] struct {
	value T
	ok    bool

	// message overrides the rendering of the wrapped value when set.
	msg    string
	msgSet bool

	// cause is the originating error for failures built by Of.
	cause error
}

// Success returns a successful Result wrapping v.
func Success[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Failure returns a failed Result wrapping v.
func Failure[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Of adapts a conventional (value, error) return into a Result. A nil error
// yields Success(v); a non-nil error yields a Failure that retains err as its
// cause, so Err returns it unchanged and Message renders it.
func Of[T any](v T, err error) Result[T] {
	if err != nil {
		return Result[T]{value: v, cause: err}
	}
	return Success(v)
}

// Succeeded reports whether r is a Success.
func (r Result[T]) Succeeded() bool {
	return r.ok
}

// Failed reports whether r is a Failure.
func (r Result[T]) Failed() bool {
	return !r.ok
}

// Map applies f to the wrapped value if r is a Success and returns the
// transformed Success. If r is a Failure, f is never invoked and r is
// returned unchanged. The message is not carried onto the new Success.
func (r Result[T]) Map(f func(T) T) Result[T] {
	if r.ok {
		return Success(f(r.value))
	}
	return r
}

// MapFailure is the symmetric counterpart of Map: f is applied only if r is
// a Failure.
func (r Result[T]) MapFailure(f func(T) T) Result[T] {
	if r.ok {
		return r
	}
	return Failure(f(r.value))
}

// Get returns the wrapped value if r is a Success. Calling Get on a Failure
// returns an error wrapping ErrNoSuchElement; use GetFailure instead.
func (r Result[T]) Get() (T, error) {
	if r.ok {
		return r.value, nil
	}
	var zero T
	return zero, fmt.Errorf("%w: Get on a Failure, use GetFailure instead", ErrNoSuchElement)
}

// GetFailure returns the wrapped value if r is a Failure. Calling GetFailure
// on a Success returns an error wrapping ErrNoSuchElement; use Get instead.
func (r Result[T]) GetFailure() (T, error) {
	if !r.ok {
		return r.value, nil
	}
	var zero T
	return zero, fmt.Errorf("%w: GetFailure on a Success, use Get instead", ErrNoSuchElement)
}

// GetOrElse returns the wrapped value if r is a Success, else def.
func (r Result[T]) GetOrElse(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

// Message returns the explicit message if one was set with WithMessage.
// Otherwise it renders the wrapped value, or the cause for failures built
// by Of.
func (r Result[T]) Message() string {
	if r.msgSet {
		return r.msg
	}
	if !r.ok && r.cause != nil {
		return r.cause.Error()
	}
	return fmt.Sprintf("%v", r.value)
}

// WithMessage returns a copy of r with its message set to msg. The message
// overrides what Message renders; the wrapped value is untouched.
func (r Result[T]) WithMessage(msg string) Result[T] {
	r.msg = msg
	r.msgSet = true
	return r
}

// Filter converts a Success into a Failure wrapping the same value when the
// predicate rejects it. Failures pass through untouched and the predicate is
// not invoked.
func (r Result[T]) Filter(pred func(T) bool) Result[T] {
	if !r.ok {
		return r
	}
	if pred(r.value) {
		return r
	}
	return Failure(r.value)
}

// Err moves a Failure onto the error channel. It returns nil for a Success.
// For a Failure it returns, in order of preference: the cause recorded by
// Of, the wrapped value itself when it is an error, or a *FailureError
// carrying the wrapped value.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	if r.cause != nil {
		return r.cause
	}
	if err, ok := any(r.value).(error); ok && err != nil {
		return err
	}
	return &FailureError{Value: r.value, msg: r.Message()}
}

// ErrAs is Err with a caller-supplied error constructor: when the Failure
// does not already wrap an error, wrap builds the returned error from the
// wrapped value.
func (r Result[T]) ErrAs(wrap func(T) error) error {
	if r.ok {
		return nil
	}
	if r.cause != nil {
		return r.cause
	}
	if err, ok := any(r.value).(error); ok && err != nil {
		return err
	}
	return wrap(r.value)
}

// String renders r as Success(v) or Failure(v).
func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Failure(%v)", r.value)
}

// CompareResults orders two Results: any Failure is strictly less than any
// Success, and Results of the same variant compare by wrapped value.
func CompareResults[T cmp.Ordered](a, b Result[T]) int {
	switch {
	case a.ok == b.ok:
		return cmp.Compare(a.value, b.value)
	case a.ok:
		return 1
	default:
		return -1
	}
}

// EqualResults reports whether two Results have the same variant and equal
// wrapped values. Messages and causes do not participate in equality.
func EqualResults[T comparable](a, b Result[T]) bool {
	return a.ok == b.ok && a.value == b.value
}
