package try

import (
	"errors"
	"time"
)

// Clock abstracts current time and sleeping so the retry loop can be driven
// deterministically in tests.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock implements Clock using the standard time package.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

func (SystemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// ErrScheduleExhausted is the panic value raised by a ScriptedClock whose
// schedule has been consumed past its end.
var ErrScheduleExhausted = errors.New("scripted clock: schedule exhausted")

// Tick is one scheduled entry of a ScriptedClock: a time value, optionally
// paired with a side effect that fires when the entry is consumed.
type Tick struct {
	at     time.Time
	effect func()
	err    error
}

// At schedules a plain time value.
func At(at time.Time) Tick {
	return Tick{at: at}
}

// AtFunc schedules a time value paired with a side effect. The effect fires
// exactly once, at the moment the entry is consumed, before the time value
// is returned.
func AtFunc(at time.Time, effect func()) Tick {
	return Tick{at: at, effect: effect}
}

// AtErr schedules an entry that panics with err instead of returning a time.
func AtErr(at time.Time, err error) Tick {
	return Tick{at: at, err: err}
}

// ScriptedClock is a deterministic Clock for tests. Each Now call consumes
// the next scheduled Tick in order; Sleep records nothing and blocks
// nothing, so suites run instantaneously. Consuming past the end of the
// schedule panics with ErrScheduleExhausted.
//
// A ScriptedClock is single-threaded by design and not safe for concurrent
// use.
type ScriptedClock struct {
	script []Tick
	next   int
}

// NewScriptedClock returns a ScriptedClock that serves the given ticks in
// order.
func NewScriptedClock(ticks ...Tick) *ScriptedClock {
	return &ScriptedClock{script: ticks}
}

func (c *ScriptedClock) Now() time.Time {
	if c.next >= len(c.script) {
		panic(ErrScheduleExhausted)
	}
	tick := c.script[c.next]
	c.next++
	if tick.err != nil {
		panic(tick.err)
	}
	if tick.effect != nil {
		tick.effect()
	}
	return tick.at
}

func (c *ScriptedClock) Sleep(time.Duration) {}

// Remaining returns the number of unconsumed ticks.
func (c *ScriptedClock) Remaining() int {
	return len(c.script) - c.next
}
