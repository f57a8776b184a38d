package try

import "time"

// Ledger records one retry session: when it started, when the most recent
// attempt finished, and how many attempts have completed. The orchestrator
// owns the only mutable copy; status callbacks and callers receive value
// snapshots.
type Ledger struct {
	start time.Time
	end   time.Time
	count int
}

func newLedger(start time.Time) Ledger {
	return Ledger{start: start, end: start}
}

// Start returns the time of the first clock read of the session.
func (l Ledger) Start() time.Time {
	return l.start
}

// End returns the time read at the end of the most recent attempt. It is
// never before Start.
func (l Ledger) End() time.Time {
	return l.end
}

// Count returns the number of attempts completed so far.
func (l Ledger) Count() int {
	return l.count
}

// Elapsed returns End minus Start.
func (l Ledger) Elapsed() time.Duration {
	return l.end.Sub(l.start)
}
