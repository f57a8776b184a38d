// Package try provides algebraic result containers and a deadline-driven
// retry loop built on them.
//
// try offers:
//
//   - Result: a Success/Failure union with comparison, transformation,
//     extraction and filtering
//   - Option: a Some/None union with the same contracts
//   - Retry: a blocking loop that re-invokes an operation until it succeeds
//     or a deadline elapses, recording attempts and timing in a Ledger
//   - Injectable Clock: control time in tests without real sleeps
//
// # Quick Start
//
// Operations signal failure as data, not as errors:
//
//	res, ledger, err := try.Do(func() try.Result[string] {
//	    if !dinnerIsReady() {
//	        return try.Failure("not ready yet")
//	    }
//	    return try.Success("ready!")
//	})
//
// The loop keeps invoking the operation, sleeping a fixed delay between
// failed attempts, until it returns a Success or the timeout elapses. The
// returned Ledger carries the attempt count and elapsed time.
//
// Creating a reusable retrier for dependency injection:
//
//	retrier := try.New[string](
//	    try.WithTimeout(10*time.Minute),
//	    try.WithDelay(time.Second),
//	)
//
//	res, ledger, err := retrier.Do(waitForDinner)
//
// # Results
//
// Result wraps the outcome of a fallible operation. Both variants carry a
// value; Failure is data, not an error:
//
//	spend := func(cost int) try.Result[int] {
//	    if cost > saving {
//	        return try.Failure(saving)
//	    }
//	    return try.Success(saving - cost)
//	}
//
//	spend(90).Map(func(n int) int { return n + 1 })  // Success(11)
//	spend(120).Succeeded()                           // false
//
// Of adapts conventional (value, error) returns:
//
//	res := try.Of(strconv.Atoi(s))
//
// Err crosses back to the error channel when a caller wants to propagate a
// Failure as an error: the failure's original error if it has one, otherwise
// a *FailureError carrying the wrapped value.
//
// Any Failure orders strictly below any Success; within a variant the
// wrapped values decide:
//
//	try.CompareResults(try.Failure(100), try.Success(0))  // -1
//
// # Options
//
// Option mirrors Result with None standing in for Failure:
//
//	try.Some(2).Map(double)          // Some(4)
//	try.None[int]().GetOrElse(7)     // 7
//	try.FromValue("")                // None
//
// None orders strictly below any Some.
//
// # Timeout Semantics
//
// Timing out is a normal outcome, not an error: Do returns the last Failure
// together with the Ledger, and the error result is non-nil only for invalid
// configuration (a non-positive timeout). The deadline is checked before
// each attempt, never mid-attempt, so an attempt that straddles the deadline
// completes and at least one attempt always executes. There is no external
// cancellation: the loop ends on success or deadline.
//
// # Status Callbacks
//
// A StatusFunc observes the session after every attempt:
//
//	try.Do(op, try.OnStatus(try.TickCounter(os.Stdout, 0)))
//
// TickCounter prints one mark per attempt, wrapping lines; LogStatus adapts
// an *slog.Logger. Callback panics are not recovered.
//
// # Testing with the Scripted Clock
//
// ScriptedClock serves a pre-set sequence of instants, one per Now call, and
// its Sleep does nothing, so retry tests run instantaneously:
//
//	clock := try.NewScriptedClock(
//	    try.At(t0),
//	    try.At(t0.Add(100*time.Second)),
//	    try.At(t0.Add(200*time.Second)),
//	)
//
//	res, ledger, err := try.Do(op,
//	    try.WithClock(clock),
//	    try.WithTimeout(300*time.Second),
//	)
//
// Entries can carry side effects (AtFunc) or panic in place of returning a
// time (AtErr); consuming past the end of the schedule panics with
// ErrScheduleExhausted.
package try
