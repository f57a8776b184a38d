package try

import (
	"fmt"
	"io"
	"log/slog"
)

// DefaultColumnLimit is the number of progress marks TickCounter emits per
// line.
const DefaultColumnLimit = 80

// TickCounter returns a StatusFunc that writes one progress mark to w per
// attempt. After columnLimit marks it writes a line break and resets its
// internal counter. A non-positive columnLimit selects DefaultColumnLimit.
//
//	_, _, err := try.Do(op, try.OnStatus(try.TickCounter(os.Stdout, 0)))
func TickCounter(w io.Writer, columnLimit int) StatusFunc {
	if columnLimit <= 0 {
		columnLimit = DefaultColumnLimit
	}
	count := 0
	return func(Ledger) {
		fmt.Fprint(w, ".")
		count++
		if count == columnLimit {
			fmt.Fprintln(w)
			count = 0
		}
	}
}

// LogStatus returns a StatusFunc that logs msg at info level with the
// ordinal of the attempt that just finished and the session's elapsed time.
// The snapshot arrives before the attempt is counted, hence the +1.
func LogStatus(logger *slog.Logger, msg string) StatusFunc {
	return func(l Ledger) {
		logger.Info(msg,
			slog.Int("attempt", l.Count()+1),
			slog.Duration("elapsed", l.Elapsed()),
		)
	}
}
