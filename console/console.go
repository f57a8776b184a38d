// Package console reports try.Result outcomes to the terminal: Success
// messages go to standard output and Failure messages to standard error,
// with an optional process-exit trigger. The core types never touch the
// process; all exiting happens here.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Outcome is the slice of a try.Result the console consumes. Every
// try.Result[T] satisfies it.
type Outcome interface {
	Succeeded() bool
	Message() string
}

// Console routes outcome messages to its output streams.
type Console struct {
	out  io.Writer
	err  io.Writer
	exit func(int)

	successStyle lipgloss.Style
	failureStyle lipgloss.Style
}

// Option configures a Console.
type Option func(*Console)

// WithOutput sets the stream for Success messages.
func WithOutput(w io.Writer) Option {
	return func(c *Console) {
		c.out = w
	}
}

// WithErrOutput sets the stream for Failure messages.
func WithErrOutput(w io.Writer) Option {
	return func(c *Console) {
		c.err = w
	}
}

// WithExit sets the function invoked to terminate the process. Useful for
// testing FailIfError.
func WithExit(fn func(int)) Option {
	return func(c *Console) {
		c.exit = fn
	}
}

// New creates a Console writing to os.Stdout and os.Stderr and exiting via
// os.Exit, adjusted by opts. Styling degrades to plain text when a stream
// is not a terminal.
func New(opts ...Option) *Console {
	c := &Console{
		out:  os.Stdout,
		err:  os.Stderr,
		exit: os.Exit,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.successStyle = lipgloss.NewRenderer(c.out).NewStyle().Foreground(lipgloss.Color("42"))
	c.failureStyle = lipgloss.NewRenderer(c.err).NewStyle().Foreground(lipgloss.Color("196"))
	return c
}

// Report writes the outcome's message to the stream matching its variant:
// Success to the output stream, Failure to the error stream.
func (c *Console) Report(o Outcome) {
	if o.Succeeded() {
		fmt.Fprintln(c.out, c.successStyle.Render(o.Message()))
		return
	}
	fmt.Fprintln(c.err, c.failureStyle.Render(o.Message()))
}

// FailIfError does nothing for a Success. For a Failure it writes the
// message to the error stream and terminates the process with status.
func (c *Console) FailIfError(o Outcome, status int) {
	if o.Succeeded() {
		return
	}
	fmt.Fprintln(c.err, c.failureStyle.Render(o.Message()))
	c.exit(status)
}
