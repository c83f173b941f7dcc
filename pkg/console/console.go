// Package console writes the human-readable progress lines of the tools.
package console

import (
	"fmt"
	"io"
)

// Console prints progress to Out and warnings or failures to Err.
type Console struct {
	Out io.Writer
	Err io.Writer
}

// New returns a Console writing to the given streams; nil streams are discarded.
func New(out, errOut io.Writer) *Console {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	return &Console{Out: out, Err: errOut}
}

// Discard returns a Console that drops every line.
func Discard() *Console {
	return New(nil, nil)
}

// Printf writes a formatted line to Out.
func (c *Console) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Out, format+"\n", args...)
}

// Warnf writes a formatted line to Err.
func (c *Console) Warnf(format string, args ...interface{}) {
	fmt.Fprintf(c.Err, format+"\n", args...)
}
