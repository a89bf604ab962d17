package ui

import (
	"fmt"
	"io"
)

// Reporter receives progress lines from operations that touch the filesystem.
type Reporter interface {
	Success(msg string)
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}

// Console writes status lines to an io.Writer
type Console struct {
	w io.Writer
}

var _ Reporter = (*Console)(nil)

// NewConsole returns a Console printing to w
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Writer returns the underlying writer
func (c *Console) Writer() io.Writer {
	return c.w
}

func (c *Console) Success(msg string) { fmt.Fprintln(c.w, SuccessLine(msg)) }
func (c *Console) Info(msg string)    { fmt.Fprintln(c.w, InfoLine(msg)) }
func (c *Console) Warning(msg string) { fmt.Fprintln(c.w, WarningLine(msg)) }
func (c *Console) Error(msg string)   { fmt.Fprintln(c.w, ErrorLine(msg)) }

// Println writes an undecorated line
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.w, a...)
}

// Printf writes undecorated formatted text
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.w, format, a...)
}

// Blank writes an empty line
func (c *Console) Blank() {
	fmt.Fprintln(c.w)
}
