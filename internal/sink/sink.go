// Package sink wraps output destinations with the two facts the listing
// needs from them: whether a person is watching, and how wide the screen is.
package sink

import (
	"bytes"
	"io"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Sink is an output destination.
type Sink interface {
	io.Writer
	// IsTerminal reports whether output goes to an interactive terminal.
	// Colors and reset sequences are only written when it does.
	IsTerminal() bool
	// Width returns the terminal width in columns, if it can be queried.
	Width() (int, bool)
}

type fdWriter interface {
	io.Writer
	Fd() uintptr
}

// Writer is a Sink over an arbitrary io.Writer. Writers backed by a file
// descriptor (such as *os.File) are probed for a terminal.
type Writer struct {
	w        io.Writer
	fd       uintptr
	terminal bool
}

// New wraps w.
func New(w io.Writer) *Writer {
	s := &Writer{w: w}
	if f, ok := w.(fdWriter); ok {
		s.fd = f.Fd()
		s.terminal = isatty.IsTerminal(s.fd) || isatty.IsCygwinTerminal(s.fd)
	}
	return s
}

func (s *Writer) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

// IsTerminal implements Sink.
func (s *Writer) IsTerminal() bool {
	return s.terminal
}

// Width implements Sink.
func (s *Writer) Width() (int, bool) {
	if !s.terminal {
		return 0, false
	}
	width, _, err := term.GetSize(int(s.fd))
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}

// Buffer is an in-memory Sink for tests and for capturing output.
type Buffer struct {
	bytes.Buffer
	Terminal bool
	Columns  int
}

// IsTerminal implements Sink.
func (b *Buffer) IsTerminal() bool {
	return b.Terminal
}

// Width implements Sink. A zero Columns means the width is unknown.
func (b *Buffer) Width() (int, bool) {
	return b.Columns, b.Columns > 0
}
