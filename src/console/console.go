package console

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/tintty/tintty/src/attr"
)

// ErrTerminalUnavailable is reported when the console behind a device
// cannot be resolved or rejects a read or write. It is the only error
// kind raised by this package; callers compare with errors.Cause.
var ErrTerminalUnavailable = errors.New("terminal unavailable")

// Device is the console's attribute register. Implementations round-
// trip a complete attribute word; they never interpret its bits.
type Device interface {
	Attributes() (attr.Word, error)
	SetAttributes(attr.Word) error
}

// Writer interleaves attribute changes with ordinary text on a single
// output sink. Every change is applied synchronously at the point of
// insertion; nothing is buffered or reordered. The console attribute
// register is shared mutable state, so concurrent writers must be
// serialized by the caller.
type Writer struct {
	out io.Writer
	dev Device
}

func NewWriter(out io.Writer, dev Device) *Writer {
	return &Writer{out: out, dev: dev}
}

// Write passes text through to the sink unchanged.
func (w *Writer) Write(p []byte) (int, error) {
	return w.out.Write(p)
}

// Set replaces the console's entire attribute word. No prior state is
// read; every field not present in the word reverts to its zero
// default.
func (w *Writer) Set(word attr.Word) error {
	if err := w.dev.SetAttributes(word); err != nil {
		return errors.Wrap(err, "set attributes")
	}
	return nil
}

// Change updates only the bits named in the change's mask, preserving
// everything else bit for bit. When the initial read fails no write is
// attempted and the console keeps its last successfully applied state.
func (w *Writer) Change(c attr.Change) error {
	cur, err := w.dev.Attributes()
	if err != nil {
		return errors.Wrap(err, "read attributes")
	}
	return w.Set(c.ApplyTo(cur))
}

// Print writes its arguments to the sink left to right. An attr.Word
// replaces the whole attribute state at its position, an attr.Change
// updates its masked bits, and a Span prints its text under a
// temporary change. Anything else is formatted as plain text. All text
// arguments are written even when an attribute operation fails; the
// first failure is returned.
func (w *Writer) Print(args ...interface{}) error {
	var first error
	keep := func(err error) {
		if first == nil {
			first = err
		}
	}
	for _, arg := range args {
		switch v := arg.(type) {
		case attr.Word:
			keep(w.Set(v))
		case attr.Change:
			keep(w.Change(v))
		case Span:
			keep(w.PrintScoped(v.Change, v.Text))
		default:
			_, err := fmt.Fprint(w.out, v)
			keep(err)
		}
	}
	return first
}

// PrintScoped applies the change, writes the text, and restores the
// attribute state read before the change, so following text observes
// the pre-call state. When the initial read fails the text is still
// written, unstyled, and the failure is surfaced once.
func (w *Writer) PrintScoped(c attr.Change, text string) error {
	prev, err := w.dev.Attributes()
	if err != nil {
		if _, werr := io.WriteString(w.out, text); werr != nil {
			return werr
		}
		return errors.Wrap(err, "read attributes")
	}
	first := w.Set(c.ApplyTo(prev))
	if _, err := io.WriteString(w.out, text); err != nil && first == nil {
		first = err
	}
	if err := w.Set(prev); err != nil && first == nil {
		first = err
	}
	return first
}

// Span is a text fragment bracketed by a style change: printing it
// applies the change, emits the text, and restores the previous state.
type Span struct {
	Change attr.Change
	Text   string
}

// Styled returns a span printing text under the given change.
func Styled(c attr.Change, text string) Span {
	return Span{Change: c, Text: text}
}

// Underline returns a span printing text with the bottom bar set.
func Underline(text string) Span {
	return Styled(attr.Underline, text)
}

// Inverted returns a span printing text with foreground and background
// swapped.
func Inverted(text string) Span {
	return Styled(attr.InvertOn, text)
}

// With merges a further change into the span before its text is
// finalized. Merging follows attr.Change.Merge, so disjoint outer and
// inner changes compose freely.
func (s Span) With(c attr.Change) Span {
	return Span{Change: s.Change.Merge(c), Text: s.Text}
}
