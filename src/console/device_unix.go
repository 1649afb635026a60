// +build !windows

package console

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"github.com/tintty/tintty/src/attr"
)

// ansiDevice drives a VT-style terminal. The attribute register of
// such terminals cannot be read back, so the device shadows the last
// word it applied and answers reads from the shadow. With a single
// writer per console this round-trips exactly.
type ansiDevice struct {
	out io.Writer
	cur attr.Word
}

// NewDevice returns a Device bound to the terminal behind the given
// file, typically os.Stdout. It fails with ErrTerminalUnavailable when
// the file is not a terminal.
func NewDevice(f *os.File) (Device, error) {
	if !isatty.IsTerminal(f.Fd()) {
		return nil, errors.Wrap(ErrTerminalUnavailable, "not a terminal")
	}
	return &ansiDevice{out: f, cur: attr.Default}, nil
}

func (d *ansiDevice) Attributes() (attr.Word, error) {
	return d.cur, nil
}

func (d *ansiDevice) SetAttributes(w attr.Word) error {
	if _, err := io.WriteString(d.out, sgr(w)); err != nil {
		return errors.Wrapf(ErrTerminalUnavailable, "write attributes: %s", err)
	}
	d.cur = w
	return nil
}
