// +build windows

package console

import (
	"os"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"

	"github.com/tintty/tintty/src/attr"
)

var (
	kernel32                    = syscall.NewLazyDLL("kernel32.dll")
	procSetConsoleTextAttribute = kernel32.NewProc("SetConsoleTextAttribute")
)

// winDevice reads and writes the console attribute register directly.
// The attribute word layout is the register's own, so values pass
// through untranslated.
type winDevice struct {
	handle windows.Handle
}

// NewDevice returns a Device bound to the console behind the given
// file, typically os.Stdout. It fails with ErrTerminalUnavailable when
// the file has no console attached.
func NewDevice(f *os.File) (Device, error) {
	h := windows.Handle(f.Fd())
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(h, &info); err != nil {
		return nil, errors.Wrapf(ErrTerminalUnavailable, "console screen buffer info: %s", err)
	}
	return &winDevice{handle: h}, nil
}

func (d *winDevice) Attributes() (attr.Word, error) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(d.handle, &info); err != nil {
		return 0, errors.Wrapf(ErrTerminalUnavailable, "console screen buffer info: %s", err)
	}
	return attr.Word(info.Attributes), nil
}

func (d *winDevice) SetAttributes(w attr.Word) error {
	ret, _, err := procSetConsoleTextAttribute.Call(uintptr(d.handle), uintptr(w))
	if ret == 0 {
		return errors.Wrapf(ErrTerminalUnavailable, "set console text attribute: %s", err)
	}
	return nil
}
