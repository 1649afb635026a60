// +build windows

package util

import (
	"os"

	"golang.org/x/sys/windows"
)

// TerminalWidth returns the column count of the console behind the
// given file, or the fallback when it cannot be determined.
func TerminalWidth(f *os.File, fallback int) int {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(f.Fd()), &info); err != nil {
		return fallback
	}
	return int(info.Window.Right-info.Window.Left) + 1
}
