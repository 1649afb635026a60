// +build !windows

package util

import (
	"os"

	"golang.org/x/sys/unix"
)

// TerminalWidth returns the column count of the terminal behind the
// given file, or the fallback when it cannot be determined.
func TerminalWidth(f *os.File, fallback int) int {
	sz, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil || sz.Col == 0 {
		return fallback
	}
	return int(sz.Col)
}
