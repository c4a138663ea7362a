// Package terminal detects terminals and their size.
package terminal

import (
	"io"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Fder is implemented by *os.File.
type Fder interface {
	Fd() uintptr
}

//nolint:gochecknoglobals // replaced in tests
var (
	// IsTTY reports whether fd is a terminal.
	IsTTY = isatty.IsTerminal
	// GetSize returns the width and height of the terminal fd.
	GetSize = term.GetSize
)

// FdOf returns the file descriptor of v when v is a terminal.
func FdOf(v any) (int, bool) {
	f, ok := v.(Fder)
	if !ok || !IsTTY(f.Fd()) {
		return 0, false
	}

	return int(f.Fd()), true
}

// IsTerminalWriter reports whether w writes to a terminal.
func IsTerminalWriter(w io.Writer) bool {
	_, ok := FdOf(w)

	return ok
}

// Height returns the number of rows of the terminal behind w, or 0 when unknown.
func Height(w io.Writer) int {
	fd, ok := FdOf(w)
	if !ok {
		return 0
	}

	_, height, err := GetSize(fd)
	if err != nil || height < 0 {
		return 0
	}

	return height
}
