// Package pager pages long output through moor.
package pager

import (
	"bytes"
	"io"
	"strings"

	"github.com/walles/moor/v2/pkg/moor"

	"github.com/mpyw/smkit/internal/cli/terminal"
)

//nolint:gochecknoglobals // replaced in tests
var page = func(content string) error {
	return moor.PageFromString(content, moor.Options{})
}

// WithPagerWriter runs fn against stdout. When stdout is a terminal and the
// output is taller than it, the output is shown through moor instead.
func WithPagerWriter(stdout io.Writer, noPager bool, fn func(w io.Writer) error) error {
	if noPager || !terminal.IsTerminalWriter(stdout) {
		return fn(stdout)
	}

	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return err
	}

	if buf.Len() == 0 {
		return nil
	}

	if fits(buf.String(), terminal.Height(stdout)) {
		_, err := stdout.Write(buf.Bytes())

		return err
	}

	return page(buf.String())
}

// fits reports whether content fits above the prompt line of a terminal with height rows.
func fits(content string, height int) bool {
	if height <= 0 {
		return false
	}

	lines := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		lines++
	}

	return lines < height
}
