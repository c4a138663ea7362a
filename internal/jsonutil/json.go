// Package jsonutil pretty prints JSON secret values.
package jsonutil

import (
	"encoding/json"
	"io"

	"github.com/mpyw/smkit/internal/cli/output"
)

// TryFormat indents value when it is valid JSON. Object keys come out
// sorted, which keeps diffs of reordered documents quiet.
func TryFormat(value string) (string, bool) {
	var data any
	if err := json.Unmarshal([]byte(value), &data); err != nil {
		return value, false
	}

	formatted, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return value, false
	}

	return string(formatted), true
}

// TryFormatOrWarn formats value, or warns on errW and returns it unchanged.
func TryFormatOrWarn(value string, errW io.Writer, name string) string {
	if formatted, ok := TryFormat(value); ok {
		return formatted
	}

	warn(errW, name)

	return value
}

// TryFormatPair formats both values only when both are JSON, so a diff never
// compares a formatted value with a raw one.
func TryFormatPair(a, b string, errW io.Writer) (string, string) {
	fa, okA := TryFormat(a)
	fb, okB := TryFormat(b)

	if okA && okB {
		return fa, fb
	}

	warn(errW, "")

	return a, b
}

func warn(w io.Writer, name string) {
	if name == "" {
		output.Warning(w, "--parse-json has no effect: value is not valid JSON")

		return
	}

	output.Warning(w, "--parse-json has no effect for %s: value is not valid JSON", name)
}
