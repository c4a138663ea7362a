// Package colors holds the color functions of CLI output.
// fatih/color disables them when stdout is not a terminal or NO_COLOR is set.
package colors

import "github.com/fatih/color"

//nolint:gochecknoglobals // immutable after package load
var (
	// FieldLabel formats labels such as "Name:".
	FieldLabel = color.New(color.FgCyan).SprintFunc()

	// VersionID formats version IDs in log output.
	VersionID = color.New(color.FgYellow).SprintFunc()

	// Stage formats staging labels other than AWSCURRENT.
	Stage = color.New(color.FgMagenta).SprintFunc()

	// Current formats the AWSCURRENT label.
	Current = color.New(color.FgGreen, color.Bold).SprintFunc()

	Warning = color.New(color.FgYellow).SprintFunc()
	Error   = color.New(color.FgRed).SprintFunc()
	Success = color.New(color.FgGreen).SprintFunc()
	Info    = color.New(color.FgCyan).SprintFunc()

	DiffHeader  = color.New(color.Bold).SprintFunc()
	DiffHunk    = color.New(color.FgCyan).SprintFunc()
	DiffAdded   = color.New(color.FgGreen).SprintFunc()
	DiffRemoved = color.New(color.FgRed).SprintFunc()
)
