// Package output writes CLI output: labeled fields, indented values,
// colored diffs, JSON documents and user feedback messages.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/mpyw/smkit/internal/cli/colors"
)

// Format is the output format of a command.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat parses the --output flag. Anything but "json" is text.
func ParseFormat(s string) Format {
	if strings.EqualFold(s, string(FormatJSON)) {
		return FormatJSON
	}

	return FormatText
}

// Writer writes labeled fields.
type Writer struct {
	w io.Writer
}

// New returns a Writer on w.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Field writes "label: value".
func (o *Writer) Field(label, value string) {
	_, _ = fmt.Fprintf(o.w, "%s %s\n", colors.FieldLabel(label+":"), value)
}

// FieldIf writes the field only when value is not empty.
func (o *Writer) FieldIf(label, value string) {
	if value != "" {
		o.Field(label, value)
	}
}

// Separator writes an empty line.
func (o *Writer) Separator() {
	_, _ = fmt.Fprintln(o.w)
}

// Value writes value indented by two spaces.
func (o *Writer) Value(value string) {
	_, _ = fmt.Fprintln(o.w, Indent(value, "  "))
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// Warning writes "Warning: ..." in yellow.
//
//nolint:goprintffuncname
func Warning(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(w, colors.Warning("Warning: "+fmt.Sprintf(format, args...)))
}

// Hint writes "Hint: ..." in cyan.
//
//nolint:goprintffuncname
func Hint(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(w, colors.Info("Hint: "+fmt.Sprintf(format, args...)))
}

// Error writes "Error: ..." in red.
//
//nolint:goprintffuncname
func Error(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(w, colors.Error("Error: "+fmt.Sprintf(format, args...)))
}

// Success writes a green check mark followed by the message.
//
//nolint:goprintffuncname
func Success(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, "%s %s\n", colors.Success("✓"), fmt.Sprintf(format, args...))
}

// Printf writes a formatted message.
func Printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}

// Print writes msg as is.
func Print(w io.Writer, msg string) {
	_, _ = io.WriteString(w, msg)
}

// Println writes msg and a newline.
func Println(w io.Writer, msg string) {
	_, _ = fmt.Fprintln(w, msg)
}

// Diff returns the colored unified diff of two values.
// It returns "" when they are equal.
func Diff(oldName, newName, oldContent, newContent string) string {
	return colorDiff(DiffRaw(oldName, newName, oldContent, newContent))
}

// DiffRaw returns the unified diff of two values without colors.
func DiffRaw(oldName, newName, oldContent, newContent string) string {
	edits := udiff.Strings(oldContent, newContent)

	unified, err := udiff.ToUnifiedDiff(oldName, newName, oldContent, edits, udiff.DefaultContextLines)
	if err != nil {
		return ""
	}

	return unified.String()
}

func colorDiff(diff string) string {
	if diff == "" {
		return ""
	}

	var sb strings.Builder

	for line := range strings.Lines(diff) {
		body := strings.TrimSuffix(line, "\n")

		switch {
		case strings.HasPrefix(body, "---"), strings.HasPrefix(body, "+++"):
			sb.WriteString(colors.DiffHeader(body))
		case strings.HasPrefix(body, "@@"):
			sb.WriteString(colors.DiffHunk(body))
		case strings.HasPrefix(body, "+"):
			sb.WriteString(colors.DiffAdded(body))
		case strings.HasPrefix(body, "-"):
			sb.WriteString(colors.DiffRemoved(body))
		default:
			sb.WriteString(body)
		}

		sb.WriteString("\n")
	}

	return sb.String()
}

// Stages formats staging labels as "[AWSCURRENT label]". AWSCURRENT is
// highlighted. Empty input yields "".
func Stages(stages []string) string {
	if len(stages) == 0 {
		return ""
	}

	colored := make([]string, len(stages))
	for i, stage := range stages {
		if stage == "AWSCURRENT" {
			colored[i] = colors.Current(stage)
		} else {
			colored[i] = colors.Stage(stage)
		}
	}

	return "[" + strings.Join(colored, " ") + "]"
}

// Indent prefixes every non-empty line of s.
func Indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}

	return strings.Join(lines, "\n")
}
