// Package secretref parses and resolves references to secret versions.
//
// Grammar:
//
//	<name>[#<version-id> | :<stage>]<shift>*
//
// Where <shift> is ~ or ~N, repeatable and cumulative. Shifts walk back
// through versions ordered by creation date, newest first.
//
// Examples: db-creds, db-creds#a1b2c3, db-creds:AWSPREVIOUS, db-creds~1,
// db-creds:AWSCURRENT~2, arn:aws:secretsmanager:us-east-1:123456789012:secret:db-creds-AbCdEf~1
package secretref

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors.
var (
	ErrEmpty          = errors.New("empty reference")
	ErrEmptyName      = errors.New("empty secret name")
	ErrAmbiguousTilde = errors.New("ambiguous tilde")
	ErrMultipleTarget = errors.New("both version ID and staging label specified")
	ErrInvalidID      = errors.New("# must be followed by a version ID")
	ErrInvalidStage   = errors.New(": must be followed by a staging label")
)

// arnColons is the number of colons inside a Secrets Manager ARN
// (arn:partition:secretsmanager:region:account:secret:name).
const arnColons = 6

// Ref is a parsed reference to one version of a secret.
type Ref struct {
	Name      string // secret name or ARN
	VersionID string // #ID, empty if unset
	Stage     string // :STAGE, empty if unset
	Shift     int    // ~N, 0 if unset
}

// HasTarget reports whether a version ID or staging label is set.
func (r *Ref) HasTarget() bool {
	return r.VersionID != "" || r.Stage != ""
}

// HasShift reports whether a relative shift is set.
func (r *Ref) HasShift() bool {
	return r.Shift > 0
}

// IsDefault reports whether r points at the default (AWSCURRENT) version.
func (r *Ref) IsDefault() bool {
	return !r.HasTarget() && !r.HasShift()
}

// String renders r back into reference syntax.
func (r *Ref) String() string {
	var b strings.Builder

	b.WriteString(r.Name)

	if r.VersionID != "" {
		b.WriteString("#" + r.VersionID)
	}

	if r.Stage != "" {
		b.WriteString(":" + r.Stage)
	}

	if r.Shift > 0 {
		fmt.Fprintf(&b, "~%d", r.Shift)
	}

	return b.String()
}

// Parse parses a secret version reference.
func Parse(input string) (*Ref, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmpty
	}

	nameEnd, err := findNameEnd(input)
	if err != nil {
		return nil, err
	}

	ref := &Ref{Name: input[:nameEnd]}
	if ref.Name == "" {
		return nil, ErrEmptyName
	}

	rest, err := parseTarget(input[nameEnd:], ref)
	if err != nil {
		return nil, err
	}

	if rest != "" {
		if ref.Shift, err = parseShift(rest); err != nil {
			return nil, err
		}
	}

	return ref, nil
}

// findNameEnd returns the index where the first specifier starts, or len(input).
func findNameEnd(input string) (int, error) {
	start := 0
	if strings.HasPrefix(input, "arn:") {
		start = skipColons(input, arnColons)
	}

	for i := start; i < len(input); i++ {
		switch input[i] {
		case '~':
			if isShiftStart(input, i) {
				return i, nil
			}

			if i+1 < len(input) && isLetter(input[i+1]) {
				return 0, fmt.Errorf("%w: use ~N for version shift", ErrAmbiguousTilde)
			}
		case '#':
			if i+1 < len(input) && isIDChar(input[i+1]) {
				return i, nil
			}

			return 0, ErrInvalidID
		case ':':
			if i+1 < len(input) && isStageChar(input[i+1]) {
				return i, nil
			}

			return 0, ErrInvalidStage
		}
	}

	return len(input), nil
}

// parseTarget consumes #ID and :STAGE specifiers and returns the remainder.
func parseTarget(s string, ref *Ref) (string, error) {
	for len(s) > 0 && s[0] != '~' {
		var isChar func(byte) bool

		switch s[0] {
		case '#':
			isChar = isIDChar
		case ':':
			isChar = isStageChar
		default:
			return "", fmt.Errorf("unexpected characters: %s", s)
		}

		end := 1
		for end < len(s) && isChar(s[end]) {
			end++
		}

		if ref.HasTarget() {
			return "", ErrMultipleTarget
		}

		if s[0] == '#' {
			ref.VersionID = s[1:end]
		} else {
			ref.Stage = s[1:end]
		}

		s = s[end:]
	}

	return s, nil
}

func skipColons(s string, n int) int {
	for i := range len(s) {
		if s[i] != ':' {
			continue
		}

		if n--; n == 0 {
			return i + 1
		}
	}

	return len(s)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIDChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '-'
}

func isStageChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '-' || c == '_'
}

// shortIDLen is the length of version IDs in compact output.
const shortIDLen = 8

// ShortID truncates a version ID for display.
func ShortID(versionID string) string {
	if len(versionID) <= shortIDLen {
		return versionID
	}

	return versionID[:shortIDLen]
}
