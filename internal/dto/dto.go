// Package dto provides the reflective plumbing shared by every request and
// result shape in smmodel: value equality, hashing, and string rendering.
//
// Shapes only carry exported fields of these kinds: pointers to scalars or
// time.Time, pointers to nested shapes, slices, string-keyed maps, and
// string-based enums. Anything else is rendered with fmt and hashed through
// its fmt representation.
package dto

import (
	"github.com/google/go-cmp/cmp"
)

// SensitiveTag is the struct tag that hides a field's value from String output.
// Fields tagged `sensitive:"true"` still take part in equality and hashing.
const SensitiveTag = "sensitive"

// Redacted replaces sensitive values in String output.
const Redacted = "<sensitive>"

// Equal reports whether a and b hold identical field values.
// Two nil pointers are equal; a nil and a non-nil pointer are not.
// Timestamps compare by instant, and nil slices differ from empty ones.
func Equal[T any](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}

	return cmp.Equal(*a, *b)
}
