// Package maputil works with string maps such as secret tags.
package maputil

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// ErrInvalidPair is returned for a KEY=VALUE argument without "=" or key.
var ErrInvalidPair = errors.New("expected KEY=VALUE")

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := lo.Keys(m)
	slices.Sort(keys)

	return keys
}

// ParsePairs parses KEY=VALUE arguments. The value may be empty or contain "=".
// A repeated key keeps the last value.
func ParsePairs(args []string) (map[string]string, error) {
	pairs := make(map[string]string, len(args))

	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPair, arg)
		}

		pairs[key] = value
	}

	return pairs, nil
}
