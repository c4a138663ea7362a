package secretref

import (
	"fmt"
	"strconv"
)

// parseShift sums Git-like shift specifiers: ~, ~N, ~~, ~1~2.
func parseShift(s string) (int, error) {
	total := 0

	for i := 0; i < len(s); {
		if s[i] != '~' {
			return 0, fmt.Errorf("unexpected characters: %s", s[i:])
		}

		i++
		if i < len(s) && !isDigit(s[i]) && s[i] != '~' {
			return 0, fmt.Errorf("invalid shift: ~ followed by %q", s[i:])
		}

		numStart := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}

		if numStart == i {
			total++

			continue
		}

		n, err := strconv.Atoi(s[numStart:i])
		if err != nil {
			return 0, fmt.Errorf("shift number too large: %s", s[numStart:i])
		}

		total += n
	}

	return total, nil
}

func isShiftStart(s string, i int) bool {
	return s[i] == '~' && (i+1 >= len(s) || isDigit(s[i+1]) || s[i+1] == '~')
}

// applyShift moves back shift positions from base within a list of length items.
func applyShift(base, shift, length int) (int, error) {
	target := base + shift
	if target < 0 || target >= length {
		return 0, fmt.Errorf("version shift out of range: ~%d", shift)
	}

	return target, nil
}
