package secretref

import (
	"errors"
	"fmt"
	"strings"
)

// DiffUsage is the argument synopsis of the diff command.
const DiffUsage = "usage: smkit secret diff <ref1> [ref2] | <name> <version1> [version2]"

// specifierPrefixes start a version specifier that inherits the secret name.
const specifierPrefixes = "#:~"

// ParseDiffArgs turns diff command arguments into the old and new references.
//
//   - ref                  compares ref against AWSCURRENT
//   - ref1 ref2            compares two full references
//   - name suffix          compares name+suffix against AWSCURRENT
//   - ref suffix           compares ref against ref.Name+suffix
//   - name suffix1 suffix2 compares name+suffix1 against name+suffix2
func ParseDiffArgs(args []string) (*Ref, *Ref, error) {
	switch len(args) {
	case 1:
		ref, err := Parse(args[0])
		if err != nil {
			return nil, nil, fmt.Errorf("invalid reference: %w", err)
		}

		return ref, &Ref{Name: ref.Name}, nil
	case 2:
		return parseTwo(args[0], args[1])
	case 3:
		old, err := Parse(args[0] + args[1])
		if err != nil {
			return nil, nil, fmt.Errorf("invalid version1: %w", err)
		}

		cur, err := Parse(args[0] + args[2])
		if err != nil {
			return nil, nil, fmt.Errorf("invalid version2: %w", err)
		}

		return old, cur, nil
	default:
		return nil, nil, errors.New(DiffUsage)
	}
}

func parseTwo(arg1, arg2 string) (*Ref, *Ref, error) {
	first, err := Parse(arg1)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid first argument: %w", err)
	}

	if arg2 == "" || !strings.ContainsRune(specifierPrefixes, rune(arg2[0])) {
		second, err := Parse(arg2)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid second argument: %w", err)
		}

		return first, second, nil
	}

	second, err := Parse(first.Name + arg2)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid second argument: %w", err)
	}

	if first.IsDefault() {
		return second, &Ref{Name: first.Name}, nil
	}

	return first, second, nil
}
