package smmodel

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the root of every error raised by this package.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDuplicateKey is returned when a map entry is added under a key that is already present.
	ErrDuplicateKey = fmt.Errorf("%w: duplicate key", ErrInvalidArgument)
)

func duplicateKeyError(key string) error {
	return fmt.Errorf("%w %q", ErrDuplicateKey, key)
}

func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
}
