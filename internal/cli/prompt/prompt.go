// Package prompt reads secret values from a terminal without echo, or from
// piped standard input. Values are held in an encrypted memguard enclave
// until they are used.
package prompt

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/awnumar/memguard"
	"golang.org/x/term"

	"github.com/mpyw/smkit/internal/cli/terminal"
)

// ErrMismatch is returned when the confirmation differs from the value.
var ErrMismatch = errors.New("values do not match")

//nolint:gochecknoglobals // replaced in tests
var readPassword = term.ReadPassword

// Secret is a value sealed in a memguard enclave.
type Secret struct {
	enclave *memguard.Enclave
}

// NewSecret seals data and wipes it.
func NewSecret(data []byte) *Secret {
	if len(data) == 0 {
		return &Secret{}
	}

	enclave := memguard.NewEnclave(data)
	memguard.WipeBytes(data)

	return &Secret{enclave: enclave}
}

// Use opens the enclave and passes the value to fn. The string must not be
// retained after fn returns.
func (s *Secret) Use(fn func(value string) error) error {
	if s.enclave == nil {
		return fn("")
	}

	lb, err := s.enclave.Open()
	if err != nil {
		return fmt.Errorf("failed to open secret buffer: %w", err)
	}
	defer lb.Destroy()

	return fn(lb.String())
}

// Reader reads secret values.
type Reader struct {
	Stdin  io.Reader
	Stderr io.Writer
}

// ReadSecret asks for a value twice when Stdin is a terminal. Otherwise it
// reads Stdin to EOF and drops one trailing newline.
func (r *Reader) ReadSecret(label string) (*Secret, error) {
	fd, ok := terminal.FdOf(r.Stdin)
	if !ok {
		return r.readAll()
	}

	first, err := r.readHidden(fd, label+": ")
	if err != nil {
		return nil, err
	}

	second, err := r.readHidden(fd, "Confirm "+label+": ")
	if err != nil {
		memguard.WipeBytes(first)

		return nil, err
	}
	defer memguard.WipeBytes(second)

	if !bytes.Equal(first, second) {
		memguard.WipeBytes(first)

		return nil, ErrMismatch
	}

	return NewSecret(first), nil
}

func (r *Reader) readHidden(fd int, prompt string) ([]byte, error) {
	_, _ = fmt.Fprint(r.Stderr, prompt)

	data, err := readPassword(fd)

	_, _ = fmt.Fprintln(r.Stderr)

	if err != nil {
		return nil, fmt.Errorf("failed to read value: %w", err)
	}

	return data, nil
}

func (r *Reader) readAll() (*Secret, error) {
	data, err := io.ReadAll(r.Stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read standard input: %w", err)
	}

	data = bytes.TrimSuffix(data, []byte("\n"))
	data = bytes.TrimSuffix(data, []byte("\r"))

	return NewSecret(data), nil
}
