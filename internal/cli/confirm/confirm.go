// Package confirm asks the user before destructive operations.
package confirm

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mpyw/smkit/internal/cli/colors"
)

// Prompter asks yes/no questions on Stderr and reads answers from Stdin.
type Prompter struct {
	Stdin  io.Reader
	Stderr io.Writer

	// AccountID, Region and Profile describe the target account. The target
	// line is shown only when AccountID is set.
	AccountID string
	Region    string
	Profile   string
}

// Confirm asks message and reports whether the answer was yes.
// skip answers yes without asking.
func (p *Prompter) Confirm(message string, skip bool) (bool, error) {
	if skip {
		return true, nil
	}

	p.printTarget()
	_, _ = fmt.Fprintf(p.Stderr, "%s %s [y/N]: ", colors.Warning("?"), message)

	return p.readYes()
}

// ConfirmDelete warns that target is about to be deleted and asks to continue.
func (p *Prompter) ConfirmDelete(target string, skip bool) (bool, error) {
	if skip {
		return true, nil
	}

	p.printTarget()
	_, _ = fmt.Fprintf(p.Stderr, "%s This will delete: %s\n", colors.Error("!"), target)
	_, _ = fmt.Fprintf(p.Stderr, "%s Continue? [y/N]: ", colors.Warning("?"))

	return p.readYes()
}

func (p *Prompter) printTarget() {
	if p.AccountID == "" {
		return
	}

	target := p.AccountID + " / " + p.Region
	if p.Profile != "" {
		target += " (" + p.Profile + ")"
	}

	_, _ = fmt.Fprintf(p.Stderr, "%s %s\n", colors.FieldLabel("Target:"), target)
}

func (p *Prompter) readYes() (bool, error) {
	answer, err := bufio.NewReader(p.Stdin).ReadString('\n')
	if err != nil && (err != io.EOF || answer == "") {
		return false, fmt.Errorf("failed to read response: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
