// Package untag provides the Secrets Manager untag command.
package untag

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/smkit/internal/cli/commands/internal"
	"github.com/mpyw/smkit/internal/cli/output"
	"github.com/mpyw/smkit/internal/usecase/secret"
)

// Runner executes the untag command.
type Runner struct {
	UseCase *secret.TagUseCase
	Stdout  io.Writer
	Stderr  io.Writer
}

// Options holds the options for the untag command.
type Options struct {
	Name    string
	TagKeys []string
}

// Command returns the untag command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "untag",
		Usage:     "Remove tags from a secret",
		ArgsUsage: "<name> <key>...",
		Description: `Remove one or more tags from a secret by key.
Keys that are not present are ignored.

EXAMPLES:
   smkit secret untag my-secret env
   smkit secret untag my-secret env team`,
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 2 {
		return fmt.Errorf("usage: smkit secret untag <name> <key>...")
	}

	client, err := cliinternal.SecretClient(ctx, cmd, cliinternal.LoadConfig(cmd))
	if err != nil {
		return err
	}

	r := &Runner{
		UseCase: &secret.TagUseCase{Client: client},
		Stdout:  cmd.Root().Writer,
		Stderr:  cliinternal.ErrWriter(cmd),
	}

	return r.Run(ctx, Options{
		Name:    cmd.Args().First(),
		TagKeys: cmd.Args().Tail(),
	})
}

// Run executes the untag command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	if err := r.UseCase.Untag(ctx, secret.UntagInput{
		Name:    opts.Name,
		TagKeys: opts.TagKeys,
	}); err != nil {
		return err
	}

	output.Success(r.Stdout, "Untagged secret %s (%d key(s))", opts.Name, len(opts.TagKeys))

	return nil
}
