// Package restore provides the Secrets Manager restore command.
package restore

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/smkit/internal/cli/commands/internal"
	"github.com/mpyw/smkit/internal/cli/output"
	"github.com/mpyw/smkit/internal/usecase/secret"
)

// Runner executes the restore command.
type Runner struct {
	UseCase *secret.RestoreUseCase
	Stdout  io.Writer
	Stderr  io.Writer
}

// Options holds the options for the restore command.
type Options struct {
	Name string
}

// Command returns the restore command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "restore",
		Usage:     "Restore a deleted secret",
		ArgsUsage: "<name>",
		Description: `Cancel the scheduled deletion of a secret within its recovery window.

Secrets deleted with --force cannot be restored.

EXAMPLES:
   smkit secret restore my-secret`,
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return fmt.Errorf("usage: smkit secret restore <name>")
	}

	client, err := cliinternal.SecretClient(ctx, cmd, cliinternal.LoadConfig(cmd))
	if err != nil {
		return err
	}

	r := &Runner{
		UseCase: &secret.RestoreUseCase{Client: client},
		Stdout:  cmd.Root().Writer,
		Stderr:  cliinternal.ErrWriter(cmd),
	}

	return r.Run(ctx, Options{Name: cmd.Args().First()})
}

// Run executes the restore command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	result, err := r.UseCase.Execute(ctx, secret.RestoreInput{Name: opts.Name})
	if err != nil {
		return err
	}

	output.Success(r.Stdout, "Restored secret %s", result.Name)

	return nil
}
