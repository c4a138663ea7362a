// Package rotate provides the Secrets Manager rotate and cancel-rotation commands.
package rotate

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/smkit/internal/cli/commands/internal"
	"github.com/mpyw/smkit/internal/cli/output"
	"github.com/mpyw/smkit/internal/secretref"
	"github.com/mpyw/smkit/internal/usecase/secret"
)

// Runner executes the rotate and cancel-rotation commands.
type Runner struct {
	UseCase *secret.RotateUseCase
	Stdout  io.Writer
	Stderr  io.Writer
}

// Options holds the options for the rotate command.
type Options struct {
	Name      string
	LambdaARN string
	AfterDays int64
}

// Command returns the rotate command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "rotate",
		Usage:     "Rotate a secret now",
		ArgsUsage: "<name>",
		Description: `Start an immediate rotation with the secret's rotation function.

--lambda sets or replaces the rotation function. --after-days turns on
automatic rotation on that schedule. Without them the configured
rotation is used.

EXAMPLES:
  smkit secret rotate my-secret                                 Rotate now
  smkit secret rotate --lambda arn:aws:lambda:... my-secret     Set the rotation function
  smkit secret rotate --after-days 30 my-secret                 Rotate every 30 days`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "lambda",
				Usage: "ARN of the Lambda rotation function",
			},
			&cli.Int64Flag{
				Name:  "after-days",
				Usage: "Rotate automatically every N days (1-1000)",
			},
		},
		Action: action,
	}
}

// CancelCommand returns the cancel-rotation command.
func CancelCommand() *cli.Command {
	return &cli.Command{
		Name:      "cancel-rotation",
		Usage:     "Turn off automatic rotation",
		ArgsUsage: "<name>",
		Description: `Turn off automatic rotation of a secret. A rotation in progress is
abandoned and its AWSPENDING version is left in place; remove the label
with 'smkit secret stage --remove' before rotating again.

EXAMPLES:
  smkit secret cancel-rotation my-secret`,
		Action: cancelAction,
	}
}

func newRunner(ctx context.Context, cmd *cli.Command) (*Runner, error) {
	client, err := cliinternal.SecretClient(ctx, cmd, cliinternal.LoadConfig(cmd))
	if err != nil {
		return nil, err
	}

	return &Runner{
		UseCase: &secret.RotateUseCase{Client: client},
		Stdout:  cmd.Root().Writer,
		Stderr:  cliinternal.ErrWriter(cmd),
	}, nil
}

func action(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return fmt.Errorf("usage: smkit secret rotate <name>")
	}

	r, err := newRunner(ctx, cmd)
	if err != nil {
		return err
	}

	return r.Run(ctx, Options{
		Name:      cmd.Args().First(),
		LambdaARN: cmd.String("lambda"),
		AfterDays: cmd.Int64("after-days"),
	})
}

func cancelAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return fmt.Errorf("usage: smkit secret cancel-rotation <name>")
	}

	r, err := newRunner(ctx, cmd)
	if err != nil {
		return err
	}

	return r.Cancel(ctx, cmd.Args().First())
}

// Run executes the rotate command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	result, err := r.UseCase.Execute(ctx, secret.RotateInput{
		Name:      opts.Name,
		LambdaARN: opts.LambdaARN,
		AfterDays: opts.AfterDays,
	})
	if err != nil {
		return err
	}

	output.Success(r.Stdout, "Started rotation of %s (pending version: %s)", result.Name, secretref.ShortID(result.VersionID))

	return nil
}

// Cancel executes the cancel-rotation command.
func (r *Runner) Cancel(ctx context.Context, name string) error {
	result, err := r.UseCase.Cancel(ctx, name)
	if err != nil {
		return err
	}

	output.Success(r.Stdout, "Canceled rotation of %s", result.Name)

	if result.VersionID != "" {
		output.Hint(r.Stderr, "version %s still holds AWSPENDING; remove it with: smkit secret stage --remove '%s#%s' AWSPENDING",
			secretref.ShortID(result.VersionID), result.Name, result.VersionID)
	}

	return nil
}
