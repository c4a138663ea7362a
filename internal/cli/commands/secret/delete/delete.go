// Package delete provides the Secrets Manager delete command.
package delete

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/smkit/internal/cli/commands/internal"
	"github.com/mpyw/smkit/internal/cli/confirm"
	"github.com/mpyw/smkit/internal/cli/output"
	"github.com/mpyw/smkit/internal/usecase/secret"
)

// Runner executes the delete command.
type Runner struct {
	UseCase  *secret.DeleteUseCase
	Prompter *confirm.Prompter
	Stdout   io.Writer
	Stderr   io.Writer
}

// Options holds the options for the delete command.
type Options struct {
	Name           string
	Force          bool
	RecoveryWindow int64
	Yes            bool
}

// Command returns the delete command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Delete a secret",
		ArgsUsage: "<name>",
		Description: `Schedule a secret for deletion in AWS Secrets Manager.

By default, secrets are scheduled for deletion after a 30-day recovery
window. During this period, you can restore the secret using 'smkit secret restore'.

Use --force for immediate permanent deletion without a recovery window.
This action cannot be undone.

RECOVERY WINDOW:
   Minimum: 7 days
   Maximum: 30 days
   Default: 30 days

EXAMPLES:
   smkit secret delete my-secret                      Delete with 30-day recovery (with confirmation)
   smkit secret delete --recovery-window 7 my-secret  Delete with 7-day recovery
   smkit secret delete --force my-secret              Permanently delete immediately
   smkit secret delete --yes my-secret                Delete without confirmation`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Force deletion without recovery window",
			},
			&cli.Int64Flag{
				Name:  "recovery-window",
				Usage: "Number of days before permanent deletion (7-30)",
				Value: 30, //nolint:mnd // AWS Secrets Manager default recovery window
			},
			&cli.BoolFlag{
				Name:  "yes",
				Usage: "Skip confirmation prompt",
			},
		},
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return fmt.Errorf("usage: smkit secret delete <name>")
	}

	opts := Options{
		Name:           cmd.Args().First(),
		Force:          cmd.Bool("force"),
		RecoveryWindow: cmd.Int64("recovery-window"),
		Yes:            cmd.Bool("yes"),
	}

	cfg := cliinternal.LoadConfig(cmd)

	client, err := cliinternal.SecretClient(ctx, cmd, cfg)
	if err != nil {
		return err
	}

	r := &Runner{
		UseCase:  &secret.DeleteUseCase{Client: client},
		Prompter: cliinternal.Prompter(ctx, cmd, cfg, opts.Yes),
		Stdout:   cmd.Root().Writer,
		Stderr:   cliinternal.ErrWriter(cmd),
	}

	return r.Run(ctx, opts)
}

// Run executes the delete command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	if !opts.Yes {
		if current, _ := r.UseCase.GetCurrentValue(ctx, opts.Name); current != "" {
			output.Warning(r.Stderr, "Current value of %s:", opts.Name)
			output.Println(r.Stderr, "")
			output.Println(r.Stderr, output.Indent(current, "  "))
			output.Println(r.Stderr, "")
		}
	}

	confirmed, err := r.Prompter.ConfirmDelete(opts.Name, opts.Yes)
	if err != nil {
		return err
	}

	if !confirmed {
		return nil
	}

	result, err := r.UseCase.Execute(ctx, secret.DeleteInput{
		Name:           opts.Name,
		Force:          opts.Force,
		RecoveryWindow: opts.RecoveryWindow,
	})
	if err != nil {
		return err
	}

	if opts.Force {
		output.Warning(r.Stdout, "Permanently deleted secret %s", result.Name)
	} else {
		output.Warning(r.Stdout, "Scheduled deletion of secret %s (deletion date: %s)",
			result.Name,
			result.DeletionDate.Format(time.DateOnly),
		)
	}

	return nil
}
