// Package stage provides the Secrets Manager stage command, which moves
// staging labels between versions.
package stage

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/smkit/internal/cli/commands/internal"
	"github.com/mpyw/smkit/internal/cli/confirm"
	"github.com/mpyw/smkit/internal/cli/output"
	"github.com/mpyw/smkit/internal/secretref"
	"github.com/mpyw/smkit/internal/usecase/secret"
	"github.com/mpyw/smkit/pkg/smmodel"
)

// Runner executes the stage command.
type Runner struct {
	UseCase  *secret.StageUseCase
	Prompter *confirm.Prompter
	Stdout   io.Writer
	Stderr   io.Writer
}

// Options holds the options for the stage command.
type Options struct {
	Ref    *secretref.Ref
	Label  string
	Remove bool
	Yes    bool
}

// Command returns the stage command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "stage",
		Aliases:   []string{"label"},
		Usage:     "Move a staging label to a version",
		ArgsUsage: "<name[#VERSION | :LABEL][~SHIFT]*> <label>",
		Description: `Attach a staging label to a version. A label is held by at most one
version, so it is detached from its current holder.

Moving AWSCURRENT rolls the secret back or forward and asks for
confirmation unless --yes is given.

Use --remove to detach the label from the referenced version.

EXAMPLES:
  smkit secret stage my-secret~ AWSCURRENT          Roll back to the previous version
  smkit secret stage 'my-secret#abc' AWSPENDING     Stage a version by ID
  smkit secret stage --remove my-secret~2 blue      Detach a custom label`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "remove",
				Usage: "Detach the label instead of attaching it",
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
	if cmd.Args().Len() < 2 {
		return fmt.Errorf("usage: smkit secret stage <ref> <label>")
	}

	ref, err := secretref.Parse(cmd.Args().Get(0))
	if err != nil {
		return err
	}

	opts := Options{
		Ref:    ref,
		Label:  cmd.Args().Get(1),
		Remove: cmd.Bool("remove"),
		Yes:    cmd.Bool("yes"),
	}

	cfg := cliinternal.LoadConfig(cmd)

	client, err := cliinternal.SecretClient(ctx, cmd, cfg)
	if err != nil {
		return err
	}

	r := &Runner{
		UseCase:  &secret.StageUseCase{Client: client},
		Prompter: cliinternal.Prompter(ctx, cmd, cfg, opts.Yes || opts.Label != smmodel.StageCurrent),
		Stdout:   cmd.Root().Writer,
		Stderr:   cliinternal.ErrWriter(cmd),
	}

	return r.Run(ctx, opts)
}

// Run executes the stage command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	skip := opts.Yes || opts.Label != smmodel.StageCurrent

	confirmed, err := r.Prompter.Confirm(fmt.Sprintf("Move %s of %s to %s?", opts.Label, opts.Ref.Name, opts.Ref), skip)
	if err != nil {
		return err
	}

	if !confirmed {
		return nil
	}

	result, err := r.UseCase.Execute(ctx, secret.StageInput{
		Ref:    opts.Ref,
		Label:  opts.Label,
		Remove: opts.Remove,
	})
	if err != nil {
		return err
	}

	switch {
	case result.Unchanged && opts.Remove:
		output.Warning(r.Stderr, "%s is not attached to the referenced version of %s", result.Label, result.Name)
	case result.Unchanged:
		output.Warning(r.Stderr, "%s already points at version %s of %s", result.Label, secretref.ShortID(result.ToVersionID), result.Name)
	case opts.Remove:
		output.Success(r.Stdout, "Removed %s from version %s of %s", result.Label, secretref.ShortID(result.FromVersionID), result.Name)
	case result.FromVersionID != "":
		output.Success(r.Stdout, "Moved %s of %s: %s -> %s", result.Label, result.Name,
			secretref.ShortID(result.FromVersionID), secretref.ShortID(result.ToVersionID))
	default:
		output.Success(r.Stdout, "Attached %s to version %s of %s", result.Label, secretref.ShortID(result.ToVersionID), result.Name)
	}

	return nil
}
