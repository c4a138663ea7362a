// Package update provides the Secrets Manager update command.
package update

import (
	"context"
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/smkit/internal/cli/commands/internal"
	"github.com/mpyw/smkit/internal/cli/confirm"
	"github.com/mpyw/smkit/internal/cli/output"
	"github.com/mpyw/smkit/internal/cli/prompt"
	"github.com/mpyw/smkit/internal/usecase/secret"
)

// Runner executes the update command.
type Runner struct {
	UseCase  *secret.UpdateUseCase
	Prompter *confirm.Prompter
	Stdout   io.Writer
	Stderr   io.Writer
}

// Options holds the options for the update command. Nil fields are left unchanged.
type Options struct {
	Name        string
	Value       *string
	Description *string
	KmsKeyID    *string
	Yes         bool
}

// Command returns the update command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "update",
		Usage:     "Update a secret value or its metadata",
		ArgsUsage: "<name> [value]",
		Description: `Update an existing secret.

A new value creates a new version. AWSCURRENT moves to it and the
previous version gets AWSPREVIOUS. --description and --kms-key-id change
metadata; given alone, no new version is created.

Without a value and without metadata flags the value is read from
standard input. Pass --yes when piping, as the confirmation also reads
standard input.

EXAMPLES:
  smkit secret update my-api-key "new-key-value"            Update with new value
  smkit secret update my-config '{"host":"new-db.com"}'     Update JSON secret
  smkit secret update --description "rotated" my-api-key    Change description only
  smkit secret update --yes my-api-key "new-key-value"      Update without confirmation`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "description",
				Usage: "Update secret description",
			},
			&cli.StringFlag{
				Name:  "kms-key-id",
				Usage: "Re-encrypt future versions with this KMS key",
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
		return fmt.Errorf("usage: smkit secret update <name> [value]")
	}

	opts := Options{
		Name: cmd.Args().First(),
		Yes:  cmd.Bool("yes"),
	}

	if cmd.IsSet("description") {
		opts.Description = lo.ToPtr(cmd.String("description"))
	}

	if cmd.IsSet("kms-key-id") {
		opts.KmsKeyID = lo.ToPtr(cmd.String("kms-key-id"))
	}

	value := prompt.NewSecret(nil)

	if cmd.Args().Len() > 1 || (opts.Description == nil && opts.KmsKeyID == nil) {
		var err error
		if value, err = cliinternal.ReadValue(cmd, 1, "New value"); err != nil {
			return err
		}

		opts.Value = lo.ToPtr("")
	}

	cfg := cliinternal.LoadConfig(cmd)

	client, err := cliinternal.SecretClient(ctx, cmd, cfg)
	if err != nil {
		return err
	}

	r := &Runner{
		UseCase:  &secret.UpdateUseCase{Client: client},
		Prompter: cliinternal.Prompter(ctx, cmd, cfg, opts.Yes),
		Stdout:   cmd.Root().Writer,
		Stderr:   cliinternal.ErrWriter(cmd),
	}

	return value.Use(func(v string) error {
		if opts.Value != nil {
			opts.Value = &v
		}

		return r.Run(ctx, opts)
	})
}

// Run executes the update command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	if !opts.Yes && opts.Value != nil {
		if current, err := r.UseCase.GetCurrentValue(ctx, opts.Name); err == nil {
			if diff := output.Diff(opts.Name+" (AWS)", opts.Name+" (new)", current, *opts.Value); diff != "" {
				output.Print(r.Stderr, diff)
			}
		}
	}

	confirmed, err := r.Prompter.Confirm("Update secret "+opts.Name+"?", opts.Yes)
	if err != nil {
		return err
	}

	if !confirmed {
		return nil
	}

	result, err := r.UseCase.Execute(ctx, secret.UpdateInput{
		Name:        opts.Name,
		Value:       opts.Value,
		Description: opts.Description,
		KmsKeyID:    opts.KmsKeyID,
	})
	if err != nil {
		return err
	}

	if result.VersionID == "" {
		output.Success(r.Stdout, "Updated secret %s", result.Name)
	} else {
		output.Success(r.Stdout, "Updated secret %s (version: %s)", result.Name, result.VersionID)
	}

	return nil
}
