// Package diff provides the Secrets Manager diff command.
package diff

import (
	"context"
	"io"

	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/smkit/internal/cli/commands/internal"
	"github.com/mpyw/smkit/internal/cli/output"
	"github.com/mpyw/smkit/internal/cli/pager"
	"github.com/mpyw/smkit/internal/jsonutil"
	"github.com/mpyw/smkit/internal/secretref"
	"github.com/mpyw/smkit/internal/usecase/secret"
)

// Runner executes the diff command.
type Runner struct {
	UseCase *secret.DiffUseCase
	Stdout  io.Writer
	Stderr  io.Writer
}

// Options holds the options for the diff command.
type Options struct {
	Ref1      *secretref.Ref
	Ref2      *secretref.Ref
	ParseJSON bool
	NoPager   bool
}

// Command returns the diff command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "diff",
		Usage:     "Show differences between two secret versions",
		ArgsUsage: "<ref1> [ref2] | <name> <version1> [version2]",
		Description: `Compare two versions of a secret in unified diff format.
With one reference, it is compared against AWSCURRENT.

A version argument starting with #, : or ~ inherits the secret name
of the first argument.

EXAMPLES:
  smkit secret diff my-secret~                    Previous vs current
  smkit secret diff my-secret :AWSPREVIOUS        AWSPREVIOUS vs current
  smkit secret diff my-secret '#abc' '#def'       Two versions by ID
  smkit secret diff app/dev app/prod              Two different secrets
  smkit secret diff --parse-json my-secret~       Diff formatted JSON`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "parse-json",
				Aliases: []string{"j"},
				Usage:   "Format JSON values before diffing (keys are always sorted)",
			},
			&cli.BoolFlag{
				Name:  "no-pager",
				Usage: "Disable pager output",
			},
		},
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	ref1, ref2, err := secretref.ParseDiffArgs(cmd.Args().Slice())
	if err != nil {
		return err
	}

	client, err := cliinternal.SecretClient(ctx, cmd, cliinternal.LoadConfig(cmd))
	if err != nil {
		return err
	}

	opts := Options{
		Ref1:      ref1,
		Ref2:      ref2,
		ParseJSON: cmd.Bool("parse-json"),
		NoPager:   cmd.Bool("no-pager"),
	}

	return pager.WithPagerWriter(cmd.Root().Writer, opts.NoPager, func(w io.Writer) error {
		r := &Runner{
			UseCase: &secret.DiffUseCase{Client: client},
			Stdout:  w,
			Stderr:  cliinternal.ErrWriter(cmd),
		}

		return r.Run(ctx, opts)
	})
}

// Run executes the diff command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	result, err := r.UseCase.Execute(ctx, secret.DiffInput{
		Ref1: opts.Ref1,
		Ref2: opts.Ref2,
	})
	if err != nil {
		return err
	}

	oldValue, newValue := result.OldValue, result.NewValue
	if opts.ParseJSON {
		oldValue, newValue = jsonutil.TryFormatPair(oldValue, newValue, r.Stderr)
	}

	if oldValue == newValue {
		output.Warning(r.Stderr, "comparing identical versions")
		output.Hint(r.Stderr, "To compare with previous version, use: smkit secret diff %s~", opts.Ref1.Name)

		return nil
	}

	diff := output.Diff(
		result.OldName+"#"+secretref.ShortID(result.OldVersionID),
		result.NewName+"#"+secretref.ShortID(result.NewVersionID),
		oldValue,
		newValue,
	)
	output.Print(r.Stdout, diff)

	return nil
}
