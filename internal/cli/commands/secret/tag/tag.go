// Package tag provides the Secrets Manager tag command.
package tag

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/smkit/internal/cli/commands/internal"
	"github.com/mpyw/smkit/internal/cli/output"
	"github.com/mpyw/smkit/internal/maputil"
	"github.com/mpyw/smkit/internal/usecase/secret"
)

// Runner executes the tag command.
type Runner struct {
	UseCase *secret.TagUseCase
	Stdout  io.Writer
	Stderr  io.Writer
}

// Options holds the options for the tag command.
type Options struct {
	Name string
	Tags map[string]string
}

// Command returns the tag command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "tag",
		Usage:     "Add or update tags on a secret",
		ArgsUsage: "<name> <key>=<value>...",
		Description: `Add or update one or more tags on a secret.
Existing tags with other keys are left as they are.

EXAMPLES:
   smkit secret tag my-secret env=prod
   smkit secret tag my-secret env=prod team=backend`,
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 2 {
		return fmt.Errorf("usage: smkit secret tag <name> <key>=<value>...")
	}

	tags, err := maputil.ParsePairs(cmd.Args().Tail())
	if err != nil {
		return fmt.Errorf("invalid tag: %w", err)
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
		Name: cmd.Args().First(),
		Tags: tags,
	})
}

// Run executes the tag command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	if err := r.UseCase.Tag(ctx, secret.TagInput{
		Name: opts.Name,
		Tags: opts.Tags,
	}); err != nil {
		return err
	}

	output.Success(r.Stdout, "Tagged secret %s (%d tag(s))", opts.Name, len(opts.Tags))

	return nil
}
