// Package put provides the Secrets Manager put command.
package put

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/smkit/internal/cli/commands/internal"
	"github.com/mpyw/smkit/internal/cli/output"
	"github.com/mpyw/smkit/internal/usecase/secret"
)

// Runner executes the put command.
type Runner struct {
	UseCase *secret.PutUseCase
	Stdout  io.Writer
	Stderr  io.Writer
}

// Options holds the options for the put command.
type Options struct {
	Name   string
	Value  string
	Stages []string
}

// Command returns the put command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "put",
		Usage:     "Store a new version with chosen staging labels",
		ArgsUsage: "<name> [value]",
		Description: `Store a new version of a secret.

Without --stage the new version becomes AWSCURRENT. With --stage only the
given labels are attached, which lets you stage a value (for example as
AWSPENDING) before promoting it with 'smkit secret stage'.

When the value is omitted it is read from standard input.

EXAMPLES:
  smkit secret put my-secret "new-value"                     New current version
  smkit secret put --stage AWSPENDING my-secret "candidate"  Stage without promoting
  cat value.txt | smkit secret put my-secret                 Read value from a pipe`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "stage",
				Usage: "Staging label for the new version (can be specified multiple times)",
			},
		},
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return fmt.Errorf("usage: smkit secret put <name> [value]")
	}

	value, err := cliinternal.ReadValue(cmd, 1, "Value")
	if err != nil {
		return err
	}

	client, err := cliinternal.SecretClient(ctx, cmd, cliinternal.LoadConfig(cmd))
	if err != nil {
		return err
	}

	r := &Runner{
		UseCase: &secret.PutUseCase{Client: client},
		Stdout:  cmd.Root().Writer,
		Stderr:  cliinternal.ErrWriter(cmd),
	}

	return value.Use(func(v string) error {
		return r.Run(ctx, Options{
			Name:   cmd.Args().First(),
			Value:  v,
			Stages: cmd.StringSlice("stage"),
		})
	})
}

// Run executes the put command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	result, err := r.UseCase.Execute(ctx, secret.PutInput{
		Name:   opts.Name,
		Value:  opts.Value,
		Stages: opts.Stages,
	})
	if err != nil {
		return err
	}

	output.Success(r.Stdout, "Stored version %s of %s %s", result.VersionID, result.Name, output.Stages(result.Stages))

	return nil
}
