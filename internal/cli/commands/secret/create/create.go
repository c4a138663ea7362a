// Package create provides the Secrets Manager create command.
package create

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

// Runner executes the create command.
type Runner struct {
	UseCase *secret.CreateUseCase
	Stdout  io.Writer
	Stderr  io.Writer
}

// Options holds the options for the create command.
type Options struct {
	Name        string
	Value       string
	Description string
	KmsKeyID    string
	Tags        map[string]string
}

// Command returns the create command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "create",
		Usage:     "Create a new secret",
		ArgsUsage: "<name> [value]",
		Description: `Create a new secret in AWS Secrets Manager.

Use this command for new secrets only. To store a new value in an
existing secret, use 'smkit secret update' or 'smkit secret put'.

When the value is omitted it is read from standard input. On a terminal
it is asked for twice without echo.

EXAMPLES:
   smkit secret create my-api-key "sk-12345"                      Create simple secret
   smkit secret create my-api-key                                 Prompt for the value
   smkit secret create --description "API Key for X" my-key "..." With description
   smkit secret create --tag env=prod --tag team=core my-key "..." With tags
   cat creds.json | smkit secret create my-config                 Read value from a pipe`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "description",
				Usage: "Description for the secret",
			},
			&cli.StringFlag{
				Name:  "kms-key-id",
				Usage: "KMS key used to encrypt the secret (default: aws/secretsmanager)",
			},
			&cli.StringSliceFlag{
				Name:  "tag",
				Usage: "Tag in key=value format (can be specified multiple times)",
			},
		},
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return fmt.Errorf("usage: smkit secret create <name> [value]")
	}

	tags, err := maputil.ParsePairs(cmd.StringSlice("tag"))
	if err != nil {
		return fmt.Errorf("invalid --tag: %w", err)
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
		UseCase: &secret.CreateUseCase{Client: client},
		Stdout:  cmd.Root().Writer,
		Stderr:  cliinternal.ErrWriter(cmd),
	}

	return value.Use(func(v string) error {
		return r.Run(ctx, Options{
			Name:        cmd.Args().First(),
			Value:       v,
			Description: cmd.String("description"),
			KmsKeyID:    cmd.String("kms-key-id"),
			Tags:        tags,
		})
	})
}

// Run executes the create command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	result, err := r.UseCase.Execute(ctx, secret.CreateInput{
		Name:        opts.Name,
		Value:       opts.Value,
		Description: opts.Description,
		KmsKeyID:    opts.KmsKeyID,
		Tags:        opts.Tags,
	})
	if err != nil {
		return err
	}

	output.Success(r.Stdout, "Created secret %s (version: %s)", result.Name, result.VersionID)

	return nil
}
