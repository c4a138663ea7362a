// Package internal provides shared utilities for CLI commands.
package internal

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/mpyw/smkit/internal/cli/confirm"
	"github.com/mpyw/smkit/internal/cli/output"
	"github.com/mpyw/smkit/internal/cli/prompt"
	"github.com/mpyw/smkit/internal/config"
	"github.com/mpyw/smkit/internal/infra"
	"github.com/mpyw/smkit/pkg/smclient"
)

// CommandNotFound is a shared handler for unknown subcommands.
// It displays the command help and an error message.
func CommandNotFound(_ context.Context, cmd *cli.Command, command string) {
	_ = cli.ShowSubcommandHelp(cmd)
	output.Printf(ErrWriter(cmd), "\nUnknown command: %s\n", command)
}

// GlobalFlags returns the flags accepted by every command.
func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "region",
			Usage: "AWS region (overrides SMKIT_REGION and the SDK default)",
		},
		&cli.StringFlag{
			Name:  "profile",
			Usage: "Shared config profile (overrides SMKIT_PROFILE)",
		},
		&cli.StringFlag{
			Name:  "endpoint-url",
			Usage: "Custom Secrets Manager endpoint, e.g. LocalStack",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn or error",
		},
	}
}

// ErrWriter returns the error writer of the root command.
func ErrWriter(cmd *cli.Command) io.Writer {
	return lo.CoalesceOrEmpty(cmd.Root().ErrWriter, cmd.Root().Writer)
}

// Stdin returns the reader of the root command.
func Stdin(cmd *cli.Command) io.Reader {
	return lo.CoalesceOrEmpty[io.Reader](cmd.Root().Reader, os.Stdin)
}

// LoadConfig reads the environment and applies the global flags on top.
func LoadConfig(cmd *cli.Command) *config.Config {
	cfg := config.Load()
	cfg.Region = lo.CoalesceOrEmpty(cmd.String("region"), cfg.Region)
	cfg.Profile = lo.CoalesceOrEmpty(cmd.String("profile"), cfg.Profile)
	cfg.EndpointURL = lo.CoalesceOrEmpty(cmd.String("endpoint-url"), cfg.EndpointURL)
	cfg.LogLevel = lo.CoalesceOrEmpty(cmd.String("log-level"), cfg.LogLevel)

	return cfg
}

// SecretClient builds a Secrets Manager client that logs to the error writer.
func SecretClient(ctx context.Context, cmd *cli.Command, cfg *config.Config) (*smclient.Client, error) {
	client, err := infra.NewSecretClient(ctx, cfg, infra.NewLogger(cfg, ErrWriter(cmd)))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize AWS client: %w", err)
	}

	return client, nil
}

// Prompter returns a confirmation prompter. Unless skip is set, the caller
// identity is looked up so the prompt can show the target account.
func Prompter(ctx context.Context, cmd *cli.Command, cfg *config.Config, skip bool) *confirm.Prompter {
	p := &confirm.Prompter{
		Stdin:  Stdin(cmd),
		Stderr: ErrWriter(cmd),
	}

	if skip {
		return p
	}

	if identity, err := infra.GetAWSIdentity(ctx, cfg); err == nil {
		p.AccountID = identity.AccountID
		p.Region = identity.Region
		p.Profile = identity.Profile
	}

	return p
}

// ReadValue returns the argument at index i, or reads the value from
// standard input when the argument is absent.
func ReadValue(cmd *cli.Command, i int, label string) (*prompt.Secret, error) {
	if cmd.Args().Len() > i {
		return prompt.NewSecret([]byte(cmd.Args().Get(i))), nil
	}

	r := &prompt.Reader{
		Stdin:  Stdin(cmd),
		Stderr: ErrWriter(cmd),
	}

	return r.ReadSecret(label)
}
