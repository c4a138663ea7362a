// Package policy provides the Secrets Manager resource policy commands.
package policy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/smkit/internal/cli/commands/internal"
	"github.com/mpyw/smkit/internal/cli/output"
	"github.com/mpyw/smkit/internal/usecase/secret"
)

// Runner executes the policy commands.
type Runner struct {
	UseCase *secret.PolicyUseCase
	Stdout  io.Writer
	Stderr  io.Writer
}

// Options holds the options for the put and validate commands.
type Options struct {
	Name              string
	Policy            string
	BlockPublicPolicy bool
}

// Command returns the policy command with its subcommands.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "policy",
		Usage: "Manage the resource policy of a secret",
		Description: `Resource policies grant other principals access to a secret.

A policy is read from --file, or from standard input when --file is "-".

EXAMPLES:
   smkit secret policy get my-secret
   smkit secret policy put --file policy.json my-secret
   smkit secret policy validate --file policy.json
   smkit secret policy delete my-secret`,
		Commands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "Show the resource policy",
				ArgsUsage: "<name>",
				Action:    getAction,
			},
			{
				Name:      "put",
				Usage:     "Attach a resource policy",
				ArgsUsage: "<name>",
				Flags: []cli.Flag{
					fileFlag(),
					&cli.BoolFlag{
						Name:  "block-public-policy",
						Usage: "Reject policies that grant broad access",
					},
				},
				Action: putAction,
			},
			{
				Name:      "delete",
				Aliases:   []string{"rm"},
				Usage:     "Detach the resource policy",
				ArgsUsage: "<name>",
				Action:    deleteAction,
			},
			{
				Name:      "validate",
				Usage:     "Check a resource policy without attaching it",
				ArgsUsage: "[name]",
				Flags:     []cli.Flag{fileFlag()},
				Action:    validateAction,
			},
		},
		CommandNotFound: cliinternal.CommandNotFound,
	}
}

func fileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "file",
		Aliases:  []string{"f"},
		Usage:    `Policy document file ("-" for standard input)`,
		Required: true,
	}
}

func newRunner(ctx context.Context, cmd *cli.Command) (*Runner, error) {
	client, err := cliinternal.SecretClient(ctx, cmd, cliinternal.LoadConfig(cmd))
	if err != nil {
		return nil, err
	}

	return &Runner{
		UseCase: &secret.PolicyUseCase{Client: client},
		Stdout:  cmd.Root().Writer,
		Stderr:  cliinternal.ErrWriter(cmd),
	}, nil
}

func readPolicy(cmd *cli.Command) (string, error) {
	path := cmd.String("file")

	var (
		data []byte
		err  error
	)

	if path == "-" {
		data, err = io.ReadAll(cliinternal.Stdin(cmd))
	} else {
		data, err = os.ReadFile(path) //nolint:gosec // path comes from the user
	}

	if err != nil {
		return "", fmt.Errorf("failed to read policy: %w", err)
	}

	if len(data) == 0 {
		return "", errors.New("policy document is empty")
	}

	return string(data), nil
}

func getAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return fmt.Errorf("usage: smkit secret policy get <name>")
	}

	r, err := newRunner(ctx, cmd)
	if err != nil {
		return err
	}

	return r.Get(ctx, cmd.Args().First())
}

func putAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return fmt.Errorf("usage: smkit secret policy put --file <file> <name>")
	}

	doc, err := readPolicy(cmd)
	if err != nil {
		return err
	}

	r, err := newRunner(ctx, cmd)
	if err != nil {
		return err
	}

	return r.Put(ctx, Options{
		Name:              cmd.Args().First(),
		Policy:            doc,
		BlockPublicPolicy: cmd.Bool("block-public-policy"),
	})
}

func deleteAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return fmt.Errorf("usage: smkit secret policy delete <name>")
	}

	r, err := newRunner(ctx, cmd)
	if err != nil {
		return err
	}

	return r.Delete(ctx, cmd.Args().First())
}

func validateAction(ctx context.Context, cmd *cli.Command) error {
	doc, err := readPolicy(cmd)
	if err != nil {
		return err
	}

	r, err := newRunner(ctx, cmd)
	if err != nil {
		return err
	}

	return r.Validate(ctx, Options{
		Name:   cmd.Args().First(),
		Policy: doc,
	})
}

// Get prints the policy attached to a secret.
func (r *Runner) Get(ctx context.Context, name string) error {
	result, err := r.UseCase.Get(ctx, name)
	if err != nil {
		return err
	}

	if result.Policy == "" {
		output.Warning(r.Stderr, "no resource policy is attached to %s", name)

		return nil
	}

	output.Println(r.Stdout, result.Policy)

	return nil
}

// Put attaches a policy.
func (r *Runner) Put(ctx context.Context, opts Options) error {
	result, err := r.UseCase.Put(ctx, secret.PolicyInput{
		Name:              opts.Name,
		Policy:            opts.Policy,
		BlockPublicPolicy: opts.BlockPublicPolicy,
	})
	if err != nil {
		return err
	}

	output.Success(r.Stdout, "Attached resource policy to %s", result.Name)

	return nil
}

// Delete detaches the policy of a secret.
func (r *Runner) Delete(ctx context.Context, name string) error {
	result, err := r.UseCase.Delete(ctx, name)
	if err != nil {
		return err
	}

	output.Success(r.Stdout, "Removed resource policy from %s", result.Name)

	return nil
}

// ErrValidationFailed is returned when a policy does not pass validation.
var ErrValidationFailed = errors.New("policy validation failed")

// Validate checks a policy and prints the findings.
func (r *Runner) Validate(ctx context.Context, opts Options) error {
	result, err := r.UseCase.Validate(ctx, secret.PolicyInput{
		Name:   opts.Name,
		Policy: opts.Policy,
	})
	if err != nil {
		return err
	}

	if result.Passed {
		output.Success(r.Stdout, "Passed")

		return nil
	}

	for _, e := range result.Errors {
		output.Error(r.Stderr, "%s: %s", e.GetCheckName(), e.GetErrorMessage())
	}

	return ErrValidationFailed
}
