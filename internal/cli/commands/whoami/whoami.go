// Package whoami provides the command that shows the AWS caller identity.
package whoami

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/smkit/internal/cli/commands/internal"
	"github.com/mpyw/smkit/internal/cli/output"
	"github.com/mpyw/smkit/internal/infra"
)

// Runner executes the whoami command.
type Runner struct {
	API    infra.CallerIdentityAPI
	Stdout io.Writer
	Stderr io.Writer
}

// Options holds the options for the whoami command.
type Options struct {
	Region  string
	Profile string
	Output  output.Format
}

// JSONOutput represents the JSON output structure for the whoami command.
type JSONOutput struct {
	Account string `json:"account"`
	ARN     string `json:"arn"`
	Region  string `json:"region,omitempty"`
	Profile string `json:"profile,omitempty"`
}

// Command returns the whoami command.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "Show the AWS account and identity in use",
		Description: `Show the account, caller ARN and region smkit would use, plus the
shared config profile that maps to the account when one exists.

EXAMPLES:
   smkit whoami
   smkit --profile prod whoami
   smkit whoami --output=json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "output",
				Usage: "Output format: text (default) or json",
			},
		},
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	cfg := cliinternal.LoadConfig(cmd)

	awsCfg, err := infra.LoadConfig(ctx, cfg)
	if err != nil {
		return err
	}

	r := &Runner{
		API:    sts.NewFromConfig(awsCfg),
		Stdout: cmd.Root().Writer,
		Stderr: cliinternal.ErrWriter(cmd),
	}

	return r.Run(ctx, Options{
		Region:  awsCfg.Region,
		Profile: cfg.Profile,
		Output:  output.ParseFormat(cmd.String("output")),
	})
}

// Run executes the whoami command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	identity, err := infra.Identify(ctx, r.API, opts.Region, opts.Profile)
	if err != nil {
		return err
	}

	if opts.Output == output.FormatJSON {
		return output.JSON(r.Stdout, JSONOutput{
			Account: identity.AccountID,
			ARN:     identity.ARN,
			Region:  identity.Region,
			Profile: identity.Profile,
		})
	}

	out := output.New(r.Stdout)
	out.Field("Account", identity.AccountID)
	out.Field("ARN", identity.ARN)
	out.FieldIf("Region", identity.Region)
	out.FieldIf("Profile", identity.Profile)

	return nil
}
