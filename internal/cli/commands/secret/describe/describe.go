// Package describe provides the Secrets Manager describe command.
package describe

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/smkit/internal/cli/commands/internal"
	"github.com/mpyw/smkit/internal/cli/output"
	"github.com/mpyw/smkit/internal/maputil"
	"github.com/mpyw/smkit/internal/timeutil"
	"github.com/mpyw/smkit/internal/usecase/secret"
	"github.com/mpyw/smkit/pkg/smmodel"
)

// Runner executes the describe command.
type Runner struct {
	UseCase *secret.DescribeUseCase
	Stdout  io.Writer
	Stderr  io.Writer
}

// Options holds the options for the describe command.
type Options struct {
	Name   string
	Output output.Format
}

// JSONOutput represents the JSON output structure for the describe command.
type JSONOutput struct {
	*smmodel.DescribeSecretResult

	Conflicts map[string][]string `json:"Conflicts,omitempty"`
}

// Command returns the describe command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "describe",
		Aliases:   []string{"info"},
		Usage:     "Show secret metadata without its value",
		ArgsUsage: "<name>",
		Description: `Display the metadata of a secret: description, encryption key,
rotation settings, dates, tags and the staging labels of every version.

Labels held by more than one version are reported as a warning.

EXAMPLES:
  smkit secret describe my-secret                  Show metadata
  smkit secret describe --output=json my-secret    Output as JSON`,
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
	if cmd.Args().Len() < 1 {
		return fmt.Errorf("usage: smkit secret describe <name>")
	}

	client, err := cliinternal.SecretClient(ctx, cmd, cliinternal.LoadConfig(cmd))
	if err != nil {
		return err
	}

	r := &Runner{
		UseCase: &secret.DescribeUseCase{Client: client},
		Stdout:  cmd.Root().Writer,
		Stderr:  cliinternal.ErrWriter(cmd),
	}

	return r.Run(ctx, Options{
		Name:   cmd.Args().First(),
		Output: output.ParseFormat(cmd.String("output")),
	})
}

// Run executes the describe command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	result, err := r.UseCase.Execute(ctx, secret.DescribeInput{Name: opts.Name})
	if err != nil {
		return err
	}

	for _, label := range maputil.SortedKeys(result.Conflicts) {
		output.Warning(r.Stderr, "label %s is attached to %s", label, strings.Join(result.Conflicts[label], ", "))
	}

	if opts.Output == output.FormatJSON {
		return output.JSON(r.Stdout, JSONOutput{
			DescribeSecretResult: result.Secret,
			Conflicts:            result.Conflicts,
		})
	}

	s := result.Secret

	out := output.New(r.Stdout)
	out.Field("Name", s.GetName())
	out.Field("ARN", s.GetARN())
	out.FieldIf("Description", s.GetDescription())
	out.FieldIf("KmsKeyId", s.GetKmsKeyId())
	out.FieldIf("OwningService", s.GetOwningService())
	out.Field("Rotation", strconv.FormatBool(s.GetRotationEnabled()))
	out.FieldIf("RotationLambda", s.GetRotationLambdaARN())

	if days := s.GetRotationRules().GetAutomaticallyAfterDays(); days > 0 {
		out.Field("RotateAfter", fmt.Sprintf("%d day(s)", days))
	}

	out.FieldIf("LastChanged", timeutil.FormatRFC3339(s.GetLastChangedDate()))
	out.FieldIf("LastRotated", timeutil.FormatRFC3339(s.GetLastRotatedDate()))
	out.FieldIf("LastAccessed", timeutil.FormatRFC3339(s.GetLastAccessedDate()))
	out.FieldIf("Deleted", timeutil.FormatRFC3339(s.GetDeletedDate()))

	if tags := s.GetTags(); len(tags) > 0 {
		out.Field("Tags", fmt.Sprintf("%d tag(s)", len(tags)))

		for _, tag := range tags {
			out.Field("  "+tag.GetKey(), tag.GetValue())
		}
	}

	if len(result.Versions) > 0 {
		out.Field("Versions", fmt.Sprintf("%d version(s)", len(result.Versions)))

		for _, v := range result.Versions {
			out.Field("  "+v.VersionID, output.Stages(v.Stages))
		}
	}

	return nil
}
