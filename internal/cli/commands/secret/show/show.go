// Package show provides the Secrets Manager show command.
package show

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/smkit/internal/cli/commands/internal"
	"github.com/mpyw/smkit/internal/cli/output"
	"github.com/mpyw/smkit/internal/cli/pager"
	"github.com/mpyw/smkit/internal/jsonutil"
	"github.com/mpyw/smkit/internal/secretref"
	"github.com/mpyw/smkit/internal/timeutil"
	"github.com/mpyw/smkit/internal/usecase/secret"
)

// Runner executes the show command.
type Runner struct {
	UseCase *secret.ShowUseCase
	Stdout  io.Writer
	Stderr  io.Writer
}

// Options holds the options for the show command.
type Options struct {
	Ref       *secretref.Ref
	ParseJSON bool
	NoPager   bool
	Raw       bool
	Output    output.Format
}

// JSONOutput represents the JSON output structure for the show command.
type JSONOutput struct {
	Name      string            `json:"name"`
	ARN       string            `json:"arn"`
	VersionID string            `json:"versionId,omitempty"`
	Stages    []string          `json:"stages,omitempty"`
	Created   string            `json:"created,omitempty"`
	Binary    bool              `json:"binary,omitempty"`
	Tags      map[string]string `json:"tags"`
	Value     string            `json:"value"`
}

// Command returns the show command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show secret value with metadata",
		ArgsUsage: "<name[#VERSION | :LABEL][~SHIFT]*>",
		Description: `Display a secret's value along with its metadata.

Use --raw to output only the value without metadata (for piping/scripting).
Use --output=json for structured JSON output (cannot be used with --raw).

VERSION SPECIFIERS:
  #VERSION  Specific version by VersionId
  :LABEL    Staging label (AWSCURRENT, AWSPREVIOUS, or custom)
  ~SHIFT    N versions ago; ~ alone means ~1

EXAMPLES:
  smkit secret show my-secret                      Show current version
  smkit secret show my-secret~                     Show previous version
  smkit secret show my-secret:AWSPREVIOUS          Show AWSPREVIOUS label
  smkit secret show --raw my-secret                Output raw value (for piping)
  smkit secret show --parse-json my-secret         Pretty print JSON value
  smkit secret show --output=json my-secret        Output as JSON
  API_KEY=$(smkit secret show --raw my-secret)     Use in shell variable`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "parse-json",
				Aliases: []string{"j"},
				Usage:   "Pretty print JSON values (keys are always sorted alphabetically)",
			},
			&cli.BoolFlag{
				Name:  "no-pager",
				Usage: "Disable pager output",
			},
			&cli.BoolFlag{
				Name:  "raw",
				Usage: "Output raw value only without metadata (for piping)",
			},
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
		return fmt.Errorf("usage: smkit secret show <name>")
	}

	ref, err := secretref.Parse(cmd.Args().First())
	if err != nil {
		return err
	}

	opts := Options{
		Ref:       ref,
		ParseJSON: cmd.Bool("parse-json"),
		NoPager:   cmd.Bool("no-pager"),
		Raw:       cmd.Bool("raw"),
		Output:    output.ParseFormat(cmd.String("output")),
	}

	if opts.Raw && opts.Output == output.FormatJSON {
		return fmt.Errorf("--raw and --output=json cannot be used together")
	}

	client, err := cliinternal.SecretClient(ctx, cmd, cliinternal.LoadConfig(cmd))
	if err != nil {
		return err
	}

	noPager := opts.NoPager || opts.Raw || opts.Output == output.FormatJSON

	return pager.WithPagerWriter(cmd.Root().Writer, noPager, func(w io.Writer) error {
		r := &Runner{
			UseCase: &secret.ShowUseCase{Client: client},
			Stdout:  w,
			Stderr:  cliinternal.ErrWriter(cmd),
		}

		return r.Run(ctx, opts)
	})
}

// Run executes the show command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	result, err := r.UseCase.Execute(ctx, secret.ShowInput{Ref: opts.Ref})
	if err != nil {
		return err
	}

	value := result.Value
	if opts.ParseJSON && !result.Binary {
		value = jsonutil.TryFormatOrWarn(value, r.Stderr, "")
	}

	if opts.Raw {
		output.Print(r.Stdout, value)

		return nil
	}

	if opts.Output == output.FormatJSON {
		tags := make(map[string]string, len(result.Tags))
		for _, tag := range result.Tags {
			tags[tag.GetKey()] = tag.GetValue()
		}

		return output.JSON(r.Stdout, JSONOutput{
			Name:      result.Name,
			ARN:       result.ARN,
			VersionID: result.VersionID,
			Stages:    result.Stages,
			Created:   timeutil.FormatRFC3339(result.CreatedDate),
			Binary:    result.Binary,
			Tags:      tags,
			Value:     value,
		})
	}

	out := output.New(r.Stdout)
	out.Field("Name", result.Name)
	out.Field("ARN", result.ARN)
	out.FieldIf("VersionId", result.VersionID)
	out.FieldIf("Stages", output.Stages(result.Stages))
	out.FieldIf("Created", timeutil.FormatRFC3339(result.CreatedDate))

	if result.Binary {
		out.Field("Type", "binary")
	}

	if len(result.Tags) > 0 {
		out.Field("Tags", fmt.Sprintf("%d tag(s)", len(result.Tags)))

		for _, tag := range result.Tags {
			out.Field("  "+tag.GetKey(), tag.GetValue())
		}
	}

	out.Separator()
	out.Value(value)

	return nil
}
