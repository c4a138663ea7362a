// Package log provides the Secrets Manager log command for viewing secret version history.
//
// The log command displays version history with optional patch output,
// similar to git log. Use -p/--patch to show differences between consecutive versions.
package log

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/mpyw/smkit/internal/cli/colors"
	cliinternal "github.com/mpyw/smkit/internal/cli/commands/internal"
	"github.com/mpyw/smkit/internal/cli/output"
	"github.com/mpyw/smkit/internal/cli/pager"
	"github.com/mpyw/smkit/internal/jsonutil"
	"github.com/mpyw/smkit/internal/secretref"
	"github.com/mpyw/smkit/internal/timeutil"
	"github.com/mpyw/smkit/internal/usecase/secret"
)

// Runner executes the log command.
type Runner struct {
	UseCase *secret.LogUseCase
	Stdout  io.Writer
	Stderr  io.Writer
}

// Options holds the options for the log command.
type Options struct {
	Name              string
	MaxResults        int
	ShowPatch         bool
	ParseJSON         bool
	Reverse           bool
	NoPager           bool
	Oneline           bool
	IncludeDeprecated bool
	Since             *time.Time
	Until             *time.Time
	Output            output.Format
	Concurrency       int
}

// JSONOutputItem represents a single version entry in JSON output.
type JSONOutputItem struct {
	VersionID string   `json:"versionId"`
	Stages    []string `json:"stages,omitempty"`
	Created   string   `json:"created,omitempty"`
	Value     *string  `json:"value,omitempty"` // nil on error, to tell it apart from ""
	Error     string   `json:"error,omitempty"`
}

// Command returns the log command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "log",
		Aliases:   []string{"history"},
		Usage:     "Show secret version history",
		ArgsUsage: "<name>",
		Description: `Display the version history of a secret, showing each version's
ID (truncated), staging labels and creation date.

Output is sorted with the most recent version first (use --reverse to flip).
Version IDs are truncated to 8 characters for readability.

Use --patch to show the diff between consecutive versions (like git log -p).
Use --parse-json with --patch to format JSON values before diffing.
Use --oneline for a compact one-line-per-version format.
Use --since/--until to filter by creation date (RFC3339 format).

OUTPUT FORMAT:
   Use --output=json for structured JSON output including values.

EXAMPLES:
   smkit secret log my-secret                               Show last 10 versions
   smkit secret log --patch my-secret                       Show versions with diffs
   smkit secret log --patch --parse-json my-secret          Show diffs with JSON formatting
   smkit secret log --oneline my-secret                     Compact one-line format
   smkit secret log --number 5 my-secret                    Show last 5 versions
   smkit secret log --since 2024-01-01T00:00:00Z my-secret  Show versions since date
   smkit secret log --output=json my-secret                 Output as JSON`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "number",
				Aliases: []string{"n"},
				Value:   10, //nolint:mnd // default page of history
				Usage:   "Number of versions to show (0 for all)",
			},
			&cli.BoolFlag{
				Name:    "patch",
				Aliases: []string{"p"},
				Usage:   "Show diff between consecutive versions",
			},
			&cli.BoolFlag{
				Name:    "parse-json",
				Aliases: []string{"j"},
				Usage:   "Format JSON values before diffing (use with -p; keys are always sorted)",
			},
			&cli.BoolFlag{
				Name:  "oneline",
				Usage: "Compact one-line-per-version format",
			},
			&cli.BoolFlag{
				Name:  "reverse",
				Usage: "Show oldest versions first",
			},
			&cli.BoolFlag{
				Name:  "include-deprecated",
				Usage: "Include versions without staging labels that AWS may delete",
			},
			&cli.BoolFlag{
				Name:  "no-pager",
				Usage: "Disable pager output",
			},
			&cli.StringFlag{
				Name:  "since",
				Usage: "Show versions created after this date (RFC3339 format, e.g., '2024-01-01T00:00:00Z')",
			},
			&cli.StringFlag{
				Name:  "until",
				Usage: "Show versions created before this date (RFC3339 format, e.g., '2024-12-31T23:59:59Z')",
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "Output format: text (default) or json",
			},
		},
		Action: action,
	}
}

func parseTime(flag, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil //nolint:nilnil // unset bound
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s value: must be RFC3339 format (e.g., '2024-01-01T00:00:00Z')", flag)
	}

	return &t, nil
}

func action(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return fmt.Errorf("usage: smkit secret log <name>")
	}

	cfg := cliinternal.LoadConfig(cmd)

	opts := Options{
		Name:              cmd.Args().First(),
		MaxResults:        int(cmd.Int("number")),
		ShowPatch:         cmd.Bool("patch"),
		ParseJSON:         cmd.Bool("parse-json"),
		Reverse:           cmd.Bool("reverse"),
		NoPager:           cmd.Bool("no-pager"),
		Oneline:           cmd.Bool("oneline"),
		IncludeDeprecated: cmd.Bool("include-deprecated"),
		Output:            output.ParseFormat(cmd.String("output")),
		Concurrency:       cfg.Concurrency,
	}

	var err error

	if opts.Since, err = parseTime("since", cmd.String("since")); err != nil {
		return err
	}

	if opts.Until, err = parseTime("until", cmd.String("until")); err != nil {
		return err
	}

	stderr := cliinternal.ErrWriter(cmd)

	if opts.ParseJSON && !opts.ShowPatch {
		output.Warning(stderr, "--parse-json has no effect without -p/--patch")
	}

	if opts.Oneline && opts.ShowPatch {
		output.Warning(stderr, "--oneline has no effect with -p/--patch")
	}

	if opts.Output == output.FormatJSON {
		if opts.ShowPatch {
			output.Warning(stderr, "-p/--patch has no effect with --output=json")
		}

		if opts.Oneline {
			output.Warning(stderr, "--oneline has no effect with --output=json")
		}
	}

	client, err := cliinternal.SecretClient(ctx, cmd, cfg)
	if err != nil {
		return err
	}

	noPager := opts.NoPager || opts.Output == output.FormatJSON

	return pager.WithPagerWriter(cmd.Root().Writer, noPager, func(w io.Writer) error {
		r := &Runner{
			UseCase: &secret.LogUseCase{Client: client},
			Stdout:  w,
			Stderr:  stderr,
		}

		return r.Run(ctx, opts)
	})
}

// Run executes the log command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	asJSON := opts.Output == output.FormatJSON

	result, err := r.UseCase.Execute(ctx, secret.LogInput{
		Name:              opts.Name,
		MaxResults:        opts.MaxResults,
		Since:             opts.Since,
		Until:             opts.Until,
		Reverse:           opts.Reverse,
		IncludeDeprecated: opts.IncludeDeprecated,
		WithValues:        asJSON || opts.ShowPatch,
		Concurrency:       opts.Concurrency,
	})
	if err != nil {
		return err
	}

	entries := result.Entries

	if asJSON {
		items := make([]JSONOutputItem, 0, len(entries))

		for _, entry := range entries {
			item := JSONOutputItem{
				VersionID: entry.VersionID,
				Stages:    entry.Stages,
				Created:   timeutil.FormatRFC3339(entry.CreatedDate),
			}

			if entry.Err != nil {
				item.Error = entry.Err.Error()
			} else {
				item.Value = &entry.Value
			}

			items = append(items, item)
		}

		return output.JSON(r.Stdout, items)
	}

	for i, entry := range entries {
		if opts.Oneline && !opts.ShowPatch {
			output.Printf(r.Stdout, "%s  %s %s\n",
				colors.VersionID(secretref.ShortID(entry.VersionID)),
				colors.FieldLabel(entry.CreatedDate.Format(time.DateOnly)),
				output.Stages(entry.Stages),
			)

			continue
		}

		label := "Version " + secretref.ShortID(entry.VersionID)
		output.Printf(r.Stdout, "%s %s\n", colors.VersionID(label), output.Stages(entry.Stages))

		if created := timeutil.FormatRFC3339(entry.CreatedDate); created != "" {
			output.Printf(r.Stdout, "%s %s\n", colors.FieldLabel("Date:"), created)
		}

		if opts.ShowPatch {
			r.writePatch(opts, entries, i)
		}

		if i < len(entries)-1 {
			output.Println(r.Stdout, "")
		}
	}

	return nil
}

// writePatch writes the diff between entries[i] and its older neighbor.
// The oldest listed entry has no patch.
func (r *Runner) writePatch(opts Options, entries []secret.LogEntry, i int) {
	oldIdx, newIdx := i+1, i
	if opts.Reverse {
		oldIdx, newIdx = i-1, i
	}

	if oldIdx < 0 || oldIdx >= len(entries) {
		return
	}

	older, newer := entries[oldIdx], entries[newIdx]
	if older.Err != nil || newer.Err != nil {
		output.Warning(r.Stderr, "cannot diff %s: %v", secretref.ShortID(newer.VersionID), errors.Join(older.Err, newer.Err))

		return
	}

	oldValue, newValue := older.Value, newer.Value
	if opts.ParseJSON {
		oldValue, newValue = jsonutil.TryFormatPair(oldValue, newValue, r.Stderr)
	}

	diff := output.Diff(
		opts.Name+"#"+secretref.ShortID(older.VersionID),
		opts.Name+"#"+secretref.ShortID(newer.VersionID),
		oldValue,
		newValue,
	)
	if diff != "" {
		output.Println(r.Stdout, "")
		output.Print(r.Stdout, diff)
	}
}
