// Package list provides the Secrets Manager list command.
package list

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/smkit/internal/cli/commands/internal"
	"github.com/mpyw/smkit/internal/cli/output"
	"github.com/mpyw/smkit/internal/cli/pager"
	"github.com/mpyw/smkit/internal/timeutil"
	"github.com/mpyw/smkit/internal/usecase/secret"
	"github.com/mpyw/smkit/pkg/smmodel"
)

// Runner executes the list command.
type Runner struct {
	UseCase *secret.ListUseCase
	Stdout  io.Writer
	Stderr  io.Writer
}

// Options holds the options for the list command.
type Options struct {
	Prefix      string
	Filters     []smmodel.Filter
	Pattern     string
	SortOrder   smmodel.SortOrderType
	MaxResults  int
	WithValue   bool
	Long        bool
	NoPager     bool
	Output      output.Format
	Concurrency int
}

// JSONOutputItem represents a single secret in JSON output.
type JSONOutputItem struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	LastChanged string            `json:"lastChanged,omitempty"`
	Tags        map[string]string `json:"tags,omitempty"`
	Value       *string           `json:"value,omitempty"` // nil when not fetched or on error
	Error       string            `json:"error,omitempty"`
}

// Command returns the list command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List secrets",
		ArgsUsage: "[prefix]",
		Description: `List secrets in AWS Secrets Manager.

The prefix and the --description, --tag-key and --tag-value filters are
applied by Secrets Manager. --filter is a regular expression matched
locally against names.

Use --show to fetch and display the current value of each secret.

EXAMPLES:
  smkit secret list                          List all secrets
  smkit secret list prod/                    List secrets starting with prod/
  smkit secret list --filter '\.db$'         Names matching a regex
  smkit secret list --tag-key team           Secrets tagged with team
  smkit secret list --long                   Include description and dates
  smkit secret list --show prod/             Include current values
  smkit secret list --output=json prod/      Output as JSON`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "filter",
				Usage: "Filter names by regular expression",
			},
			&cli.StringSliceFlag{
				Name:  "description",
				Usage: "Match descriptions by prefix (can be repeated)",
			},
			&cli.StringSliceFlag{
				Name:  "tag-key",
				Usage: "Match tag keys by prefix (can be repeated)",
			},
			&cli.StringSliceFlag{
				Name:  "tag-value",
				Usage: "Match tag values by prefix (can be repeated)",
			},
			&cli.StringFlag{
				Name:  "sort",
				Usage: "Sort by creation date: asc or desc",
			},
			&cli.IntFlag{
				Name:    "max",
				Aliases: []string{"n"},
				Usage:   "Maximum number of secrets to show (0 for all)",
			},
			&cli.BoolFlag{
				Name:  "show",
				Usage: "Show current values",
			},
			&cli.BoolFlag{
				Name:    "long",
				Aliases: []string{"l"},
				Usage:   "Show description and last changed date",
			},
			&cli.BoolFlag{
				Name:  "no-pager",
				Usage: "Disable pager output",
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
	sortOrder := smmodel.SortOrderType(strings.ToLower(cmd.String("sort")))
	if sortOrder != "" && !sortOrder.IsKnown() {
		return fmt.Errorf("invalid --sort value %q: must be asc or desc", cmd.String("sort"))
	}

	cfg := cliinternal.LoadConfig(cmd)

	opts := Options{
		Prefix:      cmd.Args().First(),
		Pattern:     cmd.String("filter"),
		SortOrder:   sortOrder,
		MaxResults:  int(cmd.Int("max")),
		WithValue:   cmd.Bool("show"),
		Long:        cmd.Bool("long"),
		NoPager:     cmd.Bool("no-pager"),
		Output:      output.ParseFormat(cmd.String("output")),
		Concurrency: cfg.Concurrency,
		Filters: filters(map[smmodel.FilterNameStringType][]string{
			smmodel.FilterNameStringTypeDescription: cmd.StringSlice("description"),
			smmodel.FilterNameStringTypeTagKey:      cmd.StringSlice("tag-key"),
			smmodel.FilterNameStringTypeTagValue:    cmd.StringSlice("tag-value"),
		}),
	}

	client, err := cliinternal.SecretClient(ctx, cmd, cfg)
	if err != nil {
		return err
	}

	noPager := opts.NoPager || opts.Output == output.FormatJSON

	return pager.WithPagerWriter(cmd.Root().Writer, noPager, func(w io.Writer) error {
		r := &Runner{
			UseCase: &secret.ListUseCase{Client: client},
			Stdout:  w,
			Stderr:  cliinternal.ErrWriter(cmd),
		}

		return r.Run(ctx, opts)
	})
}

// filters builds server-side filters in a stable key order, skipping empty ones.
func filters(values map[smmodel.FilterNameStringType][]string) []smmodel.Filter {
	var result []smmodel.Filter

	for _, key := range smmodel.FilterNameStringType("").Values() {
		if v := values[key]; len(v) > 0 {
			result = append(result, *new(smmodel.Filter).WithKey(key).WithValues(v))
		}
	}

	return result
}

// Run executes the list command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	result, err := r.UseCase.Execute(ctx, secret.ListInput{
		Prefix:      opts.Prefix,
		Filters:     opts.Filters,
		Pattern:     opts.Pattern,
		SortOrder:   opts.SortOrder,
		MaxResults:  opts.MaxResults,
		WithValues:  opts.WithValue,
		Concurrency: opts.Concurrency,
	})
	if err != nil {
		return err
	}

	if opts.Output == output.FormatJSON {
		items := lo.Map(result.Entries, func(entry secret.ListEntry, _ int) JSONOutputItem {
			item := JSONOutputItem{
				Name:        entry.Name,
				Description: entry.Description,
				LastChanged: timeutil.FormatRFC3339(entry.LastChangedDate),
			}

			if len(entry.Tags) > 0 {
				item.Tags = make(map[string]string, len(entry.Tags))
				for _, tag := range entry.Tags {
					item.Tags[tag.GetKey()] = tag.GetValue()
				}
			}

			switch {
			case entry.Err != nil:
				item.Error = entry.Err.Error()
			case opts.WithValue:
				item.Value = &entry.Value
			}

			return item
		})

		return output.JSON(r.Stdout, items)
	}

	for _, entry := range result.Entries {
		line := entry.Name

		if opts.Long {
			line += "\t" + timeutil.FormatRFC3339(entry.LastChangedDate) + "\t" + entry.Description
		}

		switch {
		case entry.Err != nil:
			line += "\t" + fmt.Sprintf("<error: %v>", entry.Err)
		case opts.WithValue:
			line += "\t" + entry.Value
		}

		output.Println(r.Stdout, line)
	}

	return nil
}
