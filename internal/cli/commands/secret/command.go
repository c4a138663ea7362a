// Package secret provides the Secrets Manager commands.
package secret

import (
	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/smkit/internal/cli/commands/internal"
	"github.com/mpyw/smkit/internal/cli/commands/secret/create"
	secretdelete "github.com/mpyw/smkit/internal/cli/commands/secret/delete"
	"github.com/mpyw/smkit/internal/cli/commands/secret/describe"
	"github.com/mpyw/smkit/internal/cli/commands/secret/diff"
	"github.com/mpyw/smkit/internal/cli/commands/secret/list"
	"github.com/mpyw/smkit/internal/cli/commands/secret/log"
	"github.com/mpyw/smkit/internal/cli/commands/secret/policy"
	"github.com/mpyw/smkit/internal/cli/commands/secret/put"
	"github.com/mpyw/smkit/internal/cli/commands/secret/restore"
	"github.com/mpyw/smkit/internal/cli/commands/secret/rotate"
	"github.com/mpyw/smkit/internal/cli/commands/secret/show"
	"github.com/mpyw/smkit/internal/cli/commands/secret/stage"
	"github.com/mpyw/smkit/internal/cli/commands/secret/tag"
	"github.com/mpyw/smkit/internal/cli/commands/secret/untag"
	"github.com/mpyw/smkit/internal/cli/commands/secret/update"
)

// Command returns the secret command with all subcommands.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "secret",
		Aliases: []string{"sm"},
		Usage:   "Interact with AWS Secrets Manager",
		Commands: []*cli.Command{
			show.Command(),
			describe.Command(),
			log.Command(),
			diff.Command(),
			list.Command(),
			create.Command(),
			update.Command(),
			put.Command(),
			stage.Command(),
			rotate.Command(),
			rotate.CancelCommand(),
			secretdelete.Command(),
			restore.Command(),
			tag.Command(),
			untag.Command(),
			policy.Command(),
		},
		CommandNotFound: cliinternal.CommandNotFound,
	}
}
