// Package commands provides the command-line interface for smkit.
package commands

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/smkit/internal/cli/commands/internal"
	"github.com/mpyw/smkit/internal/cli/commands/password"
	"github.com/mpyw/smkit/internal/cli/commands/secret"
	"github.com/mpyw/smkit/internal/cli/commands/whoami"
)

// MakeApp creates a new CLI application instance.
func MakeApp() *cli.Command {
	return &cli.Command{
		Name:    "smkit",
		Usage:   "Typed CLI for AWS Secrets Manager",
		Version: "0.1.0",
		Flags:   cliinternal.GlobalFlags(),
		Commands: []*cli.Command{
			secret.Command(),
			password.Command(),
			whoami.Command(),
		},
		CommandNotFound: func(_ context.Context, cmd *cli.Command, command string) {
			_ = cli.ShowAppHelp(cmd)
			w := lo.CoalesceOrEmpty(cmd.Root().ErrWriter, cmd.Root().Writer)
			_, _ = fmt.Fprintf(w, "\nCommand not found: %s\n", command)
		},
	}
}

// App is the main CLI application.
var App = MakeApp()
