// Package password provides the random password command.
package password

import (
	"context"
	"io"

	"github.com/urfave/cli/v3"

	cliinternal "github.com/mpyw/smkit/internal/cli/commands/internal"
	"github.com/mpyw/smkit/internal/cli/output"
	"github.com/mpyw/smkit/internal/usecase/secret"
)

// Runner executes the password command.
type Runner struct {
	UseCase *secret.PasswordUseCase
	Stdout  io.Writer
	Stderr  io.Writer
}

// Options holds the options for the password command.
type Options = secret.PasswordInput

// Command returns the password command.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "password",
		Usage: "Generate a random password with Secrets Manager",
		Description: `Generate a random password server-side and print it.

The password is generated by AWS; no secret is created. Without flags a
32-character password with letters, numbers and punctuation is returned.

EXAMPLES:
   smkit password                                   Generate with the defaults
   smkit password --length 16 --exclude-punctuation Letters and numbers only
   smkit password --exclude-characters '"@/\'       Avoid characters that need escaping
   smkit secret create db-pass "$(smkit password)"  Store a new random secret`,
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:    "length",
				Aliases: []string{"l"},
				Usage:   "Password length (1-4096, default 32)",
			},
			&cli.StringFlag{
				Name:  "exclude-characters",
				Usage: "Characters that must not appear",
			},
			&cli.BoolFlag{
				Name:  "exclude-numbers",
				Usage: "Leave out digits",
			},
			&cli.BoolFlag{
				Name:  "exclude-punctuation",
				Usage: "Leave out punctuation",
			},
			&cli.BoolFlag{
				Name:  "exclude-uppercase",
				Usage: "Leave out uppercase letters",
			},
			&cli.BoolFlag{
				Name:  "exclude-lowercase",
				Usage: "Leave out lowercase letters",
			},
			&cli.BoolFlag{
				Name:  "include-space",
				Usage: "Allow the space character",
			},
			&cli.BoolFlag{
				Name:  "require-each-type",
				Usage: "Include at least one character of every allowed type",
			},
		},
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	client, err := cliinternal.SecretClient(ctx, cmd, cliinternal.LoadConfig(cmd))
	if err != nil {
		return err
	}

	r := &Runner{
		UseCase: &secret.PasswordUseCase{Client: client},
		Stdout:  cmd.Root().Writer,
		Stderr:  cliinternal.ErrWriter(cmd),
	}

	return r.Run(ctx, Options{
		Length:                  cmd.Int64("length"),
		ExcludeCharacters:       cmd.String("exclude-characters"),
		ExcludeNumbers:          cmd.Bool("exclude-numbers"),
		ExcludePunctuation:      cmd.Bool("exclude-punctuation"),
		ExcludeUppercase:        cmd.Bool("exclude-uppercase"),
		ExcludeLowercase:        cmd.Bool("exclude-lowercase"),
		IncludeSpace:            cmd.Bool("include-space"),
		RequireEachIncludedType: cmd.Bool("require-each-type"),
	})
}

// Run executes the password command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	password, err := r.UseCase.Execute(ctx, opts)
	if err != nil {
		return err
	}

	output.Println(r.Stdout, password)

	return nil
}
