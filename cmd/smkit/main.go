package main

import (
	"context"
	"errors"
	"os"

	"github.com/awnumar/memguard"
	"github.com/aws/smithy-go"

	"github.com/mpyw/smkit/internal/cli/commands"
	"github.com/mpyw/smkit/internal/cli/output"
	"github.com/mpyw/smkit/internal/config"
)

func main() {
	memguard.CatchInterrupt()

	os.Exit(run())
}

func run() int {
	defer memguard.Purge()

	ctx := context.Background()

	if timeout := config.Load().Timeout; timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if err := commands.App.Run(ctx, os.Args); err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			output.Error(os.Stderr, "%v (%s)", err, apiErr.ErrorCode())
		} else {
			output.Error(os.Stderr, "%v", err)
		}

		return 1
	}

	return 0
}
