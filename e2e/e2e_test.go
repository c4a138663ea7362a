//go:build e2e

// Package e2e_test contains end-to-end tests for the smkit CLI.
//
// These tests run against LocalStack and drive the complete application,
// global flags included.
//
// Run with: go test -tags e2e ./e2e/...
//
// Environment variables:
//   - SMKIT_LOCALSTACK_EXTERNAL_PORT: Custom LocalStack port (default: 4566)
package e2e_test

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/samber/lo"

	"github.com/mpyw/smkit/internal/cli/commands"
)

func getEndpoint() string {
	return fmt.Sprintf(
		"http://127.0.0.1:%s",
		lo.CoalesceOrEmpty(os.Getenv("SMKIT_LOCALSTACK_EXTERNAL_PORT"), "4566"),
	)
}

// setupEnv points the AWS SDK at LocalStack with dummy credentials.
func setupEnv(t *testing.T) {
	t.Helper()

	t.Setenv("AWS_ACCESS_KEY_ID", "test")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "test")
	t.Setenv("AWS_DEFAULT_REGION", "us-east-1")
	t.Setenv("SMKIT_ENDPOINT_URL", getEndpoint())
	t.Setenv("SMKIT_REGION", "us-east-1")
	t.Setenv("SMKIT_PROFILE", "")
}

// run executes "smkit <args...>" and returns stdout, stderr, and error.
func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer

	app := commands.MakeApp()
	app.Writer = &outBuf
	app.ErrWriter = &errBuf
	app.Reader = strings.NewReader(stdin)

	err = app.Run(t.Context(), append([]string{"smkit"}, args...))

	return outBuf.String(), errBuf.String(), err
}

// secret executes "smkit secret <args...>".
func secret(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	return run(t, "", append([]string{"secret"}, args...)...)
}
