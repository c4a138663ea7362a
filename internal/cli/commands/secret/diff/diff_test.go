package diff_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcli "github.com/mpyw/smkit/internal/cli/commands"
	"github.com/mpyw/smkit/internal/cli/commands/secret/diff"
	"github.com/mpyw/smkit/internal/secretref"
	"github.com/mpyw/smkit/internal/testutil"
	"github.com/mpyw/smkit/internal/usecase/secret"
	"github.com/mpyw/smkit/pkg/smmodel"
)

func TestCommand_Validation(t *testing.T) {
	t.Parallel()

	t.Run("no arguments", func(t *testing.T) {
		t.Parallel()

		app := appcli.MakeApp()
		err := app.Run(t.Context(), []string{"smkit", "secret", "diff"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "usage: smkit secret diff")
	})

	t.Run("too many arguments", func(t *testing.T) {
		t.Parallel()

		app := appcli.MakeApp()
		err := app.Run(t.Context(), []string{"smkit", "secret", "diff", "a", "#1", "#2", "#3"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "usage: smkit secret diff")
	})
}

func newClient(prev, cur string) *testutil.FakeSecretsManager {
	return &testutil.FakeSecretsManager{
		ListSecretVersionIdsFunc: testutil.Versions(
			testutil.Version("v1", testutil.Epoch, smmodel.StagePrevious),
			testutil.Version("v2", testutil.Epoch.Add(1), smmodel.StageCurrent),
		),
		GetSecretValueFunc: testutil.Values(
			map[string]string{"v1": prev, "v2": cur},
			map[string]string{smmodel.StageCurrent: "v2", smmodel.StagePrevious: "v1"},
		),
	}
}

func run(t *testing.T, client *testutil.FakeSecretsManager, parseJSON bool, args ...string) (string, string) {
	t.Helper()

	ref1, ref2, err := secretref.ParseDiffArgs(args)
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer

	r := &diff.Runner{
		UseCase: &secret.DiffUseCase{Client: client},
		Stdout:  &stdout,
		Stderr:  &stderr,
	}

	require.NoError(t, r.Run(t.Context(), diff.Options{Ref1: ref1, Ref2: ref2, ParseJSON: parseJSON}))

	return stdout.String(), stderr.String()
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("previous against current", func(t *testing.T) {
		t.Parallel()

		stdout, _ := run(t, newClient("old", "new"), false, "my-secret~")
		assert.Contains(t, stdout, "--- my-secret#v1")
		assert.Contains(t, stdout, "+++ my-secret#v2")
		assert.Contains(t, stdout, "-old")
		assert.Contains(t, stdout, "+new")
	})

	t.Run("by label", func(t *testing.T) {
		t.Parallel()

		stdout, _ := run(t, newClient("old", "new"), false, "my-secret", ":AWSPREVIOUS")
		assert.Contains(t, stdout, "-old")
	})

	t.Run("identical", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := run(t, newClient("same", "same"), false, "my-secret~")
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "comparing identical versions")
	})

	t.Run("reordered json is identical after formatting", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := run(t, newClient(`{"a":1,"b":2}`, `{"b":2,"a":1}`), true, "my-secret~")
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "comparing identical versions")
	})

	t.Run("parse json on plain values warns", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := run(t, newClient("old", "new"), true, "my-secret~")
		assert.Contains(t, stdout, "+new")
		assert.Contains(t, stderr, "--parse-json has no effect")
	})
}
