package stage_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcli "github.com/mpyw/smkit/internal/cli/commands"
	"github.com/mpyw/smkit/internal/cli/commands/secret/stage"
	"github.com/mpyw/smkit/internal/cli/confirm"
	"github.com/mpyw/smkit/internal/secretref"
	"github.com/mpyw/smkit/internal/testutil"
	"github.com/mpyw/smkit/internal/usecase/secret"
	"github.com/mpyw/smkit/pkg/smmodel"
)

func TestCommand_Validation(t *testing.T) {
	t.Parallel()

	t.Run("missing label", func(t *testing.T) {
		t.Parallel()

		app := appcli.MakeApp()
		err := app.Run(t.Context(), []string{"smkit", "secret", "stage", "my-secret"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "usage: smkit secret stage")
	})

	t.Run("invalid reference", func(t *testing.T) {
		t.Parallel()

		app := appcli.MakeApp()
		err := app.Run(t.Context(), []string{"smkit", "secret", "stage", "my-secret:", "AWSCURRENT"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be followed by")
	})
}

func newRunner(stdin string, calls *int) (*stage.Runner, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	client := &testutil.FakeSecretsManager{
		ListSecretVersionIdsFunc: testutil.Versions(
			testutil.Version("v1", testutil.Epoch, smmodel.StagePrevious),
			testutil.Version("v2", testutil.Epoch.Add(time.Hour), smmodel.StageCurrent),
		),
		DescribeSecretFunc: func(_ context.Context, req *smmodel.DescribeSecretRequest) (*smmodel.DescribeSecretResult, error) {
			return new(smmodel.DescribeSecretResult).
				WithName(req.GetSecretId()).
				WithVersionIdsToStages(map[string][]string{
					"v1": {smmodel.StagePrevious},
					"v2": {smmodel.StageCurrent},
				}), nil
		},
		UpdateSecretVersionStageFunc: func(_ context.Context, req *smmodel.UpdateSecretVersionStageRequest) (*smmodel.UpdateSecretVersionStageResult, error) {
			*calls++

			return new(smmodel.UpdateSecretVersionStageResult).WithName(req.GetSecretId()), nil
		},
	}

	return &stage.Runner{
		UseCase:  &secret.StageUseCase{Client: client},
		Prompter: &confirm.Prompter{Stdin: strings.NewReader(stdin), Stderr: stderr},
		Stdout:   stdout,
		Stderr:   stderr,
	}, stdout, stderr
}

func mustRef(t *testing.T, s string) *secretref.Ref {
	t.Helper()

	ref, err := secretref.Parse(s)
	require.NoError(t, err)

	return ref
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("roll back after confirmation", func(t *testing.T) {
		t.Parallel()

		var calls int

		r, stdout, stderr := newRunner("yes\n", &calls)

		require.NoError(t, r.Run(t.Context(), stage.Options{Ref: mustRef(t, "my-secret~"), Label: smmodel.StageCurrent}))
		assert.Contains(t, stderr.String(), "Move AWSCURRENT of my-secret to my-secret~1?")
		assert.Contains(t, stdout.String(), "Moved AWSCURRENT of my-secret: v2 -> v1")
		assert.Equal(t, 1, calls)
	})

	t.Run("declined", func(t *testing.T) {
		t.Parallel()

		var calls int

		r, stdout, _ := newRunner("\n", &calls)

		require.NoError(t, r.Run(t.Context(), stage.Options{Ref: mustRef(t, "my-secret~"), Label: smmodel.StageCurrent}))
		assert.Empty(t, stdout.String())
		assert.Zero(t, calls)
	})

	t.Run("custom label needs no confirmation", func(t *testing.T) {
		t.Parallel()

		var calls int

		r, stdout, stderr := newRunner("", &calls)

		require.NoError(t, r.Run(t.Context(), stage.Options{Ref: mustRef(t, "my-secret#v1"), Label: "blue"}))
		assert.Empty(t, stderr.String())
		assert.Contains(t, stdout.String(), "Attached blue to version v1 of my-secret")
		assert.Equal(t, 1, calls)
	})

	t.Run("already there", func(t *testing.T) {
		t.Parallel()

		var calls int

		r, _, stderr := newRunner("", &calls)

		require.NoError(t, r.Run(t.Context(), stage.Options{Ref: mustRef(t, "my-secret"), Label: smmodel.StageCurrent, Yes: true}))
		assert.Contains(t, stderr.String(), "AWSCURRENT already points at version v2 of my-secret")
		assert.Zero(t, calls)
	})

	t.Run("remove", func(t *testing.T) {
		t.Parallel()

		var calls int

		r, stdout, _ := newRunner("", &calls)

		require.NoError(t, r.Run(t.Context(), stage.Options{Ref: mustRef(t, "my-secret#v1"), Label: smmodel.StagePrevious, Remove: true}))
		assert.Contains(t, stdout.String(), "Removed AWSPREVIOUS from version v1 of my-secret")
		assert.Equal(t, 1, calls)
	})
}
