package restore_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcli "github.com/mpyw/smkit/internal/cli/commands"
	"github.com/mpyw/smkit/internal/cli/commands/secret/restore"
	"github.com/mpyw/smkit/internal/testutil"
	"github.com/mpyw/smkit/internal/usecase/secret"
	"github.com/mpyw/smkit/pkg/smmodel"
)

func TestCommand_Validation(t *testing.T) {
	t.Parallel()

	app := appcli.MakeApp()
	err := app.Run(t.Context(), []string{"smkit", "secret", "restore"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage: smkit secret restore")
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		client := &testutil.FakeSecretsManager{
			RestoreSecretFunc: func(_ context.Context, req *smmodel.RestoreSecretRequest) (*smmodel.RestoreSecretResult, error) {
				return new(smmodel.RestoreSecretResult).WithName(req.GetSecretId()), nil
			},
		}

		var stdout bytes.Buffer

		r := &restore.Runner{UseCase: &secret.RestoreUseCase{Client: client}, Stdout: &stdout, Stderr: &bytes.Buffer{}}

		require.NoError(t, r.Run(t.Context(), restore.Options{Name: "my-secret"}))
		assert.Contains(t, stdout.String(), "Restored secret my-secret")
	})

	t.Run("error", func(t *testing.T) {
		t.Parallel()

		r := &restore.Runner{UseCase: &secret.RestoreUseCase{Client: &testutil.FakeSecretsManager{}}, Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

		require.ErrorContains(t, r.Run(t.Context(), restore.Options{Name: "my-secret"}), "failed to restore secret")
	})
}
