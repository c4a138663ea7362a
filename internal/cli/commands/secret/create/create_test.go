package create_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcli "github.com/mpyw/smkit/internal/cli/commands"
	"github.com/mpyw/smkit/internal/cli/commands/secret/create"
	"github.com/mpyw/smkit/internal/testutil"
	"github.com/mpyw/smkit/internal/usecase/secret"
	"github.com/mpyw/smkit/pkg/smmodel"
)

func TestCommand_Validation(t *testing.T) {
	t.Parallel()

	t.Run("missing name", func(t *testing.T) {
		t.Parallel()

		app := appcli.MakeApp()
		err := app.Run(t.Context(), []string{"smkit", "secret", "create"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "usage: smkit secret create")
	})

	t.Run("invalid tag", func(t *testing.T) {
		t.Parallel()

		app := appcli.MakeApp()
		err := app.Run(t.Context(), []string{"smkit", "secret", "create", "--tag", "novalue", "my-secret", "v"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected KEY=VALUE")
	})
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		var got *smmodel.CreateSecretRequest

		client := &testutil.FakeSecretsManager{
			CreateSecretFunc: func(_ context.Context, req *smmodel.CreateSecretRequest) (*smmodel.CreateSecretResult, error) {
				got = req

				return new(smmodel.CreateSecretResult).WithName(req.GetName()).WithVersionId("v1"), nil
			},
		}

		var stdout bytes.Buffer

		r := &create.Runner{
			UseCase: &secret.CreateUseCase{Client: client},
			Stdout:  &stdout,
			Stderr:  &bytes.Buffer{},
		}

		err := r.Run(t.Context(), create.Options{
			Name:        "my-secret",
			Value:       "secret-value",
			Description: "test",
			KmsKeyID:    "alias/app",
			Tags:        map[string]string{"env": "prod"},
		})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Created secret my-secret (version: v1)")

		assert.Equal(t, "secret-value", got.GetSecretString())
		assert.Equal(t, "alias/app", got.GetKmsKeyId())
		assert.Equal(t, []smmodel.Tag{*smmodel.NewTag("env", "prod")}, got.GetTags())
	})

	t.Run("error", func(t *testing.T) {
		t.Parallel()

		r := &create.Runner{
			UseCase: &secret.CreateUseCase{Client: &testutil.FakeSecretsManager{}},
			Stdout:  &bytes.Buffer{},
			Stderr:  &bytes.Buffer{},
		}

		err := r.Run(t.Context(), create.Options{Name: "my-secret", Value: "v"})
		require.ErrorContains(t, err, "failed to create secret")
	})
}
