package log_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcli "github.com/mpyw/smkit/internal/cli/commands"
	"github.com/mpyw/smkit/internal/cli/commands/secret/log"
	"github.com/mpyw/smkit/internal/cli/output"
	"github.com/mpyw/smkit/internal/testutil"
	"github.com/mpyw/smkit/internal/usecase/secret"
	"github.com/mpyw/smkit/pkg/smmodel"
)

func TestCommand_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "missing name", args: []string{"smkit", "secret", "log"}, wantErr: "usage: smkit secret log"},
		{name: "invalid since", args: []string{"smkit", "secret", "log", "--since", "yesterday", "my-secret"}, wantErr: "invalid --since value"},
		{name: "invalid until", args: []string{"smkit", "secret", "log", "--until", "2024-13-01", "my-secret"}, wantErr: "invalid --until value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app := appcli.MakeApp()
			app.ErrWriter = &bytes.Buffer{}

			err := app.Run(t.Context(), tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func newClient() *testutil.FakeSecretsManager {
	return &testutil.FakeSecretsManager{
		ListSecretVersionIdsFunc: testutil.Versions(
			testutil.Version("aaaaaaaa-1111", testutil.Epoch, "custom"),
			testutil.Version("bbbbbbbb-2222", testutil.Epoch.Add(time.Hour), smmodel.StagePrevious),
			testutil.Version("cccccccc-3333", testutil.Epoch.Add(2*time.Hour), smmodel.StageCurrent),
		),
		GetSecretValueFunc: testutil.Values(
			map[string]string{
				"aaaaaaaa-1111": "one",
				"bbbbbbbb-2222": `{"b":2,"a":1}`,
				"cccccccc-3333": `{"a":1,"b":3}`,
			},
			nil,
		),
	}
}

func run(t *testing.T, client *testutil.FakeSecretsManager, opts log.Options) (string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	r := &log.Runner{
		UseCase: &secret.LogUseCase{Client: client},
		Stdout:  &stdout,
		Stderr:  &stderr,
	}

	require.NoError(t, r.Run(t.Context(), opts))

	return stdout.String(), stderr.String()
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("newest first", func(t *testing.T) {
		t.Parallel()

		stdout, _ := run(t, newClient(), log.Options{Name: "my-secret"})

		assert.Less(t, strings.Index(stdout, "cccccccc"), strings.Index(stdout, "bbbbbbbb"))
		assert.Less(t, strings.Index(stdout, "bbbbbbbb"), strings.Index(stdout, "aaaaaaaa"))
		assert.Contains(t, stdout, "Version cccccccc [AWSCURRENT]")
		assert.Contains(t, stdout, "Date: 2024-01-01T02:00:00Z")
		assert.NotContains(t, stdout, "-3333")
	})

	t.Run("reverse and limit", func(t *testing.T) {
		t.Parallel()

		stdout, _ := run(t, newClient(), log.Options{Name: "my-secret", MaxResults: 2, Reverse: true})

		assert.NotContains(t, stdout, "aaaaaaaa")
		assert.Less(t, strings.Index(stdout, "bbbbbbbb"), strings.Index(stdout, "cccccccc"))
	})

	t.Run("oneline", func(t *testing.T) {
		t.Parallel()

		stdout, _ := run(t, newClient(), log.Options{Name: "my-secret", Oneline: true})

		lines := strings.Split(strings.TrimSpace(stdout), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "cccccccc  2024-01-01 [AWSCURRENT]", lines[0])
	})

	t.Run("patch", func(t *testing.T) {
		t.Parallel()

		stdout, _ := run(t, newClient(), log.Options{Name: "my-secret", ShowPatch: true})

		assert.Contains(t, stdout, "--- my-secret#aaaaaaaa")
		assert.Contains(t, stdout, "+++ my-secret#bbbbbbbb")
		assert.Contains(t, stdout, "-one")
	})

	t.Run("patch with parse json", func(t *testing.T) {
		t.Parallel()

		stdout, _ := run(t, newClient(), log.Options{Name: "my-secret", ShowPatch: true, ParseJSON: true})

		assert.Contains(t, stdout, `-  "b": 2`)
		assert.Contains(t, stdout, `+  "b": 3`)
	})

	t.Run("since filter", func(t *testing.T) {
		t.Parallel()

		since := testutil.Epoch.Add(90 * time.Minute)
		stdout, _ := run(t, newClient(), log.Options{Name: "my-secret", Since: &since})

		assert.Contains(t, stdout, "cccccccc")
		assert.NotContains(t, stdout, "bbbbbbbb")
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		client := newClient()
		client.GetSecretValueFunc = func(_ context.Context, req *smmodel.GetSecretValueRequest) (*smmodel.GetSecretValueResult, error) {
			if req.GetVersionId() == "aaaaaaaa-1111" {
				return nil, assert.AnError
			}

			return new(smmodel.GetSecretValueResult).WithSecretString("v-" + req.GetVersionId()), nil
		}

		stdout, _ := run(t, client, log.Options{Name: "my-secret", Output: output.FormatJSON})

		var items []log.JSONOutputItem
		require.NoError(t, json.Unmarshal([]byte(stdout), &items))
		require.Len(t, items, 3)
		assert.Equal(t, "cccccccc-3333", items[0].VersionID)
		require.NotNil(t, items[0].Value)
		assert.Equal(t, "v-cccccccc-3333", *items[0].Value)
		assert.Nil(t, items[2].Value)
		assert.NotEmpty(t, items[2].Error)
	})
}
