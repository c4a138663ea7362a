package secretref_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpyw/smkit/internal/secretref"
	"github.com/mpyw/smkit/pkg/smmodel"
)

type mockClient struct {
	getSecretValueFunc       func(ctx context.Context, req *smmodel.GetSecretValueRequest) (*smmodel.GetSecretValueResult, error)
	listSecretVersionIdsFunc func(ctx context.Context, req *smmodel.ListSecretVersionIdsRequest) (*smmodel.ListSecretVersionIdsResult, error)
}

func (m *mockClient) GetSecretValue(ctx context.Context, req *smmodel.GetSecretValueRequest) (*smmodel.GetSecretValueResult, error) {
	if m.getSecretValueFunc != nil {
		return m.getSecretValueFunc(ctx, req)
	}

	return nil, errors.New("GetSecretValue not mocked")
}

func (m *mockClient) ListSecretVersionIds(ctx context.Context, req *smmodel.ListSecretVersionIdsRequest) (*smmodel.ListSecretVersionIdsResult, error) {
	if m.listSecretVersionIdsFunc != nil {
		return m.listSecretVersionIdsFunc(ctx, req)
	}

	return nil, errors.New("ListSecretVersionIds not mocked")
}

const (
	v1 = "00000000-0000-4000-8000-000000000001"
	v2 = "00000000-0000-4000-8000-000000000002"
	v3 = "00000000-0000-4000-8000-000000000003"
	// deprecated has no staging label and is listed only with IncludeDeprecated.
	deprecated = "00000000-0000-4000-8000-000000000000"
	unknown    = "ffffffff-ffff-4fff-bfff-ffffffffffff"
)

func version(id string, created time.Time, stages ...string) smmodel.SecretVersionsListEntry {
	return *new(smmodel.SecretVersionsListEntry).
		WithVersionId(id).
		WithCreatedDate(created).
		WithVersionStages(stages)
}

// threeVersions lists v1 (oldest) to v3 (newest) across two pages, plus an
// older deprecated version when it is asked for.
func threeVersions(t *testing.T) func(context.Context, *smmodel.ListSecretVersionIdsRequest) (*smmodel.ListSecretVersionIdsResult, error) {
	t.Helper()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	return func(_ context.Context, req *smmodel.ListSecretVersionIdsRequest) (*smmodel.ListSecretVersionIdsResult, error) {
		assert.Equal(t, "db", req.GetSecretId())

		if req.GetNextToken() == "" {
			return new(smmodel.ListSecretVersionIdsResult).
				WithVersions([]smmodel.SecretVersionsListEntry{
					version(v2, base.Add(time.Hour), smmodel.StagePrevious),
					version(v3, base.Add(2*time.Hour), smmodel.StagePending),
				}).
				WithNextToken("page2"), nil
		}

		versions := []smmodel.SecretVersionsListEntry{version(v1, base, smmodel.StageCurrent)}
		if req.GetIncludeDeprecated() {
			versions = append(versions, version(deprecated, base.Add(-time.Hour)))
		}

		return new(smmodel.ListSecretVersionIdsResult).WithVersions(versions), nil
	}
}

func TestVersions(t *testing.T) {
	t.Parallel()

	client := &mockClient{listSecretVersionIdsFunc: threeVersions(t)}

	versions, err := secretref.Versions(t.Context(), client, "db", false)
	require.NoError(t, err)

	ids := make([]string, 0, len(versions))
	for _, v := range versions {
		ids = append(ids, v.GetVersionId())
	}

	assert.Equal(t, []string{v3, v2, v1}, ids)
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		ref       string
		wantID    string
		wantStage string
		wantErr   string
	}{
		{name: "default", ref: "db"},
		{name: "by stage", ref: "db:AWSPREVIOUS", wantStage: "AWSPREVIOUS"},
		{name: "by id", ref: "db#" + v2, wantID: v2},
		{name: "shift from current", ref: "db~1", wantID: deprecated},
		{name: "shift past deprecated", ref: "db~2", wantErr: "out of range"},
		{name: "shift from pending", ref: "db:AWSPENDING~1", wantID: v2},
		{name: "shift from id", ref: "db#" + v3 + "~2", wantID: v1},
		{name: "shift from deprecated id", ref: "db#" + deprecated + "~", wantErr: "out of range"},
		{name: "shift to deprecated", ref: "db#" + v2 + "~2", wantID: deprecated},
		{name: "unknown id", ref: "db#" + unknown + "~1", wantErr: "version ID " + unknown + " not found"},
		{name: "unknown stage", ref: "db:CUSTOM~1", wantErr: "staging label CUSTOM not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := &mockClient{
				listSecretVersionIdsFunc: threeVersions(t),
				getSecretValueFunc: func(_ context.Context, req *smmodel.GetSecretValueRequest) (*smmodel.GetSecretValueResult, error) {
					assert.Equal(t, "db", req.GetSecretId())
					assert.Equal(t, tt.wantID, req.GetVersionId())
					assert.Equal(t, tt.wantStage, req.GetVersionStage())

					return new(smmodel.GetSecretValueResult).WithSecretString("value"), nil
				},
			}

			ref, err := secretref.Parse(tt.ref)
			require.NoError(t, err)

			res, err := secretref.Resolve(t.Context(), client, ref)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "value", res.GetSecretString())
		})
	}
}

func TestResolveVersionID_IncludesDeprecated(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var got []*smmodel.ListSecretVersionIdsRequest

	client := &mockClient{
		listSecretVersionIdsFunc: func(_ context.Context, req *smmodel.ListSecretVersionIdsRequest) (*smmodel.ListSecretVersionIdsResult, error) {
			got = append(got, req)

			return new(smmodel.ListSecretVersionIdsResult).WithVersions([]smmodel.SecretVersionsListEntry{
				version(v3, base.Add(2*time.Hour), smmodel.StageCurrent),
				version(v2, base.Add(time.Hour)),
				version(v1, base),
			}), nil
		},
	}

	id, err := secretref.ResolveVersionID(t.Context(), client, &secretref.Ref{Name: "db", VersionID: v2, Shift: 1})
	require.NoError(t, err)
	assert.Equal(t, v1, id)

	require.Len(t, got, 1)
	assert.True(t, got[0].GetIncludeDeprecated())
}

func TestResolveVersionID_WithoutCurrent(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	client := &mockClient{
		listSecretVersionIdsFunc: func(context.Context, *smmodel.ListSecretVersionIdsRequest) (*smmodel.ListSecretVersionIdsResult, error) {
			return new(smmodel.ListSecretVersionIdsResult).WithVersions([]smmodel.SecretVersionsListEntry{
				version(v1, base),
				version(v2, base.Add(time.Minute), smmodel.StagePending),
			}), nil
		},
	}

	_, err := secretref.ResolveVersionID(t.Context(), client, &secretref.Ref{Name: "db", Shift: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "staging label AWSCURRENT not found")

	id, err := secretref.ResolveVersionID(t.Context(), client, &secretref.Ref{Name: "db", Stage: smmodel.StagePending, Shift: 1})
	require.NoError(t, err)
	assert.Equal(t, v1, id)
}

func TestResolve_Errors(t *testing.T) {
	t.Parallel()

	t.Run("get fails", func(t *testing.T) {
		t.Parallel()

		client := &mockClient{
			getSecretValueFunc: func(context.Context, *smmodel.GetSecretValueRequest) (*smmodel.GetSecretValueResult, error) {
				return nil, errors.New("boom")
			},
		}

		_, err := secretref.Resolve(t.Context(), client, &secretref.Ref{Name: "db"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get secret value")
	})

	t.Run("list fails", func(t *testing.T) {
		t.Parallel()

		client := &mockClient{
			listSecretVersionIdsFunc: func(context.Context, *smmodel.ListSecretVersionIdsRequest) (*smmodel.ListSecretVersionIdsResult, error) {
				return nil, errors.New("boom")
			},
		}

		_, err := secretref.Resolve(t.Context(), client, &secretref.Ref{Name: "db", Shift: 1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list secret versions")
	})

	t.Run("no versions", func(t *testing.T) {
		t.Parallel()

		client := &mockClient{
			listSecretVersionIdsFunc: func(context.Context, *smmodel.ListSecretVersionIdsRequest) (*smmodel.ListSecretVersionIdsResult, error) {
				return &smmodel.ListSecretVersionIdsResult{}, nil
			},
		}

		_, err := secretref.ResolveVersionID(t.Context(), client, &secretref.Ref{Name: "db", Shift: 1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no versions")
	})
}
