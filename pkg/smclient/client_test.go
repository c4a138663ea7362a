package smclient_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
	"github.com/aws/smithy-go"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpyw/smkit/pkg/smclient"
	"github.com/mpyw/smkit/pkg/smmodel"
)

const fixedToken = "11111111-2222-3333-4444-555555555555"

const previousVersion = "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"

func newClient(api *mockAPI, opts ...smclient.Option) *smclient.Client {
	opts = append([]smclient.Option{smclient.WithTokenGenerator(func() string { return fixedToken })}, opts...)

	return smclient.New(api, opts...)
}

func TestClient_CreateSecret(t *testing.T) {
	t.Parallel()

	t.Run("converts request and fills token", func(t *testing.T) {
		t.Parallel()

		api := &mockAPI{
			createSecretFunc: func(_ context.Context, in *secretsmanager.CreateSecretInput) (*secretsmanager.CreateSecretOutput, error) {
				assert.Equal(t, "db-creds", lo.FromPtr(in.Name))
				assert.Equal(t, `{"u":"a"}`, lo.FromPtr(in.SecretString))
				assert.Nil(t, in.SecretBinary)
				assert.Equal(t, fixedToken, lo.FromPtr(in.ClientRequestToken))
				assert.Equal(t, []types.Tag{{Key: lo.ToPtr("env"), Value: lo.ToPtr("prod")}}, in.Tags)

				return &secretsmanager.CreateSecretOutput{
					ARN:       lo.ToPtr("arn:aws:secretsmanager:us-east-1:123456789012:secret:db-creds-AbCdEf"),
					Name:      in.Name,
					VersionId: in.ClientRequestToken,
				}, nil
			},
		}

		req := new(smmodel.CreateSecretRequest).
			WithName("db-creds").
			WithSecretString(`{"u":"a"}`).
			AppendTags(*smmodel.NewTag("env", "prod"))

		res, err := newClient(api).CreateSecret(t.Context(), req)
		require.NoError(t, err)
		assert.Equal(t, "db-creds", res.GetName())
		assert.Equal(t, fixedToken, res.GetVersionId())
		assert.Nil(t, req.ClientRequestToken, "caller's request must not be modified")
	})

	t.Run("keeps explicit token", func(t *testing.T) {
		t.Parallel()

		const token = "explicit-token-explicit-token-0001"

		api := &mockAPI{
			createSecretFunc: func(_ context.Context, in *secretsmanager.CreateSecretInput) (*secretsmanager.CreateSecretOutput, error) {
				assert.Equal(t, token, lo.FromPtr(in.ClientRequestToken))

				return &secretsmanager.CreateSecretOutput{}, nil
			},
		}

		_, err := newClient(api).CreateSecret(t.Context(), new(smmodel.CreateSecretRequest).
			WithName("db-creds").
			WithClientRequestToken(token))
		require.NoError(t, err)
	})

	t.Run("default generator yields a UUID", func(t *testing.T) {
		t.Parallel()

		api := &mockAPI{
			createSecretFunc: func(_ context.Context, in *secretsmanager.CreateSecretInput) (*secretsmanager.CreateSecretOutput, error) {
				assert.Len(t, lo.FromPtr(in.ClientRequestToken), 36)

				return &secretsmanager.CreateSecretOutput{}, nil
			},
		}

		_, err := smclient.New(api).CreateSecret(t.Context(), new(smmodel.CreateSecretRequest).WithName("db-creds"))
		require.NoError(t, err)
	})
}

func TestClient_Validation(t *testing.T) {
	t.Parallel()

	called := false
	api := &mockAPI{
		getSecretValueFunc: func(context.Context, *secretsmanager.GetSecretValueInput) (*secretsmanager.GetSecretValueOutput, error) {
			called = true

			return &secretsmanager.GetSecretValueOutput{}, nil
		},
	}
	client := newClient(api)

	_, err := client.GetSecretValue(t.Context(), new(smmodel.GetSecretValueRequest))
	require.Error(t, err)
	assert.ErrorIs(t, err, smmodel.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "GetSecretValue")
	assert.Contains(t, err.Error(), "SecretId")

	_, err = client.GetSecretValue(t.Context(), nil)
	require.ErrorIs(t, err, smclient.ErrNilRequest)
	require.ErrorIs(t, err, smmodel.ErrInvalidArgument)

	assert.False(t, called, "invalid requests must not reach the API")
}

func TestClient_APIErrors(t *testing.T) {
	t.Parallel()

	t.Run("service error passes through", func(t *testing.T) {
		t.Parallel()

		api := &mockAPI{
			deleteSecretFunc: func(context.Context, *secretsmanager.DeleteSecretInput) (*secretsmanager.DeleteSecretOutput, error) {
				return nil, &smithy.GenericAPIError{Code: "InvalidRequestException", Message: "already scheduled"}
			},
		}

		_, err := newClient(api).DeleteSecret(t.Context(), new(smmodel.DeleteSecretRequest).WithSecretId("db-creds"))

		var apiErr smithy.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "InvalidRequestException", apiErr.ErrorCode())
		assert.False(t, smclient.IsNotFound(err))
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		api := &mockAPI{
			describeSecretFunc: func(context.Context, *secretsmanager.DescribeSecretInput) (*secretsmanager.DescribeSecretOutput, error) {
				return nil, &types.ResourceNotFoundException{Message: lo.ToPtr("no such secret")}
			},
		}

		_, err := newClient(api).DescribeSecret(t.Context(), new(smmodel.DescribeSecretRequest).WithSecretId("missing"))
		require.Error(t, err)
		assert.True(t, smclient.IsNotFound(err))
	})
}

func TestClient_DescribeSecret(t *testing.T) {
	t.Parallel()

	changed := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	api := &mockAPI{
		describeSecretFunc: func(_ context.Context, in *secretsmanager.DescribeSecretInput) (*secretsmanager.DescribeSecretOutput, error) {
			assert.Equal(t, "db-creds", lo.FromPtr(in.SecretId))

			return &secretsmanager.DescribeSecretOutput{
				Name:              lo.ToPtr("db-creds"),
				Description:       lo.ToPtr("database"),
				LastChangedDate:   &changed,
				RotationEnabled:   lo.ToPtr(true),
				RotationLambdaARN: lo.ToPtr("arn:aws:lambda:us-east-1:123456789012:function:rotate"),
				RotationRules: &types.RotationRulesType{
					AutomaticallyAfterDays: lo.ToPtr(int64(30)),
					ScheduleExpression:     lo.ToPtr("rate(30 days)"),
				},
				Tags: []types.Tag{{Key: lo.ToPtr("env"), Value: lo.ToPtr("prod")}},
				VersionIdsToStages: map[string][]string{
					"v1": {"AWSPREVIOUS"},
					"v2": {"AWSCURRENT"},
				},
			}, nil
		},
	}

	res, err := newClient(api).DescribeSecret(t.Context(), new(smmodel.DescribeSecretRequest).WithSecretId("db-creds"))
	require.NoError(t, err)

	want := new(smmodel.DescribeSecretResult).
		WithName("db-creds").
		WithDescription("database").
		WithLastChangedDate(changed).
		WithRotationEnabled(true).
		WithRotationLambdaARN("arn:aws:lambda:us-east-1:123456789012:function:rotate").
		WithRotationRules(new(smmodel.RotationRules).WithAutomaticallyAfterDays(30)).
		WithTags([]smmodel.Tag{*smmodel.NewTag("env", "prod")}).
		WithVersionIdsToStages(map[string][]string{
			"v1": {smmodel.StagePrevious},
			"v2": {smmodel.StageCurrent},
		})

	assert.True(t, want.Equal(res), "got %s", res)

	current, ok := res.GetVersionIdsToStages().VersionFor(smmodel.StageCurrent)
	assert.True(t, ok)
	assert.Equal(t, "v2", current)
}

func TestClient_ListSecrets(t *testing.T) {
	t.Parallel()

	api := &mockAPI{
		listSecretsFunc: func(_ context.Context, in *secretsmanager.ListSecretsInput) (*secretsmanager.ListSecretsOutput, error) {
			assert.Equal(t, types.SortOrderTypeDesc, in.SortOrder)
			assert.Equal(t, int32(10), lo.FromPtr(in.MaxResults))
			assert.Equal(t, []types.Filter{{Key: types.FilterNameStringTypeTagKey, Values: []string{"env"}}}, in.Filters)

			return &secretsmanager.ListSecretsOutput{
				NextToken: lo.ToPtr("next"),
				SecretList: []types.SecretListEntry{
					{
						Name:                   lo.ToPtr("db-creds"),
						SecretVersionsToStages: map[string][]string{"v1": {"AWSCURRENT"}},
						Tags:                   []types.Tag{{Key: lo.ToPtr("env"), Value: lo.ToPtr("prod")}},
					},
				},
			}, nil
		},
	}

	req := new(smmodel.ListSecretsRequest).
		WithSortOrder(smmodel.SortOrderTypeDesc).
		WithMaxResults(10).
		AppendFilters(*new(smmodel.Filter).WithKey(smmodel.FilterNameStringTypeTagKey).WithValues([]string{"env"}))

	res, err := newClient(api).ListSecrets(t.Context(), req)
	require.NoError(t, err)
	assert.Equal(t, "next", res.GetNextToken())
	require.Len(t, res.GetSecretList(), 1)

	entry := res.GetSecretList()[0]
	assert.Equal(t, "db-creds", entry.GetName())
	assert.Equal(t, "prod", entry.GetTags()[0].GetValue())
	assert.Equal(t, []string{"v1"}, entry.GetSecretVersionsToStages().VersionIDs())
}

func TestClient_UpdateSecret_Token(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       *smmodel.UpdateSecretRequest
		wantToken string
	}{
		{
			name: "metadata only",
			req:  new(smmodel.UpdateSecretRequest).WithSecretId("db-creds").WithDescription("d"),
		},
		{
			name:      "with payload",
			req:       new(smmodel.UpdateSecretRequest).WithSecretId("db-creds").WithSecretBinary([]byte{1}),
			wantToken: fixedToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api := &mockAPI{
				updateSecretFunc: func(_ context.Context, in *secretsmanager.UpdateSecretInput) (*secretsmanager.UpdateSecretOutput, error) {
					assert.Equal(t, tt.wantToken, lo.FromPtr(in.ClientRequestToken))

					return &secretsmanager.UpdateSecretOutput{}, nil
				},
			}

			_, err := newClient(api).UpdateSecret(t.Context(), tt.req)
			require.NoError(t, err)
		})
	}
}

func TestClient_ValidateResourcePolicy(t *testing.T) {
	t.Parallel()

	api := &mockAPI{
		validateResourcePolicyFunc: func(_ context.Context, in *secretsmanager.ValidateResourcePolicyInput) (*secretsmanager.ValidateResourcePolicyOutput, error) {
			assert.Nil(t, in.SecretId)

			return &secretsmanager.ValidateResourcePolicyOutput{
				PolicyValidationPassed: false,
				ValidationErrors: []types.ValidationErrorsEntry{
					{CheckName: lo.ToPtr("BLOCK_PUBLIC_POLICY"), ErrorMessage: lo.ToPtr("grants public access")},
				},
			}, nil
		},
	}

	res, err := newClient(api).ValidateResourcePolicy(t.Context(), new(smmodel.ValidateResourcePolicyRequest).WithResourcePolicy("{}"))
	require.NoError(t, err)
	require.NotNil(t, res.PolicyValidationPassed)
	assert.False(t, res.GetPolicyValidationPassed())
	require.Len(t, res.GetValidationErrors(), 1)
	assert.Equal(t, "BLOCK_PUBLIC_POLICY", res.GetValidationErrors()[0].GetCheckName())
}

func TestClient_RotateSecret(t *testing.T) {
	t.Parallel()

	api := &mockAPI{
		rotateSecretFunc: func(_ context.Context, in *secretsmanager.RotateSecretInput) (*secretsmanager.RotateSecretOutput, error) {
			assert.Equal(t, int64(7), lo.FromPtr(in.RotationRules.AutomaticallyAfterDays))
			assert.Equal(t, fixedToken, lo.FromPtr(in.ClientRequestToken))

			return &secretsmanager.RotateSecretOutput{VersionId: in.ClientRequestToken}, nil
		},
	}

	res, err := newClient(api).RotateSecret(t.Context(), new(smmodel.RotateSecretRequest).
		WithSecretId("db-creds").
		WithRotationRules(new(smmodel.RotationRules).WithAutomaticallyAfterDays(7)))
	require.NoError(t, err)
	assert.Equal(t, fixedToken, res.GetVersionId())
}

func TestClient_RemainingOperations(t *testing.T) {
	t.Parallel()

	const id = "db-creds"

	arn := lo.ToPtr("arn:aws:secretsmanager:us-east-1:123456789012:secret:db-creds-AbCdEf")
	api := &mockAPI{
		cancelRotateSecretFunc: func(_ context.Context, in *secretsmanager.CancelRotateSecretInput) (*secretsmanager.CancelRotateSecretOutput, error) {
			return &secretsmanager.CancelRotateSecretOutput{ARN: arn, Name: in.SecretId}, nil
		},
		deleteResourcePolicyFunc: func(_ context.Context, in *secretsmanager.DeleteResourcePolicyInput) (*secretsmanager.DeleteResourcePolicyOutput, error) {
			return &secretsmanager.DeleteResourcePolicyOutput{ARN: arn, Name: in.SecretId}, nil
		},
		getRandomPasswordFunc: func(_ context.Context, in *secretsmanager.GetRandomPasswordInput) (*secretsmanager.GetRandomPasswordOutput, error) {
			return &secretsmanager.GetRandomPasswordOutput{RandomPassword: lo.ToPtr(string(make([]byte, lo.FromPtr(in.PasswordLength))))}, nil
		},
		getResourcePolicyFunc: func(_ context.Context, in *secretsmanager.GetResourcePolicyInput) (*secretsmanager.GetResourcePolicyOutput, error) {
			return &secretsmanager.GetResourcePolicyOutput{ARN: arn, Name: in.SecretId, ResourcePolicy: lo.ToPtr("{}")}, nil
		},
		getSecretValueFunc: func(_ context.Context, in *secretsmanager.GetSecretValueInput) (*secretsmanager.GetSecretValueOutput, error) {
			return &secretsmanager.GetSecretValueOutput{Name: in.SecretId, SecretBinary: []byte("bin"), VersionStages: []string{"AWSCURRENT"}}, nil
		},
		listSecretVersionIdsFunc: func(_ context.Context, in *secretsmanager.ListSecretVersionIdsInput) (*secretsmanager.ListSecretVersionIdsOutput, error) {
			return &secretsmanager.ListSecretVersionIdsOutput{
				Name:     in.SecretId,
				Versions: []types.SecretVersionsListEntry{{VersionId: lo.ToPtr(previousVersion), KmsKeyIds: []string{"ignored"}}},
			}, nil
		},
		putResourcePolicyFunc: func(_ context.Context, in *secretsmanager.PutResourcePolicyInput) (*secretsmanager.PutResourcePolicyOutput, error) {
			assert.True(t, lo.FromPtr(in.BlockPublicPolicy))

			return &secretsmanager.PutResourcePolicyOutput{ARN: arn, Name: in.SecretId}, nil
		},
		putSecretValueFunc: func(_ context.Context, in *secretsmanager.PutSecretValueInput) (*secretsmanager.PutSecretValueOutput, error) {
			return &secretsmanager.PutSecretValueOutput{Name: in.SecretId, VersionId: in.ClientRequestToken, VersionStages: in.VersionStages}, nil
		},
		restoreSecretFunc: func(_ context.Context, in *secretsmanager.RestoreSecretInput) (*secretsmanager.RestoreSecretOutput, error) {
			return &secretsmanager.RestoreSecretOutput{ARN: arn, Name: in.SecretId}, nil
		},
		tagResourceFunc: func(_ context.Context, in *secretsmanager.TagResourceInput) (*secretsmanager.TagResourceOutput, error) {
			assert.Len(t, in.Tags, 1)

			return &secretsmanager.TagResourceOutput{}, nil
		},
		untagResourceFunc: func(_ context.Context, in *secretsmanager.UntagResourceInput) (*secretsmanager.UntagResourceOutput, error) {
			assert.Equal(t, []string{"env"}, in.TagKeys)

			return nil, nil //nolint:nilnil // exercises the nil output path
		},
		updateSecretVersionStageFunc: func(_ context.Context, in *secretsmanager.UpdateSecretVersionStageInput) (*secretsmanager.UpdateSecretVersionStageOutput, error) {
			assert.Equal(t, previousVersion, lo.FromPtr(in.RemoveFromVersionId))

			return &secretsmanager.UpdateSecretVersionStageOutput{ARN: arn, Name: in.SecretId}, nil
		},
	}
	client := newClient(api)
	ctx := t.Context()

	cancelled, err := client.CancelRotateSecret(ctx, new(smmodel.CancelRotateSecretRequest).WithSecretId(id))
	require.NoError(t, err)
	assert.Equal(t, id, cancelled.GetName())

	deleted, err := client.DeleteResourcePolicy(ctx, new(smmodel.DeleteResourcePolicyRequest).WithSecretId(id))
	require.NoError(t, err)
	assert.Equal(t, *arn, deleted.GetARN())

	password, err := client.GetRandomPassword(ctx, new(smmodel.GetRandomPasswordRequest).WithPasswordLength(16))
	require.NoError(t, err)
	assert.Len(t, password.GetRandomPassword(), 16)

	policy, err := client.GetResourcePolicy(ctx, new(smmodel.GetResourcePolicyRequest).WithSecretId(id))
	require.NoError(t, err)
	assert.Equal(t, "{}", policy.GetResourcePolicy())

	value, err := client.GetSecretValue(ctx, new(smmodel.GetSecretValueRequest).WithSecretId(id))
	require.NoError(t, err)
	assert.True(t, value.HasSecretBinary())
	assert.Equal(t, "bin", value.Payload())

	versions, err := client.ListSecretVersionIds(ctx, new(smmodel.ListSecretVersionIdsRequest).WithSecretId(id))
	require.NoError(t, err)
	assert.Equal(t, previousVersion, versions.GetVersions()[0].GetVersionId())

	_, err = client.PutResourcePolicy(ctx, new(smmodel.PutResourcePolicyRequest).
		WithSecretId(id).
		WithResourcePolicy("{}").
		WithBlockPublicPolicy(true))
	require.NoError(t, err)

	put, err := client.PutSecretValue(ctx, new(smmodel.PutSecretValueRequest).
		WithSecretId(id).
		WithSecretString("v2").
		WithVersionStages([]string{"CUSTOM"}))
	require.NoError(t, err)
	assert.Equal(t, fixedToken, put.GetVersionId())
	assert.Equal(t, []string{"CUSTOM"}, put.GetVersionStages())

	restored, err := client.RestoreSecret(ctx, new(smmodel.RestoreSecretRequest).WithSecretId(id))
	require.NoError(t, err)
	assert.Equal(t, id, restored.GetName())

	_, err = client.TagResource(ctx, new(smmodel.TagResourceRequest).WithSecretId(id).AppendTags(*smmodel.NewTag("env", "prod")))
	require.NoError(t, err)

	untagged, err := client.UntagResource(ctx, new(smmodel.UntagResourceRequest).WithSecretId(id).WithTagKeys([]string{"env"}))
	require.NoError(t, err)
	assert.NotNil(t, untagged)

	_, err = client.UpdateSecretVersionStage(ctx, new(smmodel.UpdateSecretVersionStageRequest).
		WithSecretId(id).
		WithVersionStage(smmodel.StageCurrent).
		WithRemoveFromVersionId(previousVersion))
	require.NoError(t, err)
}

func TestClient_Logging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	api := &mockAPI{
		putSecretValueFunc: func(context.Context, *secretsmanager.PutSecretValueInput) (*secretsmanager.PutSecretValueOutput, error) {
			return nil, errors.New("throttled")
		},
	}

	_, err := newClient(api, smclient.WithLogger(logger)).PutSecretValue(t.Context(),
		new(smmodel.PutSecretValueRequest).WithSecretId("db-creds").WithSecretString("hunter2"))
	require.Error(t, err)

	assert.Contains(t, buf.String(), "operation=PutSecretValue")
	assert.Contains(t, buf.String(), "throttled")
	assert.NotContains(t, buf.String(), "hunter2")
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	client := smclient.NewFromConfig(aws.Config{Region: "us-east-1"})
	assert.NotNil(t, client)
}
