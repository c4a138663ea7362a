// Package testutil provides fakes shared by tests.
package testutil

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/samber/lo"

	"github.com/mpyw/smkit/pkg/smclient"
	"github.com/mpyw/smkit/pkg/smmodel"
)

// FakeSecretsManager implements smclient.SecretsManager with function fields.
// Calling an operation whose function is nil returns an error.
type FakeSecretsManager struct {
	CancelRotateSecretFunc       func(ctx context.Context, req *smmodel.CancelRotateSecretRequest) (*smmodel.CancelRotateSecretResult, error)
	CreateSecretFunc             func(ctx context.Context, req *smmodel.CreateSecretRequest) (*smmodel.CreateSecretResult, error)
	DeleteResourcePolicyFunc     func(ctx context.Context, req *smmodel.DeleteResourcePolicyRequest) (*smmodel.DeleteResourcePolicyResult, error)
	DeleteSecretFunc             func(ctx context.Context, req *smmodel.DeleteSecretRequest) (*smmodel.DeleteSecretResult, error)
	DescribeSecretFunc           func(ctx context.Context, req *smmodel.DescribeSecretRequest) (*smmodel.DescribeSecretResult, error)
	GetRandomPasswordFunc        func(ctx context.Context, req *smmodel.GetRandomPasswordRequest) (*smmodel.GetRandomPasswordResult, error)
	GetResourcePolicyFunc        func(ctx context.Context, req *smmodel.GetResourcePolicyRequest) (*smmodel.GetResourcePolicyResult, error)
	GetSecretValueFunc           func(ctx context.Context, req *smmodel.GetSecretValueRequest) (*smmodel.GetSecretValueResult, error)
	ListSecretVersionIdsFunc     func(ctx context.Context, req *smmodel.ListSecretVersionIdsRequest) (*smmodel.ListSecretVersionIdsResult, error)
	ListSecretsFunc              func(ctx context.Context, req *smmodel.ListSecretsRequest) (*smmodel.ListSecretsResult, error)
	PutResourcePolicyFunc        func(ctx context.Context, req *smmodel.PutResourcePolicyRequest) (*smmodel.PutResourcePolicyResult, error)
	PutSecretValueFunc           func(ctx context.Context, req *smmodel.PutSecretValueRequest) (*smmodel.PutSecretValueResult, error)
	RestoreSecretFunc            func(ctx context.Context, req *smmodel.RestoreSecretRequest) (*smmodel.RestoreSecretResult, error)
	RotateSecretFunc             func(ctx context.Context, req *smmodel.RotateSecretRequest) (*smmodel.RotateSecretResult, error)
	TagResourceFunc              func(ctx context.Context, req *smmodel.TagResourceRequest) (*smmodel.TagResourceResult, error)
	UntagResourceFunc            func(ctx context.Context, req *smmodel.UntagResourceRequest) (*smmodel.UntagResourceResult, error)
	UpdateSecretFunc             func(ctx context.Context, req *smmodel.UpdateSecretRequest) (*smmodel.UpdateSecretResult, error)
	UpdateSecretVersionStageFunc func(ctx context.Context, req *smmodel.UpdateSecretVersionStageRequest) (*smmodel.UpdateSecretVersionStageResult, error)
	ValidateResourcePolicyFunc   func(ctx context.Context, req *smmodel.ValidateResourcePolicyRequest) (*smmodel.ValidateResourcePolicyResult, error)
}

var _ smclient.SecretsManager = (*FakeSecretsManager)(nil)

func (f *FakeSecretsManager) CancelRotateSecret(ctx context.Context, req *smmodel.CancelRotateSecretRequest) (*smmodel.CancelRotateSecretResult, error) {
	if f.CancelRotateSecretFunc == nil {
		return nil, notMocked("CancelRotateSecret")
	}

	return f.CancelRotateSecretFunc(ctx, req)
}

func (f *FakeSecretsManager) CreateSecret(ctx context.Context, req *smmodel.CreateSecretRequest) (*smmodel.CreateSecretResult, error) {
	if f.CreateSecretFunc == nil {
		return nil, notMocked("CreateSecret")
	}

	return f.CreateSecretFunc(ctx, req)
}

func (f *FakeSecretsManager) DeleteResourcePolicy(ctx context.Context, req *smmodel.DeleteResourcePolicyRequest) (*smmodel.DeleteResourcePolicyResult, error) {
	if f.DeleteResourcePolicyFunc == nil {
		return nil, notMocked("DeleteResourcePolicy")
	}

	return f.DeleteResourcePolicyFunc(ctx, req)
}

func (f *FakeSecretsManager) DeleteSecret(ctx context.Context, req *smmodel.DeleteSecretRequest) (*smmodel.DeleteSecretResult, error) {
	if f.DeleteSecretFunc == nil {
		return nil, notMocked("DeleteSecret")
	}

	return f.DeleteSecretFunc(ctx, req)
}

func (f *FakeSecretsManager) DescribeSecret(ctx context.Context, req *smmodel.DescribeSecretRequest) (*smmodel.DescribeSecretResult, error) {
	if f.DescribeSecretFunc == nil {
		return nil, notMocked("DescribeSecret")
	}

	return f.DescribeSecretFunc(ctx, req)
}

func (f *FakeSecretsManager) GetRandomPassword(ctx context.Context, req *smmodel.GetRandomPasswordRequest) (*smmodel.GetRandomPasswordResult, error) {
	if f.GetRandomPasswordFunc == nil {
		return nil, notMocked("GetRandomPassword")
	}

	return f.GetRandomPasswordFunc(ctx, req)
}

func (f *FakeSecretsManager) GetResourcePolicy(ctx context.Context, req *smmodel.GetResourcePolicyRequest) (*smmodel.GetResourcePolicyResult, error) {
	if f.GetResourcePolicyFunc == nil {
		return nil, notMocked("GetResourcePolicy")
	}

	return f.GetResourcePolicyFunc(ctx, req)
}

func (f *FakeSecretsManager) GetSecretValue(ctx context.Context, req *smmodel.GetSecretValueRequest) (*smmodel.GetSecretValueResult, error) {
	if f.GetSecretValueFunc == nil {
		return nil, notMocked("GetSecretValue")
	}

	return f.GetSecretValueFunc(ctx, req)
}

func (f *FakeSecretsManager) ListSecretVersionIds(ctx context.Context, req *smmodel.ListSecretVersionIdsRequest) (*smmodel.ListSecretVersionIdsResult, error) {
	if f.ListSecretVersionIdsFunc == nil {
		return nil, notMocked("ListSecretVersionIds")
	}

	return f.ListSecretVersionIdsFunc(ctx, req)
}

func (f *FakeSecretsManager) ListSecrets(ctx context.Context, req *smmodel.ListSecretsRequest) (*smmodel.ListSecretsResult, error) {
	if f.ListSecretsFunc == nil {
		return nil, notMocked("ListSecrets")
	}

	return f.ListSecretsFunc(ctx, req)
}

func (f *FakeSecretsManager) PutResourcePolicy(ctx context.Context, req *smmodel.PutResourcePolicyRequest) (*smmodel.PutResourcePolicyResult, error) {
	if f.PutResourcePolicyFunc == nil {
		return nil, notMocked("PutResourcePolicy")
	}

	return f.PutResourcePolicyFunc(ctx, req)
}

func (f *FakeSecretsManager) PutSecretValue(ctx context.Context, req *smmodel.PutSecretValueRequest) (*smmodel.PutSecretValueResult, error) {
	if f.PutSecretValueFunc == nil {
		return nil, notMocked("PutSecretValue")
	}

	return f.PutSecretValueFunc(ctx, req)
}

func (f *FakeSecretsManager) RestoreSecret(ctx context.Context, req *smmodel.RestoreSecretRequest) (*smmodel.RestoreSecretResult, error) {
	if f.RestoreSecretFunc == nil {
		return nil, notMocked("RestoreSecret")
	}

	return f.RestoreSecretFunc(ctx, req)
}

func (f *FakeSecretsManager) RotateSecret(ctx context.Context, req *smmodel.RotateSecretRequest) (*smmodel.RotateSecretResult, error) {
	if f.RotateSecretFunc == nil {
		return nil, notMocked("RotateSecret")
	}

	return f.RotateSecretFunc(ctx, req)
}

func (f *FakeSecretsManager) TagResource(ctx context.Context, req *smmodel.TagResourceRequest) (*smmodel.TagResourceResult, error) {
	if f.TagResourceFunc == nil {
		return nil, notMocked("TagResource")
	}

	return f.TagResourceFunc(ctx, req)
}

func (f *FakeSecretsManager) UntagResource(ctx context.Context, req *smmodel.UntagResourceRequest) (*smmodel.UntagResourceResult, error) {
	if f.UntagResourceFunc == nil {
		return nil, notMocked("UntagResource")
	}

	return f.UntagResourceFunc(ctx, req)
}

func (f *FakeSecretsManager) UpdateSecret(ctx context.Context, req *smmodel.UpdateSecretRequest) (*smmodel.UpdateSecretResult, error) {
	if f.UpdateSecretFunc == nil {
		return nil, notMocked("UpdateSecret")
	}

	return f.UpdateSecretFunc(ctx, req)
}

func (f *FakeSecretsManager) UpdateSecretVersionStage(ctx context.Context, req *smmodel.UpdateSecretVersionStageRequest) (*smmodel.UpdateSecretVersionStageResult, error) {
	if f.UpdateSecretVersionStageFunc == nil {
		return nil, notMocked("UpdateSecretVersionStage")
	}

	return f.UpdateSecretVersionStageFunc(ctx, req)
}

func (f *FakeSecretsManager) ValidateResourcePolicy(ctx context.Context, req *smmodel.ValidateResourcePolicyRequest) (*smmodel.ValidateResourcePolicyResult, error) {
	if f.ValidateResourcePolicyFunc == nil {
		return nil, notMocked("ValidateResourcePolicy")
	}

	return f.ValidateResourcePolicyFunc(ctx, req)
}

// Epoch is a fixed creation date for fake versions.
var Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func notMocked(op string) error {
	return fmt.Errorf("%s not mocked", op)
}

// Version returns a version list entry created at created with the given labels.
func Version(id string, created time.Time, stages ...string) smmodel.SecretVersionsListEntry {
	return *new(smmodel.SecretVersionsListEntry).
		WithVersionId(id).
		WithCreatedDate(created).
		WithVersionStages(stages)
}

// Versions returns a ListSecretVersionIdsFunc serving versions in one page.
func Versions(versions ...smmodel.SecretVersionsListEntry) func(context.Context, *smmodel.ListSecretVersionIdsRequest) (*smmodel.ListSecretVersionIdsResult, error) {
	return func(_ context.Context, req *smmodel.ListSecretVersionIdsRequest) (*smmodel.ListSecretVersionIdsResult, error) {
		return new(smmodel.ListSecretVersionIdsResult).
			WithName(req.GetSecretId()).
			WithVersions(versions), nil
	}
}

// Values returns a GetSecretValueFunc serving string values by version ID.
// Requests by stage or without a version resolve through stages, which
// also supply the labels of the returned version.
func Values(values map[string]string, stages map[string]string) func(context.Context, *smmodel.GetSecretValueRequest) (*smmodel.GetSecretValueResult, error) {
	return func(_ context.Context, req *smmodel.GetSecretValueRequest) (*smmodel.GetSecretValueResult, error) {
		id := req.GetVersionId()
		if id == "" {
			stage := req.GetVersionStage()
			if stage == "" {
				stage = smmodel.StageCurrent
			}

			id = stages[stage]
		}

		value, ok := values[id]
		if !ok {
			return nil, fmt.Errorf("version %q of %s not found", id, req.GetSecretId())
		}

		held := lo.Keys(lo.PickByValues(stages, []string{id}))
		slices.Sort(held)

		res := new(smmodel.GetSecretValueResult).
			WithName(req.GetSecretId()).
			WithARN("arn:aws:secretsmanager:us-east-1:123456789012:secret:" + req.GetSecretId() + "-AbCdEf").
			WithVersionId(id).
			WithSecretString(value)
		if len(held) > 0 {
			res.WithVersionStages(held)
		}

		return res, nil
	}
}
