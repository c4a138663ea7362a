package smclient_test

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// mockAPI implements smclient.API. Unset functions fail the call.
type mockAPI struct {
	cancelRotateSecretFunc       func(ctx context.Context, in *secretsmanager.CancelRotateSecretInput) (*secretsmanager.CancelRotateSecretOutput, error)
	createSecretFunc             func(ctx context.Context, in *secretsmanager.CreateSecretInput) (*secretsmanager.CreateSecretOutput, error)
	deleteResourcePolicyFunc     func(ctx context.Context, in *secretsmanager.DeleteResourcePolicyInput) (*secretsmanager.DeleteResourcePolicyOutput, error)
	deleteSecretFunc             func(ctx context.Context, in *secretsmanager.DeleteSecretInput) (*secretsmanager.DeleteSecretOutput, error)
	describeSecretFunc           func(ctx context.Context, in *secretsmanager.DescribeSecretInput) (*secretsmanager.DescribeSecretOutput, error)
	getRandomPasswordFunc        func(ctx context.Context, in *secretsmanager.GetRandomPasswordInput) (*secretsmanager.GetRandomPasswordOutput, error)
	getResourcePolicyFunc        func(ctx context.Context, in *secretsmanager.GetResourcePolicyInput) (*secretsmanager.GetResourcePolicyOutput, error)
	getSecretValueFunc           func(ctx context.Context, in *secretsmanager.GetSecretValueInput) (*secretsmanager.GetSecretValueOutput, error)
	listSecretVersionIdsFunc     func(ctx context.Context, in *secretsmanager.ListSecretVersionIdsInput) (*secretsmanager.ListSecretVersionIdsOutput, error)
	listSecretsFunc              func(ctx context.Context, in *secretsmanager.ListSecretsInput) (*secretsmanager.ListSecretsOutput, error)
	putResourcePolicyFunc        func(ctx context.Context, in *secretsmanager.PutResourcePolicyInput) (*secretsmanager.PutResourcePolicyOutput, error)
	putSecretValueFunc           func(ctx context.Context, in *secretsmanager.PutSecretValueInput) (*secretsmanager.PutSecretValueOutput, error)
	restoreSecretFunc            func(ctx context.Context, in *secretsmanager.RestoreSecretInput) (*secretsmanager.RestoreSecretOutput, error)
	rotateSecretFunc             func(ctx context.Context, in *secretsmanager.RotateSecretInput) (*secretsmanager.RotateSecretOutput, error)
	tagResourceFunc              func(ctx context.Context, in *secretsmanager.TagResourceInput) (*secretsmanager.TagResourceOutput, error)
	untagResourceFunc            func(ctx context.Context, in *secretsmanager.UntagResourceInput) (*secretsmanager.UntagResourceOutput, error)
	updateSecretFunc             func(ctx context.Context, in *secretsmanager.UpdateSecretInput) (*secretsmanager.UpdateSecretOutput, error)
	updateSecretVersionStageFunc func(ctx context.Context, in *secretsmanager.UpdateSecretVersionStageInput) (*secretsmanager.UpdateSecretVersionStageOutput, error)
	validateResourcePolicyFunc   func(ctx context.Context, in *secretsmanager.ValidateResourcePolicyInput) (*secretsmanager.ValidateResourcePolicyOutput, error)
}

func (m *mockAPI) CancelRotateSecret(ctx context.Context, in *secretsmanager.CancelRotateSecretInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.CancelRotateSecretOutput, error) {
	if m.cancelRotateSecretFunc == nil {
		return nil, errors.New("CancelRotateSecret not mocked")
	}

	return m.cancelRotateSecretFunc(ctx, in)
}

func (m *mockAPI) CreateSecret(ctx context.Context, in *secretsmanager.CreateSecretInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.CreateSecretOutput, error) {
	if m.createSecretFunc == nil {
		return nil, errors.New("CreateSecret not mocked")
	}

	return m.createSecretFunc(ctx, in)
}

func (m *mockAPI) DeleteResourcePolicy(ctx context.Context, in *secretsmanager.DeleteResourcePolicyInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.DeleteResourcePolicyOutput, error) {
	if m.deleteResourcePolicyFunc == nil {
		return nil, errors.New("DeleteResourcePolicy not mocked")
	}

	return m.deleteResourcePolicyFunc(ctx, in)
}

func (m *mockAPI) DeleteSecret(ctx context.Context, in *secretsmanager.DeleteSecretInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.DeleteSecretOutput, error) {
	if m.deleteSecretFunc == nil {
		return nil, errors.New("DeleteSecret not mocked")
	}

	return m.deleteSecretFunc(ctx, in)
}

func (m *mockAPI) DescribeSecret(ctx context.Context, in *secretsmanager.DescribeSecretInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.DescribeSecretOutput, error) {
	if m.describeSecretFunc == nil {
		return nil, errors.New("DescribeSecret not mocked")
	}

	return m.describeSecretFunc(ctx, in)
}

func (m *mockAPI) GetRandomPassword(ctx context.Context, in *secretsmanager.GetRandomPasswordInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetRandomPasswordOutput, error) {
	if m.getRandomPasswordFunc == nil {
		return nil, errors.New("GetRandomPassword not mocked")
	}

	return m.getRandomPasswordFunc(ctx, in)
}

func (m *mockAPI) GetResourcePolicy(ctx context.Context, in *secretsmanager.GetResourcePolicyInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetResourcePolicyOutput, error) {
	if m.getResourcePolicyFunc == nil {
		return nil, errors.New("GetResourcePolicy not mocked")
	}

	return m.getResourcePolicyFunc(ctx, in)
}

func (m *mockAPI) GetSecretValue(ctx context.Context, in *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	if m.getSecretValueFunc == nil {
		return nil, errors.New("GetSecretValue not mocked")
	}

	return m.getSecretValueFunc(ctx, in)
}

func (m *mockAPI) ListSecretVersionIds(ctx context.Context, in *secretsmanager.ListSecretVersionIdsInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.ListSecretVersionIdsOutput, error) {
	if m.listSecretVersionIdsFunc == nil {
		return nil, errors.New("ListSecretVersionIds not mocked")
	}

	return m.listSecretVersionIdsFunc(ctx, in)
}

func (m *mockAPI) ListSecrets(ctx context.Context, in *secretsmanager.ListSecretsInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.ListSecretsOutput, error) {
	if m.listSecretsFunc == nil {
		return nil, errors.New("ListSecrets not mocked")
	}

	return m.listSecretsFunc(ctx, in)
}

func (m *mockAPI) PutResourcePolicy(ctx context.Context, in *secretsmanager.PutResourcePolicyInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.PutResourcePolicyOutput, error) {
	if m.putResourcePolicyFunc == nil {
		return nil, errors.New("PutResourcePolicy not mocked")
	}

	return m.putResourcePolicyFunc(ctx, in)
}

func (m *mockAPI) PutSecretValue(ctx context.Context, in *secretsmanager.PutSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.PutSecretValueOutput, error) {
	if m.putSecretValueFunc == nil {
		return nil, errors.New("PutSecretValue not mocked")
	}

	return m.putSecretValueFunc(ctx, in)
}

func (m *mockAPI) RestoreSecret(ctx context.Context, in *secretsmanager.RestoreSecretInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.RestoreSecretOutput, error) {
	if m.restoreSecretFunc == nil {
		return nil, errors.New("RestoreSecret not mocked")
	}

	return m.restoreSecretFunc(ctx, in)
}

func (m *mockAPI) RotateSecret(ctx context.Context, in *secretsmanager.RotateSecretInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.RotateSecretOutput, error) {
	if m.rotateSecretFunc == nil {
		return nil, errors.New("RotateSecret not mocked")
	}

	return m.rotateSecretFunc(ctx, in)
}

func (m *mockAPI) TagResource(ctx context.Context, in *secretsmanager.TagResourceInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.TagResourceOutput, error) {
	if m.tagResourceFunc == nil {
		return nil, errors.New("TagResource not mocked")
	}

	return m.tagResourceFunc(ctx, in)
}

func (m *mockAPI) UntagResource(ctx context.Context, in *secretsmanager.UntagResourceInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.UntagResourceOutput, error) {
	if m.untagResourceFunc == nil {
		return nil, errors.New("UntagResource not mocked")
	}

	return m.untagResourceFunc(ctx, in)
}

func (m *mockAPI) UpdateSecret(ctx context.Context, in *secretsmanager.UpdateSecretInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.UpdateSecretOutput, error) {
	if m.updateSecretFunc == nil {
		return nil, errors.New("UpdateSecret not mocked")
	}

	return m.updateSecretFunc(ctx, in)
}

func (m *mockAPI) UpdateSecretVersionStage(ctx context.Context, in *secretsmanager.UpdateSecretVersionStageInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.UpdateSecretVersionStageOutput, error) {
	if m.updateSecretVersionStageFunc == nil {
		return nil, errors.New("UpdateSecretVersionStage not mocked")
	}

	return m.updateSecretVersionStageFunc(ctx, in)
}

func (m *mockAPI) ValidateResourcePolicy(ctx context.Context, in *secretsmanager.ValidateResourcePolicyInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.ValidateResourcePolicyOutput, error) {
	if m.validateResourcePolicyFunc == nil {
		return nil, errors.New("ValidateResourcePolicy not mocked")
	}

	return m.validateResourcePolicyFunc(ctx, in)
}
