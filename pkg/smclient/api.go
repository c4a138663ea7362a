package smclient

import (
	"context"

	"github.com/mpyw/smkit/pkg/smmodel"
)

// CancelRotateSecretAPI is the interface for cancelling a rotation.
type CancelRotateSecretAPI interface {
	CancelRotateSecret(ctx context.Context, req *smmodel.CancelRotateSecretRequest) (*smmodel.CancelRotateSecretResult, error)
}

// CreateSecretAPI is the interface for creating a secret.
type CreateSecretAPI interface {
	CreateSecret(ctx context.Context, req *smmodel.CreateSecretRequest) (*smmodel.CreateSecretResult, error)
}

// DeleteResourcePolicyAPI is the interface for deleting a resource policy.
type DeleteResourcePolicyAPI interface {
	DeleteResourcePolicy(ctx context.Context, req *smmodel.DeleteResourcePolicyRequest) (*smmodel.DeleteResourcePolicyResult, error)
}

// DeleteSecretAPI is the interface for deleting a secret.
type DeleteSecretAPI interface {
	DeleteSecret(ctx context.Context, req *smmodel.DeleteSecretRequest) (*smmodel.DeleteSecretResult, error)
}

// DescribeSecretAPI is the interface for getting secret metadata.
type DescribeSecretAPI interface {
	DescribeSecret(ctx context.Context, req *smmodel.DescribeSecretRequest) (*smmodel.DescribeSecretResult, error)
}

// GetRandomPasswordAPI is the interface for generating a random password.
type GetRandomPasswordAPI interface {
	GetRandomPassword(ctx context.Context, req *smmodel.GetRandomPasswordRequest) (*smmodel.GetRandomPasswordResult, error)
}

// GetResourcePolicyAPI is the interface for getting a resource policy.
type GetResourcePolicyAPI interface {
	GetResourcePolicy(ctx context.Context, req *smmodel.GetResourcePolicyRequest) (*smmodel.GetResourcePolicyResult, error)
}

// GetSecretValueAPI is the interface for getting a secret value.
type GetSecretValueAPI interface {
	GetSecretValue(ctx context.Context, req *smmodel.GetSecretValueRequest) (*smmodel.GetSecretValueResult, error)
}

// ListSecretVersionIdsAPI is the interface for listing secret versions.
type ListSecretVersionIdsAPI interface {
	ListSecretVersionIds(ctx context.Context, req *smmodel.ListSecretVersionIdsRequest) (*smmodel.ListSecretVersionIdsResult, error)
}

// ListSecretsAPI is the interface for listing secrets.
type ListSecretsAPI interface {
	ListSecrets(ctx context.Context, req *smmodel.ListSecretsRequest) (*smmodel.ListSecretsResult, error)
}

// PutResourcePolicyAPI is the interface for attaching a resource policy.
type PutResourcePolicyAPI interface {
	PutResourcePolicy(ctx context.Context, req *smmodel.PutResourcePolicyRequest) (*smmodel.PutResourcePolicyResult, error)
}

// PutSecretValueAPI is the interface for storing a new secret value.
type PutSecretValueAPI interface {
	PutSecretValue(ctx context.Context, req *smmodel.PutSecretValueRequest) (*smmodel.PutSecretValueResult, error)
}

// RestoreSecretAPI is the interface for restoring a deleted secret.
type RestoreSecretAPI interface {
	RestoreSecret(ctx context.Context, req *smmodel.RestoreSecretRequest) (*smmodel.RestoreSecretResult, error)
}

// RotateSecretAPI is the interface for rotating a secret.
type RotateSecretAPI interface {
	RotateSecret(ctx context.Context, req *smmodel.RotateSecretRequest) (*smmodel.RotateSecretResult, error)
}

// TagResourceAPI is the interface for tagging a secret.
type TagResourceAPI interface {
	TagResource(ctx context.Context, req *smmodel.TagResourceRequest) (*smmodel.TagResourceResult, error)
}

// UntagResourceAPI is the interface for removing tags from a secret.
type UntagResourceAPI interface {
	UntagResource(ctx context.Context, req *smmodel.UntagResourceRequest) (*smmodel.UntagResourceResult, error)
}

// UpdateSecretAPI is the interface for updating a secret.
type UpdateSecretAPI interface {
	UpdateSecret(ctx context.Context, req *smmodel.UpdateSecretRequest) (*smmodel.UpdateSecretResult, error)
}

// UpdateSecretVersionStageAPI is the interface for moving a staging label.
type UpdateSecretVersionStageAPI interface {
	UpdateSecretVersionStage(ctx context.Context, req *smmodel.UpdateSecretVersionStageRequest) (*smmodel.UpdateSecretVersionStageResult, error)
}

// ValidateResourcePolicyAPI is the interface for validating a resource policy.
type ValidateResourcePolicyAPI interface {
	ValidateResourcePolicy(ctx context.Context, req *smmodel.ValidateResourcePolicyRequest) (*smmodel.ValidateResourcePolicyResult, error)
}

// SecretsManager is implemented by *Client. Depend on it, or on a single
// per-operation interface, to substitute a fake in tests.
type SecretsManager interface {
	CancelRotateSecretAPI
	CreateSecretAPI
	DeleteResourcePolicyAPI
	DeleteSecretAPI
	DescribeSecretAPI
	GetRandomPasswordAPI
	GetResourcePolicyAPI
	GetSecretValueAPI
	ListSecretVersionIdsAPI
	ListSecretsAPI
	PutResourcePolicyAPI
	PutSecretValueAPI
	RestoreSecretAPI
	RotateSecretAPI
	TagResourceAPI
	UntagResourceAPI
	UpdateSecretAPI
	UpdateSecretVersionStageAPI
	ValidateResourcePolicyAPI
}

var _ SecretsManager = (*Client)(nil)
