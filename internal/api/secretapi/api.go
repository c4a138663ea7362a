// Package secretapi provides interfaces for AWS Secrets Manager.
package secretapi

import (
	"context"
)

// CancelRotateSecretAPI is the interface for cancelling a rotation.
type CancelRotateSecretAPI interface {
	CancelRotateSecret(ctx context.Context, params *CancelRotateSecretInput, optFns ...func(*Options)) (*CancelRotateSecretOutput, error)
}

// CreateSecretAPI is the interface for creating a secret.
type CreateSecretAPI interface {
	CreateSecret(ctx context.Context, params *CreateSecretInput, optFns ...func(*Options)) (*CreateSecretOutput, error)
}

// DeleteResourcePolicyAPI is the interface for deleting a resource policy.
type DeleteResourcePolicyAPI interface {
	DeleteResourcePolicy(ctx context.Context, params *DeleteResourcePolicyInput, optFns ...func(*Options)) (*DeleteResourcePolicyOutput, error)
}

// DeleteSecretAPI is the interface for deleting a secret.
type DeleteSecretAPI interface {
	DeleteSecret(ctx context.Context, params *DeleteSecretInput, optFns ...func(*Options)) (*DeleteSecretOutput, error)
}

// DescribeSecretAPI is the interface for getting secret metadata including tags.
type DescribeSecretAPI interface {
	DescribeSecret(ctx context.Context, params *DescribeSecretInput, optFns ...func(*Options)) (*DescribeSecretOutput, error)
}

// GetRandomPasswordAPI is the interface for generating a random password.
type GetRandomPasswordAPI interface {
	GetRandomPassword(ctx context.Context, params *GetRandomPasswordInput, optFns ...func(*Options)) (*GetRandomPasswordOutput, error)
}

// GetResourcePolicyAPI is the interface for getting a resource policy.
type GetResourcePolicyAPI interface {
	GetResourcePolicy(ctx context.Context, params *GetResourcePolicyInput, optFns ...func(*Options)) (*GetResourcePolicyOutput, error)
}

// GetSecretValueAPI is the interface for getting a secret value.
type GetSecretValueAPI interface {
	GetSecretValue(ctx context.Context, params *GetSecretValueInput, optFns ...func(*Options)) (*GetSecretValueOutput, error)
}

// ListSecretVersionIdsAPI is the interface for listing secret versions.
type ListSecretVersionIdsAPI interface {
	ListSecretVersionIds(ctx context.Context, params *ListSecretVersionIdsInput, optFns ...func(*Options)) (*ListSecretVersionIdsOutput, error)
}

// ListSecretsAPI is the interface for listing secrets.
type ListSecretsAPI interface {
	ListSecrets(ctx context.Context, params *ListSecretsInput, optFns ...func(*Options)) (*ListSecretsOutput, error)
}

// PutResourcePolicyAPI is the interface for attaching a resource policy.
type PutResourcePolicyAPI interface {
	PutResourcePolicy(ctx context.Context, params *PutResourcePolicyInput, optFns ...func(*Options)) (*PutResourcePolicyOutput, error)
}

// PutSecretValueAPI is the interface for storing a new secret value.
type PutSecretValueAPI interface {
	PutSecretValue(ctx context.Context, params *PutSecretValueInput, optFns ...func(*Options)) (*PutSecretValueOutput, error)
}

// RestoreSecretAPI is the interface for restoring a deleted secret.
type RestoreSecretAPI interface {
	RestoreSecret(ctx context.Context, params *RestoreSecretInput, optFns ...func(*Options)) (*RestoreSecretOutput, error)
}

// RotateSecretAPI is the interface for rotating a secret.
type RotateSecretAPI interface {
	RotateSecret(ctx context.Context, params *RotateSecretInput, optFns ...func(*Options)) (*RotateSecretOutput, error)
}

// TagResourceAPI is the interface for tagging a secret.
type TagResourceAPI interface {
	TagResource(ctx context.Context, params *TagResourceInput, optFns ...func(*Options)) (*TagResourceOutput, error)
}

// UntagResourceAPI is the interface for removing tags from a secret.
type UntagResourceAPI interface {
	UntagResource(ctx context.Context, params *UntagResourceInput, optFns ...func(*Options)) (*UntagResourceOutput, error)
}

// UpdateSecretAPI is the interface for updating a secret.
type UpdateSecretAPI interface {
	UpdateSecret(ctx context.Context, params *UpdateSecretInput, optFns ...func(*Options)) (*UpdateSecretOutput, error)
}

// UpdateSecretVersionStageAPI is the interface for moving a staging label.
type UpdateSecretVersionStageAPI interface {
	UpdateSecretVersionStage(ctx context.Context, params *UpdateSecretVersionStageInput, optFns ...func(*Options)) (*UpdateSecretVersionStageOutput, error)
}

// ValidateResourcePolicyAPI is the interface for validating a resource policy.
type ValidateResourcePolicyAPI interface {
	ValidateResourcePolicy(ctx context.Context, params *ValidateResourcePolicyInput, optFns ...func(*Options)) (*ValidateResourcePolicyOutput, error)
}

// API is the subset of the Secrets Manager client used by this module.
// *Client satisfies it.
type API interface {
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

var _ API = (*Client)(nil)
