// Package secretapi provides interfaces and types for AWS Secrets Manager.
package secretapi

import (
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
)

// Re-exported Secrets Manager client and options types.
type (
	Client  = secretsmanager.Client
	Options = secretsmanager.Options
)

// Re-exported Secrets Manager input/output types.
type (
	CancelRotateSecretInput        = secretsmanager.CancelRotateSecretInput
	CancelRotateSecretOutput       = secretsmanager.CancelRotateSecretOutput
	CreateSecretInput              = secretsmanager.CreateSecretInput
	CreateSecretOutput             = secretsmanager.CreateSecretOutput
	DeleteResourcePolicyInput      = secretsmanager.DeleteResourcePolicyInput
	DeleteResourcePolicyOutput     = secretsmanager.DeleteResourcePolicyOutput
	DeleteSecretInput              = secretsmanager.DeleteSecretInput
	DeleteSecretOutput             = secretsmanager.DeleteSecretOutput
	DescribeSecretInput            = secretsmanager.DescribeSecretInput
	DescribeSecretOutput           = secretsmanager.DescribeSecretOutput
	GetRandomPasswordInput         = secretsmanager.GetRandomPasswordInput
	GetRandomPasswordOutput        = secretsmanager.GetRandomPasswordOutput
	GetResourcePolicyInput         = secretsmanager.GetResourcePolicyInput
	GetResourcePolicyOutput        = secretsmanager.GetResourcePolicyOutput
	GetSecretValueInput            = secretsmanager.GetSecretValueInput
	GetSecretValueOutput           = secretsmanager.GetSecretValueOutput
	ListSecretVersionIdsInput      = secretsmanager.ListSecretVersionIdsInput
	ListSecretVersionIdsOutput     = secretsmanager.ListSecretVersionIdsOutput
	ListSecretsInput               = secretsmanager.ListSecretsInput
	ListSecretsOutput              = secretsmanager.ListSecretsOutput
	PutResourcePolicyInput         = secretsmanager.PutResourcePolicyInput
	PutResourcePolicyOutput        = secretsmanager.PutResourcePolicyOutput
	PutSecretValueInput            = secretsmanager.PutSecretValueInput
	PutSecretValueOutput           = secretsmanager.PutSecretValueOutput
	RestoreSecretInput             = secretsmanager.RestoreSecretInput
	RestoreSecretOutput            = secretsmanager.RestoreSecretOutput
	RotateSecretInput              = secretsmanager.RotateSecretInput
	RotateSecretOutput             = secretsmanager.RotateSecretOutput
	TagResourceInput               = secretsmanager.TagResourceInput
	TagResourceOutput              = secretsmanager.TagResourceOutput
	UntagResourceInput             = secretsmanager.UntagResourceInput
	UntagResourceOutput            = secretsmanager.UntagResourceOutput
	UpdateSecretInput              = secretsmanager.UpdateSecretInput
	UpdateSecretOutput             = secretsmanager.UpdateSecretOutput
	UpdateSecretVersionStageInput  = secretsmanager.UpdateSecretVersionStageInput
	UpdateSecretVersionStageOutput = secretsmanager.UpdateSecretVersionStageOutput
	ValidateResourcePolicyInput    = secretsmanager.ValidateResourcePolicyInput
	ValidateResourcePolicyOutput   = secretsmanager.ValidateResourcePolicyOutput
)

// Re-exported Secrets Manager model types.
type (
	Filter                  = types.Filter
	FilterNameStringType    = types.FilterNameStringType
	RotationRulesType       = types.RotationRulesType
	SecretListEntry         = types.SecretListEntry
	SecretVersionsListEntry = types.SecretVersionsListEntry
	SortOrderType           = types.SortOrderType
	Tag                     = types.Tag
	ValidationErrorsEntry   = types.ValidationErrorsEntry
)

// Re-exported Secrets Manager error types.
//
//nolint:errname // This is a type alias to AWS SDK type, preserving original name for consistency
type (
	InvalidParameterException        = types.InvalidParameterException
	InvalidRequestException          = types.InvalidRequestException
	MalformedPolicyDocumentException = types.MalformedPolicyDocumentException
	ResourceExistsException          = types.ResourceExistsException
	ResourceNotFoundException        = types.ResourceNotFoundException
)

// Re-exported Secrets Manager functions.
var (
	NewFromConfig = secretsmanager.NewFromConfig
)
