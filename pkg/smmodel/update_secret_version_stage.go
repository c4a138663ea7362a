package smmodel

import (
	validation "github.com/jellydator/validation"
	"github.com/samber/lo"

	"github.com/mpyw/smkit/internal/dto"
)

// UpdateSecretVersionStageRequest moves a staging label between versions.
// A label attached to another version must be detached through RemoveFromVersionId.
type UpdateSecretVersionStageRequest struct {
	// MoveToVersionId is the version that receives the label.
	MoveToVersionId *string `json:"MoveToVersionId,omitempty"`

	// RemoveFromVersionId is the version that currently holds the label.
	RemoveFromVersionId *string `json:"RemoveFromVersionId,omitempty"`

	// SecretId is the name or ARN of the secret.
	SecretId *string `json:"SecretId,omitempty"`

	// VersionStage is the staging label to move.
	VersionStage *string `json:"VersionStage,omitempty"`
}

// GetMoveToVersionId returns MoveToVersionId, or the zero value when unset.
func (u *UpdateSecretVersionStageRequest) GetMoveToVersionId() string {
	if u == nil {
		return ""
	}

	return lo.FromPtr(u.MoveToVersionId)
}

// WithMoveToVersionId sets MoveToVersionId.
func (u *UpdateSecretVersionStageRequest) WithMoveToVersionId(v string) *UpdateSecretVersionStageRequest {
	u.MoveToVersionId = lo.ToPtr(v)

	return u
}

// GetRemoveFromVersionId returns RemoveFromVersionId, or the zero value when unset.
func (u *UpdateSecretVersionStageRequest) GetRemoveFromVersionId() string {
	if u == nil {
		return ""
	}

	return lo.FromPtr(u.RemoveFromVersionId)
}

// WithRemoveFromVersionId sets RemoveFromVersionId.
func (u *UpdateSecretVersionStageRequest) WithRemoveFromVersionId(v string) *UpdateSecretVersionStageRequest {
	u.RemoveFromVersionId = lo.ToPtr(v)

	return u
}

// GetSecretId returns SecretId, or the zero value when unset.
func (u *UpdateSecretVersionStageRequest) GetSecretId() string {
	if u == nil {
		return ""
	}

	return lo.FromPtr(u.SecretId)
}

// WithSecretId sets SecretId.
func (u *UpdateSecretVersionStageRequest) WithSecretId(v string) *UpdateSecretVersionStageRequest {
	u.SecretId = lo.ToPtr(v)

	return u
}

// GetVersionStage returns VersionStage, or the zero value when unset.
func (u *UpdateSecretVersionStageRequest) GetVersionStage() string {
	if u == nil {
		return ""
	}

	return lo.FromPtr(u.VersionStage)
}

// WithVersionStage sets VersionStage.
func (u *UpdateSecretVersionStageRequest) WithVersionStage(v string) *UpdateSecretVersionStageRequest {
	u.VersionStage = lo.ToPtr(v)

	return u
}

// Validate checks required fields and length limits.
// Errors wrap ErrInvalidArgument.
func (u *UpdateSecretVersionStageRequest) Validate() error {
	return wrapValidationError(validation.ValidateStruct(u,
		validation.Field(&u.MoveToVersionId, versionIDRules...),
		validation.Field(&u.RemoveFromVersionId, versionIDRules...),
		validation.Field(&u.SecretId, secretIDRules...),
		validation.Field(&u.VersionStage, validation.Required, validation.Length(1, MaxVersionStageLength)),
	))
}

// String renders the fields that are set. Sensitive values are redacted.
func (u *UpdateSecretVersionStageRequest) String() string {
	return dto.Format(u)
}

// Equal reports whether u and other hold the same field values.
func (u *UpdateSecretVersionStageRequest) Equal(other *UpdateSecretVersionStageRequest) bool {
	return dto.Equal(u, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (u *UpdateSecretVersionStageRequest) Hash() uint64 {
	return dto.Hash(u)
}

// UpdateSecretVersionStageResult is returned by UpdateSecretVersionStage.
type UpdateSecretVersionStageResult struct {
	// ARN is the Amazon Resource Name of the secret.
	ARN *string `json:"ARN,omitempty"`

	// Name is the friendly name of the secret.
	Name *string `json:"Name,omitempty"`
}

// GetARN returns ARN, or the zero value when unset.
func (u *UpdateSecretVersionStageResult) GetARN() string {
	if u == nil {
		return ""
	}

	return lo.FromPtr(u.ARN)
}

// WithARN sets ARN.
func (u *UpdateSecretVersionStageResult) WithARN(v string) *UpdateSecretVersionStageResult {
	u.ARN = lo.ToPtr(v)

	return u
}

// GetName returns Name, or the zero value when unset.
func (u *UpdateSecretVersionStageResult) GetName() string {
	if u == nil {
		return ""
	}

	return lo.FromPtr(u.Name)
}

// WithName sets Name.
func (u *UpdateSecretVersionStageResult) WithName(v string) *UpdateSecretVersionStageResult {
	u.Name = lo.ToPtr(v)

	return u
}

// String renders the fields that are set. Sensitive values are redacted.
func (u *UpdateSecretVersionStageResult) String() string {
	return dto.Format(u)
}

// Equal reports whether u and other hold the same field values.
func (u *UpdateSecretVersionStageResult) Equal(other *UpdateSecretVersionStageResult) bool {
	return dto.Equal(u, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (u *UpdateSecretVersionStageResult) Hash() uint64 {
	return dto.Hash(u)
}
