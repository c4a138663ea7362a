package smmodel

import (
	validation "github.com/jellydator/validation"
	"github.com/samber/lo"

	"github.com/mpyw/smkit/internal/dto"
)

// CancelRotateSecretRequest turns off automatic rotation and cancels any rotation in progress.
type CancelRotateSecretRequest struct {
	// SecretId is the name or ARN of the secret.
	SecretId *string `json:"SecretId,omitempty"`
}

// GetSecretId returns SecretId, or the zero value when unset.
func (c *CancelRotateSecretRequest) GetSecretId() string {
	if c == nil {
		return ""
	}

	return lo.FromPtr(c.SecretId)
}

// WithSecretId sets SecretId.
func (c *CancelRotateSecretRequest) WithSecretId(v string) *CancelRotateSecretRequest {
	c.SecretId = lo.ToPtr(v)

	return c
}

// Validate checks required fields and length limits.
// Errors wrap ErrInvalidArgument.
func (c *CancelRotateSecretRequest) Validate() error {
	return wrapValidationError(validation.ValidateStruct(c,
		validation.Field(&c.SecretId, secretIDRules...),
	))
}

// String renders the fields that are set. Sensitive values are redacted.
func (c *CancelRotateSecretRequest) String() string {
	return dto.Format(c)
}

// Equal reports whether c and other hold the same field values.
func (c *CancelRotateSecretRequest) Equal(other *CancelRotateSecretRequest) bool {
	return dto.Equal(c, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (c *CancelRotateSecretRequest) Hash() uint64 {
	return dto.Hash(c)
}

// CancelRotateSecretResult is returned by CancelRotateSecret.
type CancelRotateSecretResult struct {
	// ARN is the Amazon Resource Name of the secret.
	ARN *string `json:"ARN,omitempty"`

	// Name is the friendly name of the secret.
	Name *string `json:"Name,omitempty"`

	// VersionId is the version that was being rotated, if any.
	VersionId *string `json:"VersionId,omitempty"`
}

// GetARN returns ARN, or the zero value when unset.
func (c *CancelRotateSecretResult) GetARN() string {
	if c == nil {
		return ""
	}

	return lo.FromPtr(c.ARN)
}

// WithARN sets ARN.
func (c *CancelRotateSecretResult) WithARN(v string) *CancelRotateSecretResult {
	c.ARN = lo.ToPtr(v)

	return c
}

// GetName returns Name, or the zero value when unset.
func (c *CancelRotateSecretResult) GetName() string {
	if c == nil {
		return ""
	}

	return lo.FromPtr(c.Name)
}

// WithName sets Name.
func (c *CancelRotateSecretResult) WithName(v string) *CancelRotateSecretResult {
	c.Name = lo.ToPtr(v)

	return c
}

// GetVersionId returns VersionId, or the zero value when unset.
func (c *CancelRotateSecretResult) GetVersionId() string {
	if c == nil {
		return ""
	}

	return lo.FromPtr(c.VersionId)
}

// WithVersionId sets VersionId.
func (c *CancelRotateSecretResult) WithVersionId(v string) *CancelRotateSecretResult {
	c.VersionId = lo.ToPtr(v)

	return c
}

// String renders the fields that are set. Sensitive values are redacted.
func (c *CancelRotateSecretResult) String() string {
	return dto.Format(c)
}

// Equal reports whether c and other hold the same field values.
func (c *CancelRotateSecretResult) Equal(other *CancelRotateSecretResult) bool {
	return dto.Equal(c, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (c *CancelRotateSecretResult) Hash() uint64 {
	return dto.Hash(c)
}
