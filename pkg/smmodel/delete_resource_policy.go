package smmodel

import (
	validation "github.com/jellydator/validation"
	"github.com/samber/lo"

	"github.com/mpyw/smkit/internal/dto"
)

// DeleteResourcePolicyRequest removes the resource policy attached to a secret.
type DeleteResourcePolicyRequest struct {
	// SecretId is the name or ARN of the secret.
	SecretId *string `json:"SecretId,omitempty"`
}

// GetSecretId returns SecretId, or the zero value when unset.
func (d *DeleteResourcePolicyRequest) GetSecretId() string {
	if d == nil {
		return ""
	}

	return lo.FromPtr(d.SecretId)
}

// WithSecretId sets SecretId.
func (d *DeleteResourcePolicyRequest) WithSecretId(v string) *DeleteResourcePolicyRequest {
	d.SecretId = lo.ToPtr(v)

	return d
}

// Validate checks required fields and length limits.
// Errors wrap ErrInvalidArgument.
func (d *DeleteResourcePolicyRequest) Validate() error {
	return wrapValidationError(validation.ValidateStruct(d,
		validation.Field(&d.SecretId, secretIDRules...),
	))
}

// String renders the fields that are set. Sensitive values are redacted.
func (d *DeleteResourcePolicyRequest) String() string {
	return dto.Format(d)
}

// Equal reports whether d and other hold the same field values.
func (d *DeleteResourcePolicyRequest) Equal(other *DeleteResourcePolicyRequest) bool {
	return dto.Equal(d, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (d *DeleteResourcePolicyRequest) Hash() uint64 {
	return dto.Hash(d)
}

// DeleteResourcePolicyResult is returned by DeleteResourcePolicy.
type DeleteResourcePolicyResult struct {
	// ARN is the Amazon Resource Name of the secret.
	ARN *string `json:"ARN,omitempty"`

	// Name is the friendly name of the secret.
	Name *string `json:"Name,omitempty"`
}

// GetARN returns ARN, or the zero value when unset.
func (d *DeleteResourcePolicyResult) GetARN() string {
	if d == nil {
		return ""
	}

	return lo.FromPtr(d.ARN)
}

// WithARN sets ARN.
func (d *DeleteResourcePolicyResult) WithARN(v string) *DeleteResourcePolicyResult {
	d.ARN = lo.ToPtr(v)

	return d
}

// GetName returns Name, or the zero value when unset.
func (d *DeleteResourcePolicyResult) GetName() string {
	if d == nil {
		return ""
	}

	return lo.FromPtr(d.Name)
}

// WithName sets Name.
func (d *DeleteResourcePolicyResult) WithName(v string) *DeleteResourcePolicyResult {
	d.Name = lo.ToPtr(v)

	return d
}

// String renders the fields that are set. Sensitive values are redacted.
func (d *DeleteResourcePolicyResult) String() string {
	return dto.Format(d)
}

// Equal reports whether d and other hold the same field values.
func (d *DeleteResourcePolicyResult) Equal(other *DeleteResourcePolicyResult) bool {
	return dto.Equal(d, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (d *DeleteResourcePolicyResult) Hash() uint64 {
	return dto.Hash(d)
}
