package smmodel

import (
	validation "github.com/jellydator/validation"
	"github.com/samber/lo"

	"github.com/mpyw/smkit/internal/dto"
)

// RestoreSecretRequest cancels a scheduled deletion.
type RestoreSecretRequest struct {
	// SecretId is the name or ARN of the secret.
	SecretId *string `json:"SecretId,omitempty"`
}

// GetSecretId returns SecretId, or the zero value when unset.
func (r *RestoreSecretRequest) GetSecretId() string {
	if r == nil {
		return ""
	}

	return lo.FromPtr(r.SecretId)
}

// WithSecretId sets SecretId.
func (r *RestoreSecretRequest) WithSecretId(v string) *RestoreSecretRequest {
	r.SecretId = lo.ToPtr(v)

	return r
}

// Validate checks required fields and length limits.
// Errors wrap ErrInvalidArgument.
func (r *RestoreSecretRequest) Validate() error {
	return wrapValidationError(validation.ValidateStruct(r,
		validation.Field(&r.SecretId, secretIDRules...),
	))
}

// String renders the fields that are set. Sensitive values are redacted.
func (r *RestoreSecretRequest) String() string {
	return dto.Format(r)
}

// Equal reports whether r and other hold the same field values.
func (r *RestoreSecretRequest) Equal(other *RestoreSecretRequest) bool {
	return dto.Equal(r, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (r *RestoreSecretRequest) Hash() uint64 {
	return dto.Hash(r)
}

// RestoreSecretResult is returned by RestoreSecret.
type RestoreSecretResult struct {
	// ARN is the Amazon Resource Name of the secret.
	ARN *string `json:"ARN,omitempty"`

	// Name is the friendly name of the secret.
	Name *string `json:"Name,omitempty"`
}

// GetARN returns ARN, or the zero value when unset.
func (r *RestoreSecretResult) GetARN() string {
	if r == nil {
		return ""
	}

	return lo.FromPtr(r.ARN)
}

// WithARN sets ARN.
func (r *RestoreSecretResult) WithARN(v string) *RestoreSecretResult {
	r.ARN = lo.ToPtr(v)

	return r
}

// GetName returns Name, or the zero value when unset.
func (r *RestoreSecretResult) GetName() string {
	if r == nil {
		return ""
	}

	return lo.FromPtr(r.Name)
}

// WithName sets Name.
func (r *RestoreSecretResult) WithName(v string) *RestoreSecretResult {
	r.Name = lo.ToPtr(v)

	return r
}

// String renders the fields that are set. Sensitive values are redacted.
func (r *RestoreSecretResult) String() string {
	return dto.Format(r)
}

// Equal reports whether r and other hold the same field values.
func (r *RestoreSecretResult) Equal(other *RestoreSecretResult) bool {
	return dto.Equal(r, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (r *RestoreSecretResult) Hash() uint64 {
	return dto.Hash(r)
}
