package smmodel

import (
	validation "github.com/jellydator/validation"
	"github.com/samber/lo"

	"github.com/mpyw/smkit/internal/dto"
)

// RotateSecretRequest configures rotation and starts a rotation immediately.
// The rotation itself runs server-side through the rotation Lambda function.
type RotateSecretRequest struct {
	// ClientRequestToken is an idempotency key and becomes the new version's ID.
	// smclient fills it with a random UUID when it is left unset.
	ClientRequestToken *string `json:"ClientRequestToken,omitempty"`

	// RotationLambdaARN is the Lambda function that performs the rotation.
	RotationLambdaARN *string `json:"RotationLambdaARN,omitempty"`

	// RotationRules is the rotation schedule.
	RotationRules *RotationRules `json:"RotationRules,omitempty"`

	// SecretId is the name or ARN of the secret.
	SecretId *string `json:"SecretId,omitempty"`
}

// GetClientRequestToken returns ClientRequestToken, or the zero value when unset.
func (r *RotateSecretRequest) GetClientRequestToken() string {
	if r == nil {
		return ""
	}

	return lo.FromPtr(r.ClientRequestToken)
}

// WithClientRequestToken sets ClientRequestToken.
func (r *RotateSecretRequest) WithClientRequestToken(v string) *RotateSecretRequest {
	r.ClientRequestToken = lo.ToPtr(v)

	return r
}

// GetRotationLambdaARN returns RotationLambdaARN, or the zero value when unset.
func (r *RotateSecretRequest) GetRotationLambdaARN() string {
	if r == nil {
		return ""
	}

	return lo.FromPtr(r.RotationLambdaARN)
}

// WithRotationLambdaARN sets RotationLambdaARN.
func (r *RotateSecretRequest) WithRotationLambdaARN(v string) *RotateSecretRequest {
	r.RotationLambdaARN = lo.ToPtr(v)

	return r
}

// GetRotationRules returns RotationRules, or nil when unset.
func (r *RotateSecretRequest) GetRotationRules() *RotationRules {
	if r == nil {
		return nil
	}

	return r.RotationRules
}

// WithRotationRules sets RotationRules.
func (r *RotateSecretRequest) WithRotationRules(v *RotationRules) *RotateSecretRequest {
	r.RotationRules = v

	return r
}

// GetSecretId returns SecretId, or the zero value when unset.
func (r *RotateSecretRequest) GetSecretId() string {
	if r == nil {
		return ""
	}

	return lo.FromPtr(r.SecretId)
}

// WithSecretId sets SecretId.
func (r *RotateSecretRequest) WithSecretId(v string) *RotateSecretRequest {
	r.SecretId = lo.ToPtr(v)

	return r
}

// Validate checks required fields and length limits.
// Errors wrap ErrInvalidArgument.
func (r *RotateSecretRequest) Validate() error {
	return wrapValidationError(validation.ValidateStruct(r,
		validation.Field(&r.ClientRequestToken, versionIDRules...),
		validation.Field(&r.RotationLambdaARN, rotationLambdaARNRules...),
		validation.Field(&r.RotationRules),
		validation.Field(&r.SecretId, secretIDRules...),
	))
}

// String renders the fields that are set. Sensitive values are redacted.
func (r *RotateSecretRequest) String() string {
	return dto.Format(r)
}

// Equal reports whether r and other hold the same field values.
func (r *RotateSecretRequest) Equal(other *RotateSecretRequest) bool {
	return dto.Equal(r, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (r *RotateSecretRequest) Hash() uint64 {
	return dto.Hash(r)
}

// RotateSecretResult is returned by RotateSecret.
type RotateSecretResult struct {
	// ARN is the Amazon Resource Name of the secret.
	ARN *string `json:"ARN,omitempty"`

	// Name is the friendly name of the secret.
	Name *string `json:"Name,omitempty"`

	// VersionId is the ID of the version the rotation creates.
	VersionId *string `json:"VersionId,omitempty"`
}

// GetARN returns ARN, or the zero value when unset.
func (r *RotateSecretResult) GetARN() string {
	if r == nil {
		return ""
	}

	return lo.FromPtr(r.ARN)
}

// WithARN sets ARN.
func (r *RotateSecretResult) WithARN(v string) *RotateSecretResult {
	r.ARN = lo.ToPtr(v)

	return r
}

// GetName returns Name, or the zero value when unset.
func (r *RotateSecretResult) GetName() string {
	if r == nil {
		return ""
	}

	return lo.FromPtr(r.Name)
}

// WithName sets Name.
func (r *RotateSecretResult) WithName(v string) *RotateSecretResult {
	r.Name = lo.ToPtr(v)

	return r
}

// GetVersionId returns VersionId, or the zero value when unset.
func (r *RotateSecretResult) GetVersionId() string {
	if r == nil {
		return ""
	}

	return lo.FromPtr(r.VersionId)
}

// WithVersionId sets VersionId.
func (r *RotateSecretResult) WithVersionId(v string) *RotateSecretResult {
	r.VersionId = lo.ToPtr(v)

	return r
}

// String renders the fields that are set. Sensitive values are redacted.
func (r *RotateSecretResult) String() string {
	return dto.Format(r)
}

// Equal reports whether r and other hold the same field values.
func (r *RotateSecretResult) Equal(other *RotateSecretResult) bool {
	return dto.Equal(r, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (r *RotateSecretResult) Hash() uint64 {
	return dto.Hash(r)
}
