package smmodel

import (
	validation "github.com/jellydator/validation"
	"github.com/samber/lo"

	"github.com/mpyw/smkit/internal/dto"
)

// PutResourcePolicyRequest attaches a resource policy to a secret, replacing any existing one.
type PutResourcePolicyRequest struct {
	// BlockPublicPolicy asks the service to reject policies that grant broad access.
	// It is passed through as is.
	BlockPublicPolicy *bool `json:"BlockPublicPolicy,omitempty"`

	// ResourcePolicy is the JSON policy document.
	ResourcePolicy *string `json:"ResourcePolicy,omitempty"`

	// SecretId is the name or ARN of the secret.
	SecretId *string `json:"SecretId,omitempty"`
}

// GetBlockPublicPolicy returns BlockPublicPolicy, or the zero value when unset.
func (p *PutResourcePolicyRequest) GetBlockPublicPolicy() bool {
	if p == nil {
		return false
	}

	return lo.FromPtr(p.BlockPublicPolicy)
}

// WithBlockPublicPolicy sets BlockPublicPolicy.
func (p *PutResourcePolicyRequest) WithBlockPublicPolicy(v bool) *PutResourcePolicyRequest {
	p.BlockPublicPolicy = lo.ToPtr(v)

	return p
}

// GetResourcePolicy returns ResourcePolicy, or the zero value when unset.
func (p *PutResourcePolicyRequest) GetResourcePolicy() string {
	if p == nil {
		return ""
	}

	return lo.FromPtr(p.ResourcePolicy)
}

// WithResourcePolicy sets ResourcePolicy.
func (p *PutResourcePolicyRequest) WithResourcePolicy(v string) *PutResourcePolicyRequest {
	p.ResourcePolicy = lo.ToPtr(v)

	return p
}

// GetSecretId returns SecretId, or the zero value when unset.
func (p *PutResourcePolicyRequest) GetSecretId() string {
	if p == nil {
		return ""
	}

	return lo.FromPtr(p.SecretId)
}

// WithSecretId sets SecretId.
func (p *PutResourcePolicyRequest) WithSecretId(v string) *PutResourcePolicyRequest {
	p.SecretId = lo.ToPtr(v)

	return p
}

// Validate checks required fields and length limits.
// Errors wrap ErrInvalidArgument.
func (p *PutResourcePolicyRequest) Validate() error {
	return wrapValidationError(validation.ValidateStruct(p,
		validation.Field(&p.ResourcePolicy, resourcePolicyRules...),
		validation.Field(&p.SecretId, secretIDRules...),
	))
}

// String renders the fields that are set. Sensitive values are redacted.
func (p *PutResourcePolicyRequest) String() string {
	return dto.Format(p)
}

// Equal reports whether p and other hold the same field values.
func (p *PutResourcePolicyRequest) Equal(other *PutResourcePolicyRequest) bool {
	return dto.Equal(p, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (p *PutResourcePolicyRequest) Hash() uint64 {
	return dto.Hash(p)
}

// PutResourcePolicyResult is returned by PutResourcePolicy.
type PutResourcePolicyResult struct {
	// ARN is the Amazon Resource Name of the secret.
	ARN *string `json:"ARN,omitempty"`

	// Name is the friendly name of the secret.
	Name *string `json:"Name,omitempty"`
}

// GetARN returns ARN, or the zero value when unset.
func (p *PutResourcePolicyResult) GetARN() string {
	if p == nil {
		return ""
	}

	return lo.FromPtr(p.ARN)
}

// WithARN sets ARN.
func (p *PutResourcePolicyResult) WithARN(v string) *PutResourcePolicyResult {
	p.ARN = lo.ToPtr(v)

	return p
}

// GetName returns Name, or the zero value when unset.
func (p *PutResourcePolicyResult) GetName() string {
	if p == nil {
		return ""
	}

	return lo.FromPtr(p.Name)
}

// WithName sets Name.
func (p *PutResourcePolicyResult) WithName(v string) *PutResourcePolicyResult {
	p.Name = lo.ToPtr(v)

	return p
}

// String renders the fields that are set. Sensitive values are redacted.
func (p *PutResourcePolicyResult) String() string {
	return dto.Format(p)
}

// Equal reports whether p and other hold the same field values.
func (p *PutResourcePolicyResult) Equal(other *PutResourcePolicyResult) bool {
	return dto.Equal(p, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (p *PutResourcePolicyResult) Hash() uint64 {
	return dto.Hash(p)
}
