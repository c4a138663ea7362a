package smmodel

import (
	validation "github.com/jellydator/validation"
	"github.com/samber/lo"

	"github.com/mpyw/smkit/internal/dto"
)

// GetResourcePolicyRequest reads the resource policy attached to a secret.
type GetResourcePolicyRequest struct {
	// SecretId is the name or ARN of the secret.
	SecretId *string `json:"SecretId,omitempty"`
}

// GetSecretId returns SecretId, or the zero value when unset.
func (g *GetResourcePolicyRequest) GetSecretId() string {
	if g == nil {
		return ""
	}

	return lo.FromPtr(g.SecretId)
}

// WithSecretId sets SecretId.
func (g *GetResourcePolicyRequest) WithSecretId(v string) *GetResourcePolicyRequest {
	g.SecretId = lo.ToPtr(v)

	return g
}

// Validate checks required fields and length limits.
// Errors wrap ErrInvalidArgument.
func (g *GetResourcePolicyRequest) Validate() error {
	return wrapValidationError(validation.ValidateStruct(g,
		validation.Field(&g.SecretId, secretIDRules...),
	))
}

// String renders the fields that are set. Sensitive values are redacted.
func (g *GetResourcePolicyRequest) String() string {
	return dto.Format(g)
}

// Equal reports whether g and other hold the same field values.
func (g *GetResourcePolicyRequest) Equal(other *GetResourcePolicyRequest) bool {
	return dto.Equal(g, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (g *GetResourcePolicyRequest) Hash() uint64 {
	return dto.Hash(g)
}

// GetResourcePolicyResult is returned by GetResourcePolicy.
type GetResourcePolicyResult struct {
	// ARN is the Amazon Resource Name of the secret.
	ARN *string `json:"ARN,omitempty"`

	// Name is the friendly name of the secret.
	Name *string `json:"Name,omitempty"`

	// ResourcePolicy is the JSON policy document, if one is attached.
	ResourcePolicy *string `json:"ResourcePolicy,omitempty"`
}

// GetARN returns ARN, or the zero value when unset.
func (g *GetResourcePolicyResult) GetARN() string {
	if g == nil {
		return ""
	}

	return lo.FromPtr(g.ARN)
}

// WithARN sets ARN.
func (g *GetResourcePolicyResult) WithARN(v string) *GetResourcePolicyResult {
	g.ARN = lo.ToPtr(v)

	return g
}

// GetName returns Name, or the zero value when unset.
func (g *GetResourcePolicyResult) GetName() string {
	if g == nil {
		return ""
	}

	return lo.FromPtr(g.Name)
}

// WithName sets Name.
func (g *GetResourcePolicyResult) WithName(v string) *GetResourcePolicyResult {
	g.Name = lo.ToPtr(v)

	return g
}

// GetResourcePolicy returns ResourcePolicy, or the zero value when unset.
func (g *GetResourcePolicyResult) GetResourcePolicy() string {
	if g == nil {
		return ""
	}

	return lo.FromPtr(g.ResourcePolicy)
}

// WithResourcePolicy sets ResourcePolicy.
func (g *GetResourcePolicyResult) WithResourcePolicy(v string) *GetResourcePolicyResult {
	g.ResourcePolicy = lo.ToPtr(v)

	return g
}

// String renders the fields that are set. Sensitive values are redacted.
func (g *GetResourcePolicyResult) String() string {
	return dto.Format(g)
}

// Equal reports whether g and other hold the same field values.
func (g *GetResourcePolicyResult) Equal(other *GetResourcePolicyResult) bool {
	return dto.Equal(g, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (g *GetResourcePolicyResult) Hash() uint64 {
	return dto.Hash(g)
}
