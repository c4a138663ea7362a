package smmodel

import (
	"slices"

	validation "github.com/jellydator/validation"
	"github.com/samber/lo"

	"github.com/mpyw/smkit/internal/dto"
)

// ValidateResourcePolicyRequest checks a resource policy without attaching it.
type ValidateResourcePolicyRequest struct {
	// ResourcePolicy is the JSON policy document to check.
	ResourcePolicy *string `json:"ResourcePolicy,omitempty"`

	// SecretId optionally names the secret the policy would be attached to.
	SecretId *string `json:"SecretId,omitempty"`
}

// GetResourcePolicy returns ResourcePolicy, or the zero value when unset.
func (r *ValidateResourcePolicyRequest) GetResourcePolicy() string {
	if r == nil {
		return ""
	}

	return lo.FromPtr(r.ResourcePolicy)
}

// WithResourcePolicy sets ResourcePolicy.
func (r *ValidateResourcePolicyRequest) WithResourcePolicy(v string) *ValidateResourcePolicyRequest {
	r.ResourcePolicy = lo.ToPtr(v)

	return r
}

// GetSecretId returns SecretId, or the zero value when unset.
func (r *ValidateResourcePolicyRequest) GetSecretId() string {
	if r == nil {
		return ""
	}

	return lo.FromPtr(r.SecretId)
}

// WithSecretId sets SecretId.
func (r *ValidateResourcePolicyRequest) WithSecretId(v string) *ValidateResourcePolicyRequest {
	r.SecretId = lo.ToPtr(v)

	return r
}

// Validate checks required fields and length limits.
// Errors wrap ErrInvalidArgument.
func (r *ValidateResourcePolicyRequest) Validate() error {
	return wrapValidationError(validation.ValidateStruct(r,
		validation.Field(&r.ResourcePolicy, resourcePolicyRules...),
		validation.Field(&r.SecretId, optionalSecretIDRules...),
	))
}

// String renders the fields that are set. Sensitive values are redacted.
func (r *ValidateResourcePolicyRequest) String() string {
	return dto.Format(r)
}

// Equal reports whether r and other hold the same field values.
func (r *ValidateResourcePolicyRequest) Equal(other *ValidateResourcePolicyRequest) bool {
	return dto.Equal(r, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (r *ValidateResourcePolicyRequest) Hash() uint64 {
	return dto.Hash(r)
}

// ValidateResourcePolicyResult is returned by ValidateResourcePolicy.
type ValidateResourcePolicyResult struct {
	// PolicyValidationPassed reports whether the policy passed every check.
	PolicyValidationPassed *bool `json:"PolicyValidationPassed,omitempty"`

	// ValidationErrors lists the checks that failed.
	ValidationErrors []ValidationErrorsEntry `json:"ValidationErrors"`
}

// GetPolicyValidationPassed returns PolicyValidationPassed, or the zero value when unset.
func (r *ValidateResourcePolicyResult) GetPolicyValidationPassed() bool {
	if r == nil {
		return false
	}

	return lo.FromPtr(r.PolicyValidationPassed)
}

// WithPolicyValidationPassed sets PolicyValidationPassed.
func (r *ValidateResourcePolicyResult) WithPolicyValidationPassed(v bool) *ValidateResourcePolicyResult {
	r.PolicyValidationPassed = lo.ToPtr(v)

	return r
}

// GetValidationErrors returns a copy of ValidationErrors, or nil when unset.
func (r *ValidateResourcePolicyResult) GetValidationErrors() []ValidationErrorsEntry {
	if r == nil {
		return nil
	}

	return slices.Clone(r.ValidationErrors)
}

// WithValidationErrors stores a copy of v. A nil v clears ValidationErrors.
func (r *ValidateResourcePolicyResult) WithValidationErrors(v []ValidationErrorsEntry) *ValidateResourcePolicyResult {
	r.ValidationErrors = slices.Clone(v)

	return r
}

// AppendValidationErrors appends v to ValidationErrors.
func (r *ValidateResourcePolicyResult) AppendValidationErrors(v ...ValidationErrorsEntry) *ValidateResourcePolicyResult {
	r.ValidationErrors = append(r.ValidationErrors, v...)

	return r
}

// String renders the fields that are set. Sensitive values are redacted.
func (r *ValidateResourcePolicyResult) String() string {
	return dto.Format(r)
}

// Equal reports whether r and other hold the same field values.
func (r *ValidateResourcePolicyResult) Equal(other *ValidateResourcePolicyResult) bool {
	return dto.Equal(r, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (r *ValidateResourcePolicyResult) Hash() uint64 {
	return dto.Hash(r)
}
