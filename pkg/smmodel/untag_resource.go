package smmodel

import (
	"slices"

	validation "github.com/jellydator/validation"
	"github.com/samber/lo"

	"github.com/mpyw/smkit/internal/dto"
)

// UntagResourceRequest removes tags from a secret by key.
type UntagResourceRequest struct {
	// SecretId is the name or ARN of the secret.
	SecretId *string `json:"SecretId,omitempty"`

	// TagKeys are the keys of the tags to remove.
	TagKeys []string `json:"TagKeys"`
}

// GetSecretId returns SecretId, or the zero value when unset.
func (u *UntagResourceRequest) GetSecretId() string {
	if u == nil {
		return ""
	}

	return lo.FromPtr(u.SecretId)
}

// WithSecretId sets SecretId.
func (u *UntagResourceRequest) WithSecretId(v string) *UntagResourceRequest {
	u.SecretId = lo.ToPtr(v)

	return u
}

// GetTagKeys returns a copy of TagKeys, or nil when unset.
func (u *UntagResourceRequest) GetTagKeys() []string {
	if u == nil {
		return nil
	}

	return slices.Clone(u.TagKeys)
}

// WithTagKeys stores a copy of v. A nil v clears TagKeys.
func (u *UntagResourceRequest) WithTagKeys(v []string) *UntagResourceRequest {
	u.TagKeys = slices.Clone(v)

	return u
}

// AppendTagKeys appends v to TagKeys.
func (u *UntagResourceRequest) AppendTagKeys(v ...string) *UntagResourceRequest {
	u.TagKeys = append(u.TagKeys, v...)

	return u
}

// Validate checks required fields and length limits.
// Errors wrap ErrInvalidArgument.
func (u *UntagResourceRequest) Validate() error {
	return wrapValidationError(validation.ValidateStruct(u,
		validation.Field(&u.SecretId, secretIDRules...),
		validation.Field(&u.TagKeys, validation.Required, validation.Each(validation.RuneLength(1, MaxTagKeyLength))),
	))
}

// String renders the fields that are set. Sensitive values are redacted.
func (u *UntagResourceRequest) String() string {
	return dto.Format(u)
}

// Equal reports whether u and other hold the same field values.
func (u *UntagResourceRequest) Equal(other *UntagResourceRequest) bool {
	return dto.Equal(u, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (u *UntagResourceRequest) Hash() uint64 {
	return dto.Hash(u)
}

// UntagResourceResult is returned by UntagResource. It carries no fields.
type UntagResourceResult struct{}

// String renders the fields that are set. Sensitive values are redacted.
func (u *UntagResourceResult) String() string {
	return dto.Format(u)
}

// Equal reports whether u and other hold the same field values.
func (u *UntagResourceResult) Equal(other *UntagResourceResult) bool {
	return dto.Equal(u, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (u *UntagResourceResult) Hash() uint64 {
	return dto.Hash(u)
}
