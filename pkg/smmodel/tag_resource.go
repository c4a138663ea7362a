package smmodel

import (
	"slices"

	validation "github.com/jellydator/validation"
	"github.com/samber/lo"

	"github.com/mpyw/smkit/internal/dto"
)

// TagResourceRequest attaches tags to a secret, overwriting values of existing keys.
type TagResourceRequest struct {
	// SecretId is the name or ARN of the secret.
	SecretId *string `json:"SecretId,omitempty"`

	// Tags are the tags to attach.
	Tags []Tag `json:"Tags"`
}

// GetSecretId returns SecretId, or the zero value when unset.
func (t *TagResourceRequest) GetSecretId() string {
	if t == nil {
		return ""
	}

	return lo.FromPtr(t.SecretId)
}

// WithSecretId sets SecretId.
func (t *TagResourceRequest) WithSecretId(v string) *TagResourceRequest {
	t.SecretId = lo.ToPtr(v)

	return t
}

// GetTags returns a copy of Tags, or nil when unset.
func (t *TagResourceRequest) GetTags() []Tag {
	if t == nil {
		return nil
	}

	return slices.Clone(t.Tags)
}

// WithTags stores a copy of v. A nil v clears Tags.
func (t *TagResourceRequest) WithTags(v []Tag) *TagResourceRequest {
	t.Tags = slices.Clone(v)

	return t
}

// AppendTags appends v to Tags.
func (t *TagResourceRequest) AppendTags(v ...Tag) *TagResourceRequest {
	t.Tags = append(t.Tags, v...)

	return t
}

// Validate checks required fields and length limits.
// Errors wrap ErrInvalidArgument.
func (t *TagResourceRequest) Validate() error {
	return wrapValidationError(validation.ValidateStruct(t,
		validation.Field(&t.SecretId, secretIDRules...),
		validation.Field(&t.Tags, validation.Required),
	))
}

// String renders the fields that are set. Sensitive values are redacted.
func (t *TagResourceRequest) String() string {
	return dto.Format(t)
}

// Equal reports whether t and other hold the same field values.
func (t *TagResourceRequest) Equal(other *TagResourceRequest) bool {
	return dto.Equal(t, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (t *TagResourceRequest) Hash() uint64 {
	return dto.Hash(t)
}

// TagResourceResult is returned by TagResource. It carries no fields.
type TagResourceResult struct{}

// String renders the fields that are set. Sensitive values are redacted.
func (t *TagResourceResult) String() string {
	return dto.Format(t)
}

// Equal reports whether t and other hold the same field values.
func (t *TagResourceResult) Equal(other *TagResourceResult) bool {
	return dto.Equal(t, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (t *TagResourceResult) Hash() uint64 {
	return dto.Hash(t)
}
