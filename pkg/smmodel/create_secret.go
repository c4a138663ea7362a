package smmodel

import (
	"slices"

	validation "github.com/jellydator/validation"
	"github.com/samber/lo"

	"github.com/mpyw/smkit/internal/dto"
)

// CreateSecretRequest creates a new secret, optionally with an initial value.
type CreateSecretRequest struct {
	// ClientRequestToken is an idempotency key and becomes the new version's ID.
	// smclient fills it with a random UUID when it is left unset.
	ClientRequestToken *string `json:"ClientRequestToken,omitempty"`

	// Description is a free-form description of the secret.
	Description *string `json:"Description,omitempty"`

	// KmsKeyId is the KMS key used to encrypt the value. Defaults to aws/secretsmanager.
	KmsKeyId *string `json:"KmsKeyId,omitempty"`

	// Name is the friendly name of the new secret.
	Name *string `json:"Name,omitempty"`

	// SecretBinary is the binary payload. Set either SecretBinary or SecretString, not both.
	SecretBinary []byte `json:"SecretBinary" sensitive:"true"`

	// SecretString is the text payload. Set either SecretString or SecretBinary, not both.
	SecretString *string `json:"SecretString,omitempty" sensitive:"true"`

	// Tags are attached to the secret at creation.
	Tags []Tag `json:"Tags"`
}

// GetClientRequestToken returns ClientRequestToken, or the zero value when unset.
func (c *CreateSecretRequest) GetClientRequestToken() string {
	if c == nil {
		return ""
	}

	return lo.FromPtr(c.ClientRequestToken)
}

// WithClientRequestToken sets ClientRequestToken.
func (c *CreateSecretRequest) WithClientRequestToken(v string) *CreateSecretRequest {
	c.ClientRequestToken = lo.ToPtr(v)

	return c
}

// GetDescription returns Description, or the zero value when unset.
func (c *CreateSecretRequest) GetDescription() string {
	if c == nil {
		return ""
	}

	return lo.FromPtr(c.Description)
}

// WithDescription sets Description.
func (c *CreateSecretRequest) WithDescription(v string) *CreateSecretRequest {
	c.Description = lo.ToPtr(v)

	return c
}

// GetKmsKeyId returns KmsKeyId, or the zero value when unset.
func (c *CreateSecretRequest) GetKmsKeyId() string {
	if c == nil {
		return ""
	}

	return lo.FromPtr(c.KmsKeyId)
}

// WithKmsKeyId sets KmsKeyId.
func (c *CreateSecretRequest) WithKmsKeyId(v string) *CreateSecretRequest {
	c.KmsKeyId = lo.ToPtr(v)

	return c
}

// GetName returns Name, or the zero value when unset.
func (c *CreateSecretRequest) GetName() string {
	if c == nil {
		return ""
	}

	return lo.FromPtr(c.Name)
}

// WithName sets Name.
func (c *CreateSecretRequest) WithName(v string) *CreateSecretRequest {
	c.Name = lo.ToPtr(v)

	return c
}

// GetSecretBinary returns a copy of SecretBinary, or nil when unset.
func (c *CreateSecretRequest) GetSecretBinary() []byte {
	if c == nil {
		return nil
	}

	return slices.Clone(c.SecretBinary)
}

// WithSecretBinary stores a copy of v. A nil v clears SecretBinary.
func (c *CreateSecretRequest) WithSecretBinary(v []byte) *CreateSecretRequest {
	c.SecretBinary = slices.Clone(v)

	return c
}

// GetSecretString returns SecretString, or the zero value when unset.
func (c *CreateSecretRequest) GetSecretString() string {
	if c == nil {
		return ""
	}

	return lo.FromPtr(c.SecretString)
}

// WithSecretString sets SecretString.
func (c *CreateSecretRequest) WithSecretString(v string) *CreateSecretRequest {
	c.SecretString = lo.ToPtr(v)

	return c
}

// GetTags returns a copy of Tags, or nil when unset.
func (c *CreateSecretRequest) GetTags() []Tag {
	if c == nil {
		return nil
	}

	return slices.Clone(c.Tags)
}

// WithTags stores a copy of v. A nil v clears Tags.
func (c *CreateSecretRequest) WithTags(v []Tag) *CreateSecretRequest {
	c.Tags = slices.Clone(v)

	return c
}

// AppendTags appends v to Tags.
func (c *CreateSecretRequest) AppendTags(v ...Tag) *CreateSecretRequest {
	c.Tags = append(c.Tags, v...)

	return c
}

// Validate checks required fields and length limits.
// Errors wrap ErrInvalidArgument.
func (c *CreateSecretRequest) Validate() error {
	return wrapValidationError(validation.ValidateStruct(c,
		validation.Field(&c.ClientRequestToken, versionIDRules...),
		validation.Field(&c.Description, descriptionRules...),
		validation.Field(&c.KmsKeyId, kmsKeyIDRules...),
		validation.Field(&c.Name, nameRules...),
		validation.Field(&c.SecretBinary, secretBinaryRules...),
		validation.Field(&c.SecretString, secretStringRules...),
		validation.Field(&c.Tags),
	))
}

// String renders the fields that are set. Sensitive values are redacted.
func (c *CreateSecretRequest) String() string {
	return dto.Format(c)
}

// Equal reports whether c and other hold the same field values.
func (c *CreateSecretRequest) Equal(other *CreateSecretRequest) bool {
	return dto.Equal(c, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (c *CreateSecretRequest) Hash() uint64 {
	return dto.Hash(c)
}

// CreateSecretResult is returned by CreateSecret.
type CreateSecretResult struct {
	// ARN is the Amazon Resource Name of the secret.
	ARN *string `json:"ARN,omitempty"`

	// Name is the friendly name of the secret.
	Name *string `json:"Name,omitempty"`

	// VersionId is the ID of the initial version, if a value was supplied.
	VersionId *string `json:"VersionId,omitempty"`
}

// GetARN returns ARN, or the zero value when unset.
func (c *CreateSecretResult) GetARN() string {
	if c == nil {
		return ""
	}

	return lo.FromPtr(c.ARN)
}

// WithARN sets ARN.
func (c *CreateSecretResult) WithARN(v string) *CreateSecretResult {
	c.ARN = lo.ToPtr(v)

	return c
}

// GetName returns Name, or the zero value when unset.
func (c *CreateSecretResult) GetName() string {
	if c == nil {
		return ""
	}

	return lo.FromPtr(c.Name)
}

// WithName sets Name.
func (c *CreateSecretResult) WithName(v string) *CreateSecretResult {
	c.Name = lo.ToPtr(v)

	return c
}

// GetVersionId returns VersionId, or the zero value when unset.
func (c *CreateSecretResult) GetVersionId() string {
	if c == nil {
		return ""
	}

	return lo.FromPtr(c.VersionId)
}

// WithVersionId sets VersionId.
func (c *CreateSecretResult) WithVersionId(v string) *CreateSecretResult {
	c.VersionId = lo.ToPtr(v)

	return c
}

// String renders the fields that are set. Sensitive values are redacted.
func (c *CreateSecretResult) String() string {
	return dto.Format(c)
}

// Equal reports whether c and other hold the same field values.
func (c *CreateSecretResult) Equal(other *CreateSecretResult) bool {
	return dto.Equal(c, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (c *CreateSecretResult) Hash() uint64 {
	return dto.Hash(c)
}
