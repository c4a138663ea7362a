package smmodel

import (
	"slices"

	validation "github.com/jellydator/validation"
	"github.com/samber/lo"

	"github.com/mpyw/smkit/internal/dto"
)

// UpdateSecretRequest modifies a secret's metadata and, when a payload is set, stores a new version.
type UpdateSecretRequest struct {
	// ClientRequestToken is an idempotency key and becomes the new version's ID.
	// smclient fills it with a random UUID when it is left unset.
	ClientRequestToken *string `json:"ClientRequestToken,omitempty"`

	// Description replaces the description.
	Description *string `json:"Description,omitempty"`

	// KmsKeyId replaces the KMS key used for new versions.
	KmsKeyId *string `json:"KmsKeyId,omitempty"`

	// SecretBinary is the binary payload. Set either SecretBinary or SecretString, not both.
	SecretBinary []byte `json:"SecretBinary" sensitive:"true"`

	// SecretId is the name or ARN of the secret.
	SecretId *string `json:"SecretId,omitempty"`

	// SecretString is the text payload. Set either SecretString or SecretBinary, not both.
	SecretString *string `json:"SecretString,omitempty" sensitive:"true"`
}

// GetClientRequestToken returns ClientRequestToken, or the zero value when unset.
func (u *UpdateSecretRequest) GetClientRequestToken() string {
	if u == nil {
		return ""
	}

	return lo.FromPtr(u.ClientRequestToken)
}

// WithClientRequestToken sets ClientRequestToken.
func (u *UpdateSecretRequest) WithClientRequestToken(v string) *UpdateSecretRequest {
	u.ClientRequestToken = lo.ToPtr(v)

	return u
}

// GetDescription returns Description, or the zero value when unset.
func (u *UpdateSecretRequest) GetDescription() string {
	if u == nil {
		return ""
	}

	return lo.FromPtr(u.Description)
}

// WithDescription sets Description.
func (u *UpdateSecretRequest) WithDescription(v string) *UpdateSecretRequest {
	u.Description = lo.ToPtr(v)

	return u
}

// GetKmsKeyId returns KmsKeyId, or the zero value when unset.
func (u *UpdateSecretRequest) GetKmsKeyId() string {
	if u == nil {
		return ""
	}

	return lo.FromPtr(u.KmsKeyId)
}

// WithKmsKeyId sets KmsKeyId.
func (u *UpdateSecretRequest) WithKmsKeyId(v string) *UpdateSecretRequest {
	u.KmsKeyId = lo.ToPtr(v)

	return u
}

// GetSecretBinary returns a copy of SecretBinary, or nil when unset.
func (u *UpdateSecretRequest) GetSecretBinary() []byte {
	if u == nil {
		return nil
	}

	return slices.Clone(u.SecretBinary)
}

// WithSecretBinary stores a copy of v. A nil v clears SecretBinary.
func (u *UpdateSecretRequest) WithSecretBinary(v []byte) *UpdateSecretRequest {
	u.SecretBinary = slices.Clone(v)

	return u
}

// GetSecretId returns SecretId, or the zero value when unset.
func (u *UpdateSecretRequest) GetSecretId() string {
	if u == nil {
		return ""
	}

	return lo.FromPtr(u.SecretId)
}

// WithSecretId sets SecretId.
func (u *UpdateSecretRequest) WithSecretId(v string) *UpdateSecretRequest {
	u.SecretId = lo.ToPtr(v)

	return u
}

// GetSecretString returns SecretString, or the zero value when unset.
func (u *UpdateSecretRequest) GetSecretString() string {
	if u == nil {
		return ""
	}

	return lo.FromPtr(u.SecretString)
}

// WithSecretString sets SecretString.
func (u *UpdateSecretRequest) WithSecretString(v string) *UpdateSecretRequest {
	u.SecretString = lo.ToPtr(v)

	return u
}

// Validate checks required fields and length limits.
// Errors wrap ErrInvalidArgument.
func (u *UpdateSecretRequest) Validate() error {
	return wrapValidationError(validation.ValidateStruct(u,
		validation.Field(&u.ClientRequestToken, versionIDRules...),
		validation.Field(&u.Description, descriptionRules...),
		validation.Field(&u.KmsKeyId, kmsKeyIDRules...),
		validation.Field(&u.SecretBinary, secretBinaryRules...),
		validation.Field(&u.SecretId, secretIDRules...),
		validation.Field(&u.SecretString, secretStringRules...),
	))
}

// String renders the fields that are set. Sensitive values are redacted.
func (u *UpdateSecretRequest) String() string {
	return dto.Format(u)
}

// Equal reports whether u and other hold the same field values.
func (u *UpdateSecretRequest) Equal(other *UpdateSecretRequest) bool {
	return dto.Equal(u, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (u *UpdateSecretRequest) Hash() uint64 {
	return dto.Hash(u)
}

// UpdateSecretResult is returned by UpdateSecret.
type UpdateSecretResult struct {
	// ARN is the Amazon Resource Name of the secret.
	ARN *string `json:"ARN,omitempty"`

	// Name is the friendly name of the secret.
	Name *string `json:"Name,omitempty"`

	// VersionId is the ID of the new version, if a payload was supplied.
	VersionId *string `json:"VersionId,omitempty"`
}

// GetARN returns ARN, or the zero value when unset.
func (u *UpdateSecretResult) GetARN() string {
	if u == nil {
		return ""
	}

	return lo.FromPtr(u.ARN)
}

// WithARN sets ARN.
func (u *UpdateSecretResult) WithARN(v string) *UpdateSecretResult {
	u.ARN = lo.ToPtr(v)

	return u
}

// GetName returns Name, or the zero value when unset.
func (u *UpdateSecretResult) GetName() string {
	if u == nil {
		return ""
	}

	return lo.FromPtr(u.Name)
}

// WithName sets Name.
func (u *UpdateSecretResult) WithName(v string) *UpdateSecretResult {
	u.Name = lo.ToPtr(v)

	return u
}

// GetVersionId returns VersionId, or the zero value when unset.
func (u *UpdateSecretResult) GetVersionId() string {
	if u == nil {
		return ""
	}

	return lo.FromPtr(u.VersionId)
}

// WithVersionId sets VersionId.
func (u *UpdateSecretResult) WithVersionId(v string) *UpdateSecretResult {
	u.VersionId = lo.ToPtr(v)

	return u
}

// String renders the fields that are set. Sensitive values are redacted.
func (u *UpdateSecretResult) String() string {
	return dto.Format(u)
}

// Equal reports whether u and other hold the same field values.
func (u *UpdateSecretResult) Equal(other *UpdateSecretResult) bool {
	return dto.Equal(u, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (u *UpdateSecretResult) Hash() uint64 {
	return dto.Hash(u)
}
