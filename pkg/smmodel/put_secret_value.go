package smmodel

import (
	"slices"

	validation "github.com/jellydator/validation"
	"github.com/samber/lo"

	"github.com/mpyw/smkit/internal/dto"
)

// PutSecretValueRequest stores a new version of a secret's value.
// Without VersionStages the new version receives AWSCURRENT.
type PutSecretValueRequest struct {
	// ClientRequestToken is an idempotency key and becomes the new version's ID.
	// smclient fills it with a random UUID when it is left unset.
	ClientRequestToken *string `json:"ClientRequestToken,omitempty"`

	// SecretBinary is the binary payload. Set either SecretBinary or SecretString, not both.
	SecretBinary []byte `json:"SecretBinary" sensitive:"true"`

	// SecretId is the name or ARN of the secret.
	SecretId *string `json:"SecretId,omitempty"`

	// SecretString is the text payload. Set either SecretString or SecretBinary, not both.
	SecretString *string `json:"SecretString,omitempty" sensitive:"true"`

	// VersionStages are the staging labels to attach to the new version.
	VersionStages []string `json:"VersionStages"`
}

// GetClientRequestToken returns ClientRequestToken, or the zero value when unset.
func (p *PutSecretValueRequest) GetClientRequestToken() string {
	if p == nil {
		return ""
	}

	return lo.FromPtr(p.ClientRequestToken)
}

// WithClientRequestToken sets ClientRequestToken.
func (p *PutSecretValueRequest) WithClientRequestToken(v string) *PutSecretValueRequest {
	p.ClientRequestToken = lo.ToPtr(v)

	return p
}

// GetSecretBinary returns a copy of SecretBinary, or nil when unset.
func (p *PutSecretValueRequest) GetSecretBinary() []byte {
	if p == nil {
		return nil
	}

	return slices.Clone(p.SecretBinary)
}

// WithSecretBinary stores a copy of v. A nil v clears SecretBinary.
func (p *PutSecretValueRequest) WithSecretBinary(v []byte) *PutSecretValueRequest {
	p.SecretBinary = slices.Clone(v)

	return p
}

// GetSecretId returns SecretId, or the zero value when unset.
func (p *PutSecretValueRequest) GetSecretId() string {
	if p == nil {
		return ""
	}

	return lo.FromPtr(p.SecretId)
}

// WithSecretId sets SecretId.
func (p *PutSecretValueRequest) WithSecretId(v string) *PutSecretValueRequest {
	p.SecretId = lo.ToPtr(v)

	return p
}

// GetSecretString returns SecretString, or the zero value when unset.
func (p *PutSecretValueRequest) GetSecretString() string {
	if p == nil {
		return ""
	}

	return lo.FromPtr(p.SecretString)
}

// WithSecretString sets SecretString.
func (p *PutSecretValueRequest) WithSecretString(v string) *PutSecretValueRequest {
	p.SecretString = lo.ToPtr(v)

	return p
}

// GetVersionStages returns a copy of VersionStages, or nil when unset.
func (p *PutSecretValueRequest) GetVersionStages() []string {
	if p == nil {
		return nil
	}

	return slices.Clone(p.VersionStages)
}

// WithVersionStages stores a copy of v. A nil v clears VersionStages.
func (p *PutSecretValueRequest) WithVersionStages(v []string) *PutSecretValueRequest {
	p.VersionStages = slices.Clone(v)

	return p
}

// AppendVersionStages appends v to VersionStages.
func (p *PutSecretValueRequest) AppendVersionStages(v ...string) *PutSecretValueRequest {
	p.VersionStages = append(p.VersionStages, v...)

	return p
}

// Validate checks required fields and length limits.
// Errors wrap ErrInvalidArgument.
func (p *PutSecretValueRequest) Validate() error {
	return wrapValidationError(validation.ValidateStruct(p,
		validation.Field(&p.ClientRequestToken, versionIDRules...),
		validation.Field(&p.SecretBinary, secretBinaryRules...),
		validation.Field(&p.SecretId, secretIDRules...),
		validation.Field(&p.SecretString, secretStringRules...),
		validation.Field(&p.VersionStages, versionStagesRules...),
	))
}

// String renders the fields that are set. Sensitive values are redacted.
func (p *PutSecretValueRequest) String() string {
	return dto.Format(p)
}

// Equal reports whether p and other hold the same field values.
func (p *PutSecretValueRequest) Equal(other *PutSecretValueRequest) bool {
	return dto.Equal(p, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (p *PutSecretValueRequest) Hash() uint64 {
	return dto.Hash(p)
}

// PutSecretValueResult is returned by PutSecretValue.
type PutSecretValueResult struct {
	// ARN is the Amazon Resource Name of the secret.
	ARN *string `json:"ARN,omitempty"`

	// Name is the friendly name of the secret.
	Name *string `json:"Name,omitempty"`

	// VersionId is the ID of the new version.
	VersionId *string `json:"VersionId,omitempty"`

	// VersionStages are the staging labels attached to the new version.
	VersionStages []string `json:"VersionStages"`
}

// GetARN returns ARN, or the zero value when unset.
func (p *PutSecretValueResult) GetARN() string {
	if p == nil {
		return ""
	}

	return lo.FromPtr(p.ARN)
}

// WithARN sets ARN.
func (p *PutSecretValueResult) WithARN(v string) *PutSecretValueResult {
	p.ARN = lo.ToPtr(v)

	return p
}

// GetName returns Name, or the zero value when unset.
func (p *PutSecretValueResult) GetName() string {
	if p == nil {
		return ""
	}

	return lo.FromPtr(p.Name)
}

// WithName sets Name.
func (p *PutSecretValueResult) WithName(v string) *PutSecretValueResult {
	p.Name = lo.ToPtr(v)

	return p
}

// GetVersionId returns VersionId, or the zero value when unset.
func (p *PutSecretValueResult) GetVersionId() string {
	if p == nil {
		return ""
	}

	return lo.FromPtr(p.VersionId)
}

// WithVersionId sets VersionId.
func (p *PutSecretValueResult) WithVersionId(v string) *PutSecretValueResult {
	p.VersionId = lo.ToPtr(v)

	return p
}

// GetVersionStages returns a copy of VersionStages, or nil when unset.
func (p *PutSecretValueResult) GetVersionStages() []string {
	if p == nil {
		return nil
	}

	return slices.Clone(p.VersionStages)
}

// WithVersionStages stores a copy of v. A nil v clears VersionStages.
func (p *PutSecretValueResult) WithVersionStages(v []string) *PutSecretValueResult {
	p.VersionStages = slices.Clone(v)

	return p
}

// AppendVersionStages appends v to VersionStages.
func (p *PutSecretValueResult) AppendVersionStages(v ...string) *PutSecretValueResult {
	p.VersionStages = append(p.VersionStages, v...)

	return p
}

// String renders the fields that are set. Sensitive values are redacted.
func (p *PutSecretValueResult) String() string {
	return dto.Format(p)
}

// Equal reports whether p and other hold the same field values.
func (p *PutSecretValueResult) Equal(other *PutSecretValueResult) bool {
	return dto.Equal(p, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (p *PutSecretValueResult) Hash() uint64 {
	return dto.Hash(p)
}
