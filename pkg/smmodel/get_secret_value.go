package smmodel

import (
	"slices"
	"time"

	validation "github.com/jellydator/validation"
	"github.com/samber/lo"

	"github.com/mpyw/smkit/internal/dto"
)

// GetSecretValueRequest reads one version of a secret's value.
// Without VersionId or VersionStage the AWSCURRENT version is returned.
type GetSecretValueRequest struct {
	// SecretId is the name or ARN of the secret.
	SecretId *string `json:"SecretId,omitempty"`

	// VersionId selects a version by ID.
	VersionId *string `json:"VersionId,omitempty"`

	// VersionStage selects the version holding this staging label.
	VersionStage *string `json:"VersionStage,omitempty"`
}

// GetSecretId returns SecretId, or the zero value when unset.
func (g *GetSecretValueRequest) GetSecretId() string {
	if g == nil {
		return ""
	}

	return lo.FromPtr(g.SecretId)
}

// WithSecretId sets SecretId.
func (g *GetSecretValueRequest) WithSecretId(v string) *GetSecretValueRequest {
	g.SecretId = lo.ToPtr(v)

	return g
}

// GetVersionId returns VersionId, or the zero value when unset.
func (g *GetSecretValueRequest) GetVersionId() string {
	if g == nil {
		return ""
	}

	return lo.FromPtr(g.VersionId)
}

// WithVersionId sets VersionId.
func (g *GetSecretValueRequest) WithVersionId(v string) *GetSecretValueRequest {
	g.VersionId = lo.ToPtr(v)

	return g
}

// GetVersionStage returns VersionStage, or the zero value when unset.
func (g *GetSecretValueRequest) GetVersionStage() string {
	if g == nil {
		return ""
	}

	return lo.FromPtr(g.VersionStage)
}

// WithVersionStage sets VersionStage.
func (g *GetSecretValueRequest) WithVersionStage(v string) *GetSecretValueRequest {
	g.VersionStage = lo.ToPtr(v)

	return g
}

// Validate checks required fields and length limits.
// Errors wrap ErrInvalidArgument.
func (g *GetSecretValueRequest) Validate() error {
	return wrapValidationError(validation.ValidateStruct(g,
		validation.Field(&g.SecretId, secretIDRules...),
		validation.Field(&g.VersionId, versionIDRules...),
		validation.Field(&g.VersionStage, versionStageRules...),
	))
}

// String renders the fields that are set. Sensitive values are redacted.
func (g *GetSecretValueRequest) String() string {
	return dto.Format(g)
}

// Equal reports whether g and other hold the same field values.
func (g *GetSecretValueRequest) Equal(other *GetSecretValueRequest) bool {
	return dto.Equal(g, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (g *GetSecretValueRequest) Hash() uint64 {
	return dto.Hash(g)
}

// GetSecretValueResult carries one version of a secret's value.
type GetSecretValueResult struct {
	// ARN is the Amazon Resource Name of the secret.
	ARN *string `json:"ARN,omitempty"`

	// CreatedDate is when the version was created.
	CreatedDate *time.Time `json:"CreatedDate,omitempty"`

	// Name is the friendly name of the secret.
	Name *string `json:"Name,omitempty"`

	// SecretBinary is set when the version stores a binary payload.
	SecretBinary []byte `json:"SecretBinary" sensitive:"true"`

	// SecretString is set when the version stores a text payload.
	SecretString *string `json:"SecretString,omitempty" sensitive:"true"`

	// VersionId is the ID of the returned version.
	VersionId *string `json:"VersionId,omitempty"`

	// VersionStages are the staging labels attached to the returned version.
	VersionStages []string `json:"VersionStages"`
}

// GetARN returns ARN, or the zero value when unset.
func (g *GetSecretValueResult) GetARN() string {
	if g == nil {
		return ""
	}

	return lo.FromPtr(g.ARN)
}

// WithARN sets ARN.
func (g *GetSecretValueResult) WithARN(v string) *GetSecretValueResult {
	g.ARN = lo.ToPtr(v)

	return g
}

// GetCreatedDate returns CreatedDate, or the zero value when unset.
func (g *GetSecretValueResult) GetCreatedDate() time.Time {
	if g == nil {
		return time.Time{}
	}

	return lo.FromPtr(g.CreatedDate)
}

// WithCreatedDate sets CreatedDate.
func (g *GetSecretValueResult) WithCreatedDate(v time.Time) *GetSecretValueResult {
	g.CreatedDate = lo.ToPtr(v)

	return g
}

// GetName returns Name, or the zero value when unset.
func (g *GetSecretValueResult) GetName() string {
	if g == nil {
		return ""
	}

	return lo.FromPtr(g.Name)
}

// WithName sets Name.
func (g *GetSecretValueResult) WithName(v string) *GetSecretValueResult {
	g.Name = lo.ToPtr(v)

	return g
}

// GetSecretBinary returns a copy of SecretBinary, or nil when unset.
func (g *GetSecretValueResult) GetSecretBinary() []byte {
	if g == nil {
		return nil
	}

	return slices.Clone(g.SecretBinary)
}

// WithSecretBinary stores a copy of v. A nil v clears SecretBinary.
func (g *GetSecretValueResult) WithSecretBinary(v []byte) *GetSecretValueResult {
	g.SecretBinary = slices.Clone(v)

	return g
}

// GetSecretString returns SecretString, or the zero value when unset.
func (g *GetSecretValueResult) GetSecretString() string {
	if g == nil {
		return ""
	}

	return lo.FromPtr(g.SecretString)
}

// WithSecretString sets SecretString.
func (g *GetSecretValueResult) WithSecretString(v string) *GetSecretValueResult {
	g.SecretString = lo.ToPtr(v)

	return g
}

// GetVersionId returns VersionId, or the zero value when unset.
func (g *GetSecretValueResult) GetVersionId() string {
	if g == nil {
		return ""
	}

	return lo.FromPtr(g.VersionId)
}

// WithVersionId sets VersionId.
func (g *GetSecretValueResult) WithVersionId(v string) *GetSecretValueResult {
	g.VersionId = lo.ToPtr(v)

	return g
}

// GetVersionStages returns a copy of VersionStages, or nil when unset.
func (g *GetSecretValueResult) GetVersionStages() []string {
	if g == nil {
		return nil
	}

	return slices.Clone(g.VersionStages)
}

// WithVersionStages stores a copy of v. A nil v clears VersionStages.
func (g *GetSecretValueResult) WithVersionStages(v []string) *GetSecretValueResult {
	g.VersionStages = slices.Clone(v)

	return g
}

// AppendVersionStages appends v to VersionStages.
func (g *GetSecretValueResult) AppendVersionStages(v ...string) *GetSecretValueResult {
	g.VersionStages = append(g.VersionStages, v...)

	return g
}

// String renders the fields that are set. Sensitive values are redacted.
func (g *GetSecretValueResult) String() string {
	return dto.Format(g)
}

// Equal reports whether g and other hold the same field values.
func (g *GetSecretValueResult) Equal(other *GetSecretValueResult) bool {
	return dto.Equal(g, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (g *GetSecretValueResult) Hash() uint64 {
	return dto.Hash(g)
}
