package smmodel

import (
	"slices"
	"time"

	validation "github.com/jellydator/validation"
	"github.com/samber/lo"

	"github.com/mpyw/smkit/internal/dto"
)

// DescribeSecretRequest asks for a secret's metadata. The value is never returned.
type DescribeSecretRequest struct {
	// SecretId is the name or ARN of the secret.
	SecretId *string `json:"SecretId,omitempty"`
}

// GetSecretId returns SecretId, or the zero value when unset.
func (d *DescribeSecretRequest) GetSecretId() string {
	if d == nil {
		return ""
	}

	return lo.FromPtr(d.SecretId)
}

// WithSecretId sets SecretId.
func (d *DescribeSecretRequest) WithSecretId(v string) *DescribeSecretRequest {
	d.SecretId = lo.ToPtr(v)

	return d
}

// Validate checks required fields and length limits.
// Errors wrap ErrInvalidArgument.
func (d *DescribeSecretRequest) Validate() error {
	return wrapValidationError(validation.ValidateStruct(d,
		validation.Field(&d.SecretId, secretIDRules...),
	))
}

// String renders the fields that are set. Sensitive values are redacted.
func (d *DescribeSecretRequest) String() string {
	return dto.Format(d)
}

// Equal reports whether d and other hold the same field values.
func (d *DescribeSecretRequest) Equal(other *DescribeSecretRequest) bool {
	return dto.Equal(d, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (d *DescribeSecretRequest) Hash() uint64 {
	return dto.Hash(d)
}

// DescribeSecretResult carries the metadata of a secret.
type DescribeSecretResult struct {
	// ARN is the Amazon Resource Name of the secret.
	ARN *string `json:"ARN,omitempty"`

	// DeletedDate is set when the secret is scheduled for deletion.
	DeletedDate *time.Time `json:"DeletedDate,omitempty"`

	// Description is the user-provided description.
	Description *string `json:"Description,omitempty"`

	// KmsKeyId identifies the KMS key that encrypts the secret value.
	KmsKeyId *string `json:"KmsKeyId,omitempty"`

	// LastAccessedDate is the last date the secret value was read, truncated to the day.
	LastAccessedDate *time.Time `json:"LastAccessedDate,omitempty"`

	// LastChangedDate is the last date the secret was modified.
	LastChangedDate *time.Time `json:"LastChangedDate,omitempty"`

	// LastRotatedDate is the last date rotation completed.
	LastRotatedDate *time.Time `json:"LastRotatedDate,omitempty"`

	// Name is the friendly name of the secret.
	Name *string `json:"Name,omitempty"`

	// OwningService names the AWS service that created the secret, if any.
	OwningService *string `json:"OwningService,omitempty"`

	// RotationEnabled reports whether automatic rotation is configured.
	RotationEnabled *bool `json:"RotationEnabled,omitempty"`

	// RotationLambdaARN is the Lambda function that rotates the secret.
	RotationLambdaARN *string `json:"RotationLambdaARN,omitempty"`

	// RotationRules is the rotation schedule.
	RotationRules *RotationRules `json:"RotationRules,omitempty"`

	// Tags are the tags attached to the secret.
	Tags []Tag `json:"Tags"`

	// VersionIdsToStages maps each version ID to its staging labels.
	VersionIdsToStages VersionStages `json:"VersionIdsToStages"`
}

// GetARN returns ARN, or the zero value when unset.
func (d *DescribeSecretResult) GetARN() string {
	if d == nil {
		return ""
	}

	return lo.FromPtr(d.ARN)
}

// WithARN sets ARN.
func (d *DescribeSecretResult) WithARN(v string) *DescribeSecretResult {
	d.ARN = lo.ToPtr(v)

	return d
}

// GetDeletedDate returns DeletedDate, or the zero value when unset.
func (d *DescribeSecretResult) GetDeletedDate() time.Time {
	if d == nil {
		return time.Time{}
	}

	return lo.FromPtr(d.DeletedDate)
}

// WithDeletedDate sets DeletedDate.
func (d *DescribeSecretResult) WithDeletedDate(v time.Time) *DescribeSecretResult {
	d.DeletedDate = lo.ToPtr(v)

	return d
}

// GetDescription returns Description, or the zero value when unset.
func (d *DescribeSecretResult) GetDescription() string {
	if d == nil {
		return ""
	}

	return lo.FromPtr(d.Description)
}

// WithDescription sets Description.
func (d *DescribeSecretResult) WithDescription(v string) *DescribeSecretResult {
	d.Description = lo.ToPtr(v)

	return d
}

// GetKmsKeyId returns KmsKeyId, or the zero value when unset.
func (d *DescribeSecretResult) GetKmsKeyId() string {
	if d == nil {
		return ""
	}

	return lo.FromPtr(d.KmsKeyId)
}

// WithKmsKeyId sets KmsKeyId.
func (d *DescribeSecretResult) WithKmsKeyId(v string) *DescribeSecretResult {
	d.KmsKeyId = lo.ToPtr(v)

	return d
}

// GetLastAccessedDate returns LastAccessedDate, or the zero value when unset.
func (d *DescribeSecretResult) GetLastAccessedDate() time.Time {
	if d == nil {
		return time.Time{}
	}

	return lo.FromPtr(d.LastAccessedDate)
}

// WithLastAccessedDate sets LastAccessedDate.
func (d *DescribeSecretResult) WithLastAccessedDate(v time.Time) *DescribeSecretResult {
	d.LastAccessedDate = lo.ToPtr(v)

	return d
}

// GetLastChangedDate returns LastChangedDate, or the zero value when unset.
func (d *DescribeSecretResult) GetLastChangedDate() time.Time {
	if d == nil {
		return time.Time{}
	}

	return lo.FromPtr(d.LastChangedDate)
}

// WithLastChangedDate sets LastChangedDate.
func (d *DescribeSecretResult) WithLastChangedDate(v time.Time) *DescribeSecretResult {
	d.LastChangedDate = lo.ToPtr(v)

	return d
}

// GetLastRotatedDate returns LastRotatedDate, or the zero value when unset.
func (d *DescribeSecretResult) GetLastRotatedDate() time.Time {
	if d == nil {
		return time.Time{}
	}

	return lo.FromPtr(d.LastRotatedDate)
}

// WithLastRotatedDate sets LastRotatedDate.
func (d *DescribeSecretResult) WithLastRotatedDate(v time.Time) *DescribeSecretResult {
	d.LastRotatedDate = lo.ToPtr(v)

	return d
}

// GetName returns Name, or the zero value when unset.
func (d *DescribeSecretResult) GetName() string {
	if d == nil {
		return ""
	}

	return lo.FromPtr(d.Name)
}

// WithName sets Name.
func (d *DescribeSecretResult) WithName(v string) *DescribeSecretResult {
	d.Name = lo.ToPtr(v)

	return d
}

// GetOwningService returns OwningService, or the zero value when unset.
func (d *DescribeSecretResult) GetOwningService() string {
	if d == nil {
		return ""
	}

	return lo.FromPtr(d.OwningService)
}

// WithOwningService sets OwningService.
func (d *DescribeSecretResult) WithOwningService(v string) *DescribeSecretResult {
	d.OwningService = lo.ToPtr(v)

	return d
}

// GetRotationEnabled returns RotationEnabled, or the zero value when unset.
func (d *DescribeSecretResult) GetRotationEnabled() bool {
	if d == nil {
		return false
	}

	return lo.FromPtr(d.RotationEnabled)
}

// WithRotationEnabled sets RotationEnabled.
func (d *DescribeSecretResult) WithRotationEnabled(v bool) *DescribeSecretResult {
	d.RotationEnabled = lo.ToPtr(v)

	return d
}

// GetRotationLambdaARN returns RotationLambdaARN, or the zero value when unset.
func (d *DescribeSecretResult) GetRotationLambdaARN() string {
	if d == nil {
		return ""
	}

	return lo.FromPtr(d.RotationLambdaARN)
}

// WithRotationLambdaARN sets RotationLambdaARN.
func (d *DescribeSecretResult) WithRotationLambdaARN(v string) *DescribeSecretResult {
	d.RotationLambdaARN = lo.ToPtr(v)

	return d
}

// GetRotationRules returns RotationRules, or nil when unset.
func (d *DescribeSecretResult) GetRotationRules() *RotationRules {
	if d == nil {
		return nil
	}

	return d.RotationRules
}

// WithRotationRules sets RotationRules.
func (d *DescribeSecretResult) WithRotationRules(v *RotationRules) *DescribeSecretResult {
	d.RotationRules = v

	return d
}

// GetTags returns a copy of Tags, or nil when unset.
func (d *DescribeSecretResult) GetTags() []Tag {
	if d == nil {
		return nil
	}

	return slices.Clone(d.Tags)
}

// WithTags stores a copy of v. A nil v clears Tags.
func (d *DescribeSecretResult) WithTags(v []Tag) *DescribeSecretResult {
	d.Tags = slices.Clone(v)

	return d
}

// AppendTags appends v to Tags.
func (d *DescribeSecretResult) AppendTags(v ...Tag) *DescribeSecretResult {
	d.Tags = append(d.Tags, v...)

	return d
}

// GetVersionIdsToStages returns a copy of VersionIdsToStages, or nil when unset.
func (d *DescribeSecretResult) GetVersionIdsToStages() VersionStages {
	if d == nil {
		return nil
	}

	return d.VersionIdsToStages.Clone()
}

// WithVersionIdsToStages stores a deep copy of v. A nil v clears VersionIdsToStages.
func (d *DescribeSecretResult) WithVersionIdsToStages(v map[string][]string) *DescribeSecretResult {
	d.VersionIdsToStages = VersionStages(v).Clone()

	return d
}

// AddVersionIdsToStagesEntry records the labels of one version.
// It returns ErrDuplicateKey if versionID is already present.
func (d *DescribeSecretResult) AddVersionIdsToStagesEntry(versionID string, stages []string) error {
	return d.VersionIdsToStages.Add(versionID, stages)
}

// ClearVersionIdsToStagesEntries unsets VersionIdsToStages.
func (d *DescribeSecretResult) ClearVersionIdsToStagesEntries() *DescribeSecretResult {
	d.VersionIdsToStages = nil

	return d
}

// String renders the fields that are set. Sensitive values are redacted.
func (d *DescribeSecretResult) String() string {
	return dto.Format(d)
}

// Equal reports whether d and other hold the same field values.
func (d *DescribeSecretResult) Equal(other *DescribeSecretResult) bool {
	return dto.Equal(d, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (d *DescribeSecretResult) Hash() uint64 {
	return dto.Hash(d)
}
