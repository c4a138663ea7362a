package smmodel

import (
	"slices"
	"time"

	validation "github.com/jellydator/validation"
	"github.com/samber/lo"

	"github.com/mpyw/smkit/internal/dto"
)

// Tag is a key/value label attached to a secret. Keys and values are case-sensitive.
type Tag struct {
	// Key is the tag name, up to 127 Unicode characters.
	Key *string `json:"Key,omitempty"`

	// Value is the tag value, up to 255 Unicode characters.
	Value *string `json:"Value,omitempty"`
}

// NewTag returns a Tag with both Key and Value set.
func NewTag(key, value string) *Tag {
	return &Tag{Key: lo.ToPtr(key), Value: lo.ToPtr(value)}
}

// GetKey returns Key, or the zero value when unset.
func (t *Tag) GetKey() string {
	if t == nil {
		return ""
	}

	return lo.FromPtr(t.Key)
}

// WithKey sets Key.
func (t *Tag) WithKey(v string) *Tag {
	t.Key = lo.ToPtr(v)

	return t
}

// GetValue returns Value, or the zero value when unset.
func (t *Tag) GetValue() string {
	if t == nil {
		return ""
	}

	return lo.FromPtr(t.Value)
}

// WithValue sets Value.
func (t *Tag) WithValue(v string) *Tag {
	t.Value = lo.ToPtr(v)

	return t
}

// Validate checks length limits. It returns validation.Errors so that the
// result nests cleanly inside the error of an enclosing request.
func (t Tag) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Key, validation.Required, validation.RuneLength(1, MaxTagKeyLength)),
		validation.Field(&t.Value, validation.RuneLength(0, MaxTagValueLength)),
	)
}

// String renders the fields that are set. Sensitive values are redacted.
func (t *Tag) String() string {
	return dto.Format(t)
}

// Equal reports whether t and other hold the same field values.
func (t *Tag) Equal(other *Tag) bool {
	return dto.Equal(t, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (t *Tag) Hash() uint64 {
	return dto.Hash(t)
}

// Filter narrows ListSecrets results. Values prefixed with "!" negate the match.
type Filter struct {
	// Key is the attribute to match.
	Key FilterNameStringType `json:"Key,omitempty"`

	// Values are matched as prefixes, case-sensitively.
	Values []string `json:"Values"`
}

// GetKey returns Key, or "" when unset.
func (f *Filter) GetKey() FilterNameStringType {
	if f == nil {
		return ""
	}

	return f.Key
}

// WithKey sets Key.
func (f *Filter) WithKey(v FilterNameStringType) *Filter {
	f.Key = v

	return f
}

// WithKeyString sets Key from its raw string form.
func (f *Filter) WithKeyString(v string) *Filter {
	return f.WithKey(FilterNameStringType(v))
}

// GetValues returns a copy of Values, or nil when unset.
func (f *Filter) GetValues() []string {
	if f == nil {
		return nil
	}

	return slices.Clone(f.Values)
}

// WithValues stores a copy of v. A nil v clears Values.
func (f *Filter) WithValues(v []string) *Filter {
	f.Values = slices.Clone(v)

	return f
}

// AppendValues appends v to Values.
func (f *Filter) AppendValues(v ...string) *Filter {
	f.Values = append(f.Values, v...)

	return f
}

// Validate checks length limits. It returns validation.Errors so that the
// result nests cleanly inside the error of an enclosing request.
func (f Filter) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Values, validation.Length(1, MaxFilterValues), validation.Each(validation.Length(1, MaxFilterValueLength))),
	)
}

// String renders the fields that are set. Sensitive values are redacted.
func (f *Filter) String() string {
	return dto.Format(f)
}

// Equal reports whether f and other hold the same field values.
func (f *Filter) Equal(other *Filter) bool {
	return dto.Equal(f, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (f *Filter) Hash() uint64 {
	return dto.Hash(f)
}

// RotationRules configures the rotation schedule of a secret.
type RotationRules struct {
	// AutomaticallyAfterDays is the number of days between automatic rotations.
	AutomaticallyAfterDays *int64 `json:"AutomaticallyAfterDays,omitempty"`
}

// GetAutomaticallyAfterDays returns AutomaticallyAfterDays, or the zero value when unset.
func (r *RotationRules) GetAutomaticallyAfterDays() int64 {
	if r == nil {
		return 0
	}

	return lo.FromPtr(r.AutomaticallyAfterDays)
}

// WithAutomaticallyAfterDays sets AutomaticallyAfterDays.
func (r *RotationRules) WithAutomaticallyAfterDays(v int64) *RotationRules {
	r.AutomaticallyAfterDays = lo.ToPtr(v)

	return r
}

// Validate checks length limits. It returns validation.Errors so that the
// result nests cleanly inside the error of an enclosing request.
func (r RotationRules) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AutomaticallyAfterDays, validation.Min(int64(1)), validation.Max(int64(MaxRotationDays))),
	)
}

// String renders the fields that are set. Sensitive values are redacted.
func (r *RotationRules) String() string {
	return dto.Format(r)
}

// Equal reports whether r and other hold the same field values.
func (r *RotationRules) Equal(other *RotationRules) bool {
	return dto.Equal(r, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (r *RotationRules) Hash() uint64 {
	return dto.Hash(r)
}

// SecretListEntry describes one secret returned by ListSecrets. It never carries the secret value.
type SecretListEntry struct {
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

	// SecretVersionsToStages maps each version ID to its staging labels.
	SecretVersionsToStages VersionStages `json:"SecretVersionsToStages"`

	// Tags are the tags attached to the secret.
	Tags []Tag `json:"Tags"`
}

// GetARN returns ARN, or the zero value when unset.
func (s *SecretListEntry) GetARN() string {
	if s == nil {
		return ""
	}

	return lo.FromPtr(s.ARN)
}

// WithARN sets ARN.
func (s *SecretListEntry) WithARN(v string) *SecretListEntry {
	s.ARN = lo.ToPtr(v)

	return s
}

// GetDeletedDate returns DeletedDate, or the zero value when unset.
func (s *SecretListEntry) GetDeletedDate() time.Time {
	if s == nil {
		return time.Time{}
	}

	return lo.FromPtr(s.DeletedDate)
}

// WithDeletedDate sets DeletedDate.
func (s *SecretListEntry) WithDeletedDate(v time.Time) *SecretListEntry {
	s.DeletedDate = lo.ToPtr(v)

	return s
}

// GetDescription returns Description, or the zero value when unset.
func (s *SecretListEntry) GetDescription() string {
	if s == nil {
		return ""
	}

	return lo.FromPtr(s.Description)
}

// WithDescription sets Description.
func (s *SecretListEntry) WithDescription(v string) *SecretListEntry {
	s.Description = lo.ToPtr(v)

	return s
}

// GetKmsKeyId returns KmsKeyId, or the zero value when unset.
func (s *SecretListEntry) GetKmsKeyId() string {
	if s == nil {
		return ""
	}

	return lo.FromPtr(s.KmsKeyId)
}

// WithKmsKeyId sets KmsKeyId.
func (s *SecretListEntry) WithKmsKeyId(v string) *SecretListEntry {
	s.KmsKeyId = lo.ToPtr(v)

	return s
}

// GetLastAccessedDate returns LastAccessedDate, or the zero value when unset.
func (s *SecretListEntry) GetLastAccessedDate() time.Time {
	if s == nil {
		return time.Time{}
	}

	return lo.FromPtr(s.LastAccessedDate)
}

// WithLastAccessedDate sets LastAccessedDate.
func (s *SecretListEntry) WithLastAccessedDate(v time.Time) *SecretListEntry {
	s.LastAccessedDate = lo.ToPtr(v)

	return s
}

// GetLastChangedDate returns LastChangedDate, or the zero value when unset.
func (s *SecretListEntry) GetLastChangedDate() time.Time {
	if s == nil {
		return time.Time{}
	}

	return lo.FromPtr(s.LastChangedDate)
}

// WithLastChangedDate sets LastChangedDate.
func (s *SecretListEntry) WithLastChangedDate(v time.Time) *SecretListEntry {
	s.LastChangedDate = lo.ToPtr(v)

	return s
}

// GetLastRotatedDate returns LastRotatedDate, or the zero value when unset.
func (s *SecretListEntry) GetLastRotatedDate() time.Time {
	if s == nil {
		return time.Time{}
	}

	return lo.FromPtr(s.LastRotatedDate)
}

// WithLastRotatedDate sets LastRotatedDate.
func (s *SecretListEntry) WithLastRotatedDate(v time.Time) *SecretListEntry {
	s.LastRotatedDate = lo.ToPtr(v)

	return s
}

// GetName returns Name, or the zero value when unset.
func (s *SecretListEntry) GetName() string {
	if s == nil {
		return ""
	}

	return lo.FromPtr(s.Name)
}

// WithName sets Name.
func (s *SecretListEntry) WithName(v string) *SecretListEntry {
	s.Name = lo.ToPtr(v)

	return s
}

// GetOwningService returns OwningService, or the zero value when unset.
func (s *SecretListEntry) GetOwningService() string {
	if s == nil {
		return ""
	}

	return lo.FromPtr(s.OwningService)
}

// WithOwningService sets OwningService.
func (s *SecretListEntry) WithOwningService(v string) *SecretListEntry {
	s.OwningService = lo.ToPtr(v)

	return s
}

// GetRotationEnabled returns RotationEnabled, or the zero value when unset.
func (s *SecretListEntry) GetRotationEnabled() bool {
	if s == nil {
		return false
	}

	return lo.FromPtr(s.RotationEnabled)
}

// WithRotationEnabled sets RotationEnabled.
func (s *SecretListEntry) WithRotationEnabled(v bool) *SecretListEntry {
	s.RotationEnabled = lo.ToPtr(v)

	return s
}

// GetRotationLambdaARN returns RotationLambdaARN, or the zero value when unset.
func (s *SecretListEntry) GetRotationLambdaARN() string {
	if s == nil {
		return ""
	}

	return lo.FromPtr(s.RotationLambdaARN)
}

// WithRotationLambdaARN sets RotationLambdaARN.
func (s *SecretListEntry) WithRotationLambdaARN(v string) *SecretListEntry {
	s.RotationLambdaARN = lo.ToPtr(v)

	return s
}

// GetRotationRules returns RotationRules, or nil when unset.
func (s *SecretListEntry) GetRotationRules() *RotationRules {
	if s == nil {
		return nil
	}

	return s.RotationRules
}

// WithRotationRules sets RotationRules.
func (s *SecretListEntry) WithRotationRules(v *RotationRules) *SecretListEntry {
	s.RotationRules = v

	return s
}

// GetSecretVersionsToStages returns a copy of SecretVersionsToStages, or nil when unset.
func (s *SecretListEntry) GetSecretVersionsToStages() VersionStages {
	if s == nil {
		return nil
	}

	return s.SecretVersionsToStages.Clone()
}

// WithSecretVersionsToStages stores a deep copy of v. A nil v clears SecretVersionsToStages.
func (s *SecretListEntry) WithSecretVersionsToStages(v map[string][]string) *SecretListEntry {
	s.SecretVersionsToStages = VersionStages(v).Clone()

	return s
}

// AddSecretVersionsToStagesEntry records the labels of one version.
// It returns ErrDuplicateKey if versionID is already present.
func (s *SecretListEntry) AddSecretVersionsToStagesEntry(versionID string, stages []string) error {
	return s.SecretVersionsToStages.Add(versionID, stages)
}

// ClearSecretVersionsToStagesEntries unsets SecretVersionsToStages.
func (s *SecretListEntry) ClearSecretVersionsToStagesEntries() *SecretListEntry {
	s.SecretVersionsToStages = nil

	return s
}

// GetTags returns a copy of Tags, or nil when unset.
func (s *SecretListEntry) GetTags() []Tag {
	if s == nil {
		return nil
	}

	return slices.Clone(s.Tags)
}

// WithTags stores a copy of v. A nil v clears Tags.
func (s *SecretListEntry) WithTags(v []Tag) *SecretListEntry {
	s.Tags = slices.Clone(v)

	return s
}

// AppendTags appends v to Tags.
func (s *SecretListEntry) AppendTags(v ...Tag) *SecretListEntry {
	s.Tags = append(s.Tags, v...)

	return s
}

// String renders the fields that are set. Sensitive values are redacted.
func (s *SecretListEntry) String() string {
	return dto.Format(s)
}

// Equal reports whether s and other hold the same field values.
func (s *SecretListEntry) Equal(other *SecretListEntry) bool {
	return dto.Equal(s, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (s *SecretListEntry) Hash() uint64 {
	return dto.Hash(s)
}

// SecretVersionsListEntry describes one version returned by ListSecretVersionIds.
type SecretVersionsListEntry struct {
	// CreatedDate is when the version was created.
	CreatedDate *time.Time `json:"CreatedDate,omitempty"`

	// LastAccessedDate is the last date the version was read, truncated to the day.
	LastAccessedDate *time.Time `json:"LastAccessedDate,omitempty"`

	// VersionId is the unique identifier of the version.
	VersionId *string `json:"VersionId,omitempty"`

	// VersionStages are the staging labels attached to the version.
	VersionStages []string `json:"VersionStages"`
}

// GetCreatedDate returns CreatedDate, or the zero value when unset.
func (s *SecretVersionsListEntry) GetCreatedDate() time.Time {
	if s == nil {
		return time.Time{}
	}

	return lo.FromPtr(s.CreatedDate)
}

// WithCreatedDate sets CreatedDate.
func (s *SecretVersionsListEntry) WithCreatedDate(v time.Time) *SecretVersionsListEntry {
	s.CreatedDate = lo.ToPtr(v)

	return s
}

// GetLastAccessedDate returns LastAccessedDate, or the zero value when unset.
func (s *SecretVersionsListEntry) GetLastAccessedDate() time.Time {
	if s == nil {
		return time.Time{}
	}

	return lo.FromPtr(s.LastAccessedDate)
}

// WithLastAccessedDate sets LastAccessedDate.
func (s *SecretVersionsListEntry) WithLastAccessedDate(v time.Time) *SecretVersionsListEntry {
	s.LastAccessedDate = lo.ToPtr(v)

	return s
}

// GetVersionId returns VersionId, or the zero value when unset.
func (s *SecretVersionsListEntry) GetVersionId() string {
	if s == nil {
		return ""
	}

	return lo.FromPtr(s.VersionId)
}

// WithVersionId sets VersionId.
func (s *SecretVersionsListEntry) WithVersionId(v string) *SecretVersionsListEntry {
	s.VersionId = lo.ToPtr(v)

	return s
}

// GetVersionStages returns a copy of VersionStages, or nil when unset.
func (s *SecretVersionsListEntry) GetVersionStages() []string {
	if s == nil {
		return nil
	}

	return slices.Clone(s.VersionStages)
}

// WithVersionStages stores a copy of v. A nil v clears VersionStages.
func (s *SecretVersionsListEntry) WithVersionStages(v []string) *SecretVersionsListEntry {
	s.VersionStages = slices.Clone(v)

	return s
}

// AppendVersionStages appends v to VersionStages.
func (s *SecretVersionsListEntry) AppendVersionStages(v ...string) *SecretVersionsListEntry {
	s.VersionStages = append(s.VersionStages, v...)

	return s
}

// String renders the fields that are set. Sensitive values are redacted.
func (s *SecretVersionsListEntry) String() string {
	return dto.Format(s)
}

// Equal reports whether s and other hold the same field values.
func (s *SecretVersionsListEntry) Equal(other *SecretVersionsListEntry) bool {
	return dto.Equal(s, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (s *SecretVersionsListEntry) Hash() uint64 {
	return dto.Hash(s)
}

// ValidationErrorsEntry is one finding returned by ValidateResourcePolicy.
type ValidationErrorsEntry struct {
	// CheckName identifies the check that failed.
	CheckName *string `json:"CheckName,omitempty"`

	// ErrorMessage describes the failure.
	ErrorMessage *string `json:"ErrorMessage,omitempty"`
}

// GetCheckName returns CheckName, or the zero value when unset.
func (e *ValidationErrorsEntry) GetCheckName() string {
	if e == nil {
		return ""
	}

	return lo.FromPtr(e.CheckName)
}

// WithCheckName sets CheckName.
func (e *ValidationErrorsEntry) WithCheckName(v string) *ValidationErrorsEntry {
	e.CheckName = lo.ToPtr(v)

	return e
}

// GetErrorMessage returns ErrorMessage, or the zero value when unset.
func (e *ValidationErrorsEntry) GetErrorMessage() string {
	if e == nil {
		return ""
	}

	return lo.FromPtr(e.ErrorMessage)
}

// WithErrorMessage sets ErrorMessage.
func (e *ValidationErrorsEntry) WithErrorMessage(v string) *ValidationErrorsEntry {
	e.ErrorMessage = lo.ToPtr(v)

	return e
}

// String renders the fields that are set. Sensitive values are redacted.
func (e *ValidationErrorsEntry) String() string {
	return dto.Format(e)
}

// Equal reports whether e and other hold the same field values.
func (e *ValidationErrorsEntry) Equal(other *ValidationErrorsEntry) bool {
	return dto.Equal(e, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (e *ValidationErrorsEntry) Hash() uint64 {
	return dto.Hash(e)
}
