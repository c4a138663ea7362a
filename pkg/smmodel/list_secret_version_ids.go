package smmodel

import (
	"slices"

	validation "github.com/jellydator/validation"
	"github.com/samber/lo"

	"github.com/mpyw/smkit/internal/dto"
)

// ListSecretVersionIdsRequest lists the versions of a secret, one page at a time.
type ListSecretVersionIdsRequest struct {
	// IncludeDeprecated also returns versions without any staging label.
	IncludeDeprecated *bool `json:"IncludeDeprecated,omitempty"`

	// MaxResults caps the page size (1 to 100).
	MaxResults *int32 `json:"MaxResults,omitempty"`

	// NextToken continues from a previous page.
	NextToken *string `json:"NextToken,omitempty"`

	// SecretId is the name or ARN of the secret.
	SecretId *string `json:"SecretId,omitempty"`
}

// GetIncludeDeprecated returns IncludeDeprecated, or the zero value when unset.
func (l *ListSecretVersionIdsRequest) GetIncludeDeprecated() bool {
	if l == nil {
		return false
	}

	return lo.FromPtr(l.IncludeDeprecated)
}

// WithIncludeDeprecated sets IncludeDeprecated.
func (l *ListSecretVersionIdsRequest) WithIncludeDeprecated(v bool) *ListSecretVersionIdsRequest {
	l.IncludeDeprecated = lo.ToPtr(v)

	return l
}

// GetMaxResults returns MaxResults, or the zero value when unset.
func (l *ListSecretVersionIdsRequest) GetMaxResults() int32 {
	if l == nil {
		return 0
	}

	return lo.FromPtr(l.MaxResults)
}

// WithMaxResults sets MaxResults.
func (l *ListSecretVersionIdsRequest) WithMaxResults(v int32) *ListSecretVersionIdsRequest {
	l.MaxResults = lo.ToPtr(v)

	return l
}

// GetNextToken returns NextToken, or the zero value when unset.
func (l *ListSecretVersionIdsRequest) GetNextToken() string {
	if l == nil {
		return ""
	}

	return lo.FromPtr(l.NextToken)
}

// WithNextToken sets NextToken.
func (l *ListSecretVersionIdsRequest) WithNextToken(v string) *ListSecretVersionIdsRequest {
	l.NextToken = lo.ToPtr(v)

	return l
}

// GetSecretId returns SecretId, or the zero value when unset.
func (l *ListSecretVersionIdsRequest) GetSecretId() string {
	if l == nil {
		return ""
	}

	return lo.FromPtr(l.SecretId)
}

// WithSecretId sets SecretId.
func (l *ListSecretVersionIdsRequest) WithSecretId(v string) *ListSecretVersionIdsRequest {
	l.SecretId = lo.ToPtr(v)

	return l
}

// Validate checks required fields and length limits.
// Errors wrap ErrInvalidArgument.
func (l *ListSecretVersionIdsRequest) Validate() error {
	return wrapValidationError(validation.ValidateStruct(l,
		validation.Field(&l.MaxResults, maxResultsRules...),
		validation.Field(&l.NextToken, nextTokenRules...),
		validation.Field(&l.SecretId, secretIDRules...),
	))
}

// String renders the fields that are set. Sensitive values are redacted.
func (l *ListSecretVersionIdsRequest) String() string {
	return dto.Format(l)
}

// Equal reports whether l and other hold the same field values.
func (l *ListSecretVersionIdsRequest) Equal(other *ListSecretVersionIdsRequest) bool {
	return dto.Equal(l, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (l *ListSecretVersionIdsRequest) Hash() uint64 {
	return dto.Hash(l)
}

// ListSecretVersionIdsResult is one page of ListSecretVersionIds.
type ListSecretVersionIdsResult struct {
	// ARN is the Amazon Resource Name of the secret.
	ARN *string `json:"ARN,omitempty"`

	// Name is the friendly name of the secret.
	Name *string `json:"Name,omitempty"`

	// NextToken is set when more pages are available.
	NextToken *string `json:"NextToken,omitempty"`

	// Versions are the versions on this page.
	Versions []SecretVersionsListEntry `json:"Versions"`
}

// GetARN returns ARN, or the zero value when unset.
func (l *ListSecretVersionIdsResult) GetARN() string {
	if l == nil {
		return ""
	}

	return lo.FromPtr(l.ARN)
}

// WithARN sets ARN.
func (l *ListSecretVersionIdsResult) WithARN(v string) *ListSecretVersionIdsResult {
	l.ARN = lo.ToPtr(v)

	return l
}

// GetName returns Name, or the zero value when unset.
func (l *ListSecretVersionIdsResult) GetName() string {
	if l == nil {
		return ""
	}

	return lo.FromPtr(l.Name)
}

// WithName sets Name.
func (l *ListSecretVersionIdsResult) WithName(v string) *ListSecretVersionIdsResult {
	l.Name = lo.ToPtr(v)

	return l
}

// GetNextToken returns NextToken, or the zero value when unset.
func (l *ListSecretVersionIdsResult) GetNextToken() string {
	if l == nil {
		return ""
	}

	return lo.FromPtr(l.NextToken)
}

// WithNextToken sets NextToken.
func (l *ListSecretVersionIdsResult) WithNextToken(v string) *ListSecretVersionIdsResult {
	l.NextToken = lo.ToPtr(v)

	return l
}

// GetVersions returns a copy of Versions, or nil when unset.
func (l *ListSecretVersionIdsResult) GetVersions() []SecretVersionsListEntry {
	if l == nil {
		return nil
	}

	return slices.Clone(l.Versions)
}

// WithVersions stores a copy of v. A nil v clears Versions.
func (l *ListSecretVersionIdsResult) WithVersions(v []SecretVersionsListEntry) *ListSecretVersionIdsResult {
	l.Versions = slices.Clone(v)

	return l
}

// AppendVersions appends v to Versions.
func (l *ListSecretVersionIdsResult) AppendVersions(v ...SecretVersionsListEntry) *ListSecretVersionIdsResult {
	l.Versions = append(l.Versions, v...)

	return l
}

// String renders the fields that are set. Sensitive values are redacted.
func (l *ListSecretVersionIdsResult) String() string {
	return dto.Format(l)
}

// Equal reports whether l and other hold the same field values.
func (l *ListSecretVersionIdsResult) Equal(other *ListSecretVersionIdsResult) bool {
	return dto.Equal(l, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (l *ListSecretVersionIdsResult) Hash() uint64 {
	return dto.Hash(l)
}
