package smmodel

import (
	"slices"

	validation "github.com/jellydator/validation"
	"github.com/samber/lo"

	"github.com/mpyw/smkit/internal/dto"
)

// ListSecretsRequest lists the secrets in the account, one page at a time.
type ListSecretsRequest struct {
	// Filters narrow the results. All filters must match.
	Filters []Filter `json:"Filters"`

	// MaxResults caps the page size (1 to 100).
	MaxResults *int32 `json:"MaxResults,omitempty"`

	// NextToken continues from a previous page.
	NextToken *string `json:"NextToken,omitempty"`

	// SortOrder orders the results by creation date.
	SortOrder SortOrderType `json:"SortOrder,omitempty"`
}

// GetFilters returns a copy of Filters, or nil when unset.
func (l *ListSecretsRequest) GetFilters() []Filter {
	if l == nil {
		return nil
	}

	return slices.Clone(l.Filters)
}

// WithFilters stores a copy of v. A nil v clears Filters.
func (l *ListSecretsRequest) WithFilters(v []Filter) *ListSecretsRequest {
	l.Filters = slices.Clone(v)

	return l
}

// AppendFilters appends v to Filters.
func (l *ListSecretsRequest) AppendFilters(v ...Filter) *ListSecretsRequest {
	l.Filters = append(l.Filters, v...)

	return l
}

// GetMaxResults returns MaxResults, or the zero value when unset.
func (l *ListSecretsRequest) GetMaxResults() int32 {
	if l == nil {
		return 0
	}

	return lo.FromPtr(l.MaxResults)
}

// WithMaxResults sets MaxResults.
func (l *ListSecretsRequest) WithMaxResults(v int32) *ListSecretsRequest {
	l.MaxResults = lo.ToPtr(v)

	return l
}

// GetNextToken returns NextToken, or the zero value when unset.
func (l *ListSecretsRequest) GetNextToken() string {
	if l == nil {
		return ""
	}

	return lo.FromPtr(l.NextToken)
}

// WithNextToken sets NextToken.
func (l *ListSecretsRequest) WithNextToken(v string) *ListSecretsRequest {
	l.NextToken = lo.ToPtr(v)

	return l
}

// GetSortOrder returns SortOrder, or "" when unset.
func (l *ListSecretsRequest) GetSortOrder() SortOrderType {
	if l == nil {
		return ""
	}

	return l.SortOrder
}

// WithSortOrder sets SortOrder.
func (l *ListSecretsRequest) WithSortOrder(v SortOrderType) *ListSecretsRequest {
	l.SortOrder = v

	return l
}

// WithSortOrderString sets SortOrder from its raw string form.
func (l *ListSecretsRequest) WithSortOrderString(v string) *ListSecretsRequest {
	return l.WithSortOrder(SortOrderType(v))
}

// Validate checks required fields and length limits.
// Errors wrap ErrInvalidArgument.
func (l *ListSecretsRequest) Validate() error {
	return wrapValidationError(validation.ValidateStruct(l,
		validation.Field(&l.Filters),
		validation.Field(&l.MaxResults, maxResultsRules...),
		validation.Field(&l.NextToken, nextTokenRules...),
	))
}

// String renders the fields that are set. Sensitive values are redacted.
func (l *ListSecretsRequest) String() string {
	return dto.Format(l)
}

// Equal reports whether l and other hold the same field values.
func (l *ListSecretsRequest) Equal(other *ListSecretsRequest) bool {
	return dto.Equal(l, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (l *ListSecretsRequest) Hash() uint64 {
	return dto.Hash(l)
}

// ListSecretsResult is one page of ListSecrets.
type ListSecretsResult struct {
	// NextToken is set when more pages are available.
	NextToken *string `json:"NextToken,omitempty"`

	// SecretList are the secrets on this page.
	SecretList []SecretListEntry `json:"SecretList"`
}

// GetNextToken returns NextToken, or the zero value when unset.
func (l *ListSecretsResult) GetNextToken() string {
	if l == nil {
		return ""
	}

	return lo.FromPtr(l.NextToken)
}

// WithNextToken sets NextToken.
func (l *ListSecretsResult) WithNextToken(v string) *ListSecretsResult {
	l.NextToken = lo.ToPtr(v)

	return l
}

// GetSecretList returns a copy of SecretList, or nil when unset.
func (l *ListSecretsResult) GetSecretList() []SecretListEntry {
	if l == nil {
		return nil
	}

	return slices.Clone(l.SecretList)
}

// WithSecretList stores a copy of v. A nil v clears SecretList.
func (l *ListSecretsResult) WithSecretList(v []SecretListEntry) *ListSecretsResult {
	l.SecretList = slices.Clone(v)

	return l
}

// AppendSecretList appends v to SecretList.
func (l *ListSecretsResult) AppendSecretList(v ...SecretListEntry) *ListSecretsResult {
	l.SecretList = append(l.SecretList, v...)

	return l
}

// String renders the fields that are set. Sensitive values are redacted.
func (l *ListSecretsResult) String() string {
	return dto.Format(l)
}

// Equal reports whether l and other hold the same field values.
func (l *ListSecretsResult) Equal(other *ListSecretsResult) bool {
	return dto.Equal(l, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (l *ListSecretsResult) Hash() uint64 {
	return dto.Hash(l)
}
