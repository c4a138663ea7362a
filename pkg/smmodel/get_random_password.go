package smmodel

import (
	validation "github.com/jellydator/validation"
	"github.com/samber/lo"

	"github.com/mpyw/smkit/internal/dto"
)

// GetRandomPasswordRequest asks the service to generate a random password.
// The service applies every option; none of them are evaluated locally.
type GetRandomPasswordRequest struct {
	// ExcludeCharacters lists characters that must not appear.
	ExcludeCharacters *string `json:"ExcludeCharacters,omitempty"`

	// ExcludeLowercase drops lowercase letters.
	ExcludeLowercase *bool `json:"ExcludeLowercase,omitempty"`

	// ExcludeNumbers drops digits.
	ExcludeNumbers *bool `json:"ExcludeNumbers,omitempty"`

	// ExcludePunctuation drops punctuation characters.
	ExcludePunctuation *bool `json:"ExcludePunctuation,omitempty"`

	// ExcludeUppercase drops uppercase letters.
	ExcludeUppercase *bool `json:"ExcludeUppercase,omitempty"`

	// IncludeSpace allows the space character.
	IncludeSpace *bool `json:"IncludeSpace,omitempty"`

	// PasswordLength is the number of characters. The service defaults to 32.
	PasswordLength *int64 `json:"PasswordLength,omitempty"`

	// RequireEachIncludedType asks for at least one character of every included type.
	RequireEachIncludedType *bool `json:"RequireEachIncludedType,omitempty"`
}

// GetExcludeCharacters returns ExcludeCharacters, or the zero value when unset.
func (g *GetRandomPasswordRequest) GetExcludeCharacters() string {
	if g == nil {
		return ""
	}

	return lo.FromPtr(g.ExcludeCharacters)
}

// WithExcludeCharacters sets ExcludeCharacters.
func (g *GetRandomPasswordRequest) WithExcludeCharacters(v string) *GetRandomPasswordRequest {
	g.ExcludeCharacters = lo.ToPtr(v)

	return g
}

// GetExcludeLowercase returns ExcludeLowercase, or the zero value when unset.
func (g *GetRandomPasswordRequest) GetExcludeLowercase() bool {
	if g == nil {
		return false
	}

	return lo.FromPtr(g.ExcludeLowercase)
}

// WithExcludeLowercase sets ExcludeLowercase.
func (g *GetRandomPasswordRequest) WithExcludeLowercase(v bool) *GetRandomPasswordRequest {
	g.ExcludeLowercase = lo.ToPtr(v)

	return g
}

// GetExcludeNumbers returns ExcludeNumbers, or the zero value when unset.
func (g *GetRandomPasswordRequest) GetExcludeNumbers() bool {
	if g == nil {
		return false
	}

	return lo.FromPtr(g.ExcludeNumbers)
}

// WithExcludeNumbers sets ExcludeNumbers.
func (g *GetRandomPasswordRequest) WithExcludeNumbers(v bool) *GetRandomPasswordRequest {
	g.ExcludeNumbers = lo.ToPtr(v)

	return g
}

// GetExcludePunctuation returns ExcludePunctuation, or the zero value when unset.
func (g *GetRandomPasswordRequest) GetExcludePunctuation() bool {
	if g == nil {
		return false
	}

	return lo.FromPtr(g.ExcludePunctuation)
}

// WithExcludePunctuation sets ExcludePunctuation.
func (g *GetRandomPasswordRequest) WithExcludePunctuation(v bool) *GetRandomPasswordRequest {
	g.ExcludePunctuation = lo.ToPtr(v)

	return g
}

// GetExcludeUppercase returns ExcludeUppercase, or the zero value when unset.
func (g *GetRandomPasswordRequest) GetExcludeUppercase() bool {
	if g == nil {
		return false
	}

	return lo.FromPtr(g.ExcludeUppercase)
}

// WithExcludeUppercase sets ExcludeUppercase.
func (g *GetRandomPasswordRequest) WithExcludeUppercase(v bool) *GetRandomPasswordRequest {
	g.ExcludeUppercase = lo.ToPtr(v)

	return g
}

// GetIncludeSpace returns IncludeSpace, or the zero value when unset.
func (g *GetRandomPasswordRequest) GetIncludeSpace() bool {
	if g == nil {
		return false
	}

	return lo.FromPtr(g.IncludeSpace)
}

// WithIncludeSpace sets IncludeSpace.
func (g *GetRandomPasswordRequest) WithIncludeSpace(v bool) *GetRandomPasswordRequest {
	g.IncludeSpace = lo.ToPtr(v)

	return g
}

// GetPasswordLength returns PasswordLength, or the zero value when unset.
func (g *GetRandomPasswordRequest) GetPasswordLength() int64 {
	if g == nil {
		return 0
	}

	return lo.FromPtr(g.PasswordLength)
}

// WithPasswordLength sets PasswordLength.
func (g *GetRandomPasswordRequest) WithPasswordLength(v int64) *GetRandomPasswordRequest {
	g.PasswordLength = lo.ToPtr(v)

	return g
}

// GetRequireEachIncludedType returns RequireEachIncludedType, or the zero value when unset.
func (g *GetRandomPasswordRequest) GetRequireEachIncludedType() bool {
	if g == nil {
		return false
	}

	return lo.FromPtr(g.RequireEachIncludedType)
}

// WithRequireEachIncludedType sets RequireEachIncludedType.
func (g *GetRandomPasswordRequest) WithRequireEachIncludedType(v bool) *GetRandomPasswordRequest {
	g.RequireEachIncludedType = lo.ToPtr(v)

	return g
}

// Validate checks required fields and length limits.
// Errors wrap ErrInvalidArgument.
func (g *GetRandomPasswordRequest) Validate() error {
	return wrapValidationError(validation.ValidateStruct(g,
		validation.Field(&g.ExcludeCharacters, validation.Length(0, MaxExcludeCharactersLength)),
		validation.Field(&g.PasswordLength, validation.Min(int64(1)), validation.Max(int64(MaxPasswordLength))),
	))
}

// String renders the fields that are set. Sensitive values are redacted.
func (g *GetRandomPasswordRequest) String() string {
	return dto.Format(g)
}

// Equal reports whether g and other hold the same field values.
func (g *GetRandomPasswordRequest) Equal(other *GetRandomPasswordRequest) bool {
	return dto.Equal(g, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (g *GetRandomPasswordRequest) Hash() uint64 {
	return dto.Hash(g)
}

// GetRandomPasswordResult is returned by GetRandomPassword.
type GetRandomPasswordResult struct {
	// RandomPassword is the generated password.
	RandomPassword *string `json:"RandomPassword,omitempty" sensitive:"true"`
}

// GetRandomPassword returns RandomPassword, or the zero value when unset.
func (g *GetRandomPasswordResult) GetRandomPassword() string {
	if g == nil {
		return ""
	}

	return lo.FromPtr(g.RandomPassword)
}

// WithRandomPassword sets RandomPassword.
func (g *GetRandomPasswordResult) WithRandomPassword(v string) *GetRandomPasswordResult {
	g.RandomPassword = lo.ToPtr(v)

	return g
}

// String renders the fields that are set. Sensitive values are redacted.
func (g *GetRandomPasswordResult) String() string {
	return dto.Format(g)
}

// Equal reports whether g and other hold the same field values.
func (g *GetRandomPasswordResult) Equal(other *GetRandomPasswordResult) bool {
	return dto.Equal(g, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (g *GetRandomPasswordResult) Hash() uint64 {
	return dto.Hash(g)
}
