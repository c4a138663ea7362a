package smmodel

import (
	"time"

	validation "github.com/jellydator/validation"
	"github.com/samber/lo"

	"github.com/mpyw/smkit/internal/dto"
)

// DeleteSecretRequest schedules a secret for deletion, or deletes it immediately.
type DeleteSecretRequest struct {
	// ForceDeleteWithoutRecovery skips the recovery window. Cannot be combined with RecoveryWindowInDays.
	ForceDeleteWithoutRecovery *bool `json:"ForceDeleteWithoutRecovery,omitempty"`

	// RecoveryWindowInDays is the number of days (7 to 30) before the deletion becomes permanent.
	RecoveryWindowInDays *int64 `json:"RecoveryWindowInDays,omitempty"`

	// SecretId is the name or ARN of the secret.
	SecretId *string `json:"SecretId,omitempty"`
}

// GetForceDeleteWithoutRecovery returns ForceDeleteWithoutRecovery, or the zero value when unset.
func (d *DeleteSecretRequest) GetForceDeleteWithoutRecovery() bool {
	if d == nil {
		return false
	}

	return lo.FromPtr(d.ForceDeleteWithoutRecovery)
}

// WithForceDeleteWithoutRecovery sets ForceDeleteWithoutRecovery.
func (d *DeleteSecretRequest) WithForceDeleteWithoutRecovery(v bool) *DeleteSecretRequest {
	d.ForceDeleteWithoutRecovery = lo.ToPtr(v)

	return d
}

// GetRecoveryWindowInDays returns RecoveryWindowInDays, or the zero value when unset.
func (d *DeleteSecretRequest) GetRecoveryWindowInDays() int64 {
	if d == nil {
		return 0
	}

	return lo.FromPtr(d.RecoveryWindowInDays)
}

// WithRecoveryWindowInDays sets RecoveryWindowInDays.
func (d *DeleteSecretRequest) WithRecoveryWindowInDays(v int64) *DeleteSecretRequest {
	d.RecoveryWindowInDays = lo.ToPtr(v)

	return d
}

// GetSecretId returns SecretId, or the zero value when unset.
func (d *DeleteSecretRequest) GetSecretId() string {
	if d == nil {
		return ""
	}

	return lo.FromPtr(d.SecretId)
}

// WithSecretId sets SecretId.
func (d *DeleteSecretRequest) WithSecretId(v string) *DeleteSecretRequest {
	d.SecretId = lo.ToPtr(v)

	return d
}

// Validate checks required fields and length limits.
// Errors wrap ErrInvalidArgument.
func (d *DeleteSecretRequest) Validate() error {
	return wrapValidationError(validation.ValidateStruct(d,
		validation.Field(&d.RecoveryWindowInDays, validation.Min(MinRecoveryWindowInDays), validation.Max(MaxRecoveryWindowInDays)),
		validation.Field(&d.SecretId, secretIDRules...),
	))
}

// String renders the fields that are set. Sensitive values are redacted.
func (d *DeleteSecretRequest) String() string {
	return dto.Format(d)
}

// Equal reports whether d and other hold the same field values.
func (d *DeleteSecretRequest) Equal(other *DeleteSecretRequest) bool {
	return dto.Equal(d, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (d *DeleteSecretRequest) Hash() uint64 {
	return dto.Hash(d)
}

// DeleteSecretResult is returned by DeleteSecret.
type DeleteSecretResult struct {
	// ARN is the Amazon Resource Name of the secret.
	ARN *string `json:"ARN,omitempty"`

	// DeletionDate is when the secret will be permanently deleted.
	DeletionDate *time.Time `json:"DeletionDate,omitempty"`

	// Name is the friendly name of the secret.
	Name *string `json:"Name,omitempty"`
}

// GetARN returns ARN, or the zero value when unset.
func (d *DeleteSecretResult) GetARN() string {
	if d == nil {
		return ""
	}

	return lo.FromPtr(d.ARN)
}

// WithARN sets ARN.
func (d *DeleteSecretResult) WithARN(v string) *DeleteSecretResult {
	d.ARN = lo.ToPtr(v)

	return d
}

// GetDeletionDate returns DeletionDate, or the zero value when unset.
func (d *DeleteSecretResult) GetDeletionDate() time.Time {
	if d == nil {
		return time.Time{}
	}

	return lo.FromPtr(d.DeletionDate)
}

// WithDeletionDate sets DeletionDate.
func (d *DeleteSecretResult) WithDeletionDate(v time.Time) *DeleteSecretResult {
	d.DeletionDate = lo.ToPtr(v)

	return d
}

// GetName returns Name, or the zero value when unset.
func (d *DeleteSecretResult) GetName() string {
	if d == nil {
		return ""
	}

	return lo.FromPtr(d.Name)
}

// WithName sets Name.
func (d *DeleteSecretResult) WithName(v string) *DeleteSecretResult {
	d.Name = lo.ToPtr(v)

	return d
}

// String renders the fields that are set. Sensitive values are redacted.
func (d *DeleteSecretResult) String() string {
	return dto.Format(d)
}

// Equal reports whether d and other hold the same field values.
func (d *DeleteSecretResult) Equal(other *DeleteSecretResult) bool {
	return dto.Equal(d, other)
}

// Hash returns a digest of the field values, consistent with Equal.
func (d *DeleteSecretResult) Hash() uint64 {
	return dto.Hash(d)
}
