package secret

import (
	"context"
	"errors"
	"fmt"

	"github.com/mpyw/smkit/pkg/smclient"
	"github.com/mpyw/smkit/pkg/smmodel"
)

// ErrNothingToUpdate is returned when UpdateInput changes nothing.
var ErrNothingToUpdate = errors.New("nothing to update: specify a value, description or KMS key")

// UpdateClient is the interface for the update use case.
type UpdateClient interface {
	smclient.GetSecretValueAPI
	smclient.UpdateSecretAPI
}

// UpdateInput holds input for the update use case. Nil fields are left unchanged.
type UpdateInput struct {
	Name        string
	Value       *string
	Description *string
	KmsKeyID    *string
}

// UpdateOutput holds the result of the update use case.
type UpdateOutput struct {
	Name string
	// VersionID is empty when only metadata changed.
	VersionID string
	ARN       string
}

// UpdateUseCase executes update operations.
type UpdateUseCase struct {
	Client UpdateClient
}

// GetCurrentValue fetches the AWSCURRENT value.
func (u *UpdateUseCase) GetCurrentValue(ctx context.Context, name string) (string, error) {
	res, err := u.Client.GetSecretValue(ctx, new(smmodel.GetSecretValueRequest).WithSecretId(name))
	if err != nil {
		return "", fmt.Errorf("failed to get current value: %w", err)
	}

	return res.Payload(), nil
}

// Execute runs the update use case.
func (u *UpdateUseCase) Execute(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Value == nil && input.Description == nil && input.KmsKeyID == nil {
		return nil, ErrNothingToUpdate
	}

	req := &smmodel.UpdateSecretRequest{
		SecretId:     &input.Name,
		SecretString: input.Value,
		Description:  input.Description,
		KmsKeyId:     input.KmsKeyID,
	}

	res, err := u.Client.UpdateSecret(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update secret: %w", err)
	}

	return &UpdateOutput{
		Name:      res.GetName(),
		VersionID: res.GetVersionId(),
		ARN:       res.GetARN(),
	}, nil
}
