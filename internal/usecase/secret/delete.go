package secret

import (
	"context"
	"fmt"
	"time"

	"github.com/mpyw/smkit/pkg/smclient"
	"github.com/mpyw/smkit/pkg/smmodel"
)

// DeleteClient is the interface for the delete use case.
type DeleteClient interface {
	smclient.DeleteSecretAPI
	smclient.GetSecretValueAPI
}

// DeleteInput holds input for the delete use case.
type DeleteInput struct {
	Name string
	// Force deletes immediately without a recovery window.
	Force bool
	// RecoveryWindow is the number of days before deletion. Zero uses the service default.
	RecoveryWindow int64
}

// DeleteOutput holds the result of the delete use case.
type DeleteOutput struct {
	Name         string
	ARN          string
	DeletionDate time.Time
}

// DeleteUseCase executes delete operations.
type DeleteUseCase struct {
	Client DeleteClient
}

// GetCurrentValue fetches the AWSCURRENT value for a preview.
// A missing secret yields "" without error.
func (u *DeleteUseCase) GetCurrentValue(ctx context.Context, name string) (string, error) {
	res, err := u.Client.GetSecretValue(ctx, new(smmodel.GetSecretValueRequest).WithSecretId(name))
	if err != nil {
		if smclient.IsNotFound(err) {
			return "", nil
		}

		return "", err
	}

	return res.Payload(), nil
}

// Execute runs the delete use case.
func (u *DeleteUseCase) Execute(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	req := new(smmodel.DeleteSecretRequest).WithSecretId(input.Name)

	switch {
	case input.Force:
		req.WithForceDeleteWithoutRecovery(true)
	case input.RecoveryWindow > 0:
		req.WithRecoveryWindowInDays(input.RecoveryWindow)
	}

	res, err := u.Client.DeleteSecret(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to delete secret: %w", err)
	}

	return &DeleteOutput{
		Name:         res.GetName(),
		ARN:          res.GetARN(),
		DeletionDate: res.GetDeletionDate(),
	}, nil
}
