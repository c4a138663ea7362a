package secret

import (
	"context"
	"fmt"

	"github.com/mpyw/smkit/pkg/smclient"
	"github.com/mpyw/smkit/pkg/smmodel"
)

// RotateClient is the interface for the rotate and cancel-rotation use cases.
type RotateClient interface {
	smclient.RotateSecretAPI
	smclient.CancelRotateSecretAPI
}

// RotateInput holds input for the rotate use case.
type RotateInput struct {
	Name string
	// LambdaARN sets the rotation function. Empty keeps the configured one.
	LambdaARN string
	// AfterDays schedules automatic rotation. Zero keeps the configured schedule.
	AfterDays int64
}

// RotateOutput holds the result of the rotate and cancel-rotation use cases.
type RotateOutput struct {
	Name string
	ARN  string
	// VersionID is the version the rotation creates, or for a cancellation
	// the version left with AWSPENDING.
	VersionID string
}

// RotateUseCase executes rotate and cancel-rotation operations.
type RotateUseCase struct {
	Client RotateClient
}

// Execute starts a rotation.
func (u *RotateUseCase) Execute(ctx context.Context, input RotateInput) (*RotateOutput, error) {
	req := new(smmodel.RotateSecretRequest).WithSecretId(input.Name)

	if input.LambdaARN != "" {
		req.WithRotationLambdaARN(input.LambdaARN)
	}

	if input.AfterDays > 0 {
		req.WithRotationRules(new(smmodel.RotationRules).WithAutomaticallyAfterDays(input.AfterDays))
	}

	res, err := u.Client.RotateSecret(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to rotate secret: %w", err)
	}

	return &RotateOutput{
		Name:      res.GetName(),
		ARN:       res.GetARN(),
		VersionID: res.GetVersionId(),
	}, nil
}

// Cancel turns off automatic rotation.
func (u *RotateUseCase) Cancel(ctx context.Context, name string) (*RotateOutput, error) {
	res, err := u.Client.CancelRotateSecret(ctx, new(smmodel.CancelRotateSecretRequest).WithSecretId(name))
	if err != nil {
		return nil, fmt.Errorf("failed to cancel rotation: %w", err)
	}

	return &RotateOutput{
		Name:      res.GetName(),
		ARN:       res.GetARN(),
		VersionID: res.GetVersionId(),
	}, nil
}
