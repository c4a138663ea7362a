package secret

import (
	"context"
	"fmt"

	"github.com/mpyw/smkit/pkg/smclient"
	"github.com/mpyw/smkit/pkg/smmodel"
)

// RestoreClient is the interface for the restore use case.
type RestoreClient interface {
	smclient.RestoreSecretAPI
}

// RestoreInput holds input for the restore use case.
type RestoreInput struct {
	Name string
}

// RestoreOutput holds the result of the restore use case.
type RestoreOutput struct {
	Name string
	ARN  string
}

// RestoreUseCase executes restore operations.
type RestoreUseCase struct {
	Client RestoreClient
}

// Execute runs the restore use case.
func (u *RestoreUseCase) Execute(ctx context.Context, input RestoreInput) (*RestoreOutput, error) {
	res, err := u.Client.RestoreSecret(ctx, new(smmodel.RestoreSecretRequest).WithSecretId(input.Name))
	if err != nil {
		return nil, fmt.Errorf("failed to restore secret: %w", err)
	}

	return &RestoreOutput{
		Name: res.GetName(),
		ARN:  res.GetARN(),
	}, nil
}
