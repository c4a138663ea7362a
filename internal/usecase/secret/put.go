package secret

import (
	"context"
	"fmt"

	"github.com/mpyw/smkit/pkg/smclient"
	"github.com/mpyw/smkit/pkg/smmodel"
)

// PutClient is the interface for the put use case.
type PutClient interface {
	smclient.PutSecretValueAPI
}

// PutInput holds input for the put use case.
type PutInput struct {
	Name  string
	Value string
	// Stages attaches labels to the new version. Empty means AWSCURRENT.
	Stages []string
}

// PutOutput holds the result of the put use case.
type PutOutput struct {
	Name      string
	VersionID string
	Stages    []string
}

// PutUseCase executes put operations.
type PutUseCase struct {
	Client PutClient
}

// Execute runs the put use case.
func (u *PutUseCase) Execute(ctx context.Context, input PutInput) (*PutOutput, error) {
	req := new(smmodel.PutSecretValueRequest).
		WithSecretId(input.Name).
		WithSecretString(input.Value).
		WithVersionStages(input.Stages)

	res, err := u.Client.PutSecretValue(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to put secret value: %w", err)
	}

	return &PutOutput{
		Name:      res.GetName(),
		VersionID: res.GetVersionId(),
		Stages:    res.GetVersionStages(),
	}, nil
}
