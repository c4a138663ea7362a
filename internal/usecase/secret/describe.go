package secret

import (
	"context"
	"fmt"

	"github.com/mpyw/smkit/pkg/smclient"
	"github.com/mpyw/smkit/pkg/smmodel"
)

// DescribeClient is the interface for the describe use case.
type DescribeClient interface {
	smclient.DescribeSecretAPI
}

// DescribeInput holds input for the describe use case.
type DescribeInput struct {
	Name string
}

// DescribeVersion is one version and its staging labels.
type DescribeVersion struct {
	VersionID string
	Stages    []string
}

// DescribeOutput holds the result of the describe use case.
type DescribeOutput struct {
	Secret *smmodel.DescribeSecretResult
	// Versions is sorted by version ID.
	Versions []DescribeVersion
	// Conflicts lists labels attached to more than one version.
	Conflicts map[string][]string
}

// DescribeUseCase executes describe operations.
type DescribeUseCase struct {
	Client DescribeClient
}

// Execute runs the describe use case.
func (u *DescribeUseCase) Execute(ctx context.Context, input DescribeInput) (*DescribeOutput, error) {
	res, err := u.Client.DescribeSecret(ctx, new(smmodel.DescribeSecretRequest).WithSecretId(input.Name))
	if err != nil {
		return nil, fmt.Errorf("failed to describe secret: %w", err)
	}

	stages := res.GetVersionIdsToStages()

	output := &DescribeOutput{
		Secret:    res,
		Conflicts: stages.Duplicates(),
	}

	for _, id := range stages.VersionIDs() {
		output.Versions = append(output.Versions, DescribeVersion{
			VersionID: id,
			Stages:    stages[id],
		})
	}

	return output, nil
}
