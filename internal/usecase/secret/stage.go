package secret

import (
	"context"
	"fmt"

	"github.com/mpyw/smkit/internal/secretref"
	"github.com/mpyw/smkit/pkg/smclient"
	"github.com/mpyw/smkit/pkg/smmodel"
)

// StageClient is the interface for the stage use case.
type StageClient interface {
	smclient.ListSecretVersionIdsAPI
	smclient.DescribeSecretAPI
	smclient.UpdateSecretVersionStageAPI
}

// StageInput holds input for the stage use case.
type StageInput struct {
	// Ref selects the version the label is moved to, or removed from.
	Ref   *secretref.Ref
	Label string
	// Remove detaches Label from the version instead of attaching it.
	Remove bool
}

// StageOutput holds the result of the stage use case.
type StageOutput struct {
	Name  string
	Label string
	// FromVersionID is the version that held the label before, if any.
	FromVersionID string
	// ToVersionID is the version that holds the label now. Empty after a removal.
	ToVersionID string
	// Unchanged is set when the label was already where it was asked to be.
	Unchanged bool
}

// StageUseCase executes stage operations.
type StageUseCase struct {
	Client StageClient
}

// Execute runs the stage use case.
func (u *StageUseCase) Execute(ctx context.Context, input StageInput) (*StageOutput, error) {
	versionID, err := secretref.ResolveVersionID(ctx, u.Client, input.Ref)
	if err != nil {
		return nil, err
	}

	desc, err := u.Client.DescribeSecret(ctx, new(smmodel.DescribeSecretRequest).WithSecretId(input.Ref.Name))
	if err != nil {
		return nil, fmt.Errorf("failed to describe secret: %w", err)
	}

	holder, held := desc.GetVersionIdsToStages().VersionFor(input.Label)

	output := &StageOutput{
		Name:          desc.GetName(),
		Label:         input.Label,
		FromVersionID: holder,
	}

	req := new(smmodel.UpdateSecretVersionStageRequest).
		WithSecretId(input.Ref.Name).
		WithVersionStage(input.Label)

	if input.Remove {
		if !held || holder != versionID {
			output.Unchanged = true

			return output, nil
		}

		req.WithRemoveFromVersionId(versionID)
	} else {
		output.ToVersionID = versionID

		if held && holder == versionID {
			output.Unchanged = true

			return output, nil
		}

		req.WithMoveToVersionId(versionID)
		if held {
			req.WithRemoveFromVersionId(holder)
		}
	}

	if _, err := u.Client.UpdateSecretVersionStage(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to update staging label: %w", err)
	}

	return output, nil
}
