package secret

import (
	"context"

	"github.com/mpyw/smkit/internal/secretref"
)

// DiffClient is the interface for the diff use case.
type DiffClient interface {
	secretref.Client
}

// DiffInput holds input for the diff use case.
type DiffInput struct {
	Ref1 *secretref.Ref
	Ref2 *secretref.Ref
}

// DiffOutput holds the result of the diff use case.
type DiffOutput struct {
	OldName      string
	OldVersionID string
	OldValue     string
	NewName      string
	NewVersionID string
	NewValue     string
}

// DiffUseCase executes diff operations.
type DiffUseCase struct {
	Client DiffClient
}

// Execute runs the diff use case.
func (u *DiffUseCase) Execute(ctx context.Context, input DiffInput) (*DiffOutput, error) {
	oldRes, err := secretref.Resolve(ctx, u.Client, input.Ref1)
	if err != nil {
		return nil, err
	}

	newRes, err := secretref.Resolve(ctx, u.Client, input.Ref2)
	if err != nil {
		return nil, err
	}

	return &DiffOutput{
		OldName:      oldRes.GetName(),
		OldVersionID: oldRes.GetVersionId(),
		OldValue:     oldRes.Payload(),
		NewName:      newRes.GetName(),
		NewVersionID: newRes.GetVersionId(),
		NewValue:     newRes.Payload(),
	}, nil
}
