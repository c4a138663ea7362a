package secret

import (
	"context"
	"fmt"

	"github.com/mpyw/smkit/internal/maputil"
	"github.com/mpyw/smkit/pkg/smclient"
	"github.com/mpyw/smkit/pkg/smmodel"
)

// CreateClient is the interface for the create use case.
type CreateClient interface {
	smclient.CreateSecretAPI
}

// CreateInput holds input for the create use case.
type CreateInput struct {
	Name        string
	Value       string
	Description string
	KmsKeyID    string
	Tags        map[string]string
}

// CreateOutput holds the result of the create use case.
type CreateOutput struct {
	Name      string
	VersionID string
	ARN       string
}

// CreateUseCase executes create operations.
type CreateUseCase struct {
	Client CreateClient
}

// Execute runs the create use case.
func (u *CreateUseCase) Execute(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	req := new(smmodel.CreateSecretRequest).
		WithName(input.Name).
		WithSecretString(input.Value).
		WithTags(toTags(input.Tags))

	if input.Description != "" {
		req.WithDescription(input.Description)
	}

	if input.KmsKeyID != "" {
		req.WithKmsKeyId(input.KmsKeyID)
	}

	res, err := u.Client.CreateSecret(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create secret: %w", err)
	}

	return &CreateOutput{
		Name:      res.GetName(),
		VersionID: res.GetVersionId(),
		ARN:       res.GetARN(),
	}, nil
}

// toTags converts a tag map to tags sorted by key. An empty map yields nil.
func toTags(m map[string]string) []smmodel.Tag {
	var tags []smmodel.Tag
	for _, key := range maputil.SortedKeys(m) {
		tags = append(tags, *smmodel.NewTag(key, m[key]))
	}

	return tags
}
