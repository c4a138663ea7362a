// Package secret provides use cases for Secrets Manager operations.
package secret

import (
	"context"
	"time"

	"github.com/mpyw/smkit/internal/secretref"
	"github.com/mpyw/smkit/pkg/smclient"
	"github.com/mpyw/smkit/pkg/smmodel"
)

// ShowClient is the interface for the show use case.
type ShowClient interface {
	secretref.Client
	smclient.DescribeSecretAPI
}

// ShowInput holds input for the show use case.
type ShowInput struct {
	Ref *secretref.Ref
}

// ShowOutput holds the result of the show use case.
type ShowOutput struct {
	Name        string
	ARN         string
	VersionID   string
	Stages      []string
	CreatedDate time.Time
	Value       string
	// Binary is set when the version stores SecretBinary. Value then holds the raw bytes.
	Binary bool
	Tags   []smmodel.Tag
}

// ShowUseCase executes show operations.
type ShowUseCase struct {
	Client ShowClient
}

// Execute runs the show use case.
func (u *ShowUseCase) Execute(ctx context.Context, input ShowInput) (*ShowOutput, error) {
	res, err := secretref.Resolve(ctx, u.Client, input.Ref)
	if err != nil {
		return nil, err
	}

	output := &ShowOutput{
		Name:        res.GetName(),
		ARN:         res.GetARN(),
		VersionID:   res.GetVersionId(),
		Stages:      res.GetVersionStages(),
		CreatedDate: res.GetCreatedDate(),
		Value:       res.Payload(),
		Binary:      res.HasSecretBinary() && !res.HasSecretString(),
	}

	// Tags are best effort: the caller may lack DescribeSecret permission.
	if desc, err := u.Client.DescribeSecret(ctx, new(smmodel.DescribeSecretRequest).WithSecretId(input.Ref.Name)); err == nil {
		output.Tags = desc.GetTags()
	}

	return output, nil
}
