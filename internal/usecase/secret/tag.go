package secret

import (
	"context"
	"fmt"

	"github.com/mpyw/smkit/pkg/smclient"
	"github.com/mpyw/smkit/pkg/smmodel"
)

// TagClient is the interface for the tag and untag use cases.
type TagClient interface {
	smclient.TagResourceAPI
	smclient.UntagResourceAPI
}

// TagInput holds input for the tag use case.
type TagInput struct {
	Name string
	Tags map[string]string
}

// UntagInput holds input for the untag use case.
type UntagInput struct {
	Name    string
	TagKeys []string
}

// TagUseCase executes tag and untag operations.
type TagUseCase struct {
	Client TagClient
}

// Tag adds or overwrites tags.
func (u *TagUseCase) Tag(ctx context.Context, input TagInput) error {
	req := new(smmodel.TagResourceRequest).
		WithSecretId(input.Name).
		WithTags(toTags(input.Tags))

	if _, err := u.Client.TagResource(ctx, req); err != nil {
		return fmt.Errorf("failed to tag secret: %w", err)
	}

	return nil
}

// Untag removes tags by key.
func (u *TagUseCase) Untag(ctx context.Context, input UntagInput) error {
	req := new(smmodel.UntagResourceRequest).
		WithSecretId(input.Name).
		WithTagKeys(input.TagKeys)

	if _, err := u.Client.UntagResource(ctx, req); err != nil {
		return fmt.Errorf("failed to untag secret: %w", err)
	}

	return nil
}
