package secret

import (
	"context"
	"fmt"

	"github.com/mpyw/smkit/pkg/smclient"
	"github.com/mpyw/smkit/pkg/smmodel"
)

// PolicyClient is the interface for the policy use cases.
type PolicyClient interface {
	smclient.GetResourcePolicyAPI
	smclient.PutResourcePolicyAPI
	smclient.DeleteResourcePolicyAPI
	smclient.ValidateResourcePolicyAPI
}

// PolicyInput holds input for attaching or validating a policy.
type PolicyInput struct {
	// Name may be empty when only validating.
	Name   string
	Policy string
	// BlockPublicPolicy rejects policies granting broad access.
	BlockPublicPolicy bool
}

// PolicyOutput holds the policy attached to a secret.
type PolicyOutput struct {
	Name string
	ARN  string
	// Policy is empty when no policy is attached.
	Policy string
}

// ValidationOutput holds the result of a policy validation.
type ValidationOutput struct {
	Passed bool
	Errors []smmodel.ValidationErrorsEntry
}

// PolicyUseCase executes resource policy operations.
type PolicyUseCase struct {
	Client PolicyClient
}

// Get returns the policy attached to a secret.
func (u *PolicyUseCase) Get(ctx context.Context, name string) (*PolicyOutput, error) {
	res, err := u.Client.GetResourcePolicy(ctx, new(smmodel.GetResourcePolicyRequest).WithSecretId(name))
	if err != nil {
		return nil, fmt.Errorf("failed to get resource policy: %w", err)
	}

	return &PolicyOutput{
		Name:   res.GetName(),
		ARN:    res.GetARN(),
		Policy: res.GetResourcePolicy(),
	}, nil
}

// Put attaches a policy, replacing the current one.
func (u *PolicyUseCase) Put(ctx context.Context, input PolicyInput) (*PolicyOutput, error) {
	req := new(smmodel.PutResourcePolicyRequest).
		WithSecretId(input.Name).
		WithResourcePolicy(input.Policy)
	if input.BlockPublicPolicy {
		req.WithBlockPublicPolicy(true)
	}

	res, err := u.Client.PutResourcePolicy(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to put resource policy: %w", err)
	}

	return &PolicyOutput{
		Name:   res.GetName(),
		ARN:    res.GetARN(),
		Policy: input.Policy,
	}, nil
}

// Delete detaches the policy of a secret.
func (u *PolicyUseCase) Delete(ctx context.Context, name string) (*PolicyOutput, error) {
	res, err := u.Client.DeleteResourcePolicy(ctx, new(smmodel.DeleteResourcePolicyRequest).WithSecretId(name))
	if err != nil {
		return nil, fmt.Errorf("failed to delete resource policy: %w", err)
	}

	return &PolicyOutput{
		Name: res.GetName(),
		ARN:  res.GetARN(),
	}, nil
}

// Validate checks a policy without attaching it.
func (u *PolicyUseCase) Validate(ctx context.Context, input PolicyInput) (*ValidationOutput, error) {
	req := new(smmodel.ValidateResourcePolicyRequest).WithResourcePolicy(input.Policy)
	if input.Name != "" {
		req.WithSecretId(input.Name)
	}

	res, err := u.Client.ValidateResourcePolicy(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to validate resource policy: %w", err)
	}

	return &ValidationOutput{
		Passed: res.GetPolicyValidationPassed(),
		Errors: res.GetValidationErrors(),
	}, nil
}
