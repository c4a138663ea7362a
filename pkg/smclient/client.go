// Package smclient calls AWS Secrets Manager with the request and result
// shapes of package smmodel.
//
// Every method validates its request, fills the idempotency token of
// operations that create a version, converts the request for aws-sdk-go-v2,
// and converts the response back. Errors from the service are returned as
// is, so errors.As works with the types of the SDK and smithy-go.
package smclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/mpyw/smkit/internal/api/secretapi"
	"github.com/mpyw/smkit/pkg/smmodel"
)

// ErrNilRequest is returned when a method receives a nil request.
var ErrNilRequest = fmt.Errorf("%w: nil request", smmodel.ErrInvalidArgument)

// API is the aws-sdk-go-v2 surface the client drives.
// *secretsmanager.Client satisfies it.
type API = secretapi.API

// Client calls Secrets Manager with smmodel shapes.
// It is safe for concurrent use when the underlying API is.
type Client struct {
	api      API
	logger   *slog.Logger
	newToken func() string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output. Secret values are never logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTokenGenerator replaces the generator of idempotency tokens.
func WithTokenGenerator(fn func() string) Option {
	return func(c *Client) {
		c.newToken = fn
	}
}

// New returns a Client that calls api.
func New(api API, opts ...Option) *Client {
	c := &Client{
		api:      api,
		newToken: uuid.NewString,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}

	return c
}

// NewFromConfig returns a Client backed by a Secrets Manager client built from cfg.
func NewFromConfig(cfg aws.Config, opts ...Option) *Client {
	return New(secretapi.NewFromConfig(cfg), opts...)
}

type request interface {
	comparable
	Validate() error
}

func invoke[Req request, In, Out, Res any](
	ctx context.Context,
	c *Client,
	operation string,
	req Req,
	toInput func(Req) *In,
	send func(context.Context, *In, ...func(*secretapi.Options)) (*Out, error),
	fromOutput func(*Out) *Res,
) (*Res, error) {
	var zero Req
	if req == zero {
		return nil, fmt.Errorf("%s: %w", operation, ErrNilRequest)
	}

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	logger := c.logger.With(slog.String("operation", operation))
	logger.DebugContext(ctx, "calling Secrets Manager")

	out, err := send(ctx, toInput(req))
	if err != nil {
		logger.DebugContext(ctx, "Secrets Manager returned an error", slog.String("error", err.Error()))

		return nil, err
	}

	if out == nil {
		out = new(Out)
	}

	return fromOutput(out), nil
}

// token returns current, or a fresh idempotency token when current is unset.
func (c *Client) token(current *string) *string {
	if current != nil {
		return current
	}

	return lo.ToPtr(c.newToken())
}

// CancelRotateSecret turns off automatic rotation of a secret.
func (c *Client) CancelRotateSecret(ctx context.Context, req *smmodel.CancelRotateSecretRequest) (*smmodel.CancelRotateSecretResult, error) {
	return invoke(ctx, c, "CancelRotateSecret", req, toCancelRotateSecretInput, c.api.CancelRotateSecret, fromCancelRotateSecretOutput)
}

// CreateSecret creates a secret. An unset ClientRequestToken is filled with a random UUID.
func (c *Client) CreateSecret(ctx context.Context, req *smmodel.CreateSecretRequest) (*smmodel.CreateSecretResult, error) {
	toInput := func(r *smmodel.CreateSecretRequest) *secretapi.CreateSecretInput {
		in := toCreateSecretInput(r)
		in.ClientRequestToken = c.token(in.ClientRequestToken)

		return in
	}

	return invoke(ctx, c, "CreateSecret", req, toInput, c.api.CreateSecret, fromCreateSecretOutput)
}

// DeleteResourcePolicy removes the resource policy of a secret.
func (c *Client) DeleteResourcePolicy(ctx context.Context, req *smmodel.DeleteResourcePolicyRequest) (*smmodel.DeleteResourcePolicyResult, error) {
	return invoke(ctx, c, "DeleteResourcePolicy", req, toDeleteResourcePolicyInput, c.api.DeleteResourcePolicy, fromDeleteResourcePolicyOutput)
}

// DeleteSecret schedules a secret for deletion.
func (c *Client) DeleteSecret(ctx context.Context, req *smmodel.DeleteSecretRequest) (*smmodel.DeleteSecretResult, error) {
	return invoke(ctx, c, "DeleteSecret", req, toDeleteSecretInput, c.api.DeleteSecret, fromDeleteSecretOutput)
}

// DescribeSecret returns the metadata of a secret.
func (c *Client) DescribeSecret(ctx context.Context, req *smmodel.DescribeSecretRequest) (*smmodel.DescribeSecretResult, error) {
	return invoke(ctx, c, "DescribeSecret", req, toDescribeSecretInput, c.api.DescribeSecret, fromDescribeSecretOutput)
}

// GetRandomPassword generates a random password server-side.
func (c *Client) GetRandomPassword(ctx context.Context, req *smmodel.GetRandomPasswordRequest) (*smmodel.GetRandomPasswordResult, error) {
	return invoke(ctx, c, "GetRandomPassword", req, toGetRandomPasswordInput, c.api.GetRandomPassword, fromGetRandomPasswordOutput)
}

// GetResourcePolicy returns the resource policy of a secret.
func (c *Client) GetResourcePolicy(ctx context.Context, req *smmodel.GetResourcePolicyRequest) (*smmodel.GetResourcePolicyResult, error) {
	return invoke(ctx, c, "GetResourcePolicy", req, toGetResourcePolicyInput, c.api.GetResourcePolicy, fromGetResourcePolicyOutput)
}

// GetSecretValue returns one version of a secret's value.
func (c *Client) GetSecretValue(ctx context.Context, req *smmodel.GetSecretValueRequest) (*smmodel.GetSecretValueResult, error) {
	return invoke(ctx, c, "GetSecretValue", req, toGetSecretValueInput, c.api.GetSecretValue, fromGetSecretValueOutput)
}

// ListSecretVersionIds returns one page of the versions of a secret.
func (c *Client) ListSecretVersionIds(ctx context.Context, req *smmodel.ListSecretVersionIdsRequest) (*smmodel.ListSecretVersionIdsResult, error) {
	return invoke(ctx, c, "ListSecretVersionIds", req, toListSecretVersionIdsInput, c.api.ListSecretVersionIds, fromListSecretVersionIdsOutput)
}

// ListSecrets returns one page of the secrets in the account.
func (c *Client) ListSecrets(ctx context.Context, req *smmodel.ListSecretsRequest) (*smmodel.ListSecretsResult, error) {
	return invoke(ctx, c, "ListSecrets", req, toListSecretsInput, c.api.ListSecrets, fromListSecretsOutput)
}

// PutResourcePolicy attaches a resource policy to a secret.
func (c *Client) PutResourcePolicy(ctx context.Context, req *smmodel.PutResourcePolicyRequest) (*smmodel.PutResourcePolicyResult, error) {
	return invoke(ctx, c, "PutResourcePolicy", req, toPutResourcePolicyInput, c.api.PutResourcePolicy, fromPutResourcePolicyOutput)
}

// PutSecretValue stores a new version. An unset ClientRequestToken is filled with a random UUID.
func (c *Client) PutSecretValue(ctx context.Context, req *smmodel.PutSecretValueRequest) (*smmodel.PutSecretValueResult, error) {
	toInput := func(r *smmodel.PutSecretValueRequest) *secretapi.PutSecretValueInput {
		in := toPutSecretValueInput(r)
		in.ClientRequestToken = c.token(in.ClientRequestToken)

		return in
	}

	return invoke(ctx, c, "PutSecretValue", req, toInput, c.api.PutSecretValue, fromPutSecretValueOutput)
}

// RestoreSecret cancels the scheduled deletion of a secret.
func (c *Client) RestoreSecret(ctx context.Context, req *smmodel.RestoreSecretRequest) (*smmodel.RestoreSecretResult, error) {
	return invoke(ctx, c, "RestoreSecret", req, toRestoreSecretInput, c.api.RestoreSecret, fromRestoreSecretOutput)
}

// RotateSecret starts a rotation. An unset ClientRequestToken is filled with a random UUID.
func (c *Client) RotateSecret(ctx context.Context, req *smmodel.RotateSecretRequest) (*smmodel.RotateSecretResult, error) {
	toInput := func(r *smmodel.RotateSecretRequest) *secretapi.RotateSecretInput {
		in := toRotateSecretInput(r)
		in.ClientRequestToken = c.token(in.ClientRequestToken)

		return in
	}

	return invoke(ctx, c, "RotateSecret", req, toInput, c.api.RotateSecret, fromRotateSecretOutput)
}

// TagResource attaches tags to a secret.
func (c *Client) TagResource(ctx context.Context, req *smmodel.TagResourceRequest) (*smmodel.TagResourceResult, error) {
	return invoke(ctx, c, "TagResource", req, toTagResourceInput, c.api.TagResource, fromTagResourceOutput)
}

// UntagResource removes tags from a secret.
func (c *Client) UntagResource(ctx context.Context, req *smmodel.UntagResourceRequest) (*smmodel.UntagResourceResult, error) {
	return invoke(ctx, c, "UntagResource", req, toUntagResourceInput, c.api.UntagResource, fromUntagResourceOutput)
}

// UpdateSecret modifies a secret. When a payload is set and ClientRequestToken
// is not, the token is filled with a random UUID.
func (c *Client) UpdateSecret(ctx context.Context, req *smmodel.UpdateSecretRequest) (*smmodel.UpdateSecretResult, error) {
	toInput := func(r *smmodel.UpdateSecretRequest) *secretapi.UpdateSecretInput {
		in := toUpdateSecretInput(r)
		if in.SecretString != nil || in.SecretBinary != nil {
			in.ClientRequestToken = c.token(in.ClientRequestToken)
		}

		return in
	}

	return invoke(ctx, c, "UpdateSecret", req, toInput, c.api.UpdateSecret, fromUpdateSecretOutput)
}

// UpdateSecretVersionStage moves a staging label between versions.
func (c *Client) UpdateSecretVersionStage(ctx context.Context, req *smmodel.UpdateSecretVersionStageRequest) (*smmodel.UpdateSecretVersionStageResult, error) {
	return invoke(ctx, c, "UpdateSecretVersionStage", req, toUpdateSecretVersionStageInput, c.api.UpdateSecretVersionStage, fromUpdateSecretVersionStageOutput)
}

// ValidateResourcePolicy checks a resource policy without attaching it.
func (c *Client) ValidateResourcePolicy(ctx context.Context, req *smmodel.ValidateResourcePolicyRequest) (*smmodel.ValidateResourcePolicyResult, error) {
	return invoke(ctx, c, "ValidateResourcePolicy", req, toValidateResourcePolicyInput, c.api.ValidateResourcePolicy, fromValidateResourcePolicyOutput)
}

// IsNotFound reports whether err is a ResourceNotFoundException.
func IsNotFound(err error) bool {
	var rnf *secretapi.ResourceNotFoundException

	return errors.As(err, &rnf)
}
