package infra

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/mpyw/smkit/internal/config"
)

// CallerIdentityAPI is the STS surface used to identify the caller.
type CallerIdentityAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// AWSIdentity describes who smkit calls Secrets Manager as.
type AWSIdentity struct {
	AccountID string
	ARN       string
	Region    string
	// Profile is the shared config profile mapped to AccountID, if any.
	Profile string
}

// GetAWSIdentity retrieves the caller identity for cfg.
func GetAWSIdentity(ctx context.Context, cfg *config.Config) (*AWSIdentity, error) {
	awsCfg, err := LoadConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return Identify(ctx, sts.NewFromConfig(awsCfg), awsCfg.Region, cfg.Profile)
}

// Identify asks api for the caller identity and maps the account to a
// shared config profile, preferring profile when it matches.
func Identify(ctx context.Context, api CallerIdentityAPI, region, profile string) (*AWSIdentity, error) {
	out, err := api.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to get caller identity: %w", err)
	}

	accountID := aws.ToString(out.Account)

	return &AWSIdentity{
		AccountID: accountID,
		ARN:       aws.ToString(out.Arn),
		Region:    region,
		Profile:   findProfileByAccountID(accountID, profile),
	}, nil
}
