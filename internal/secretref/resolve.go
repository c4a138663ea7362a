package secretref

import (
	"context"
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/mpyw/smkit/pkg/smclient"
	"github.com/mpyw/smkit/pkg/smmodel"
)

// Client is the Secrets Manager surface needed to resolve references.
type Client interface {
	smclient.GetSecretValueAPI
	smclient.ListSecretVersionIdsAPI
}

// Versions returns every version of a secret, newest first.
// Versions without a creation date sort last.
func Versions(ctx context.Context, client smclient.ListSecretVersionIdsAPI, name string, includeDeprecated bool) ([]smmodel.SecretVersionsListEntry, error) {
	var versions []smmodel.SecretVersionsListEntry

	req := new(smmodel.ListSecretVersionIdsRequest).
		WithSecretId(name).
		WithMaxResults(smmodel.MaxResultsLimit)
	if includeDeprecated {
		req.WithIncludeDeprecated(true)
	}

	for {
		page, err := client.ListSecretVersionIds(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("failed to list secret versions: %w", err)
		}

		versions = append(versions, page.GetVersions()...)

		if page.GetNextToken() == "" {
			break
		}

		req.WithNextToken(page.GetNextToken())
	}

	slices.SortStableFunc(versions, func(a, b smmodel.SecretVersionsListEntry) int {
		switch {
		case a.CreatedDate == nil && b.CreatedDate == nil:
			return 0
		case a.CreatedDate == nil:
			return 1
		case b.CreatedDate == nil:
			return -1
		default:
			return b.CreatedDate.Compare(*a.CreatedDate)
		}
	})

	return versions, nil
}

// Resolve fetches the version ref points at.
func Resolve(ctx context.Context, client Client, ref *Ref) (*smmodel.GetSecretValueResult, error) {
	req := new(smmodel.GetSecretValueRequest).WithSecretId(ref.Name)

	if !ref.HasShift() {
		if ref.VersionID != "" {
			req.WithVersionId(ref.VersionID)
		}

		if ref.Stage != "" {
			req.WithVersionStage(ref.Stage)
		}

		res, err := client.GetSecretValue(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("failed to get secret value: %w", err)
		}

		return res, nil
	}

	versionID, err := ResolveVersionID(ctx, client, ref)
	if err != nil {
		return nil, err
	}

	res, err := client.GetSecretValue(ctx, req.WithVersionId(versionID))
	if err != nil {
		return nil, fmt.Errorf("failed to get secret value: %w", err)
	}

	return res, nil
}

// ResolveVersionID returns the version ID ref points at, walking back Shift
// versions from the target. Without a target the walk starts at AWSCURRENT.
// Deprecated versions take part in the walk.
func ResolveVersionID(ctx context.Context, client smclient.ListSecretVersionIdsAPI, ref *Ref) (string, error) {
	if ref.VersionID != "" && !ref.HasShift() {
		return ref.VersionID, nil
	}

	versions, err := Versions(ctx, client, ref.Name, true)
	if err != nil {
		return "", err
	}

	if len(versions) == 0 {
		return "", fmt.Errorf("secret has no versions: %s", ref.Name)
	}

	base, err := baseIndex(versions, ref)
	if err != nil {
		return "", err
	}

	target, err := applyShift(base, ref.Shift, len(versions))
	if err != nil {
		return "", err
	}

	return versions[target].GetVersionId(), nil
}

func baseIndex(versions []smmodel.SecretVersionsListEntry, ref *Ref) (int, error) {
	if ref.VersionID != "" {
		if i := slices.IndexFunc(versions, func(v smmodel.SecretVersionsListEntry) bool {
			return v.GetVersionId() == ref.VersionID
		}); i >= 0 {
			return i, nil
		}

		return 0, fmt.Errorf("version ID %s not found", ref.VersionID)
	}

	stage := lo.CoalesceOrEmpty(ref.Stage, smmodel.StageCurrent)
	if i := indexOfStage(versions, stage); i >= 0 {
		return i, nil
	}

	return 0, fmt.Errorf("staging label %s not found", stage)
}

func indexOfStage(versions []smmodel.SecretVersionsListEntry, stage string) int {
	return slices.IndexFunc(versions, func(v smmodel.SecretVersionsListEntry) bool {
		return lo.Contains(v.GetVersionStages(), stage)
	})
}
