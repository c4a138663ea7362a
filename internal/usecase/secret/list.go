package secret

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/samber/lo"

	"github.com/mpyw/smkit/internal/parallel"
	"github.com/mpyw/smkit/pkg/smclient"
	"github.com/mpyw/smkit/pkg/smmodel"
)

// ListClient is the interface for the list use case.
type ListClient interface {
	smclient.ListSecretsAPI
	smclient.GetSecretValueAPI
}

// ListInput holds input for the list use case.
type ListInput struct {
	// Prefix is matched server-side against names.
	Prefix string
	// Filters are passed to ListSecrets as is.
	Filters []smmodel.Filter
	// Pattern is a regular expression matched client-side against names.
	Pattern   string
	SortOrder smmodel.SortOrderType
	// MaxResults limits the number of entries. Zero means all.
	MaxResults  int
	WithValues  bool
	Concurrency int
}

// ListEntry represents a single secret in list output.
type ListEntry struct {
	Name            string
	Description     string
	LastChangedDate time.Time
	Tags            []smmodel.Tag
	Value           string
	// Err is the error of fetching Value.
	Err error
}

// ListOutput holds the result of the list use case.
type ListOutput struct {
	Entries []ListEntry
}

// ListUseCase executes list operations.
type ListUseCase struct {
	Client ListClient
}

// Execute runs the list use case.
func (u *ListUseCase) Execute(ctx context.Context, input ListInput) (*ListOutput, error) {
	var pattern *regexp.Regexp

	if input.Pattern != "" {
		re, err := regexp.Compile(input.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid filter regex: %w", err)
		}

		pattern = re
	}

	req := new(smmodel.ListSecretsRequest).
		WithFilters(input.Filters).
		WithMaxResults(smmodel.MaxResultsLimit)
	if input.Prefix != "" {
		req.AppendFilters(*new(smmodel.Filter).WithKey(smmodel.FilterNameStringTypeName).WithValues([]string{input.Prefix}))
	}

	if input.SortOrder != "" {
		req.WithSortOrder(input.SortOrder)
	}

	var entries []ListEntry

	for {
		page, err := u.Client.ListSecrets(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("failed to list secrets: %w", err)
		}

		for _, s := range page.GetSecretList() {
			if pattern != nil && !pattern.MatchString(s.GetName()) {
				continue
			}

			entries = append(entries, ListEntry{
				Name:            s.GetName(),
				Description:     s.GetDescription(),
				LastChangedDate: s.GetLastChangedDate(),
				Tags:            s.GetTags(),
			})
		}

		if page.GetNextToken() == "" || (input.MaxResults > 0 && len(entries) >= input.MaxResults) {
			break
		}

		req.WithNextToken(page.GetNextToken())
	}

	if input.MaxResults > 0 && len(entries) > input.MaxResults {
		entries = entries[:input.MaxResults]
	}

	if input.WithValues {
		names := lo.Map(entries, func(e ListEntry, _ int) string { return e.Name })

		results := parallel.Map(ctx, names, input.Concurrency, func(ctx context.Context, name string) (string, error) {
			res, err := u.Client.GetSecretValue(ctx, new(smmodel.GetSecretValueRequest).WithSecretId(name))
			if err != nil {
				return "", err
			}

			return res.Payload(), nil
		})

		for i, r := range results {
			entries[i].Value, entries[i].Err = r.Value, r.Err
		}
	}

	return &ListOutput{Entries: entries}, nil
}
