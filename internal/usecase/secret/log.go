package secret

import (
	"context"
	"slices"
	"time"

	"github.com/samber/lo"

	"github.com/mpyw/smkit/internal/parallel"
	"github.com/mpyw/smkit/internal/secretref"
	"github.com/mpyw/smkit/pkg/smmodel"
)

// LogClient is the interface for the log use case.
type LogClient interface {
	secretref.Client
}

// LogInput holds input for the log use case.
type LogInput struct {
	Name string
	// MaxResults limits the number of entries. Zero means all.
	MaxResults int
	Since      *time.Time
	Until      *time.Time
	// Reverse lists oldest first.
	Reverse           bool
	IncludeDeprecated bool
	// WithValues fetches the value of every listed version.
	WithValues  bool
	Concurrency int
}

// LogEntry represents a single version entry.
type LogEntry struct {
	VersionID   string
	Stages      []string
	CreatedDate time.Time
	IsCurrent   bool
	Value       string
	// Err is the error of fetching Value.
	Err error
}

// LogOutput holds the result of the log use case.
type LogOutput struct {
	Name    string
	Entries []LogEntry
}

// LogUseCase executes log operations.
type LogUseCase struct {
	Client LogClient
}

// Execute runs the log use case.
func (u *LogUseCase) Execute(ctx context.Context, input LogInput) (*LogOutput, error) {
	versions, err := secretref.Versions(ctx, u.Client, input.Name, input.IncludeDeprecated)
	if err != nil {
		return nil, err
	}

	versions = lo.Filter(versions, func(v smmodel.SecretVersionsListEntry, _ int) bool {
		return inRange(v.GetCreatedDate(), input.Since, input.Until)
	})

	if input.MaxResults > 0 && len(versions) > input.MaxResults {
		versions = versions[:input.MaxResults]
	}

	if input.Reverse {
		slices.Reverse(versions)
	}

	entries := lo.Map(versions, func(v smmodel.SecretVersionsListEntry, _ int) LogEntry {
		return LogEntry{
			VersionID:   v.GetVersionId(),
			Stages:      v.GetVersionStages(),
			CreatedDate: v.GetCreatedDate(),
			IsCurrent:   slices.Contains(v.GetVersionStages(), smmodel.StageCurrent),
		}
	})

	if input.WithValues {
		results := parallel.Map(ctx, entries, input.Concurrency, func(ctx context.Context, e LogEntry) (string, error) {
			res, err := u.Client.GetSecretValue(ctx, new(smmodel.GetSecretValueRequest).
				WithSecretId(input.Name).
				WithVersionId(e.VersionID))
			if err != nil {
				return "", err
			}

			return res.Payload(), nil
		})

		for i, r := range results {
			entries[i].Value, entries[i].Err = r.Value, r.Err
		}
	}

	return &LogOutput{
		Name:    input.Name,
		Entries: entries,
	}, nil
}

// inRange reports whether t lies within [since, until]. With any bound set,
// a zero t is out of range.
func inRange(t time.Time, since, until *time.Time) bool {
	if since == nil && until == nil {
		return true
	}

	if t.IsZero() {
		return false
	}

	if since != nil && t.Before(*since) {
		return false
	}

	return until == nil || !t.After(*until)
}
