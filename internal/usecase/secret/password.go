package secret

import (
	"context"
	"fmt"

	"github.com/mpyw/smkit/pkg/smclient"
	"github.com/mpyw/smkit/pkg/smmodel"
)

// PasswordClient is the interface for the password use case.
type PasswordClient interface {
	smclient.GetRandomPasswordAPI
}

// PasswordInput holds input for the password use case. Zero values use the service defaults.
type PasswordInput struct {
	Length                  int64
	ExcludeCharacters       string
	ExcludeNumbers          bool
	ExcludePunctuation      bool
	ExcludeUppercase        bool
	ExcludeLowercase        bool
	IncludeSpace            bool
	RequireEachIncludedType bool
}

// PasswordUseCase generates random passwords.
type PasswordUseCase struct {
	Client PasswordClient
}

// Execute generates a password.
func (u *PasswordUseCase) Execute(ctx context.Context, input PasswordInput) (string, error) {
	req := new(smmodel.GetRandomPasswordRequest)

	if input.Length > 0 {
		req.WithPasswordLength(input.Length)
	}

	if input.ExcludeCharacters != "" {
		req.WithExcludeCharacters(input.ExcludeCharacters)
	}

	for _, flag := range []struct {
		set  bool
		with func(bool) *smmodel.GetRandomPasswordRequest
	}{
		{input.ExcludeNumbers, req.WithExcludeNumbers},
		{input.ExcludePunctuation, req.WithExcludePunctuation},
		{input.ExcludeUppercase, req.WithExcludeUppercase},
		{input.ExcludeLowercase, req.WithExcludeLowercase},
		{input.IncludeSpace, req.WithIncludeSpace},
		{input.RequireEachIncludedType, req.WithRequireEachIncludedType},
	} {
		if flag.set {
			flag.with(true)
		}
	}

	res, err := u.Client.GetRandomPassword(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to generate password: %w", err)
	}

	return res.GetRandomPassword(), nil
}
