package smmodel

import (
	validation "github.com/jellydator/validation"
)

// Length limits of the Secrets Manager API.
const (
	MaxSecretIDLength          = 2048
	MaxNameLength              = 512
	MinARNLength               = 20
	MaxARNLength               = 2048
	MinVersionIDLength         = 32
	MaxVersionIDLength         = 64
	MaxVersionStageLength      = 256
	MaxVersionStagesPerVersion = 20
	MaxDescriptionLength       = 2048
	MaxKmsKeyIDLength          = 2048
	MaxSecretSize              = 65536
	MaxResourcePolicyLength    = 20480
	MaxPasswordLength          = 4096
	MaxExcludeCharactersLength = 4096
	MaxNextTokenLength         = 4096
	MaxResultsLimit            = 100
	MaxTagKeyLength            = 127
	MaxTagValueLength          = 255
	MaxFilterValues            = 10
	MaxFilterValueLength       = 512
	MaxRotationDays            = 1000
	MinRecoveryWindowInDays    = 7
	MaxRecoveryWindowInDays    = 30
)

// Validatable is implemented by every request shape.
type Validatable interface {
	Validate() error
}

//nolint:gochecknoglobals // immutable rule sets shared by request shapes
var (
	secretIDRules = []validation.Rule{
		validation.Required,
		validation.Length(1, MaxSecretIDLength),
	}
	optionalSecretIDRules = []validation.Rule{
		validation.Length(1, MaxSecretIDLength),
	}
	nameRules = []validation.Rule{
		validation.Required,
		validation.Length(1, MaxNameLength),
	}
	versionIDRules = []validation.Rule{
		validation.Length(MinVersionIDLength, MaxVersionIDLength),
	}
	versionStageRules = []validation.Rule{
		validation.Length(1, MaxVersionStageLength),
	}
	versionStagesRules = []validation.Rule{
		validation.Length(1, MaxVersionStagesPerVersion),
		validation.Each(validation.Length(1, MaxVersionStageLength)),
	}
	descriptionRules = []validation.Rule{
		validation.RuneLength(0, MaxDescriptionLength),
	}
	kmsKeyIDRules = []validation.Rule{
		validation.Length(0, MaxKmsKeyIDLength),
	}
	secretStringRules = []validation.Rule{
		validation.Length(0, MaxSecretSize),
	}
	secretBinaryRules = []validation.Rule{
		validation.Length(0, MaxSecretSize),
	}
	resourcePolicyRules = []validation.Rule{
		validation.Required,
		validation.Length(1, MaxResourcePolicyLength),
	}
	rotationLambdaARNRules = []validation.Rule{
		validation.Length(0, MaxARNLength),
	}
	maxResultsRules = []validation.Rule{
		validation.Min(int32(1)),
		validation.Max(int32(MaxResultsLimit)),
	}
	nextTokenRules = []validation.Rule{
		validation.Length(1, MaxNextTokenLength),
	}
)
