package smclient

import (
	"github.com/samber/lo"

	"github.com/mpyw/smkit/internal/api/secretapi"
	"github.com/mpyw/smkit/pkg/smmodel"
)

// ============================================================================
// Shapes
// ============================================================================

func toTags(tags []smmodel.Tag) []secretapi.Tag {
	if tags == nil {
		return nil
	}

	return lo.Map(tags, func(t smmodel.Tag, _ int) secretapi.Tag {
		return secretapi.Tag{Key: t.Key, Value: t.Value}
	})
}

func fromTags(tags []secretapi.Tag) []smmodel.Tag {
	if tags == nil {
		return nil
	}

	return lo.Map(tags, func(t secretapi.Tag, _ int) smmodel.Tag {
		return smmodel.Tag{Key: t.Key, Value: t.Value}
	})
}

func toFilters(filters []smmodel.Filter) []secretapi.Filter {
	if filters == nil {
		return nil
	}

	return lo.Map(filters, func(f smmodel.Filter, _ int) secretapi.Filter {
		return secretapi.Filter{
			Key:    secretapi.FilterNameStringType(f.Key),
			Values: f.Values,
		}
	})
}

func toRotationRules(r *smmodel.RotationRules) *secretapi.RotationRulesType {
	if r == nil {
		return nil
	}

	return &secretapi.RotationRulesType{AutomaticallyAfterDays: r.AutomaticallyAfterDays}
}

func fromRotationRules(r *secretapi.RotationRulesType) *smmodel.RotationRules {
	if r == nil {
		return nil
	}

	return &smmodel.RotationRules{AutomaticallyAfterDays: r.AutomaticallyAfterDays}
}

func fromSecretListEntries(entries []secretapi.SecretListEntry) []smmodel.SecretListEntry {
	if entries == nil {
		return nil
	}

	return lo.Map(entries, func(e secretapi.SecretListEntry, _ int) smmodel.SecretListEntry {
		return smmodel.SecretListEntry{
			ARN:                    e.ARN,
			DeletedDate:            e.DeletedDate,
			Description:            e.Description,
			KmsKeyId:               e.KmsKeyId,
			LastAccessedDate:       e.LastAccessedDate,
			LastChangedDate:        e.LastChangedDate,
			LastRotatedDate:        e.LastRotatedDate,
			Name:                   e.Name,
			OwningService:          e.OwningService,
			RotationEnabled:        e.RotationEnabled,
			RotationLambdaARN:      e.RotationLambdaARN,
			RotationRules:          fromRotationRules(e.RotationRules),
			SecretVersionsToStages: e.SecretVersionsToStages,
			Tags:                   fromTags(e.Tags),
		}
	})
}

func fromVersionEntries(entries []secretapi.SecretVersionsListEntry) []smmodel.SecretVersionsListEntry {
	if entries == nil {
		return nil
	}

	return lo.Map(entries, func(e secretapi.SecretVersionsListEntry, _ int) smmodel.SecretVersionsListEntry {
		return smmodel.SecretVersionsListEntry{
			CreatedDate:      e.CreatedDate,
			LastAccessedDate: e.LastAccessedDate,
			VersionId:        e.VersionId,
			VersionStages:    e.VersionStages,
		}
	})
}

func fromValidationErrors(entries []secretapi.ValidationErrorsEntry) []smmodel.ValidationErrorsEntry {
	if entries == nil {
		return nil
	}

	return lo.Map(entries, func(e secretapi.ValidationErrorsEntry, _ int) smmodel.ValidationErrorsEntry {
		return smmodel.ValidationErrorsEntry{CheckName: e.CheckName, ErrorMessage: e.ErrorMessage}
	})
}

// ============================================================================
// Requests
// ============================================================================

func toCancelRotateSecretInput(r *smmodel.CancelRotateSecretRequest) *secretapi.CancelRotateSecretInput {
	return &secretapi.CancelRotateSecretInput{SecretId: r.SecretId}
}

func toCreateSecretInput(r *smmodel.CreateSecretRequest) *secretapi.CreateSecretInput {
	return &secretapi.CreateSecretInput{
		ClientRequestToken: r.ClientRequestToken,
		Description:        r.Description,
		KmsKeyId:           r.KmsKeyId,
		Name:               r.Name,
		SecretBinary:       r.SecretBinary,
		SecretString:       r.SecretString,
		Tags:               toTags(r.Tags),
	}
}

func toDeleteResourcePolicyInput(r *smmodel.DeleteResourcePolicyRequest) *secretapi.DeleteResourcePolicyInput {
	return &secretapi.DeleteResourcePolicyInput{SecretId: r.SecretId}
}

func toDeleteSecretInput(r *smmodel.DeleteSecretRequest) *secretapi.DeleteSecretInput {
	return &secretapi.DeleteSecretInput{
		ForceDeleteWithoutRecovery: r.ForceDeleteWithoutRecovery,
		RecoveryWindowInDays:       r.RecoveryWindowInDays,
		SecretId:                   r.SecretId,
	}
}

func toDescribeSecretInput(r *smmodel.DescribeSecretRequest) *secretapi.DescribeSecretInput {
	return &secretapi.DescribeSecretInput{SecretId: r.SecretId}
}

func toGetRandomPasswordInput(r *smmodel.GetRandomPasswordRequest) *secretapi.GetRandomPasswordInput {
	return &secretapi.GetRandomPasswordInput{
		ExcludeCharacters:       r.ExcludeCharacters,
		ExcludeLowercase:        r.ExcludeLowercase,
		ExcludeNumbers:          r.ExcludeNumbers,
		ExcludePunctuation:      r.ExcludePunctuation,
		ExcludeUppercase:        r.ExcludeUppercase,
		IncludeSpace:            r.IncludeSpace,
		PasswordLength:          r.PasswordLength,
		RequireEachIncludedType: r.RequireEachIncludedType,
	}
}

func toGetResourcePolicyInput(r *smmodel.GetResourcePolicyRequest) *secretapi.GetResourcePolicyInput {
	return &secretapi.GetResourcePolicyInput{SecretId: r.SecretId}
}

func toGetSecretValueInput(r *smmodel.GetSecretValueRequest) *secretapi.GetSecretValueInput {
	return &secretapi.GetSecretValueInput{
		SecretId:     r.SecretId,
		VersionId:    r.VersionId,
		VersionStage: r.VersionStage,
	}
}

func toListSecretVersionIdsInput(r *smmodel.ListSecretVersionIdsRequest) *secretapi.ListSecretVersionIdsInput {
	return &secretapi.ListSecretVersionIdsInput{
		IncludeDeprecated: r.IncludeDeprecated,
		MaxResults:        r.MaxResults,
		NextToken:         r.NextToken,
		SecretId:          r.SecretId,
	}
}

func toListSecretsInput(r *smmodel.ListSecretsRequest) *secretapi.ListSecretsInput {
	return &secretapi.ListSecretsInput{
		Filters:    toFilters(r.Filters),
		MaxResults: r.MaxResults,
		NextToken:  r.NextToken,
		SortOrder:  secretapi.SortOrderType(r.SortOrder),
	}
}

func toPutResourcePolicyInput(r *smmodel.PutResourcePolicyRequest) *secretapi.PutResourcePolicyInput {
	return &secretapi.PutResourcePolicyInput{
		BlockPublicPolicy: r.BlockPublicPolicy,
		ResourcePolicy:    r.ResourcePolicy,
		SecretId:          r.SecretId,
	}
}

func toPutSecretValueInput(r *smmodel.PutSecretValueRequest) *secretapi.PutSecretValueInput {
	return &secretapi.PutSecretValueInput{
		ClientRequestToken: r.ClientRequestToken,
		SecretBinary:       r.SecretBinary,
		SecretId:           r.SecretId,
		SecretString:       r.SecretString,
		VersionStages:      r.VersionStages,
	}
}

func toRestoreSecretInput(r *smmodel.RestoreSecretRequest) *secretapi.RestoreSecretInput {
	return &secretapi.RestoreSecretInput{SecretId: r.SecretId}
}

func toRotateSecretInput(r *smmodel.RotateSecretRequest) *secretapi.RotateSecretInput {
	return &secretapi.RotateSecretInput{
		ClientRequestToken: r.ClientRequestToken,
		RotationLambdaARN:  r.RotationLambdaARN,
		RotationRules:      toRotationRules(r.RotationRules),
		SecretId:           r.SecretId,
	}
}

func toTagResourceInput(r *smmodel.TagResourceRequest) *secretapi.TagResourceInput {
	return &secretapi.TagResourceInput{
		SecretId: r.SecretId,
		Tags:     toTags(r.Tags),
	}
}

func toUntagResourceInput(r *smmodel.UntagResourceRequest) *secretapi.UntagResourceInput {
	return &secretapi.UntagResourceInput{
		SecretId: r.SecretId,
		TagKeys:  r.TagKeys,
	}
}

func toUpdateSecretInput(r *smmodel.UpdateSecretRequest) *secretapi.UpdateSecretInput {
	return &secretapi.UpdateSecretInput{
		ClientRequestToken: r.ClientRequestToken,
		Description:        r.Description,
		KmsKeyId:           r.KmsKeyId,
		SecretBinary:       r.SecretBinary,
		SecretId:           r.SecretId,
		SecretString:       r.SecretString,
	}
}

func toUpdateSecretVersionStageInput(r *smmodel.UpdateSecretVersionStageRequest) *secretapi.UpdateSecretVersionStageInput {
	return &secretapi.UpdateSecretVersionStageInput{
		MoveToVersionId:     r.MoveToVersionId,
		RemoveFromVersionId: r.RemoveFromVersionId,
		SecretId:            r.SecretId,
		VersionStage:        r.VersionStage,
	}
}

func toValidateResourcePolicyInput(r *smmodel.ValidateResourcePolicyRequest) *secretapi.ValidateResourcePolicyInput {
	return &secretapi.ValidateResourcePolicyInput{
		ResourcePolicy: r.ResourcePolicy,
		SecretId:       r.SecretId,
	}
}

// ============================================================================
// Results
// ============================================================================

func fromCancelRotateSecretOutput(o *secretapi.CancelRotateSecretOutput) *smmodel.CancelRotateSecretResult {
	return &smmodel.CancelRotateSecretResult{ARN: o.ARN, Name: o.Name, VersionId: o.VersionId}
}

func fromCreateSecretOutput(o *secretapi.CreateSecretOutput) *smmodel.CreateSecretResult {
	return &smmodel.CreateSecretResult{ARN: o.ARN, Name: o.Name, VersionId: o.VersionId}
}

func fromDeleteResourcePolicyOutput(o *secretapi.DeleteResourcePolicyOutput) *smmodel.DeleteResourcePolicyResult {
	return &smmodel.DeleteResourcePolicyResult{ARN: o.ARN, Name: o.Name}
}

func fromDeleteSecretOutput(o *secretapi.DeleteSecretOutput) *smmodel.DeleteSecretResult {
	return &smmodel.DeleteSecretResult{ARN: o.ARN, DeletionDate: o.DeletionDate, Name: o.Name}
}

func fromDescribeSecretOutput(o *secretapi.DescribeSecretOutput) *smmodel.DescribeSecretResult {
	return &smmodel.DescribeSecretResult{
		ARN:                o.ARN,
		DeletedDate:        o.DeletedDate,
		Description:        o.Description,
		KmsKeyId:           o.KmsKeyId,
		LastAccessedDate:   o.LastAccessedDate,
		LastChangedDate:    o.LastChangedDate,
		LastRotatedDate:    o.LastRotatedDate,
		Name:               o.Name,
		OwningService:      o.OwningService,
		RotationEnabled:    o.RotationEnabled,
		RotationLambdaARN:  o.RotationLambdaARN,
		RotationRules:      fromRotationRules(o.RotationRules),
		Tags:               fromTags(o.Tags),
		VersionIdsToStages: o.VersionIdsToStages,
	}
}

func fromGetRandomPasswordOutput(o *secretapi.GetRandomPasswordOutput) *smmodel.GetRandomPasswordResult {
	return &smmodel.GetRandomPasswordResult{RandomPassword: o.RandomPassword}
}

func fromGetResourcePolicyOutput(o *secretapi.GetResourcePolicyOutput) *smmodel.GetResourcePolicyResult {
	return &smmodel.GetResourcePolicyResult{ARN: o.ARN, Name: o.Name, ResourcePolicy: o.ResourcePolicy}
}

func fromGetSecretValueOutput(o *secretapi.GetSecretValueOutput) *smmodel.GetSecretValueResult {
	return &smmodel.GetSecretValueResult{
		ARN:           o.ARN,
		CreatedDate:   o.CreatedDate,
		Name:          o.Name,
		SecretBinary:  o.SecretBinary,
		SecretString:  o.SecretString,
		VersionId:     o.VersionId,
		VersionStages: o.VersionStages,
	}
}

func fromListSecretVersionIdsOutput(o *secretapi.ListSecretVersionIdsOutput) *smmodel.ListSecretVersionIdsResult {
	return &smmodel.ListSecretVersionIdsResult{
		ARN:       o.ARN,
		Name:      o.Name,
		NextToken: o.NextToken,
		Versions:  fromVersionEntries(o.Versions),
	}
}

func fromListSecretsOutput(o *secretapi.ListSecretsOutput) *smmodel.ListSecretsResult {
	return &smmodel.ListSecretsResult{
		NextToken:  o.NextToken,
		SecretList: fromSecretListEntries(o.SecretList),
	}
}

func fromPutResourcePolicyOutput(o *secretapi.PutResourcePolicyOutput) *smmodel.PutResourcePolicyResult {
	return &smmodel.PutResourcePolicyResult{ARN: o.ARN, Name: o.Name}
}

func fromPutSecretValueOutput(o *secretapi.PutSecretValueOutput) *smmodel.PutSecretValueResult {
	return &smmodel.PutSecretValueResult{
		ARN:           o.ARN,
		Name:          o.Name,
		VersionId:     o.VersionId,
		VersionStages: o.VersionStages,
	}
}

func fromRestoreSecretOutput(o *secretapi.RestoreSecretOutput) *smmodel.RestoreSecretResult {
	return &smmodel.RestoreSecretResult{ARN: o.ARN, Name: o.Name}
}

func fromRotateSecretOutput(o *secretapi.RotateSecretOutput) *smmodel.RotateSecretResult {
	return &smmodel.RotateSecretResult{ARN: o.ARN, Name: o.Name, VersionId: o.VersionId}
}

func fromTagResourceOutput(*secretapi.TagResourceOutput) *smmodel.TagResourceResult {
	return &smmodel.TagResourceResult{}
}

func fromUntagResourceOutput(*secretapi.UntagResourceOutput) *smmodel.UntagResourceResult {
	return &smmodel.UntagResourceResult{}
}

func fromUpdateSecretOutput(o *secretapi.UpdateSecretOutput) *smmodel.UpdateSecretResult {
	return &smmodel.UpdateSecretResult{ARN: o.ARN, Name: o.Name, VersionId: o.VersionId}
}

func fromUpdateSecretVersionStageOutput(o *secretapi.UpdateSecretVersionStageOutput) *smmodel.UpdateSecretVersionStageResult {
	return &smmodel.UpdateSecretVersionStageResult{ARN: o.ARN, Name: o.Name}
}

// The service always reports PolicyValidationPassed, so it is carried over even when false.
func fromValidateResourcePolicyOutput(o *secretapi.ValidateResourcePolicyOutput) *smmodel.ValidateResourcePolicyResult {
	return &smmodel.ValidateResourcePolicyResult{
		PolicyValidationPassed: lo.ToPtr(o.PolicyValidationPassed),
		ValidationErrors:       fromValidationErrors(o.ValidationErrors),
	}
}
