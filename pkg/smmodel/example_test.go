package smmodel_test

import (
	"errors"
	"fmt"

	"github.com/mpyw/smkit/pkg/smmodel"
)

func ExampleCreateSecretRequest() {
	req := new(smmodel.CreateSecretRequest).
		WithName("db-creds").
		WithSecretString(`{"u":"a"}`).
		WithTags([]smmodel.Tag{*smmodel.NewTag("env", "prod")})

	fmt.Println(req)
	fmt.Println(req.Validate())
	// Output:
	// CreateSecretRequest{Name: "db-creds", SecretString: <sensitive>, Tags: [{Key: "env", Value: "prod"}]}
	// <nil>
}

func ExampleDescribeSecretResult_AddVersionIdsToStagesEntry() {
	res := new(smmodel.DescribeSecretResult)

	_ = res.AddVersionIdsToStagesEntry("v1", []string{smmodel.StageCurrent})
	err := res.AddVersionIdsToStagesEntry("v1", []string{smmodel.StagePrevious})

	fmt.Println(errors.Is(err, smmodel.ErrDuplicateKey))
	fmt.Println(res.GetVersionIdsToStages())
	// Output:
	// true
	// map[v1:[AWSCURRENT]]
}
