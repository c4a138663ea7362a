// Package smmodel defines the request and result shapes exchanged with AWS
// Secrets Manager, one pair per API operation, plus the value types they share.
//
// Every shape is a plain struct with exported, mostly pointer-typed fields so
// that an unset field (nil) stays distinguishable from an explicit empty
// string or zero. Each shape also offers:
//
//   - nil-safe getters (GetSecretId, GetTags, ...)
//   - fluent With* setters that return the receiver for chaining
//   - String, Equal and Hash based on field values
//
// Setters that take a collection store a copy, so later changes to the
// caller's slice or map do not leak into the shape. Passing nil clears the
// field.
//
//	req := new(smmodel.CreateSecretRequest).
//		WithName("db-creds").
//		WithSecretString(`{"u":"a"}`).
//		WithTags([]smmodel.Tag{*smmodel.NewTag("env", "prod")})
//
// Shapes do not talk to the network. Hand them to smclient.Client, which
// converts them for the AWS SDK.
package smmodel
