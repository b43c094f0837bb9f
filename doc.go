// Package domainfn provides a small algebra for composing validated
// asynchronous operations, called domain functions.
//
// A domain function takes an untrusted input value and an untrusted
// environment value, validates both against schemas, and only then runs
// business logic. Every invocation produces a Result: a tagged
// success/failure value that separates input problems, environment
// problems, and generic failures into distinct channels.
//
// # Building a Domain Function
//
// Use MakeDomainFunction with an input schema, an environment schema
// (nil means "accepts an empty environment"), and a handler:
//
//	type Signup struct {
//		Email string `json:"email" validate:"required,email"`
//	}
//
//	createUser := domainfn.MakeDomainFunction(
//		schema.Struct[Signup](),
//		schema.Empty(),
//		func(ctx context.Context, in Signup, _ struct{}) (User, error) {
//			return users.Create(ctx, in.Email)
//		},
//	)
//
//	result := createUser(ctx, payload, nil)
//
// Handlers report field-level problems discovered during execution by
// returning NewInputError, NewEnvironmentError, or NewInputErrors; the
// factory folds them into the same schema-error channels used for
// static validation. Any other error becomes a single normalized entry
// in Result.Errors. No error or panic ever escapes a domain function.
//
// # Composition
//
// Combinators return domain functions themselves, so the algebra is
// closed under composition:
//
//   - [Map] / [MapError]: transform the success or failure payload
//   - [Pipe]: run steps left to right, feeding each success forward
//   - [Sequence]: like Pipe, but collect every step's output
//   - [All] / [Collect]: run independent functions concurrently
//   - [First]: resolve with the earliest declared success
//   - [Branch]: pick the next step from the previous output
//
// Heterogeneous chains are composed over the erased form
// [UntypedDomainFunction]; use [DomainFunction.Untyped] to erase and
// [As] to restore a concrete output type.
//
// # Schemas
//
// The algebra depends only on the narrow [Schema] interface. The
// schema subpackage provides implementations backed by struct tags;
// any validation engine can be adapted with [SchemaFunc].
package domainfn
