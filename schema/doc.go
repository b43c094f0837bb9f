// Package schema provides Schema implementations for the domainfn
// algebra, backed by struct tags and go-playground/validator.
//
// # Struct Schemas
//
// Struct builds a schema that coerces an untrusted value into a typed
// struct and validates it with `validate` tags. Field paths in the
// reported issues follow `json` tags:
//
//	type Signup struct {
//		Name  string `json:"name" validate:"required,min=2"`
//		Email string `json:"email" validate:"required,email"`
//	}
//
//	s := schema.Struct[Signup]()
//	v, issues := s.Parse(ctx, map[string]any{"name": "a"})
//	// issues: [{[name] must be at least 2 characters long}
//	//          {[email] is required}]
//
// # Other Schemas
//
// Type coerces into any Go type without tag validation, Any accepts
// every value unchanged, and Empty accepts an absent or empty
// structure, which suits the default environment contract.
package schema
