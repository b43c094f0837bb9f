package domainfn

import "encoding/json"

// SchemaError describes one field-level validation problem. Path names
// the offending field as ordered segments; Message is human readable.
// Entries come either from static schema validation or from a
// handler-raised signal, and are indistinguishable downstream.
type SchemaError struct {
	Path    []string `json:"path"`
	Message string   `json:"message"`
}

// Error is the normalized form of an arbitrary failure raised outside
// the schema-error channels. Err retains the original cause when one
// exists; it is omitted from JSON output.
type Error struct {
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Unwrap returns the original cause, if any.
func (e Error) Unwrap() error { return e.Err }

// Failure is the full error payload of a failed Result: generic
// errors plus the two schema-error channels. MapError transformers
// receive and return this payload.
type Failure struct {
	Errors            []Error       `json:"errors"`
	InputErrors       []SchemaError `json:"inputErrors"`
	EnvironmentErrors []SchemaError `json:"environmentErrors"`
}

// Empty reports whether no channel carries an entry. An empty Failure
// inside a failed Result is a contract violation by whoever produced
// it; combinators tolerate it but never create one.
func (f Failure) Empty() bool {
	return len(f.Errors) == 0 && len(f.InputErrors) == 0 && len(f.EnvironmentErrors) == 0
}

// Result is the tagged success/failure value every domain function
// returns. Exactly one of the two states holds: on success Data is set
// and all three error collections are empty; on failure Data is the
// zero value and at least one collection is non-empty.
type Result[T any] struct {
	Success           bool          `json:"success"`
	Data              T             `json:"data"`
	Errors            []Error       `json:"errors"`
	InputErrors       []SchemaError `json:"inputErrors"`
	EnvironmentErrors []SchemaError `json:"environmentErrors"`
}

// MarshalJSON serializes a success with its data field and a failure
// without one. omitempty cannot express this: it never omits a
// zero-value struct, which would give failures a phantom data object.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.Success {
		return json.Marshal(struct {
			Success           bool          `json:"success"`
			Data              T             `json:"data"`
			Errors            []Error       `json:"errors"`
			InputErrors       []SchemaError `json:"inputErrors"`
			EnvironmentErrors []SchemaError `json:"environmentErrors"`
		}{true, r.Data, r.Errors, r.InputErrors, r.EnvironmentErrors})
	}
	return json.Marshal(struct {
		Success           bool          `json:"success"`
		Errors            []Error       `json:"errors"`
		InputErrors       []SchemaError `json:"inputErrors"`
		EnvironmentErrors []SchemaError `json:"environmentErrors"`
	}{false, r.Errors, r.InputErrors, r.EnvironmentErrors})
}

// Failure returns the error payload of a failed result. For a
// successful result all channels are empty.
func (r Result[T]) Failure() Failure {
	return Failure{
		Errors:            r.Errors,
		InputErrors:       r.InputErrors,
		EnvironmentErrors: r.EnvironmentErrors,
	}
}

// Success builds a successful result carrying data. The error
// collections are initialized empty rather than nil so the result
// serializes as [] instead of null.
func Success[T any](data T) Result[T] {
	return Result[T]{
		Success:           true,
		Data:              data,
		Errors:            []Error{},
		InputErrors:       []SchemaError{},
		EnvironmentErrors: []SchemaError{},
	}
}

// Fail builds a failed result from a Failure payload, normalizing nil
// channels to empty slices.
func Fail[T any](f Failure) Result[T] {
	return Result[T]{
		Success:           false,
		Errors:            notNil(f.Errors),
		InputErrors:       notNil(f.InputErrors),
		EnvironmentErrors: notNil(f.EnvironmentErrors),
	}
}

// ErrorResult builds a failure carrying only generic errors.
func ErrorResult[T any](errs ...Error) Result[T] {
	return Fail[T](Failure{Errors: errs})
}

// InputErrorResult builds a failure carrying only input schema errors.
func InputErrorResult[T any](errs ...SchemaError) Result[T] {
	return Fail[T](Failure{InputErrors: errs})
}

// EnvironmentErrorResult builds a failure carrying only environment
// schema errors.
func EnvironmentErrorResult[T any](errs ...SchemaError) Result[T] {
	return Fail[T](Failure{EnvironmentErrors: errs})
}

func notNil[S ~[]E, E any](s S) S {
	if s == nil {
		return S{}
	}
	return s
}
