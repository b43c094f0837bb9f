package domainfn

import (
	"errors"
	"fmt"
	"strings"
)

// InputError is a handler-level signal: a single field of the input
// turned out to be invalid during execution, after static validation
// passed (for example a uniqueness check). The factory folds it into
// Result.InputErrors.
type InputError struct {
	Path    []string
	Message string
}

// NewInputError builds an input-scoped field error for the given path.
func NewInputError(message string, path ...string) *InputError {
	return &InputError{Path: path, Message: message}
}

func (e *InputError) Error() string {
	return fieldErrorString("input", e.Path, e.Message)
}

// EnvironmentError is the environment-scoped counterpart of
// InputError. The factory folds it into Result.EnvironmentErrors.
type EnvironmentError struct {
	Path    []string
	Message string
}

// NewEnvironmentError builds an environment-scoped field error.
func NewEnvironmentError(message string, path ...string) *EnvironmentError {
	return &EnvironmentError{Path: path, Message: message}
}

func (e *EnvironmentError) Error() string {
	return fieldErrorString("environment", e.Path, e.Message)
}

// InputErrors is the multi-field input-scoped signal: several fields
// reported invalid at once, order preserved.
type InputErrors struct {
	Errors []SchemaError
}

// NewInputErrors builds a multi-field input-scoped signal.
func NewInputErrors(errs ...SchemaError) *InputErrors {
	return &InputErrors{Errors: errs}
}

func (e *InputErrors) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, se := range e.Errors {
		parts = append(parts, fieldErrorString("input", se.Path, se.Message))
	}
	return strings.Join(parts, "; ")
}

func fieldErrorString(scope string, path []string, message string) string {
	if len(path) == 0 {
		return scope + ": " + message
	}
	return scope + " " + strings.Join(path, ".") + ": " + message
}

// NormalizeError converts an arbitrary error into the Error shape,
// synthesizing a message when the error has none.
func NormalizeError(err error) Error {
	if err == nil {
		return Error{Message: "unknown error"}
	}
	msg := err.Error()
	if msg == "" {
		msg = "unknown error"
	}
	return Error{Message: msg, Err: err}
}

// normalizeRecovered converts a recovered panic value into an Error.
func normalizeRecovered(v any) Error {
	if err, ok := v.(error); ok {
		return NormalizeError(err)
	}
	return Error{Message: fmt.Sprint(v)}
}

// classify matches a handler error against the closed set of
// recognized field-error signals; anything unrecognized becomes a
// single normalized generic error. Wrapped signals are honored via
// errors.As.
func classify(err error) Failure {
	var multi *InputErrors
	if errors.As(err, &multi) {
		// A signal carrying no field errors would produce a failure
		// with every channel empty; treat it as a generic error instead.
		if len(multi.Errors) > 0 {
			return Failure{InputErrors: append([]SchemaError{}, multi.Errors...)}
		}
		return Failure{Errors: []Error{NormalizeError(err)}}
	}
	var in *InputError
	if errors.As(err, &in) {
		return Failure{InputErrors: []SchemaError{{Path: in.Path, Message: in.Message}}}
	}
	var env *EnvironmentError
	if errors.As(err, &env) {
		return Failure{EnvironmentErrors: []SchemaError{{Path: env.Path, Message: env.Message}}}
	}
	return Failure{Errors: []Error{NormalizeError(err)}}
}
