package domainfn

import (
	"context"
	"strings"
)

// ResultError is the error form of a failed Result, returned by
// functions unwrapped with FromSuccess.
type ResultError struct {
	Failure Failure
}

func (e *ResultError) Error() string {
	var parts []string
	for _, err := range e.Failure.Errors {
		parts = append(parts, err.Message)
	}
	for _, se := range e.Failure.InputErrors {
		parts = append(parts, fieldErrorString("input", se.Path, se.Message))
	}
	for _, se := range e.Failure.EnvironmentErrors {
		parts = append(parts, fieldErrorString("environment", se.Path, se.Message))
	}
	if len(parts) == 0 {
		return "domain function failed"
	}
	return strings.Join(parts, "; ")
}

// FromSuccess unwraps a domain function into a plain Go function that
// returns the success data or a *ResultError carrying the full
// failure payload. Useful at call sites that compose with ordinary
// error handling instead of the Result algebra.
func FromSuccess[T any](df DomainFunction[T]) func(ctx context.Context, input, environment any) (T, error) {
	return func(ctx context.Context, input, environment any) (T, error) {
		r := df(ctx, input, environment)
		if !r.Success {
			var zero T
			return zero, &ResultError{Failure: r.Failure()}
		}
		return r.Data, nil
	}
}
