package domainfn_test

import (
	"context"

	"github.com/fnlab/domainfn"
)

// anySchema accepts every value unchanged.
func anySchema() domainfn.Schema[any] {
	return domainfn.SchemaFunc[any](func(_ context.Context, v any) (any, []domainfn.SchemaError) {
		return v, nil
	})
}

// typedSchema accepts only values of type T.
func typedSchema[T any]() domainfn.Schema[T] {
	return domainfn.SchemaFunc[T](func(_ context.Context, v any) (T, []domainfn.SchemaError) {
		t, ok := v.(T)
		if !ok {
			var zero T
			return zero, []domainfn.SchemaError{{Message: "is the wrong type"}}
		}
		return t, nil
	})
}

// requireKeys accepts a map carrying every listed key, reporting one
// issue per missing key in declaration order.
func requireKeys(keys ...string) domainfn.Schema[map[string]any] {
	return domainfn.SchemaFunc[map[string]any](func(_ context.Context, v any) (map[string]any, []domainfn.SchemaError) {
		m, _ := v.(map[string]any)
		var issues []domainfn.SchemaError
		for _, k := range keys {
			if _, ok := m[k]; !ok {
				issues = append(issues, domainfn.SchemaError{Path: []string{k}, Message: "is required"})
			}
		}
		return m, issues
	})
}

// succeedWith builds a domain function that ignores its input and
// succeeds with value.
func succeedWith(value any) domainfn.UntypedDomainFunction {
	return domainfn.MakeDomainFunction(anySchema(), nil,
		func(context.Context, any, struct{}) (any, error) {
			return value, nil
		})
}

// failWithInputError builds a domain function that always fails with
// one input-scoped field error.
func failWithInputError(message string, path ...string) domainfn.UntypedDomainFunction {
	return domainfn.MakeDomainFunction(anySchema(), nil,
		func(context.Context, any, struct{}) (any, error) {
			return nil, domainfn.NewInputError(message, path...)
		})
}

func assertSuccessInvariant[T any](r domainfn.Result[T]) bool {
	return r.Success &&
		len(r.Errors) == 0 && len(r.InputErrors) == 0 && len(r.EnvironmentErrors) == 0
}

func assertFailureInvariant[T any](r domainfn.Result[T]) bool {
	return !r.Success &&
		(len(r.Errors) > 0 || len(r.InputErrors) > 0 || len(r.EnvironmentErrors) > 0)
}
