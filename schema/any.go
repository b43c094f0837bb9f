package schema

import (
	"context"

	"github.com/fnlab/domainfn"
)

// Any returns a schema that accepts every value unchanged, including
// a nil one.
func Any() domainfn.Schema[any] {
	return domainfn.SchemaFunc[any](func(_ context.Context, value any) (any, []domainfn.SchemaError) {
		return value, nil
	})
}

// Type returns a schema that coerces the raw value into T through its
// JSON form, without tag validation. Useful for primitive or slice
// inputs threaded between piped steps.
func Type[T any]() domainfn.Schema[T] {
	return domainfn.SchemaFunc[T](func(_ context.Context, value any) (T, []domainfn.SchemaError) {
		return coerce[T](value)
	})
}

// Empty returns a schema that accepts an absent or empty structure:
// nil, an empty map, or an empty struct. Anything carrying data is
// rejected. This is the explicit form of the factory's default
// environment contract.
func Empty() domainfn.Schema[struct{}] {
	return domainfn.SchemaFunc[struct{}](func(_ context.Context, value any) (struct{}, []domainfn.SchemaError) {
		switch v := value.(type) {
		case nil:
			return struct{}{}, nil
		case map[string]any:
			if len(v) == 0 {
				return struct{}{}, nil
			}
			return struct{}{}, []domainfn.SchemaError{{Message: "must be empty"}}
		case struct{}:
			return struct{}{}, nil
		default:
			return struct{}{}, []domainfn.SchemaError{{Message: "must be an empty structure"}}
		}
	})
}
