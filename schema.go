package domainfn

import "context"

// Schema validates and coerces an untrusted value into a T. A nil or
// empty issue slice means success. Implementations must preserve issue
// order; the factory maps each issue 1:1 into the corresponding
// Result channel.
//
// The algebra depends only on this interface. The schema subpackage
// provides struct-tag implementations; anything else can be adapted
// with SchemaFunc.
type Schema[T any] interface {
	Parse(ctx context.Context, value any) (T, []SchemaError)
}

// SchemaFunc adapts an ordinary function to the Schema interface.
type SchemaFunc[T any] func(ctx context.Context, value any) (T, []SchemaError)

// Parse calls f(ctx, value).
func (f SchemaFunc[T]) Parse(ctx context.Context, value any) (T, []SchemaError) {
	return f(ctx, value)
}

// permissive stands in for a nil environment schema: it accepts any
// value, including an absent one, and yields the zero E.
func permissive[E any]() Schema[E] {
	return SchemaFunc[E](func(context.Context, any) (E, []SchemaError) {
		var zero E
		return zero, nil
	})
}
