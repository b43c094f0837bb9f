package domainfn

import "context"

// Pipe chains domain functions left to right: each step receives the
// previous step's success data as its input, while the environment is
// handed to every step unchanged. The first failure is returned
// immediately and no later step runs. Requires at least one function.
func Pipe(fns ...UntypedDomainFunction) UntypedDomainFunction {
	return func(ctx context.Context, input, environment any) Result[any] {
		if len(fns) == 0 {
			return ErrorResult[any](Error{Message: "pipe requires at least one domain function"})
		}
		data := input
		var r Result[any]
		for _, fn := range fns {
			r = fn(ctx, data, environment)
			if !r.Success {
				return r
			}
			data = r.Data
		}
		return r
	}
}
