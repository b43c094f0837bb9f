package domainfn

import "context"

// Sequence chains domain functions exactly like Pipe, but succeeds
// with the ordered outputs of every step instead of only the last
// one. The first failure is returned immediately, with no partial
// accumulation. Requires at least one function.
func Sequence(fns ...UntypedDomainFunction) DomainFunction[[]any] {
	return func(ctx context.Context, input, environment any) Result[[]any] {
		if len(fns) == 0 {
			return ErrorResult[[]any](Error{Message: "sequence requires at least one domain function"})
		}
		collected := make([]any, 0, len(fns))
		data := input
		for _, fn := range fns {
			r := fn(ctx, data, environment)
			if !r.Success {
				return Fail[[]any](r.Failure())
			}
			collected = append(collected, r.Data)
			data = r.Data
		}
		return Success(collected)
	}
}
