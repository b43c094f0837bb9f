package domainfn

import "context"

// Branch runs df and, on success, asks resolver to pick the next
// domain function based on the success data. The chosen function
// receives that data as its input and the original environment. A
// failing df short-circuits. A resolver error or panic is classified
// like a handler error, so a resolver may raise field-error signals.
func Branch(df UntypedDomainFunction, resolver func(ctx context.Context, data any) (UntypedDomainFunction, error)) UntypedDomainFunction {
	return func(ctx context.Context, input, environment any) Result[any] {
		r := df(ctx, input, environment)
		if !r.Success {
			return r
		}
		next, err := runMapper(ctx, r.Data, resolver)
		if err != nil {
			return Fail[any](classify(err))
		}
		if next == nil {
			return ErrorResult[any](Error{Message: "branch resolver returned no domain function"})
		}
		return next(ctx, r.Data, environment)
	}
}
