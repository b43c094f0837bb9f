package domainfn

import "context"

// First runs every domain function concurrently with the identical
// input and environment and resolves with the earliest declared
// success, waiting for all branches to complete first so aggregation
// stays deterministic. If every branch fails, the result fails with
// each error channel concatenated in declaration order. Requires at
// least one function.
func First(fns ...UntypedDomainFunction) UntypedDomainFunction {
	return func(ctx context.Context, input, environment any) Result[any] {
		if len(fns) == 0 {
			return ErrorResult[any](Error{Message: "first requires at least one domain function"})
		}
		results := runConcurrently(ctx, input, environment, fns)
		var failure Failure
		for _, r := range results {
			if r.Success {
				return r
			}
			failure.Errors = append(failure.Errors, r.Errors...)
			failure.InputErrors = append(failure.InputErrors, r.InputErrors...)
			failure.EnvironmentErrors = append(failure.EnvironmentErrors, r.EnvironmentErrors...)
		}
		return Fail[any](failure)
	}
}
