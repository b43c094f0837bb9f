package domainfn

import "context"

// Map returns a domain function that applies mapper to df's success
// data. Failures pass through untouched and the mapper is never
// invoked for them. A mapper error or panic becomes a failure with a
// single normalized entry in Errors, mirroring how the factory treats
// an unrecognized handler error.
func Map[A, B any](df DomainFunction[A], mapper func(ctx context.Context, data A) (B, error)) DomainFunction[B] {
	return func(ctx context.Context, input, environment any) Result[B] {
		r := df(ctx, input, environment)
		if !r.Success {
			return Fail[B](r.Failure())
		}
		mapped, err := runMapper(ctx, r.Data, mapper)
		if err != nil {
			return ErrorResult[B](NormalizeError(err))
		}
		return Success(mapped)
	}
}

// MapError returns a domain function that applies mapper to df's full
// failure payload, re-tagging the mapped payload as the new failure.
// Successes pass through untouched. A mapper error or panic discards
// the attempted transformation and collapses to a single normalized
// entry in Errors; it never leaks to the caller.
func MapError[A any](df DomainFunction[A], mapper func(ctx context.Context, failure Failure) (Failure, error)) DomainFunction[A] {
	return func(ctx context.Context, input, environment any) Result[A] {
		r := df(ctx, input, environment)
		if r.Success {
			return r
		}
		mapped, err := runMapper(ctx, r.Failure(), mapper)
		if err != nil {
			return ErrorResult[A](NormalizeError(err))
		}
		return Fail[A](mapped)
	}
}

// runMapper invokes a transformer with the same panic containment as
// runHandler.
func runMapper[A, B any](ctx context.Context, data A, mapper func(ctx context.Context, data A) (B, error)) (mapped B, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recoveredError{normalizeRecovered(r)}
		}
	}()
	return mapper(ctx, data)
}
