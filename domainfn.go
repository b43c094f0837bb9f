package domainfn

import (
	"context"
	"fmt"
)

// DomainFunction is a validated asynchronous operation: it takes an
// untrusted input and an untrusted environment and returns a Result.
// Domain functions are stateless and safe to invoke repeatedly and
// concurrently. Blocking work observes ctx; the algebra itself never
// cancels a launched function.
type DomainFunction[T any] func(ctx context.Context, input, environment any) Result[T]

// UntypedDomainFunction is the erased form used by the heterogeneous
// combinators (Pipe, Sequence, All, Collect, First, Branch).
type UntypedDomainFunction = DomainFunction[any]

// Untyped erases the output type, boxing the success data into any.
// Failures pass through unchanged.
func (df DomainFunction[T]) Untyped() UntypedDomainFunction {
	return func(ctx context.Context, input, environment any) Result[any] {
		r := df(ctx, input, environment)
		if !r.Success {
			return Fail[any](r.Failure())
		}
		return Success[any](r.Data)
	}
}

// As restores a concrete output type on an erased domain function. A
// success whose data is not a T becomes a failure with a single
// generic error rather than a panic.
func As[T any](df UntypedDomainFunction) DomainFunction[T] {
	return func(ctx context.Context, input, environment any) Result[T] {
		r := df(ctx, input, environment)
		if !r.Success {
			return Fail[T](r.Failure())
		}
		data, ok := r.Data.(T)
		if !ok {
			var want T
			return ErrorResult[T](Error{
				Message: fmt.Sprintf("unexpected result type %T, want %T", r.Data, want),
			})
		}
		return Success(data)
	}
}
