package domainfn

import "context"

// MakeDomainFunction builds a domain function from an input schema, an
// environment schema, and a handler. A nil environment schema accepts
// an empty or absent environment and hands the handler the zero E.
//
// On every invocation both values are validated independently: a
// failing input never masks a failing environment or vice versa. The
// handler runs only when both validations pass. A handler error is
// classified against the recognized field-error signals (InputError,
// EnvironmentError, InputErrors); anything else, including a panic,
// becomes one normalized entry in Result.Errors.
func MakeDomainFunction[I, E, T any](
	inputSchema Schema[I],
	environmentSchema Schema[E],
	handler func(ctx context.Context, input I, environment E) (T, error),
) DomainFunction[T] {
	envSchema := environmentSchema
	if envSchema == nil {
		envSchema = permissive[E]()
	}
	return func(ctx context.Context, input, environment any) Result[T] {
		env, envIssues := envSchema.Parse(ctx, environment)
		in, inIssues := inputSchema.Parse(ctx, input)
		if len(inIssues) > 0 || len(envIssues) > 0 {
			return Fail[T](Failure{
				InputErrors:       inIssues,
				EnvironmentErrors: envIssues,
			})
		}
		data, err := runHandler(ctx, in, env, handler)
		if err != nil {
			return Fail[T](classify(err))
		}
		return Success(data)
	}
}

// runHandler invokes the handler, converting a panic into an error so
// no failure path can escape the factory.
func runHandler[I, E, T any](
	ctx context.Context,
	input I,
	environment E,
	handler func(ctx context.Context, input I, environment E) (T, error),
) (data T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recoveredError{normalizeRecovered(r)}
		}
	}()
	return handler(ctx, input, environment)
}

// recoveredError carries an already-normalized panic value through the
// error return of runHandler. classify treats it as opaque, so the
// normalized form survives unchanged.
type recoveredError struct {
	norm Error
}

func (e recoveredError) Error() string { return e.norm.Message }

func (e recoveredError) Unwrap() error { return e.norm.Err }
