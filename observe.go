package domainfn

import (
	"context"
	"time"

	"github.com/fnlab/domainfn/pkg/log"
)

// Observe wraps a domain function with structured logging of its
// outcome and duration under the given name. The wrapped function's
// behavior is otherwise unchanged. A nil logger returns df as is.
func Observe[T any](df DomainFunction[T], logger log.Logger, name string) DomainFunction[T] {
	if logger == nil {
		return df
	}
	return func(ctx context.Context, input, environment any) Result[T] {
		start := time.Now()
		r := df(ctx, input, environment)
		elapsed := time.Since(start)
		if r.Success {
			logger.Debug("domain function succeeded",
				log.String("name", name),
				log.Duration("elapsed", elapsed))
			return r
		}
		logger.Warn("domain function failed",
			log.String("name", name),
			log.Duration("elapsed", elapsed),
			log.Int("errors", len(r.Errors)),
			log.Int("input_errors", len(r.InputErrors)),
			log.Int("environment_errors", len(r.EnvironmentErrors)))
		return r
	}
}
