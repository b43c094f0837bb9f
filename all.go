package domainfn

import (
	"context"
	"sort"
	"sync"
)

// All runs every domain function concurrently with the identical
// input and environment. It always waits for every branch; a failing
// sibling cancels nothing. If all branches succeed the result carries
// their outputs in declaration order. If any fails, the result fails
// with each error channel concatenated across branches in declaration
// order, successful branches contributing nothing.
func All(fns ...UntypedDomainFunction) DomainFunction[[]any] {
	return func(ctx context.Context, input, environment any) Result[[]any] {
		results := runConcurrently(ctx, input, environment, fns)
		data := make([]any, len(results))
		var failure Failure
		failed := false
		for i, r := range results {
			if r.Success {
				data[i] = r.Data
				continue
			}
			failed = true
			failure.Errors = append(failure.Errors, r.Errors...)
			failure.InputErrors = append(failure.InputErrors, r.InputErrors...)
			failure.EnvironmentErrors = append(failure.EnvironmentErrors, r.EnvironmentErrors...)
		}
		if failed {
			return Fail[[]any](failure)
		}
		return Success(data)
	}
}

// Collect is the named-key variant of All: it runs every function in
// the map concurrently and succeeds with a map of each key to its
// output. On failure the error channels are concatenated in sorted
// key order so aggregation stays deterministic.
func Collect(fns map[string]UntypedDomainFunction) DomainFunction[map[string]any] {
	keys := make([]string, 0, len(fns))
	for k := range fns {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	ordered := make([]UntypedDomainFunction, len(keys))
	for i, k := range keys {
		ordered[i] = fns[k]
	}
	return func(ctx context.Context, input, environment any) Result[map[string]any] {
		results := runConcurrently(ctx, input, environment, ordered)
		data := make(map[string]any, len(results))
		var failure Failure
		failed := false
		for i, r := range results {
			if r.Success {
				data[keys[i]] = r.Data
				continue
			}
			failed = true
			failure.Errors = append(failure.Errors, r.Errors...)
			failure.InputErrors = append(failure.InputErrors, r.InputErrors...)
			failure.EnvironmentErrors = append(failure.EnvironmentErrors, r.EnvironmentErrors...)
		}
		if failed {
			return Fail[map[string]any](failure)
		}
		return Success(data)
	}
}

// runConcurrently launches one goroutine per function and waits for
// all of them, returning results indexed by declaration order.
func runConcurrently(ctx context.Context, input, environment any, fns []UntypedDomainFunction) []Result[any] {
	results := make([]Result[any], len(fns))
	var wg sync.WaitGroup
	for i, fn := range fns {
		wg.Add(1)
		go func(i int, fn UntypedDomainFunction) {
			defer wg.Done()
			results[i] = fn(ctx, input, environment)
		}(i, fn)
	}
	wg.Wait()
	return results
}
