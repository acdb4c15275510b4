package app

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result records the outcome of processing one URL.
type Result struct {
	URL   string `json:"url"`
	Err   error  `json:"-"`
	Error string `json:"error,omitempty"`
}

// Run fans the URLs out over a bounded worker pool and collects per-URL
// results in input order. Individual failures do not stop the batch; the
// error count is returned alongside the results.
func Run(ctx context.Context, urls []string, jobs int, process func(context.Context, string) error) ([]Result, int) {
	if jobs < 1 {
		jobs = 1
	}

	results := make([]Result, len(urls))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)

	for i, url := range urls {
		group.Go(func() error {
			err := process(ctx, url)
			results[i] = Result{URL: url, Err: err}
			if err != nil {
				results[i].Error = err.Error()
			}
			// Failures are collected, not propagated, so the rest of the
			// batch keeps going.
			return nil
		})
	}
	_ = group.Wait()

	failures := 0
	for _, result := range results {
		if result.Err != nil {
			failures++
		}
	}
	return results, failures
}
