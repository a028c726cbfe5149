package feed

import "context"

// FetcherInterface lets tests drive the pipeline with a fake fetcher
// instead of real network I/O.
type FetcherInterface interface {
	Run(ctx context.Context, url string) ([]byte, error)
}

var _ FetcherInterface = (*Fetcher)(nil)
