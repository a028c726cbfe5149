package api

import (
	"context"

	"github.com/lysyi3m/feed-norm/app/feed"
)

type ProcessorInterface interface {
	Run(ctx context.Context, url string) feed.Result
}

var _ ProcessorInterface = (*feed.Processor)(nil)

type Handler struct {
	processor ProcessorInterface
	fetcher   feed.FetcherInterface
	extractor *feed.ContentExtractor
	sanitizer *feed.Sanitizer
}
