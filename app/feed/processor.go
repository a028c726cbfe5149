package feed

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmcdole/gofeed"
)

// Processor runs the full normalization pipeline for one feed URL:
// fetch, parse, dialect detection, per-entry extraction, assembly.
// Stateless across requests and safe for concurrent use.
type Processor struct {
	fetcher   FetcherInterface
	parser    *gofeed.Parser
	extractor *Extractor
	maxItems  int
}

func NewProcessor(fetcher FetcherInterface, extractor *Extractor, maxItems int) *Processor {
	return &Processor{
		fetcher:   fetcher,
		parser:    gofeed.NewParser(),
		extractor: extractor,
		maxItems:  maxItems,
	}
}

// Run never returns an error: every failure mode, including panics from
// unexpected parser output, collapses into a failure Result so the caller
// always has a serializable response.
func (p *Processor) Run(ctx context.Context, url string) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Pipeline panic", "url", url, "panic", r)
			result = Failure("Unhandled exception", fmt.Sprintf("%v", r))
		}
	}()

	start := time.Now()

	data, err := p.fetcher.Run(ctx, url)
	if err != nil {
		slog.Warn("Feed fetch failed", "url", url, "error", err)
		return Failure("Fetch failed", err.Error())
	}

	parsed, err := p.parser.Parse(bytes.NewReader(data))
	if err != nil {
		slog.Warn("Feed parse failed", "url", url, "error", err)
		return Failure("Invalid or unreadable feed", err.Error())
	}

	dialect := DetectDialect(data)

	items := make([]Item, 0, p.maxItems)
	for _, entry := range parsed.Items {
		if len(items) >= p.maxItems {
			break
		}
		if entry == nil {
			continue
		}
		if item, ok := p.extractor.Run(entry, dialect); ok {
			items = append(items, item)
		}
	}

	slog.Debug("Feed processed",
		"url", url,
		"dialect", dialect,
		"bytes", len(data),
		"items", len(items),
		"duration", time.Since(start))

	return Result{
		Success: true,
		Payload: &Payload{
			Feed:  Info{Title: parsed.Title, Link: resolveFeedLink(parsed)},
			Count: len(items),
			Items: items,
		},
	}
}

// resolveFeedLink picks the feed-level link. gofeed's Atom translator has
// already resolved the rel="alternate" link into Link. The fallback scan
// over Links has no rel information left to inspect, so it approximates
// the alternate-rel scan by skipping the feed's self reference (FeedLink).
func resolveFeedLink(f *gofeed.Feed) string {
	if f.Link != "" {
		return f.Link
	}
	for _, link := range f.Links {
		if link != "" && link != f.FeedLink {
			return link
		}
	}
	return ""
}
