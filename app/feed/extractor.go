package feed

import (
	"strings"

	"github.com/mmcdole/gofeed"
)

// UnknownAuthor is the sentinel used when no author can be resolved for an
// entry. Applied uniformly across both dialects.
const UnknownAuthor = "Unknown"

type candidate func(*gofeed.Item) string

// Per-dialect ordered fallback chains for author resolution. The first
// candidate yielding a non-empty value wins.
var authorChains = map[Dialect][]candidate{
	DialectAtom: {
		func(it *gofeed.Item) string {
			if it.Author != nil {
				return it.Author.Name
			}
			return ""
		},
		func(it *gofeed.Item) string {
			if len(it.Authors) > 0 && it.Authors[0] != nil {
				return it.Authors[0].Name
			}
			return ""
		},
	},
	DialectRSS: {
		func(it *gofeed.Item) string {
			if it.Author != nil {
				return it.Author.Name
			}
			return ""
		},
		func(it *gofeed.Item) string {
			if it.DublinCoreExt != nil && len(it.DublinCoreExt.Creator) > 0 {
				return it.DublinCoreExt.Creator[0]
			}
			return ""
		},
	},
}

// Content fallback chain: content wins over summary/description. gofeed
// maps both the Atom summary and the RSS description onto Description, so
// a single chain covers both dialects.
var contentChain = []candidate{
	func(it *gofeed.Item) string { return it.Content },
	func(it *gofeed.Item) string { return it.Description },
}

// Extractor turns one parsed feed entry into a normalized item.
type Extractor struct {
	sanitizer        *Sanitizer
	contentExtractor *ContentExtractor
}

func NewExtractor() *Extractor {
	return &Extractor{
		sanitizer:        NewSanitizer(),
		contentExtractor: NewContentExtractor(),
	}
}

// Run normalizes a single entry. The second return value is false when the
// entry fails the inclusion gate: title and link are mandatory, everything
// else degrades to an empty value or the author sentinel.
func (e *Extractor) Run(item *gofeed.Item, dialect Dialect) (Item, bool) {
	title := strings.TrimSpace(item.Title)
	link := strings.TrimSpace(item.Link)
	if title == "" || link == "" {
		return Item{}, false
	}

	normalized := Item{
		Title:      title,
		Link:       link,
		Author:     e.resolveAuthor(item, dialect),
		Published:  normalizeDate(item.PublishedParsed, item.Published),
		Updated:    normalizeDate(item.UpdatedParsed, item.Updated),
		Content:    e.resolveContent(item),
		Categories: resolveCategories(item),
	}

	return normalized, true
}

func (e *Extractor) resolveAuthor(item *gofeed.Item, dialect Dialect) string {
	for _, c := range authorChains[dialect] {
		if v := strings.TrimSpace(c(item)); v != "" {
			return v
		}
	}
	return UnknownAuthor
}

func (e *Extractor) resolveContent(item *gofeed.Item) string {
	var raw string
	for _, c := range contentChain {
		if v := c(item); strings.TrimSpace(v) != "" {
			raw = v
			break
		}
	}
	if raw == "" {
		return ""
	}

	// Some feeds ship an entire HTML page as content. Isolate the article
	// portion first so boilerplate does not survive sanitization.
	if isFullDocument(raw) {
		if _, content, err := e.contentExtractor.Run([]byte(raw)); err == nil {
			raw = content
		}
	}

	return e.sanitizer.Run(raw)
}

// resolveCategories preserves document order and duplicates. gofeed has
// already dropped term-less tags at parse time.
func resolveCategories(item *gofeed.Item) []string {
	if item.Categories == nil {
		return []string{}
	}
	return item.Categories
}

func isFullDocument(content string) bool {
	lower := strings.ToLower(content)
	return strings.Contains(lower, "<!doctype") || strings.Contains(lower, "<html")
}
