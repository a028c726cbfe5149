package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lysyi3m/feed-norm/app/cfg"
	"github.com/lysyi3m/feed-norm/app/feed"
)

func NewHandler(processor ProcessorInterface, fetcher feed.FetcherInterface,
	extractor *feed.ContentExtractor, sanitizer *feed.Sanitizer) *Handler {
	return &Handler{
		processor: processor,
		fetcher:   fetcher,
		extractor: extractor,
		sanitizer: sanitizer,
	}
}

// GetFeed runs the normalization pipeline for the requested URL. The
// response is always 200 with a JSON body; callers distinguish outcomes
// solely by the success flag.
func (h *Handler) GetFeed(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, feed.Failure("Missing parameter", "url query parameter is required"))
		return
	}

	result := h.processor.Run(c.Request.Context(), url)

	c.JSON(http.StatusOK, result)
}

// GetExtract fetches an arbitrary page and returns its readable portion as
// plain text.
func (h *Handler) GetExtract(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, feed.Failure("Missing parameter", "url query parameter is required"))
		return
	}

	data, err := h.fetcher.Run(c.Request.Context(), url)
	if err != nil {
		c.JSON(http.StatusOK, feed.Failure("Fetch failed", err.Error()))
		return
	}

	title, content, err := h.extractor.Run(data)
	if err != nil {
		c.JSON(http.StatusOK, feed.Failure("Extraction failed", err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"title":   title,
		"content": h.sanitizer.Run(content),
	})
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"version":   cfg.Get().Version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
