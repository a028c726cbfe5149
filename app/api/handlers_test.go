package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lysyi3m/feed-norm/app/feed"
)

type fakeProcessor struct {
	result feed.Result
	gotURL string
}

func (p *fakeProcessor) Run(ctx context.Context, url string) feed.Result {
	p.gotURL = url
	return p.result
}

func newTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/feed", h.GetFeed)
	return r
}

func TestGetFeedMissingURL(t *testing.T) {
	handler := NewHandler(&fakeProcessor{}, nil, nil, nil)
	router := newTestRouter(handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/feed", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got: %d", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Expected JSON body, got error: %v", err)
	}
	if success, ok := body["success"].(bool); !ok || success {
		t.Errorf("Expected success false, got: %v", body["success"])
	}
}

func TestGetFeedSuccess(t *testing.T) {
	processor := &fakeProcessor{
		result: feed.Result{
			Success: true,
			Payload: &feed.Payload{
				Feed:  feed.Info{Title: "Test Feed", Link: "https://example.com"},
				Count: 1,
				Items: []feed.Item{{
					Title:      "Item",
					Link:       "https://example.com/item",
					Author:     "Unknown",
					Content:    "text",
					Categories: []string{},
				}},
			},
		},
	}
	handler := NewHandler(processor, nil, nil, nil)
	router := newTestRouter(handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/feed?url=https://example.com/feed.xml", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got: %d", w.Code)
	}
	if processor.gotURL != "https://example.com/feed.xml" {
		t.Errorf("Expected processor called with request URL, got: %q", processor.gotURL)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Expected JSON body, got error: %v", err)
	}
	if success, _ := body["success"].(bool); !success {
		t.Errorf("Expected success true, got: %v", body["success"])
	}
	if count, _ := body["count"].(float64); count != 1 {
		t.Errorf("Expected count 1, got: %v", body["count"])
	}
	if _, ok := body["error"]; ok {
		t.Error("Expected no error field on success")
	}
}

func TestGetFeedFailureShape(t *testing.T) {
	processor := &fakeProcessor{
		result: feed.Failure("Fetch failed", "HTTP 404: Not Found"),
	}
	handler := NewHandler(processor, nil, nil, nil)
	router := newTestRouter(handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/feed?url=https://example.com/feed.xml", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got: %d", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Expected JSON body, got error: %v", err)
	}
	if success, _ := body["success"].(bool); success {
		t.Error("Expected success false")
	}
	if body["error"] != "Fetch failed" {
		t.Errorf("Expected error 'Fetch failed', got: %v", body["error"])
	}
	if body["details"] != "HTTP 404: Not Found" {
		t.Errorf("Expected details with HTTP status, got: %v", body["details"])
	}
	for _, absent := range []string{"feed", "count", "items"} {
		if _, ok := body[absent]; ok {
			t.Errorf("Expected %q absent from failure response", absent)
		}
	}
}
