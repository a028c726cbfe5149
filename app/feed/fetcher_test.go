package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestFetcherSendsIdentityHeaders(t *testing.T) {
	var gotUserAgent, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte("<rss></rss>"))
	}))
	defer server.Close()

	fetcher := NewFetcher("Test Browser/1.0", 5*time.Second)
	data, err := fetcher.Run(context.Background(), server.URL)

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if string(data) != "<rss></rss>" {
		t.Errorf("Unexpected body: %q", data)
	}
	if gotUserAgent != "Test Browser/1.0" {
		t.Errorf("Expected configured user agent, got: %q", gotUserAgent)
	}
	if !strings.Contains(gotAccept, "application/rss+xml") || !strings.Contains(gotAccept, "application/atom+xml") {
		t.Errorf("Expected Accept header prioritizing feed types, got: %q", gotAccept)
	}
}

func TestFetcherHTTPErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	fetcher := NewFetcher("Test Browser/1.0", 5*time.Second)
	_, err := fetcher.Run(context.Background(), server.URL)

	if err == nil {
		t.Fatal("Expected error for 404 response")
	}

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("Expected FetchError, got: %T", err)
	}
	if fetchErr.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status code 404, got: %d", fetchErr.StatusCode)
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("Expected error message referencing status, got: %q", err.Error())
	}
}

func TestFetcherEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	fetcher := NewFetcher("Test Browser/1.0", 5*time.Second)
	_, err := fetcher.Run(context.Background(), server.URL)

	if err == nil {
		t.Fatal("Expected error for empty response body")
	}
}

func TestFetcherTransportError(t *testing.T) {
	fetcher := NewFetcher("Test Browser/1.0", 1*time.Second)

	// Closed server: connection refused
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := fetcher.Run(context.Background(), url)
	if err == nil {
		t.Fatal("Expected transport error")
	}
}

func TestFetcherContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
		w.Write([]byte("<rss></rss>"))
	}))
	defer server.Close()

	fetcher := NewFetcher("Test Browser/1.0", 10*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := fetcher.Run(ctx, server.URL)
	if err == nil {
		t.Fatal("Expected error after context cancellation")
	}
}
