// Package source acquires the station XML feeds: it fetches them over HTTP,
// parses them into element trees and prunes unwanted nodes.
package source

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	resty "gopkg.in/resty.v1"
)

// DefaultMaxContentSize bounds a single feed download.
const DefaultMaxContentSize int64 = 64 << 20

// Fetcher downloads feed documents. It never retries.
type Fetcher struct {
	client         *resty.Client
	maxContentSize int64
	logger         *slog.Logger
}

// NewFetcher creates a fetcher. A zero timeout disables the client timeout
// and a non-positive maxContentSize falls back to DefaultMaxContentSize.
func NewFetcher(timeout time.Duration, userAgent string, maxContentSize int64, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	if maxContentSize <= 0 {
		maxContentSize = DefaultMaxContentSize
	}

	client := resty.New().
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(5)).
		SetHeader("Accept", "application/xml,text/xml;q=0.9,*/*;q=0.8")
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &Fetcher{
		client:         client,
		maxContentSize: maxContentSize,
		logger:         logger,
	}
}

// Fetch performs a GET on url with the given query parameters and returns
// the response body. Any non-2xx status is an error.
func (f *Fetcher) Fetch(ctx context.Context, url string, query map[string]string) ([]byte, error) {
	start := time.Now()

	req := f.client.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("fetch %s: HTTP %d: %s", url, resp.StatusCode(), http.StatusText(resp.StatusCode()))
	}

	body := resp.Body()
	if int64(len(body)) > f.maxContentSize {
		return nil, fmt.Errorf("fetch %s: content too large (exceeds %d bytes)", url, f.maxContentSize)
	}

	// Query parameters may carry credentials; only the bare URL is logged.
	f.logger.Debug("Fetched feed",
		"url", url,
		"bytes", len(body),
		"duration", time.Since(start))

	return body, nil
}
