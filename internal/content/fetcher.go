// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package content fetches the JSON documents and the navigation fragment that
feed every page.

Core Responsibilities:

  - Fetch: one read-only GET per document, relative to a base URL.
  - Cache: fetched bytes are kept in an in-process LRU or in Redis so that
    query, facet and page changes never trigger a second fetch.
  - Decode: the document's list field becomes raw objects for the catalog.

There is no retry. A failed primary fetch is reported once to the caller;
the navigation fragment is best-effort and never fails a page.
*/
package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// maxDocumentBytes bounds a single fetched document.
const maxDocumentBytes = 4 << 20

// ErrUnavailable is wrapped by every fetch failure.
var ErrUnavailable = errors.New("content: document unavailable")

// Fetcher retrieves documents relative to a base URL.
type Fetcher struct {
	base   *url.URL
	client *http.Client
}

// NewFetcher validates baseURL and returns a [Fetcher]. A nil client uses
// [http.DefaultClient].
func NewFetcher(baseURL string, client *http.Client) (*Fetcher, error) {
	base, err := url.Parse(baseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("content: invalid base URL %q", baseURL)
	}

	// Relative paths resolve under the base path, not next to it.
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	if client == nil {
		client = http.DefaultClient
	}

	return &Fetcher{base: base, client: client}, nil
}

// URL resolves path against the base URL.
func (f *Fetcher) URL(path string) string {
	ref, err := url.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return f.base.String()
	}
	return f.base.ResolveReference(ref).String()
}

// Fetch performs a GET for path and returns the body.
//
// The only deadline is the one carried by ctx.
func (f *Fetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	target := f.URL(path)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request for %s: %w", ErrUnavailable, target, err)
	}

	response, err := f.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %w", ErrUnavailable, target, err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, fmt.Errorf("%w: get %s: status %d", ErrUnavailable, target, response.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(response.Body, maxDocumentBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrUnavailable, target, err)
	}
	if len(body) > maxDocumentBytes {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrUnavailable, target, maxDocumentBytes)
	}

	return body, nil
}
