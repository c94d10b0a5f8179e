// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for paginated lists.
//
// # Overview
//
// It standardizes how a requested page number is read from the query string,
// how an ordered list is sliced into a bounded page, and how the resulting
// metadata is delivered in the API response envelope.
//
// # Clamping
//
// Invalid input never produces an error. Non-numeric, zero, or negative page
// numbers become [DefaultPage]; pages beyond the last one become the last page.
package pagination

import (
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 20
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
	// PageParam is the query parameter that carries the page number.
	PageParam = "page"
)

// Page is a single window over an ordered list.
type Page[T any] struct {
	Items      []T
	Page       int
	TotalPages int
	Total      int
	Limit      int
}

// Meta returns the envelope metadata describing p.
func (p Page[T]) Meta() Meta {
	return Meta{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// TotalPages returns max(1, ceil(total/limit)).
func TotalPages(total, limit int) int {
	if limit < 1 {
		limit = DefaultLimit
	}
	pages := (total + limit - 1) / limit
	if pages < 1 {
		return 1
	}
	return pages
}

// Clamp forces page into [1, totalPages].
func Clamp(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Paginate slices items into the requested page.
//
// The requested page is clamped into range, so a non-empty list never yields
// an empty page. A non-positive limit falls back to [DefaultLimit]. The
// returned Items shares the backing array of items.
func Paginate[T any](items []T, requested, limit int) Page[T] {
	if limit < 1 {
		limit = DefaultLimit
	}

	totalPages := TotalPages(len(items), limit)
	page := Clamp(requested, totalPages)

	start := (page - 1) * limit
	end := min(start+limit, len(items))
	if start > end {
		start = end
	}

	return Page[T]{
		Items:      items[start:end],
		Page:       page,
		TotalPages: totalPages,
		Total:      len(items),
		Limit:      limit,
	}
}

// ParsePage converts a raw page parameter into a page number.
//
// Fractional values are floored. Anything that is empty, non-numeric, not
// finite, or below one returns [DefaultPage].
func ParsePage(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultPage
	}

	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n < 1 {
		return DefaultPage
	}

	if n > math.MaxInt32 {
		return math.MaxInt32
	}

	return int(math.Floor(n))
}

// FromQuery reads the page parameter from a parsed query string.
func FromQuery(values url.Values) int {
	return ParsePage(values.Get(PageParam))
}

// FromRequest reads the page parameter from an HTTP request.
func FromRequest(r *http.Request) int {
	return FromQuery(r.URL.Query())
}

// WithPage returns location with its page parameter set to page.
//
// Other query parameters are preserved. The result is meant for a
// replace-style navigation on the client, so only the path and query are
// returned.
func WithPage(location string, page int) string {
	u, err := url.Parse(location)
	if err != nil {
		u = &url.URL{}
	}

	values := u.Query()
	values.Set(PageParam, strconv.Itoa(page))

	return u.Path + "?" + values.Encode()
}
