// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog implements the filter, sort and paginate pipeline behind the
blog and projects indexes.

One generic component serves both pages. Page differences (which field holds
the title, the facets and the date, how the date is parsed, and which field
hides a record) live in [Options], not in separate implementations.

Pipeline:

  - Decode: raw JSON objects become immutable [Record] values.
  - Index: the facet vocabulary and the recency order are computed once per load.
  - Filter: [Matches] combines the free-text query with the applied facets.
  - Paginate: the ordered, filtered list is sliced into one bounded page.
  - View: [Catalog.View] turns a [State] into a renderer-agnostic view model.

Everything in this package is pure. State changes are expressed as intents
reduced by [Reduce], which returns a new [State] and never mutates its input.
*/
package catalog

import (
	"regexp"
	"strconv"
	"time"
)

// # Recency Keys

// ParseStrategy selects how a record's date or period string becomes a
// [RecencyKey].
type ParseStrategy string

const (
	// ParseDate accepts full timestamps and ISO dates (blog posts).
	ParseDate ParseStrategy = "date"

	// ParseYearMonth accepts only the strict "YYYY-MM" period form (projects).
	ParseYearMonth ParseStrategy = "yearMonth"
)

// IsValid reports whether s is a recognised [ParseStrategy].
func (s ParseStrategy) IsValid() bool {
	return s == ParseDate || s == ParseYearMonth
}

// RecencyKey is the comparable value derived from a record's date field.
// A zero RecencyKey (OK == false) means the record has no usable date.
type RecencyKey struct {
	Value int64
	OK    bool
}

var yearMonthPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// dateLayouts are tried in order by [ParseDate].
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	"2006-01",
	"2006",
}

// Key parses raw according to s.
func (s ParseStrategy) Key(raw string) RecencyKey {
	if raw == "" {
		return RecencyKey{}
	}

	switch s {
	case ParseYearMonth:
		return yearMonthKey(raw)
	default:
		return dateKey(raw)
	}
}

func dateKey(raw string) RecencyKey {
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return RecencyKey{Value: ts.UnixMilli(), OK: true}
		}
	}
	return RecencyKey{}
}

// yearMonthKey returns year*100+month for "YYYY-MM" with a month in 1..12.
func yearMonthKey(raw string) RecencyKey {
	m := yearMonthPattern.FindStringSubmatch(raw)
	if m == nil {
		return RecencyKey{}
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return RecencyKey{}
	}

	return RecencyKey{Value: int64(year*100 + month), OK: true}
}

// # Records

// Record is one content item (a post or a project) after decoding.
//
// Records are immutable once a [Catalog] is built. Identity is the position in
// the fetched list; there is no update or delete within a session.
type Record struct {
	Position int
	Slug     string
	Title    string
	Summary  string
	Facets   []string
	Recency  string
	Key      RecencyKey
	Visible  bool

	// Fields keeps the raw object for page-specific extras (links, status).
	Fields map[string]any
}

// Field returns the raw value at the given path of nested object keys.
func (r Record) Field(path ...string) (any, bool) {
	var current any = r.Fields
	for _, key := range path {
		object, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		if current, ok = object[key]; !ok {
			return nil, false
		}
	}
	return current, current != nil
}

// StringField is [Record.Field] restricted to string values.
func (r Record) StringField(path ...string) string {
	value, ok := r.Field(path...)
	if !ok {
		return ""
	}
	s, _ := value.(string)
	return s
}
