// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "strings"

// Matches reports whether record passes the visibility test, the free-text
// query and the applied facet set.
//
// Visibility is checked first. An empty or whitespace query passes. Otherwise
// the trimmed, lowercased query must be a substring of the lowercased title,
// summary and facet labels joined by spaces. An empty facet set passes;
// otherwise one shared facet is enough (OR semantics).
func Matches(record Record, query string, applied FacetSet) bool {
	if !record.Visible {
		return false
	}
	return matchesQuery(record, query) && applied.Intersects(record.Facets)
}

// Normalize trims and lowercases a query.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

func matchesQuery(record Record, query string) bool {
	q := Normalize(query)
	if q == "" {
		return true
	}
	return strings.Contains(haystack(record), q)
}

func haystack(record Record) string {
	return strings.ToLower(strings.Join([]string{
		record.Title,
		record.Summary,
		strings.Join(record.Facets, " "),
	}, " "))
}
