// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"slices"

	"github.com/taibuivan/showcase/pkg/slice"
)

// Catalog is the record store of one page: the decoded records of a single
// fetch, already in recency order, plus the facet vocabulary.
//
// A Catalog is immutable after [New] and safe to share between goroutines.
type Catalog struct {
	options Options
	records []Record
	facets  []string
}

// New orders records by recency and builds the facet index.
func New(options Options, records []Record) *Catalog {
	return &Catalog{
		options: options,
		records: Sort(records),
		facets:  BuildFacets(records),
	}
}

// FromRaw decodes raw JSON objects with options and builds a [Catalog].
func FromRaw(options Options, raw []map[string]any) *Catalog {
	return New(options, options.DecodeAll(raw))
}

// Options returns the page configuration.
func (c *Catalog) Options() Options {
	return c.options
}

// Records returns a copy of every record (hidden ones included) in recency
// order.
func (c *Catalog) Records() []Record {
	return slices.Clone(c.records)
}

// Facets returns a copy of the facet vocabulary.
func (c *Catalog) Facets() []string {
	return slices.Clone(c.facets)
}

// Visible returns the number of records that pass the visibility test.
func (c *Catalog) Visible() int {
	return slice.Count(c.records, func(record Record) bool { return record.Visible })
}

// Filter returns the visible records matching query and applied, in recency
// order.
func (c *Catalog) Filter(query string, applied FacetSet) []Record {
	matched := slice.Filter(c.records, func(record Record) bool {
		return Matches(record, query, applied)
	})
	if matched == nil {
		return []Record{}
	}
	return matched
}
