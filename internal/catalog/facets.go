// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"encoding/json"
	"maps"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FacetSet is a deduplicated, case-sensitive set of facet labels.
//
// It marshals to a sorted JSON array so it can travel inside [State].
type FacetSet map[string]struct{}

// NewFacetSet builds a set from labels.
func NewFacetSet(labels ...string) FacetSet {
	set := make(FacetSet, len(labels))
	for _, label := range labels {
		if label != "" {
			set[label] = struct{}{}
		}
	}
	return set
}

// Has reports whether label is in the set.
func (s FacetSet) Has(label string) bool {
	_, ok := s[label]
	return ok
}

// Intersects reports whether any of labels is in the set. An empty set
// matches everything.
func (s FacetSet) Intersects(labels []string) bool {
	if len(s) == 0 {
		return true
	}
	for _, label := range labels {
		if s.Has(label) {
			return true
		}
	}
	return false
}

// Clone returns an independent copy. The copy of a nil set is empty, not nil.
func (s FacetSet) Clone() FacetSet {
	out := make(FacetSet, len(s))
	maps.Copy(out, s)
	return out
}

// With returns a copy of s with label added or removed.
func (s FacetSet) With(label string, present bool) FacetSet {
	out := s.Clone()
	if present {
		if label != "" {
			out[label] = struct{}{}
		}
	} else {
		delete(out, label)
	}
	return out
}

// Equal reports whether both sets hold the same labels.
func (s FacetSet) Equal(other FacetSet) bool {
	if len(s) != len(other) {
		return false
	}
	for label := range s {
		if !other.Has(label) {
			return false
		}
	}
	return true
}

// Sorted returns the labels in byte order.
func (s FacetSet) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

// MarshalJSON encodes the set as a sorted array.
func (s FacetSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes an array (or null) into the set.
func (s *FacetSet) UnmarshalJSON(data []byte) error {
	var labels []string
	if err := json.Unmarshal(data, &labels); err != nil {
		return err
	}
	*s = NewFacetSet(labels...)
	return nil
}

// # Facet Index

// BuildFacets collects every facet label of every visible record, removes
// duplicates and orders the result with a locale-aware collation.
//
// The index is computed once per load and does not follow the filtered
// subset, so the full vocabulary is always offered.
func BuildFacets(records []Record) []string {
	seen := FacetSet{}
	for _, record := range records {
		if !record.Visible {
			continue
		}
		for _, label := range record.Facets {
			seen[label] = struct{}{}
		}
	}

	facets := append([]string{}, seen.Sorted()...)
	collator := newCollator()
	slices.SortStableFunc(facets, collator.CompareString)

	return facets
}

// newCollator returns a fresh collator. A collator keeps internal buffers and
// must not be shared between goroutines.
func newCollator() *collate.Collator {
	return collate.New(language.Und)
}
