// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
)

// Comparator orders records newest first.
//
// A Comparator owns a collator and is not safe for concurrent use; create one
// per sort.
type Comparator struct {
	collator *collate.Collator
}

// NewComparator returns a comparator with a locale-aware title collation.
func NewComparator() *Comparator {
	return &Comparator{collator: newCollator()}
}

// Compare returns a negative number when a sorts before b.
//
// Records with a recency key come first, larger (more recent) keys before
// smaller ones. Records without a key go last. Any tie falls back to the
// title in ascending order.
func (c *Comparator) Compare(a, b Record) int {
	switch {
	case a.Key.OK && !b.Key.OK:
		return -1
	case !a.Key.OK && b.Key.OK:
		return 1
	case a.Key.OK && b.Key.OK:
		if byKey := cmp.Compare(b.Key.Value, a.Key.Value); byKey != 0 {
			return byKey
		}
	}
	return c.collator.CompareString(a.Title, b.Title)
}

// Sort returns a newly allocated, stably sorted copy of records.
func (c *Comparator) Sort(records []Record) []Record {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, c.Compare)
	return sorted
}

// Sort orders records with a fresh [Comparator].
func Sort(records []Record) []Record {
	return NewComparator().Sort(records)
}
