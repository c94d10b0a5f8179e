// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/showcase/internal/catalog"
)

func record(title, recency string, strategy catalog.ParseStrategy, facets ...string) catalog.Record {
	return catalog.Record{
		Title:   title,
		Facets:  facets,
		Recency: recency,
		Key:     strategy.Key(recency),
		Visible: true,
	}
}

// # Recency keys

func TestParseStrategy_YearMonth(t *testing.T) {
	tests := []struct {
		raw  string
		ok   bool
		want int64
	}{
		{"2024-03", true, 202403},
		{"1999-12", true, 199912},
		{"2024-13", false, 0},
		{"2024-00", false, 0},
		{"2024-3", false, 0},
		{"2024-03-01", false, 0},
		{" 2024-03", false, 0},
		{"", false, 0},
	}

	for _, tt := range tests {
		key := catalog.ParseYearMonth.Key(tt.raw)
		assert.Equal(t, tt.ok, key.OK, "raw=%q", tt.raw)
		assert.Equal(t, tt.want, key.Value, "raw=%q", tt.raw)
	}
}

func TestParseStrategy_Date(t *testing.T) {
	for _, raw := range []string{"2024-03-15", "2024-03-15T10:00:00Z", "2024-03-15T10:00:00", "2024-03", "2024"} {
		assert.True(t, catalog.ParseDate.Key(raw).OK, "raw=%q", raw)
	}

	for _, raw := range []string{"", "yesterday", "15/03/2024"} {
		assert.False(t, catalog.ParseDate.Key(raw).OK, "raw=%q", raw)
	}

	later := catalog.ParseDate.Key("2024-03-15T10:00:00Z")
	earlier := catalog.ParseDate.Key("2024-03-15")
	assert.Greater(t, later.Value, earlier.Value)
}

// # Sort comparator

func TestSort_MissingDatesLast(t *testing.T) {
	input := []catalog.Record{
		record("Zeta", "", catalog.ParseYearMonth),
		record("Old", "2019-01", catalog.ParseYearMonth),
		record("Alpha", "not a date", catalog.ParseYearMonth),
		record("New", "2024-06", catalog.ParseYearMonth),
		record("Mid", "2021-06", catalog.ParseYearMonth),
	}

	sorted := catalog.Sort(input)
	assert.Equal(t, []string{"New", "Mid", "Old", "Alpha", "Zeta"}, titles(sorted))

	// input untouched
	assert.Equal(t, "Zeta", input[0].Title)
}

func TestSort_TieBreaksByTitle(t *testing.T) {
	sorted := catalog.Sort([]catalog.Record{
		record("Beta", "2024-01", catalog.ParseYearMonth),
		record("alpha", "2024-01", catalog.ParseYearMonth),
		record("Gamma", "2024-02", catalog.ParseYearMonth),
	})

	assert.Equal(t, []string{"Gamma", "alpha", "Beta"}, titles(sorted))
}

func TestSort_Stable(t *testing.T) {
	first := record("Same", "2024-01", catalog.ParseYearMonth)
	first.Position = 0
	second := record("Same", "2024-01", catalog.ParseYearMonth)
	second.Position = 1
	undatedA := record("Same", "", catalog.ParseYearMonth)
	undatedA.Position = 2
	undatedB := record("Same", "", catalog.ParseYearMonth)
	undatedB.Position = 3

	sorted := catalog.Sort([]catalog.Record{first, undatedA, second, undatedB})

	positions := make([]int, 0, len(sorted))
	for _, r := range sorted {
		positions = append(positions, r.Position)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, positions)
}

func TestComparator_Compare(t *testing.T) {
	c := catalog.NewComparator()

	dated := record("B", "2024-01", catalog.ParseYearMonth)
	undated := record("A", "", catalog.ParseYearMonth)

	assert.Negative(t, c.Compare(dated, undated))
	assert.Positive(t, c.Compare(undated, dated))
	assert.Zero(t, c.Compare(dated, dated))
}

// # Filter predicate

func TestMatches_FacetSemantics(t *testing.T) {
	r := record("Thing", "", catalog.ParseDate, "go", "sql")

	tests := []struct {
		name    string
		applied catalog.FacetSet
		want    bool
	}{
		{"nil_set", nil, true},
		{"empty_set", catalog.FacetSet{}, true},
		{"one_shared", catalog.NewFacetSet("sql", "rust"), true},
		{"none_shared", catalog.NewFacetSet("rust", "zig"), false},
		{"case_sensitive", catalog.NewFacetSet("Go"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.Matches(r, "", tt.applied))
		})
	}

	untagged := record("Bare", "", catalog.ParseDate)
	assert.False(t, catalog.Matches(untagged, "", catalog.NewFacetSet("go")))
}

func TestMatches_QueryCaseAndWhitespace(t *testing.T) {
	r := catalog.Record{
		Title:   "Distributed Cache",
		Summary: "An LRU in front of Redis",
		Facets:  []string{"Go"},
		Visible: true,
	}

	for _, q := range []string{"redis", "REDIS", "  Redis  ", "\tredis\n"} {
		assert.True(t, catalog.Matches(r, q, nil), "q=%q", q)
	}
	for _, q := range []string{"postgres", "  POSTGRES "} {
		assert.False(t, catalog.Matches(r, q, nil), "q=%q", q)
	}

	assert.True(t, catalog.Matches(r, "   ", nil))
	assert.True(t, catalog.Matches(r, "cache an", nil), "title and summary are space-joined")
	assert.True(t, catalog.Matches(r, "redis go", nil), "summary and facets are space-joined")
}

func TestMatches_VisibilityFirst(t *testing.T) {
	r := record("Hidden", "", catalog.ParseDate, "go")
	r.Visible = false

	assert.False(t, catalog.Matches(r, "", nil))
	assert.False(t, catalog.Matches(r, "hidden", catalog.NewFacetSet("go")))
}

// # Facet index

func TestBuildFacets(t *testing.T) {
	hidden := record("H", "", catalog.ParseDate, "internal")
	hidden.Visible = false

	facets := catalog.BuildFacets([]catalog.Record{
		record("A", "", catalog.ParseDate, "sql", "Go"),
		record("B", "", catalog.ParseDate, "go", "sql"),
		record("C", "", catalog.ParseDate),
		hidden,
	})

	require.Len(t, facets, 3)
	assert.ElementsMatch(t, []string{"go", "Go", "sql"}, facets)
	assert.Equal(t, "sql", facets[2])
	assert.NotContains(t, facets, "internal")

	assert.NotNil(t, catalog.BuildFacets(nil))
}

func TestFacetSet_JSON(t *testing.T) {
	data, err := json.Marshal(catalog.NewFacetSet("b", "a"))
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, string(data))

	var decoded catalog.FacetSet
	require.NoError(t, json.Unmarshal([]byte(`["x","x","y"]`), &decoded))
	assert.True(t, decoded.Equal(catalog.NewFacetSet("x", "y")))

	require.NoError(t, json.Unmarshal([]byte(`null`), &decoded))
	assert.Empty(t, decoded)
}
