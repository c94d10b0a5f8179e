// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/showcase/pkg/pagination"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

/*
TestTotalPages verifies totalPages == max(1, ceil(N/S)).
*/
func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, limit, want int
	}{
		{0, 20, 1},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{3, 1, 3},
		{5, 0, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, pagination.TotalPages(tt.total, tt.limit), "total=%d limit=%d", tt.total, tt.limit)
	}
}

/*
TestPaginate_Reconstructs checks that walking every page yields each item exactly once, in order.
*/
func TestPaginate_Reconstructs(t *testing.T) {
	for _, n := range []int{0, 1, 7, 20, 41} {
		for _, size := range []int{1, 3, 20} {
			items := seq(n)
			first := pagination.Paginate(items, 1, size)

			var rebuilt []int
			for p := 1; p <= first.TotalPages; p++ {
				rebuilt = append(rebuilt, pagination.Paginate(items, p, size).Items...)
			}

			if n == 0 {
				assert.Empty(t, rebuilt)
				continue
			}
			assert.Equal(t, items, rebuilt, "n=%d size=%d", n, size)
		}
	}
}

/*
TestPaginate_Clamping covers zero, negative and beyond-range requests.
*/
func TestPaginate_Clamping(t *testing.T) {
	items := seq(45)

	firstPage := pagination.Paginate(items, 1, 20)
	lastPage := pagination.Paginate(items, 3, 20)

	assert.Equal(t, firstPage, pagination.Paginate(items, 0, 20))
	assert.Equal(t, firstPage, pagination.Paginate(items, -7, 20))
	assert.Equal(t, lastPage, pagination.Paginate(items, 4, 20))
	assert.Equal(t, lastPage, pagination.Paginate(items, 999, 20))

	assert.Equal(t, 3, lastPage.Page)
	assert.Equal(t, []int{40, 41, 42, 43, 44}, lastPage.Items)
}

func TestPaginate_EmptyList(t *testing.T) {
	page := pagination.Paginate([]string{}, 5, 10)

	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.TotalPages)
	assert.Empty(t, page.Items)
	assert.Equal(t, pagination.Meta{Page: 1, Limit: 10, Total: 0, TotalPages: 1}, page.Meta())
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 1},
		{"abc", 1},
		{"0", 1},
		{"-3", 1},
		{"2", 2},
		{" 4 ", 4},
		{"2.9", 2},
		{"NaN", 1},
		{"Inf", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, pagination.ParsePage(tt.raw), "raw=%q", tt.raw)
	}
}

func TestFromRequest(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/projects?page=3&q=go", nil)
	assert.Equal(t, 3, pagination.FromRequest(req))

	req = httptest.NewRequest("GET", "/api/v1/projects", nil)
	assert.Equal(t, 1, pagination.FromRequest(req))
}

func TestWithPage(t *testing.T) {
	assert.Equal(t, "/projects/?page=2", pagination.WithPage("/projects/", 2))
	assert.Equal(t, "/projects/?page=1&q=go", pagination.WithPage("/projects/?q=go&page=9", 1))
}

/*
TestControls_Window checks the windowed strip with ellipses on both sides.
*/
func TestControls_Window(t *testing.T) {
	controls := pagination.Controls(6, 12)

	labels := make([]string, 0, len(controls))
	for _, c := range controls {
		labels = append(labels, c.Label)
	}

	assert.Equal(t, []string{"Prev", "1", "…", "4", "5", "6", "7", "8", "…", "12", "Next"}, labels)

	for _, c := range controls {
		if c.Kind == pagination.ControlPage && c.Target == 6 {
			assert.True(t, c.Current)
		}
	}
}

func TestControls_Edges(t *testing.T) {
	assert.Nil(t, pagination.Controls(1, 1))

	first := pagination.Controls(1, 3)
	require.Len(t, first, 5)
	assert.True(t, first[0].Disabled)
	assert.False(t, first[len(first)-1].Disabled)
	assert.Equal(t, 2, first[len(first)-1].Target)

	last := pagination.Controls(7, 7)
	assert.True(t, last[len(last)-1].Disabled)
	// window 3..7 preceded by "1" and an ellipsis
	assert.Equal(t, "1", last[1].Label)
	assert.Equal(t, pagination.ControlEllipsis, last[2].Kind)
	assert.Equal(t, "3", last[3].Label)

	// adjacent first page needs no ellipsis
	near := pagination.Controls(4, 7)
	assert.Equal(t, "1", near[1].Label)
	assert.Equal(t, "2", near[2].Label)
}
