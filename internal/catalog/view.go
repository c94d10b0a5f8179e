// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"fmt"
	"strings"

	"github.com/taibuivan/showcase/pkg/pagination"
	"github.com/taibuivan/showcase/pkg/slice"
	"github.com/taibuivan/showcase/pkg/slug"
)

// # View Model

// View is everything a renderer needs to draw one page of an index.
type View struct {
	Query         string               `json:"query"`
	Cards         []Card               `json:"cards"`
	Facets        []FacetOption        `json:"facets"`
	SelectorOpen  bool                 `json:"selector_open"`
	ResultsText   string               `json:"results_text"`
	ActiveFilters string               `json:"active_filters"`
	Pagination    []pagination.Control `json:"pagination"`
	Meta          pagination.Meta      `json:"meta"`

	// Location is the page URL with the effective page number, for a
	// replace-style history update.
	Location string `json:"location"`
}

// Card is one rendered record.
type Card struct {
	Title     string `json:"title"`
	Link      string `json:"link,omitempty"`
	Summary   string `json:"summary"`
	FacetLine string `json:"facet_line,omitempty"`
	DateLine  string `json:"date_line,omitempty"`
	Status    string `json:"status_line,omitempty"`

	ExternalLink  string `json:"external_link,omitempty"`
	ExternalLabel string `json:"external_label,omitempty"`

	Facets []string `json:"facets,omitempty"`
	Date   string   `json:"date,omitempty"`
}

// FacetOption is one checkbox of the facet selector. Checked mirrors the
// staged selection, not the applied one.
type FacetOption struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Checked bool   `json:"checked"`
}

// # Rendering

// Result is the filtered, sorted and paginated outcome of a [State].
type Result struct {
	Page  pagination.Page[Record]
	State State
}

// Evaluate runs the pipeline for state. The returned state carries the
// effective (clamped) page number.
func (c *Catalog) Evaluate(state State) Result {
	state = state.Normalize()

	filtered := c.Filter(state.Query, state.Applied)
	page := pagination.Paginate(filtered, state.Page, c.options.PageSize)
	state.Page = page.Page

	return Result{Page: page, State: state}
}

// View evaluates state and builds the view model.
func (c *Catalog) View(state State) View {
	result := c.Evaluate(state)
	state = result.State
	page := result.Page

	return View{
		Query:         state.Query,
		Cards:         slice.Map(page.Items, c.card),
		Facets:        c.facetOptions(state.Staged),
		SelectorOpen:  state.Open,
		ResultsText:   fmt.Sprintf("%d %s found", page.Total, c.options.plural(page.Total)),
		ActiveFilters: c.activeFilters(state),
		Pagination:    pagination.Controls(page.Page, page.TotalPages),
		Meta:          page.Meta(),
		Location:      pagination.WithPage(c.options.Path, page.Page),
	}
}

func (c *Catalog) card(record Record) Card {
	o := c.options

	card := Card{
		Title:   o.DisplayTitle(record),
		Link:    o.Link(record),
		Summary: record.Summary,
		Facets:  record.Facets,
		Date:    record.Recency,
	}

	if len(record.Facets) > 0 {
		card.FacetLine = o.FacetLabel + ": " + strings.Join(record.Facets, ", ")
	}

	if record.Recency != "" {
		card.DateLine = record.Recency
		if o.DateLabel != "" {
			card.DateLine = o.DateLabel + ": " + record.Recency
		}
	}

	if len(o.StatusPath) > 0 {
		if status := record.StringField(o.StatusPath...); status != "" {
			card.Status = o.StatusLabel + ": " + status
		}
	}

	if o.ExternalLinkField != "" {
		if href := record.StringField(o.ExternalLinkField); href != "" {
			card.ExternalLink = href
			card.ExternalLabel = o.ExternalLinkLabel
		}
	}

	return card
}

// facetOptions lists the selector checkboxes. Ids are unique within the view
// even when labels differ only in case or punctuation.
func (c *Catalog) facetOptions(staged FacetSet) []FacetOption {
	ids := slug.NewUnique()
	return slice.Map(c.facets, func(label string) FacetOption {
		return FacetOption{
			ID:      c.options.FacetIDPrefix + "_" + ids.From(label),
			Label:   label,
			Checked: staged.Has(label),
		}
	})
}

// activeFilters summarises the query and the applied facets, e.g.
// `Search: “go” • Skills: Go, SQL`.
func (c *Catalog) activeFilters(state State) string {
	var parts []string

	if q := strings.TrimSpace(state.Query); q != "" {
		parts = append(parts, "Search: “"+q+"”")
	}

	if len(state.Applied) > 0 {
		parts = append(parts, c.options.FacetLabel+": "+strings.Join(c.ordered(state.Applied), ", "))
	}

	return strings.Join(parts, " • ")
}

// ordered lists applied facets in vocabulary order, followed by any label the
// vocabulary does not know.
func (c *Catalog) ordered(applied FacetSet) []string {
	out := make([]string, 0, len(applied))
	known := FacetSet{}

	for _, label := range c.facets {
		if applied.Has(label) {
			out = append(out, label)
			known[label] = struct{}{}
		}
	}

	for _, label := range applied.Sorted() {
		if !known.Has(label) {
			out = append(out, label)
		}
	}

	return out
}
