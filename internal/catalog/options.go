// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "fmt"

// DefaultPublishedValue is the status a record is assumed to have when its
// status field is absent or falsy.
const DefaultPublishedValue = "published"

// VisibilityRule selects how VisibilityField is read.
type VisibilityRule int

const (
	// AlwaysVisible ignores VisibilityField.
	AlwaysVisible VisibilityRule = iota

	// PublishedOnly shows a record whose field, after falsy values (absent,
	// null, false, "", 0) fall back to PublishedValue, is exactly the string
	// PublishedValue.
	PublishedOnly

	// HiddenWhenFalse hides a record only when the field is the boolean false.
	HiddenWhenFalse
)

// Options describes how one page maps its JSON records onto the generic
// pipeline.
type Options struct {
	// Name identifies the page in logs and cache keys ("blog", "projects").
	Name string

	// ListField is the top-level document field holding the records.
	ListField string

	TitleField   string
	FacetField   string
	RecencyField string
	Parse        ParseStrategy

	// VisibilityField is read according to Visibility. PublishedValue
	// defaults to DefaultPublishedValue.
	VisibilityField string
	Visibility      VisibilityRule
	PublishedValue  string

	// LinkPattern builds the detail link from the slug, e.g. "./%s/".
	LinkPattern string

	// Path is the page location that carries the page query parameter.
	Path string

	PageSize int

	// Presentation
	Noun          string
	FacetLabel    string
	FacetIDPrefix string
	DateLabel     string
	Untitled      string

	// Unavailable is shown in place of the list when the document cannot be
	// loaded.
	Unavailable string

	// Optional extras rendered on each card.
	StatusPath        []string
	StatusLabel       string
	ExternalLinkField string
	ExternalLinkLabel string
}

// BlogOptions is the preset for the blog index.
//
// The canonical post shape uses "date" as the recency field and "./<slug>/"
// as the detail link.
func BlogOptions(pageSize int) Options {
	return Options{
		Name:            "blog",
		ListField:       "posts",
		TitleField:      "title",
		FacetField:      "tags",
		RecencyField:    "date",
		Parse:           ParseDate,
		VisibilityField: "status",
		Visibility:      PublishedOnly,
		PublishedValue:  DefaultPublishedValue,
		LinkPattern:     "./%s/",
		Path:            "/blog/",
		PageSize:        pageSize,
		Noun:            "post",
		FacetLabel:      "Tags",
		FacetIDPrefix:   "tag",
		Untitled:        "Untitled Post",
		Unavailable:     "Failed to load blog posts.",
	}
}

// ProjectOptions is the preset for the projects index.
func ProjectOptions(pageSize int) Options {
	return Options{
		Name:              "projects",
		ListField:         "projects",
		TitleField:        "name",
		FacetField:        "skills",
		RecencyField:      "created",
		Parse:             ParseYearMonth,
		VisibilityField:   "showOnProjectsPage",
		Visibility:        HiddenWhenFalse,
		LinkPattern:       "./%s/index.html",
		Path:              "/projects/",
		PageSize:          pageSize,
		Noun:              "project",
		FacetLabel:        "Skills",
		FacetIDPrefix:     "skill",
		DateLabel:         "Created",
		Untitled:          "Untitled Project",
		Unavailable:       "Could not load projects.",
		StatusPath:        []string{"demo", "status"},
		StatusLabel:       "Demo",
		ExternalLinkField: "github",
		ExternalLinkLabel: "GitHub",
	}
}

// Decode turns one raw JSON object into a [Record].
//
// Malformed or missing fields fall back to defaults (empty summary, no
// facets, no recency key) instead of failing.
func (o Options) Decode(position int, raw map[string]any) Record {
	recency := stringValue(raw[o.RecencyField])

	return Record{
		Position: position,
		Slug:     stringValue(raw["slug"]),
		Title:    stringValue(raw[o.TitleField]),
		Summary:  stringValue(raw["summary"]),
		Facets:   labels(raw[o.FacetField]),
		Recency:  recency,
		Key:      o.Parse.Key(recency),
		Visible:  o.visible(raw),
		Fields:   raw,
	}
}

// DecodeAll decodes every raw object in order.
func (o Options) DecodeAll(raw []map[string]any) []Record {
	records := make([]Record, 0, len(raw))
	for i, object := range raw {
		records = append(records, o.Decode(i, object))
	}
	return records
}

func (o Options) visible(raw map[string]any) bool {
	if o.VisibilityField == "" {
		return true
	}

	value := raw[o.VisibilityField]

	switch o.Visibility {
	case PublishedOnly:
		published := o.PublishedValue
		if published == "" {
			published = DefaultPublishedValue
		}
		if falsy(value) {
			return true
		}
		s, ok := value.(string)
		return ok && s == published
	case HiddenWhenFalse:
		b, ok := value.(bool)
		return !ok || b
	default:
		return true
	}
}

// falsy reports whether a decoded JSON value is absent, null, false, "" or 0.
func falsy(v any) bool {
	switch v := v.(type) {
	case nil:
		return true
	case bool:
		return !v
	case string:
		return v == ""
	case float64:
		return v == 0
	default:
		return false
	}
}

// Link returns the detail-page link for r, or "" when r has no slug.
func (o Options) Link(r Record) string {
	if r.Slug == "" || o.LinkPattern == "" {
		return ""
	}
	return fmt.Sprintf(o.LinkPattern, r.Slug)
}

// DisplayTitle falls back to the slug and then to the untitled placeholder.
func (o Options) DisplayTitle(r Record) string {
	switch {
	case r.Title != "":
		return r.Title
	case r.Slug != "":
		return r.Slug
	default:
		return o.Untitled
	}
}

// plural returns the noun for count items.
func (o Options) plural(count int) string {
	if count == 1 {
		return o.Noun
	}
	return o.Noun + "s"
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

// labels stringifies every non-empty entry of a JSON array.
func labels(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		label := fmt.Sprint(item)
		if label != "" {
			out = append(out, label)
		}
	}
	return out
}
