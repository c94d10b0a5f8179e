// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pages serves the filterable index pages (blog and projects) over HTTP.

One [Service] and one [Handler] exist per page; they differ only by the
[catalog.Options] preset they are built with.

Flow:

  - Load: the page document is read through the content loader (cached).
  - Evaluate: query, applied facets and page number select one page of cards.
  - Reduce: client-held selection state advances one intent at a time.

The server keeps no per-visitor state. Every request carries the full
selection state and gets back the next one.
*/
package pages

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/showcase/internal/catalog"
	"github.com/taibuivan/showcase/internal/content"
	"github.com/taibuivan/showcase/internal/platform/apperr"
)

// Source loads raw documents by path.
type Source interface {
	Load(ctx context.Context, path string) ([]byte, error)
}

// # Service Layer

// Service builds catalogs from one content document.
type Service struct {
	options catalog.Options
	source  Source
	path    string
	logger  *slog.Logger
}

// NewService constructs a [Service] for the document at path.
func NewService(options catalog.Options, source Source, path string, logger *slog.Logger) *Service {
	return &Service{
		options: options,
		source:  source,
		path:    path,
		logger:  logger.With(slog.String("page", options.Name)),
	}
}

// Options returns the preset the service was built with.
func (service *Service) Options() catalog.Options {
	return service.options
}

/*
Catalog loads and decodes the page document.

Description: A failed fetch or an undecodable document is the only fatal
condition. It is reported once as CONTENT_UNAVAILABLE carrying the page's
failure message. Malformed individual records never fail the load.

Returns:
  - *catalog.Catalog: Sorted records and the facet vocabulary
  - error: apperr.ContentUnavailable on fetch or decode failure
*/
func (service *Service) Catalog(ctx context.Context) (*catalog.Catalog, error) {
	body, err := service.source.Load(ctx, service.path)
	if err != nil {
		service.logger.ErrorContext(ctx, "page_content_load_failed", slog.String("path", service.path), slog.Any("error", err))
		return nil, apperr.ContentUnavailable(service.options.Unavailable, err)
	}

	raw, err := content.DecodeList(body, service.options.ListField)
	if err != nil {
		service.logger.ErrorContext(ctx, "page_content_decode_failed", slog.String("path", service.path), slog.Any("error", err))
		return nil, apperr.ContentUnavailable(service.options.Unavailable, err)
	}

	return catalog.FromRaw(service.options, raw), nil
}

// View renders state against a freshly loaded catalog.
func (service *Service) View(ctx context.Context, state catalog.State) (catalog.View, error) {
	c, err := service.Catalog(ctx)
	if err != nil {
		return catalog.View{}, err
	}
	return c.View(state), nil
}

// Facets returns the facet vocabulary of the visible records.
func (service *Service) Facets(ctx context.Context) ([]string, error) {
	c, err := service.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return c.Facets(), nil
}

// Transition is the outcome of one intent.
type Transition struct {
	State catalog.State `json:"state"`
	View  catalog.View  `json:"view"`
}

/*
Apply reduces intent onto state and renders the result.

The returned state carries the effective page number after clamping, so
the client can keep it for the next intent.
*/
func (service *Service) Apply(ctx context.Context, state catalog.State, intent catalog.Intent) (Transition, error) {
	c, err := service.Catalog(ctx)
	if err != nil {
		return Transition{}, err
	}

	next := catalog.Reduce(state, intent)
	result := c.Evaluate(next)

	return Transition{State: result.State, View: c.View(result.State)}, nil
}

// Check reports whether the page document can currently be loaded.
func (service *Service) Check(ctx context.Context) error {
	if _, err := service.Catalog(ctx); err != nil {
		return fmt.Errorf("%s: %w", service.options.Name, err)
	}
	return nil
}
