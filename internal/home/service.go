// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package home

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/showcase/internal/platform/apperr"
)

// UnavailableMessage replaces the whole page when the document cannot be loaded.
const UnavailableMessage = "Failed to load content."

// Source loads raw documents by path.
type Source interface {
	Load(ctx context.Context, path string) ([]byte, error)
}

// Service renders the homepage from its content document.
type Service struct {
	source Source
	path   string
	logger *slog.Logger
}

// NewService constructs a [Service] for the document at path.
func NewService(source Source, path string, logger *slog.Logger) *Service {
	return &Service{source: source, path: path, logger: logger.With(slog.String("page", "home"))}
}

// Document loads and decodes the homepage document.
func (service *Service) Document(ctx context.Context) (Document, error) {
	body, err := service.source.Load(ctx, service.path)
	if err != nil {
		service.logger.ErrorContext(ctx, "page_content_load_failed", slog.String("path", service.path), slog.Any("error", err))
		return Document{}, apperr.ContentUnavailable(UnavailableMessage, err)
	}

	document, err := Decode(body)
	if err != nil {
		service.logger.ErrorContext(ctx, "page_content_decode_failed", slog.String("path", service.path), slog.Any("error", err))
		return Document{}, apperr.ContentUnavailable(UnavailableMessage, err)
	}

	return document, nil
}

// View renders the homepage.
func (service *Service) View(ctx context.Context) (View, error) {
	document, err := service.Document(ctx)
	if err != nil {
		return View{}, err
	}
	return document.Render(), nil
}

// Related returns the projects mapped to the skill called name.
func (service *Service) Related(ctx context.Context, name string) (Related, error) {
	document, err := service.Document(ctx)
	if err != nil {
		return Related{}, err
	}

	skill, ok := document.Skill(name)
	if !ok {
		return Related{}, apperr.NotFound("Skill")
	}

	return document.Related(skill), nil
}

// Check reports whether the homepage document can currently be loaded.
func (service *Service) Check(ctx context.Context) error {
	if _, err := service.Document(ctx); err != nil {
		return fmt.Errorf("home: %w", err)
	}
	return nil
}
