// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"context"
	"log/slog"
)

// Loader is a read-through cache in front of a [Fetcher].
type Loader struct {
	fetcher *Fetcher
	cache   Cache
	logger  *slog.Logger
}

// NewLoader wires a fetcher and a cache. A nil cache disables caching.
func NewLoader(fetcher *Fetcher, cache Cache, logger *slog.Logger) *Loader {
	return &Loader{fetcher: fetcher, cache: cache, logger: logger}
}

// Load returns the document at path, fetching it only on a cache miss.
//
// Cache errors are logged and treated as misses; they never fail a load.
func (l *Loader) Load(ctx context.Context, path string) ([]byte, error) {
	key := l.fetcher.URL(path)

	if l.cache != nil {
		body, ok, err := l.cache.Get(ctx, key)
		if err != nil {
			l.logger.WarnContext(ctx, "content_cache_get_failed", slog.String("key", key), slog.Any("error", err))
		}
		if ok {
			return body, nil
		}
	}

	body, err := l.fetcher.Fetch(ctx, path)
	if err != nil {
		return nil, err
	}

	l.logger.DebugContext(ctx, "content_fetched", slog.String("url", key), slog.Int("bytes", len(body)))

	if l.cache != nil {
		if err := l.cache.Set(ctx, key, body); err != nil {
			l.logger.WarnContext(ctx, "content_cache_set_failed", slog.String("key", key), slog.Any("error", err))
		}
	}

	return body, nil
}
