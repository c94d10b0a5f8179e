// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"context"
	"log/slog"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// NavLoader serves the shared navigation fragment.
type NavLoader struct {
	loader *Loader
	path   string
	policy *bluemonday.Policy
	logger *slog.Logger
}

// NewNavLoader sanitizes the fragment with a UGC policy before it is handed
// to the page, so the placeholder never receives scripts or handlers.
func NewNavLoader(loader *Loader, path string, logger *slog.Logger) *NavLoader {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class", "id", "aria-label", "aria-current").Globally()
	policy.AllowElements("nav", "header", "ul", "li")

	return &NavLoader{loader: loader, path: path, policy: policy, logger: logger}
}

// Fragment returns the sanitized fragment, or "" when it cannot be fetched.
func (n *NavLoader) Fragment(ctx context.Context) string {
	body, err := n.loader.Load(ctx, n.path)
	if err != nil {
		n.logger.DebugContext(ctx, "nav_fetch_ignored", slog.Any("error", err))
		return ""
	}
	return strings.TrimSpace(n.policy.Sanitize(string(body)))
}
