// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"net/http"

	"github.com/taibuivan/showcase/internal/platform/respond"
)

// FragmentSource returns the navigation fragment, or "" when unavailable.
type FragmentSource interface {
	Fragment(ctx context.Context) string
}

// NewNavHandler serves GET /api/v1/nav. It always answers 200; an empty
// fragment leaves the page's placeholder untouched.
func NewNavHandler(source FragmentSource) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		respond.OK(writer, map[string]string{"html": source.Fragment(request.Context())})
	}
}
