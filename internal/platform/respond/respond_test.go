// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/showcase/internal/platform/apperr"
	"github.com/taibuivan/showcase/internal/platform/respond"
	"github.com/taibuivan/showcase/pkg/pagination"
)

func TestPaginated(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.Paginated(rec, []string{"a"}, pagination.Meta{Page: 2, Limit: 1, Total: 3, TotalPages: 3})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":["a"],"meta":{"page":2,"limit":1,"total":3,"total_pages":3}}`, rec.Body.String())
}

func TestError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"app_error", apperr.NotFound("Skill"), http.StatusNotFound, "NOT_FOUND", "Skill not found"},
		{"content", apperr.ContentUnavailable("Failed to load blog posts.", errors.New("timeout")), http.StatusServiceUnavailable, "CONTENT_UNAVAILABLE", "Failed to load blog posts."},
		{"plain", errors.New("secret detail"), http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respond.Error(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body respond.ErrorEnvelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMsg, body.Error)
		})
	}
}
