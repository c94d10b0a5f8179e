// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/showcase/internal/platform/apperr"
)

func TestContentUnavailable_KeepsCause(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := fmt.Errorf("load projects: %w", apperr.ContentUnavailable("Could not load projects.", cause))

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusServiceUnavailable, ae.HTTPStatus)
	assert.Equal(t, "CONTENT_UNAVAILABLE", ae.Code)
	assert.Equal(t, "Could not load projects.", ae.Error())
	assert.ErrorIs(t, err, cause)
}

func TestAs_PlainError(t *testing.T) {
	assert.Nil(t, apperr.As(errors.New("boom")))
}
