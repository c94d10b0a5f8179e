// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package constants_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/showcase/internal/platform/constants"
)

func TestServerTiming_Ordering(t *testing.T) {
	assert.Less(t, constants.ContentFetchTimeout, constants.GlobalRequestTimeout,
		"a slow fetch must fail before the request deadline")
	assert.Less(t, constants.GlobalRequestTimeout, constants.DefaultWriteTimeout,
		"the response must be writable after the request deadline")
	assert.Less(t, constants.ReadinessTimeout, constants.DefaultWriteTimeout)
}
