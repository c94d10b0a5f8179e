// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid generates time-ordered identifiers for request correlation.

Version 7 values sort by creation time (millisecond precision), so request
IDs in the logs line up with the order requests arrived in.
*/
package uuid

import "github.com/google/uuid"

// New returns a UUIDv7 string, or a random UUIDv4 if the clock-based
// generator fails.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
