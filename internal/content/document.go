// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"encoding/json"
	"fmt"
)

// DecodeList extracts the array stored under field of a JSON object document.
//
// A missing, null or non-array field yields an empty list, and entries that
// are not JSON objects are skipped. Only a document that is not a JSON object
// at all is an error.
func DecodeList(data []byte, field string) ([]map[string]any, error) {
	var document map[string]json.RawMessage
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("content: decode document: %w", err)
	}
	if document == nil {
		return nil, fmt.Errorf("content: decode document: not an object")
	}

	raw, ok := document[field]
	if !ok {
		return []map[string]any{}, nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return []map[string]any{}, nil
	}

	list := make([]map[string]any, 0, len(entries))
	for _, entry := range entries {
		var object map[string]any
		if err := json.Unmarshal(entry, &object); err != nil || object == nil {
			continue
		}
		list = append(list, object)
	}

	return list, nil
}
