package components

import (
	"encoding/json"
)

// JSON marshals an object to a JSON string, returning "{}" on error
func JSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// HXHeaders encodes extra request headers for an hx-headers attribute.
// Empty values are dropped.
func HXHeaders(headers map[string]string) string {
	clean := make(map[string]string, len(headers))
	for k, v := range headers {
		if v != "" {
			clean[k] = v
		}
	}
	return JSON(clean)
}
