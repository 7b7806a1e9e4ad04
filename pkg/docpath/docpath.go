// Package docpath resolves dotted and indexed property paths against decoded
// CouchDB documents (map[string]any trees with []any collections).
package docpath

import (
	"strconv"
	"strings"
)

// Parse splits a textual path like "author.tags[0].name" into its segments.
// Bracketed indices become their own numeric segments.
func Parse(path string) []string {
	clean := strings.TrimSpace(path)
	if clean == "" {
		return nil
	}
	replacer := strings.NewReplacer("[", ".", "]", "")
	clean = strings.Trim(replacer.Replace(clean), ".")

	parts := strings.Split(clean, ".")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if segment := strings.TrimSpace(part); segment != "" {
			out = append(out, segment)
		}
	}
	return out
}

// Resolve walks the document along the given segments. Map segments index
// into map[string]any values; numeric segments index into []any values. The
// second return is false when any hop is missing or of the wrong shape.
func Resolve(doc map[string]any, segments ...string) (any, bool) {
	if len(segments) == 0 {
		return nil, false
	}
	var current any = doc
	for _, segment := range segments {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return nil, false
			}
			current = value
		case []any:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			current = node[idx]
		default:
			return nil, false
		}
	}
	return current, true
}
