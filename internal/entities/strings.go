package entities

import "strings"

// normalizeKey lower-cases and trims a lookup key
func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// containsFold reports whether list contains s, case-insensitively
func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}
