package service

import (
	"sort"
	"strings"
)

// distinctSorted returns the unique non-empty values in ascending order.
func distinctSorted(vals []string) []string {
	seen := make(map[string]struct{}, len(vals))
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// containsFold reports whether s contains substr, case-insensitively.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// stripDots removes the dot separators from an HTS code.
func stripDots(code string) string {
	return strings.ReplaceAll(code, ".", "")
}
