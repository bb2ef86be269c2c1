package phrases

import "strings"

// FilterFunc returns true when a phrase should be kept.
type FilterFunc func(string) bool

// NotBlank keeps phrases with visible content.
func NotBlank(phrase string) bool {
	return strings.TrimSpace(phrase) != ""
}

// Filter returns the phrases accepted by keep, trimmed of surrounding space.
func Filter(list []string, keep FilterFunc) []string {
	out := make([]string, 0, len(list))
	for _, phrase := range list {
		phrase = strings.TrimSpace(phrase)
		if !keep(phrase) {
			continue
		}
		out = append(out, phrase)
	}
	return out
}
