// Package mention extracts @username candidates from tweet text. Extraction
// is purely lexical; resolving names against real users happens in the
// service layer.
package mention

import "regexp"

var pattern = regexp.MustCompile(`@(\w+)`)

// Extract returns the usernames mentioned in text with the leading @
// stripped, in order of first appearance. Repeats are kept as-is.
func Extract(text string) []string {
	matches := pattern.FindAllStringSubmatch(text, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}
