package assembly

import "strings"

// clauseBoundaries are the characters a clip may end on, in preference
// order: sentence enders first, then clause separators.
var clauseBoundaries = []string{". ", "; ", ", "}

// ClipText shortens text to at most max characters, cutting at the nearest
// sentence or clause boundary before the limit. When no boundary exists it
// falls back to the last word boundary, so output is never cut mid-word.
func ClipText(text string, max int) string {
	if max <= 0 || len(text) <= max {
		return text
	}

	window := text[:max]
	for _, boundary := range clauseBoundaries {
		if idx := strings.LastIndex(window, boundary); idx > 0 {
			return strings.TrimRight(window[:idx+1], " ")
		}
	}

	if idx := strings.LastIndex(window, " "); idx > 0 {
		return window[:idx]
	}
	return window
}
