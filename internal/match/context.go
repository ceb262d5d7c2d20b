package match

import "strings"

// DefaultWindow is the number of context characters kept on each side
// of a match.
const DefaultWindow = 50

const (
	ellipsis   = "..."
	boldMarker = "**"
)

// BuildContext extracts a bounded snippet around the first
// case-insensitive occurrence of query in text, wrapping the matched
// span in bold markers and marking truncation with ellipses. When the
// query does not occur, the head of the text is returned instead.
func BuildContext(text, query string, window int) string {
	if window <= 0 {
		window = DefaultWindow
	}

	idx := -1
	if query != "" {
		idx = strings.Index(strings.ToLower(text), strings.ToLower(query))
	}
	if idx < 0 {
		if len(text) <= 2*window {
			return text
		}
		return text[:2*window] + ellipsis
	}

	start := idx - window
	if start < 0 {
		start = 0
	}
	end := idx + len(query) + window
	if end > len(text) {
		end = len(text)
	}

	var b strings.Builder
	if start > 0 {
		b.WriteString(ellipsis)
	}
	b.WriteString(text[start:idx])
	b.WriteString(boldMarker)
	b.WriteString(text[idx : idx+len(query)])
	b.WriteString(boldMarker)
	b.WriteString(text[idx+len(query) : end])
	if end < len(text) {
		b.WriteString(ellipsis)
	}
	return b.String()
}
