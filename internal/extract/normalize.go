package extract

import "strings"

// Collapse collapses runs of whitespace (including newlines) into single
// spaces and trims the result. Always returns a string, possibly empty.
func Collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TruncateWords keeps at most max words of s.
func TruncateWords(s string, max int) string {
	words := strings.Fields(s)
	if len(words) <= max {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:max], " ")
}

// TruncateChars keeps at most max bytes of s. Captured field text is ASCII
// label-and-value content, so byte truncation matches the historical cap.
func TruncateChars(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

// trimName cleans a captured person name: collapse whitespace, drop a
// trailing comma left by the label terminator.
func trimName(s string) string {
	return strings.TrimSpace(strings.TrimRight(Collapse(s), ","))
}
