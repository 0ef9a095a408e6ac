package classify

import (
	"regexp"
	"strings"
)

// FraudDetector scans raw text for fraud indicators. The signal is binary:
// any keyword or suspicious phrase is enough.
type FraudDetector struct {
	keywords []string
	patterns []*regexp.Regexp
}

// NewFraudDetector compiles the detector from keyword and phrase-pattern
// lists. Malformed patterns are a configuration defect and panic.
func NewFraudDetector(keywords, patterns []string) *FraudDetector {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(p)
	}
	return &FraudDetector{
		keywords: lowerAll(keywords),
		patterns: compiled,
	}
}

// Detect reports whether text contains any fraud indicator. Matching is
// case-insensitive and substring-level.
func (d *FraudDetector) Detect(text string) bool {
	lower := strings.ToLower(text)

	if containsAny(lower, d.keywords) {
		return true
	}

	for _, re := range d.patterns {
		if re.MatchString(lower) {
			return true
		}
	}

	return false
}
