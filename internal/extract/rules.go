// Package extract implements the FNOL field extractors: four independent
// groups (policy, incident, parties, asset), each an ordered table of
// fallback patterns. For a given field the first pattern whose capture
// survives normalization and the length guards wins; later patterns are
// never consulted. Extractors are pure functions of the raw text.
package extract

import (
	"regexp"

	"github.com/avolkov/fnoltriage/internal/model"
)

// Pattern is one alternative in a field's fallback chain.
type Pattern struct {
	RE *regexp.Regexp

	// Build assembles the field value from the submatches. When nil the
	// first capture group is used.
	Build func(m []string) string
}

// Rule maps a fallback chain to one target field.
type Rule struct {
	Key   string
	Chain []Pattern

	// Clean post-processes the value after whitespace normalization.
	Clean func(s string) string

	// MinLen discards captures of this length or shorter, moving on to
	// the next pattern in the chain. Zero means any non-empty capture.
	MinLen int

	// MaxLen discards captures of this length or longer (over-match
	// guard for short fields like make/model). Zero disables the guard.
	MaxLen int
}

// pat builds a chain entry that captures its first group.
func pat(expr string) Pattern {
	return Pattern{RE: regexp.MustCompile(expr)}
}

// patBuild builds a chain entry with a custom value assembler.
func patBuild(expr string, build func(m []string) string) Pattern {
	return Pattern{RE: regexp.MustCompile(expr), Build: build}
}

// apply evaluates rules against text and returns the fields that matched.
// Each rule's chain short-circuits on the first capture that passes its
// guards; a capture that fails a guard is discarded and the chain
// continues, never falling back to a previous pattern.
func apply(text string, rules []Rule) model.FieldMap {
	fields := make(model.FieldMap)

	for _, rule := range rules {
		for _, p := range rule.Chain {
			m := p.RE.FindStringSubmatch(text)
			if m == nil {
				continue
			}

			var value string
			if p.Build != nil {
				value = p.Build(m)
			} else {
				value = m[1]
			}

			value = Collapse(value)
			if rule.Clean != nil {
				value = rule.Clean(value)
			}

			if value == "" || len(value) <= rule.MinLen {
				continue
			}
			if rule.MaxLen > 0 && len(value) >= rule.MaxLen {
				continue
			}

			fields[rule.Key] = value
			break
		}
	}

	return fields
}
