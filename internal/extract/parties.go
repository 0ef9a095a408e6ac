package extract

import (
	"strings"

	"github.com/avolkov/fnoltriage/internal/model"
)

// PartiesExtractor extracts the people involved in the claim and their
// contact details.
type PartiesExtractor struct {
	rules []Rule
}

// NewPartiesExtractor creates a parties extractor with its fallback chains.
func NewPartiesExtractor() *PartiesExtractor {
	return &PartiesExtractor{
		rules: []Rule{
			{
				Key: model.FieldClaimantName,
				Chain: []Pattern{
					pat(`(?i)(?:Claimant|Insured)[:\s]+([A-Za-z\s,]+?)(?:\n|PHONE)`),
				},
				Clean:  trimName,
				MinLen: 2,
			},
			{
				Key: model.FieldDriverName,
				Chain: []Pattern{
					pat(`(?i)DRIVER'S\s+NAME\s+AND\s+ADDRESS[:\s]*([^\n]+)`),
					pat(`(?i)Driver[:\s]+([A-Za-z\s,\.]+?)(?:\n|PHONE|ADDRESS)`),
				},
				Clean:  trimName,
				MinLen: 2,
			},
			{
				Key: model.FieldOwnerName,
				Chain: []Pattern{
					pat(`(?i)OWNER'S\s+NAME\s+AND\s+ADDRESS[:\s]*([^\n]+)`),
					pat(`(?i)Owner[:\s]+([A-Za-z\s,\.]+?)(?:\n|PHONE)`),
				},
				Clean:  trimName,
				MinLen: 2,
			},
			{
				Key: model.FieldContactPhone,
				Chain: []Pattern{
					// (?s) lets the label and number sit on different lines,
					// as on multi-column ACORD forms.
					pat(`(?is)(?:PHONE|Tel|Contact).*?(\d{3}[-.\s]?\d{3}[-.\s]?\d{4})`),
				},
				Clean: canonicalPhone,
			},
			{
				Key: model.FieldContactEmail,
				Chain: []Pattern{
					pat(`(?i)E-?MAIL\s*ADDRESS[:\s]*([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`),
					pat(`(?i)E-?MAIL[:\s]*([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`),
				},
			},
		},
	}
}

// Extract returns the party fields found in text.
func (e *PartiesExtractor) Extract(text string) model.FieldMap {
	return apply(text, e.rules)
}

// canonicalPhone strips separators, leaving the canonical 10-digit form.
func canonicalPhone(s string) string {
	r := strings.NewReplacer("-", "", ".", "", " ", "")
	return r.Replace(s)
}
