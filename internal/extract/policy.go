package extract

import "github.com/avolkov/fnoltriage/internal/model"

// PolicyExtractor extracts policy-related fields: policy number,
// policyholder name and the optional effective date.
type PolicyExtractor struct {
	rules []Rule
}

// NewPolicyExtractor creates a policy extractor with its fallback chains.
func NewPolicyExtractor() *PolicyExtractor {
	return &PolicyExtractor{
		rules: []Rule{
			{
				Key: model.FieldPolicyNumber,
				Chain: []Pattern{
					pat(`(?i)POLICY\s*NUMBER[:\s]*([A-Z0-9-]+)`),
					pat(`(?i)Policy\s*#[:\s]*([A-Z0-9-]+)`),
					pat(`(?i)POL(?:ICY)?\s*NO\.?[:\s]*([A-Z0-9-]+)`),
				},
			},
			{
				Key: model.FieldPolicyholderName,
				Chain: []Pattern{
					pat(`(?i)NAME\s+OF\s+INSURED\s*\([^)]+\)[:\s]*([A-Za-z\s,\.]+?)(?:\n|INSURED)`),
					pat(`(?i)INSURED[:\s]+([A-Za-z\s,\.]+?)(?:\n|MAILING|ADDRESS)`),
					pat(`(?i)Policyholder[:\s]+([A-Za-z\s,\.]+?)\n`),
					pat(`(?i)Insured\s*Name[:\s]*([A-Za-z\s,\.]+?)\n`),
				},
				Clean:  trimName,
				MinLen: 2,
			},
			{
				Key: model.FieldEffectiveDate,
				Chain: []Pattern{
					pat(`(?i)Effective\s+Date[:\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
					pat(`(?i)Policy\s+Date[:\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
				},
			},
		},
	}
}

// Extract returns the policy fields found in text.
func (e *PolicyExtractor) Extract(text string) model.FieldMap {
	return apply(text, e.rules)
}
