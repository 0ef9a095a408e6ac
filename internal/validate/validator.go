// Package validate checks extracted claims for completeness against the
// mandatory-field set.
package validate

import "github.com/avolkov/fnoltriage/internal/model"

// Validator checks FieldMaps for missing mandatory fields.
type Validator struct {
	mandatory []string
}

// NewValidator creates a validator over the configured mandatory fields.
// The declared order is preserved; it fixes the order of MissingFields and
// therefore the wording of the Manual Review reasoning.
func NewValidator(mandatory []string) *Validator {
	return &Validator{mandatory: mandatory}
}

// Missing returns the mandatory fields that are absent or empty, in the
// declared order. The result is never nil so an empty list serializes as
// [] rather than null.
func (v *Validator) Missing(fields model.FieldMap) []string {
	missing := []string{}
	for _, field := range v.mandatory {
		if !fields.Has(field) {
			missing = append(missing, field)
		}
	}
	return missing
}
