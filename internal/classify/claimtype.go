// Package classify derives the claim type and the fraud signal from the
// raw document text. Both are deterministic keyword scans; there is no
// scoring and no confidence.
package classify

import (
	"strings"

	"github.com/avolkov/fnoltriage/internal/model"
)

// ClaimTypeClassifier assigns a single claim-type label using a fixed
// priority order. Injury indicators dominate everything else.
type ClaimTypeClassifier struct {
	injuryKeywords    []string
	collisionKeywords []string
}

// NewClaimTypeClassifier creates a classifier from the routing config.
func NewClaimTypeClassifier(cfg model.RoutingConfig) *ClaimTypeClassifier {
	return &ClaimTypeClassifier{
		injuryKeywords:    lowerAll(cfg.InjuryKeywords),
		collisionKeywords: lowerAll(cfg.CollisionKeywords),
	}
}

// Classify determines the claim type from the raw text and the fields
// extracted so far (it needs asset_type). Evaluated top to bottom, first
// match wins:
//
//  1. injury keyword in text     -> injury
//  2. property asset             -> property_damage
//  3. vehicle + collision word   -> vehicle_collision
//  4. vehicle otherwise          -> vehicle_damage
//  5. anything else              -> general
func (c *ClaimTypeClassifier) Classify(text string, fields model.FieldMap) model.ClaimType {
	lower := strings.ToLower(text)

	if containsAny(lower, c.injuryKeywords) {
		return model.ClaimTypeInjury
	}

	assetType := strings.ToLower(fields.GetString(model.FieldAssetType))

	if strings.Contains(assetType, "property") {
		return model.ClaimTypePropertyDamage
	}

	if strings.Contains(assetType, "vehicle") || strings.Contains(lower, "automobile") {
		if containsAny(lower, c.collisionKeywords) {
			return model.ClaimTypeVehicleCollision
		}
		return model.ClaimTypeVehicleDamage
	}

	return model.ClaimTypeGeneral
}

// containsAny reports whether any keyword occurs in s as a substring.
func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func lowerAll(keywords []string) []string {
	out := make([]string, len(keywords))
	for i, kw := range keywords {
		out[i] = strings.ToLower(kw)
	}
	return out
}
