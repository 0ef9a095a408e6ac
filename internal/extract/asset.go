package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/avolkov/fnoltriage/internal/model"
)

// AssetExtractor extracts asset details. Unlike the other groups the asset
// type is a classification of the whole document, not a labeled capture,
// and the damage estimate is parsed into a float.
type AssetExtractor struct {
	rules     []Rule
	vehicleRE *regexp.Regexp
	propRE    *regexp.Regexp
	vinRE     *regexp.Regexp
	damage    []*regexp.Regexp
}

// NewAssetExtractor creates an asset extractor with its fallback chains.
func NewAssetExtractor() *AssetExtractor {
	return &AssetExtractor{
		rules: []Rule{
			{
				Key: model.FieldPlateNumber,
				Chain: []Pattern{
					pat(`(?i)PLATE\s+NUMBER[:\s]*([A-Z0-9-]+)`),
				},
			},
			{
				Key: model.FieldVehicleYear,
				Chain: []Pattern{
					pat(`(?i)(?:VEH\s*#\s*)?YEAR[:\s]*(\d{4})`),
				},
			},
			{
				Key: model.FieldVehicleMake,
				Chain: []Pattern{
					pat(`(?i)MAKE[:\s]*([A-Za-z0-9\s]+?)(?:\s+VEH|\s+YEAR|\s+MODEL|:|\n)`),
				},
				MaxLen: 30,
			},
			{
				Key: model.FieldVehicleModel,
				Chain: []Pattern{
					pat(`(?i)MODEL[:\s]*([A-Za-z0-9\s]+?)(?:\s+BODY|\s+TYPE|:|\n)`),
				},
				MaxLen: 30,
			},
			{
				Key: model.FieldBodyType,
				Chain: []Pattern{
					pat(`(?i)BODY[:\s]*([A-Za-z0-9\s]+?)(?:\s+MODEL|\s+TYPE|:|\n)`),
				},
				MaxLen: 30,
			},
			{
				Key: model.FieldDamageDescription,
				Chain: []Pattern{
					pat(`(?im)DESCRIBE\s+DAMAGE[:\s]*([^\n]+?)(?:\n[A-Z\s]+:|$)`),
					pat(`(?i)Damage\s+Description[:\s]*([^\n]+)`),
				},
				MinLen: 3,
			},
		},
		vehicleRE: regexp.MustCompile(`(?i)\b(?:AUTOMOBILE|VEHICLE|CAR|TRUCK|VAN|INSURED\s+VEHICLE)\b`),
		propRE:    regexp.MustCompile(`(?i)\b(?:PROPERTY|BUILDING|HOME|HOUSE)\b`),
		// VIN alphabet excludes I, O and Q.
		vinRE: regexp.MustCompile(`(?i)V\.?I\.?N\.?[:\s]*([A-HJ-NPR-Z0-9]{17})`),
		damage: []*regexp.Regexp{
			regexp.MustCompile(`(?i)ESTIMATE\s+AMOUNT[:\s]*\$?\s*([0-9,]+\.?\d*)`),
			regexp.MustCompile(`(?i)Estimated?\s+Damage[:\s]*\$?\s*([0-9,]+\.?\d*)`),
			regexp.MustCompile(`(?i)Damage\s+Estimate[:\s]*\$?\s*([0-9,]+\.?\d*)`),
			regexp.MustCompile(`(?i)\$\s*([0-9,]+\.?\d*)\s*(?:damage|estimate)`),
		},
	}
}

// Extract returns the asset fields found in text. asset_type is always
// present, defaulting to "Unknown".
func (e *AssetExtractor) Extract(text string) model.FieldMap {
	fields := apply(text, e.rules)

	switch {
	case e.vehicleRE.MatchString(text):
		fields[model.FieldAssetType] = model.AssetTypeVehicle
	case e.propRE.MatchString(text):
		fields[model.FieldAssetType] = model.AssetTypeProperty
	default:
		fields[model.FieldAssetType] = model.AssetTypeUnknown
	}

	if m := e.vinRE.FindStringSubmatch(text); m != nil {
		vin := strings.TrimSpace(m[1])
		fields[model.FieldVIN] = vin
		fields[model.FieldAssetID] = vin
	}

	if amount, ok := e.extractDamage(text); ok {
		fields[model.FieldEstimatedDamage] = amount
	}

	return fields
}

// extractDamage walks the damage-amount chain. A capture that parses to
// zero or fails to parse is discarded and the chain continues; the field
// stays absent when nothing yields a positive amount.
func (e *AssetExtractor) extractDamage(text string) (float64, bool) {
	for _, re := range e.damage {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		raw := strings.ReplaceAll(m[1], ",", "")
		raw = strings.ReplaceAll(raw, "$", "")

		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil || amount <= 0 {
			continue
		}
		return amount, true
	}
	return 0, false
}
