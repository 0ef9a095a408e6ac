package model

// Field names form a fixed vocabulary shared by the extractors, the
// validator and the routing engine. Keys are absent from a FieldMap when
// extraction found nothing; they are never stored with an empty value.
const (
	FieldPolicyNumber        = "policy_number"
	FieldPolicyholderName    = "policyholder_name"
	FieldEffectiveDate       = "effective_date"
	FieldIncidentDate        = "incident_date"
	FieldIncidentTime        = "incident_time"
	FieldIncidentLocation    = "incident_location"
	FieldCityStateZip        = "city_state_zip"
	FieldCountry             = "country"
	FieldIncidentDescription = "incident_description"
	FieldClaimantName        = "claimant_name"
	FieldDriverName          = "driver_name"
	FieldOwnerName           = "owner_name"
	FieldContactPhone        = "contact_phone"
	FieldContactEmail        = "contact_email"
	FieldAssetType           = "asset_type"
	FieldAssetID             = "asset_id"
	FieldVIN                 = "vin"
	FieldPlateNumber         = "plate_number"
	FieldVehicleMake         = "vehicle_make"
	FieldVehicleModel        = "vehicle_model"
	FieldVehicleYear         = "vehicle_year"
	FieldBodyType            = "body_type"
	FieldEstimatedDamage     = "estimated_damage"
	FieldDamageDescription   = "damage_description"
	FieldClaimType           = "claim_type"
)

// Asset type labels produced by the asset classifier
const (
	AssetTypeVehicle  = "Vehicle"
	AssetTypeProperty = "Property"
	AssetTypeUnknown  = "Unknown"
)

// ClaimType categorizes the nature of the claim
type ClaimType string

const (
	ClaimTypeInjury           ClaimType = "injury"            // Injury indicators present in the document
	ClaimTypePropertyDamage   ClaimType = "property_damage"   // Property asset, no injury
	ClaimTypeVehicleCollision ClaimType = "vehicle_collision" // Vehicle asset with collision indicators
	ClaimTypeVehicleDamage    ClaimType = "vehicle_damage"    // Vehicle asset, no collision indicators
	ClaimTypeGeneral          ClaimType = "general"           // Nothing more specific matched
)

// FieldMap holds extracted claim fields keyed by field name. Values are
// strings except estimated_damage, which is stored as a float64.
type FieldMap map[string]interface{}

// GetString returns the string value for a key, or "" when the key is
// absent or holds a non-string value.
func (f FieldMap) GetString(key string) string {
	if v, ok := f[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Damage returns the estimated damage amount and whether one was extracted.
func (f FieldMap) Damage() (float64, bool) {
	v, ok := f[FieldEstimatedDamage]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

// Has reports whether a field is present with a non-empty value.
func (f FieldMap) Has(key string) bool {
	v, ok := f[key]
	if !ok {
		return false
	}
	if s, isStr := v.(string); isStr {
		return s != ""
	}
	return true
}

// Merge copies all entries from other into f. Later groups win on key
// collisions, matching the order the extractor groups run in.
func (f FieldMap) Merge(other FieldMap) {
	for k, v := range other {
		f[k] = v
	}
}
