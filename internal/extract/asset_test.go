package extract

import (
	"testing"

	"github.com/avolkov/fnoltriage/internal/model"
)

func TestAssetExtractor_AssetType(t *testing.T) {
	extractor := NewAssetExtractor()

	cases := []struct {
		name string
		text string
		want string
	}{
		{"vehicle keyword", "DAMAGE TO INSURED VEHICLE\n", model.AssetTypeVehicle},
		{"truck keyword", "the truck rolled into a ditch\n", model.AssetTypeVehicle},
		{"property keyword", "water leak in the building basement\n", model.AssetTypeProperty},
		{"vehicle beats property", "the VEHICLE rolled into the BUILDING\n", model.AssetTypeVehicle},
		{"no keyword", "no relevant wording here\n", model.AssetTypeUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fields := extractor.Extract(tc.text)
			if got := fields.GetString(model.FieldAssetType); got != tc.want {
				t.Errorf("asset_type = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestAssetExtractor_VINFillsBothKeys(t *testing.T) {
	extractor := NewAssetExtractor()

	fields := extractor.Extract("V.I.N.: 1HGBH41JXMN109186\n")
	if got := fields.GetString(model.FieldVIN); got != "1HGBH41JXMN109186" {
		t.Errorf("vin = %q, want %q", got, "1HGBH41JXMN109186")
	}
	if got := fields.GetString(model.FieldAssetID); got != "1HGBH41JXMN109186" {
		t.Errorf("asset_id = %q, want %q", got, "1HGBH41JXMN109186")
	}
}

func TestAssetExtractor_VehicleDetails(t *testing.T) {
	extractor := NewAssetExtractor()

	text := "PLATE NUMBER: ABC-1234\nYEAR: 2019 MAKE: Toyota MODEL: Corolla\n"

	fields := extractor.Extract(text)
	if got := fields.GetString(model.FieldPlateNumber); got != "ABC-1234" {
		t.Errorf("plate_number = %q, want %q", got, "ABC-1234")
	}
	if got := fields.GetString(model.FieldVehicleYear); got != "2019" {
		t.Errorf("vehicle_year = %q, want %q", got, "2019")
	}
	if got := fields.GetString(model.FieldVehicleMake); got != "Toyota" {
		t.Errorf("vehicle_make = %q, want %q", got, "Toyota")
	}
	if got := fields.GetString(model.FieldVehicleModel); got != "Corolla" {
		t.Errorf("vehicle_model = %q, want %q", got, "Corolla")
	}
}

func TestAssetExtractor_DamageAmount(t *testing.T) {
	extractor := NewAssetExtractor()

	cases := []struct {
		name string
		text string
		want float64
	}{
		{"acord estimate label", "ESTIMATE AMOUNT: $1,200.00\n", 1200},
		{"estimated damage label", "Estimated Damage: $500\n", 500},
		{"damage estimate label", "Damage Estimate: 98765.43\n", 98765.43},
		{"amount before keyword", "roughly $2,500 damage to the rear panel\n", 2500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fields := extractor.Extract(tc.text)
			got, ok := fields.Damage()
			if !ok {
				t.Fatalf("estimated_damage absent, want %v", tc.want)
			}
			if got != tc.want {
				t.Errorf("estimated_damage = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAssetExtractor_ZeroDamageFallsThrough(t *testing.T) {
	extractor := NewAssetExtractor()

	// The first label parses to zero; the chain must continue to the next
	// pattern instead of recording the zero.
	text := "ESTIMATE AMOUNT: $0.00\nEstimated Damage: $500\n"

	fields := extractor.Extract(text)
	got, ok := fields.Damage()
	if !ok {
		t.Fatal("estimated_damage absent, want 500")
	}
	if got != 500 {
		t.Errorf("estimated_damage = %v, want 500", got)
	}
}

func TestAssetExtractor_ZeroDamageOnlyStaysAbsent(t *testing.T) {
	extractor := NewAssetExtractor()

	fields := extractor.Extract("ESTIMATE AMOUNT: $0\n")
	if _, ok := fields.Damage(); ok {
		t.Error("expected no estimated_damage for a zero-only amount")
	}
}

func TestAssetExtractor_DamageDescription(t *testing.T) {
	extractor := NewAssetExtractor()

	fields := extractor.Extract("DESCRIBE DAMAGE: front fender bent\nPOLICE REPORT: no\n")
	if got := fields.GetString(model.FieldDamageDescription); got != "front fender bent" {
		t.Errorf("damage_description = %q, want %q", got, "front fender bent")
	}
}
