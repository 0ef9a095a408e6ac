package validate

import (
	"reflect"
	"testing"

	"github.com/avolkov/fnoltriage/internal/model"
)

func TestValidator_Missing(t *testing.T) {
	validator := NewValidator(model.DefaultConfig().Routing.MandatoryFields)

	fields := model.FieldMap{
		model.FieldPolicyNumber:     "ABC-123",
		model.FieldPolicyholderName: "Jane Doe",
		model.FieldIncidentDate:     "01/02/2024",
		model.FieldIncidentLocation: "100 Main St",
		model.FieldClaimType:        "vehicle_damage",
		model.FieldAssetType:        model.AssetTypeVehicle,
	}

	if missing := validator.Missing(fields); len(missing) != 0 {
		t.Errorf("Missing = %v, want none", missing)
	}
}

func TestValidator_MissingPreservesDeclaredOrder(t *testing.T) {
	validator := NewValidator(model.DefaultConfig().Routing.MandatoryFields)

	// Only policyholder_name and asset_type present; the rest must come
	// back in the configured order, not map order.
	fields := model.FieldMap{
		model.FieldPolicyholderName: "Jane Doe",
		model.FieldAssetType:        model.AssetTypeVehicle,
	}

	want := []string{
		model.FieldPolicyNumber,
		model.FieldIncidentDate,
		model.FieldIncidentLocation,
		model.FieldClaimType,
	}

	if got := validator.Missing(fields); !reflect.DeepEqual(got, want) {
		t.Errorf("Missing = %v, want %v", got, want)
	}
}

func TestValidator_EmptyValueCountsAsMissing(t *testing.T) {
	validator := NewValidator([]string{model.FieldPolicyNumber})

	fields := model.FieldMap{model.FieldPolicyNumber: ""}

	got := validator.Missing(fields)
	if !reflect.DeepEqual(got, []string{model.FieldPolicyNumber}) {
		t.Errorf("Missing = %v, want [policy_number]", got)
	}
}

func TestValidator_NeverReturnsNil(t *testing.T) {
	validator := NewValidator(nil)

	if got := validator.Missing(model.FieldMap{}); got == nil {
		t.Error("Missing returned nil, want empty slice")
	}
}
