package pipeline

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avolkov/fnoltriage/internal/model"
)

func TestJSONPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"claim.txt", "claim_processed.json"},
		{filepath.Join("intake", "form.pdf"), filepath.Join("intake", "form_processed.json")},
		{"noext", "noext_processed.json"},
	}

	for _, tc := range cases {
		if got := JSONPath(tc.in); got != tc.want {
			t.Errorf("JSONPath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRenderer_RenderJSON(t *testing.T) {
	result := &model.ClaimResult{
		ExtractedFields:     model.FieldMap{model.FieldPolicyNumber: "ABC-123"},
		MissingFields:       []string{},
		RecommendedRoute:    model.RouteFastTrack,
		Reasoning:           "Estimated damage ($1,200.00) is below fast-track threshold ($25,000)",
		ProcessingTimestamp: "2024-01-02T03:04:05Z",
	}

	path := filepath.Join(t.TempDir(), "out.json")
	if err := NewRenderer().RenderJSON(result, path); err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasSuffix(data, []byte("\n")) {
		t.Error("JSON output missing trailing newline")
	}

	var decoded model.ClaimResult
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal written file: %v", err)
	}
	if decoded.RecommendedRoute != model.RouteFastTrack {
		t.Errorf("route = %q, want %q", decoded.RecommendedRoute, model.RouteFastTrack)
	}
}

func TestRenderer_RenderSummary(t *testing.T) {
	result := &model.ClaimResult{
		ExtractedFields: model.FieldMap{
			model.FieldPolicyNumber: "ABC-123",
			model.FieldAssetType:    model.AssetTypeVehicle,
		},
		MissingFields:    []string{model.FieldIncidentDate},
		RecommendedRoute: model.RouteManualReview,
		Reasoning:        "Missing mandatory fields: incident_date",
	}

	var buf bytes.Buffer
	NewRenderer().RenderSummary(result, &buf)
	out := buf.String()

	for _, want := range []string{
		"EXTRACTED FIELDS:",
		"policy_number: ABC-123",
		"VALIDATION:",
		"Missing fields: incident_date",
		"ROUTING DECISION:",
		"Route: Manual Review",
		"Reasoning: Missing mandatory fields: incident_date",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q\n%s", want, out)
		}
	}
}
