package llm

import (
	"strings"
	"testing"

	"github.com/avolkov/fnoltriage/internal/model"
)

func TestBuildPrompt(t *testing.T) {
	result := model.ClaimResult{
		ExtractedFields: model.FieldMap{
			model.FieldPolicyNumber:    "ABC-123",
			model.FieldEstimatedDamage: 1200.0,
		},
		MissingFields:    []string{model.FieldIncidentDate},
		RecommendedRoute: model.RouteManualReview,
		Reasoning:        "Missing mandatory fields: incident_date",
	}

	prompt := BuildPrompt(result)

	for _, want := range []string{
		"- estimated_damage: 1200",
		"- policy_number: ABC-123",
		"Missing mandatory fields: incident_date",
		"Route: Manual Review",
		"Reasoning: Missing mandatory fields: incident_date",
		"The routing decision is final",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q\n%s", want, prompt)
		}
	}

	// Keys come out sorted, so the prompt is stable across runs.
	if strings.Index(prompt, "estimated_damage") > strings.Index(prompt, "policy_number") {
		t.Error("field keys are not sorted")
	}
}

func TestBuildPrompt_NoMissingFieldsSection(t *testing.T) {
	result := model.ClaimResult{
		ExtractedFields:  model.FieldMap{model.FieldPolicyNumber: "ABC-123"},
		MissingFields:    []string{},
		RecommendedRoute: model.RouteFastTrack,
		Reasoning:        "Estimated damage ($1,200.00) is below fast-track threshold ($25,000)",
	}

	if prompt := BuildPrompt(result); strings.Contains(prompt, "Missing mandatory fields") {
		t.Error("prompt has a missing-fields section for a complete claim")
	}
}

func TestNewSummarizer_DisabledWhenNoProvider(t *testing.T) {
	s, err := NewSummarizer(model.LLMConfig{})
	if err != nil {
		t.Fatalf("NewSummarizer: %v", err)
	}
	if s != nil {
		t.Error("expected nil summarizer for empty provider")
	}
	if s.IsEnabled() {
		t.Error("nil summarizer must report disabled")
	}
}

func TestNewSummarizer_UnknownProvider(t *testing.T) {
	if _, err := NewSummarizer(model.LLMConfig{Provider: "carrier-pigeon"}); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestRenderMarkdown(t *testing.T) {
	out := RenderMarkdown("Two-car collision, routed to Fast-Track.", "claim.txt")

	if !strings.HasPrefix(out, "# Claim Summary: claim.txt\n") {
		t.Errorf("unexpected header: %q", out)
	}
	if !strings.Contains(out, "Two-car collision") {
		t.Error("summary body missing")
	}

	bare := RenderMarkdown("body", "")
	if !strings.HasPrefix(bare, "# Claim Summary\n") {
		t.Errorf("unexpected header without source file: %q", bare)
	}
}
