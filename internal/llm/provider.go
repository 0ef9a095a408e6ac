// Package llm generates an optional narrative summary of a processed
// claim for adjusters. The summary is produced after routing and can
// never alter extraction, validation or the routing decision; it is
// rendered to a sidecar file, never into the ClaimResult itself.
package llm

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/avolkov/fnoltriage/internal/model"
)

// Provider is an LLM backend capable of summarizing a claim.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Summarize generates a summary of the processed claim.
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)

	// IsAvailable checks that the provider is configured and reachable.
	IsAvailable(ctx context.Context) bool
}

// SummarizeRequest is the input for claim summarization.
type SummarizeRequest struct {
	// Result is the processed claim to summarize.
	Result model.ClaimResult

	// Prompt overrides the default prompt when non-empty.
	Prompt string

	// Model is the provider-specific model name.
	Model string

	// MaxTokens limits the response length.
	MaxTokens int
}

// SummarizeResponse is the provider's output.
type SummarizeResponse struct {
	Summary    string
	Model      string
	TokensUsed int
}

// BuildPrompt constructs the default summarization prompt. The prompt
// restricts the model to the extracted data: the routing decision is
// already made and must be restated, not second-guessed.
func BuildPrompt(result model.ClaimResult) string {
	var b strings.Builder

	b.WriteString(`You are summarizing a processed insurance FNOL claim for an adjuster.

RULES:
1. Use ONLY the extracted fields listed below. Do not invent details.
2. The routing decision is final. Restate it; never suggest a different route.
3. If fields are missing, say so plainly.
4. Keep it to 3-4 sentences.

Extracted fields:
`)

	for _, key := range sortedFieldKeys(result.ExtractedFields) {
		fmt.Fprintf(&b, "- %s: %v\n", key, result.ExtractedFields[key])
	}

	if len(result.MissingFields) > 0 {
		fmt.Fprintf(&b, "\nMissing mandatory fields: %s\n", strings.Join(result.MissingFields, ", "))
	}

	fmt.Fprintf(&b, "\nRoute: %s\nReasoning: %s\n", result.RecommendedRoute, result.Reasoning)

	return b.String()
}

func sortedFieldKeys(fields model.FieldMap) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
