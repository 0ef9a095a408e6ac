package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/avolkov/fnoltriage/internal/model"
)

// Renderer writes ClaimResults to files and the console.
type Renderer struct{}

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// JSONPath returns the default output path for a processed document:
// <stem>_processed.json next to the source.
func JSONPath(sourcePath string) string {
	stem := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	return filepath.Join(filepath.Dir(sourcePath), stem+"_processed.json")
}

// RenderJSON writes the result as indented JSON.
func (r *Renderer) RenderJSON(result *model.ClaimResult, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	return nil
}

// RenderSummary prints a human-readable report: extracted fields,
// validation outcome and the routing decision.
func (r *Renderer) RenderSummary(result *model.ClaimResult, w io.Writer) {
	rule := strings.Repeat("-", 60)

	fmt.Fprintln(w, "EXTRACTED FIELDS:")
	fmt.Fprintln(w, rule)
	for _, key := range sortedKeys(result.ExtractedFields) {
		fmt.Fprintf(w, "  %s: %v\n", key, result.ExtractedFields[key])
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "VALIDATION:")
	fmt.Fprintln(w, rule)
	if len(result.MissingFields) > 0 {
		fmt.Fprintf(w, "  Missing fields: %s\n", strings.Join(result.MissingFields, ", "))
	} else {
		fmt.Fprintln(w, "  All mandatory fields present")
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "ROUTING DECISION:")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "  Route: %s\n", result.RecommendedRoute)
	fmt.Fprintf(w, "  Reasoning: %s\n", result.Reasoning)
}

func sortedKeys(fields model.FieldMap) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
