package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/avolkov/fnoltriage/internal/llm"
	"github.com/avolkov/fnoltriage/internal/model"
	"github.com/avolkov/fnoltriage/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outJSON     string
	noJSON      bool
	noCache     bool
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// processCmd represents the process command
var processCmd = &cobra.Command{
	Use:   "process <file>",
	Short: "Process a single FNOL document and route the claim",
	Long: `Process extracts claim fields from one FNOL document (PDF, TXT or
HTML), validates completeness, classifies the claim and prints the routing
decision with its reasoning. The full result is written as JSON next to
the source document.

Example:
  fnoltriage process claim.pdf
  fnoltriage process claim.txt --json result.json
  fnoltriage process claim.pdf --llm --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (default: <stem>_processed.json)")
	processCmd.Flags().BoolVar(&noJSON, "no-json", false, "skip writing the JSON result")
	processCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the extracted-text cache")

	processCmd.Flags().BoolVar(&llmEnabled, "llm", false, "generate an LLM claim summary (never affects routing)")
	processCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider")
	processCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func runProcess(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg := loadConfig()
	cfg.Cache.Enabled = cfg.Cache.Enabled && !noCache
	cfg.Output.WriteJSON = cfg.Output.WriteJSON && !noJSON
	if llmEnabled {
		if err := configureLLM(cfg); err != nil {
			return err
		}
	}

	p := pipeline.NewPipeline(cfg)

	if verbose {
		fmt.Fprintf(os.Stderr, "Processing: %s\n\n", path)
	}

	result, err := p.ProcessFile(path)
	if err != nil {
		return fmt.Errorf("process %s: %w", path, err)
	}

	renderer := pipeline.NewRenderer()
	renderer.RenderSummary(result, os.Stdout)

	if cfg.Output.WriteJSON {
		jsonPath := outJSON
		if jsonPath == "" {
			jsonPath = pipeline.JSONPath(path)
		}
		if err := renderer.RenderJSON(result, jsonPath); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
		fmt.Fprintf(os.Stdout, "\nResults saved to: %s\n", jsonPath)
	}

	if llmEnabled {
		writeSummary(cmd.Context(), cfg, result, path)
	}

	return nil
}

// configureLLM fills the LLM config from flags and the environment.
func configureLLM(cfg *model.Config) error {
	cfg.LLM.Provider = llmProvider
	if llmModel != "" {
		cfg.LLM.Model = llmModel
	}

	if cfg.LLM.Provider == "openai" {
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	}

	return nil
}

// writeSummary generates the optional claim summary sidecar. Summary
// failures are warnings; the claim result already stands on its own.
func writeSummary(ctx context.Context, cfg *model.Config, result *model.ClaimResult, sourcePath string) {
	if ctx == nil {
		ctx = context.Background()
	}

	summarizer, err := llm.NewSummarizer(cfg.LLM)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: LLM summarizer unavailable: %v\n", err)
		return
	}
	if !summarizer.IsEnabled() {
		return
	}

	summary, err := summarizer.Summarize(ctx, *result)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: summary generation failed: %v\n", err)
		return
	}

	sidecar := strings.TrimSuffix(pipeline.JSONPath(sourcePath), ".json") + ".llm.md"
	if err := os.WriteFile(sidecar, []byte(llm.RenderMarkdown(summary, result.SourceFile)), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to write summary: %v\n", err)
		return
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Wrote summary: %s\n", sidecar)
	}
}
