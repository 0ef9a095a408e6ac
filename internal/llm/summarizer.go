package llm

import (
	"context"
	"fmt"

	"github.com/avolkov/fnoltriage/internal/model"
	"github.com/avolkov/fnoltriage/internal/worker"
)

// Summarizer wraps a provider with rate limiting for batch runs.
type Summarizer struct {
	provider Provider
	limiter  *worker.Limiter
	config   model.LLMConfig
}

// NewSummarizer creates a summarizer from the LLM config. An empty
// provider name means summaries are disabled and nil is returned.
func NewSummarizer(cfg model.LLMConfig) (*Summarizer, error) {
	if cfg.Provider == "" {
		return nil, nil
	}

	var provider Provider
	var err error

	switch cfg.Provider {
	case "openai":
		provider, err = NewOpenAIProvider(cfg)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}

	return &Summarizer{
		provider: provider,
		limiter:  worker.NewLimiter(rps, cfg.Burst),
		config:   cfg,
	}, nil
}

// IsEnabled reports whether summaries will be generated.
func (s *Summarizer) IsEnabled() bool {
	return s != nil && s.provider != nil
}

// Summarize generates the claim summary, waiting for rate-limit clearance
// first. Failures here never affect the ClaimResult; callers treat a
// summary error as a warning.
func (s *Summarizer) Summarize(ctx context.Context, result model.ClaimResult) (string, error) {
	if !s.IsEnabled() {
		return "", fmt.Errorf("summarizer is disabled")
	}

	if err := s.limiter.Wait(ctx, s.provider.Name()); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	resp, err := s.provider.Summarize(ctx, SummarizeRequest{Result: result})
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}

	return resp.Summary, nil
}

// RenderMarkdown formats a summary for the sidecar file.
func RenderMarkdown(summary, sourceFile string) string {
	header := "# Claim Summary"
	if sourceFile != "" {
		header += ": " + sourceFile
	}
	return header + "\n\n" + summary + "\n\n---\nGenerated summary. The routing decision above it is rule-based and final.\n"
}
