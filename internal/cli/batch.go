package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/avolkov/fnoltriage/internal/pipeline"
	"github.com/avolkov/fnoltriage/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency int
	outputDir   string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir|manifest>",
	Short: "Process many FNOL documents in parallel",
	Long: `Batch processes a directory of FNOL documents (or a manifest file
listing one document path per line) on a worker pool. Each document yields
its own JSON result; one bad document never aborts the batch.

Example:
  fnoltriage batch ./intake
  fnoltriage batch claims.txt --concurrency 8 --output-dir ./results`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "", "directory for JSON results (default: next to each source)")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the extracted-text cache")
	batchCmd.Flags().BoolVar(&noJSON, "no-json", false, "skip writing JSON results")
}

func runBatch(cmd *cobra.Command, args []string) error {
	input := args[0]

	paths, err := collectInput(input)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no processable documents in %s", input)
	}

	cfg := loadConfig()
	cfg.Cache.Enabled = cfg.Cache.Enabled && !noCache
	cfg.Output.WriteJSON = cfg.Output.WriteJSON && !noJSON
	if concurrency > 0 {
		cfg.Concurrency.Workers = concurrency
	}

	fmt.Fprintf(os.Stderr, "Processing %d documents with %d workers\n\n", len(paths), cfg.Concurrency.Workers)

	p := pipeline.NewPipeline(cfg)
	processor := worker.NewBatchProcessor(p, cfg.Concurrency.Workers)
	results := processor.ProcessPaths(paths)

	renderer := pipeline.NewRenderer()
	var failed int

	for _, r := range results {
		if r.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "FAIL  %s: %v\n", r.Path, r.Error)
			continue
		}

		fmt.Fprintf(os.Stdout, "%-22s %s\n", r.Result.RecommendedRoute, r.Path)

		if cfg.Output.WriteJSON {
			jsonPath := pipeline.JSONPath(r.Path)
			if outputDir != "" {
				jsonPath = filepath.Join(outputDir, filepath.Base(jsonPath))
				if err := os.MkdirAll(outputDir, 0755); err != nil {
					return fmt.Errorf("create output dir: %w", err)
				}
			}
			if err := renderer.RenderJSON(r.Result, jsonPath); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: write %s: %v\n", jsonPath, err)
			}
		}
	}

	fmt.Fprintf(os.Stderr, "\nProcessed %d documents, %d failed\n", len(results), failed)

	if failed == len(results) {
		return fmt.Errorf("all %d documents failed", failed)
	}
	return nil
}

// collectInput resolves the batch argument: a directory is scanned for
// supported documents, anything else is read as a manifest of paths.
func collectInput(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}

	if info.IsDir() {
		return worker.CollectFiles(input)
	}

	return worker.ReadPathsFromFile(input)
}
