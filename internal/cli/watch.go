package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avolkov/fnoltriage/internal/pipeline"
	"github.com/avolkov/fnoltriage/internal/worker"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var settleDelay time.Duration

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Watch an intake directory and process new FNOL documents",
	Long: `Watch monitors a directory and processes each supported document as
it arrives. Runs until interrupted.

Example:
  fnoltriage watch ./intake
  fnoltriage watch ./intake --settle 2s`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&settleDelay, "settle", time.Second, "delay before processing a new file, letting uploads finish")
	watchCmd.Flags().BoolVar(&noJSON, "no-json", false, "skip writing JSON results")
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := args[0]

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("stat dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}

	cfg := loadConfig()
	cfg.Output.WriteJSON = cfg.Output.WriteJSON && !noJSON
	p := pipeline.NewPipeline(cfg)
	renderer := pipeline.NewRenderer()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	fmt.Fprintf(os.Stderr, "Watching %s for FNOL documents (Ctrl-C to stop)\n", dir)

	// Suppress duplicate Create/Write pairs for the same path.
	recent := make(map[string]time.Time)

	for {
		select {
		case <-stop:
			fmt.Fprintln(os.Stderr, "\nStopping")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !worker.IsSupported(event.Name) {
				continue
			}
			if last, seen := recent[event.Name]; seen && time.Since(last) < settleDelay {
				continue
			}
			recent[event.Name] = time.Now()

			go func(path string) {
				time.Sleep(settleDelay)
				processWatched(p, renderer, path)
			}(event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watch error: %v\n", err)
		}
	}
}

func processWatched(p *pipeline.Pipeline, renderer *pipeline.Renderer, path string) {
	result, err := p.ProcessFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL  %s: %v\n", path, err)
		return
	}

	fmt.Fprintf(os.Stdout, "%-22s %s  (%s)\n", result.RecommendedRoute, path, result.Reasoning)

	if !noJSON {
		if err := renderer.RenderJSON(result, pipeline.JSONPath(path)); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: write result for %s: %v\n", path, err)
		}
	}
}
