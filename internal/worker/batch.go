package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/avolkov/fnoltriage/internal/model"
)

// Processor processes a single FNOL document file.
type Processor interface {
	ProcessFile(path string) (*model.ClaimResult, error)
}

// FileJob processes one document through the pipeline.
type FileJob struct {
	Path      string
	Processor Processor
}

// Execute runs the job.
func (j *FileJob) Execute(ctx context.Context) Result {
	if err := ctx.Err(); err != nil {
		return &FileResult{Path: j.Path, Error: err}
	}

	result, err := j.Processor.ProcessFile(j.Path)
	return &FileResult{
		Path:   j.Path,
		Result: result,
		Error:  err,
	}
}

// FileResult is the outcome of processing one document.
type FileResult struct {
	Path   string
	Result *model.ClaimResult
	Error  error
}

// GetError returns the processing error, if any.
func (r *FileResult) GetError() error {
	return r.Error
}

// BatchProcessor processes many documents concurrently.
type BatchProcessor struct {
	processor   Processor
	concurrency int
}

// NewBatchProcessor creates a batch processor.
func NewBatchProcessor(processor Processor, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		processor:   processor,
		concurrency: concurrency,
	}
}

// ProcessPaths processes the given documents on the worker pool. One
// failed document never aborts the batch; its error is carried in the
// corresponding FileResult.
func (b *BatchProcessor) ProcessPaths(paths []string) []*FileResult {
	if len(paths) == 0 {
		return []*FileResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&FileJob{Path: path, Processor: b.processor})
	}

	results := pool.Wait()

	fileResults := make([]*FileResult, len(results))
	for i, result := range results {
		fileResults[i] = result.(*FileResult)
	}

	return fileResults
}

// supportedExtensions are the document types textract can handle.
var supportedExtensions = map[string]bool{
	".txt": true, ".pdf": true, ".html": true, ".htm": true,
}

// IsSupported reports whether path has a processable extension.
func IsSupported(path string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(path))]
}

// CollectFiles lists the supported documents directly inside dir, sorted
// by name for deterministic batch ordering.
func CollectFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if IsSupported(entry.Name()) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(paths)
	return paths, nil
}

// ReadPathsFromFile reads document paths from a manifest file, one per
// line, skipping blanks, comments and duplicates.
func ReadPathsFromFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return paths, nil
}
