// Package pipeline wires the FNOL processing stages together: text
// acquisition, field extraction, classification, validation and routing.
// A pipeline is safe for concurrent use; every document gets its own
// FieldMap and ClaimResult.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/avolkov/fnoltriage/internal/cache"
	"github.com/avolkov/fnoltriage/internal/classify"
	"github.com/avolkov/fnoltriage/internal/extract"
	"github.com/avolkov/fnoltriage/internal/model"
	"github.com/avolkov/fnoltriage/internal/route"
	"github.com/avolkov/fnoltriage/internal/textract"
	"github.com/avolkov/fnoltriage/internal/validate"
)

// Pipeline processes FNOL documents into ClaimResults.
type Pipeline struct {
	policy     *extract.PolicyExtractor
	incident   *extract.IncidentExtractor
	parties    *extract.PartiesExtractor
	asset      *extract.AssetExtractor
	classifier *classify.ClaimTypeClassifier
	validator  *validate.Validator
	router     *route.Engine
	textCache  cache.Cache // nil when caching is disabled
	config     *model.Config
}

// NewPipeline creates a pipeline from the given configuration. The config
// is treated as read-only from here on.
func NewPipeline(cfg *model.Config) *Pipeline {
	var textCache cache.Cache
	if cfg.Cache.Enabled {
		dir := cfg.Cache.Dir
		if dir == "" {
			if home, err := os.UserHomeDir(); err == nil {
				dir = filepath.Join(home, ".fnoltriage", "cache")
			}
		}
		if dir != "" {
			textCache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, dir, cfg.Cache.DiskTTL)
		}
	}

	return &Pipeline{
		policy:     extract.NewPolicyExtractor(),
		incident:   extract.NewIncidentExtractor(cfg.Extraction),
		parties:    extract.NewPartiesExtractor(),
		asset:      extract.NewAssetExtractor(),
		classifier: classify.NewClaimTypeClassifier(cfg.Routing),
		validator:  validate.NewValidator(cfg.Routing.MandatoryFields),
		router:     route.NewEngine(cfg.Routing),
		textCache:  textCache,
		config:     cfg,
	}
}

// ProcessFile extracts text from a document and processes it. Text
// acquisition failure is fatal for the document and is returned unchanged;
// no partial result is produced.
func (p *Pipeline) ProcessFile(path string) (*model.ClaimResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	text, err := p.acquireText(path, data)
	if err != nil {
		return nil, err
	}

	return p.ProcessText(text, filepath.Base(path)), nil
}

// acquireText returns the document text, consulting the cache keyed by the
// document's content digest.
func (p *Pipeline) acquireText(path string, data []byte) (string, error) {
	var key string
	if p.textCache != nil {
		key = cache.DocumentKey(data)
		if cached, found := p.textCache.Get(key); found {
			return string(cached), nil
		}
	}

	text, err := textract.FromFile(path)
	if err != nil {
		return "", err
	}

	if p.textCache != nil {
		_ = p.textCache.Set(key, []byte(text), 0)
	}

	return text, nil
}

// ProcessText runs the core pipeline over raw text. It is a pure function
// of its input except for the processing timestamp. sourceFile may be
// empty; when set it is recorded on the result.
func (p *Pipeline) ProcessText(text, sourceFile string) *model.ClaimResult {
	fields := make(model.FieldMap)
	fields.Merge(p.policy.Extract(text))
	fields.Merge(p.incident.Extract(text))
	fields.Merge(p.parties.Extract(text))
	fields.Merge(p.asset.Extract(text))

	claimType := p.classifier.Classify(text, fields)
	fields[model.FieldClaimType] = string(claimType)

	missing := p.validator.Missing(fields)

	decision := p.router.Route(route.Input{
		Fields:  fields,
		Missing: missing,
		Text:    text,
	})

	return &model.ClaimResult{
		ExtractedFields:     fields,
		MissingFields:       missing,
		RecommendedRoute:    decision.Route,
		Reasoning:           decision.Reasoning,
		ProcessingTimestamp: time.Now().UTC().Format(time.RFC3339),
		SourceFile:          sourceFile,
	}
}
