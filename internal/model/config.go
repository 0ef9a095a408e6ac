package model

import "time"

// Config holds the complete pipeline configuration. It is built once at
// startup and treated as read-only afterwards; concurrent documents share
// it without coordination.
type Config struct {
	Routing     RoutingConfig     `yaml:"routing" mapstructure:"routing"`
	Extraction  ExtractionConfig  `yaml:"extraction" mapstructure:"extraction"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
}

// RoutingConfig drives classification, fraud detection and routing.
// Keyword matching is case-insensitive and substring-level.
type RoutingConfig struct {
	FastTrackThreshold float64  `yaml:"fast_track_threshold" mapstructure:"fast_track_threshold"`
	MandatoryFields    []string `yaml:"mandatory_fields" mapstructure:"mandatory_fields"`
	FraudKeywords      []string `yaml:"fraud_keywords" mapstructure:"fraud_keywords"`
	SuspiciousPatterns []string `yaml:"suspicious_patterns" mapstructure:"suspicious_patterns"`
	InjuryKeywords     []string `yaml:"injury_keywords" mapstructure:"injury_keywords"`
	CollisionKeywords  []string `yaml:"collision_keywords" mapstructure:"collision_keywords"`
}

// ExtractionConfig bounds free-text captures.
type ExtractionConfig struct {
	MaxDescriptionWords  int `yaml:"max_description_words" mapstructure:"max_description_words"`
	MaxDescriptionChars  int `yaml:"max_description_chars" mapstructure:"max_description_chars"`
	MaxContinuationLines int `yaml:"max_continuation_lines" mapstructure:"max_continuation_lines"`
}

// CacheConfig controls the extracted-text cache.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// ConcurrencyConfig controls batch processing.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Verbose   bool `yaml:"verbose" mapstructure:"verbose"`
	WriteJSON bool `yaml:"write_json" mapstructure:"write_json"`
}

// LLMConfig configures the optional claim summary. The summary is generated
// after routing and can never alter a ClaimResult.
type LLMConfig struct {
	Provider          string  `yaml:"provider" mapstructure:"provider"`
	Model             string  `yaml:"model" mapstructure:"model"`
	APIKey            string  `yaml:"-" mapstructure:"-"`
	BaseURL           string  `yaml:"base_url" mapstructure:"base_url"`
	TimeoutSeconds    int     `yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
	MaxTokens         int     `yaml:"max_tokens" mapstructure:"max_tokens"`
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
}

// DefaultConfig returns the built-in defaults. The keyword lists and the
// fast-track threshold mirror the historical processor behavior.
func DefaultConfig() *Config {
	return &Config{
		Routing: RoutingConfig{
			FastTrackThreshold: 25000,
			MandatoryFields: []string{
				FieldPolicyNumber,
				FieldPolicyholderName,
				FieldIncidentDate,
				FieldIncidentLocation,
				FieldClaimType,
				FieldAssetType,
			},
			FraudKeywords: []string{"fraud", "inconsistent", "staged", "suspicious", "fake", "false"},
			SuspiciousPatterns: []string{
				`seems?\s+(?:fake|staged|suspicious)`,
				`(?:might|could)\s+be\s+fraud`,
				`doesn'?t\s+add\s+up`,
			},
			InjuryKeywords:    []string{"injured", "injury", "medical", "hospital", "ambulance", "emergency"},
			CollisionKeywords: []string{"collision", "accident", "crash", "hit", "struck"},
		},
		Extraction: ExtractionConfig{
			MaxDescriptionWords:  100,
			MaxDescriptionChars:  500,
			MaxContinuationLines: 5,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "",
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			Verbose:   false,
			WriteJSON: true,
		},
		LLM: LLMConfig{
			Provider:          "",
			Model:             "",
			TimeoutSeconds:    30,
			MaxTokens:         500,
			RequestsPerSecond: 1,
			Burst:             2,
		},
	}
}
