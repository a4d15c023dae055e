// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the pipeline configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults.
type Config struct {
	// Paths
	ProfileDir   string `json:"profile_dir,omitempty"`   // Directory holding pre-ingested profile artifacts
	Template     string `json:"template,omitempty"`      // Path to LaTeX template (empty uses the built-in one)
	ArtifactsDir string `json:"artifacts_dir,omitempty"` // Directory for run artifacts (PDF + audit JSON)

	// Mapping thresholds
	SimilarityThreshold float64 `json:"similarity_threshold,omitempty" validate:"gte=0,lte=1"` // Minimum best similarity for a match
	SimilarityMargin    float64 `json:"similarity_margin,omitempty" validate:"gte=0,lte=1"`    // Matched-chunk margin below the best score

	// Scoring
	CriticalWeight      float64 `json:"critical_weight,omitempty" validate:"gte=0,lte=1"` // Weight above which a missing keyword is critical
	CriticalPenalty     float64 `json:"critical_penalty,omitempty" validate:"gte=0"`      // Deduction per missing critical keyword
	OverflowPenalty     float64 `json:"overflow_penalty,omitempty" validate:"gte=0"`      // Deduction for unresolved page overflow
	EmptySectionPenalty float64 `json:"empty_section_penalty,omitempty" validate:"gte=0"` // Deduction per empty required section

	// Selection / assembly
	ContentBudget  int `json:"content_budget,omitempty" validate:"gte=0"`   // Initial character budget for one page
	BudgetStep     int `json:"budget_step,omitempty" validate:"gte=0"`      // Budget decrement per overflow reduction
	SectionMinimum int `json:"section_minimum,omitempty" validate:"gte=0"`  // Chunks guaranteed per non-empty section
	MaxChunkChars  int `json:"max_chunk_chars,omitempty" validate:"gte=0"`  // Clip bound for a single chunk
	TopKeywords    int `json:"top_keywords,omitempty" validate:"gte=0"`     // Keyword set size cap

	// Loop bounds
	MaxRenderAttempts    int     `json:"max_render_attempts,omitempty" validate:"gte=0,lte=20"` // Render attempts per guardrail pass
	MaxIterations        int     `json:"max_iterations,omitempty" validate:"gte=0,lte=20"`      // Optimizer iteration cap
	Epsilon              float64 `json:"epsilon,omitempty" validate:"gte=0"`                    // Minimum score improvement to keep iterating
	RenderTimeoutSeconds int     `json:"render_timeout_seconds,omitempty" validate:"gte=0"`     // Per-invocation renderer timeout

	// Behavior
	APIKey     string `json:"api_key,omitempty"`     // Gemini API key for remote keyword extraction
	UseBrowser bool   `json:"use_browser,omitempty"` // Use headless browser when fetching SPA job pages
	Verbose    bool   `json:"verbose,omitempty"`     // Print detailed pipeline information
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		ProfileDir:           "profile_cache",
		ArtifactsDir:         "artifacts",
		SimilarityThreshold:  0.55,
		SimilarityMargin:     0.05,
		CriticalWeight:       0.8,
		CriticalPenalty:      5.0,
		OverflowPenalty:      10.0,
		EmptySectionPenalty:  5.0,
		ContentBudget:        2600,
		BudgetStep:           250,
		SectionMinimum:       1,
		MaxChunkChars:        220,
		TopKeywords:          32,
		MaxRenderAttempts:    5,
		MaxIterations:        3,
		Epsilon:              0.5,
		RenderTimeoutSeconds: 30,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled
// from defaults. CLI flags should still win over the merged result.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ProfileDir == "" {
		result.ProfileDir = defaults.ProfileDir
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.ArtifactsDir == "" {
		result.ArtifactsDir = defaults.ArtifactsDir
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	if result.SimilarityThreshold == 0 {
		result.SimilarityThreshold = defaults.SimilarityThreshold
	}
	if result.SimilarityMargin == 0 {
		result.SimilarityMargin = defaults.SimilarityMargin
	}
	if result.CriticalWeight == 0 {
		result.CriticalWeight = defaults.CriticalWeight
	}
	if result.CriticalPenalty == 0 {
		result.CriticalPenalty = defaults.CriticalPenalty
	}
	if result.OverflowPenalty == 0 {
		result.OverflowPenalty = defaults.OverflowPenalty
	}
	if result.EmptySectionPenalty == 0 {
		result.EmptySectionPenalty = defaults.EmptySectionPenalty
	}
	if result.ContentBudget == 0 {
		result.ContentBudget = defaults.ContentBudget
	}
	if result.BudgetStep == 0 {
		result.BudgetStep = defaults.BudgetStep
	}
	if result.SectionMinimum == 0 {
		result.SectionMinimum = defaults.SectionMinimum
	}
	if result.MaxChunkChars == 0 {
		result.MaxChunkChars = defaults.MaxChunkChars
	}
	if result.TopKeywords == 0 {
		result.TopKeywords = defaults.TopKeywords
	}
	if result.MaxRenderAttempts == 0 {
		result.MaxRenderAttempts = defaults.MaxRenderAttempts
	}
	if result.MaxIterations == 0 {
		result.MaxIterations = defaults.MaxIterations
	}
	if result.Epsilon == 0 {
		result.Epsilon = defaults.Epsilon
	}
	if result.RenderTimeoutSeconds == 0 {
		result.RenderTimeoutSeconds = defaults.RenderTimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge.

	return result
}
