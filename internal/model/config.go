package model

import (
	"runtime"
	"time"
)

// Config holds the complete mencion configuration
type Config struct {
	Extract ExtractConfig `yaml:"extract"`
	Oracle  OracleConfig  `yaml:"oracle"`
	Output  OutputConfig  `yaml:"output"`
}

// ExtractConfig controls the mention extractors
type ExtractConfig struct {
	TextColumn    string `yaml:"text_column"`    // Column holding the scannable text
	SectionColumn string `yaml:"section_column"` // Column holding the section title
	ContextBefore int    `yaml:"context_before"` // Words of context before a match
	ContextAfter  int    `yaml:"context_after"`  // Words of context after a match
	Workers       int    `yaml:"workers"`        // Parallel chunk workers
}

// OracleConfig controls the external law-matching oracle
type OracleConfig struct {
	Model       string        `yaml:"model"`       // Model name (default gpt-4o-mini)
	APIKey      string        `yaml:"-"`           // Never serialized; env-sourced
	BaseURL     string        `yaml:"base_url"`    // Custom endpoint (optional)
	Timeout     time.Duration `yaml:"timeout"`     // Per-call timeout
	Delay       time.Duration `yaml:"delay"`       // Fixed spacing between calls
	Temperature float32       `yaml:"temperature"` // Sampling temperature
}

// OutputConfig controls progress reporting
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Extract: ExtractConfig{
			TextColumn:    "text",
			SectionColumn: "article_name",
			ContextBefore: 30,
			ContextAfter:  30,
			Workers:       runtime.NumCPU(),
		},
		Oracle: OracleConfig{
			Model:       "gpt-4o-mini",
			Timeout:     30 * time.Second,
			Delay:       time.Second,
			Temperature: 0.2,
		},
	}
}
