// Package config provides configuration structures for the retrieval engine.
// It defines segmentation parameters, query defaults, and storage locations,
// loadable from an optional YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultMaxChars is the default maximum passage length, in runes.
	DefaultMaxChars = 1000
	// DefaultOverlap is the default number of runes repeated between
	// consecutive passages.
	DefaultOverlap = 100
	// DefaultTopK is the default number of passages returned by a query.
	DefaultTopK = 3
)

// SegmenterSettings controls how normalized text is split into passages.
// Overlap must stay strictly smaller than MaxChars: each passage after the
// first starts Overlap runes before the previous passage's end.
type SegmenterSettings struct {
	MaxChars int `json:"max_chars" yaml:"max_chars"` // Maximum passage length in runes (must be > 0)
	Overlap  int `json:"overlap" yaml:"overlap"`     // Runes shared between consecutive passages (>= 0, < MaxChars)
}

// EngineSettings contains all configuration options for the retrieval engine.
type EngineSettings struct {
	DataDir   string            `json:"data_dir" yaml:"data_dir"`     // Directory holding one passage file per document
	Segmenter SegmenterSettings `json:"segmenter" yaml:"segmenter"`   // Text segmentation parameters
	TopK      int               `json:"top_k" yaml:"top_k"`           // Default number of passages returned by a query
	Port      string            `json:"port" yaml:"port"`             // HTTP listen port for the host application
}

// ApplyDefaults applies default values to any unset engine settings.
func (settings *EngineSettings) ApplyDefaults() {
	if settings.DataDir == "" {
		settings.DataDir = "./kb_data"
	}
	if settings.Segmenter.MaxChars == 0 {
		settings.Segmenter.MaxChars = DefaultMaxChars
	}
	if settings.Segmenter.MaxChars > 0 && settings.Segmenter.Overlap == 0 {
		settings.Segmenter.Overlap = DefaultOverlap
	}
	// A configured overlap can never reach MaxChars; clamp rather than
	// carry an invalid combination into every Segment call.
	if settings.Segmenter.MaxChars > 0 && settings.Segmenter.Overlap >= settings.Segmenter.MaxChars {
		settings.Segmenter.Overlap = settings.Segmenter.MaxChars - 1
	}
	if settings.TopK <= 0 {
		settings.TopK = DefaultTopK
	}
	if settings.Port == "" {
		settings.Port = "8080"
	}
}

// Validate checks the settings for invalid combinations and returns a list
// of human-readable conflicts, empty when the settings are usable.
func (settings *EngineSettings) Validate() []string {
	var conflicts []string

	if settings.Segmenter.MaxChars <= 0 {
		conflicts = append(conflicts, fmt.Sprintf("max_chars must be positive, got %d", settings.Segmenter.MaxChars))
	}
	if settings.Segmenter.Overlap < 0 {
		conflicts = append(conflicts, fmt.Sprintf("overlap cannot be negative, got %d", settings.Segmenter.Overlap))
	}
	if settings.Segmenter.MaxChars > 0 && settings.Segmenter.Overlap >= settings.Segmenter.MaxChars {
		conflicts = append(conflicts, fmt.Sprintf("overlap (%d) must be smaller than max_chars (%d)", settings.Segmenter.Overlap, settings.Segmenter.MaxChars))
	}
	if settings.TopK < 0 {
		conflicts = append(conflicts, fmt.Sprintf("top_k cannot be negative, got %d", settings.TopK))
	}

	return conflicts
}

// Load reads engine settings from a YAML file and applies defaults.
// A missing file is not an error: the engine runs on defaults alone.
func Load(path string) (EngineSettings, error) {
	var settings EngineSettings

	data, err := os.ReadFile(path) // #nosec G304 -- path is controlled by application, not user input
	if err != nil {
		if os.IsNotExist(err) {
			settings.ApplyDefaults()
			return settings, nil
		}
		return settings, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	settings.ApplyDefaults()
	if conflicts := settings.Validate(); len(conflicts) > 0 {
		return settings, fmt.Errorf("invalid configuration in %s: %v", path, conflicts)
	}
	return settings, nil
}
