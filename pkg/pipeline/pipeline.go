// Package pipeline provides the core arrangement pipeline for Gridflow.
//
// This package implements the complete load → arrange → emit pipeline that
// can be used by CLI, server, and TUI components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Parse and validate the section manifest
//  2. Arrange: Compute item frames for the target environment
//  3. Emit: Serialize the layout into output artifacts (JSON, summary)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    ManifestPath: "sections.toml",
//	    Width:        120,
//	    Height:       40,
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data := result.Artifacts["json"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridflow/pkg/errors"
	"github.com/matzehuels/gridflow/pkg/layout"
	"github.com/matzehuels/gridflow/pkg/manifest"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, Server, and TUI
// =============================================================================

const (
	// DefaultWidth is the default viewport width in cells.
	DefaultWidth = 120.0

	// DefaultHeight is the default viewport height in cells.
	DefaultHeight = 40.0
)

// Format constants for output artifacts.
const (
	FormatJSON    = "json"
	FormatSummary = "summary"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON:    true,
	FormatSummary: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the arrangement pipeline.
// This struct supports JSON serialization for server requests.
type Options struct {
	// Load options. Exactly one of ManifestPath or Manifest is required;
	// Manifest carries inline TOML content.
	ManifestPath string `json:"manifest_path,omitempty"`
	Manifest     string `json:"manifest,omitempty"`

	// Arrange options
	Width   float64 `json:"width,omitempty"`
	Height  float64 `json:"height,omitempty"`
	Refresh bool    `json:"refresh,omitempty"` // Bypass the layout cache

	// Emit options
	Formats []string `json:"formats,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Manifest is the loaded section manifest.
	Manifest *manifest.Manifest

	// ManifestHash is the content hash of the manifest source.
	ManifestHash string

	// Layout contains the arranged frames.
	Layout layout.Layout

	// Artifacts contains emitted outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SectionCount int
	FrameCount   int
	LoadTime     time.Duration
	ArrangeTime  time.Duration
	EmitTime     time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the arranged layout came from cache
}

// =============================================================================
// Validation
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: json, summary)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. Idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	o.SetArrangeDefaults()
	o.SetEmitDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for loading.
func (o *Options) ValidateForLoad() error {
	if o.ManifestPath == "" && o.Manifest == "" {
		return errors.New(errors.ErrCodeInvalidInput, "manifest_path or manifest is required")
	}
	if o.ManifestPath != "" && o.Manifest != "" {
		return errors.New(errors.ErrCodeInvalidInput, "manifest_path and manifest are mutually exclusive")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetArrangeDefaults sets default values for arrangement.
func (o *Options) SetArrangeDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetEmitDefaults sets default values for emission.
func (o *Options) SetEmitDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
}
