// Package manifest loads grid section definitions from TOML files.
//
// A manifest describes the sections a viewport should lay out: column
// counts, sizing modes, spacing metrics, and the item contents used for
// automatic measurement. Example:
//
//	[[sections]]
//	name = "featured"
//	columns = 3
//	mode = "fixed"
//	height = 5
//	header = 2
//	items = ["alpha", "beta", "gamma"]
//
//	[sections.metrics]
//	left = 2
//	right = 2
//	line_spacing = 1
//	interitem_spacing = 1
//
//	[[sections]]
//	name = "notes"
//	columns = 2
//	mode = "automatic"
//	uniform = true
//	items = ["short", "a much longer note that wraps"]
//
// Manifests are validated on load; [Manifest.LayoutSections] converts the
// specs into layout.Section values ready for arrangement.
package manifest

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gridflow/pkg/errors"
	"github.com/matzehuels/gridflow/pkg/grid"
	"github.com/matzehuels/gridflow/pkg/layout"
)

// =============================================================================
// Manifest Types
// =============================================================================

// Manifest is the top-level TOML document.
type Manifest struct {
	Sections []SectionSpec `toml:"sections"`
}

// SectionSpec describes one section in a manifest.
type SectionSpec struct {
	Name    string   `toml:"name"`
	Columns int      `toml:"columns"`
	Mode    string   `toml:"mode"`
	Height  float64  `toml:"height"`  // fixed mode payload
	Ratio   float64  `toml:"ratio"`   // aspect mode payload
	Uniform bool     `toml:"uniform"` // automatic mode payload
	Header  float64  `toml:"header"`  // reference header height
	Footer  float64  `toml:"footer"`  // reference footer height
	Items   []string `toml:"items"`

	Metrics MetricsSpec `toml:"metrics"`
}

// MetricsSpec mirrors grid.Metrics with flat TOML keys.
type MetricsSpec struct {
	Top              float64 `toml:"top"`
	Left             float64 `toml:"left"`
	Bottom           float64 `toml:"bottom"`
	Right            float64 `toml:"right"`
	LineSpacing      float64 `toml:"line_spacing"`
	InteritemSpacing float64 `toml:"interitem_spacing"`
}

// toMetrics converts the spec into grid metrics.
func (m MetricsSpec) toMetrics() grid.Metrics {
	return grid.Metrics{
		ContentInsets: grid.Insets{
			Top:    m.Top,
			Left:   m.Left,
			Bottom: m.Bottom,
			Right:  m.Right,
		},
		MinimumLineSpacing:      m.LineSpacing,
		MinimumInteritemSpacing: m.InteritemSpacing,
	}
}

// =============================================================================
// Loading
// =============================================================================

// Parse decodes and validates a manifest from TOML bytes.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode manifest")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	m, _, err := LoadWithSource(path)
	return m, err
}

// LoadWithSource reads and parses a manifest file, returning the raw TOML
// bytes alongside the manifest. The source bytes feed content hashing for
// cache keys and snapshots.
func LoadWithSource(path string) (*Manifest, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest %s", path)
		}
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "read manifest %s", path)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, nil, err
	}
	return m, data, nil
}

// Validate checks every section spec.
func (m *Manifest) Validate() error {
	if len(m.Sections) == 0 {
		return errors.New(errors.ErrCodeInvalidManifest, "manifest must define at least one section")
	}

	for _, s := range m.Sections {
		if err := s.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (s SectionSpec) validate() error {
	if err := errors.ValidateSectionName(s.Name); err != nil {
		return err
	}
	if err := errors.ValidateColumns(s.Columns); err != nil {
		return err
	}
	if err := errors.ValidateModeName(s.Mode); err != nil {
		return err
	}
	if err := errors.ValidateMetrics(
		s.Metrics.Top, s.Metrics.Left, s.Metrics.Bottom, s.Metrics.Right,
		s.Metrics.LineSpacing, s.Metrics.InteritemSpacing,
	); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidSection, err, "section %q", s.Name)
	}

	switch strings.ToLower(s.Mode) {
	case errors.ModeNameFixed:
		if err := errors.ValidateFixedHeight(s.Height); err != nil {
			return err
		}
	case errors.ModeNameAspect:
		if err := errors.ValidateRatio(s.Ratio); err != nil {
			return err
		}
	case errors.ModeNameAutomatic:
		if len(s.Items) == 0 {
			return errors.New(errors.ErrCodeInvalidSection,
				"section %q uses automatic sizing but has no items to measure", s.Name)
		}
	}
	return nil
}

// =============================================================================
// Conversion
// =============================================================================

// SizingMode resolves the spec's mode string and payload into a grid.Mode.
func (s SectionSpec) SizingMode() grid.Mode {
	switch strings.ToLower(s.Mode) {
	case errors.ModeNameAutomatic:
		return grid.Automatic(s.Uniform)
	case errors.ModeNameAspect:
		return grid.AspectRatio(s.Ratio)
	default:
		return grid.Fixed(s.Height)
	}
}

// Prototype returns the representative cell measured under automatic
// sizing: the longest item content, which wraps to the tallest cell and so
// bounds every row.
func (s SectionSpec) Prototype() grid.Prototype {
	if len(s.Items) == 0 {
		return nil
	}
	longest := s.Items[0]
	for _, item := range s.Items[1:] {
		if len(item) > len(longest) {
			longest = item
		}
	}
	return &grid.TextCell{Content: longest}
}

// LayoutSections converts the manifest into arrangement inputs.
func (m *Manifest) LayoutSections() []layout.Section {
	sections := make([]layout.Section, 0, len(m.Sections))
	for _, s := range m.Sections {
		sections = append(sections, layout.Section{
			Name:         s.Name,
			Columns:      s.Columns,
			Mode:         s.SizingMode(),
			Metrics:      s.Metrics.toMetrics(),
			Items:        len(s.Items),
			Prototype:    s.Prototype(),
			HeaderHeight: s.Header,
			FooterHeight: s.Footer,
		})
	}
	return sections
}
