package grid

import "fmt"

// =============================================================================
// Geometry Value Types
// =============================================================================

// Size is a width/height pair in cells (or pixels, for non-terminal hosts).
type Size struct {
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool { return s.Width == 0 && s.Height == 0 }

// Insets describes distances from each edge of a section's bounds.
type Insets struct {
	Top    float64 `json:"top" bson:"top"`
	Left   float64 `json:"left" bson:"left"`
	Bottom float64 `json:"bottom" bson:"bottom"`
	Right  float64 `json:"right" bson:"right"`
}

// Metrics holds per-section spacing configuration.
// The zero value (no insets, no spacing) is valid.
// Metrics are copied into each Strategy, never shared mutably.
type Metrics struct {
	// ContentInsets shrinks the area available to items inside the section.
	ContentInsets Insets `json:"content_insets" bson:"content_insets"`

	// MinimumLineSpacing is the vertical gap between item rows.
	MinimumLineSpacing float64 `json:"minimum_line_spacing" bson:"minimum_line_spacing"`

	// MinimumInteritemSpacing is the horizontal gap between columns.
	MinimumInteritemSpacing float64 `json:"minimum_interitem_spacing" bson:"minimum_interitem_spacing"`
}

// =============================================================================
// Size Classes
// =============================================================================

// SizeClass is the display-context trait of a viewport. It is derived from
// width breakpoints and carried on the Environment so section delegates can
// adapt metrics to the current terminal without inspecting raw dimensions.
type SizeClass int

// Size class thresholds follow common terminal widths: 80 columns is the
// floor for compact displays, 160 the threshold for wide ones.
const (
	ClassCompact SizeClass = iota
	ClassRegular
	ClassWide
)

const (
	regularWidth = 80
	wideWidth    = 160
)

// ClassForWidth maps a viewport width to its size class.
func ClassForWidth(width float64) SizeClass {
	switch {
	case width >= wideWidth:
		return ClassWide
	case width >= regularWidth:
		return ClassRegular
	default:
		return ClassCompact
	}
}

// String returns the human-readable name of the size class.
func (c SizeClass) String() string {
	switch c {
	case ClassCompact:
		return "compact"
	case ClassRegular:
		return "regular"
	case ClassWide:
		return "wide"
	default:
		return "unknown"
	}
}

// =============================================================================
// Environment
// =============================================================================

// Environment is a read-only snapshot of the viewport taken once per layout
// pass. It has no persistent identity: the hosting layout constructs a fresh
// Environment each pass and threads it through every sizing call.
type Environment struct {
	// ContentSize is the current scrollable viewport size.
	ContentSize Size `json:"content_size" bson:"content_size"`

	// SizeClass is the display-context trait for this viewport.
	SizeClass SizeClass `json:"size_class" bson:"size_class"`
}

// NewEnvironment builds an environment for a viewport of the given
// dimensions, deriving the size class from the width.
func NewEnvironment(width, height float64) Environment {
	return Environment{
		ContentSize: Size{Width: width, Height: height},
		SizeClass:   ClassForWidth(width),
	}
}

// Fingerprint returns a stable identifier for this environment, suitable as
// a cache key component. Environments with equal fingerprints produce equal
// sizing results for a given strategy configuration.
func (e Environment) Fingerprint() string {
	return fmt.Sprintf("%gx%g:%s", e.ContentSize.Width, e.ContentSize.Height, e.SizeClass)
}
