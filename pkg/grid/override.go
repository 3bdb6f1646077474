package grid

// =============================================================================
// Section Delegate - Override Capability
// =============================================================================

// SectionDelegate lets a section's data provider override the sizes and
// metrics a hosting layout would otherwise use. Each operation receives the
// value the host computed ("suggested") together with the current
// environment and returns the value to use.
//
// This is the sole extension point exposed to section authors. A sizing
// Strategy is one way a host may produce the suggested values, but the
// delegate contract does not mandate it.
//
// Implementers embed [Passthrough] and override only what they need:
//
//	type compactSection struct {
//	    grid.Passthrough
//	}
//
//	func (compactSection) SectionMetrics(suggested grid.Metrics, env grid.Environment) grid.Metrics {
//	    if env.SizeClass == grid.ClassCompact {
//	        suggested.MinimumInteritemSpacing = 0
//	    }
//	    return suggested
//	}
type SectionDelegate interface {
	// ItemSize overrides the size for the item at index.
	ItemSize(index int, suggested Size, env Environment) Size

	// HeaderSize overrides the section's reference header size.
	HeaderSize(suggested Size, env Environment) Size

	// FooterSize overrides the section's reference footer size.
	FooterSize(suggested Size, env Environment) Size

	// SectionMetrics overrides the section's layout metrics.
	SectionMetrics(suggested Metrics, env Environment) Metrics
}

// Passthrough implements SectionDelegate by returning every suggested value
// unchanged.
type Passthrough struct{}

// ItemSize returns suggested unchanged.
func (Passthrough) ItemSize(_ int, suggested Size, _ Environment) Size { return suggested }

// HeaderSize returns suggested unchanged.
func (Passthrough) HeaderSize(suggested Size, _ Environment) Size { return suggested }

// FooterSize returns suggested unchanged.
func (Passthrough) FooterSize(suggested Size, _ Environment) Size { return suggested }

// SectionMetrics returns suggested unchanged.
func (Passthrough) SectionMetrics(suggested Metrics, _ Environment) Metrics { return suggested }

// Ensure Passthrough implements SectionDelegate.
var _ SectionDelegate = Passthrough{}
