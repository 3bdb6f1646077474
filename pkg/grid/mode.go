package grid

import "fmt"

// ModeKind discriminates the sizing mode variants.
type ModeKind int

// Sizing mode kinds.
const (
	// ModeFixed gives every item the same configured height.
	ModeFixed ModeKind = iota

	// ModeAutomatic derives the height by measuring a prototype view.
	ModeAutomatic

	// ModeAspectRatio derives the height from the column width and a ratio.
	ModeAspectRatio
)

// Mode selects how a Strategy derives item heights.
//
// Mode is a closed variant: construct values with [Fixed], [Automatic], or
// [AspectRatio] and dispatch on Kind. Only the payload fields for the active
// kind are meaningful.
type Mode struct {
	Kind ModeKind

	// Height is the item height for ModeFixed.
	Height float64

	// Uniform applies to ModeAutomatic: when true, the first measured size
	// is reused for every index.
	Uniform bool

	// Ratio is the height/width ratio for ModeAspectRatio.
	Ratio float64
}

// Fixed returns a mode where every item has the given height.
func Fixed(height float64) Mode {
	return Mode{Kind: ModeFixed, Height: height}
}

// Automatic returns a mode where heights come from prototype measurement.
// With uniform=true all indices share the first measured size; otherwise
// each index is measured and cached independently.
func Automatic(uniform bool) Mode {
	return Mode{Kind: ModeAutomatic, Uniform: uniform}
}

// AspectRatio returns a mode where height = column width × ratio.
func AspectRatio(ratio float64) Mode {
	return Mode{Kind: ModeAspectRatio, Ratio: ratio}
}

// sharesCache reports whether all indices share one cached size under this
// mode. Fixed items are identical by definition; uniform automatic sizing
// reuses the first measurement.
func (m Mode) sharesCache() bool {
	return m.Kind == ModeFixed || (m.Kind == ModeAutomatic && m.Uniform)
}

// String returns a stable description of the mode, including its payload.
// It is used in cache keys, so equal modes must stringify identically.
func (m Mode) String() string {
	switch m.Kind {
	case ModeFixed:
		return fmt.Sprintf("fixed:%g", m.Height)
	case ModeAutomatic:
		if m.Uniform {
			return "automatic:uniform"
		}
		return "automatic"
	case ModeAspectRatio:
		return fmt.Sprintf("aspect:%g", m.Ratio)
	default:
		return "unknown"
	}
}
