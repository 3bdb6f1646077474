package grid

import (
	"fmt"
	"math"
)

// =============================================================================
// Strategy - Core Sizing Component
// =============================================================================

// StrategyConfig holds the construction parameters for a Strategy.
type StrategyConfig struct {
	// Columns is the number of columns items are laid out in. Must be ≥ 1;
	// the column count divides the available width and is not validated.
	Columns int

	// Mode selects how item heights are derived.
	Mode Mode

	// Metrics supplies the section insets and spacing used in the
	// column-width computation. Copied on construction.
	Metrics Metrics

	// Prototype is the off-screen view measured under ModeAutomatic.
	// Required for ModeAutomatic, ignored otherwise.
	Prototype Prototype

	// Measurer performs prototype measurement. Defaults to TextMeasurer
	// when nil.
	Measurer Measurer
}

// Strategy resolves item sizes for a single section of a grid layout.
//
// Results are memoized with a mode-dependent policy: Fixed and uniform
// Automatic sizing hold one shared size for all indices, while AspectRatio
// and non-uniform Automatic sizing cache per index. A cache hit returns
// immediately with no staleness check, so an instance is bound to one
// environment for its lifetime; call Invalidate when the viewport changes.
//
// Strategy is not safe for concurrent use. All calls are expected to come
// from one layout pass on a single goroutine.
type Strategy struct {
	columns   int
	mode      Mode
	metrics   Metrics
	prototype Prototype
	measurer  Measurer

	shared   *Size
	perIndex map[int]Size
}

// NewStrategy constructs a sizing strategy for one section.
//
// Requesting ModeAutomatic without a prototype is an unrecoverable
// misconfiguration, since no measurement could ever produce a valid size,
// and panics at construction rather than failing lazily during layout.
func NewStrategy(cfg StrategyConfig) *Strategy {
	if cfg.Mode.Kind == ModeAutomatic && cfg.Prototype == nil {
		panic("grid: automatic sizing requires a prototype")
	}
	measurer := cfg.Measurer
	if measurer == nil {
		measurer = TextMeasurer{}
	}
	return &Strategy{
		columns:   cfg.Columns,
		mode:      cfg.Mode,
		metrics:   cfg.Metrics,
		prototype: cfg.Prototype,
		measurer:  measurer,
	}
}

// Mode returns the strategy's sizing mode.
func (s *Strategy) Mode() Mode { return s.mode }

// Metrics returns the strategy's section metrics.
func (s *Strategy) Metrics() Metrics { return s.metrics }

// Columns returns the strategy's column count.
func (s *Strategy) Columns() int { return s.columns }

// =============================================================================
// Sizing
// =============================================================================

// ItemSize resolves the size of the item at index for the given environment.
//
// The result is deterministic while (mode, metrics, columns, prototype,
// environment) are held constant, and memoized: the first call computes and
// caches, subsequent calls read the cache. Under ModeAutomatic the miss path
// performs one synchronous prototype measurement.
func (s *Strategy) ItemSize(index int, env Environment) Size {
	if size, ok := s.lookup(index); ok {
		return size
	}

	width := s.ColumnWidth(env)

	var size Size
	switch s.mode.Kind {
	case ModeAspectRatio:
		size = Size{Width: width, Height: width * s.mode.Ratio}
	case ModeFixed:
		size = Size{Width: width, Height: s.mode.Height}
	case ModeAutomatic:
		size = s.measure(width)
	}

	s.store(index, size)
	return size
}

// ColumnWidth computes the width of a single column for the given
// environment: the viewport width minus horizontal insets and inter-column
// gaps, divided by the column count. The result is floored so column
// boundaries stay integral and adjacent columns cannot overlap by a
// fractional cell.
//
// Computed fresh on every cache miss; never cached on its own.
func (s *Strategy) ColumnWidth(env Environment) float64 {
	available := env.ContentSize.Width -
		s.metrics.ContentInsets.Left -
		s.metrics.ContentInsets.Right -
		float64(s.columns-1)*s.metrics.MinimumInteritemSpacing
	return math.Floor(available / float64(s.columns))
}

// measure resolves the measurable target and asks the measurer for its
// natural height at the candidate width. An unresolvable target degrades to
// a zero size instead of failing, so one malformed cell distorts the layout
// visually rather than aborting the pass.
func (s *Strategy) measure(width float64) Size {
	target := resolveTarget(s.prototype)
	if target == nil {
		return Size{}
	}
	return Size{Width: width, Height: s.measurer.NaturalHeight(target, width)}
}

// =============================================================================
// Cache
// =============================================================================

// lookup consults the memo cache under the mode's sharing policy.
func (s *Strategy) lookup(index int) (Size, bool) {
	if s.mode.sharesCache() {
		if s.shared != nil {
			return *s.shared, true
		}
		return Size{}, false
	}
	size, ok := s.perIndex[index]
	return size, ok
}

// store records a computed size under the mode's sharing policy.
func (s *Strategy) store(index int, size Size) {
	if s.mode.sharesCache() {
		s.shared = &size
		return
	}
	if s.perIndex == nil {
		s.perIndex = make(map[int]Size)
	}
	s.perIndex[index] = size
}

// cachedCount returns the number of cached entries.
func (s *Strategy) cachedCount() int {
	if s.mode.sharesCache() {
		if s.shared != nil {
			return 1
		}
		return 0
	}
	return len(s.perIndex)
}

// Invalidate discards every cached size. Hosting layouts must call it (or
// construct a new Strategy) whenever the environment changes; cached sizes
// are otherwise served without any staleness check.
func (s *Strategy) Invalidate() {
	s.shared = nil
	s.perIndex = nil
}

// Fingerprint returns a stable identifier for the sizing configuration,
// suitable as a persistent cache key component alongside
// Environment.Fingerprint. Prototype and Measurer do not contribute; callers
// persisting measurements must mix in a content identity of their own.
func (cfg StrategyConfig) Fingerprint() string {
	m := cfg.Metrics
	return fmt.Sprintf("c%d:%s:i%g,%g,%g,%g:l%g:g%g",
		cfg.Columns, cfg.Mode,
		m.ContentInsets.Top, m.ContentInsets.Left, m.ContentInsets.Bottom, m.ContentInsets.Right,
		m.MinimumLineSpacing, m.MinimumInteritemSpacing)
}

// ConfigFingerprint returns the fingerprint of the strategy's configuration.
func (s *Strategy) ConfigFingerprint() string {
	return StrategyConfig{Columns: s.columns, Mode: s.mode, Metrics: s.metrics}.Fingerprint()
}
